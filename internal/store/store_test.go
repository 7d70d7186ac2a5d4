package store

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hata214/vanlang-budget-cli/internal/model"
)

func amt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestFetchLifecycle(t *testing.T) {
	s := New()

	s.Dispatch(IncomesFetchStarted{})
	assert.True(t, s.State().Loading())

	s.Dispatch(IncomesFetched{Records: []model.Income{
		{ID: "1", Amount: amt(15_000_000), Category: "Lương"},
		{ID: "2", Amount: amt(2_000_000), Category: "Freelance"},
	}})

	state := s.State()
	assert.False(t, state.Loading())
	assert.Len(t, state.Incomes.Records, 2)
	assert.True(t, amt(17_000_000).Equal(state.Incomes.Total))
	assert.Equal(t, []string{"Freelance", "Lương"}, state.Incomes.Categories)
}

func TestFetchFailureKeepsRecords(t *testing.T) {
	s := New()
	s.Dispatch(IncomesFetched{Records: []model.Income{{ID: "1", Amount: amt(100)}}})

	s.Dispatch(IncomesFetchStarted{})
	s.Dispatch(IncomesFetchFailed{Err: "connection refused"})

	state := s.State()
	assert.False(t, state.Incomes.Loading)
	assert.Equal(t, "connection refused", state.Incomes.Err)
	assert.Len(t, state.Incomes.Records, 1)

	// The next fetch attempt clears the error.
	s.Dispatch(IncomesFetchStarted{})
	assert.Empty(t, s.State().Incomes.Err)
}

func TestIncomeMutations(t *testing.T) {
	s := New()
	s.Dispatch(IncomesFetched{Records: []model.Income{
		{ID: "1", Amount: amt(100), Category: "Lương"},
	}})

	s.Dispatch(IncomeAdded{Record: model.Income{ID: "2", Amount: amt(50), Category: "Khác"}})
	state := s.State()
	assert.Len(t, state.Incomes.Records, 2)
	assert.True(t, amt(150).Equal(state.Incomes.Total))

	s.Dispatch(IncomeUpdated{Record: model.Income{ID: "2", Amount: amt(75), Category: "Khác"}})
	state = s.State()
	assert.True(t, amt(175).Equal(state.Incomes.Total))
	assert.Equal(t, "2", state.Incomes.Records[1].ID)

	s.Dispatch(IncomeDeleted{ID: "1"})
	state = s.State()
	require.Len(t, state.Incomes.Records, 1)
	assert.True(t, amt(75).Equal(state.Incomes.Total))
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	s := New()
	s.Dispatch(ExpensesFetched{Records: []model.Expense{
		{ID: "1", Amount: amt(100), Category: "Ăn uống"},
	}})

	before := s.State()
	s.Dispatch(ExpenseUpdated{Record: model.Expense{ID: "missing", Amount: amt(999), Category: "Ăn uống"}})
	after := s.State()

	assert.Equal(t, before.Expenses.Records, after.Expenses.Records)
	assert.True(t, before.Expenses.Total.Equal(after.Expenses.Total))
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	s := New()
	s.Dispatch(ExpensesFetched{Records: []model.Expense{
		{ID: "1", Amount: amt(100), Category: "Ăn uống"},
	}})

	s.Dispatch(ExpenseDeleted{ID: "missing"})
	assert.Len(t, s.State().Expenses.Records, 1)
}

func TestCategoriesGrowMonotonically(t *testing.T) {
	s := New()
	s.Dispatch(ExpensesFetched{Records: []model.Expense{
		{ID: "1", Amount: amt(100), Category: "Ăn uống"},
		{ID: "2", Amount: amt(200), Category: "Nhà cửa"},
	}})
	require.Equal(t, []string{"Nhà cửa", "Ăn uống"}, s.State().Expenses.Categories)

	// Deleting the last record in a category does not prune the set.
	s.Dispatch(ExpenseDeleted{ID: "1"})
	assert.Len(t, s.State().Expenses.Categories, 2)

	s.Dispatch(ExpenseCategoriesFetched{Categories: []string{"Di chuyển", "Nhà cửa"}})
	assert.Len(t, s.State().Expenses.Categories, 3)
}

func TestLoanOutstandingTracksStatus(t *testing.T) {
	s := New()
	s.Dispatch(LoansFetched{Records: []model.Loan{
		{ID: "1", Amount: amt(50_000_000), Status: model.LoanActive},
		{ID: "2", Amount: amt(5_000_000), Status: model.LoanPaid},
	}})
	assert.True(t, amt(50_000_000).Equal(s.State().Loans.Outstanding))

	// Marking the active loan paid drops it from the outstanding total.
	s.Dispatch(LoanUpdated{Record: model.Loan{ID: "1", Amount: amt(50_000_000), Status: model.LoanPaid}})
	assert.True(t, s.State().Loans.Outstanding.IsZero())
}

func TestLoanPayments(t *testing.T) {
	s := New()
	loan := model.Loan{ID: "1", Amount: amt(10_000_000), Status: model.LoanActive}
	s.Dispatch(LoansFetched{Records: []model.Loan{loan}})
	s.Dispatch(LoanSelected{Record: loan})

	s.Dispatch(LoanPaymentAdded{Payment: model.LoanPayment{
		ID: "p1", LoanID: "1", Amount: amt(2_000_000),
	}})

	state := s.State()
	require.Len(t, state.Loans.Records[0].Payments, 1)
	require.NotNil(t, state.Loans.Selected)
	require.Len(t, state.Loans.Selected.Payments, 1)
	assert.True(t, amt(8_000_000).Equal(state.Loans.Records[0].RemainingBalance()))

	s.Dispatch(LoanPaymentUpdated{Payment: model.LoanPayment{
		ID: "p1", LoanID: "1", Amount: amt(3_000_000),
	}})
	assert.True(t, amt(7_000_000).Equal(s.State().Loans.Records[0].RemainingBalance()))

	s.Dispatch(LoanPaymentDeleted{LoanID: "1", PaymentID: "p1"})
	state = s.State()
	assert.Empty(t, state.Loans.Records[0].Payments)
	assert.Empty(t, state.Loans.Selected.Payments)
}

func TestLoanDeletedClearsSelection(t *testing.T) {
	s := New()
	loan := model.Loan{ID: "1", Amount: amt(10_000_000), Status: model.LoanActive}
	s.Dispatch(LoansFetched{Records: []model.Loan{loan}})
	s.Dispatch(LoanSelected{Record: loan})

	s.Dispatch(LoanDeleted{ID: "1"})
	state := s.State()
	assert.Empty(t, state.Loans.Records)
	assert.Nil(t, state.Loans.Selected)
}

func TestReset(t *testing.T) {
	s := New()
	s.Dispatch(IncomesFetched{Records: []model.Income{{ID: "1", Amount: amt(100), Category: "Lương"}}})
	s.Dispatch(LoansFetched{Records: []model.Loan{{ID: "1", Amount: amt(500), Status: model.LoanActive}}})

	s.Dispatch(Reset{})

	state := s.State()
	assert.Empty(t, state.Incomes.Records)
	assert.Empty(t, state.Incomes.Categories)
	assert.Empty(t, state.Loans.Records)
	assert.True(t, state.Incomes.Total.IsZero())
	assert.True(t, state.Loans.Outstanding.IsZero())
}

func TestReduceIsPure(t *testing.T) {
	initial := NewState()
	initial.Incomes.Records = []model.Income{{ID: "1", Amount: amt(100), Category: "Lương"}}

	next := Reduce(initial, IncomeAdded{Record: model.Income{ID: "2", Amount: amt(50), Category: "Khác"}})

	assert.Len(t, initial.Incomes.Records, 1)
	assert.Len(t, next.Incomes.Records, 2)
}
