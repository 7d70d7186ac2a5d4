package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIncome() Income {
	return Income{
		Amount:      decimal.NewFromInt(15_000_000),
		Description: "Lương tháng 3",
		Category:    "Lương",
		Date:        NewDate(2026, time.March, 1),
	}
}

func TestIncomeValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Income)
		wantErr error
	}{
		{"valid", func(*Income) {}, nil},
		{"zero amount", func(i *Income) { i.Amount = decimal.Zero }, ErrAmountNotPositive},
		{"negative amount", func(i *Income) { i.Amount = decimal.NewFromInt(-1) }, ErrAmountNotPositive},
		{"missing description", func(i *Income) { i.Description = "" }, ErrMissingDescription},
		{"missing category", func(i *Income) { i.Category = "" }, ErrMissingCategory},
		{"missing date", func(i *Income) { i.Date = Date{} }, ErrMissingDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			income := validIncome()
			tt.mutate(&income)
			err := income.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestExpenseValidate(t *testing.T) {
	expense := Expense{
		Amount:      decimal.NewFromInt(60_000),
		Description: "Ăn trưa",
		Category:    "Ăn uống",
		Date:        NewDate(2026, time.March, 10),
	}
	assert.NoError(t, expense.Validate())

	// Location is optional and unchecked.
	expense.Location = &Location{Lat: 10.776, Lng: 106.7}
	assert.NoError(t, expense.Validate())

	expense.Amount = decimal.Zero
	assert.ErrorIs(t, expense.Validate(), ErrAmountNotPositive)
}

func validLoan() Loan {
	return Loan{
		Amount:       decimal.NewFromInt(50_000_000),
		Description:  "Vay mua xe",
		Lender:       "Ngân hàng",
		InterestRate: 8.5,
		StartDate:    NewDate(2026, time.January, 1),
		DueDate:      NewDate(2026, time.December, 31),
		Status:       LoanActive,
	}
}

func TestLoanValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Loan)
		wantErr error
	}{
		{"valid", func(*Loan) {}, nil},
		{"interest-free is fine", func(l *Loan) { l.InterestRate = 0 }, nil},
		{"same-day due date is fine", func(l *Loan) { l.DueDate = l.StartDate }, nil},
		{"missing lender", func(l *Loan) { l.Lender = "" }, ErrMissingLender},
		{"negative interest", func(l *Loan) { l.InterestRate = -1 }, ErrInterestOutOfRange},
		{"interest above 100", func(l *Loan) { l.InterestRate = 101 }, ErrInterestOutOfRange},
		{"due before start", func(l *Loan) { l.DueDate = NewDate(2025, time.December, 31) }, ErrDueBeforeStart},
		{"missing start date", func(l *Loan) { l.StartDate = Date{} }, ErrMissingDate},
		{"unknown status", func(l *Loan) { l.Status = "PENDING" }, ErrUnknownLoanStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loan := validLoan()
			tt.mutate(&loan)
			err := loan.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoanRemainingBalance(t *testing.T) {
	loan := validLoan()
	assert.True(t, loan.Amount.Equal(loan.RemainingBalance()))

	loan.Payments = []LoanPayment{
		{Amount: decimal.NewFromInt(10_000_000)},
		{Amount: decimal.NewFromInt(5_000_000)},
	}
	assert.True(t, decimal.NewFromInt(15_000_000).Equal(loan.Repaid()))
	assert.True(t, decimal.NewFromInt(35_000_000).Equal(loan.RemainingBalance()))
}

func TestLoanPaymentValidate(t *testing.T) {
	payment := LoanPayment{
		Amount:      decimal.NewFromInt(1_000_000),
		PaymentDate: NewDate(2026, time.March, 1),
	}
	assert.NoError(t, payment.Validate())

	payment.PaymentDate = Date{}
	assert.ErrorIs(t, payment.Validate(), ErrMissingPaymentDate)

	payment.Amount = decimal.Zero
	assert.ErrorIs(t, payment.Validate(), ErrAmountNotPositive)
}

func TestTransactionConversions(t *testing.T) {
	income := validIncome()
	income.ID = "i1"
	tx := TransactionFromIncome(income)
	assert.Equal(t, KindIncome, tx.Kind)
	assert.Equal(t, income.ID, tx.ID)
	assert.True(t, income.Amount.Equal(tx.Amount))
	assert.Equal(t, income.Category, tx.Category)

	expense := Expense{
		ID:          "e1",
		Amount:      decimal.NewFromInt(60_000),
		Description: "Ăn trưa",
		Category:    "Ăn uống",
		Date:        NewDate(2026, time.March, 10),
	}
	tx = TransactionFromExpense(expense)
	require.Equal(t, KindExpense, tx.Kind)
	assert.Equal(t, "e1", tx.ID)
}

func TestLoanStatusValid(t *testing.T) {
	assert.True(t, LoanActive.Valid())
	assert.True(t, LoanPaid.Valid())
	assert.True(t, LoanOverdue.Valid())
	assert.False(t, LoanStatus("").Valid())
	assert.False(t, LoanStatus("active").Valid())
}
