package store

import "github.com/Hata214/vanlang-budget-cli/internal/model"

// Action is a state transition request. Actions mirror resolved server
// responses: nothing is applied optimistically, so the store only ever
// moves when the server has confirmed a mutation.
type Action interface {
	isAction()
}

// Income actions.
type (
	// IncomesFetchStarted marks the income collection as loading.
	IncomesFetchStarted struct{}
	// IncomesFetched replaces the income collection wholesale.
	IncomesFetched struct{ Records []model.Income }
	// IncomesFetchFailed records a fetch error, leaving records intact.
	IncomesFetchFailed struct{ Err string }
	// IncomeAdded appends a server-confirmed income entry.
	IncomeAdded struct{ Record model.Income }
	// IncomeUpdated replaces the entry with a matching ID in place.
	IncomeUpdated struct{ Record model.Income }
	// IncomeDeleted removes the entry with the given ID.
	IncomeDeleted struct{ ID string }
	// IncomeCategoriesFetched merges the server's category list.
	IncomeCategoriesFetched struct{ Categories []string }
)

// Expense actions.
type (
	// ExpensesFetchStarted marks the expense collection as loading.
	ExpensesFetchStarted struct{}
	// ExpensesFetched replaces the expense collection wholesale.
	ExpensesFetched struct{ Records []model.Expense }
	// ExpensesFetchFailed records a fetch error, leaving records intact.
	ExpensesFetchFailed struct{ Err string }
	// ExpenseAdded appends a server-confirmed expense entry.
	ExpenseAdded struct{ Record model.Expense }
	// ExpenseUpdated replaces the entry with a matching ID in place.
	ExpenseUpdated struct{ Record model.Expense }
	// ExpenseDeleted removes the entry with the given ID.
	ExpenseDeleted struct{ ID string }
	// ExpenseCategoriesFetched merges the server's category list.
	ExpenseCategoriesFetched struct{ Categories []string }
)

// Loan actions.
type (
	// LoansFetchStarted marks the loan collection as loading.
	LoansFetchStarted struct{}
	// LoansFetched replaces the loan collection wholesale.
	LoansFetched struct{ Records []model.Loan }
	// LoansFetchFailed records a fetch error, leaving records intact.
	LoansFetchFailed struct{ Err string }
	// LoanAdded appends a server-confirmed loan.
	LoanAdded struct{ Record model.Loan }
	// LoanUpdated replaces the loan with a matching ID in place.
	LoanUpdated struct{ Record model.Loan }
	// LoanDeleted removes the loan with the given ID.
	LoanDeleted struct{ ID string }
	// LoanSelected sets the loan shown on the detail view.
	LoanSelected struct{ Record model.Loan }
	// LoanPaymentAdded records a confirmed payment against a loan.
	LoanPaymentAdded struct{ Payment model.LoanPayment }
	// LoanPaymentUpdated replaces a payment by ID on its loan.
	LoanPaymentUpdated struct{ Payment model.LoanPayment }
	// LoanPaymentDeleted removes a payment from its loan.
	LoanPaymentDeleted struct{ LoanID, PaymentID string }
)

// Reset discards all state. Dispatched on logout and on a 401 from any
// endpoint; the next authenticated fetch repopulates the store.
type Reset struct{}

func (IncomesFetchStarted) isAction()      {}
func (IncomesFetched) isAction()           {}
func (IncomesFetchFailed) isAction()       {}
func (IncomeAdded) isAction()              {}
func (IncomeUpdated) isAction()            {}
func (IncomeDeleted) isAction()            {}
func (IncomeCategoriesFetched) isAction()  {}
func (ExpensesFetchStarted) isAction()     {}
func (ExpensesFetched) isAction()          {}
func (ExpensesFetchFailed) isAction()      {}
func (ExpenseAdded) isAction()             {}
func (ExpenseUpdated) isAction()           {}
func (ExpenseDeleted) isAction()           {}
func (ExpenseCategoriesFetched) isAction() {}
func (LoansFetchStarted) isAction()        {}
func (LoansFetched) isAction()             {}
func (LoansFetchFailed) isAction()         {}
func (LoanAdded) isAction()                {}
func (LoanUpdated) isAction()              {}
func (LoanDeleted) isAction()              {}
func (LoanSelected) isAction()             {}
func (LoanPaymentAdded) isAction()         {}
func (LoanPaymentUpdated) isAction()       {}
func (LoanPaymentDeleted) isAction()       {}
func (Reset) isAction()                    {}
