package tui

import "github.com/Hata214/vanlang-budget-cli/internal/model"

// incomesLoadedMsg carries the result of the income fetch.
type incomesLoadedMsg struct {
	err     error
	records []model.Income
}

// expensesLoadedMsg carries the result of the expense fetch.
type expensesLoadedMsg struct {
	err     error
	records []model.Expense
}

// loansLoadedMsg carries the result of the loan fetch.
type loansLoadedMsg struct {
	err     error
	records []model.Loan
}

// sessionExpiredMsg signals that a fetch came back 401 and the local
// session has been cleared.
type sessionExpiredMsg struct{}
