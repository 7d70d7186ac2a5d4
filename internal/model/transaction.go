package model

import "github.com/shopspring/decimal"

// TransactionKind tags a merged activity entry with its source
// collection.
type TransactionKind string

// Transaction kinds.
const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// Transaction is the kind-tagged union of an income or expense entry,
// produced by the recent-activity merge for the dashboard.
type Transaction struct {
	ID          string
	Kind        TransactionKind
	Amount      decimal.Decimal
	Description string
	Category    string
	Date        Date
}

// TransactionFromIncome tags an income entry.
func TransactionFromIncome(i Income) Transaction {
	return Transaction{
		ID:          i.ID,
		Kind:        KindIncome,
		Amount:      i.Amount,
		Description: i.Description,
		Category:    i.Category,
		Date:        i.Date,
	}
}

// TransactionFromExpense tags an expense entry.
func TransactionFromExpense(e Expense) Transaction {
	return Transaction{
		ID:          e.ID,
		Kind:        KindExpense,
		Amount:      e.Amount,
		Description: e.Description,
		Category:    e.Category,
		Date:        e.Date,
	}
}
