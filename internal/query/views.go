// Package query implements the derived-state core: pure aggregation,
// filtering, and pagination over in-memory record collections. Every
// operation is a total function; empty input yields zero totals and
// empty slices, never an error. Nothing here mutates its input.
package query

import (
	"github.com/shopspring/decimal"

	"github.com/Hata214/vanlang-budget-cli/internal/model"
)

// View describes how to read the generic fields off a record type. One
// engine serves incomes, expenses, and loans instead of three copies of
// the same filter/aggregate/paginate logic.
//
// EndDate is the field compared against a date-range upper bound. It is
// the record's own date for incomes and expenses; loans compare their
// due date instead, so a range query answers "due within this window".
type View[T any] struct {
	Amount      func(T) decimal.Decimal
	Category    func(T) string
	Description func(T) string
	Date        func(T) model.Date
	EndDate     func(T) model.Date
}

// Incomes is the view over income records.
var Incomes = View[model.Income]{
	Amount:      func(i model.Income) decimal.Decimal { return i.Amount },
	Category:    func(i model.Income) string { return i.Category },
	Description: func(i model.Income) string { return i.Description },
	Date:        func(i model.Income) model.Date { return i.Date },
	EndDate:     func(i model.Income) model.Date { return i.Date },
}

// Expenses is the view over expense records.
var Expenses = View[model.Expense]{
	Amount:      func(e model.Expense) decimal.Decimal { return e.Amount },
	Category:    func(e model.Expense) string { return e.Category },
	Description: func(e model.Expense) string { return e.Description },
	Date:        func(e model.Expense) model.Date { return e.Date },
	EndDate:     func(e model.Expense) model.Date { return e.Date },
}

// Loans is the view over loan records. The lender plays the role of the
// category, the start date bounds range queries from below, and the due
// date bounds them from above.
var Loans = View[model.Loan]{
	Amount:      func(l model.Loan) decimal.Decimal { return l.Amount },
	Category:    func(l model.Loan) string { return l.Lender },
	Description: func(l model.Loan) string { return l.Description },
	Date:        func(l model.Loan) model.Date { return l.StartDate },
	EndDate:     func(l model.Loan) model.Date { return l.DueDate },
}

// Payments is the view over loan payment records.
var Payments = View[model.LoanPayment]{
	Amount:      func(p model.LoanPayment) decimal.Decimal { return p.Amount },
	Category:    func(p model.LoanPayment) string { return "" },
	Description: func(p model.LoanPayment) string { return p.Description },
	Date:        func(p model.LoanPayment) model.Date { return p.PaymentDate },
	EndDate:     func(p model.LoanPayment) model.Date { return p.PaymentDate },
}
