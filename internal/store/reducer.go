package store

import (
	"slices"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Hata214/vanlang-budget-cli/internal/model"
	"github.com/Hata214/vanlang-budget-cli/internal/query"
)

// IncomeState is the income slice of the store.
type IncomeState struct {
	Records    []model.Income
	Total      decimal.Decimal
	Categories []string
	Loading    bool
	Err        string
}

// ExpenseState is the expense slice of the store.
type ExpenseState struct {
	Records    []model.Expense
	Total      decimal.Decimal
	Categories []string
	Loading    bool
	Err        string
}

// LoanState is the loan slice of the store.
type LoanState struct {
	Records     []model.Loan
	Selected    *model.Loan
	Outstanding decimal.Decimal
	Loading     bool
	Err         string
}

// State is a snapshot of everything fetched for the current session.
type State struct {
	Incomes  IncomeState
	Expenses ExpenseState
	Loans    LoanState
}

// NewState returns the empty pre-fetch state.
func NewState() State {
	return State{
		Incomes:  IncomeState{Total: decimal.Zero},
		Expenses: ExpenseState{Total: decimal.Zero},
		Loans:    LoanState{Outstanding: decimal.Zero},
	}
}

// Loading reports whether any collection fetch is in flight.
func (s State) Loading() bool {
	return s.Incomes.Loading || s.Expenses.Loading || s.Loans.Loading
}

// Reduce applies an action to a state snapshot and returns the next
// snapshot. It is pure: the input state and any slices it holds are
// never modified, and totals are recomputed from the records they
// summarize so the two can't drift apart.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case IncomesFetchStarted:
		s.Incomes.Loading = true
		s.Incomes.Err = ""
	case IncomesFetched:
		s.Incomes.Loading = false
		s.Incomes.Records = slices.Clone(a.Records)
		s.Incomes.Total = query.Total(query.Incomes, s.Incomes.Records)
		s.Incomes.Categories = mergeCategories(s.Incomes.Categories, incomeCategories(a.Records))
	case IncomesFetchFailed:
		s.Incomes.Loading = false
		s.Incomes.Err = a.Err
	case IncomeAdded:
		s.Incomes.Records = append(slices.Clone(s.Incomes.Records), a.Record)
		s.Incomes.Total = query.Total(query.Incomes, s.Incomes.Records)
		s.Incomes.Categories = mergeCategories(s.Incomes.Categories, []string{a.Record.Category})
	case IncomeUpdated:
		s.Incomes.Records = replaceByID(s.Incomes.Records, a.Record, func(i model.Income) string { return i.ID })
		s.Incomes.Total = query.Total(query.Incomes, s.Incomes.Records)
		s.Incomes.Categories = mergeCategories(s.Incomes.Categories, []string{a.Record.Category})
	case IncomeDeleted:
		s.Incomes.Records = deleteByID(s.Incomes.Records, a.ID, func(i model.Income) string { return i.ID })
		s.Incomes.Total = query.Total(query.Incomes, s.Incomes.Records)
	case IncomeCategoriesFetched:
		s.Incomes.Categories = mergeCategories(s.Incomes.Categories, a.Categories)

	case ExpensesFetchStarted:
		s.Expenses.Loading = true
		s.Expenses.Err = ""
	case ExpensesFetched:
		s.Expenses.Loading = false
		s.Expenses.Records = slices.Clone(a.Records)
		s.Expenses.Total = query.Total(query.Expenses, s.Expenses.Records)
		s.Expenses.Categories = mergeCategories(s.Expenses.Categories, expenseCategories(a.Records))
	case ExpensesFetchFailed:
		s.Expenses.Loading = false
		s.Expenses.Err = a.Err
	case ExpenseAdded:
		s.Expenses.Records = append(slices.Clone(s.Expenses.Records), a.Record)
		s.Expenses.Total = query.Total(query.Expenses, s.Expenses.Records)
		s.Expenses.Categories = mergeCategories(s.Expenses.Categories, []string{a.Record.Category})
	case ExpenseUpdated:
		s.Expenses.Records = replaceByID(s.Expenses.Records, a.Record, func(e model.Expense) string { return e.ID })
		s.Expenses.Total = query.Total(query.Expenses, s.Expenses.Records)
		s.Expenses.Categories = mergeCategories(s.Expenses.Categories, []string{a.Record.Category})
	case ExpenseDeleted:
		s.Expenses.Records = deleteByID(s.Expenses.Records, a.ID, func(e model.Expense) string { return e.ID })
		s.Expenses.Total = query.Total(query.Expenses, s.Expenses.Records)
	case ExpenseCategoriesFetched:
		s.Expenses.Categories = mergeCategories(s.Expenses.Categories, a.Categories)

	case LoansFetchStarted:
		s.Loans.Loading = true
		s.Loans.Err = ""
	case LoansFetched:
		s.Loans.Loading = false
		s.Loans.Records = slices.Clone(a.Records)
		s.Loans.Outstanding = query.Outstanding(s.Loans.Records)
	case LoansFetchFailed:
		s.Loans.Loading = false
		s.Loans.Err = a.Err
	case LoanAdded:
		s.Loans.Records = append(slices.Clone(s.Loans.Records), a.Record)
		s.Loans.Outstanding = query.Outstanding(s.Loans.Records)
	case LoanUpdated:
		s.Loans.Records = replaceByID(s.Loans.Records, a.Record, func(l model.Loan) string { return l.ID })
		s.Loans.Outstanding = query.Outstanding(s.Loans.Records)
		if s.Loans.Selected != nil && s.Loans.Selected.ID == a.Record.ID {
			selected := a.Record
			s.Loans.Selected = &selected
		}
	case LoanDeleted:
		s.Loans.Records = deleteByID(s.Loans.Records, a.ID, func(l model.Loan) string { return l.ID })
		s.Loans.Outstanding = query.Outstanding(s.Loans.Records)
		if s.Loans.Selected != nil && s.Loans.Selected.ID == a.ID {
			s.Loans.Selected = nil
		}
	case LoanSelected:
		selected := a.Record
		s.Loans.Selected = &selected
	case LoanPaymentAdded:
		s = reduceLoanPayments(s, a.Payment.LoanID, func(payments []model.LoanPayment) []model.LoanPayment {
			return append(slices.Clone(payments), a.Payment)
		})
	case LoanPaymentUpdated:
		s = reduceLoanPayments(s, a.Payment.LoanID, func(payments []model.LoanPayment) []model.LoanPayment {
			return replaceByID(payments, a.Payment, func(p model.LoanPayment) string { return p.ID })
		})
	case LoanPaymentDeleted:
		s = reduceLoanPayments(s, a.LoanID, func(payments []model.LoanPayment) []model.LoanPayment {
			return deleteByID(payments, a.PaymentID, func(p model.LoanPayment) string { return p.ID })
		})

	case Reset:
		s = NewState()
	}

	return s
}

// reduceLoanPayments rewrites the payment list of one loan, both in the
// collection and on the selected loan if they refer to the same entry.
func reduceLoanPayments(s State, loanID string, apply func([]model.LoanPayment) []model.LoanPayment) State {
	records := slices.Clone(s.Loans.Records)
	for i, l := range records {
		if l.ID == loanID {
			l.Payments = apply(l.Payments)
			records[i] = l
		}
	}
	s.Loans.Records = records

	if s.Loans.Selected != nil && s.Loans.Selected.ID == loanID {
		selected := *s.Loans.Selected
		selected.Payments = apply(selected.Payments)
		s.Loans.Selected = &selected
	}
	return s
}

// replaceByID swaps the record with a matching ID, keeping its
// position. An unknown ID leaves the collection untouched.
func replaceByID[T any](records []T, record T, id func(T) string) []T {
	out := slices.Clone(records)
	for i, r := range out {
		if id(r) == id(record) {
			out[i] = record
			break
		}
	}
	return out
}

// deleteByID removes the record with a matching ID, preserving order.
func deleteByID[T any](records []T, target string, id func(T) string) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if id(r) != target {
			out = append(out, r)
		}
	}
	return out
}

// mergeCategories unions observed category names into the known set.
// The set grows monotonically and stays sorted; it is never pruned,
// even when the last record in a category is deleted.
func mergeCategories(known, observed []string) []string {
	seen := make(map[string]struct{}, len(known)+len(observed))
	merged := make([]string, 0, len(known)+len(observed))
	for _, lists := range [][]string{known, observed} {
		for _, c := range lists {
			if c == "" {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			merged = append(merged, c)
		}
	}
	sort.Strings(merged)
	return merged
}

func incomeCategories(records []model.Income) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Category)
	}
	return out
}

func expenseCategories(records []model.Expense) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Category)
	}
	return out
}
