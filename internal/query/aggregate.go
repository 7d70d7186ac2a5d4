package query

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Hata214/vanlang-budget-cli/internal/model"
)

// Total sums the amounts of a record collection.
func Total[T any](v View[T], records []T) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(v.Amount(r))
	}
	return total
}

// Outstanding sums the principal of loans still owed. Only ACTIVE loans
// count; PAID and OVERDUE loans are excluded from the outstanding total.
func Outstanding(loans []model.Loan) decimal.Decimal {
	total := decimal.Zero
	for _, l := range loans {
		if l.Status == model.LoanActive {
			total = total.Add(l.Amount)
		}
	}
	return total
}

// Balance is total income minus total expense over the same reporting
// window. It is negative when spending exceeds income.
func Balance(incomes []model.Income, expenses []model.Expense) decimal.Decimal {
	return Total(Incomes, incomes).Sub(Total(Expenses, expenses))
}

// Breakdown groups a collection by category and sums the amount per
// group. Map iteration order is unspecified; presentation decides how
// to sort.
func Breakdown[T any](v View[T], records []T) map[string]decimal.Decimal {
	groups := make(map[string]decimal.Decimal)
	for _, r := range records {
		key := v.Category(r)
		groups[key] = groups[key].Add(v.Amount(r))
	}
	return groups
}

// BreakdownEntry is one category slice of a breakdown.
type BreakdownEntry struct {
	Category string
	Amount   decimal.Decimal
}

// SortedBreakdown flattens a breakdown into entries ordered by
// descending amount, category name breaking ties so output is stable.
func SortedBreakdown[T any](v View[T], records []T) []BreakdownEntry {
	groups := Breakdown(v, records)
	entries := make([]BreakdownEntry, 0, len(groups))
	for category, amount := range groups {
		entries = append(entries, BreakdownEntry{Category: category, Amount: amount})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Amount.Equal(entries[j].Amount) {
			return entries[i].Amount.GreaterThan(entries[j].Amount)
		}
		return entries[i].Category < entries[j].Category
	})
	return entries
}

// MonthBucket is one calendar month of a series with the summed amount
// of the records dated in it.
type MonthBucket struct {
	Year  int
	Month time.Month
	Total decimal.Decimal
}

// Date returns the first day of the bucket's month.
func (b MonthBucket) Date() model.Date {
	return model.NewDate(b.Year, b.Month, 1)
}

// MonthlySeries buckets a collection into the trailing n calendar
// months ending at the anchor date's month, oldest first. A record
// belongs to the bucket whose month and year equal its own; months with
// no records sum to zero, so the result always has exactly n buckets.
func MonthlySeries[T any](v View[T], records []T, anchor model.Date, n int) []MonthBucket {
	if n <= 0 {
		return nil
	}

	buckets := make([]MonthBucket, n)
	index := make(map[[2]int]int, n)
	for i := 0; i < n; i++ {
		m := anchor.AddMonths(i - (n - 1))
		buckets[i] = MonthBucket{Year: m.Year(), Month: m.Month(), Total: decimal.Zero}
		index[[2]int{m.Year(), int(m.Month())}] = i
	}

	for _, r := range records {
		d := v.Date(r)
		if i, ok := index[[2]int{d.Year(), int(d.Month())}]; ok {
			buckets[i].Total = buckets[i].Total.Add(v.Amount(r))
		}
	}

	return buckets
}

// RecentActivity interleaves incomes and expenses into one kind-tagged
// list, most recent date first, truncated to limit entries. The sort is
// stable: entries sharing a date keep their per-source order, incomes
// ahead of expenses.
func RecentActivity(incomes []model.Income, expenses []model.Expense, limit int) []model.Transaction {
	merged := make([]model.Transaction, 0, len(incomes)+len(expenses))
	for _, i := range incomes {
		merged = append(merged, model.TransactionFromIncome(i))
	}
	for _, e := range expenses {
		merged = append(merged, model.TransactionFromExpense(e))
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Date.After(merged[j].Date.Time)
	})

	if limit >= 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
