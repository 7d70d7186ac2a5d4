package query

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Hata214/vanlang-budget-cli/internal/model"
)

// Criteria narrows a record collection. Every field is optional; unset
// fields impose no constraint and set fields combine with logical AND.
// Amount bounds are pointers so that an explicit zero minimum is
// distinct from "no minimum".
type Criteria struct {
	Search    string
	Category  string
	StartDate model.Date
	EndDate   model.Date
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// IsZero reports whether no criterion is set.
func (c Criteria) IsZero() bool {
	return c.Search == "" &&
		c.Category == "" &&
		c.StartDate.IsZero() &&
		c.EndDate.IsZero() &&
		c.MinAmount == nil &&
		c.MaxAmount == nil
}

// matches reports whether a single record satisfies every supplied
// criterion.
func (c Criteria) matches(desc, category string, date, endDate model.Date, amount decimal.Decimal) bool {
	if c.Search != "" && !strings.Contains(strings.ToLower(desc), strings.ToLower(c.Search)) {
		return false
	}
	if c.Category != "" && category != c.Category {
		return false
	}
	if !c.StartDate.IsZero() && date.Before(c.StartDate.Time) {
		return false
	}
	if !c.EndDate.IsZero() && endDate.After(c.EndDate.Time) {
		return false
	}
	if c.MinAmount != nil && amount.LessThan(*c.MinAmount) {
		return false
	}
	if c.MaxAmount != nil && amount.GreaterThan(*c.MaxAmount) {
		return false
	}
	return true
}

// Apply filters a collection in a single pass, preserving the original
// relative order. The source slice is never modified; with no criteria
// set it is returned as-is.
func Apply[T any](v View[T], records []T, c Criteria) []T {
	if c.IsZero() {
		return records
	}

	out := make([]T, 0, len(records))
	for _, r := range records {
		if c.matches(v.Description(r), v.Category(r), v.Date(r), v.EndDate(r), v.Amount(r)) {
			out = append(out, r)
		}
	}
	return out
}

// Amount builds an amount-bound pointer for Criteria from a plain
// decimal.
func Amount(d decimal.Decimal) *decimal.Decimal {
	return &d
}
