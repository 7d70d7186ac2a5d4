// Package model defines the core domain records used throughout the
// application. Records are immutable once fetched from the server;
// local state replaces them wholesale rather than mutating in place.
package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Validation errors reported at the form boundary. Aggregation and
// filtering assume records have already passed these checks.
var (
	ErrAmountNotPositive   = errors.New("amount must be greater than zero")
	ErrMissingDescription  = errors.New("description is required")
	ErrMissingCategory     = errors.New("category is required")
	ErrMissingDate         = errors.New("date is required")
	ErrMissingLender       = errors.New("lender is required")
	ErrInterestOutOfRange  = errors.New("interest rate must be between 0 and 100")
	ErrDueBeforeStart      = errors.New("due date must not precede start date")
	ErrUnknownLoanStatus   = errors.New("unknown loan status")
	ErrMissingPaymentDate  = errors.New("payment date is required")
)

// Income is a single income entry.
type Income struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
	UserID      string          `json:"userId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Validate checks the form-boundary invariants for an income entry.
func (i Income) Validate() error {
	if !i.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if i.Description == "" {
		return ErrMissingDescription
	}
	if i.Category == "" {
		return ErrMissingCategory
	}
	if i.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}
