package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Location is an optional geotag on an expense: coordinates plus the
// reverse-geocoded address the server resolved for them.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Expense is a single expense entry. It has the same shape as Income
// plus an optional location.
type Expense struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        Date            `json:"date"`
	Location    *Location       `json:"location,omitempty"`
	UserID      string          `json:"userId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Validate checks the form-boundary invariants for an expense entry.
// Location is optional and never validated here; the address comes
// back from the server's geocoder.
func (e Expense) Validate() error {
	if !e.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if e.Description == "" {
		return ErrMissingDescription
	}
	if e.Category == "" {
		return ErrMissingCategory
	}
	if e.Date.IsZero() {
		return ErrMissingDate
	}
	return nil
}
