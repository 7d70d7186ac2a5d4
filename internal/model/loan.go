package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus is the lifecycle state of a loan.
type LoanStatus string

// Loan status constants, matching the server's enumeration.
const (
	LoanActive  LoanStatus = "ACTIVE"
	LoanPaid    LoanStatus = "PAID"
	LoanOverdue LoanStatus = "OVERDUE"
)

// Valid reports whether the status is one of the known states.
func (s LoanStatus) Valid() bool {
	switch s {
	case LoanActive, LoanPaid, LoanOverdue:
		return true
	}
	return false
}

// Loan is a borrowed sum with a repayment schedule.
type Loan struct {
	ID           string          `json:"id"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Lender       string          `json:"lender"`
	InterestRate float64         `json:"interestRate"`
	StartDate    Date            `json:"startDate"`
	DueDate      Date            `json:"dueDate"`
	Status       LoanStatus      `json:"status"`
	UserID       string          `json:"userId"`
	Payments     []LoanPayment   `json:"payments,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// Validate checks the form-boundary invariants for a loan.
func (l Loan) Validate() error {
	if !l.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if l.Description == "" {
		return ErrMissingDescription
	}
	if l.Lender == "" {
		return ErrMissingLender
	}
	if l.InterestRate < 0 || l.InterestRate > 100 {
		return ErrInterestOutOfRange
	}
	if l.StartDate.IsZero() || l.DueDate.IsZero() {
		return ErrMissingDate
	}
	if l.DueDate.Before(l.StartDate.Time) {
		return ErrDueBeforeStart
	}
	if !l.Status.Valid() {
		return ErrUnknownLoanStatus
	}
	return nil
}

// Repaid sums the recorded payments against this loan.
func (l Loan) Repaid() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// RemainingBalance is the principal minus recorded payments. The server
// enforces that payments never exceed the balance; this is a derived
// view, not a constraint check.
func (l Loan) RemainingBalance() decimal.Decimal {
	return l.Amount.Sub(l.Repaid())
}

// LoanPayment is one repayment against a loan.
type LoanPayment struct {
	ID          string          `json:"id"`
	LoanID      string          `json:"loanId"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate Date            `json:"paymentDate"`
	Description string          `json:"description,omitempty"`
	Attachments []string        `json:"attachments,omitempty"`
	UserID      string          `json:"userId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Validate checks the form-boundary invariants for a loan payment.
func (p LoanPayment) Validate() error {
	if !p.Amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if p.PaymentDate.IsZero() {
		return ErrMissingPaymentDate
	}
	return nil
}
