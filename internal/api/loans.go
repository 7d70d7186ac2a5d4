package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/Hata214/vanlang-budget-cli/internal/model"
)

// LoanRequest is the client-supplied part of a loan.
type LoanRequest struct {
	Amount       decimal.Decimal  `json:"amount"`
	Description  string           `json:"description"`
	Lender       string           `json:"lender"`
	InterestRate float64          `json:"interestRate"`
	StartDate    model.Date       `json:"startDate"`
	DueDate      model.Date       `json:"dueDate"`
	Status       model.LoanStatus `json:"status"`
}

// LoanPaymentRequest is the client-supplied part of a loan payment. The
// server enforces that the amount does not exceed the loan's remaining
// balance.
type LoanPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate model.Date      `json:"paymentDate"`
	Description string          `json:"description,omitempty"`
	Attachments []string        `json:"attachments,omitempty"`
}

// ListLoans fetches every loan for the session's user.
func (c *Client) ListLoans(ctx context.Context) ([]model.Loan, error) {
	var loans []model.Loan
	if err := c.get(ctx, "/loans", &loans); err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	return loans, nil
}

// GetLoan fetches a single loan with its payments.
func (c *Client) GetLoan(ctx context.Context, id string) (model.Loan, error) {
	var loan model.Loan
	if err := c.get(ctx, "/loans/"+url.PathEscape(id), &loan); err != nil {
		return model.Loan{}, fmt.Errorf("failed to get loan: %w", err)
	}
	return loan, nil
}

// CreateLoan records a new loan and returns the canonical server
// record.
func (c *Client) CreateLoan(ctx context.Context, req LoanRequest) (model.Loan, error) {
	var loan model.Loan
	if err := c.post(ctx, "/loans", req, &loan); err != nil {
		return model.Loan{}, fmt.Errorf("failed to create loan: %w", err)
	}
	return loan, nil
}

// UpdateLoan replaces a loan and returns the updated record.
func (c *Client) UpdateLoan(ctx context.Context, id string, req LoanRequest) (model.Loan, error) {
	var loan model.Loan
	if err := c.put(ctx, "/loans/"+url.PathEscape(id), req, &loan); err != nil {
		return model.Loan{}, fmt.Errorf("failed to update loan: %w", err)
	}
	return loan, nil
}

// DeleteLoan removes a loan and its payments.
func (c *Client) DeleteLoan(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/loans/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete loan: %w", err)
	}
	return nil
}

// ListLoanPayments fetches the payments recorded against a loan.
func (c *Client) ListLoanPayments(ctx context.Context, loanID string) ([]model.LoanPayment, error) {
	var payments []model.LoanPayment
	if err := c.get(ctx, "/loans/"+url.PathEscape(loanID)+"/payments", &payments); err != nil {
		return nil, fmt.Errorf("failed to list loan payments: %w", err)
	}
	return payments, nil
}

// CreateLoanPayment records a repayment against a loan.
func (c *Client) CreateLoanPayment(ctx context.Context, loanID string, req LoanPaymentRequest) (model.LoanPayment, error) {
	var payment model.LoanPayment
	if err := c.post(ctx, "/loans/"+url.PathEscape(loanID)+"/payments", req, &payment); err != nil {
		return model.LoanPayment{}, fmt.Errorf("failed to create loan payment: %w", err)
	}
	return payment, nil
}

// UpdateLoanPayment replaces a repayment and returns the updated
// record.
func (c *Client) UpdateLoanPayment(ctx context.Context, loanID, paymentID string, req LoanPaymentRequest) (model.LoanPayment, error) {
	var payment model.LoanPayment
	path := "/loans/" + url.PathEscape(loanID) + "/payments/" + url.PathEscape(paymentID)
	if err := c.put(ctx, path, req, &payment); err != nil {
		return model.LoanPayment{}, fmt.Errorf("failed to update loan payment: %w", err)
	}
	return payment, nil
}

// DeleteLoanPayment removes a repayment.
func (c *Client) DeleteLoanPayment(ctx context.Context, loanID, paymentID string) error {
	path := "/loans/" + url.PathEscape(loanID) + "/payments/" + url.PathEscape(paymentID)
	if err := c.delete(ctx, path); err != nil {
		return fmt.Errorf("failed to delete loan payment: %w", err)
	}
	return nil
}
