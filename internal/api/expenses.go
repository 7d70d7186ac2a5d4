package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/Hata214/vanlang-budget-cli/internal/model"
)

// ExpenseRequest is the client-supplied part of an expense entry.
// Location is optional; when set, the server stores it alongside the
// reverse-geocoded address.
type ExpenseRequest struct {
	Location    *model.Location `json:"location,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        model.Date      `json:"date"`
}

// ListExpenses fetches every expense entry for the session's user.
func (c *Client) ListExpenses(ctx context.Context) ([]model.Expense, error) {
	var expenses []model.Expense
	if err := c.get(ctx, "/expenses", &expenses); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// CreateExpense records a new expense entry and returns the canonical
// server record.
func (c *Client) CreateExpense(ctx context.Context, req ExpenseRequest) (model.Expense, error) {
	var expense model.Expense
	if err := c.post(ctx, "/expenses", req, &expense); err != nil {
		return model.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}
	return expense, nil
}

// UpdateExpense replaces an expense entry and returns the updated
// record.
func (c *Client) UpdateExpense(ctx context.Context, id string, req ExpenseRequest) (model.Expense, error) {
	var expense model.Expense
	if err := c.put(ctx, "/expenses/"+url.PathEscape(id), req, &expense); err != nil {
		return model.Expense{}, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense, nil
}

// DeleteExpense removes an expense entry.
func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/expenses/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// ExpenseCategories fetches the known expense category names, including
// user-defined ones.
func (c *Client) ExpenseCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "/expenses/categories", &categories); err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}
	return categories, nil
}
