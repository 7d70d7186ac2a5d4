package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/shopspring/decimal"

	"github.com/Hata214/vanlang-budget-cli/internal/model"
)

// IncomeRequest is the client-supplied part of an income entry. The
// server assigns the ID, owner, and timestamps.
type IncomeRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Date        model.Date      `json:"date"`
}

// ListIncomes fetches every income entry for the session's user.
func (c *Client) ListIncomes(ctx context.Context) ([]model.Income, error) {
	var incomes []model.Income
	if err := c.get(ctx, "/incomes", &incomes); err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	return incomes, nil
}

// CreateIncome records a new income entry and returns the canonical
// server record.
func (c *Client) CreateIncome(ctx context.Context, req IncomeRequest) (model.Income, error) {
	var income model.Income
	if err := c.post(ctx, "/incomes", req, &income); err != nil {
		return model.Income{}, fmt.Errorf("failed to create income: %w", err)
	}
	return income, nil
}

// UpdateIncome replaces an income entry and returns the updated record.
func (c *Client) UpdateIncome(ctx context.Context, id string, req IncomeRequest) (model.Income, error) {
	var income model.Income
	if err := c.put(ctx, "/incomes/"+url.PathEscape(id), req, &income); err != nil {
		return model.Income{}, fmt.Errorf("failed to update income: %w", err)
	}
	return income, nil
}

// DeleteIncome removes an income entry.
func (c *Client) DeleteIncome(ctx context.Context, id string) error {
	if err := c.delete(ctx, "/incomes/"+url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	return nil
}

// IncomeCategories fetches the known income category names, including
// user-defined ones.
func (c *Client) IncomeCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.get(ctx, "/incomes/categories", &categories); err != nil {
		return nil, fmt.Errorf("failed to list income categories: %w", err)
	}
	return categories, nil
}
