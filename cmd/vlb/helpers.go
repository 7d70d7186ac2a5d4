package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Hata214/vanlang-budget-cli/internal/api"
	"github.com/Hata214/vanlang-budget-cli/internal/cli"
	"github.com/Hata214/vanlang-budget-cli/internal/common"
	"github.com/Hata214/vanlang-budget-cli/internal/config"
	"github.com/Hata214/vanlang-budget-cli/internal/model"
	"github.com/Hata214/vanlang-budget-cli/internal/query"
	"github.com/Hata214/vanlang-budget-cli/internal/session"
)

// apiClient is the slice of the API client the read-only commands use;
// tests substitute a fake.
type apiClient interface {
	ListIncomes(ctx context.Context) ([]model.Income, error)
	ListExpenses(ctx context.Context) ([]model.Expense, error)
	ListLoans(ctx context.Context) ([]model.Loan, error)
}

// newClient builds the API client and the session store behind it. Any
// 401 from the server clears the stored token before the error reaches
// the command.
func newClient() (*api.Client, *session.Store, config.Config, error) {
	cfg := config.Load()

	tokenPath, err := config.TokenPath()
	if err != nil {
		return nil, nil, cfg, err
	}
	sessions := session.NewStore(tokenPath)

	client := api.NewClient(cfg.BaseURL, sessions,
		api.WithTimeout(cfg.Timeout),
		api.WithUnauthorizedHandler(func() {
			if err := sessions.Clear(); err != nil {
				slog.Warn("Failed to clear session", "error", err)
			}
		}),
	)
	return client, sessions, cfg, nil
}

// friendlyErr translates API failures into messages for humans.
func friendlyErr(err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		return common.NewUserError("Session expired, please run 'vlb login' again", nil)
	}
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return common.NewUserError(apiErr.Message, nil)
	}
	return err
}

// addFilterFlags registers the shared list-view filter and pagination
// flags.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("search", "", "case-insensitive substring match on description")
	cmd.Flags().String("category", "", "exact category match (lender for loans)")
	cmd.Flags().String("from", "", "inclusive start date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "inclusive end date (YYYY-MM-DD)")
	cmd.Flags().String("min", "", "minimum amount")
	cmd.Flags().String("max", "", "maximum amount")
	cmd.Flags().Int("page", 1, "1-based page number")
	cmd.Flags().Int("page-size", 0, "records per page (default from config)")
}

// criteriaFromFlags builds filter criteria from the shared flags.
func criteriaFromFlags(cmd *cobra.Command) (query.Criteria, error) {
	var c query.Criteria

	c.Search, _ = cmd.Flags().GetString("search")
	c.Category, _ = cmd.Flags().GetString("category")

	if v, _ := cmd.Flags().GetString("from"); v != "" {
		d, err := model.ParseDate(v)
		if err != nil {
			return c, err
		}
		c.StartDate = d
	}
	if v, _ := cmd.Flags().GetString("to"); v != "" {
		d, err := model.ParseDate(v)
		if err != nil {
			return c, err
		}
		c.EndDate = d
	}
	if v, _ := cmd.Flags().GetString("min"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c, fmt.Errorf("invalid minimum amount %q: %w", v, err)
		}
		c.MinAmount = query.Amount(d)
	}
	if v, _ := cmd.Flags().GetString("max"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c, fmt.Errorf("invalid maximum amount %q: %w", v, err)
		}
		c.MaxAmount = query.Amount(d)
	}

	return c, nil
}

// pageFromFlags resolves the page number and size, falling back to the
// configured page size.
func pageFromFlags(cmd *cobra.Command, cfg config.Config) (page, size int) {
	page, _ = cmd.Flags().GetInt("page")
	size, _ = cmd.Flags().GetInt("page-size")
	if size < 1 {
		size = cfg.PageSize
	}
	if page < 1 {
		page = 1
	}
	return page, size
}

// amountFlag parses a required decimal amount flag.
func amountFlag(cmd *cobra.Command, name string) (decimal.Decimal, error) {
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		return decimal.Zero, fmt.Errorf("--%s is required", name)
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid --%s %q: %w", name, v, err)
	}
	return d, nil
}

// dateFlag parses a date flag, defaulting to today when empty and
// allowed.
func dateFlag(cmd *cobra.Command, name string, defaultToday bool) (model.Date, error) {
	v, _ := cmd.Flags().GetString(name)
	if v == "" {
		if defaultToday {
			return model.Today(), nil
		}
		return model.Date{}, fmt.Errorf("--%s is required", name)
	}
	return model.ParseDate(v)
}

// promptLine reads one line from stdin with a styled prompt.
func promptLine(prompt string) (string, error) {
	fmt.Print(cli.InfoStyle.Render(prompt + ": "))
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// pageFooter renders the "page x of y" line under a table.
func pageFooter(number, totalPages, totalItems int) string {
	return cli.SubtleStyle.Render(
		fmt.Sprintf("page %d of %d · %d record(s)", number, totalPages, totalItems))
}
