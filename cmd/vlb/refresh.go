package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Hata214/vanlang-budget-cli/internal/api"
	"github.com/Hata214/vanlang-budget-cli/internal/cli"
	"github.com/Hata214/vanlang-budget-cli/internal/common"
	"github.com/Hata214/vanlang-budget-cli/internal/query"
	"github.com/Hata214/vanlang-budget-cli/internal/store"
)

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Re-fetch every collection and print a summary",
		Long: `Fetch incomes, expenses, loans, and categories from the server with
retries, then print the resulting totals. Useful as a connectivity and
session check.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}
			return runRefresh(cmd.Context(), client)
		},
	}
}

func runRefresh(ctx context.Context, client *api.Client) error {
	records := store.New()

	bar := progressbar.NewOptions(4,
		progressbar.OptionSetDescription("Refreshing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionShowCount(),
	)

	steps := []struct {
		name  string
		fetch func() error
	}{
		{"incomes", func() error {
			incomes, err := client.ListIncomes(ctx)
			if err != nil {
				return err
			}
			records.Dispatch(store.IncomesFetched{Records: incomes})
			return nil
		}},
		{"expenses", func() error {
			expenses, err := client.ListExpenses(ctx)
			if err != nil {
				return err
			}
			records.Dispatch(store.ExpensesFetched{Records: expenses})
			return nil
		}},
		{"loans", func() error {
			loans, err := client.ListLoans(ctx)
			if err != nil {
				return err
			}
			records.Dispatch(store.LoansFetched{Records: loans})
			return nil
		}},
		{"categories", func() error {
			incomeCats, err := client.IncomeCategories(ctx)
			if err != nil {
				return err
			}
			expenseCats, err := client.ExpenseCategories(ctx)
			if err != nil {
				return err
			}
			records.Dispatch(store.IncomeCategoriesFetched{Categories: incomeCats})
			records.Dispatch(store.ExpenseCategoriesFetched{Categories: expenseCats})
			return nil
		}},
	}

	for _, step := range steps {
		err := common.WithRetry(ctx, func() error {
			if err := step.fetch(); err != nil {
				// A rejected session will not get better on retry.
				if errors.Is(err, api.ErrUnauthorized) {
					return &common.PermanentError{Err: err}
				}
				return err
			}
			return nil
		}, common.RetryOptions{MaxAttempts: 3})
		if err != nil {
			return friendlyErr(fmt.Errorf("failed to refresh %s: %w", step.name, err))
		}
		_ = bar.Add(1)
	}

	state := records.State()

	fmt.Println(cli.FormatSuccess("Refreshed"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Incomes:\t%d record(s)\t%s\n",
		len(state.Incomes.Records), cli.IncomeStyle.Render(cli.FormatAmount(state.Incomes.Total)))
	fmt.Fprintf(w, "Expenses:\t%d record(s)\t%s\n",
		len(state.Expenses.Records), cli.ExpenseStyle.Render(cli.FormatAmount(state.Expenses.Total)))
	fmt.Fprintf(w, "Loans:\t%d record(s)\t%s outstanding\n",
		len(state.Loans.Records), cli.WarningStyle.Render(cli.FormatAmount(state.Loans.Outstanding)))
	fmt.Fprintf(w, "Categories:\t%d income, %d expense\n",
		len(state.Incomes.Categories), len(state.Expenses.Categories))
	fmt.Fprintf(w, "Balance:\t%s\n",
		cli.FormatSignedAmount(query.Balance(state.Incomes.Records, state.Expenses.Records)))
	return w.Flush()
}
