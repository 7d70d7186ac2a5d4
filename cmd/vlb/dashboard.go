package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Hata214/vanlang-budget-cli/internal/api"
	"github.com/Hata214/vanlang-budget-cli/internal/cli"
	"github.com/Hata214/vanlang-budget-cli/internal/model"
	"github.com/Hata214/vanlang-budget-cli/internal/query"
	"github.com/Hata214/vanlang-budget-cli/internal/store"
	"github.com/Hata214/vanlang-budget-cli/internal/tui"
)

func dashboardCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the financial overview",
		Long: `Fetch incomes, expenses, and loans and show the balance, monthly
income-versus-expense trend, expense categories, and recent activity.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, cfg, err := newClient()
			if err != nil {
				return err
			}

			if plain {
				return plainDashboard(cmd, client, cfg.Months, cfg.RecentLimit)
			}

			expired, err := tui.RunDashboard(tui.DashboardConfig{
				Client:      client,
				Store:       store.New(),
				Months:      cfg.Months,
				RecentLimit: cfg.RecentLimit,
			})
			if err != nil {
				return err
			}
			if expired {
				return friendlyErr(api.ErrUnauthorized)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print a static overview instead of the interactive view")
	return cmd
}

// plainDashboard fetches everything synchronously and prints a static
// overview, for scripts and narrow terminals.
func plainDashboard(cmd *cobra.Command, client apiClient, months, recentLimit int) error {
	ctx := cmd.Context()
	records := store.New()

	incomes, err := client.ListIncomes(ctx)
	if err != nil {
		return friendlyErr(err)
	}
	records.Dispatch(store.IncomesFetched{Records: incomes})

	expenses, err := client.ListExpenses(ctx)
	if err != nil {
		return friendlyErr(err)
	}
	records.Dispatch(store.ExpensesFetched{Records: expenses})

	loans, err := client.ListLoans(ctx)
	if err != nil {
		return friendlyErr(err)
	}
	records.Dispatch(store.LoansFetched{Records: loans})

	state := records.State()
	balance := query.Balance(state.Incomes.Records, state.Expenses.Records)

	fmt.Println(cli.FormatTitle("Financial overview"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Balance:\t%s\n", cli.FormatSignedAmount(balance))
	fmt.Fprintf(w, "Total income:\t%s\n", cli.IncomeStyle.Render(cli.FormatAmount(state.Incomes.Total)))
	fmt.Fprintf(w, "Total expenses:\t%s\n", cli.ExpenseStyle.Render(cli.FormatAmount(state.Expenses.Total)))
	fmt.Fprintf(w, "Loans outstanding:\t%s\n", cli.WarningStyle.Render(cli.FormatAmount(state.Loans.Outstanding)))
	if err := w.Flush(); err != nil {
		return err
	}

	anchor := model.Today()
	incomeSeries := query.MonthlySeries(query.Incomes, state.Incomes.Records, anchor, months)
	expenseSeries := query.MonthlySeries(query.Expenses, state.Expenses.Records, anchor, months)

	fmt.Println()
	fmt.Println(cli.FormatTitle(fmt.Sprintf("Last %d months", months)))
	mw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(mw, "Month\tIncome\tExpenses")
	for i := range incomeSeries {
		fmt.Fprintf(mw, "%s\t%s\t%s\n",
			incomeSeries[i].Date().Format("01/2006"),
			cli.FormatAmount(incomeSeries[i].Total),
			cli.FormatAmount(expenseSeries[i].Total))
	}
	if err := mw.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.FormatTitle("Expenses by category"))
	for _, e := range query.SortedBreakdown(query.Expenses, state.Expenses.Records) {
		fmt.Printf("  %-20s %s\n", e.Category, cli.ExpenseStyle.Render(cli.FormatAmount(e.Amount)))
	}

	fmt.Println()
	fmt.Println(cli.FormatTitle("Recent transactions"))
	for _, tx := range query.RecentActivity(state.Incomes.Records, state.Expenses.Records, recentLimit) {
		sign := "+"
		style := cli.IncomeStyle
		if tx.Kind == model.KindExpense {
			sign = "-"
			style = cli.ExpenseStyle
		}
		fmt.Printf("  %s  %-12s %-28s %s\n",
			cli.FormatDate(tx.Date), tx.Category, tx.Description,
			style.Render(sign+cli.FormatAmount(tx.Amount)))
	}

	return nil
}
