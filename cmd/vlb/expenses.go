package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Hata214/vanlang-budget-cli/internal/api"
	"github.com/Hata214/vanlang-budget-cli/internal/cli"
	"github.com/Hata214/vanlang-budget-cli/internal/model"
	"github.com/Hata214/vanlang-budget-cli/internal/query"
	"github.com/Hata214/vanlang-budget-cli/internal/tui"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Manage expense entries",
	}

	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(browseExpensesCmd())
	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(updateExpenseCmd())
	cmd.AddCommand(deleteExpenseCmd())
	cmd.AddCommand(expenseCategoriesCmd())

	return cmd
}

func listExpensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expense entries",
		Long:  `Display expense entries, optionally narrowed by the filter flags and paginated.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, cfg, err := newClient()
			if err != nil {
				return err
			}
			criteria, err := criteriaFromFlags(cmd)
			if err != nil {
				return err
			}

			expenses, err := client.ListExpenses(cmd.Context())
			if err != nil {
				return friendlyErr(err)
			}

			filtered := query.Apply(query.Expenses, expenses, criteria)
			pageNum, size := pageFromFlags(cmd, cfg)
			page := query.Paginate(filtered, pageNum, size)

			if page.TotalItems == 0 {
				fmt.Println(cli.InfoStyle.Render("No expense entries found."))
				return nil
			}

			printExpenseTable(page.Items)
			fmt.Println(pageFooter(page.Number, page.TotalPages, page.TotalItems))
			fmt.Println(cli.SubtleStyle.Render("Filtered total: " + cli.FormatAmount(query.Total(query.Expenses, filtered))))
			return nil
		},
	}
	addFilterFlags(cmd)
	return cmd
}

func browseExpensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse expense entries interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, cfg, err := newClient()
			if err != nil {
				return err
			}
			criteria, err := criteriaFromFlags(cmd)
			if err != nil {
				return err
			}

			expired, err := tui.RunList(tui.ListConfig[model.Expense]{
				Title:    "Expenses",
				View:     query.Expenses,
				Fetch:    client.ListExpenses,
				Criteria: criteria,
				PageSize: cfg.PageSize,
				Columns:  expenseColumns(),
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
	addFilterFlags(cmd)
	return cmd
}

func expenseColumns() []tui.Column[model.Expense] {
	return []tui.Column[model.Expense]{
		{Title: "Date", Width: 10, Cell: func(e model.Expense) string { return cli.FormatDate(e.Date) }},
		{Title: "Category", Width: 14, Cell: func(e model.Expense) string { return e.Category }},
		{Title: "Description", Width: 26, Cell: func(e model.Expense) string { return e.Description }},
		{Title: "Where", Width: 18, Cell: func(e model.Expense) string {
			if e.Location == nil {
				return ""
			}
			return e.Location.Address
		}},
		{Title: "Amount", Width: 16, Cell: func(e model.Expense) string {
			return cli.ExpenseStyle.Render(cli.FormatAmount(e.Amount))
		}},
	}
}

func printExpenseTable(expenses []model.Expense) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintln(w, "DATE\tCATEGORY\tDESCRIPTION\tWHERE\tAMOUNT")
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 10), strings.Repeat("-", 14),
		strings.Repeat("-", 26), strings.Repeat("-", 18), strings.Repeat("-", 16))
	for _, e := range expenses {
		address := ""
		if e.Location != nil {
			address = e.Location.Address
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			cli.FormatDate(e.Date), e.Category, e.Description, address,
			cli.ExpenseStyle.Render(cli.FormatAmount(e.Amount)))
	}
}

func addExpenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			req, err := expenseRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			expense, err := client.CreateExpense(cmd.Context(), req)
			if err != nil {
				return friendlyErr(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded expense %s (%s)",
				cli.FormatAmount(expense.Amount), expense.ID)))
			return nil
		},
	}
	addExpenseFlags(cmd)
	return cmd
}

func updateExpenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an expense entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			req, err := expenseRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			expense, err := client.UpdateExpense(cmd.Context(), args[0], req)
			if err != nil {
				return friendlyErr(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated expense %s", expense.ID)))
			return nil
		},
	}
	addExpenseFlags(cmd)
	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			if err := client.DeleteExpense(cmd.Context(), args[0]); err != nil {
				return friendlyErr(err)
			}

			fmt.Println(cli.FormatSuccess("Expense entry deleted"))
			return nil
		},
	}
}

func expenseCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List known expense categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			categories, err := client.ExpenseCategories(cmd.Context())
			if err != nil {
				return friendlyErr(err)
			}
			for _, c := range categories {
				fmt.Println(c)
			}
			return nil
		},
	}
}

func addExpenseFlags(cmd *cobra.Command) {
	cmd.Flags().String("amount", "", "amount in đồng")
	cmd.Flags().String("description", "", "what the money went to")
	cmd.Flags().String("category", "", "expense category")
	cmd.Flags().String("date", "", "date spent (YYYY-MM-DD, default today)")
	cmd.Flags().Float64("lat", 0, "latitude of where the expense happened")
	cmd.Flags().Float64("lng", 0, "longitude of where the expense happened")
}

func expenseRequestFromFlags(cmd *cobra.Command) (api.ExpenseRequest, error) {
	amount, err := amountFlag(cmd, "amount")
	if err != nil {
		return api.ExpenseRequest{}, err
	}
	date, err := dateFlag(cmd, "date", true)
	if err != nil {
		return api.ExpenseRequest{}, err
	}
	description, _ := cmd.Flags().GetString("description")
	category, _ := cmd.Flags().GetString("category")

	req := api.ExpenseRequest{
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
	}

	// The location is only sent when both coordinates were given; the
	// server fills in the address.
	if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
		if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lng") {
			return api.ExpenseRequest{}, fmt.Errorf("--lat and --lng must be given together")
		}
		lat, _ := cmd.Flags().GetFloat64("lat")
		lng, _ := cmd.Flags().GetFloat64("lng")
		req.Location = &model.Location{Lat: lat, Lng: lng}
	}

	probe := model.Expense{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
	}
	if err := probe.Validate(); err != nil {
		return api.ExpenseRequest{}, err
	}
	return req, nil
}
