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

func incomesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incomes",
		Short: "Manage income entries",
	}

	cmd.AddCommand(listIncomesCmd())
	cmd.AddCommand(browseIncomesCmd())
	cmd.AddCommand(addIncomeCmd())
	cmd.AddCommand(updateIncomeCmd())
	cmd.AddCommand(deleteIncomeCmd())
	cmd.AddCommand(incomeCategoriesCmd())

	return cmd
}

func listIncomesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List income entries",
		Long:  `Display income entries, optionally narrowed by the filter flags and paginated.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, cfg, err := newClient()
			if err != nil {
				return err
			}
			criteria, err := criteriaFromFlags(cmd)
			if err != nil {
				return err
			}

			incomes, err := client.ListIncomes(cmd.Context())
			if err != nil {
				return friendlyErr(err)
			}

			filtered := query.Apply(query.Incomes, incomes, criteria)
			pageNum, size := pageFromFlags(cmd, cfg)
			page := query.Paginate(filtered, pageNum, size)

			if page.TotalItems == 0 {
				fmt.Println(cli.InfoStyle.Render("No income entries found."))
				return nil
			}

			printIncomeTable(page.Items)
			fmt.Println(pageFooter(page.Number, page.TotalPages, page.TotalItems))
			fmt.Println(cli.SubtleStyle.Render("Filtered total: " + cli.FormatAmount(query.Total(query.Incomes, filtered))))
			return nil
		},
	}
	addFilterFlags(cmd)
	return cmd
}

func browseIncomesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse income entries interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, cfg, err := newClient()
			if err != nil {
				return err
			}
			criteria, err := criteriaFromFlags(cmd)
			if err != nil {
				return err
			}

			expired, err := tui.RunList(tui.ListConfig[model.Income]{
				Title:    "Incomes",
				View:     query.Incomes,
				Fetch:    client.ListIncomes,
				Criteria: criteria,
				PageSize: cfg.PageSize,
				Columns:  incomeColumns(),
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

func incomeColumns() []tui.Column[model.Income] {
	return []tui.Column[model.Income]{
		{Title: "Date", Width: 10, Cell: func(i model.Income) string { return cli.FormatDate(i.Date) }},
		{Title: "Category", Width: 14, Cell: func(i model.Income) string { return i.Category }},
		{Title: "Description", Width: 32, Cell: func(i model.Income) string { return i.Description }},
		{Title: "Amount", Width: 16, Cell: func(i model.Income) string {
			return cli.IncomeStyle.Render(cli.FormatAmount(i.Amount))
		}},
	}
}

func printIncomeTable(incomes []model.Income) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintln(w, "DATE\tCATEGORY\tDESCRIPTION\tAMOUNT")
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 10), strings.Repeat("-", 14),
		strings.Repeat("-", 32), strings.Repeat("-", 16))
	for _, i := range incomes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			cli.FormatDate(i.Date), i.Category, i.Description,
			cli.IncomeStyle.Render(cli.FormatAmount(i.Amount)))
	}
}

func addIncomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new income entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			req, err := incomeRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			income, err := client.CreateIncome(cmd.Context(), req)
			if err != nil {
				return friendlyErr(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded income %s (%s)",
				cli.FormatAmount(income.Amount), income.ID)))
			return nil
		},
	}
	addIncomeFlags(cmd)
	return cmd
}

func updateIncomeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an income entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			req, err := incomeRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			income, err := client.UpdateIncome(cmd.Context(), args[0], req)
			if err != nil {
				return friendlyErr(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated income %s", income.ID)))
			return nil
		},
	}
	addIncomeFlags(cmd)
	return cmd
}

func deleteIncomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an income entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			if err := client.DeleteIncome(cmd.Context(), args[0]); err != nil {
				return friendlyErr(err)
			}

			fmt.Println(cli.FormatSuccess("Income entry deleted"))
			return nil
		},
	}
}

func incomeCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List known income categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			categories, err := client.IncomeCategories(cmd.Context())
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

func addIncomeFlags(cmd *cobra.Command) {
	cmd.Flags().String("amount", "", "amount in đồng")
	cmd.Flags().String("description", "", "what the income was")
	cmd.Flags().String("category", "", "income category")
	cmd.Flags().String("date", "", "date received (YYYY-MM-DD, default today)")
}

func incomeRequestFromFlags(cmd *cobra.Command) (api.IncomeRequest, error) {
	amount, err := amountFlag(cmd, "amount")
	if err != nil {
		return api.IncomeRequest{}, err
	}
	date, err := dateFlag(cmd, "date", true)
	if err != nil {
		return api.IncomeRequest{}, err
	}
	description, _ := cmd.Flags().GetString("description")
	category, _ := cmd.Flags().GetString("category")

	req := api.IncomeRequest{
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
	}

	// Validate the way the forms do before spending a round-trip.
	probe := model.Income{
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
	}
	if err := probe.Validate(); err != nil {
		return api.IncomeRequest{}, err
	}
	return req, nil
}
