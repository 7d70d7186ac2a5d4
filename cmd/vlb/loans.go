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

func loansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loans",
		Short: "Manage loans and repayments",
	}

	cmd.AddCommand(listLoansCmd())
	cmd.AddCommand(browseLoansCmd())
	cmd.AddCommand(showLoanCmd())
	cmd.AddCommand(addLoanCmd())
	cmd.AddCommand(updateLoanCmd())
	cmd.AddCommand(deleteLoanCmd())
	cmd.AddCommand(paymentsCmd())

	return cmd
}

func listLoansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List loans",
		Long: `Display loans, optionally narrowed by the filter flags. The category
filter matches the lender; the date range spans start date through due
date.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, cfg, err := newClient()
			if err != nil {
				return err
			}
			criteria, err := criteriaFromFlags(cmd)
			if err != nil {
				return err
			}

			loans, err := client.ListLoans(cmd.Context())
			if err != nil {
				return friendlyErr(err)
			}

			filtered := query.Apply(query.Loans, loans, criteria)
			pageNum, size := pageFromFlags(cmd, cfg)
			page := query.Paginate(filtered, pageNum, size)

			if page.TotalItems == 0 {
				fmt.Println(cli.InfoStyle.Render("No loans found."))
				return nil
			}

			printLoanTable(page.Items)
			fmt.Println(pageFooter(page.Number, page.TotalPages, page.TotalItems))
			fmt.Println(cli.SubtleStyle.Render("Outstanding: " + cli.FormatAmount(query.Outstanding(filtered))))
			return nil
		},
	}
	addFilterFlags(cmd)
	return cmd
}

func browseLoansCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse loans interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, cfg, err := newClient()
			if err != nil {
				return err
			}
			criteria, err := criteriaFromFlags(cmd)
			if err != nil {
				return err
			}

			expired, err := tui.RunList(tui.ListConfig[model.Loan]{
				Title:    "Loans",
				View:     query.Loans,
				Fetch:    client.ListLoans,
				Criteria: criteria,
				PageSize: cfg.PageSize,
				Columns:  loanColumns(),
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

func loanColumns() []tui.Column[model.Loan] {
	return []tui.Column[model.Loan]{
		{Title: "Due", Width: 10, Cell: func(l model.Loan) string { return cli.FormatDate(l.DueDate) }},
		{Title: "Lender", Width: 14, Cell: func(l model.Loan) string { return l.Lender }},
		{Title: "Description", Width: 24, Cell: func(l model.Loan) string { return l.Description }},
		{Title: "Status", Width: 8, Cell: func(l model.Loan) string { return loanStatusLabel(l.Status) }},
		{Title: "Amount", Width: 16, Cell: func(l model.Loan) string {
			return cli.WarningStyle.Render(cli.FormatAmount(l.Amount))
		}},
	}
}

func loanStatusLabel(s model.LoanStatus) string {
	switch s {
	case model.LoanActive:
		return cli.InfoStyle.Render("active")
	case model.LoanPaid:
		return cli.IncomeStyle.Render("paid")
	case model.LoanOverdue:
		return cli.ErrorStyle.Render("overdue")
	}
	return string(s)
}

func printLoanTable(loans []model.Loan) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintln(w, "ID\tLENDER\tDESCRIPTION\tSTART\tDUE\tRATE\tSTATUS\tAMOUNT")
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 8), strings.Repeat("-", 14), strings.Repeat("-", 24),
		strings.Repeat("-", 10), strings.Repeat("-", 10), strings.Repeat("-", 6),
		strings.Repeat("-", 8), strings.Repeat("-", 16))
	for _, l := range loans {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.1f%%\t%s\t%s\n",
			l.ID, l.Lender, l.Description,
			cli.FormatDate(l.StartDate), cli.FormatDate(l.DueDate),
			l.InterestRate, loanStatusLabel(l.Status),
			cli.WarningStyle.Render(cli.FormatAmount(l.Amount)))
	}
}

func showLoanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a loan with its repayments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			loan, err := client.GetLoan(cmd.Context(), args[0])
			if err != nil {
				return friendlyErr(err)
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Loan from %s", loan.Lender)))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Description:\t%s\n", loan.Description)
			fmt.Fprintf(w, "Amount:\t%s\n", cli.FormatAmount(loan.Amount))
			fmt.Fprintf(w, "Interest rate:\t%.1f%%\n", loan.InterestRate)
			fmt.Fprintf(w, "Start date:\t%s\n", cli.FormatDate(loan.StartDate))
			fmt.Fprintf(w, "Due date:\t%s\n", cli.FormatDate(loan.DueDate))
			fmt.Fprintf(w, "Status:\t%s\n", loanStatusLabel(loan.Status))
			fmt.Fprintf(w, "Repaid:\t%s\n", cli.IncomeStyle.Render(cli.FormatAmount(loan.Repaid())))
			fmt.Fprintf(w, "Remaining:\t%s\n", cli.WarningStyle.Render(cli.FormatAmount(loan.RemainingBalance())))
			if err := w.Flush(); err != nil {
				return err
			}

			if len(loan.Payments) > 0 {
				fmt.Println()
				fmt.Println(cli.FormatTitle("Repayments"))
				printPaymentTable(loan.Payments)
			}
			return nil
		},
	}
}

func printPaymentTable(payments []model.LoanPayment) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tAMOUNT")
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		strings.Repeat("-", 8), strings.Repeat("-", 10),
		strings.Repeat("-", 24), strings.Repeat("-", 16))
	for _, p := range payments {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			p.ID, cli.FormatDate(p.PaymentDate), p.Description,
			cli.IncomeStyle.Render(cli.FormatAmount(p.Amount)))
	}
}

func addLoanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new loan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			req, err := loanRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			loan, err := client.CreateLoan(cmd.Context(), req)
			if err != nil {
				return friendlyErr(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded loan of %s from %s (%s)",
				cli.FormatAmount(loan.Amount), loan.Lender, loan.ID)))
			return nil
		},
	}
	addLoanFlags(cmd)
	return cmd
}

func updateLoanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			req, err := loanRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			loan, err := client.UpdateLoan(cmd.Context(), args[0], req)
			if err != nil {
				return friendlyErr(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated loan %s", loan.ID)))
			return nil
		},
	}
	addLoanFlags(cmd)
	return cmd
}

func deleteLoanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a loan and its repayments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			if err := client.DeleteLoan(cmd.Context(), args[0]); err != nil {
				return friendlyErr(err)
			}

			fmt.Println(cli.FormatSuccess("Loan deleted"))
			return nil
		},
	}
}

func addLoanFlags(cmd *cobra.Command) {
	cmd.Flags().String("amount", "", "principal in đồng")
	cmd.Flags().String("description", "", "what the loan is for")
	cmd.Flags().String("lender", "", "who the money came from")
	cmd.Flags().Float64("rate", 0, "annual interest rate percentage")
	cmd.Flags().String("start", "", "start date (YYYY-MM-DD, default today)")
	cmd.Flags().String("due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().String("status", string(model.LoanActive), "loan status (ACTIVE, PAID, OVERDUE)")
}

func loanRequestFromFlags(cmd *cobra.Command) (api.LoanRequest, error) {
	amount, err := amountFlag(cmd, "amount")
	if err != nil {
		return api.LoanRequest{}, err
	}
	start, err := dateFlag(cmd, "start", true)
	if err != nil {
		return api.LoanRequest{}, err
	}
	due, err := dateFlag(cmd, "due", false)
	if err != nil {
		return api.LoanRequest{}, err
	}
	description, _ := cmd.Flags().GetString("description")
	lender, _ := cmd.Flags().GetString("lender")
	rate, _ := cmd.Flags().GetFloat64("rate")
	status, _ := cmd.Flags().GetString("status")

	req := api.LoanRequest{
		Amount:       amount,
		Description:  description,
		Lender:       lender,
		InterestRate: rate,
		StartDate:    start,
		DueDate:      due,
		Status:       model.LoanStatus(strings.ToUpper(status)),
	}

	probe := model.Loan{
		Amount:       req.Amount,
		Description:  req.Description,
		Lender:       req.Lender,
		InterestRate: req.InterestRate,
		StartDate:    req.StartDate,
		DueDate:      req.DueDate,
		Status:       req.Status,
	}
	if err := probe.Validate(); err != nil {
		return api.LoanRequest{}, err
	}
	return req, nil
}

func paymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Manage repayments against a loan",
	}

	cmd.AddCommand(listPaymentsCmd())
	cmd.AddCommand(addPaymentCmd())
	cmd.AddCommand(updatePaymentCmd())
	cmd.AddCommand(deletePaymentCmd())

	return cmd
}

func listPaymentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <loan-id>",
		Short: "List repayments against a loan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			payments, err := client.ListLoanPayments(cmd.Context(), args[0])
			if err != nil {
				return friendlyErr(err)
			}
			if len(payments) == 0 {
				fmt.Println(cli.InfoStyle.Render("No repayments recorded."))
				return nil
			}

			printPaymentTable(payments)
			fmt.Println(cli.SubtleStyle.Render("Total repaid: " + cli.FormatAmount(query.Total(query.Payments, payments))))
			return nil
		},
	}
}

func addPaymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <loan-id>",
		Short: "Record a repayment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			req, err := paymentRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			payment, err := client.CreateLoanPayment(cmd.Context(), args[0], req)
			if err != nil {
				return friendlyErr(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded repayment %s (%s)",
				cli.FormatAmount(payment.Amount), payment.ID)))
			return nil
		},
	}
	addPaymentFlags(cmd)
	return cmd
}

func updatePaymentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <loan-id> <payment-id>",
		Short: "Update a repayment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			req, err := paymentRequestFromFlags(cmd)
			if err != nil {
				return err
			}

			payment, err := client.UpdateLoanPayment(cmd.Context(), args[0], args[1], req)
			if err != nil {
				return friendlyErr(err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Updated repayment %s", payment.ID)))
			return nil
		},
	}
	addPaymentFlags(cmd)
	return cmd
}

func deletePaymentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <loan-id> <payment-id>",
		Short: "Delete a repayment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, _, err := newClient()
			if err != nil {
				return err
			}

			if err := client.DeleteLoanPayment(cmd.Context(), args[0], args[1]); err != nil {
				return friendlyErr(err)
			}

			fmt.Println(cli.FormatSuccess("Repayment deleted"))
			return nil
		},
	}
}

func addPaymentFlags(cmd *cobra.Command) {
	cmd.Flags().String("amount", "", "repayment amount in đồng")
	cmd.Flags().String("date", "", "payment date (YYYY-MM-DD, default today)")
	cmd.Flags().String("description", "", "optional note")
	cmd.Flags().StringSlice("attachment", nil, "receipt URL (repeatable)")
}

func paymentRequestFromFlags(cmd *cobra.Command) (api.LoanPaymentRequest, error) {
	amount, err := amountFlag(cmd, "amount")
	if err != nil {
		return api.LoanPaymentRequest{}, err
	}
	date, err := dateFlag(cmd, "date", true)
	if err != nil {
		return api.LoanPaymentRequest{}, err
	}
	description, _ := cmd.Flags().GetString("description")
	attachments, _ := cmd.Flags().GetStringSlice("attachment")

	req := api.LoanPaymentRequest{
		Amount:      amount,
		PaymentDate: date,
		Description: description,
		Attachments: attachments,
	}

	probe := model.LoanPayment{
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
	}
	if err := probe.Validate(); err != nil {
		return api.LoanPaymentRequest{}, err
	}
	return req, nil
}
