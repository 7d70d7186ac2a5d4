// Package tui renders the interactive views: the financial overview
// dashboard and the filterable record list browser. All derived numbers
// come from the query engine over the record store's current snapshot;
// the views never compute aggregates themselves.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Hata214/vanlang-budget-cli/internal/api"
	"github.com/Hata214/vanlang-budget-cli/internal/cli"
	"github.com/Hata214/vanlang-budget-cli/internal/model"
	"github.com/Hata214/vanlang-budget-cli/internal/query"
	"github.com/Hata214/vanlang-budget-cli/internal/store"
)

// DashboardConfig wires the dashboard to its collaborators.
type DashboardConfig struct {
	Client      *api.Client
	Store       *store.Store
	Months      int
	RecentLimit int
}

// Dashboard is the financial overview: balance cards, the monthly
// income-versus-expense chart, the expense category breakdown, and
// recent activity.
type Dashboard struct {
	client      *api.Client
	store       *store.Store
	spinner     spinner.Model
	months      int
	recentLimit int
	width       int
	expired     bool
	quitting    bool
}

// NewDashboard creates the dashboard model and marks all three
// collections as loading.
func NewDashboard(cfg DashboardConfig) Dashboard {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cli.PrimaryColor)

	cfg.Store.Dispatch(store.IncomesFetchStarted{})
	cfg.Store.Dispatch(store.ExpensesFetchStarted{})
	cfg.Store.Dispatch(store.LoansFetchStarted{})

	return Dashboard{
		client:      cfg.Client,
		store:       cfg.Store,
		spinner:     sp,
		months:      cfg.Months,
		recentLimit: cfg.RecentLimit,
		width:       80,
	}
}

// Init starts the spinner and the three collection fetches.
func (d Dashboard) Init() tea.Cmd {
	return tea.Batch(
		d.spinner.Tick,
		fetchIncomes(d.client),
		fetchExpenses(d.client),
		fetchLoans(d.client),
	)
}

// Update handles messages.
func (d Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			d.quitting = true
			return d, tea.Quit
		case "r":
			d.store.Dispatch(store.IncomesFetchStarted{})
			d.store.Dispatch(store.ExpensesFetchStarted{})
			d.store.Dispatch(store.LoansFetchStarted{})
			return d, tea.Batch(fetchIncomes(d.client), fetchExpenses(d.client), fetchLoans(d.client))
		}

	case tea.WindowSizeMsg:
		d.width = msg.Width

	case incomesLoadedMsg:
		if msg.err != nil {
			d.store.Dispatch(store.IncomesFetchFailed{Err: msg.err.Error()})
		} else {
			d.store.Dispatch(store.IncomesFetched{Records: msg.records})
		}

	case expensesLoadedMsg:
		if msg.err != nil {
			d.store.Dispatch(store.ExpensesFetchFailed{Err: msg.err.Error()})
		} else {
			d.store.Dispatch(store.ExpensesFetched{Records: msg.records})
		}

	case loansLoadedMsg:
		if msg.err != nil {
			d.store.Dispatch(store.LoansFetchFailed{Err: msg.err.Error()})
		} else {
			d.store.Dispatch(store.LoansFetched{Records: msg.records})
		}

	case sessionExpiredMsg:
		d.expired = true
		return d, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd
	}

	return d, nil
}

// View renders the dashboard.
func (d Dashboard) View() string {
	if d.quitting {
		return ""
	}
	if d.expired {
		return cli.FormatError("Session expired, please run 'vlb login' again.") + "\n"
	}

	state := d.store.State()
	if state.Loading() {
		return fmt.Sprintf("\n  %s Loading your records...\n", d.spinner.View())
	}

	sections := []string{
		cli.FormatTitle("Financial overview"),
		d.renderCards(state),
		d.renderMonthlyChart(state),
		d.renderBreakdown(state),
		d.renderRecent(state),
		cli.SubtleStyle.Render("r refresh · q quit"),
	}
	if errs := fetchErrors(state); errs != "" {
		sections = append([]string{sections[0], cli.FormatError(errs)}, sections[1:]...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// renderCards shows the headline totals.
func (d Dashboard) renderCards(state store.State) string {
	balance := query.Balance(state.Incomes.Records, state.Expenses.Records)

	cards := []string{
		cli.RenderBox("Balance", cli.FormatSignedAmount(balance)),
		cli.RenderBox("Income", cli.IncomeStyle.Render(cli.FormatAmount(state.Incomes.Total))),
		cli.RenderBox("Expenses", cli.ExpenseStyle.Render(cli.FormatAmount(state.Expenses.Total))),
		cli.RenderBox("Loans outstanding", cli.WarningStyle.Render(cli.FormatAmount(state.Loans.Outstanding))),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderMonthlyChart draws paired income/expense bars for the trailing
// months.
func (d Dashboard) renderMonthlyChart(state store.State) string {
	anchor := model.Today()
	incomeSeries := query.MonthlySeries(query.Incomes, state.Incomes.Records, anchor, d.months)
	expenseSeries := query.MonthlySeries(query.Expenses, state.Expenses.Records, anchor, d.months)

	chart := renderSeriesPairs(incomeSeries, expenseSeries, chartWidth(d.width))
	return cli.RenderBox(fmt.Sprintf("Income vs expenses (last %d months)", d.months), chart)
}

// renderBreakdown shows expense totals per category, largest first.
func (d Dashboard) renderBreakdown(state store.State) string {
	entries := query.SortedBreakdown(query.Expenses, state.Expenses.Records)
	if len(entries) == 0 {
		return cli.RenderBox("Expenses by category", cli.SubtleStyle.Render("No expenses recorded."))
	}

	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-20s %s", truncate(e.Category, 20), cli.ExpenseStyle.Render(cli.FormatAmount(e.Amount)))
	}
	return cli.RenderBox("Expenses by category", b.String())
}

// renderRecent shows the merged recent activity.
func (d Dashboard) renderRecent(state store.State) string {
	recent := query.RecentActivity(state.Incomes.Records, state.Expenses.Records, d.recentLimit)
	if len(recent) == 0 {
		return cli.RenderBox("Recent transactions", cli.SubtleStyle.Render("No transactions yet."))
	}

	var b strings.Builder
	for i, tx := range recent {
		if i > 0 {
			b.WriteByte('\n')
		}
		amount := cli.FormatAmount(tx.Amount)
		if tx.Kind == model.KindExpense {
			amount = cli.ExpenseStyle.Render("-" + amount)
		} else {
			amount = cli.IncomeStyle.Render("+" + amount)
		}
		fmt.Fprintf(&b, "%s  %-12s %-28s %s",
			cli.FormatDate(tx.Date),
			truncate(tx.Category, 12),
			truncate(tx.Description, 28),
			amount)
	}
	return cli.RenderBox("Recent transactions", b.String())
}

// fetchErrors joins the per-collection fetch errors, if any.
func fetchErrors(state store.State) string {
	var errs []string
	for _, e := range []string{state.Incomes.Err, state.Expenses.Err, state.Loans.Err} {
		if e != "" {
			errs = append(errs, e)
		}
	}
	return strings.Join(errs, "; ")
}

func chartWidth(width int) int {
	w := width - 30
	if w < 20 {
		w = 20
	}
	if w > 60 {
		w = 60
	}
	return w
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

// RunDashboard runs the dashboard program until the user quits. It
// reports whether the session expired mid-run so the command can print
// a login hint.
func RunDashboard(cfg DashboardConfig) (bool, error) {
	p := tea.NewProgram(NewDashboard(cfg))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("dashboard failed: %w", err)
	}
	if d, ok := final.(Dashboard); ok {
		return d.expired, nil
	}
	return false, nil
}
