package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Hata214/vanlang-budget-cli/internal/api"
	"github.com/Hata214/vanlang-budget-cli/internal/cli"
	"github.com/Hata214/vanlang-budget-cli/internal/query"
)

// Column describes one table column. The cell function is the only
// accessor: a plain field read and a derived value look the same to
// the table.
type Column[T any] struct {
	Cell  func(T) string
	Title string
	Width int
}

// ListConfig wires a list browser for one record kind.
type ListConfig[T any] struct {
	// Fetch loads the collection from the server.
	Fetch func(context.Context) ([]T, error)
	// OnLoaded runs on a successful fetch, before rendering. The
	// record store's dispatch goes here so browsing keeps the store
	// consistent.
	OnLoaded func([]T)
	View     query.View[T]
	Title    string
	Columns  []Column[T]
	Criteria query.Criteria
	PageSize int
}

// listLoadedMsg carries a fetched collection into the list model.
type listLoadedMsg[T any] struct {
	err     error
	records []T
}

// List is an interactive filterable, paginated record table. Typing in
// the search box narrows by description and resets to page 1; paging
// keys clamp at the bounds.
type List[T any] struct {
	cfg       ListConfig[T]
	pager     *query.Pager
	search    textinput.Model
	spinner   spinner.Model
	records   []T
	criteria  query.Criteria
	err       string
	width     int
	loading   bool
	searching bool
	expired   bool
	quitting  bool
}

// NewList creates a list browser.
func NewList[T any](cfg ListConfig[T]) List[T] {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cli.PrimaryColor)

	search := textinput.New()
	search.Placeholder = "search description"
	search.Prompt = "/ "
	search.CharLimit = 80
	search.SetValue(cfg.Criteria.Search)

	if cfg.PageSize < 1 {
		cfg.PageSize = 10
	}

	return List[T]{
		cfg:      cfg,
		pager:    query.NewPager(cfg.PageSize),
		search:   search,
		spinner:  sp,
		criteria: cfg.Criteria,
		loading:  true,
		width:    80,
	}
}

// Init starts the spinner and the fetch.
func (l List[T]) Init() tea.Cmd {
	return tea.Batch(l.spinner.Tick, l.fetch())
}

func (l List[T]) fetch() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		records, err := l.cfg.Fetch(ctx)
		if errors.Is(err, api.ErrUnauthorized) {
			return sessionExpiredMsg{}
		}
		return listLoadedMsg[T]{records: records, err: err}
	}
}

// Update handles messages.
func (l List[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if l.searching {
			return l.updateSearch(msg)
		}
		return l.updateKeys(msg)

	case tea.WindowSizeMsg:
		l.width = msg.Width

	case listLoadedMsg[T]:
		l.loading = false
		if msg.err != nil {
			l.err = msg.err.Error()
			break
		}
		l.err = ""
		l.records = msg.records
		if l.cfg.OnLoaded != nil {
			l.cfg.OnLoaded(msg.records)
		}

	case sessionExpiredMsg:
		l.expired = true
		return l, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	}

	return l, nil
}

// updateSearch routes keys into the search box. Every edit reapplies
// the criteria and snaps back to page 1.
func (l List[T]) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		l.searching = false
		l.search.Blur()
		return l, nil
	}

	var cmd tea.Cmd
	l.search, cmd = l.search.Update(msg)
	if l.criteria.Search != l.search.Value() {
		l.criteria.Search = l.search.Value()
		l.pager.Reset()
	}
	return l, cmd
}

func (l List[T]) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		l.quitting = true
		return l, tea.Quit
	case "/":
		l.searching = true
		l.search.Focus()
		return l, textinput.Blink
	case "left", "h":
		l.pager.Prev()
	case "right", "l":
		l.pager.Next()
	case "+":
		l.pager.SetSize(l.pager.Size() + 5)
	case "-":
		if l.pager.Size() > 5 {
			l.pager.SetSize(l.pager.Size() - 5)
		}
	case "c":
		l.criteria = query.Criteria{}
		l.search.SetValue("")
		l.pager.Reset()
	case "r":
		l.loading = true
		return l, l.fetch()
	}
	return l, nil
}

// View renders the table.
func (l List[T]) View() string {
	if l.quitting {
		return ""
	}
	if l.expired {
		return cli.FormatError("Session expired, please run 'vlb login' again.") + "\n"
	}
	if l.loading {
		return fmt.Sprintf("\n  %s Loading %s...\n", l.spinner.View(), strings.ToLower(l.cfg.Title))
	}

	filtered := query.Apply(l.cfg.View, l.records, l.criteria)
	page := query.Slice(l.pager, filtered)

	sections := []string{cli.FormatTitle(l.cfg.Title)}
	if l.err != "" {
		sections = append(sections, cli.FormatError(l.err))
	}
	sections = append(sections,
		l.search.View(),
		l.renderTable(page.Items),
		cli.SubtleStyle.Render(fmt.Sprintf("page %d/%d · %d records · / search · ←/→ page · +/- size · c clear · r refresh · q quit",
			page.Number, page.TotalPages, page.TotalItems)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (l List[T]) renderTable(items []T) string {
	header := make([]string, 0, len(l.cfg.Columns))
	for _, col := range l.cfg.Columns {
		header = append(header, pad(col.Title, col.Width))
	}
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(strings.Join(header, "  ")),
	}

	if len(items) == 0 {
		lines = append(lines, cli.SubtleStyle.Render("No matching records."))
	}
	for _, item := range items {
		row := make([]string, 0, len(l.cfg.Columns))
		for _, col := range l.cfg.Columns {
			row = append(row, pad(col.Cell(item), col.Width))
		}
		lines = append(lines, strings.Join(row, "  "))
	}

	return strings.Join(lines, "\n")
}

// pad truncates or right-pads a cell to the column width, counting
// printable width so styled cells keep alignment.
func pad(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		return truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// RunList runs a list browser until the user quits, reporting whether
// the session expired mid-run.
func RunList[T any](cfg ListConfig[T]) (bool, error) {
	p := tea.NewProgram(NewList(cfg))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("list view failed: %w", err)
	}
	if l, ok := final.(List[T]); ok {
		return l.expired, nil
	}
	return false, nil
}
