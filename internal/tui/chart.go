package tui

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Hata214/vanlang-budget-cli/internal/cli"
	"github.com/Hata214/vanlang-budget-cli/internal/query"
)

// renderSeriesPairs draws one income bar and one expense bar per month
// bucket, oldest month first, scaled to the largest value across both
// series.
func renderSeriesPairs(incomes, expenses []query.MonthBucket, width int) string {
	max := decimal.Zero
	for _, b := range incomes {
		if b.Total.GreaterThan(max) {
			max = b.Total
		}
	}
	for _, b := range expenses {
		if b.Total.GreaterThan(max) {
			max = b.Total
		}
	}

	var lines []string
	for i := range incomes {
		label := incomes[i].Date().Format("01/2006")
		lines = append(lines,
			fmt.Sprintf("%s  %s %s",
				label,
				cli.IncomeStyle.Render(renderBar(incomes[i].Total, max, width)),
				cli.IncomeStyle.Render(cli.FormatAmount(incomes[i].Total))),
			fmt.Sprintf("%s  %s %s",
				strings.Repeat(" ", len(label)),
				cli.ExpenseStyle.Render(renderBar(expenses[i].Total, max, width)),
				cli.ExpenseStyle.Render(cli.FormatAmount(expenses[i].Total))),
		)
	}
	return strings.Join(lines, "\n")
}

// renderBar scales a value against the series maximum into a bar of at
// most width cells. Non-zero values always get at least one cell so
// small months stay visible.
func renderBar(value, max decimal.Decimal, width int) string {
	if width < 1 || !value.IsPositive() || !max.IsPositive() {
		return "·"
	}

	cells := value.Mul(decimal.NewFromInt(int64(width))).Div(max).IntPart()
	if cells < 1 {
		cells = 1
	}
	if cells > int64(width) {
		cells = int64(width)
	}
	return strings.Repeat("█", int(cells))
}
