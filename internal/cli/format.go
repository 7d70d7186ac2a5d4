package cli

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Hata214/vanlang-budget-cli/internal/model"
)

// FormatAmount renders a monetary amount with thousands separators and
// the currency mark, e.g. 5000000 -> "5.000.000 ₫". Amounts are đồng,
// which has no subunit, so fractional parts only appear when the
// server sends them.
func FormatAmount(d decimal.Decimal) string {
	s := d.Abs().String()

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	b.WriteString(" ₫")
	return b.String()
}

// FormatSignedAmount renders an amount colored by sign: income green,
// expense red.
func FormatSignedAmount(d decimal.Decimal) string {
	if d.IsNegative() {
		return ExpenseStyle.Render(FormatAmount(d))
	}
	return IncomeStyle.Render(FormatAmount(d))
}

// FormatDate renders a calendar date for display.
func FormatDate(d model.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Format("02/01/2006")
}
