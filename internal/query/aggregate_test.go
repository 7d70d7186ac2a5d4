package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hata214/vanlang-budget-cli/internal/model"
)

func amt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func expense(desc, category string, amount int64, date model.Date) model.Expense {
	return model.Expense{
		Description: desc,
		Category:    category,
		Amount:      amt(amount),
		Date:        date,
	}
}

func income(desc, category string, amount int64, date model.Date) model.Income {
	return model.Income{
		Description: desc,
		Category:    category,
		Amount:      amt(amount),
		Date:        date,
	}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name     string
		expenses []model.Expense
		want     decimal.Decimal
	}{
		{
			name: "sums all amounts",
			expenses: []model.Expense{
				expense("Tiền thuê nhà", "Nhà cửa", 4_500_000, model.NewDate(2026, 3, 1)),
				expense("Tiền điện", "Hóa đơn", 800_000, model.NewDate(2026, 3, 5)),
				expense("Tiền nước", "Hóa đơn", 200_000, model.NewDate(2026, 3, 5)),
			},
			want: amt(5_500_000),
		},
		{
			name:     "empty collection is zero",
			expenses: nil,
			want:     decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Total(Expenses, tt.expenses)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestBalance(t *testing.T) {
	incomes := []model.Income{
		income("Lương tháng 3", "Lương", 15_000_000, model.NewDate(2026, 3, 1)),
	}
	expenses := []model.Expense{
		expense("Tiền thuê nhà", "Nhà cửa", 4_500_000, model.NewDate(2026, 3, 1)),
	}

	got := Balance(incomes, expenses)
	assert.True(t, amt(10_500_000).Equal(got), "got %s", got)
}

func TestBalanceNegative(t *testing.T) {
	incomes := []model.Income{
		income("Bán đồ cũ", "Khác", 500_000, model.NewDate(2026, 3, 10)),
	}
	expenses := []model.Expense{
		expense("Sửa xe", "Di chuyển", 1_000_000, model.NewDate(2026, 3, 12)),
	}

	got := Balance(incomes, expenses)
	assert.True(t, amt(-500_000).Equal(got), "got %s", got)
}

func TestOutstanding(t *testing.T) {
	loans := []model.Loan{
		{Lender: "Ngân hàng", Amount: amt(50_000_000), Status: model.LoanActive},
		{Lender: "Bạn bè", Amount: amt(5_000_000), Status: model.LoanPaid},
		{Lender: "Người thân", Amount: amt(2_000_000), Status: model.LoanOverdue},
	}

	// Only ACTIVE principal counts.
	got := Outstanding(loans)
	assert.True(t, amt(50_000_000).Equal(got), "got %s", got)
}

func TestBreakdown(t *testing.T) {
	expenses := []model.Expense{
		expense("Tiền thuê nhà", "Nhà cửa", 4_500_000, model.NewDate(2026, 3, 1)),
		expense("Sửa ống nước", "Nhà cửa", 2_500_000, model.NewDate(2026, 3, 8)),
		expense("Tiền điện", "Hóa đơn", 800_000, model.NewDate(2026, 3, 5)),
	}

	groups := Breakdown(Expenses, expenses)
	require.Len(t, groups, 2)
	assert.True(t, amt(7_000_000).Equal(groups["Nhà cửa"]))
	assert.True(t, amt(800_000).Equal(groups["Hóa đơn"]))
}

func TestBreakdownSumMatchesTotal(t *testing.T) {
	expenses := []model.Expense{
		expense("a", "x", 100, model.NewDate(2026, 1, 1)),
		expense("b", "y", 250, model.NewDate(2026, 1, 2)),
		expense("c", "x", 75, model.NewDate(2026, 1, 3)),
		expense("d", "z", 1, model.NewDate(2026, 1, 4)),
	}

	sum := decimal.Zero
	for _, v := range Breakdown(Expenses, expenses) {
		sum = sum.Add(v)
	}
	assert.True(t, Total(Expenses, expenses).Equal(sum))
}

func TestSortedBreakdown(t *testing.T) {
	expenses := []model.Expense{
		expense("Tiền điện", "Hóa đơn", 800_000, model.NewDate(2026, 3, 5)),
		expense("Tiền thuê nhà", "Nhà cửa", 4_500_000, model.NewDate(2026, 3, 1)),
		expense("Cà phê", "Ăn uống", 800_000, model.NewDate(2026, 3, 2)),
	}

	entries := SortedBreakdown(Expenses, expenses)
	require.Len(t, entries, 3)
	assert.Equal(t, "Nhà cửa", entries[0].Category)
	// Equal amounts fall back to category name order.
	assert.Equal(t, "Hóa đơn", entries[1].Category)
	assert.Equal(t, "Ăn uống", entries[2].Category)
}

func TestMonthlySeries(t *testing.T) {
	anchor := model.NewDate(2026, 3, 15)
	expenses := []model.Expense{
		expense("Tiền thuê nhà", "Nhà cửa", 4_500_000, model.NewDate(2026, 3, 1)),
		expense("Tiền thuê nhà", "Nhà cửa", 4_500_000, model.NewDate(2026, 2, 1)),
		expense("Quà Tết", "Khác", 2_000_000, model.NewDate(2026, 1, 28)),
		expense("Ngoài cửa sổ", "Khác", 999, model.NewDate(2025, 10, 1)),
	}

	series := MonthlySeries(Expenses, expenses, anchor, 3)
	require.Len(t, series, 3)

	assert.Equal(t, time.January, series[0].Month)
	assert.True(t, amt(2_000_000).Equal(series[0].Total))
	assert.Equal(t, time.February, series[1].Month)
	assert.True(t, amt(4_500_000).Equal(series[1].Total))
	assert.Equal(t, time.March, series[2].Month)
	assert.True(t, amt(4_500_000).Equal(series[2].Total))
}

func TestMonthlySeriesEmptyMonths(t *testing.T) {
	anchor := model.NewDate(2026, 6, 30)
	series := MonthlySeries(Expenses, nil, anchor, 6)

	require.Len(t, series, 6)
	assert.Equal(t, time.January, series[0].Month)
	assert.Equal(t, 2026, series[0].Year)
	for _, b := range series {
		assert.True(t, b.Total.IsZero())
	}
}

func TestMonthlySeriesCrossesYearBoundary(t *testing.T) {
	anchor := model.NewDate(2026, 1, 10)
	series := MonthlySeries(Expenses, nil, anchor, 3)

	require.Len(t, series, 3)
	assert.Equal(t, 2025, series[0].Year)
	assert.Equal(t, time.November, series[0].Month)
	assert.Equal(t, 2025, series[1].Year)
	assert.Equal(t, time.December, series[1].Month)
	assert.Equal(t, 2026, series[2].Year)
	assert.Equal(t, time.January, series[2].Month)
}

func TestRecentActivity(t *testing.T) {
	incomes := []model.Income{
		income("Lương tháng 3", "Lương", 15_000_000, model.NewDate(2026, 3, 1)),
		income("Thưởng", "Lương", 3_000_000, model.NewDate(2026, 3, 20)),
	}
	expenses := []model.Expense{
		expense("Tiền thuê nhà", "Nhà cửa", 4_500_000, model.NewDate(2026, 3, 1)),
		expense("Ăn trưa", "Ăn uống", 60_000, model.NewDate(2026, 3, 21)),
	}

	recent := RecentActivity(incomes, expenses, 3)
	require.Len(t, recent, 3)

	assert.Equal(t, "Ăn trưa", recent[0].Description)
	assert.Equal(t, model.KindExpense, recent[0].Kind)
	assert.Equal(t, "Thưởng", recent[1].Description)
	assert.Equal(t, model.KindIncome, recent[1].Kind)
	// Same-date entries keep source order, incomes ahead of expenses.
	assert.Equal(t, "Lương tháng 3", recent[2].Description)
}

func TestRecentActivityShorterThanLimit(t *testing.T) {
	incomes := []model.Income{
		income("Lương", "Lương", 15_000_000, model.NewDate(2026, 3, 1)),
	}

	recent := RecentActivity(incomes, nil, 10)
	require.Len(t, recent, 1)
}
