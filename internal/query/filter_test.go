package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hata214/vanlang-budget-cli/internal/model"
)

func testExpenses() []model.Expense {
	return []model.Expense{
		expense("Tiền thuê nhà tháng 3", "Nhà cửa", 4_500_000, model.NewDate(2026, 3, 1)),
		expense("Tiền điện", "Hóa đơn", 800_000, model.NewDate(2026, 3, 5)),
		expense("Ăn trưa với đồng nghiệp", "Ăn uống", 120_000, model.NewDate(2026, 3, 10)),
		expense("Tiền thuê nhà tháng 4", "Nhà cửa", 4_500_000, model.NewDate(2026, 4, 1)),
	}
}

func TestApplyNoCriteria(t *testing.T) {
	records := testExpenses()
	got := Apply(Expenses, records, Criteria{})

	// No criteria returns the input slice itself, not a copy.
	assert.Equal(t, &records[0], &got[0])
	assert.Len(t, got, len(records))
}

func TestApplySearch(t *testing.T) {
	tests := []struct {
		name   string
		search string
		want   int
	}{
		{"case-insensitive substring", "tiền", 3},
		{"exact fragment", "thuê nhà", 2},
		{"no match", "xyzzy", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(Expenses, testExpenses(), Criteria{Search: tt.search})
			assert.Len(t, got, tt.want)
		})
	}
}

func TestApplyCategory(t *testing.T) {
	got := Apply(Expenses, testExpenses(), Criteria{Category: "Nhà cửa"})
	require.Len(t, got, 2)
	for _, e := range got {
		assert.Equal(t, "Nhà cửa", e.Category)
	}

	// Category match is exact, not substring.
	assert.Empty(t, Apply(Expenses, testExpenses(), Criteria{Category: "Nhà"}))
}

func TestApplyDateRange(t *testing.T) {
	got := Apply(Expenses, testExpenses(), Criteria{
		StartDate: model.NewDate(2026, 3, 5),
		EndDate:   model.NewDate(2026, 3, 31),
	})
	require.Len(t, got, 2)
	assert.Equal(t, "Tiền điện", got[0].Description)
	assert.Equal(t, "Ăn trưa với đồng nghiệp", got[1].Description)
}

func TestApplyDateRangeInclusive(t *testing.T) {
	got := Apply(Expenses, testExpenses(), Criteria{
		StartDate: model.NewDate(2026, 3, 1),
		EndDate:   model.NewDate(2026, 3, 1),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Tiền thuê nhà tháng 3", got[0].Description)
}

func TestApplyAmountBounds(t *testing.T) {
	got := Apply(Expenses, testExpenses(), Criteria{MinAmount: Amount(amt(3_000_000))})
	assert.Len(t, got, 2)

	got = Apply(Expenses, testExpenses(), Criteria{MaxAmount: Amount(amt(800_000))})
	assert.Len(t, got, 2)

	// Bounds are inclusive.
	got = Apply(Expenses, testExpenses(), Criteria{
		MinAmount: Amount(amt(800_000)),
		MaxAmount: Amount(amt(800_000)),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Tiền điện", got[0].Description)
}

func TestApplyCombinedCriteria(t *testing.T) {
	got := Apply(Expenses, testExpenses(), Criteria{
		Search:    "tiền",
		Category:  "Nhà cửa",
		StartDate: model.NewDate(2026, 3, 1),
		EndDate:   model.NewDate(2026, 3, 31),
	})
	require.Len(t, got, 1)
	assert.Equal(t, "Tiền thuê nhà tháng 3", got[0].Description)
}

func TestApplyIdempotent(t *testing.T) {
	c := Criteria{Search: "tiền", MinAmount: Amount(amt(500_000))}
	once := Apply(Expenses, testExpenses(), c)
	twice := Apply(Expenses, once, c)
	assert.Equal(t, once, twice)
}

func TestApplyPreservesOrder(t *testing.T) {
	got := Apply(Expenses, testExpenses(), Criteria{Search: "tiền"})
	require.Len(t, got, 3)
	assert.Equal(t, "Tiền thuê nhà tháng 3", got[0].Description)
	assert.Equal(t, "Tiền điện", got[1].Description)
	assert.Equal(t, "Tiền thuê nhà tháng 4", got[2].Description)
}

func TestApplyLoanDateRange(t *testing.T) {
	loans := []model.Loan{
		{
			Lender:    "Ngân hàng",
			Amount:    amt(50_000_000),
			StartDate: model.NewDate(2026, 1, 1),
			DueDate:   model.NewDate(2026, 12, 31),
			Status:    model.LoanActive,
		},
		{
			Lender:    "Bạn bè",
			Amount:    amt(5_000_000),
			StartDate: model.NewDate(2026, 2, 1),
			DueDate:   model.NewDate(2026, 5, 1),
			Status:    model.LoanActive,
		},
	}

	// The upper bound compares the due date, so this asks which loans
	// fall due by mid-year.
	got := Apply(Loans, loans, Criteria{EndDate: model.NewDate(2026, 6, 30)})
	require.Len(t, got, 1)
	assert.Equal(t, "Bạn bè", got[0].Lender)
}

func TestApplyLoanLenderAsCategory(t *testing.T) {
	loans := []model.Loan{
		{Lender: "Ngân hàng", Amount: amt(50_000_000)},
		{Lender: "Bạn bè", Amount: amt(5_000_000)},
	}

	got := Apply(Loans, loans, Criteria{Category: "Ngân hàng"})
	require.Len(t, got, 1)
	assert.Equal(t, "Ngân hàng", got[0].Lender)
}

func TestCriteriaIsZero(t *testing.T) {
	assert.True(t, Criteria{}.IsZero())
	assert.False(t, Criteria{Search: "x"}.IsZero())
	// An explicit zero minimum is a real constraint.
	assert.False(t, Criteria{MinAmount: Amount(amt(0))}.IsZero())
}
