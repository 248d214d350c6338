package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	cases := []struct {
		current, previous string
		want              string
	}{
		{"0", "0", "0%"},
		{"50", "0", "N/A"},
		{"150", "100", "+50.00%"},
		{"75", "100", "-25.00%"},
		{"100", "100", "+0.00%"},
		{"100.5", "100", "+0.50%"},
	}
	for _, c := range cases {
		got := PercentChange(decimal.RequireFromString(c.current), decimal.RequireFromString(c.previous))
		assert.Equal(t, c.want, got, "%s vs %s", c.current, c.previous)
	}
}

func TestPairwiseChanges_SkipsTodayColumn(t *testing.T) {
	amounts := []decimal.Decimal{
		decimal.NewFromInt(999), // today, never compared
		decimal.NewFromInt(200),
		decimal.NewFromInt(100),
		decimal.NewFromInt(0),
		decimal.NewFromInt(50),
	}

	changes := PairwiseChanges(amounts)

	require.Len(t, changes, 3)
	assert.Equal(t, "+100.00%", changes[0])
	assert.Equal(t, "N/A", changes[1])
	assert.Equal(t, "-100.00%", changes[2])
}

func TestChangeTone(t *testing.T) {
	assert.Equal(t, ToneBad, ChangeTone("+10.00%", false), "expense up is bad")
	assert.Equal(t, ToneGood, ChangeTone("-10.00%", false), "expense down is good")
	assert.Equal(t, ToneGood, ChangeTone("+10.00%", true), "income up is good")
	assert.Equal(t, ToneBad, ChangeTone("-10.00%", true), "income down is bad")
	assert.Equal(t, ToneNeutral, ChangeTone(ZeroChange, false))
	assert.Equal(t, ToneNeutral, ChangeTone(ChangeUndefined, true))
}

func TestCategoryDistribution_SharesSumToHundred(t *testing.T) {
	inputs := []Input{
		input(testRef, "Groceries", "Fruit", "300"),
		input(testRef, "Rent", "April rent", "600"),
		input(testRef, "Travel", "Cab", "100"),
	}

	entries := CategoryDistribution(inputs, true)

	require.Len(t, entries, 3)
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Percentage)
	}
	diff := total.Sub(hundred).Abs()
	assert.True(t, diff.LessThan(decimal.RequireFromString("0.0001")), "shares sum to %s", total)
}

func TestCategoryDistribution_ExcludesIncomeAndSortsDescending(t *testing.T) {
	inputs := []Input{
		input(testRef, "Income", "Salary", "5000"),
		input(testRef, "Travel", "Cab", "100"),
		input(testRef, "Rent", "April rent", "600"),
	}

	entries := CategoryDistribution(inputs, true)

	require.Len(t, entries, 2)
	assert.Equal(t, "Rent", entries[0].Name)
	assert.Equal(t, "Travel", entries[1].Name)
}

func TestCategoryDistribution_SliverLabelsHidden(t *testing.T) {
	inputs := []Input{
		input(testRef, "Rent", "April rent", "97"),
		input(testRef, "Stationery", "Pens", "3"),
	}

	entries := CategoryDistribution(inputs, true)

	require.Len(t, entries, 2)
	assert.False(t, entries[0].LabelHidden)
	assert.True(t, entries[1].LabelHidden, "small slice hides its label")
}

func TestCategoryDistribution_SkipsMalformedRows(t *testing.T) {
	inputs := []Input{
		input(testRef, "Rent", "April rent", "abc"),
		input(testRef, "Travel", "Cab", "100"),
	}

	entries := CategoryDistribution(inputs, true)

	require.Len(t, entries, 1)
	assert.Equal(t, "Travel", entries[0].Name)
}

func TestDailyTrend_SparseAscendingNonIncome(t *testing.T) {
	d1 := time.Date(2025, time.April, 3, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, time.April, 7, 18, 0, 0, 0, time.UTC)
	inputs := []Input{
		input(d2, "Travel", "Cab", "40"),
		input(d1, "Groceries", "Fruit", "100"),
		input(d1, "Groceries", "Vegetables", "50"),
		input(d1, "Income", "Salary", "5000"),
	}

	points := DailyTrend(inputs)

	require.Len(t, points, 2, "no synthesized gap days, income excluded")
	assert.Equal(t, 3, points[0].Date.Day())
	assert.True(t, points[0].Amount.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 7, points[1].Date.Day())
	assert.True(t, points[1].Amount.Equal(decimal.NewFromInt(40)))
}

func TestMonthlyTrendByDescription_SortedByTotalDescending(t *testing.T) {
	periods := GeneratePeriods(testRef)
	inputs := []Input{
		input(testRef, "Income", "Salary", "9000"),
		input(testRef, "Travel", "Cab", "50"),
		input(testRef.AddDate(0, -1, 0), "Travel", "Cab", "70"),
		input(testRef, "Rent", "April rent", "1800"),
	}

	rows := MonthlyTrendByDescription(inputs, periods)

	require.Len(t, rows, 2, "income never charts")
	assert.Equal(t, "Rent", rows[0].Category)
	assert.True(t, rows[0].Total.Equal(decimal.NewFromInt(1800)))
	assert.Equal(t, "Travel", rows[1].Category)
	assert.True(t, rows[1].Total.Equal(decimal.NewFromInt(120)))
	assert.True(t, rows[1].Amounts[1].Equal(decimal.NewFromInt(50)))
	assert.True(t, rows[1].Amounts[2].Equal(decimal.NewFromInt(70)))
}

func TestMonthlyTrendByDescription_TodayCountedOnceInTotal(t *testing.T) {
	periods := GeneratePeriods(testRef)
	inputs := []Input{input(testRef, "Rent", "April rent", "1800")}

	rows := MonthlyTrendByDescription(inputs, periods)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Amounts[0].Equal(decimal.NewFromInt(1800)), "today slot")
	assert.True(t, rows[0].Amounts[1].Equal(decimal.NewFromInt(1800)), "current month slot")
	assert.True(t, rows[0].Total.Equal(decimal.NewFromInt(1800)), "overlapping slots never double the total")
}
