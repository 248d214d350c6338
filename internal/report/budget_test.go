package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OP3690/finance-tracker/internal/domain"
)

func budget(category string, limit int64) *domain.Budget {
	c := &domain.Category{ID: uuid.New(), Name: category}
	return &domain.Budget{ID: uuid.New(), CategoryID: c.ID, Limit: decimal.NewFromInt(limit), Category: c}
}

func TestBudgetStatus_Tiers(t *testing.T) {
	cases := []struct {
		spent int64
		want  BudgetTier
	}{
		{500, TierOK}, // exactly 50% stays ok
		{499, TierOK},
		{501, TierWarning},
		{750, TierWarning}, // exactly 75% stays warning
		{751, TierCritical},
		{1200, TierCritical},
	}
	for _, c := range cases {
		budgets := []*domain.Budget{budget("Groceries", 1000)}
		inputs := []Input{input(testRef, "Groceries", "Fruit", decimal.NewFromInt(c.spent).String())}

		rows := BudgetStatus(budgets, inputs, BudgetFilter)

		require.Len(t, rows, 1)
		assert.Equal(t, c.want, rows[0].Tier, "spent %d of 1000", c.spent)
	}
}

func TestBudgetStatus_UtilizationClampedRatioRetained(t *testing.T) {
	budgets := []*domain.Budget{budget("Groceries", 1000)}
	inputs := []Input{input(testRef, "Groceries", "Fruit", "1500")}

	rows := BudgetStatus(budgets, inputs, BudgetFilter)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Utilization.Equal(decimal.NewFromInt(100)), "display value clamps")
	assert.True(t, rows[0].Ratio.Equal(decimal.RequireFromString("1.5")), "raw ratio survives")
	assert.Equal(t, TierCritical, rows[0].Tier)
}

func TestBudgetStatus_NoSpendIsZeroOK(t *testing.T) {
	budgets := []*domain.Budget{budget("Groceries", 1000)}

	rows := BudgetStatus(budgets, nil, BudgetFilter)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Spent.IsZero())
	assert.True(t, rows[0].Utilization.IsZero())
	assert.Equal(t, TierOK, rows[0].Tier)
}

func TestBudgetStatus_FilterExcludesSpend(t *testing.T) {
	budgets := []*domain.Budget{budget("Investment", 1000)}
	inputs := []Input{input(testRef, "Investment", "Index fund", "900")}

	rows := BudgetStatus(budgets, inputs, BudgetFilter)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Spent.IsZero(), "budget filter leaves out investments")
}

func TestBudgetStatus_SpendMatchIsCaseInsensitive(t *testing.T) {
	budgets := []*domain.Budget{budget("Groceries", 1000)}
	inputs := []Input{input(testRef, "groceries", "Fruit", "200")}

	rows := BudgetStatus(budgets, inputs, BudgetFilter)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Spent.Equal(decimal.NewFromInt(200)))
}

func TestBudgetStatus_DuplicateBudgetsSummed(t *testing.T) {
	budgets := []*domain.Budget{budget("Groceries", 600), budget("Groceries", 400)}
	inputs := []Input{input(testRef, "Groceries", "Fruit", "500")}

	rows := BudgetStatus(budgets, inputs, BudgetFilter)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Limit.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, TierOK, rows[0].Tier)
}

func TestBudgetStatus_OrphansAggregatedLast(t *testing.T) {
	orphan := &domain.Budget{ID: uuid.New(), CategoryID: uuid.New(), Limit: decimal.NewFromInt(300)}
	orphan2 := &domain.Budget{ID: uuid.New(), CategoryID: uuid.New(), Limit: decimal.NewFromInt(200)}
	budgets := []*domain.Budget{orphan, budget("Groceries", 1000), orphan2}

	rows := BudgetStatus(budgets, nil, BudgetFilter)

	require.Len(t, rows, 2)
	assert.Equal(t, "Groceries", rows[0].Category)
	last := rows[1]
	assert.True(t, last.Orphaned)
	assert.True(t, last.Limit.Equal(decimal.NewFromInt(500)))
}
