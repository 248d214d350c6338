package report

import (
	"sort"
	"strings"

	"github.com/OP3690/finance-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

// BudgetTier classifies how much of a budget has been consumed.
type BudgetTier string

const (
	TierOK       BudgetTier = "ok"
	TierWarning  BudgetTier = "warning"
	TierCritical BudgetTier = "critical"
)

var (
	tierOKCeiling      = decimal.NewFromInt(50)
	tierWarningCeiling = decimal.NewFromInt(75)
)

// BudgetStatusRow is the rollup of one budgeted category for the month.
// Utilization is clamped to [0,100] for display; Ratio keeps the unclamped
// spent/limit fraction for alerting. Orphaned flags a budget whose category
// no longer exists.
type BudgetStatusRow struct {
	Category    string          `json:"category"`
	Limit       decimal.Decimal `json:"limit"`
	Spent       decimal.Decimal `json:"spent"`
	Utilization decimal.Decimal `json:"utilization"`
	Ratio       decimal.Decimal `json:"ratio"`
	Tier        BudgetTier      `json:"tier"`
	Orphaned    bool            `json:"orphaned"`
}

// BudgetStatus matches per-category spend in monthInputs against the
// configured limits. Categories in the filter's exclusion set contribute no
// spend. Duplicate budgets for one category are summed rather than rejected:
// the write path enforces uniqueness, but historical data may not. Orphaned
// budgets become flagged rows instead of aborting the report.
func BudgetStatus(budgets []*domain.Budget, monthInputs []Input, filter Filter) []BudgetStatusRow {
	spent := make(map[string]decimal.Decimal)
	for _, in := range monthInputs {
		category, _, amount, ok := in.resolve()
		if !ok || filter.Excludes(category) {
			continue
		}
		spent[strings.ToLower(category)] = spent[strings.ToLower(category)].Add(amount)
	}

	limits := make(map[string]decimal.Decimal)
	orphaned := decimal.Zero
	haveOrphans := false
	for _, b := range budgets {
		if b.Category == nil {
			orphaned = orphaned.Add(b.Limit)
			haveOrphans = true
			continue
		}
		limits[b.Category.Name] = limits[b.Category.Name].Add(b.Limit)
	}

	rows := make([]BudgetStatusRow, 0, len(limits)+1)
	for name, limit := range limits {
		rows = append(rows, budgetRow(name, limit, spent[strings.ToLower(name)], false))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Category < rows[j].Category })

	if haveOrphans {
		rows = append(rows, budgetRow("", orphaned, decimal.Zero, true))
	}
	return rows
}

func budgetRow(category string, limit, spent decimal.Decimal, orphaned bool) BudgetStatusRow {
	row := BudgetStatusRow{
		Category:    category,
		Limit:       limit,
		Spent:       spent,
		Utilization: decimal.Zero,
		Ratio:       decimal.Zero,
		Tier:        TierOK,
		Orphaned:    orphaned,
	}
	if limit.IsPositive() {
		row.Ratio = spent.Div(limit)
		row.Utilization = row.Ratio.Mul(hundred)
		if row.Utilization.GreaterThan(hundred) {
			row.Utilization = hundred
		}
		if row.Utilization.IsNegative() {
			row.Utilization = decimal.Zero
		}
		row.Tier = classifyTier(row.Ratio.Mul(hundred))
	}
	return row
}

// classifyTier buckets an unclamped utilization percentage. Boundary values
// belong to the lower tier: exactly 50 is ok, exactly 75 is warning.
func classifyTier(pct decimal.Decimal) BudgetTier {
	switch {
	case pct.LessThanOrEqual(tierOKCeiling):
		return TierOK
	case pct.LessThanOrEqual(tierWarningCeiling):
		return TierWarning
	default:
		return TierCritical
	}
}
