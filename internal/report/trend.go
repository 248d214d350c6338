package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Distinguished percent-change results. ChangeUndefined marks a zero
// denominator with a non-zero numerator; it is never coerced to a number.
const (
	ZeroChange      = "0%"
	ChangeUndefined = "N/A"
)

var (
	hundred      = decimal.NewFromInt(100)
	minLabelSpan = decimal.NewFromInt(5)
)

// PercentChange renders the period-over-period change from previous to
// current with an explicit leading sign and two decimals.
func PercentChange(current, previous decimal.Decimal) string {
	if previous.IsZero() {
		if current.IsZero() {
			return ZeroChange
		}
		return ChangeUndefined
	}
	change := current.Sub(previous).Div(previous).Mul(hundred)
	s := change.StringFixed(2) + "%"
	if change.Sign() >= 0 {
		return "+" + s
	}
	return s
}

// PairwiseChanges compares adjacent month columns of a five-period row:
// current month vs last month, and each trailing month vs the one before it.
// The "Today" column is never percent-compared.
func PairwiseChanges(amounts []decimal.Decimal) []string {
	changes := make([]string, 0, 3)
	for i := 1; i+1 < len(amounts); i++ {
		changes = append(changes, PercentChange(amounts[i], amounts[i+1]))
	}
	return changes
}

// Tone classifies a percent change for presentation.
type Tone string

const (
	ToneGood    Tone = "good"
	ToneBad     Tone = "bad"
	ToneNeutral Tone = "neutral"
)

// ChangeTone maps a PercentChange result to a tone. For ordinary expense
// rows an increase is bad; invert flips the polarity for Income and Balance
// rows, where an increase is good.
func ChangeTone(change string, invert bool) Tone {
	if change == ZeroChange || change == ChangeUndefined {
		return ToneNeutral
	}
	increased := change[0] == '+'
	if increased != invert {
		return ToneBad
	}
	return ToneGood
}

// DistributionEntry is one pie segment. LabelHidden suppresses the inline
// label for slivers below the minimum share; the entry still belongs in the
// legend.
type DistributionEntry struct {
	Name        string          `json:"name"`
	Value       decimal.Decimal `json:"value"`
	Percentage  decimal.Decimal `json:"percentage"`
	LabelHidden bool            `json:"labelHidden"`
}

// CategoryDistribution sums absolute magnitudes per category and derives
// each category's share of the whole. Zero-total categories are omitted.
// Rows the engine cannot interpret are ignored.
func CategoryDistribution(inputs []Input, excludeIncome bool) []DistributionEntry {
	totals := make(map[string]decimal.Decimal)
	for _, in := range inputs {
		category, _, amount, ok := in.resolve()
		if !ok {
			continue
		}
		if excludeIncome && IsIncome(category) {
			continue
		}
		totals[category] = totals[category].Add(amount)
	}

	grand := decimal.Zero
	for _, v := range totals {
		grand = grand.Add(v)
	}

	entries := make([]DistributionEntry, 0, len(totals))
	for name, value := range totals {
		if value.IsZero() {
			continue
		}
		pct := value.Div(grand).Mul(hundred)
		entries = append(entries, DistributionEntry{
			Name:        name,
			Value:       value,
			Percentage:  pct,
			LabelHidden: pct.LessThan(minLabelSpan),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Value.Equal(entries[j].Value) {
			return entries[i].Value.GreaterThan(entries[j].Value)
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// DailyPoint is one day's spend in the daily trend series.
type DailyPoint struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// DailyTrend sums absolute non-income magnitudes per distinct calendar day,
// ascending by date. Days without transactions are not synthesized: the
// series is sparse, not a dense calendar.
func DailyTrend(inputs []Input) []DailyPoint {
	totals := make(map[time.Time]decimal.Decimal)
	for _, in := range inputs {
		category, _, amount, ok := in.resolve()
		if !ok || IsIncome(category) {
			continue
		}
		day := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, time.UTC)
		totals[day] = totals[day].Add(amount)
	}

	points := make([]DailyPoint, 0, len(totals))
	for day, amount := range totals {
		points = append(points, DailyPoint{Date: day, Amount: amount})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// TrendRow is one (category, description) pair in the monthly trend chart,
// with a value per period in generator order.
type TrendRow struct {
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Total       decimal.Decimal   `json:"total"`
	Amounts     []decimal.Decimal `json:"amounts"`
}

// MonthlyTrendByDescription builds the grouped-bar dataset: one row per
// (category, description) pair excluding Income, sorted descending by the
// row's total. The "Today" slot overlaps the current month, so the total is
// accrued once per transaction, never from the period slots.
func MonthlyTrendByDescription(inputs []Input, periods []Period) []TrendRow {
	n := len(periods)
	type key struct{ category, description string }
	rows := make(map[key][]decimal.Decimal)
	totals := make(map[key]decimal.Decimal)

	for _, in := range inputs {
		category, description, amount, ok := in.resolve()
		if !ok || IsIncome(category) {
			continue
		}
		k := key{category, description}
		matched := false
		for i, p := range periods {
			if !p.Contains(in.Date) {
				continue
			}
			if rows[k] == nil {
				rows[k] = zeroRow(n)
			}
			rows[k][i] = rows[k][i].Add(amount)
			matched = true
		}
		if matched {
			totals[k] = totals[k].Add(amount)
		}
	}

	result := make([]TrendRow, 0, len(rows))
	for k, amounts := range rows {
		result = append(result, TrendRow{
			Category:    k.category,
			Description: k.description,
			Total:       totals[k],
			Amounts:     amounts,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Total.Equal(result[j].Total) {
			return result[i].Total.GreaterThan(result[j].Total)
		}
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Description < result[j].Description
	})
	return result
}
