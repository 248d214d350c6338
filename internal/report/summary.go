package report

import (
	"sort"
	"strings"
	"time"

	"github.com/OP3690/finance-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

// Input is one transaction as handed to the aggregation engine. Amount stays
// in raw string form so rows that predate amount normalization are counted as
// skipped instead of aborting the report.
type Input struct {
	Date        time.Time
	Category    string
	Description string
	Amount      string
}

// FromTransactions converts stored transactions into engine inputs.
func FromTransactions(transactions []*domain.Transaction) []Input {
	inputs := make([]Input, len(transactions))
	for i, t := range transactions {
		inputs[i] = Input{
			Date:        t.Date,
			Category:    t.Category,
			Description: t.Description,
			Amount:      t.Amount.String(),
		}
	}
	return inputs
}

// resolve validates an input row, returning the trimmed category and
// description plus the parsed magnitude. ok is false for rows the engine
// must skip: unparsable amounts, zero dates, blank categories.
func (in Input) resolve() (category, description string, amount decimal.Decimal, ok bool) {
	if in.Date.IsZero() {
		return "", "", decimal.Zero, false
	}
	category = strings.TrimSpace(in.Category)
	if category == "" {
		return "", "", decimal.Zero, false
	}
	description = strings.TrimSpace(in.Description)
	amount, err := ParseAmount(in.Amount)
	if err != nil {
		return "", "", decimal.Zero, false
	}
	return category, description, amount.Abs(), true
}

// DescriptionSummary is one description row: a magnitude per period, in
// generator order.
type DescriptionSummary struct {
	Name    string
	Amounts []decimal.Decimal
}

// CategorySummary is one category with its per-period totals and its
// description rows.
type CategorySummary struct {
	Name         string
	Totals       []decimal.Decimal
	Descriptions []DescriptionSummary
}

// PeriodSummary is the full five-period report: nested category/description
// rows plus flat income, expense and balance totals. Skipped counts rows the
// engine could not interpret; a report with a non-zero Skipped is incomplete
// and should say so.
type PeriodSummary struct {
	Periods      []Period
	Categories   []CategorySummary
	TotalIncome  []decimal.Decimal
	TotalExpense []decimal.Decimal
	Balance      []decimal.Decimal
	Skipped      int
}

// Summarize groups transactions by category and description and buckets
// their magnitudes into the given periods. A transaction is added to every
// period that contains its date, so the Today/Current-Month overlap is
// preserved. Income never contributes to expense totals regardless of sign.
func Summarize(inputs []Input, periods []Period) *PeriodSummary {
	n := len(periods)
	summary := &PeriodSummary{
		Periods:      periods,
		TotalIncome:  zeroRow(n),
		TotalExpense: zeroRow(n),
		Balance:      zeroRow(n),
	}

	grouped := make(map[string]map[string][]decimal.Decimal)
	for _, in := range inputs {
		category, description, amount, ok := in.resolve()
		if !ok {
			summary.Skipped++
			continue
		}

		for i, p := range periods {
			if !p.Contains(in.Date) {
				continue
			}
			if grouped[category] == nil {
				grouped[category] = make(map[string][]decimal.Decimal)
			}
			if grouped[category][description] == nil {
				grouped[category][description] = zeroRow(n)
			}
			grouped[category][description][i] = grouped[category][description][i].Add(amount)

			if IsIncome(category) {
				summary.TotalIncome[i] = summary.TotalIncome[i].Add(amount)
			} else {
				summary.TotalExpense[i] = summary.TotalExpense[i].Add(amount)
			}
		}
	}

	for i := 0; i < n; i++ {
		summary.Balance[i] = summary.TotalIncome[i].Sub(summary.TotalExpense[i])
	}

	summary.Categories = orderCategories(grouped, n)
	return summary
}

// orderCategories flattens the grouped map into presentation order: Income
// first, the rest alphabetical; descriptions alphabetical within a category.
func orderCategories(grouped map[string]map[string][]decimal.Decimal, n int) []CategorySummary {
	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if IsIncome(names[i]) != IsIncome(names[j]) {
			return IsIncome(names[i])
		}
		return names[i] < names[j]
	})

	categories := make([]CategorySummary, 0, len(names))
	for _, name := range names {
		byDescription := grouped[name]
		descriptions := make([]string, 0, len(byDescription))
		for d := range byDescription {
			descriptions = append(descriptions, d)
		}
		sort.Strings(descriptions)

		cs := CategorySummary{Name: name, Totals: zeroRow(n)}
		for _, d := range descriptions {
			amounts := byDescription[d]
			cs.Descriptions = append(cs.Descriptions, DescriptionSummary{Name: d, Amounts: amounts})
			for i, a := range amounts {
				cs.Totals[i] = cs.Totals[i].Add(a)
			}
		}
		categories = append(categories, cs)
	}
	return categories
}

// OpeningBalance is the net balance carried forward from the month before
// ref: that month's income minus its non-income expense.
func OpeningBalance(inputs []Input, ref time.Time) decimal.Decimal {
	prev := PreviousMonthPeriod(ref)
	income := decimal.Zero
	expense := decimal.Zero
	for _, in := range inputs {
		category, _, amount, ok := in.resolve()
		if !ok || !prev.Contains(in.Date) {
			continue
		}
		if IsIncome(category) {
			income = income.Add(amount)
		} else {
			expense = expense.Add(amount)
		}
	}
	return income.Sub(expense)
}

func zeroRow(n int) []decimal.Decimal {
	row := make([]decimal.Decimal, n)
	for i := range row {
		row[i] = decimal.Zero
	}
	return row
}
