package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MonthUpshot is one month of the income/expense/investment/savings recap.
type MonthUpshot struct {
	Label       string          `json:"month"`
	Income      decimal.Decimal `json:"income"`
	Expenses    decimal.Decimal `json:"expenses"`
	Investments decimal.Decimal `json:"investments"`
	Savings     decimal.Decimal `json:"savings"`
}

// MonthlyUpshots recaps the given number of calendar months ending at ref,
// newest first. Investments are tracked separately and do not count as
// expenses; savings is income minus expenses.
func MonthlyUpshots(inputs []Input, ref time.Time, months int) []MonthUpshot {
	if months <= 0 {
		return nil
	}

	windows := make([]Period, months)
	upshots := make([]MonthUpshot, months)
	anchor := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < months; i++ {
		m := anchor.AddDate(0, -i, 0)
		windows[i] = Period{Label: FormatMonthYear(m), year: m.Year(), month: m.Month()}
		upshots[i] = MonthUpshot{
			Label:       windows[i].Label,
			Income:      decimal.Zero,
			Expenses:    decimal.Zero,
			Investments: decimal.Zero,
			Savings:     decimal.Zero,
		}
	}

	for _, in := range inputs {
		category, _, amount, ok := in.resolve()
		if !ok {
			continue
		}
		for i, w := range windows {
			if !w.Contains(in.Date) {
				continue
			}
			switch {
			case IsIncome(category):
				upshots[i].Income = upshots[i].Income.Add(amount)
			case strings.EqualFold(category, CategoryInvestment):
				upshots[i].Investments = upshots[i].Investments.Add(amount)
			default:
				upshots[i].Expenses = upshots[i].Expenses.Add(amount)
			}
			break // trailing month windows never overlap
		}
	}

	for i := range upshots {
		upshots[i].Savings = upshots[i].Income.Sub(upshots[i].Expenses)
	}
	return upshots
}
