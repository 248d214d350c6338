// Package report turns a flat list of transactions into period-bucketed
// summaries, percentage-change trends, category and budget rollups, and
// chart-ready series. It is pure computation: no I/O, no shared state.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrAmountParse is returned when an amount string contains no parsable digits.
var ErrAmountParse = errors.New("amount contains no parsable digits")

// DefaultCurrencySymbol is the glyph used when no formatter is configured.
const DefaultCurrencySymbol = "₹"

// ParseAmount interprets a raw monetary value that may carry currency symbols
// or grouping separators. Everything except digits, '.' and '-' is stripped
// before parsing. A string that yields no digits fails with ErrAmountParse
// instead of silently becoming zero.
func ParseAmount(raw string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if !strings.ContainsAny(cleaned, "0123456789") {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountParse, raw)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrAmountParse, raw)
	}
	return d, nil
}

// CurrencyFormatter renders monetary values with a currency glyph prefix.
type CurrencyFormatter struct {
	Symbol string
}

// Format renders the absolute value of amount with two decimals and Indian
// digit grouping (1,00,000.00). The sign is never embedded; callers decide
// how to present negativity.
func (f CurrencyFormatter) Format(amount decimal.Decimal) string {
	symbol := f.Symbol
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	fixed := amount.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	return symbol + groupIndian(intPart) + "." + fracPart
}

// FormatCurrency renders amount with the default currency symbol.
func FormatCurrency(amount decimal.Decimal) string {
	return CurrencyFormatter{}.Format(amount)
}

// groupIndian inserts separators in the en-IN style: the last three digits
// form one group, the rest group in pairs (12,34,567).
func groupIndian(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	head, tail := digits[:n-3], digits[n-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
