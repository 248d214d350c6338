package report

import "strings"

// Category names with special rollup semantics.
const (
	CategoryIncome     = "Income"
	CategoryInvestment = "Investment"
	CategoryBills      = "Recharge/Bill/EMI Payment"
)

// Filter is a named set of categories excluded from a rollup. Membership is
// case-insensitive. Every report that needs an exclusion policy takes one of
// these instead of re-deriving its own list.
type Filter struct {
	name     string
	excluded map[string]struct{}
}

// NewFilter builds a filter that excludes the given category names.
func NewFilter(name string, excluded ...string) Filter {
	set := make(map[string]struct{}, len(excluded))
	for _, e := range excluded {
		set[strings.ToLower(e)] = struct{}{}
	}
	return Filter{name: name, excluded: set}
}

// Name returns the filter's name.
func (f Filter) Name() string { return f.name }

// Excludes reports whether category is excluded by the filter.
func (f Filter) Excludes(category string) bool {
	_, ok := f.excluded[strings.ToLower(strings.TrimSpace(category))]
	return ok
}

// Includes is the complement of Excludes.
func (f Filter) Includes(category string) bool { return !f.Excludes(category) }

// The shared exclusion policies. The source of this application hardcoded a
// different ad hoc list in nearly every view; these three cover all of them.
var (
	// ExpenseFilter backs expenditure totals: everything except Income counts.
	ExpenseFilter = NewFilter("expense", CategoryIncome)

	// HouseholdFilter backs the "household expenses" figure, which also leaves
	// out investments and bill/EMI payments.
	HouseholdFilter = NewFilter("household", CategoryIncome, CategoryInvestment, CategoryBills)

	// BudgetFilter backs budget utilization, which leaves out income and
	// investments.
	BudgetFilter = NewFilter("budget", CategoryIncome, CategoryInvestment)
)

// IsIncome reports whether the category name is "Income", case-insensitively.
func IsIncome(category string) bool {
	return strings.EqualFold(strings.TrimSpace(category), CategoryIncome)
}
