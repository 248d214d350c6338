package service

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/OP3690/finance-tracker/internal/domain"
	"github.com/OP3690/finance-tracker/internal/report"
)

// DashboardSummary is the home-page rollup: all-time totals, the current
// month's key figures and the month's budget standing.
type DashboardSummary struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Balance       decimal.Decimal `json:"balance"`

	MonthIncome      decimal.Decimal `json:"monthIncome"`
	MonthInvestments decimal.Decimal `json:"monthInvestments"`
	MonthEMIPayments decimal.Decimal `json:"monthEmiPayments"`
	MonthHousehold   decimal.Decimal `json:"monthHouseholdExpenses"`
	OpeningBalance   decimal.Decimal `json:"openingBalance"`

	BudgetStatus         []report.BudgetStatusRow `json:"budgetStatus"`
	UnbudgetedCategories []string                 `json:"unbudgetedCategories"`
}

// DashboardService assembles the home-page summary
type DashboardService struct {
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
	budgetRepo      domain.BudgetRepository
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	transactionRepo domain.TransactionRepository,
	categoryRepo domain.CategoryRepository,
	budgetRepo domain.BudgetRepository,
) *DashboardService {
	return &DashboardService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		budgetRepo:      budgetRepo,
	}
}

// GetSummary returns the dashboard summary anchored at ref
func (s *DashboardService) GetSummary(ref time.Time) (*DashboardSummary, error) {
	transactions, err := s.transactionRepo.GetAll(nil)
	if err != nil {
		return nil, err
	}
	inputs := report.FromTransactions(transactions)

	summary := &DashboardSummary{
		TotalIncome:      decimal.Zero,
		TotalExpenses:    decimal.Zero,
		MonthIncome:      decimal.Zero,
		MonthInvestments: decimal.Zero,
		MonthEMIPayments: decimal.Zero,
		MonthHousehold:   decimal.Zero,
		OpeningBalance:   report.OpeningBalance(inputs, ref),
	}

	month := report.CurrentMonthPeriod(ref)

	var monthInputs []report.Input
	for _, in := range transactions {
		amount := in.Amount.Abs()
		income := report.IsIncome(in.Category)
		if income {
			summary.TotalIncome = summary.TotalIncome.Add(amount)
		} else {
			summary.TotalExpenses = summary.TotalExpenses.Add(amount)
		}

		if !month.Contains(in.Date) {
			continue
		}
		monthInputs = append(monthInputs, report.Input{
			Date:        in.Date,
			Category:    in.Category,
			Description: in.Description,
			Amount:      in.Amount.String(),
		})

		switch {
		case income:
			summary.MonthIncome = summary.MonthIncome.Add(amount)
		case strings.EqualFold(in.Category, report.CategoryInvestment):
			summary.MonthInvestments = summary.MonthInvestments.Add(amount)
		}
		// Loan EMIs are bill payments whose description mentions a loan.
		if strings.EqualFold(in.Category, report.CategoryBills) &&
			strings.Contains(strings.ToLower(in.Description), "loan") {
			summary.MonthEMIPayments = summary.MonthEMIPayments.Add(amount)
		}
		if report.HouseholdFilter.Includes(in.Category) {
			summary.MonthHousehold = summary.MonthHousehold.Add(amount)
		}
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)

	budgets, err := s.budgetRepo.GetAll()
	if err != nil {
		return nil, err
	}
	summary.BudgetStatus = report.BudgetStatus(budgets, monthInputs, report.BudgetFilter)

	unbudgeted, err := s.unbudgetedCategories(budgets)
	if err != nil {
		return nil, err
	}
	summary.UnbudgetedCategories = unbudgeted

	return summary, nil
}

// unbudgetedCategories lists categories that could carry a budget but do
// not. Income and investments never appear: the budget filter excludes
// their spend anyway.
func (s *DashboardService) unbudgetedCategories(budgets []*domain.Budget) ([]string, error) {
	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}

	budgeted := make(map[string]struct{}, len(budgets))
	for _, b := range budgets {
		if b.Category != nil {
			budgeted[strings.ToLower(b.Category.Name)] = struct{}{}
		}
	}

	result := []string{}
	for _, c := range categories {
		if report.BudgetFilter.Excludes(c.Name) {
			continue
		}
		if _, ok := budgeted[strings.ToLower(c.Name)]; ok {
			continue
		}
		result = append(result, c.Name)
	}
	sort.Strings(result)
	return result, nil
}
