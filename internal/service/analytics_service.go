package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/OP3690/finance-tracker/internal/domain"
	"github.com/OP3690/finance-tracker/internal/report"
)

// AnalyticsService computes the reporting views over the transaction log.
// Every method reads the full log and feeds it through the aggregation
// engine; malformed historical rows are skipped there, never fatal.
type AnalyticsService struct {
	transactionRepo domain.TransactionRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(transactionRepo domain.TransactionRepository) *AnalyticsService {
	return &AnalyticsService{transactionRepo: transactionRepo}
}

func (s *AnalyticsService) inputs() ([]report.Input, error) {
	transactions, err := s.transactionRepo.GetAll(nil)
	if err != nil {
		return nil, err
	}
	return report.FromTransactions(transactions), nil
}

// PeriodSummary builds the five-period category/description breakdown
// anchored at ref.
func (s *AnalyticsService) PeriodSummary(ref time.Time) (*report.PeriodSummary, error) {
	inputs, err := s.inputs()
	if err != nil {
		return nil, err
	}
	return report.Summarize(inputs, report.GeneratePeriods(ref)), nil
}

// OpeningBalance returns the balance carried into ref's month from the
// month before it.
func (s *AnalyticsService) OpeningBalance(ref time.Time) (decimal.Decimal, error) {
	inputs, err := s.inputs()
	if err != nil {
		return decimal.Zero, err
	}
	return report.OpeningBalance(inputs, ref), nil
}

// CategoryDistribution returns per-category shares of total spend.
func (s *AnalyticsService) CategoryDistribution(excludeIncome bool) ([]report.DistributionEntry, error) {
	inputs, err := s.inputs()
	if err != nil {
		return nil, err
	}
	return report.CategoryDistribution(inputs, excludeIncome), nil
}

// DailyTrend returns the sparse per-day spend series.
func (s *AnalyticsService) DailyTrend() ([]report.DailyPoint, error) {
	inputs, err := s.inputs()
	if err != nil {
		return nil, err
	}
	return report.DailyTrend(inputs), nil
}

// MonthlyTrend returns per-description amounts across the five periods
// anchored at ref, largest spenders first.
func (s *AnalyticsService) MonthlyTrend(ref time.Time) ([]report.TrendRow, error) {
	inputs, err := s.inputs()
	if err != nil {
		return nil, err
	}
	return report.MonthlyTrendByDescription(inputs, report.GeneratePeriods(ref)), nil
}

// MonthlyUpshots recaps the trailing months' income, expenses, investments
// and savings, newest first.
func (s *AnalyticsService) MonthlyUpshots(ref time.Time, months int) ([]report.MonthUpshot, error) {
	inputs, err := s.inputs()
	if err != nil {
		return nil, err
	}
	return report.MonthlyUpshots(inputs, ref, months), nil
}
