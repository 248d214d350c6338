package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/OP3690/finance-tracker/internal/report"
	"github.com/OP3690/finance-tracker/internal/service"
)

// AnalyticsHandler handles reporting HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
	formatter        report.CurrencyFormatter
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService, currencySymbol string) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		formatter:        report.CurrencyFormatter{Symbol: currencySymbol},
	}
}

// DescriptionRow is one description line of the period summary
type DescriptionRow struct {
	Name    string            `json:"name"`
	Amounts []decimal.Decimal `json:"amounts"`
}

// CategoryRow is one category block of the period summary, with
// month-over-month changes alongside the per-period totals.
type CategoryRow struct {
	Name         string            `json:"name"`
	Totals       []decimal.Decimal `json:"totals"`
	Changes      []string          `json:"changes"`
	Descriptions []DescriptionRow  `json:"descriptions"`
}

// SummaryResponse is the five-period report payload. BalanceDisplay carries
// the balance row pre-formatted for the UI, negative values prefixed with '-'.
type SummaryResponse struct {
	Periods        []string          `json:"periods"`
	Categories     []CategoryRow     `json:"categories"`
	TotalIncome    []decimal.Decimal `json:"totalIncome"`
	TotalExpense   []decimal.Decimal `json:"totalExpense"`
	Balance        []decimal.Decimal `json:"balance"`
	BalanceDisplay []string          `json:"balanceDisplay"`
	SkippedRecords int               `json:"skippedRecords"`
}

func (h *AnalyticsHandler) toSummaryResponse(summary *report.PeriodSummary) *SummaryResponse {
	resp := &SummaryResponse{
		Periods:        make([]string, len(summary.Periods)),
		Categories:     make([]CategoryRow, len(summary.Categories)),
		TotalIncome:    summary.TotalIncome,
		TotalExpense:   summary.TotalExpense,
		Balance:        summary.Balance,
		BalanceDisplay: make([]string, len(summary.Balance)),
		SkippedRecords: summary.Skipped,
	}
	for i, p := range summary.Periods {
		resp.Periods[i] = p.Label
	}
	for i, b := range summary.Balance {
		formatted := h.formatter.Format(b)
		if b.IsNegative() {
			formatted = "-" + formatted
		}
		resp.BalanceDisplay[i] = formatted
	}
	for i, cat := range summary.Categories {
		row := CategoryRow{
			Name:         cat.Name,
			Totals:       cat.Totals,
			Changes:      report.PairwiseChanges(cat.Totals),
			Descriptions: make([]DescriptionRow, len(cat.Descriptions)),
		}
		for j, desc := range cat.Descriptions {
			row.Descriptions[j] = DescriptionRow{Name: desc.Name, Amounts: desc.Amounts}
		}
		resp.Categories[i] = row
	}
	return resp
}

// refDate reads the optional date query parameter, defaulting to now
func refDate(c echo.Context) (time.Time, error) {
	raw := c.QueryParam("date")
	if raw == "" {
		return time.Now(), nil
	}
	return parseRequestDate(raw)
}

// GetSummary handles GET /api/v1/analytics/summary
func (h *AnalyticsHandler) GetSummary(c echo.Context) error {
	ref, err := refDate(c)
	if err != nil {
		return NewValidationError(c, "Invalid date", nil)
	}

	summary, err := h.analyticsService.PeriodSummary(ref)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build period summary")
		return NewInternalError(c, "Failed to build period summary")
	}
	return c.JSON(http.StatusOK, h.toSummaryResponse(summary))
}

// GetDistribution handles GET /api/v1/analytics/distribution.
// Income is excluded unless excludeIncome=false is passed.
func (h *AnalyticsHandler) GetDistribution(c echo.Context) error {
	excludeIncome := true
	if raw := c.QueryParam("excludeIncome"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return NewValidationError(c, "Invalid excludeIncome flag", nil)
		}
		excludeIncome = parsed
	}

	entries, err := h.analyticsService.CategoryDistribution(excludeIncome)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build category distribution")
		return NewInternalError(c, "Failed to build category distribution")
	}
	return c.JSON(http.StatusOK, entries)
}

// GetDailyTrend handles GET /api/v1/analytics/daily
func (h *AnalyticsHandler) GetDailyTrend(c echo.Context) error {
	points, err := h.analyticsService.DailyTrend()
	if err != nil {
		log.Error().Err(err).Msg("Failed to build daily trend")
		return NewInternalError(c, "Failed to build daily trend")
	}
	return c.JSON(http.StatusOK, points)
}

// GetMonthlyTrend handles GET /api/v1/analytics/monthly-trend
func (h *AnalyticsHandler) GetMonthlyTrend(c echo.Context) error {
	ref, err := refDate(c)
	if err != nil {
		return NewValidationError(c, "Invalid date", nil)
	}

	rows, err := h.analyticsService.MonthlyTrend(ref)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build monthly trend")
		return NewInternalError(c, "Failed to build monthly trend")
	}
	return c.JSON(http.StatusOK, rows)
}

// GetMonthlyUpshots handles GET /api/v1/analytics/upshots
func (h *AnalyticsHandler) GetMonthlyUpshots(c echo.Context) error {
	ref, err := refDate(c)
	if err != nil {
		return NewValidationError(c, "Invalid date", nil)
	}

	months := 6
	if raw := c.QueryParam("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return NewValidationError(c, "Invalid months count", nil)
		}
		months = parsed
	}

	upshots, err := h.analyticsService.MonthlyUpshots(ref, months)
	if err != nil {
		log.Error().Err(err).Msg("Failed to build monthly upshots")
		return NewInternalError(c, "Failed to build monthly upshots")
	}
	return c.JSON(http.StatusOK, upshots)
}
