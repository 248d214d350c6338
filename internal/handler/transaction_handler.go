package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/OP3690/finance-tracker/internal/domain"
	"github.com/OP3690/finance-tracker/internal/report"
	"github.com/OP3690/finance-tracker/internal/service"
)

// TransactionHandler handles transaction HTTP requests
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// flexAmount accepts a JSON number or string and keeps the raw text for the
// service's amount normalizer.
type flexAmount string

func (a *flexAmount) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = flexAmount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = flexAmount(n)
	return nil
}

// TransactionRequest represents the create/update transaction request body
type TransactionRequest struct {
	Date        string     `json:"date"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
	Amount      flexAmount `json:"amount"`
	Comment     *string    `json:"comment"`
}

// parseRequestDate accepts RFC3339 timestamps and bare dates
func parseRequestDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func (req *TransactionRequest) toInput(c echo.Context) (*service.TransactionInput, error) {
	input := &service.TransactionInput{
		Category:    req.Category,
		Description: req.Description,
		Amount:      string(req.Amount),
		Comment:     req.Comment,
	}
	if req.Date != "" {
		date, err := parseRequestDate(req.Date)
		if err != nil {
			return nil, NewValidationError(c, "Invalid date", []ValidationError{
				{Field: "date", Message: "Date must be RFC3339 or yyyy-mm-dd"},
			})
		}
		input.Date = date
	}
	return input, nil
}

// mapTransactionError translates validation failures shared by create and update
func mapTransactionError(c echo.Context, err error) (error, bool) {
	switch {
	case errors.Is(err, domain.ErrDateRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "date", Message: "Date is required"},
		}), true
	case errors.Is(err, domain.ErrCategoryRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "category", Message: "Category is required"},
		}), true
	case errors.Is(err, domain.ErrDescriptionRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "description", Message: "Description is required"},
		}), true
	case errors.Is(err, report.ErrAmountParse):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount is not a valid number"},
		}), true
	case errors.Is(err, domain.ErrNegativeAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must not be negative"},
		}), true
	case errors.Is(err, domain.ErrInvalidInput):
		return NewValidationError(c, "Validation failed", nil), true
	}
	return nil, false
}

// CreateTransaction handles POST /api/v1/transactions
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, errResp := req.toInput(c)
	if errResp != nil {
		return errResp
	}

	transaction, err := h.transactionService.CreateTransaction(input)
	if err != nil {
		if resp, ok := mapTransactionError(c, err); ok {
			return resp
		}
		log.Error().Err(err).Msg("Failed to create transaction")
		return NewInternalError(c, "Failed to create transaction")
	}

	log.Info().
		Str("transaction_id", transaction.ID.String()).
		Str("category", transaction.Category).
		Msg("Transaction created")
	return c.JSON(http.StatusCreated, transaction)
}

// GetTransactions handles GET /api/v1/transactions
// Supported filters: month (RFC3339 or yyyy-mm-dd), from, to, category.
func (h *TransactionHandler) GetTransactions(c echo.Context) error {
	filters := &domain.TransactionFilters{}

	if raw := c.QueryParam("month"); raw != "" {
		month, err := parseRequestDate(raw)
		if err != nil {
			return NewValidationError(c, "Invalid month", nil)
		}
		filters.Month = &month
	}
	if raw := c.QueryParam("from"); raw != "" {
		from, err := parseRequestDate(raw)
		if err != nil {
			return NewValidationError(c, "Invalid from date", nil)
		}
		filters.StartDate = &from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := parseRequestDate(raw)
		if err != nil {
			return NewValidationError(c, "Invalid to date", nil)
		}
		filters.EndDate = &to
	}
	if category := c.QueryParam("category"); category != "" {
		filters.Category = &category
	}

	transactions, err := h.transactionService.GetTransactions(filters)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get transactions")
		return NewInternalError(c, "Failed to get transactions")
	}
	return c.JSON(http.StatusOK, transactions)
}

// GetTransaction handles GET /api/v1/transactions/:id
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	transaction, err := h.transactionService.GetTransactionByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		log.Error().Err(err).Str("transaction_id", id.String()).Msg("Failed to get transaction")
		return NewInternalError(c, "Failed to get transaction")
	}
	return c.JSON(http.StatusOK, transaction)
}

// UpdateTransaction handles PUT /api/v1/transactions/:id
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	var req TransactionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, errResp := req.toInput(c)
	if errResp != nil {
		return errResp
	}

	transaction, err := h.transactionService.UpdateTransaction(id, input)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		if resp, ok := mapTransactionError(c, err); ok {
			return resp
		}
		log.Error().Err(err).Str("transaction_id", id.String()).Msg("Failed to update transaction")
		return NewInternalError(c, "Failed to update transaction")
	}

	log.Info().Str("transaction_id", id.String()).Msg("Transaction updated")
	return c.JSON(http.StatusOK, transaction)
}

// DeleteTransaction handles DELETE /api/v1/transactions/:id
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid transaction ID", nil)
	}

	if err := h.transactionService.DeleteTransaction(id); err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return NewNotFoundError(c, "Transaction not found")
		}
		log.Error().Err(err).Str("transaction_id", id.String()).Msg("Failed to delete transaction")
		return NewInternalError(c, "Failed to delete transaction")
	}

	log.Info().Str("transaction_id", id.String()).Msg("Transaction deleted")
	return c.NoContent(http.StatusNoContent)
}
