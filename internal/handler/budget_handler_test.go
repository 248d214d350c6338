package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/OP3690/finance-tracker/internal/domain"
	"github.com/OP3690/finance-tracker/internal/service"
	"github.com/OP3690/finance-tracker/internal/testutil"
)

func newBudgetTestHandler() (*BudgetHandler, *testutil.MockBudgetRepository, *testutil.MockCategoryRepository) {
	budgetRepo := testutil.NewMockBudgetRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	return NewBudgetHandler(service.NewBudgetService(budgetRepo, categoryRepo)), budgetRepo, categoryRepo
}

func TestCreateBudget_Success(t *testing.T) {
	e := echo.New()
	handler, _, categoryRepo := newBudgetTestHandler()

	category := &domain.Category{Name: "Groceries"}
	categoryRepo.AddCategory(category)

	reqBody := `{"categoryId": "` + category.ID.String() + `", "limit": "1000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response domain.Budget
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.CategoryID != category.ID {
		t.Errorf("Expected category ID %s, got %s", category.ID, response.CategoryID)
	}
	if !response.Limit.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("Expected limit 1000, got %s", response.Limit)
	}
}

func TestCreateBudget_MissingCategoryID(t *testing.T) {
	e := echo.New()
	handler, _, _ := newBudgetTestHandler()

	reqBody := `{"limit": "1000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateBudget(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestCreateBudget_NonPositiveLimit(t *testing.T) {
	e := echo.New()
	handler, _, categoryRepo := newBudgetTestHandler()

	category := &domain.Category{Name: "Groceries"}
	categoryRepo.AddCategory(category)

	reqBody := `{"categoryId": "` + category.ID.String() + `", "limit": "0"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateBudget(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var problemDetails ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problemDetails); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(problemDetails.Errors) != 1 || problemDetails.Errors[0].Field != "limit" {
		t.Error("Expected validation error for 'limit' field")
	}
}

func TestCreateBudget_UnknownCategory(t *testing.T) {
	e := echo.New()
	handler, _, _ := newBudgetTestHandler()

	reqBody := `{"categoryId": "` + uuid.NewString() + `", "limit": "1000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateBudget(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestCreateBudget_DuplicateCategory(t *testing.T) {
	e := echo.New()
	handler, budgetRepo, categoryRepo := newBudgetTestHandler()

	category := &domain.Category{Name: "Groceries"}
	categoryRepo.AddCategory(category)
	budgetRepo.AddBudget(&domain.Budget{CategoryID: category.ID, Limit: decimal.NewFromInt(500)})

	reqBody := `{"categoryId": "` + category.ID.String() + `", "limit": "1000"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/budgets", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateBudget(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", rec.Code)
	}

	var problemDetails ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problemDetails); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if problemDetails.Type != ErrorTypeConflict {
		t.Errorf("Expected error type %s, got %s", ErrorTypeConflict, problemDetails.Type)
	}
}

func TestGetBudgets_Success(t *testing.T) {
	e := echo.New()
	handler, budgetRepo, _ := newBudgetTestHandler()

	budgetRepo.AddBudget(&domain.Budget{CategoryID: uuid.New(), Limit: decimal.NewFromInt(500)})
	budgetRepo.AddBudget(&domain.Budget{CategoryID: uuid.New(), Limit: decimal.NewFromInt(800)})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/budgets", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetBudgets(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response []domain.Budget
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 2 {
		t.Errorf("Expected 2 budgets, got %d", len(response))
	}
}

func TestUpdateBudget_Success(t *testing.T) {
	e := echo.New()
	handler, budgetRepo, _ := newBudgetTestHandler()

	existing := &domain.Budget{CategoryID: uuid.New(), Limit: decimal.NewFromInt(500)}
	budgetRepo.AddBudget(existing)

	reqBody := `{"limit": "750"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/budgets/"+existing.ID.String(), strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(existing.ID.String())

	if err := handler.UpdateBudget(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response domain.Budget
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !response.Limit.Equal(decimal.NewFromInt(750)) {
		t.Errorf("Expected limit 750, got %s", response.Limit)
	}
}

func TestDeleteBudget_NotFound(t *testing.T) {
	e := echo.New()
	handler, _, _ := newBudgetTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/budgets/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	if err := handler.DeleteBudget(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}
