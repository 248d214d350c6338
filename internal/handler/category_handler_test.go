package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/OP3690/finance-tracker/internal/domain"
	"github.com/OP3690/finance-tracker/internal/service"
	"github.com/OP3690/finance-tracker/internal/testutil"
)

func newCategoryTestHandler() (*CategoryHandler, *testutil.MockCategoryRepository) {
	repo := testutil.NewMockCategoryRepository()
	return NewCategoryHandler(service.NewCategoryService(repo)), repo
}

func TestCreateCategory_Success(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryTestHandler()

	reqBody := `{"name": "Travel", "descriptions": ["Hotel", "Flights"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rec.Code)
	}

	var response domain.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Name != "Travel" {
		t.Errorf("Expected name 'Travel', got %s", response.Name)
	}
	if len(response.Descriptions) != 2 {
		t.Errorf("Expected 2 descriptions, got %d", len(response.Descriptions))
	}
}

func TestCreateCategory_MissingName(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryTestHandler()

	reqBody := `{"name": "  "}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var problemDetails ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problemDetails); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(problemDetails.Errors) != 1 || problemDetails.Errors[0].Field != "name" {
		t.Error("Expected validation error for 'name' field")
	}
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	e := echo.New()
	handler, repo := newCategoryTestHandler()

	repo.AddCategory(&domain.Category{Name: "Travel"})

	reqBody := `{"name": "travel"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateCategory(c); err != nil {
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

func TestGetCategories_EmptyList(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetCategories(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response []domain.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 0 {
		t.Errorf("Expected 0 categories, got %d", len(response))
	}
}

func TestGetCategory_NotFound(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	if err := handler.GetCategory(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestUpdateCategory_Success(t *testing.T) {
	e := echo.New()
	handler, repo := newCategoryTestHandler()

	existing := &domain.Category{Name: "Travel", Descriptions: []string{"Hotel"}}
	repo.AddCategory(existing)

	reqBody := `{"name": "Trips", "descriptions": ["Hotel", "Train"]}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/categories/"+existing.ID.String(), strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(existing.ID.String())

	if err := handler.UpdateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response domain.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Name != "Trips" {
		t.Errorf("Expected name 'Trips', got %s", response.Name)
	}
}

func TestAddDescription_Success(t *testing.T) {
	e := echo.New()
	handler, repo := newCategoryTestHandler()

	existing := &domain.Category{Name: "Groceries", Descriptions: []string{"Milk"}}
	repo.AddCategory(existing)

	reqBody := `{"description": "Eggs"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories/"+existing.ID.String()+"/descriptions", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(existing.ID.String())

	if err := handler.AddDescription(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response domain.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response.Descriptions) != 2 {
		t.Errorf("Expected 2 descriptions, got %d", len(response.Descriptions))
	}
}

func TestAddDescription_MissingDescription(t *testing.T) {
	e := echo.New()
	handler, repo := newCategoryTestHandler()

	existing := &domain.Category{Name: "Groceries"}
	repo.AddCategory(existing)

	reqBody := `{"description": ""}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories/"+existing.ID.String()+"/descriptions", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(existing.ID.String())

	if err := handler.AddDescription(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestDeleteCategory_NotFound(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	if err := handler.DeleteCategory(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestGetDescriptions_CaseInsensitiveLookup(t *testing.T) {
	e := echo.New()
	handler, repo := newCategoryTestHandler()

	repo.AddCategory(&domain.Category{Name: "Groceries", Descriptions: []string{"Milk", "Eggs"}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/descriptions?category=groceries", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetDescriptions(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response struct {
		Category     string   `json:"category"`
		Descriptions []string `json:"descriptions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response.Descriptions) != 2 {
		t.Errorf("Expected 2 descriptions, got %d", len(response.Descriptions))
	}
}

func TestGetDescriptions_UnknownCategory(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/descriptions?category=Nope", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.GetDescriptions(c); err != nil {
		t.Fatalf("Expected JSON response, got error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestSeedDefaults_InstallsAndIsIdempotent(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryTestHandler()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/categories/init", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := handler.SeedDefaults(c); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}

		var response []domain.Category
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if len(response) != 10 {
			t.Errorf("Expected 10 categories after seeding, got %d", len(response))
		}
	}
}
