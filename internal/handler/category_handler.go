package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/OP3690/finance-tracker/internal/domain"
	"github.com/OP3690/finance-tracker/internal/report"
	"github.com/OP3690/finance-tracker/internal/service"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents the create/update category request body
type CategoryRequest struct {
	Name         string   `json:"name"`
	Descriptions []string `json:"descriptions"`
}

// AddDescriptionRequest represents the add description request body
type AddDescriptionRequest struct {
	Description string `json:"description"`
}

func mapCategoryError(c echo.Context, err error) (error, bool) {
	switch {
	case errors.Is(err, domain.ErrCategoryNameRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		}), true
	case errors.Is(err, domain.ErrCategoryNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is too long"},
		}), true
	case errors.Is(err, domain.ErrCategoryExists):
		return NewConflictError(c, "A category with this name already exists"), true
	case errors.Is(err, domain.ErrCategoryNotFound):
		return NewNotFoundError(c, "Category not found"), true
	}
	return nil, false
}

// CreateCategory handles POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.Descriptions)
	if err != nil {
		if resp, ok := mapCategoryError(c, err); ok {
			return resp
		}
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create category")
		return NewInternalError(c, "Failed to create category")
	}

	log.Info().Str("category_id", category.ID.String()).Str("name", category.Name).Msg("Category created")
	return c.JSON(http.StatusCreated, category)
}

// GetCategories handles GET /api/v1/categories
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get categories")
		return NewInternalError(c, "Failed to get categories")
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/v1/categories/:id
func (h *CategoryHandler) GetCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	category, err := h.categoryService.GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return NewNotFoundError(c, "Category not found")
		}
		log.Error().Err(err).Str("category_id", id.String()).Msg("Failed to get category")
		return NewInternalError(c, "Failed to get category")
	}
	return c.JSON(http.StatusOK, category)
}

// UpdateCategory handles PUT /api/v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.UpdateCategory(id, req.Name, req.Descriptions)
	if err != nil {
		if resp, ok := mapCategoryError(c, err); ok {
			return resp
		}
		log.Error().Err(err).Str("category_id", id.String()).Msg("Failed to update category")
		return NewInternalError(c, "Failed to update category")
	}

	log.Info().Str("category_id", id.String()).Msg("Category updated")
	return c.JSON(http.StatusOK, category)
}

// AddDescription handles POST /api/v1/categories/:id/descriptions
func (h *CategoryHandler) AddDescription(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	var req AddDescriptionRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	category, err := h.categoryService.AddDescription(id, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDescriptionRequired):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "description", Message: "Description is required"},
			})
		case errors.Is(err, domain.ErrInvalidInput):
			return NewValidationError(c, "Validation failed", []ValidationError{
				{Field: "description", Message: "Description is too long"},
			})
		case errors.Is(err, domain.ErrCategoryNotFound):
			return NewNotFoundError(c, "Category not found")
		}
		log.Error().Err(err).Str("category_id", id.String()).Msg("Failed to add description")
		return NewInternalError(c, "Failed to add description")
	}

	return c.JSON(http.StatusOK, category)
}

// GetDescriptions handles GET /api/v1/categories/descriptions. It serves the
// preset description lookup the entry form uses, case-insensitive on name.
func (h *CategoryHandler) GetDescriptions(c echo.Context) error {
	name := c.QueryParam("category")
	if name == "" {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "category", Message: "Category is required"},
		})
	}

	categories, err := h.categoryService.GetCategories()
	if err != nil {
		log.Error().Err(err).Msg("Failed to get categories")
		return NewInternalError(c, "Failed to get categories")
	}

	registry := report.NewRegistry(categories)
	if !registry.Known(name) {
		return NewNotFoundError(c, "Category not found")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"category":     name,
		"descriptions": registry.DescriptionsFor(name),
	})
}

// DeleteCategory handles DELETE /api/v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return NewValidationError(c, "Invalid category ID", nil)
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return NewNotFoundError(c, "Category not found")
		}
		log.Error().Err(err).Str("category_id", id.String()).Msg("Failed to delete category")
		return NewInternalError(c, "Failed to delete category")
	}

	log.Info().Str("category_id", id.String()).Msg("Category deleted")
	return c.NoContent(http.StatusNoContent)
}

// SeedDefaults handles POST /api/v1/categories/init
func (h *CategoryHandler) SeedDefaults(c echo.Context) error {
	categories, err := h.categoryService.SeedDefaults()
	if err != nil {
		log.Error().Err(err).Msg("Failed to seed default categories")
		return NewInternalError(c, "Failed to seed default categories")
	}

	log.Info().Int("count", len(categories)).Msg("Default categories ensured")
	return c.JSON(http.StatusOK, categories)
}
