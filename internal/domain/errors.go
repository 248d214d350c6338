package domain

import "errors"

// Domain errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrBudgetNotFound       = errors.New("budget not found")
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryNameTooLong  = errors.New("category name exceeds maximum length")
	ErrCategoryExists       = errors.New("category with this name already exists")
	ErrBudgetExists         = errors.New("category already has a budget")
	ErrDescriptionRequired  = errors.New("description is required")
	ErrCategoryRequired     = errors.New("category is required")
	ErrDateRequired         = errors.New("transaction date is required")
	ErrNegativeAmount       = errors.New("amount must be a non-negative magnitude")
	ErrNonPositiveLimit     = errors.New("budget limit must be positive")
)

// Validation constants
const (
	MaxCategoryNameLength = 100
	MaxDescriptionLength  = 255
)
