package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget is a monthly spending limit for one category. At most one budget
// may exist per category. Category is resolved on read and stays nil when
// the referenced category has been deleted; such budgets are orphaned, not
// invalid.
type Budget struct {
	ID         uuid.UUID       `json:"id"`
	CategoryID uuid.UUID       `json:"categoryId"`
	Limit      decimal.Decimal `json:"limit"`
	Category   *Category       `json:"category,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type BudgetRepository interface {
	Create(budget *Budget) (*Budget, error)
	GetByID(id uuid.UUID) (*Budget, error)
	GetByCategoryID(categoryID uuid.UUID) (*Budget, error)
	GetAll() ([]*Budget, error)
	UpdateLimit(id uuid.UUID, limit decimal.Decimal) (*Budget, error)
	Delete(id uuid.UUID) error
}
