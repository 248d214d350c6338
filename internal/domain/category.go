package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is a named spending bucket with its preset transaction
// descriptions. Names are unique case-insensitively.
type Category struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Descriptions []string  `json:"descriptions"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CategoryRepository interface {
	Create(category *Category) (*Category, error)
	GetByID(id uuid.UUID) (*Category, error)
	GetByName(name string) (*Category, error)
	GetAll() ([]*Category, error)
	Update(category *Category) (*Category, error)
	Delete(id uuid.UUID) error
	Count() (int64, error)
}
