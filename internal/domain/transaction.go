package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a single income or expense entry. Amount is always a
// non-negative magnitude; direction is derived from the category ("Income"
// credits, everything else debits).
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Comment     *string         `json:"comment,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// TransactionFilters narrows a transaction listing. Month selects one
// calendar month; StartDate/EndDate select an inclusive date range.
type TransactionFilters struct {
	Month     *time.Time
	StartDate *time.Time
	EndDate   *time.Time
	Category  *string
}

type TransactionRepository interface {
	Create(transaction *Transaction) (*Transaction, error)
	GetByID(id uuid.UUID) (*Transaction, error)
	GetAll(filters *TransactionFilters) ([]*Transaction, error)
	Update(transaction *Transaction) (*Transaction, error)
	Delete(id uuid.UUID) error
}
