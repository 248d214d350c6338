package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/OP3690/finance-tracker/internal/domain"
	"github.com/OP3690/finance-tracker/internal/report"
	"github.com/OP3690/finance-tracker/internal/websocket"
)

// TransactionInput carries the user-supplied fields of a transaction. Amount
// arrives as the raw string from the client and is parsed here; it is never
// silently coerced to zero.
type TransactionInput struct {
	Date        time.Time
	Category    string
	Description string
	Amount      string
	Comment     *string
}

// TransactionService handles transaction business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	eventPublisher  websocket.EventPublisher
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *TransactionService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *TransactionService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// validate normalizes the input and returns the stored transaction fields.
// Amounts are stored as non-negative magnitudes; the category decides whether
// the value credits or debits.
func (in *TransactionInput) validate() (*domain.Transaction, error) {
	if in.Date.IsZero() {
		return nil, domain.ErrDateRequired
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, domain.ErrCategoryRequired
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.ErrDescriptionRequired
	}
	if len(description) > domain.MaxDescriptionLength {
		return nil, domain.ErrInvalidInput
	}

	amount, err := report.ParseAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, domain.ErrNegativeAmount
	}

	var comment *string
	if in.Comment != nil {
		if c := strings.TrimSpace(*in.Comment); c != "" {
			comment = &c
		}
	}

	return &domain.Transaction{
		Date:        in.Date,
		Category:    category,
		Description: description,
		Amount:      amount,
		Comment:     comment,
	}, nil
}

// CreateTransaction validates and stores a new transaction
func (s *TransactionService) CreateTransaction(input *TransactionInput) (*domain.Transaction, error) {
	transaction, err := input.validate()
	if err != nil {
		return nil, err
	}

	created, err := s.transactionRepo.Create(transaction)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.TransactionCreated(created))
	return created, nil
}

// GetTransactions retrieves transactions matching the given filters
func (s *TransactionService) GetTransactions(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	return s.transactionRepo.GetAll(filters)
}

// GetTransactionByID retrieves a transaction by ID
func (s *TransactionService) GetTransactionByID(id uuid.UUID) (*domain.Transaction, error) {
	return s.transactionRepo.GetByID(id)
}

// UpdateTransaction validates and replaces the fields of an existing transaction
func (s *TransactionService) UpdateTransaction(id uuid.UUID, input *TransactionInput) (*domain.Transaction, error) {
	existing, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	transaction, err := input.validate()
	if err != nil {
		return nil, err
	}
	transaction.ID = existing.ID
	transaction.CreatedAt = existing.CreatedAt

	updated, err := s.transactionRepo.Update(transaction)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.TransactionUpdated(updated))
	return updated, nil
}

// DeleteTransaction removes a transaction
func (s *TransactionService) DeleteTransaction(id uuid.UUID) error {
	existing, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.transactionRepo.Delete(id); err != nil {
		return err
	}

	s.publishEvent(websocket.TransactionDeleted(existing))
	return nil
}
