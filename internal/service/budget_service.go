package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/OP3690/finance-tracker/internal/domain"
	"github.com/OP3690/finance-tracker/internal/websocket"
)

// BudgetService handles budget business logic
type BudgetService struct {
	budgetRepo     domain.BudgetRepository
	categoryRepo   domain.CategoryRepository
	eventPublisher websocket.EventPublisher
}

// NewBudgetService creates a new BudgetService
func NewBudgetService(budgetRepo domain.BudgetRepository, categoryRepo domain.CategoryRepository) *BudgetService {
	return &BudgetService{budgetRepo: budgetRepo, categoryRepo: categoryRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *BudgetService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *BudgetService) publishEvent(event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(event)
	}
}

// CreateBudget creates a budget for a category. A category can carry at most
// one budget; a second create is rejected, never merged.
func (s *BudgetService) CreateBudget(categoryID uuid.UUID, limit decimal.Decimal) (*domain.Budget, error) {
	if !limit.IsPositive() {
		return nil, domain.ErrNonPositiveLimit
	}

	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		return nil, err
	}

	_, err := s.budgetRepo.GetByCategoryID(categoryID)
	if err == nil {
		return nil, domain.ErrBudgetExists
	}
	if !errors.Is(err, domain.ErrBudgetNotFound) {
		return nil, err
	}

	created, err := s.budgetRepo.Create(&domain.Budget{
		CategoryID: categoryID,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.BudgetCreated(created))
	return created, nil
}

// GetBudgets retrieves all budgets with their categories resolved
func (s *BudgetService) GetBudgets() ([]*domain.Budget, error) {
	return s.budgetRepo.GetAll()
}

// GetBudgetByID retrieves a budget by ID
func (s *BudgetService) GetBudgetByID(id uuid.UUID) (*domain.Budget, error) {
	return s.budgetRepo.GetByID(id)
}

// UpdateBudget changes a budget's limit
func (s *BudgetService) UpdateBudget(id uuid.UUID, limit decimal.Decimal) (*domain.Budget, error) {
	if !limit.IsPositive() {
		return nil, domain.ErrNonPositiveLimit
	}

	updated, err := s.budgetRepo.UpdateLimit(id, limit)
	if err != nil {
		return nil, err
	}

	s.publishEvent(websocket.BudgetUpdated(updated))
	return updated, nil
}

// DeleteBudget removes a budget
func (s *BudgetService) DeleteBudget(id uuid.UUID) error {
	existing, err := s.budgetRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.budgetRepo.Delete(id); err != nil {
		return err
	}

	s.publishEvent(websocket.BudgetDeleted(existing))
	return nil
}
