package testutil

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/OP3690/finance-tracker/internal/domain"
)

// MockTransactionRepository is a mock implementation of domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions map[uuid.UUID]*domain.Transaction
	CreateFn     func(transaction *domain.Transaction) (*domain.Transaction, error)
	GetByIDFn    func(id uuid.UUID) (*domain.Transaction, error)
	GetAllFn     func(filters *domain.TransactionFilters) ([]*domain.Transaction, error)
	UpdateFn     func(transaction *domain.Transaction) (*domain.Transaction, error)
	DeleteFn     func(id uuid.UUID) error
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{
		Transactions: make(map[uuid.UUID]*domain.Transaction),
	}
}

// Create creates a new transaction
func (m *MockTransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.CreateFn != nil {
		return m.CreateFn(transaction)
	}
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	m.Transactions[transaction.ID] = transaction
	return transaction, nil
}

// GetByID retrieves a transaction by ID
func (m *MockTransactionRepository) GetByID(id uuid.UUID) (*domain.Transaction, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(id)
	}
	if t, ok := m.Transactions[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTransactionNotFound
}

// GetAll retrieves transactions matching the given filters
func (m *MockTransactionRepository) GetAll(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn(filters)
	}
	result := []*domain.Transaction{}
	for _, t := range m.Transactions {
		if filters != nil {
			if filters.Month != nil {
				if t.Date.Year() != filters.Month.Year() || t.Date.Month() != filters.Month.Month() {
					continue
				}
			}
			if filters.StartDate != nil && t.Date.Before(*filters.StartDate) {
				continue
			}
			if filters.EndDate != nil && t.Date.After(*filters.EndDate) {
				continue
			}
			if filters.Category != nil && !strings.EqualFold(t.Category, *filters.Category) {
				continue
			}
		}
		result = append(result, t)
	}
	return result, nil
}

// Update updates an existing transaction
func (m *MockTransactionRepository) Update(transaction *domain.Transaction) (*domain.Transaction, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(transaction)
	}
	if _, ok := m.Transactions[transaction.ID]; !ok {
		return nil, domain.ErrTransactionNotFound
	}
	m.Transactions[transaction.ID] = transaction
	return transaction, nil
}

// Delete removes a transaction by ID
func (m *MockTransactionRepository) Delete(id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	if _, ok := m.Transactions[id]; !ok {
		return domain.ErrTransactionNotFound
	}
	delete(m.Transactions, id)
	return nil
}

// AddTransaction adds a transaction to the mock repository (helper for tests)
func (m *MockTransactionRepository) AddTransaction(transaction *domain.Transaction) {
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	m.Transactions[transaction.ID] = transaction
}

// MockCategoryRepository is a mock implementation of domain.CategoryRepository
type MockCategoryRepository struct {
	Categories map[uuid.UUID]*domain.Category
	CreateFn   func(category *domain.Category) (*domain.Category, error)
	GetByIDFn  func(id uuid.UUID) (*domain.Category, error)
	GetAllFn   func() ([]*domain.Category, error)
	UpdateFn   func(category *domain.Category) (*domain.Category, error)
	DeleteFn   func(id uuid.UUID) error
	CountFn    func() (int64, error)
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories: make(map[uuid.UUID]*domain.Category),
	}
}

// Create creates a new category, enforcing case-insensitive name uniqueness
func (m *MockCategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	if m.CreateFn != nil {
		return m.CreateFn(category)
	}
	for _, c := range m.Categories {
		if strings.EqualFold(c.Name, category.Name) {
			return nil, domain.ErrCategoryExists
		}
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	m.Categories[category.ID] = category
	return category, nil
}

// GetByID retrieves a category by ID
func (m *MockCategoryRepository) GetByID(id uuid.UUID) (*domain.Category, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(id)
	}
	if c, ok := m.Categories[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

// GetByName retrieves a category by name, case-insensitively
func (m *MockCategoryRepository) GetByName(name string) (*domain.Category, error) {
	for _, c := range m.Categories {
		if strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// GetAll retrieves all categories
func (m *MockCategoryRepository) GetAll() ([]*domain.Category, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn()
	}
	result := make([]*domain.Category, 0, len(m.Categories))
	for _, c := range m.Categories {
		result = append(result, c)
	}
	return result, nil
}

// Update updates an existing category
func (m *MockCategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(category)
	}
	if _, ok := m.Categories[category.ID]; !ok {
		return nil, domain.ErrCategoryNotFound
	}
	for _, c := range m.Categories {
		if c.ID != category.ID && strings.EqualFold(c.Name, category.Name) {
			return nil, domain.ErrCategoryExists
		}
	}
	m.Categories[category.ID] = category
	return category, nil
}

// Delete removes a category by ID
func (m *MockCategoryRepository) Delete(id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	if _, ok := m.Categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(m.Categories, id)
	return nil
}

// Count returns the number of stored categories
func (m *MockCategoryRepository) Count() (int64, error) {
	if m.CountFn != nil {
		return m.CountFn()
	}
	return int64(len(m.Categories)), nil
}

// AddCategory adds a category to the mock repository (helper for tests)
func (m *MockCategoryRepository) AddCategory(category *domain.Category) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	m.Categories[category.ID] = category
}

// MockBudgetRepository is a mock implementation of domain.BudgetRepository
type MockBudgetRepository struct {
	Budgets   map[uuid.UUID]*domain.Budget
	CreateFn  func(budget *domain.Budget) (*domain.Budget, error)
	GetByIDFn func(id uuid.UUID) (*domain.Budget, error)
	GetAllFn  func() ([]*domain.Budget, error)
	DeleteFn  func(id uuid.UUID) error
}

// NewMockBudgetRepository creates a new MockBudgetRepository
func NewMockBudgetRepository() *MockBudgetRepository {
	return &MockBudgetRepository{
		Budgets: make(map[uuid.UUID]*domain.Budget),
	}
}

// Create creates a new budget, enforcing one budget per category
func (m *MockBudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	if m.CreateFn != nil {
		return m.CreateFn(budget)
	}
	for _, b := range m.Budgets {
		if b.CategoryID == budget.CategoryID {
			return nil, domain.ErrBudgetExists
		}
	}
	if budget.ID == uuid.Nil {
		budget.ID = uuid.New()
	}
	m.Budgets[budget.ID] = budget
	return budget, nil
}

// GetByID retrieves a budget by ID
func (m *MockBudgetRepository) GetByID(id uuid.UUID) (*domain.Budget, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(id)
	}
	if b, ok := m.Budgets[id]; ok {
		return b, nil
	}
	return nil, domain.ErrBudgetNotFound
}

// GetByCategoryID retrieves the budget for a category
func (m *MockBudgetRepository) GetByCategoryID(categoryID uuid.UUID) (*domain.Budget, error) {
	for _, b := range m.Budgets {
		if b.CategoryID == categoryID {
			return b, nil
		}
	}
	return nil, domain.ErrBudgetNotFound
}

// GetAll retrieves all budgets
func (m *MockBudgetRepository) GetAll() ([]*domain.Budget, error) {
	if m.GetAllFn != nil {
		return m.GetAllFn()
	}
	result := make([]*domain.Budget, 0, len(m.Budgets))
	for _, b := range m.Budgets {
		result = append(result, b)
	}
	return result, nil
}

// UpdateLimit updates a budget's limit
func (m *MockBudgetRepository) UpdateLimit(id uuid.UUID, limit decimal.Decimal) (*domain.Budget, error) {
	b, ok := m.Budgets[id]
	if !ok {
		return nil, domain.ErrBudgetNotFound
	}
	b.Limit = limit
	return b, nil
}

// Delete removes a budget by ID
func (m *MockBudgetRepository) Delete(id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(id)
	}
	if _, ok := m.Budgets[id]; !ok {
		return domain.ErrBudgetNotFound
	}
	delete(m.Budgets, id)
	return nil
}

// AddBudget adds a budget to the mock repository (helper for tests)
func (m *MockBudgetRepository) AddBudget(budget *domain.Budget) {
	if budget.ID == uuid.Nil {
		budget.ID = uuid.New()
	}
	m.Budgets[budget.ID] = budget
}
