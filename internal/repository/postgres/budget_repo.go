package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/OP3690/finance-tracker/internal/domain"
)

// BudgetRepository implements domain.BudgetRepository using PostgreSQL
type BudgetRepository struct {
	pool *pgxpool.Pool
}

// NewBudgetRepository creates a new BudgetRepository
func NewBudgetRepository(pool *pgxpool.Pool) *BudgetRepository {
	return &BudgetRepository{pool: pool}
}

// Create creates a new budget. The unique index on category_id backs the
// one-budget-per-category invariant against concurrent writers.
func (r *BudgetRepository) Create(budget *domain.Budget) (*domain.Budget, error) {
	if budget.ID == uuid.Nil {
		budget.ID = uuid.New()
	}

	err := r.pool.QueryRow(context.Background(), `
		INSERT INTO budgets (id, category_id, limit_amount)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		budget.ID, budget.CategoryID, budget.Limit,
	).Scan(&budget.CreatedAt)
	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, domain.ErrBudgetExists
		}
		return nil, err
	}
	return r.GetByID(budget.ID)
}

// scanBudgetRow reads one budget joined with its category. The join is a
// left join: a deleted category leaves Category nil.
func scanBudgetRow(row pgx.Row) (*domain.Budget, error) {
	budget := &domain.Budget{}
	var categoryID *uuid.UUID
	var categoryName *string
	var descriptions []string
	var categoryCreatedAt *time.Time

	err := row.Scan(
		&budget.ID, &budget.CategoryID, &budget.Limit, &budget.CreatedAt,
		&categoryID, &categoryName, &descriptions, &categoryCreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if categoryID != nil && categoryName != nil {
		budget.Category = &domain.Category{
			ID:           *categoryID,
			Name:         *categoryName,
			Descriptions: descriptions,
		}
		if categoryCreatedAt != nil {
			budget.Category.CreatedAt = *categoryCreatedAt
		}
	}
	return budget, nil
}

const budgetSelect = `
	SELECT b.id, b.category_id, b.limit_amount, b.created_at,
	       c.id, c.name, c.descriptions, c.created_at
	FROM budgets b
	LEFT JOIN categories c ON c.id = b.category_id`

// GetByID retrieves a budget by ID with its category resolved
func (r *BudgetRepository) GetByID(id uuid.UUID) (*domain.Budget, error) {
	budget, err := scanBudgetRow(r.pool.QueryRow(context.Background(),
		budgetSelect+` WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// GetByCategoryID retrieves the budget for a category
func (r *BudgetRepository) GetByCategoryID(categoryID uuid.UUID) (*domain.Budget, error) {
	budget, err := scanBudgetRow(r.pool.QueryRow(context.Background(),
		budgetSelect+` WHERE b.category_id = $1`, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// GetAll retrieves all budgets with their categories resolved
func (r *BudgetRepository) GetAll() ([]*domain.Budget, error) {
	rows, err := r.pool.Query(context.Background(),
		budgetSelect+` ORDER BY c.name ASC NULLS LAST, b.created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	budgets := []*domain.Budget{}
	for rows.Next() {
		budget, err := scanBudgetRow(rows)
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

// UpdateLimit changes a budget's limit
func (r *BudgetRepository) UpdateLimit(id uuid.UUID, limit decimal.Decimal) (*domain.Budget, error) {
	result, err := r.pool.Exec(context.Background(), `
		UPDATE budgets SET limit_amount = $2 WHERE id = $1`,
		id, limit)
	if err != nil {
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrBudgetNotFound
	}
	return r.GetByID(id)
}

// Delete removes a budget
func (r *BudgetRepository) Delete(id uuid.UUID) error {
	result, err := r.pool.Exec(context.Background(),
		`DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrBudgetNotFound
	}
	return nil
}
