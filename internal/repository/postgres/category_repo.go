package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/OP3690/finance-tracker/internal/domain"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// Create creates a new category. Name uniqueness is enforced by a
// case-insensitive unique index.
func (r *CategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if category.Descriptions == nil {
		category.Descriptions = []string{}
	}

	err := r.pool.QueryRow(context.Background(), `
		INSERT INTO categories (id, name, descriptions)
		VALUES ($1, $2, $3)
		RETURNING created_at`,
		category.ID, category.Name, category.Descriptions,
	).Scan(&category.CreatedAt)
	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, domain.ErrCategoryExists
		}
		return nil, err
	}
	return category, nil
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(id uuid.UUID) (*domain.Category, error) {
	category := &domain.Category{}
	err := r.pool.QueryRow(context.Background(), `
		SELECT id, name, descriptions, created_at
		FROM categories
		WHERE id = $1`,
		id,
	).Scan(&category.ID, &category.Name, &category.Descriptions, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// GetByName retrieves a category by name, case-insensitively
func (r *CategoryRepository) GetByName(name string) (*domain.Category, error) {
	category := &domain.Category{}
	err := r.pool.QueryRow(context.Background(), `
		SELECT id, name, descriptions, created_at
		FROM categories
		WHERE lower(name) = lower($1)`,
		name,
	).Scan(&category.ID, &category.Name, &category.Descriptions, &category.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// GetAll retrieves all categories ordered by name
func (r *CategoryRepository) GetAll() ([]*domain.Category, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT id, name, descriptions, created_at
		FROM categories
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		category := &domain.Category{}
		if err := rows.Scan(&category.ID, &category.Name, &category.Descriptions, &category.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// Update replaces a category's name and descriptions
func (r *CategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	if category.Descriptions == nil {
		category.Descriptions = []string{}
	}

	result, err := r.pool.Exec(context.Background(), `
		UPDATE categories
		SET name = $2, descriptions = $3
		WHERE id = $1`,
		category.ID, category.Name, category.Descriptions)
	if err != nil {
		if isPgUniqueViolation(err) {
			return nil, domain.ErrCategoryExists
		}
		return nil, err
	}
	if result.RowsAffected() == 0 {
		return nil, domain.ErrCategoryNotFound
	}
	return category, nil
}

// Delete removes a category. Budgets referencing it keep their row and
// become orphaned (category_id has no FK cascade).
func (r *CategoryRepository) Delete(id uuid.UUID) error {
	result, err := r.pool.Exec(context.Background(),
		`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Count returns the number of stored categories
func (r *CategoryRepository) Count() (int64, error) {
	var count int64
	err := r.pool.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM categories`).Scan(&count)
	return count, err
}
