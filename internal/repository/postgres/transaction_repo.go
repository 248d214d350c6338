package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/OP3690/finance-tracker/internal/domain"
)

// TransactionRepository implements domain.TransactionRepository using PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// Create creates a new transaction
func (r *TransactionRepository) Create(transaction *domain.Transaction) (*domain.Transaction, error) {
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}

	err := r.pool.QueryRow(context.Background(), `
		INSERT INTO transactions (id, date, category, description, amount, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		transaction.ID, transaction.Date, transaction.Category,
		transaction.Description, transaction.Amount, transaction.Comment,
	).Scan(&transaction.CreatedAt)
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(id uuid.UUID) (*domain.Transaction, error) {
	transaction := &domain.Transaction{}
	err := r.pool.QueryRow(context.Background(), `
		SELECT id, date, category, description, amount, comment, created_at
		FROM transactions
		WHERE id = $1`,
		id,
	).Scan(
		&transaction.ID, &transaction.Date, &transaction.Category,
		&transaction.Description, &transaction.Amount, &transaction.Comment,
		&transaction.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

// GetAll retrieves transactions matching the given filters, newest first
func (r *TransactionRepository) GetAll(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	query := `
		SELECT id, date, category, description, amount, comment, created_at
		FROM transactions`
	var args []interface{}
	var conditions []string

	if filters != nil {
		if filters.Month != nil {
			args = append(args, *filters.Month)
			conditions = append(conditions, fmt.Sprintf("date_trunc('month', date) = date_trunc('month', $%d::timestamptz)", len(args)))
		}
		if filters.StartDate != nil {
			args = append(args, *filters.StartDate)
			conditions = append(conditions, fmt.Sprintf("date >= $%d", len(args)))
		}
		if filters.EndDate != nil {
			args = append(args, *filters.EndDate)
			conditions = append(conditions, fmt.Sprintf("date <= $%d", len(args)))
		}
		if filters.Category != nil {
			args = append(args, *filters.Category)
			conditions = append(conditions, fmt.Sprintf("lower(category) = lower($%d)", len(args)))
		}
	}
	for i, c := range conditions {
		if i == 0 {
			query += "\n\t\tWHERE " + c
		} else {
			query += " AND " + c
		}
	}
	query += "\n\t\tORDER BY date DESC, created_at DESC"

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []*domain.Transaction{}
	for rows.Next() {
		transaction := &domain.Transaction{}
		if err := rows.Scan(
			&transaction.ID, &transaction.Date, &transaction.Category,
			&transaction.Description, &transaction.Amount, &transaction.Comment,
			&transaction.CreatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

// Update replaces the mutable fields of a transaction
func (r *TransactionRepository) Update(transaction *domain.Transaction) (*domain.Transaction, error) {
	err := r.pool.QueryRow(context.Background(), `
		UPDATE transactions
		SET date = $2, category = $3, description = $4, amount = $5, comment = $6
		WHERE id = $1
		RETURNING created_at`,
		transaction.ID, transaction.Date, transaction.Category,
		transaction.Description, transaction.Amount, transaction.Comment,
	).Scan(&transaction.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(id uuid.UUID) error {
	result, err := r.pool.Exec(context.Background(),
		`DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}
