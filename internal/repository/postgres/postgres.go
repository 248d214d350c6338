// Package postgres implements the domain repositories with raw SQL over a
// pgx connection pool.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isPgUniqueViolation checks if an error is a PostgreSQL unique constraint violation
func isPgUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	// PostgreSQL unique violation error code is 23505
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
