package status

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new status check.
func (r *PGRepo) Create(ctx context.Context, check Check) error {
	const query = `
INSERT INTO status_checks (id, client_name, created_at)
VALUES ($1, $2, $3)
RETURNING id`
	var returned string
	err := r.DB.QueryRowContext(ctx, query, check.ID, check.ClientName, check.CreatedAt).Scan(&returned)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrWriteNotConfirmed
	}
	return err
}

// List returns status checks in insertion order.
func (r *PGRepo) List(ctx context.Context, limit int) ([]Check, error) {
	const query = `
SELECT id, client_name, created_at
FROM status_checks
ORDER BY created_at, id
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Check{}
	for rows.Next() {
		var check Check
		if err := rows.Scan(&check.ID, &check.ClientName, &check.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, check)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
