package automation

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new automation result. The insert must return the row id
// to count as confirmed.
func (r *PGRepo) Create(ctx context.Context, res Result) error {
	const query = `
INSERT INTO automation_assessments (id, user_info, task_analysis, recommendations, priority_tasks, automation_score, created_at, ip_address, user_agent)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`

	userInfo, err := json.Marshal(res.UserInfo)
	if err != nil {
		return err
	}
	taskAnalysis, err := json.Marshal(res.TaskAnalysis)
	if err != nil {
		return err
	}
	recommendations, err := json.Marshal(res.Recommendations)
	if err != nil {
		return err
	}
	priorityTasks, err := json.Marshal(res.PriorityTasks)
	if err != nil {
		return err
	}

	var returned string
	err = r.DB.QueryRowContext(ctx, query,
		res.ID,
		userInfo,
		taskAnalysis,
		recommendations,
		priorityTasks,
		res.AutomationScore,
		res.CreatedAt,
		res.IPAddress,
		res.UserAgent,
	).Scan(&returned)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrWriteNotConfirmed
	}
	return err
}

const selectColumns = `id, user_info, task_analysis, recommendations, priority_tasks, automation_score, created_at, ip_address, user_agent`

// GetByID returns an automation result by its identifier.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Result, error) {
	const query = `
SELECT ` + selectColumns + `
FROM automation_assessments
WHERE id::text = $1
LIMIT 1`
	res, err := scanResult(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Result{}, ErrNotFound
	}
	return res, err
}

// List returns results in insertion order, honoring limit/offset.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Result, error) {
	const query = `
SELECT ` + selectColumns + `
FROM automation_assessments
ORDER BY created_at, id
LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectResults(rows)
}

// ListByCompany matches the embedded company field case-insensitively as a
// substring.
func (r *PGRepo) ListByCompany(ctx context.Context, company string, limit int) ([]Result, error) {
	const query = `
SELECT ` + selectColumns + `
FROM automation_assessments
WHERE user_info->>'company' ILIKE '%' || $1 || '%'
ORDER BY created_at, id
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, company, limit)
	if err != nil {
		return nil, err
	}
	return collectResults(rows)
}

// CountAll returns the total number of stored results.
func (r *PGRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM automation_assessments`).Scan(&count)
	return count, err
}

// CountSince returns the number of results created at or after the cutoff.
func (r *PGRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM automation_assessments WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (Result, error) {
	var res Result
	var userInfo, taskAnalysis, recommendations, priorityTasks []byte
	var ipAddress, userAgent sql.NullString
	if err := row.Scan(&res.ID, &userInfo, &taskAnalysis, &recommendations, &priorityTasks, &res.AutomationScore, &res.CreatedAt, &ipAddress, &userAgent); err != nil {
		return Result{}, err
	}
	if err := json.Unmarshal(userInfo, &res.UserInfo); err != nil {
		return Result{}, err
	}
	if err := json.Unmarshal(taskAnalysis, &res.TaskAnalysis); err != nil {
		return Result{}, err
	}
	if err := json.Unmarshal(recommendations, &res.Recommendations); err != nil {
		return Result{}, err
	}
	if err := json.Unmarshal(priorityTasks, &res.PriorityTasks); err != nil {
		return Result{}, err
	}
	if ipAddress.Valid {
		res.IPAddress = &ipAddress.String
	}
	if userAgent.Valid {
		res.UserAgent = &userAgent.String
	}
	return res, nil
}

func collectResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()
	out := []Result{}
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
