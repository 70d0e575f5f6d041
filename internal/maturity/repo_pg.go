package maturity

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres. The JSON document fields are stored
// as JSONB columns; aggregation is pushed to SQL so it stays correct as
// volume grows.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new assessment. The insert must return the row id to
// count as confirmed.
func (r *PGRepo) Create(ctx context.Context, a Assessment) error {
	const query = `
INSERT INTO digital_maturity_assessments (id, user_info, answers, results, created_at, ip_address, user_agent)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	userInfo, err := json.Marshal(a.UserInfo)
	if err != nil {
		return err
	}
	answers, err := json.Marshal(a.Answers)
	if err != nil {
		return err
	}
	results, err := json.Marshal(a.Results)
	if err != nil {
		return err
	}

	var returned string
	err = r.DB.QueryRowContext(ctx, query,
		a.ID,
		userInfo,
		answers,
		results,
		a.CreatedAt,
		a.IPAddress,
		a.UserAgent,
	).Scan(&returned)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrWriteNotConfirmed
	}
	return err
}

const selectColumns = `id, user_info, answers, results, created_at, ip_address, user_agent`

// GetByID returns an assessment by its identifier.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Assessment, error) {
	const query = `
SELECT ` + selectColumns + `
FROM digital_maturity_assessments
WHERE id::text = $1
LIMIT 1`
	a, err := scanAssessment(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Assessment{}, ErrNotFound
	}
	return a, err
}

// List returns assessments in insertion order, honoring limit/offset.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Assessment, error) {
	const query = `
SELECT ` + selectColumns + `
FROM digital_maturity_assessments
ORDER BY created_at, id
LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	return collectAssessments(rows)
}

// ListByCompany matches the embedded company field case-insensitively as a
// substring.
func (r *PGRepo) ListByCompany(ctx context.Context, company string, limit int) ([]Assessment, error) {
	const query = `
SELECT ` + selectColumns + `
FROM digital_maturity_assessments
WHERE user_info->>'company' ILIKE '%' || $1 || '%'
ORDER BY created_at, id
LIMIT $2`
	rows, err := r.DB.QueryContext(ctx, query, company, limit)
	if err != nil {
		return nil, err
	}
	return collectAssessments(rows)
}

// CountAll returns the total number of stored assessments.
func (r *PGRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM digital_maturity_assessments`).Scan(&count)
	return count, err
}

// CountSince returns the number of assessments created at or after the cutoff.
func (r *PGRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM digital_maturity_assessments WHERE created_at >= $1`, since).Scan(&count)
	return count, err
}

// StageDistribution groups assessments by maturity stage, most common first.
func (r *PGRepo) StageDistribution(ctx context.Context) ([]StageCount, error) {
	const query = `
SELECT COALESCE(results->>'maturity_stage', '') AS stage, COUNT(*) AS count
FROM digital_maturity_assessments
GROUP BY 1
ORDER BY count DESC, stage`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StageCount{}
	for rows.Next() {
		var sc StageCount
		if err := rows.Scan(&sc.Stage, &sc.Count); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

// SectionAverages computes the mean score per section name across all
// assessments, highest average first.
func (r *PGRepo) SectionAverages(ctx context.Context) ([]SectionAverage, error) {
	const query = `
SELECT s->>'name' AS name,
       AVG((s->>'score')::numeric)::float8 AS avg_score,
       COUNT(*) AS count
FROM digital_maturity_assessments,
     jsonb_array_elements(results->'section_scores') AS s
GROUP BY 1
ORDER BY avg_score DESC, name`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SectionAverage{}
	for rows.Next() {
		var sa SectionAverage
		if err := rows.Scan(&sa.Name, &sa.AvgScore, &sa.Count); err != nil {
			return nil, err
		}
		out = append(out, sa)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (Assessment, error) {
	var a Assessment
	var userInfo, answers, results []byte
	var ipAddress, userAgent sql.NullString
	if err := row.Scan(&a.ID, &userInfo, &answers, &results, &a.CreatedAt, &ipAddress, &userAgent); err != nil {
		return Assessment{}, err
	}
	if err := json.Unmarshal(userInfo, &a.UserInfo); err != nil {
		return Assessment{}, err
	}
	if err := json.Unmarshal(answers, &a.Answers); err != nil {
		return Assessment{}, err
	}
	if err := json.Unmarshal(results, &a.Results); err != nil {
		return Assessment{}, err
	}
	if ipAddress.Valid {
		a.IPAddress = &ipAddress.String
	}
	if userAgent.Valid {
		a.UserAgent = &userAgent.String
	}
	return a, nil
}

func collectAssessments(rows *sql.Rows) ([]Assessment, error) {
	defer rows.Close()
	out := []Assessment{}
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
