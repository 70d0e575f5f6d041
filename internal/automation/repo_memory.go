package automation

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo for dev mode and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Result
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends a new result in insertion order.
func (r *MemoryRepo) Create(ctx context.Context, res Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, res)
	return nil
}

// GetByID returns a result by its identifier.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.data {
		if r.data[i].ID == id {
			return r.data[i], nil
		}
	}
	return Result{}, ErrNotFound
}

// List returns results in insertion order, honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.data) {
		return []Result{}, nil
	}
	end := len(r.data)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]Result, end-offset)
	copy(out, r.data[offset:end])
	return out, nil
}

// ListByCompany matches the embedded company field case-insensitively as a
// substring.
func (r *MemoryRepo) ListByCompany(ctx context.Context, company string, limit int) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(company)
	out := []Result{}
	for i := range r.data {
		if strings.Contains(strings.ToLower(r.data[i].UserInfo.Company), needle) {
			out = append(out, r.data[i])
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

// CountAll returns the total number of stored results.
func (r *MemoryRepo) CountAll(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data), nil
}

// CountSince returns the number of results created at or after the cutoff.
func (r *MemoryRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for i := range r.data {
		if !r.data[i].CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

var _ Repo = (*MemoryRepo)(nil)
