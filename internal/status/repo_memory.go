package status

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo for dev mode and tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Check
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends a new check in insertion order.
func (r *MemoryRepo) Create(ctx context.Context, check Check) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, check)
	return nil
}

// List returns checks in insertion order, honoring limit.
func (r *MemoryRepo) List(ctx context.Context, limit int) ([]Check, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	end := len(r.data)
	if limit > 0 && limit < end {
		end = limit
	}
	out := make([]Check, end)
	copy(out, r.data[:end])
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
