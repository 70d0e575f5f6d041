package maturity

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo for dev mode and tests.
// Aggregates are computed as folds here since there is no query layer.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []Assessment
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends a new assessment in insertion order.
func (r *MemoryRepo) Create(ctx context.Context, a Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, a)
	return nil
}

// GetByID returns an assessment by its identifier.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Assessment, error) {
	if err := ctx.Err(); err != nil {
		return Assessment{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.data {
		if r.data[i].ID == id {
			return r.data[i], nil
		}
	}
	return Assessment{}, ErrNotFound
}

// List returns assessments in insertion order, honoring limit/offset.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(r.data) {
		return []Assessment{}, nil
	}
	end := len(r.data)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]Assessment, end-offset)
	copy(out, r.data[offset:end])
	return out, nil
}

// ListByCompany matches the embedded company field case-insensitively as a
// substring.
func (r *MemoryRepo) ListByCompany(ctx context.Context, company string, limit int) ([]Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(company)
	out := []Assessment{}
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

// CountAll returns the total number of stored assessments.
func (r *MemoryRepo) CountAll(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data), nil
}

// CountSince returns the number of assessments created at or after the cutoff.
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

// StageDistribution groups assessments by maturity stage, most common first.
func (r *MemoryRepo) StageDistribution(ctx context.Context) ([]StageCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	counts := map[string]int{}
	for i := range r.data {
		counts[r.data[i].Results.MaturityStage]++
	}
	r.mu.RUnlock()

	out := make([]StageCount, 0, len(counts))
	for stage, count := range counts {
		out = append(out, StageCount{Stage: stage, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Stage < out[j].Stage
	})
	return out, nil
}

// SectionAverages computes the mean score per section name, highest first.
func (r *MemoryRepo) SectionAverages(ctx context.Context) ([]SectionAverage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	type acc struct {
		sum   float64
		count int
	}
	r.mu.RLock()
	sums := map[string]*acc{}
	for i := range r.data {
		for _, s := range r.data[i].Results.SectionScores {
			a, ok := sums[s.Name]
			if !ok {
				a = &acc{}
				sums[s.Name] = a
			}
			a.sum += float64(s.Score)
			a.count++
		}
	}
	r.mu.RUnlock()

	out := make([]SectionAverage, 0, len(sums))
	for name, a := range sums {
		out = append(out, SectionAverage{Name: name, AvgScore: a.sum / float64(a.count), Count: a.count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgScore != out[j].AvgScore {
			return out[i].AvgScore > out[j].AvgScore
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
