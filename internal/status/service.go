package status

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const defaultListLimit = 100

// Service contains business logic for the status-check log.
type Service struct {
	Repo Repo
}

// Log records a status check with a fresh identifier and timestamp.
func (s *Service) Log(ctx context.Context, clientName string) (Check, error) {
	check := Check{
		ID:         uuid.NewString(),
		ClientName: clientName,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, check); err != nil {
		return Check{}, err
	}
	return check, nil
}

// List returns recorded status checks in insertion order.
func (s *Service) List(ctx context.Context, limit int) ([]Check, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.Repo.List(ctx, limit)
}
