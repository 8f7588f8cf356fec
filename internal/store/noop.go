package store

import (
	"context"

	"rightsteps/internal/models"
)

// NoopStore is used when no database is configured. Writes are dropped and
// reads return empty results.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (s *NoopStore) RecordSearchQuery(ctx context.Context, q *models.SearchQuery) error { return nil }

func (s *NoopStore) ListSearchQueries(ctx context.Context, limit int) ([]*models.SearchQuery, error) {
	return []*models.SearchQuery{}, nil
}

func (s *NoopStore) RecordUsage(ctx context.Context, log *models.AIUsageLog) error { return nil }

func (s *NoopStore) ListUsage(ctx context.Context, limit, offset int) ([]*models.AIUsageLog, error) {
	return []*models.AIUsageLog{}, nil
}

func (s *NoopStore) GetUsageSummary(ctx context.Context) (float64, int64, int64, error) {
	return 0, 0, 0, nil
}

// Ping reports that there is no database behind this store.
func (s *NoopStore) Ping(ctx context.Context) error { return ErrStoreDisabled }

func (s *NoopStore) Close() error { return nil }

var _ PrimaryStore = (*NoopStore)(nil)
