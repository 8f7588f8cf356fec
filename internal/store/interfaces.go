package store

import (
	"context"

	"rightsteps/internal/models"
)

// --- Provider Status (Defined here to break import cycle) ---

type ProviderStatus int

const (
	ProviderStatusUnknown  ProviderStatus = iota // Default zero value
	ProviderStatusActive                         // Provider is operational
	ProviderStatusInactive                       // Provider is temporarily unavailable (e.g. circuit open)
	ProviderStatusDisabled                       // Provider is not configured or explicitly disabled
)

func (s ProviderStatus) String() string {
	switch s {
	case ProviderStatusActive:
		return "active"
	case ProviderStatusInactive:
		return "inactive"
	case ProviderStatusDisabled:
		return "disabled"
	}
	return "unknown"
}

// --- Catalog Store ---

// CatalogStore is read-only enumeration of the marketplace catalog.
// Implementations return copies; callers may reorder the slices freely.
type CatalogStore interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	ListTutors(ctx context.Context) ([]models.Tutor, error)
}

// --- Progress Source ---

type ProgressSource interface {
	GetSnapshot(ctx context.Context, learnerID string) (*models.LearnerProgressSnapshot, error)
}

// --- Search History Store ---

type SearchHistoryStore interface {
	RecordSearchQuery(ctx context.Context, q *models.SearchQuery) error
	ListSearchQueries(ctx context.Context, limit int) ([]*models.SearchQuery, error)
}

// --- Cost Tracking Store ---

type CostTrackingStore interface {
	RecordUsage(ctx context.Context, log *models.AIUsageLog) error
	ListUsage(ctx context.Context, limit, offset int) ([]*models.AIUsageLog, error)
	GetUsageSummary(ctx context.Context) (totalCost float64, totalInputTokens, totalOutputTokens int64, err error)
}

// --- Primary Store ---

// PrimaryStore is the database-backed store: search history plus usage logs.
type PrimaryStore interface {
	SearchHistoryStore
	CostTrackingStore
	Ping(ctx context.Context) error
	Close() error
}
