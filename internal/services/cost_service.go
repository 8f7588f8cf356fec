package services

import (
	"context"
	"fmt"

	"rightsteps/internal/models"
	"rightsteps/internal/store"
)

// UsageSummary totals every recorded completion call.
type UsageSummary struct {
	TotalCostUSD      float64 `json:"totalCostUsd"`
	TotalInputTokens  int64   `json:"totalInputTokens"`
	TotalOutputTokens int64   `json:"totalOutputTokens"`
}

// CostService provides read access to AI usage cost data.
type CostService struct {
	store store.CostTrackingStore
}

// NewCostService creates a new CostService.
func NewCostService(store store.CostTrackingStore) *CostService {
	return &CostService{store: store}
}

// ListUsage retrieves a paginated list of AI usage logs, newest first.
func (s *CostService) ListUsage(ctx context.Context, limit, offset int) ([]*models.AIUsageLog, error) {
	logs, err := s.store.ListUsage(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list usage logs from store: %w", err)
	}
	return logs, nil
}

// GetSummary retrieves the total cost and token usage summary.
func (s *CostService) GetSummary(ctx context.Context) (*UsageSummary, error) {
	cost, in, out, err := s.store.GetUsageSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get usage summary from store: %w", err)
	}
	return &UsageSummary{TotalCostUSD: cost, TotalInputTokens: in, TotalOutputTokens: out}, nil
}

// HistoryService reads back recorded AI searches.
type HistoryService struct {
	store store.SearchHistoryStore
}

func NewHistoryService(s store.SearchHistoryStore) *HistoryService {
	return &HistoryService{store: s}
}

// Recent returns up to limit searches, newest first.
func (s *HistoryService) Recent(ctx context.Context, limit int) ([]*models.SearchQuery, error) {
	if limit <= 0 {
		limit = 20
	}
	queries, err := s.store.ListSearchQueries(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list search history: %w", err)
	}
	return queries, nil
}
