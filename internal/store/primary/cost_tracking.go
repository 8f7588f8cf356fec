package primary

import (
	"context"
	"fmt"
	"time"

	"rightsteps/internal/models"
	"rightsteps/internal/store"
)

// RecordUsage inserts a new AI usage log entry.
func (s *StoreImpl) RecordUsage(ctx context.Context, log *models.AIUsageLog) error {
	query := s.db.Rebind(`
		INSERT INTO ai_usage_logs (
			timestamp, provider_name, service_type, model_name,
			input_tokens, output_tokens, cost
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}
	err := s.db.QueryRowxContext(ctx, query,
		log.Timestamp,
		log.ProviderName,
		log.ServiceType,
		log.ModelName,
		log.InputTokens,
		log.OutputTokens,
		log.Cost,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("failed to insert ai_usage_log: %w", err)
	}
	return nil
}

// ListUsage returns a page of AI usage logs, newest first.
func (s *StoreImpl) ListUsage(ctx context.Context, limit, offset int) ([]*models.AIUsageLog, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := s.db.Rebind(`
		SELECT id, timestamp, provider_name, service_type, model_name,
		       input_tokens, output_tokens, cost
		FROM ai_usage_logs
		ORDER BY timestamp DESC, id DESC
		LIMIT ? OFFSET ?`)

	logs := []*models.AIUsageLog{}
	if err := s.db.SelectContext(ctx, &logs, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to query ai_usage_logs: %w", err)
	}
	return logs, nil
}

// GetUsageSummary returns the total cost and token usage.
func (s *StoreImpl) GetUsageSummary(ctx context.Context) (totalCost float64, totalInputTokens, totalOutputTokens int64, err error) {
	query := `
		SELECT
			CAST(COALESCE(SUM(cost), 0) AS DOUBLE PRECISION),
			CAST(COALESCE(SUM(input_tokens), 0) AS BIGINT),
			CAST(COALESCE(SUM(output_tokens), 0) AS BIGINT)
		FROM ai_usage_logs`
	err = s.db.QueryRowxContext(ctx, query).Scan(&totalCost, &totalInputTokens, &totalOutputTokens)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to summarize ai_usage_logs: %w", err)
	}
	return totalCost, totalInputTokens, totalOutputTokens, nil
}

var _ store.CostTrackingStore = (*StoreImpl)(nil)
