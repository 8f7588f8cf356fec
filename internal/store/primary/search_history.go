package primary

import (
	"context"
	"fmt"
	"time"

	"rightsteps/internal/models"
	"rightsteps/internal/store"
)

// --- Search History Store Implementation ---

func (s *StoreImpl) RecordSearchQuery(ctx context.Context, q *models.SearchQuery) error {
	query := s.db.Rebind(`
		INSERT INTO search_queries (query, include_progress, course_count, tutor_count, fallback, answer_preview, executed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	if q.ExecutedAt.IsZero() {
		q.ExecutedAt = time.Now().UTC()
	}

	err := s.db.QueryRowxContext(ctx, query,
		q.Query, q.IncludeProgress, q.CourseCount, q.TutorCount, q.Fallback, q.AnswerPreview, q.ExecutedAt,
	).Scan(&q.ID)
	if err != nil {
		return fmt.Errorf("failed to record search query: %w", err)
	}
	return nil
}

func (s *StoreImpl) ListSearchQueries(ctx context.Context, limit int) ([]*models.SearchQuery, error) {
	if limit <= 0 {
		limit = 20 // Default limit
	}
	query := s.db.Rebind(`
		SELECT id, query, include_progress, course_count, tutor_count, fallback, answer_preview, executed_at
		FROM search_queries
		ORDER BY executed_at DESC, id DESC
		LIMIT ?`)

	queries := []*models.SearchQuery{}
	if err := s.db.SelectContext(ctx, &queries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list search queries: %w", err)
	}
	return queries, nil
}

var _ store.SearchHistoryStore = (*StoreImpl)(nil)
