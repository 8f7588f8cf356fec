package primary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rightsteps/internal/models"
	"rightsteps/internal/store"
)

func setupTestStore(t *testing.T) *StoreImpl {
	t.Helper()
	s, err := NewPrimaryStore(context.Background(), DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewPrimaryStore_Validation(t *testing.T) {
	_, err := NewPrimaryStore(context.Background(), DriverSQLite, "")
	assert.Error(t, err)

	_, err = NewPrimaryStore(context.Background(), "mysql", "user@/db")
	assert.True(t, errors.Is(err, store.ErrUnsupportedDriver))
}

func TestSearchHistory_RecordAndList(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	first := &models.SearchQuery{Query: "math tutor", TutorCount: 2, ExecutedAt: base}
	second := &models.SearchQuery{
		Query:           "check my child progress",
		IncludeProgress: true,
		CourseCount:     3,
		TutorCount:      1,
		AnswerPreview:   "I've analysed your child's progress.",
		ExecutedAt:      base.Add(time.Minute),
	}
	require.NoError(t, s.RecordSearchQuery(ctx, first))
	require.NoError(t, s.RecordSearchQuery(ctx, second))
	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	got, err := s.ListSearchQueries(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "check my child progress", got[0].Query, "newest first")
	assert.True(t, got[0].IncludeProgress)
	assert.Equal(t, 3, got[0].CourseCount)
	assert.Equal(t, "I've analysed your child's progress.", got[0].AnswerPreview)
	assert.False(t, got[1].IncludeProgress)

	limited, err := s.ListSearchQueries(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestCostTracking_RecordListSummary(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	cost, in, out, err := s.GetUsageSummary(ctx)
	require.NoError(t, err)
	assert.Zero(t, cost)
	assert.Zero(t, in)
	assert.Zero(t, out)

	require.NoError(t, s.RecordUsage(ctx, &models.AIUsageLog{
		ProviderName: "openai", ServiceType: "recommendation", ModelName: "gpt-4o-mini",
		InputTokens: 1000, OutputTokens: 200, Cost: 0.00027,
	}))
	require.NoError(t, s.RecordUsage(ctx, &models.AIUsageLog{
		ProviderName: "openai", ServiceType: "recommendation", ModelName: "gpt-4o-mini",
		InputTokens: 500, OutputTokens: 100, Cost: 0.000135,
	}))

	logs, err := s.ListUsage(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "gpt-4o-mini", logs[0].ModelName)
	assert.False(t, logs[0].Timestamp.IsZero())

	paged, err := s.ListUsage(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, paged, 1)

	cost, in, out, err = s.GetUsageSummary(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0.000405, cost, 1e-9)
	assert.Equal(t, int64(1500), in)
	assert.Equal(t, int64(300), out)
}

func TestPing(t *testing.T) {
	s := setupTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}
