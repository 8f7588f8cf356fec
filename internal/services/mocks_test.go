package services

import (
	"context"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/mock"

	"rightsteps/internal/costtracker"
	"rightsteps/internal/models"
	"rightsteps/internal/store"
)

type mockCompletion struct {
	mock.Mock
}

func (m *mockCompletion) GenerateChatCompletion(ctx context.Context, messages []ChatMessage, opts SamplingOptions) (string, error) {
	args := m.Called(ctx, messages, opts)
	return args.String(0), args.Error(1)
}

func (m *mockCompletion) Status() store.ProviderStatus { return store.ProviderStatusActive }
func (m *mockCompletion) Name() string                 { return "mock" }
func (m *mockCompletion) ModelName() string            { return "mock-model" }

type mockHistory struct {
	mock.Mock
}

func (m *mockHistory) RecordSearchQuery(ctx context.Context, q *models.SearchQuery) error {
	return m.Called(ctx, q).Error(0)
}

func (m *mockHistory) ListSearchQueries(ctx context.Context, limit int) ([]*models.SearchQuery, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SearchQuery), args.Error(1)
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) ListCourses(ctx context.Context) ([]models.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *mockCatalog) ListTutors(ctx context.Context) ([]models.Tutor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tutor), args.Error(1)
}

type mockCostTracker struct {
	mock.Mock
}

func (m *mockCostTracker) RecordCost(ctx context.Context, event costtracker.CostEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockCostTracker) TotalCost(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

type mockChatClient struct {
	mock.Mock
}

func (m *mockChatClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(openai.ChatCompletionResponse), args.Error(1)
}

type mockCostStore struct {
	mock.Mock
}

func (m *mockCostStore) RecordUsage(ctx context.Context, log *models.AIUsageLog) error {
	return m.Called(ctx, log).Error(0)
}

func (m *mockCostStore) ListUsage(ctx context.Context, limit, offset int) ([]*models.AIUsageLog, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AIUsageLog), args.Error(1)
}

func (m *mockCostStore) GetUsageSummary(ctx context.Context) (float64, int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Get(1).(int64), args.Get(2).(int64), args.Error(3)
}
