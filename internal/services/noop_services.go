package services

import (
	"context"

	"rightsteps/internal/config"
	"rightsteps/internal/models"
	"rightsteps/internal/store"
)

// NoopCompletionService stands in when AI search is switched off. Every call
// fails, so searches resolve to the fallback answer.
type NoopCompletionService struct{}

func NewNoopCompletionService() CompletionService {
	return &NoopCompletionService{}
}

func (s *NoopCompletionService) GenerateChatCompletion(ctx context.Context, messages []ChatMessage, opts SamplingOptions) (string, error) {
	return "", models.NewProviderError(s.Name(), ErrProviderDisabled)
}

func (s *NoopCompletionService) Status() store.ProviderStatus { return store.ProviderStatusDisabled }
func (s *NoopCompletionService) Name() string                 { return config.ProviderNone }
func (s *NoopCompletionService) ModelName() string            { return "" }
