package services

import (
	"context"
	"errors"

	"rightsteps/internal/store" // For ProviderStatus
)

// ChatMessageRole defines the role of the message sender (system, user, assistant).
type ChatMessageRole string

const (
	ChatMessageRoleSystem    ChatMessageRole = "system"
	ChatMessageRoleUser      ChatMessageRole = "user"
	ChatMessageRoleAssistant ChatMessageRole = "assistant" // Or "model" for Gemini
)

// ChatMessage represents a single message in a chat conversation.
type ChatMessage struct {
	Role    ChatMessageRole
	Content string
}

// SamplingOptions are the per-request generation knobs.
type SamplingOptions struct {
	Temperature float32
	MaxTokens   int
}

var (
	// ErrProviderDisabled is returned by providers constructed without credentials.
	ErrProviderDisabled = errors.New("completion provider is disabled")
	// ErrEmptyCompletion means the provider answered with no usable text.
	ErrEmptyCompletion = errors.New("completion provider returned no content")
)

// CompletionService defines the interface for generating chat responses.
// Implementations report every failure as a *models.ProviderError.
type CompletionService interface {
	GenerateChatCompletion(ctx context.Context, messages []ChatMessage, opts SamplingOptions) (string, error)
	Status() store.ProviderStatus
	Name() string      // Provider name (e.g., "openai", "gemini")
	ModelName() string // Specific model used
}
