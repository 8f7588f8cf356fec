package services

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"

	"rightsteps/internal/config"
	"rightsteps/internal/costtracker"
	"rightsteps/internal/models"
	"rightsteps/internal/store"
)

// ServiceTypeRecommendation labels cost records produced by AI search.
const ServiceTypeRecommendation = "recommendation"

// ChatCompletionCreator is the slice of the go-openai client the provider
// needs. Tests substitute a fake.
type ChatCompletionCreator interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider implements CompletionService using the OpenAI chat API, or
// any server that speaks it when a base URL is configured.
type OpenAIProvider struct {
	client      ChatCompletionCreator
	model       string
	costTracker costtracker.CostTracker
	pricing     map[string]config.PricingInfo
}

// NewOpenAIProvider creates a provider. Without an API key it is returned
// disabled and every call fails with ErrProviderDisabled.
func NewOpenAIProvider(apiKey, baseURL, model string, tracker costtracker.CostTracker, pricing map[string]config.PricingInfo) *OpenAIProvider {
	if apiKey == "" {
		log.Warn("OpenAI API key not provided. OpenAI provider will be disabled.")
		return &OpenAIProvider{model: model}
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientCfg.BaseURL = baseURL
	}
	log.Infof("OpenAI completion provider initialized with model %s", model)
	return NewOpenAIProviderWithClient(openai.NewClientWithConfig(clientCfg), model, tracker, pricing)
}

// NewOpenAIProviderWithClient wires an existing client.
func NewOpenAIProviderWithClient(client ChatCompletionCreator, model string, tracker costtracker.CostTracker, pricing map[string]config.PricingInfo) *OpenAIProvider {
	return &OpenAIProvider{
		client:      client,
		model:       model,
		costTracker: tracker,
		pricing:     pricing,
	}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string { return config.ProviderOpenAI }

// ModelName returns the specific model identifier.
func (p *OpenAIProvider) ModelName() string { return p.model }

// Status returns the operational status of the provider.
func (p *OpenAIProvider) Status() store.ProviderStatus {
	if p.client == nil {
		return store.ProviderStatusDisabled
	}
	return store.ProviderStatusActive
}

func (p *OpenAIProvider) GenerateChatCompletion(ctx context.Context, messages []ChatMessage, opts SamplingOptions) (string, error) {
	if p.client == nil {
		return "", models.NewProviderError(p.Name(), ErrProviderDisabled)
	}

	req := openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
		Temperature: opts.Temperature,
		MaxTokens:   opts.MaxTokens,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", models.NewProviderError(p.Name(), fmt.Errorf("openai chat completion: %w", err))
	}
	if len(resp.Choices) == 0 {
		return "", models.NewProviderError(p.Name(), fmt.Errorf("no completion choices returned: %w", ErrEmptyCompletion))
	}

	p.recordCost(ctx, resp.Usage)

	return resp.Choices[0].Message.Content, nil
}

// recordCost logs token usage. Failures here never fail the completion.
func (p *OpenAIProvider) recordCost(ctx context.Context, usage openai.Usage) {
	if p.costTracker == nil || usage.TotalTokens == 0 {
		return
	}
	price, ok := p.pricing[p.model]
	if !ok {
		log.Warnf("Pricing info not found for model '%s'. Cost recorded as zero.", p.model)
	}
	event := costtracker.CostEvent{
		Operation:    ServiceTypeRecommendation,
		Provider:     p.Name(),
		Model:        p.model,
		InputTokens:  usage.PromptTokens,
		OutputTokens: usage.CompletionTokens,
		AmountUSD:    costtracker.Estimate(price, usage.PromptTokens, usage.CompletionTokens),
	}
	// The tokens are billed even if the caller has already gone away.
	if err := p.costTracker.RecordCost(context.WithoutCancel(ctx), event); err != nil {
		log.Errorf("Failed to record AI usage log for recommendation: %v", err)
	}
}

var _ CompletionService = (*OpenAIProvider)(nil)
