package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"rightsteps/internal/config"
	"rightsteps/internal/costtracker"
	"rightsteps/internal/models"
	"rightsteps/internal/store"
)

// GeminiProvider implements CompletionService using the Google Gemini API.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	costTracker costtracker.CostTracker
	pricing     map[string]config.PricingInfo
}

// NewGeminiProvider creates a Gemini completion provider. Without an API key
// it is returned disabled.
func NewGeminiProvider(ctx context.Context, apiKey, model string, tracker costtracker.CostTracker, pricing map[string]config.PricingInfo) (*GeminiProvider, error) {
	if apiKey == "" {
		log.Warn("Gemini API key not provided. Gemini provider will be disabled.")
		return &GeminiProvider{model: model}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	log.Infof("Gemini completion provider initialized with model %s", model)
	return &GeminiProvider{
		client:      client,
		model:       model,
		costTracker: tracker,
		pricing:     pricing,
	}, nil
}

// Name returns the provider name.
func (p *GeminiProvider) Name() string { return config.ProviderGemini }

// ModelName returns the specific model identifier.
func (p *GeminiProvider) ModelName() string { return p.model }

// Status returns the operational status of the provider.
func (p *GeminiProvider) Status() store.ProviderStatus {
	if p.client == nil {
		return store.ProviderStatusDisabled
	}
	return store.ProviderStatusActive
}

// GenerateChatCompletion sends system messages as the system instruction and
// the remaining messages as the prompt.
func (p *GeminiProvider) GenerateChatCompletion(ctx context.Context, messages []ChatMessage, opts SamplingOptions) (string, error) {
	if p.client == nil {
		return "", models.NewProviderError(p.Name(), ErrProviderDisabled)
	}

	system, prompt := splitMessages(messages)

	// A fresh model handle per call keeps settings out of shared state.
	gm := p.client.GenerativeModel(p.model)
	gm.SetTemperature(opts.Temperature)
	if opts.MaxTokens > 0 {
		gm.SetMaxOutputTokens(int32(opts.MaxTokens))
	}
	if system != "" {
		gm.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	resp, err := gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", models.NewProviderError(p.Name(), fmt.Errorf("gemini generate content: %w", err))
	}

	text := responseText(resp)
	if text == "" {
		return "", models.NewProviderError(p.Name(), ErrEmptyCompletion)
	}

	if resp.UsageMetadata != nil {
		p.recordCost(ctx, int(resp.UsageMetadata.PromptTokenCount), int(resp.UsageMetadata.CandidatesTokenCount))
	}
	return text, nil
}

func (p *GeminiProvider) recordCost(ctx context.Context, inputTokens, outputTokens int) {
	if p.costTracker == nil || inputTokens+outputTokens == 0 {
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
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		AmountUSD:    costtracker.Estimate(price, inputTokens, outputTokens),
	}
	// The tokens are billed even if the caller has already gone away.
	if err := p.costTracker.RecordCost(context.WithoutCancel(ctx), event); err != nil {
		log.Errorf("Failed to record AI usage log for recommendation: %v", err)
	}
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

// splitMessages joins system messages into one instruction and the rest
// into one prompt, each separated by a blank line.
func splitMessages(messages []ChatMessage) (system, prompt string) {
	var sys, rest []string
	for _, m := range messages {
		if m.Role == ChatMessageRoleSystem {
			sys = append(sys, m.Content)
		} else {
			rest = append(rest, m.Content)
		}
	}
	return strings.Join(sys, "\n\n"), strings.Join(rest, "\n\n")
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

var _ CompletionService = (*GeminiProvider)(nil)
