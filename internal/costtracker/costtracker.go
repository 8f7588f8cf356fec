package costtracker

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"rightsteps/internal/config"
	"rightsteps/internal/metrics"
	"rightsteps/internal/models"
	"rightsteps/internal/store"
)

// CostEvent represents a single AI usage event and its cost.
type CostEvent struct {
	Operation    string // e.g., "recommendation"
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	AmountUSD    float64
	Timestamp    time.Time
}

// CostTracker provides methods to record and report costs.
type CostTracker interface {
	RecordCost(ctx context.Context, event CostEvent) error
	TotalCost(ctx context.Context) (float64, error)
}

// Estimate prices a completion from its token counts.
func Estimate(price config.PricingInfo, inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*price.InputPerToken + float64(outputTokens)*price.OutputPerToken
}

// New returns a tracker that persists events to s. A nil store yields a
// tracker that only feeds the Prometheus counters.
func New(s store.CostTrackingStore) CostTracker {
	if s == nil {
		return &noopCostTracker{}
	}
	return &storeCostTracker{store: s}
}

type storeCostTracker struct {
	store store.CostTrackingStore
}

func (t *storeCostTracker) RecordCost(ctx context.Context, event CostEvent) error {
	metrics.RecordUsage(event.Provider, event.Model, event.InputTokens, event.OutputTokens, event.AmountUSD)

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	entry := &models.AIUsageLog{
		Timestamp:    event.Timestamp,
		ProviderName: event.Provider,
		ServiceType:  event.Operation,
		ModelName:    event.Model,
		InputTokens:  event.InputTokens,
		OutputTokens: event.OutputTokens,
		Cost:         event.AmountUSD,
	}
	if err := t.store.RecordUsage(ctx, entry); err != nil {
		return fmt.Errorf("failed to record AI usage: %w", err)
	}
	log.Debugf("Recorded AI usage: Provider=%s, Service=%s, Model=%s, InputTokens=%d, OutputTokens=%d, Cost=%.8f",
		entry.ProviderName, entry.ServiceType, entry.ModelName, entry.InputTokens, entry.OutputTokens, entry.Cost)
	return nil
}

func (t *storeCostTracker) TotalCost(ctx context.Context) (float64, error) {
	total, _, _, err := t.store.GetUsageSummary(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to summarize AI usage: %w", err)
	}
	return total, nil
}

type noopCostTracker struct{}

func (n *noopCostTracker) RecordCost(ctx context.Context, event CostEvent) error {
	metrics.RecordUsage(event.Provider, event.Model, event.InputTokens, event.OutputTokens, event.AmountUSD)
	return nil
}

func (n *noopCostTracker) TotalCost(ctx context.Context) (float64, error) { return 0, nil }
