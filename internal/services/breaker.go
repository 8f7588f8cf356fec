package services

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	log "github.com/sirupsen/logrus"

	"rightsteps/internal/metrics"
	"rightsteps/internal/models"
	"rightsteps/internal/store"
)

// BreakerSettings configures BreakerCompletionService.
type BreakerSettings struct {
	FailureThreshold uint32        // consecutive failures that open the circuit
	MaxRequests      uint32        // trial requests allowed while half-open
	Interval         time.Duration // closed-state count reset period; 0 never resets
	Timeout          time.Duration // how long the circuit stays open
}

// BreakerCompletionService stops calling a provider that keeps failing.
// While the circuit is open calls fail fast with a provider error.
type BreakerCompletionService struct {
	inner CompletionService
	cb    *gobreaker.CircuitBreaker[string]
	name  string
}

// NewBreakerCompletionService wraps inner with a circuit breaker.
func NewBreakerCompletionService(inner CompletionService, s BreakerSettings) *BreakerCompletionService {
	cbName := "completion-" + inner.Name()
	threshold := s.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	// Initialize circuit breaker state metrics
	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A caller hanging up says nothing about the provider's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.WithFields(log.Fields{"breaker": name, "from": from.String(), "to": to.String()}).
				Warn("Completion circuit breaker changed state")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &BreakerCompletionService{inner: inner, cb: cb, name: cbName}
}

func (b *BreakerCompletionService) GenerateChatCompletion(ctx context.Context, messages []ChatMessage, opts SamplingOptions) (string, error) {
	answer, err := b.cb.Execute(func() (string, error) {
		return b.inner.GenerateChatCompletion(ctx, messages, opts)
	})
	if err != nil {
		result := "failure"
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = "rejected"
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, result).Inc()
		return "", models.NewProviderError(b.inner.Name(), err)
	}
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return answer, nil
}

// Status reports Inactive while the circuit is open.
func (b *BreakerCompletionService) Status() store.ProviderStatus {
	if b.cb.State() == gobreaker.StateOpen {
		return store.ProviderStatusInactive
	}
	return b.inner.Status()
}

func (b *BreakerCompletionService) Name() string      { return b.inner.Name() }
func (b *BreakerCompletionService) ModelName() string { return b.inner.ModelName() }

// State returns the circuit state: "closed", "half-open" or "open".
func (b *BreakerCompletionService) State() string { return b.cb.State().String() }

// BreakerState is implemented by completion services guarded by a circuit
// breaker. Health reporting uses it to show the circuit state.
type BreakerState interface {
	State() string
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

var (
	_ CompletionService = (*BreakerCompletionService)(nil)
	_ BreakerState      = (*BreakerCompletionService)(nil)
)
