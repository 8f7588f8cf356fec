package apihandlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rightsteps/internal/config"
)

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	rl := NewRateLimiter(60, 2)
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.1"))
	assert.False(t, rl.Allow("10.0.0.1"))
	assert.True(t, rl.Allow("10.0.0.2"), "clients have separate budgets")

	now = now.Add(time.Second)
	assert.True(t, rl.Allow("10.0.0.1"), "one token refills per second at 60/min")
}

func TestRateLimiter_SweepsIdleClients(t *testing.T) {
	rl := NewRateLimiter(60, 1)
	now := time.Now()
	rl.now = func() time.Time { return now }

	rl.Allow("10.0.0.1")
	now = now.Add(2 * limiterIdleTTL)
	rl.Allow("10.0.0.2")

	assert.Len(t, rl.limiters, 1)
	assert.Contains(t, rl.limiters, "10.0.0.2")
}

func TestSearchRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.SearchRatePerMinute = 1
	cfg.Server.SearchBurst = 1

	h := newTestHandler(&stubCompletion{answer: "Try algebra."})
	h.App.Config = cfg
	r := NewRouter(h)

	w := doRequest(r, http.MethodPost, "/api/search", `{"query":"math"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodPost, "/api/search", `{"query":"math"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests. Please wait a moment and try again."}`, w.Body.String())

	// Catalog browsing is not limited.
	w = doRequest(r, http.MethodGet, "/api/courses", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
