package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the settings the server cannot start without. A missing
// provider API key is not an error: the provider starts disabled and
// searches return the fallback answer.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.SearchRatePerMinute < 0 || c.Server.SearchBurst < 0 {
		return errors.New("server.search_rate_per_minute and server.search_burst cannot be negative")
	}

	// Logging
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be 'text' or 'json', got %q", c.Log.Format)
	}

	// Database config
	switch c.Database.Driver {
	case "":
	case "sqlite3", "pgx":
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required when database.driver is %q", c.Database.Driver)
		}
	default:
		return fmt.Errorf("database.driver must be 'sqlite3', 'pgx' or empty, got %q", c.Database.Driver)
	}

	// RAG config
	if c.RAG.Enabled {
		switch c.RAG.Provider {
		case ProviderOpenAI, ProviderGemini, ProviderNone:
		default:
			return fmt.Errorf("rag.provider must be 'openai', 'gemini' or 'none', got %q", c.RAG.Provider)
		}
		if c.RAG.Provider != ProviderNone && c.RAG.Model == "" {
			return errors.New("rag.model is required when rag is enabled")
		}
	}
	if c.RAG.Temperature < 0 || c.RAG.Temperature > 2 {
		return fmt.Errorf("rag.temperature must be between 0 and 2, got %v", c.RAG.Temperature)
	}
	if c.RAG.MaxTokens <= 0 {
		return errors.New("rag.max_tokens must be positive")
	}
	if c.RAG.Timeout <= 0 {
		return errors.New("rag.timeout must be positive")
	}
	if c.RAG.MaxSentences < 0 {
		return errors.New("rag.max_sentences cannot be negative")
	}

	// Circuit breaker
	if c.Breaker.Enabled {
		if c.Breaker.FailureThreshold == 0 {
			return errors.New("breaker.failure_threshold must be positive when the breaker is enabled")
		}
		if c.Breaker.Timeout <= 0 {
			return errors.New("breaker.timeout must be positive when the breaker is enabled")
		}
	}

	// Pricing config (optional, but if present, must be valid)
	for provider, models := range c.Pricing {
		for model, price := range models {
			if price.InputPerToken < 0 || price.OutputPerToken < 0 {
				return fmt.Errorf("pricing for provider '%s', model '%s' has negative token cost", provider, model)
			}
		}
	}

	return nil
}
