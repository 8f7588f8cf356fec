package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func validConfig() *Config {
	c := &Config{}
	c.Server.Port = 8080
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.RAG.Enabled = true
	c.RAG.Provider = ProviderOpenAI
	c.RAG.Model = "gpt-4o-mini"
	c.RAG.Temperature = 0.7
	c.RAG.MaxTokens = 500
	c.RAG.Timeout = 30 * time.Second
	c.OpenAI.APIKey = "sk-test"
	c.Breaker.Enabled = true
	c.Breaker.FailureThreshold = 5
	c.Breaker.Timeout = 30 * time.Second
	return c
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.SearchRatePerMinute)
	assert.Equal(t, 10, cfg.Server.SearchBurst)
	assert.Equal(t, ProviderOpenAI, cfg.RAG.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.RAG.Model)
	assert.InDelta(t, 0.7, cfg.RAG.Temperature, 1e-6)
	assert.Equal(t, 500, cfg.RAG.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.RAG.Timeout)
	assert.Equal(t, "", cfg.Database.Driver)
	assert.Equal(t, uint32(5), cfg.Breaker.FailureThreshold)

	pricing := cfg.ProviderPricing(ProviderOpenAI)
	assert.InDelta(t, 0.00000015, pricing["gpt-4o-mini"].InputPerToken, 1e-12)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
database:
  driver: sqlite3
  dsn: rightsteps.db
rag:
  provider: gemini
  model: gemini-1.5-flash
  timeout: 5s
pricing:
  gemini:
    gemini-1_5-flash:
      input_per_token: 0.000000075
      output_per_token: 0.0000003
`)
	t.Setenv("GEMINI_API_KEY", "gm-test")
	t.Setenv("RIGHTSTEPS_RAG_MAX_TOKENS", "300")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, ProviderGemini, cfg.RAG.Provider)
	assert.Equal(t, 5*time.Second, cfg.RAG.Timeout)
	assert.Equal(t, 300, cfg.RAG.MaxTokens)
	assert.Equal(t, "gm-test", cfg.Gemini.APIKey)

	pricing := cfg.ProviderPricing(ProviderGemini)
	assert.InDelta(t, 0.0000003, pricing["gemini-1.5-flash"].OutputPerToken, 1e-12)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"negative search rate", func(c *Config) { c.Server.SearchRatePerMinute = -1 }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }},
		{"driver without dsn", func(c *Config) { c.Database.Driver = "sqlite3" }},
		{"unknown provider", func(c *Config) { c.RAG.Provider = "llama" }},
		{"missing model", func(c *Config) { c.RAG.Model = "" }},
		{"temperature too high", func(c *Config) { c.RAG.Temperature = 2.5 }},
		{"zero max tokens", func(c *Config) { c.RAG.MaxTokens = 0 }},
		{"zero timeout", func(c *Config) { c.RAG.Timeout = 0 }},
		{"negative sentences", func(c *Config) { c.RAG.MaxSentences = -1 }},
		{"breaker without threshold", func(c *Config) { c.Breaker.FailureThreshold = 0 }},
		{"negative pricing", func(c *Config) {
			c.Pricing = map[string]map[string]PricingInfo{"openai": {"gpt-4o-mini": {InputPerToken: -1}}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestValidate_MissingKeyIsAllowed(t *testing.T) {
	for _, provider := range []string{ProviderNone, ProviderOpenAI, ProviderGemini} {
		t.Run(provider, func(t *testing.T) {
			c := validConfig()
			c.RAG.Provider = provider
			c.OpenAI.APIKey = ""
			c.Gemini.APIKey = ""
			assert.NoError(t, c.Validate())
		})
	}
}

func TestLoadPromptContent(t *testing.T) {
	prompt, err := LoadPromptContent("")
	require.NoError(t, err)
	assert.Contains(t, prompt, "RightstepsBuddy")

	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Be brief.\n"), 0o644))
	prompt, err = LoadPromptContent(path)
	require.NoError(t, err)
	assert.Equal(t, "Be brief.", prompt)

	_, err = LoadPromptContent(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestConfigureLogging(t *testing.T) {
	c := validConfig()
	c.Log.Format = "json"
	assert.NoError(t, c.ConfigureLogging())

	c.Log.Level = "loud"
	assert.Error(t, c.ConfigureLogging())
}
