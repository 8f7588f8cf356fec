package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Completion providers selectable under rag.provider.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderNone   = "none"
)

// PricingInfo holds cost details per token for a specific model.
type PricingInfo struct {
	InputPerToken  float64 `mapstructure:"input_per_token"`
	OutputPerToken float64 `mapstructure:"output_per_token"`
}

type Config struct {
	Server struct {
		Addr            string        `mapstructure:"addr"`
		Port            int           `mapstructure:"port"`
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
		// Per-client budget for POST /api/search; 0 disables the limit.
		SearchRatePerMinute int `mapstructure:"search_rate_per_minute"`
		SearchBurst         int `mapstructure:"search_burst"`
	} `mapstructure:"server"`

	Log struct {
		Level  string `mapstructure:"level"`  // logrus level name
		Format string `mapstructure:"format"` // "text" or "json"
	} `mapstructure:"log"`

	// Database backs search history and AI cost tracking. An empty driver
	// disables both.
	Database struct {
		Driver string `mapstructure:"driver"` // "sqlite3", "pgx" or ""
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"database"`

	Catalog struct {
		Path string `mapstructure:"path"` // YAML fixture; empty uses the built-in catalog
	} `mapstructure:"catalog"`

	RAG struct {
		Enabled      bool          `mapstructure:"enabled"`
		Provider     string        `mapstructure:"provider"` // "openai", "gemini" or "none"
		Model        string        `mapstructure:"model"`
		Prompt       string        `mapstructure:"prompt"` // path to a system prompt file
		Temperature  float32       `mapstructure:"temperature"`
		MaxTokens    int           `mapstructure:"max_tokens"`
		Timeout      time.Duration `mapstructure:"timeout"`
		MaxSentences int           `mapstructure:"max_sentences"` // 0 keeps the whole answer
	} `mapstructure:"rag"`

	OpenAI struct {
		APIKey  string `mapstructure:"api_key"`
		BaseURL string `mapstructure:"base_url"`
	} `mapstructure:"openai"`

	Gemini struct {
		APIKey string `mapstructure:"api_key"`
	} `mapstructure:"gemini"`

	Breaker struct {
		Enabled          bool          `mapstructure:"enabled"`
		FailureThreshold uint32        `mapstructure:"failure_threshold"` // consecutive failures before opening
		MaxRequests      uint32        `mapstructure:"max_requests"`      // trial requests allowed while half-open
		Interval         time.Duration `mapstructure:"interval"`
		Timeout          time.Duration `mapstructure:"timeout"` // open -> half-open
	} `mapstructure:"breaker"`

	// Pricing: map[provider][model] = struct{input_per_token, output_per_token}
	// Viper splits keys on dots, so write "gemini-1_5-flash" for "gemini-1.5-flash".
	Pricing map[string]map[string]PricingInfo `mapstructure:"pricing"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.search_rate_per_minute", 30)
	v.SetDefault("server.search_burst", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("database.driver", "")
	v.SetDefault("database.dsn", "")

	v.SetDefault("catalog.path", "")

	v.SetDefault("rag.enabled", true)
	v.SetDefault("rag.provider", ProviderOpenAI)
	v.SetDefault("rag.model", "gpt-4o-mini")
	v.SetDefault("rag.prompt", "")
	v.SetDefault("rag.temperature", 0.7)
	v.SetDefault("rag.max_tokens", 500)
	v.SetDefault("rag.timeout", 30*time.Second)
	v.SetDefault("rag.max_sentences", 0)

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("gemini.api_key", "")

	v.SetDefault("breaker.enabled", true)
	v.SetDefault("breaker.failure_threshold", 5)
	v.SetDefault("breaker.max_requests", 1)
	v.SetDefault("breaker.interval", time.Minute)
	v.SetDefault("breaker.timeout", 30*time.Second)

	v.SetDefault("pricing.openai.gpt-4o-mini.input_per_token", 0.00000015)
	v.SetDefault("pricing.openai.gpt-4o-mini.output_per_token", 0.0000006)
}

// LoadConfig reads configuration from configFile (or ./config.yaml when
// empty), a .env file if present, and RIGHTSTEPS_* environment variables.
func LoadConfig(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("Failed to load .env file: %v", err)
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".") // Look for config.yaml in the current directory
	}

	// --- Environment Variable Binding ---
	// rag.max_tokens -> RIGHTSTEPS_RAG_MAX_TOKENS
	v.SetEnvPrefix("RIGHTSTEPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Provider keys are also accepted under the names the vendors document.
	_ = v.BindEnv("openai.api_key", "RIGHTSTEPS_OPENAI_API_KEY", "OPENAI_API_KEY")
	_ = v.BindEnv("openai.base_url", "RIGHTSTEPS_OPENAI_BASE_URL", "OPENAI_BASE_URL")
	_ = v.BindEnv("gemini.api_key", "RIGHTSTEPS_GEMINI_API_KEY", "GEMINI_API_KEY")
	// --- End Environment Variable Binding ---

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// An explicit --config path must exist; the implicit one may not.
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug("Config file not found, using defaults and environment")
	} else {
		log.Debugf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	return &config, nil
}

// ProviderPricing returns the model -> price table for one provider, with
// dotted model names restored.
func (c *Config) ProviderPricing(provider string) map[string]PricingInfo {
	out := make(map[string]PricingInfo, len(c.Pricing[provider]))
	for model, p := range c.Pricing[provider] {
		out[model] = p
		out[strings.ReplaceAll(model, "_", ".")] = p
	}
	return out
}

// ConfigureLogging applies log.level and log.format to the global logrus logger.
func (c *Config) ConfigureLogging() error {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log.level %q: %w", c.Log.Level, err)
	}
	log.SetLevel(level)

	switch strings.ToLower(c.Log.Format) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	return nil
}
