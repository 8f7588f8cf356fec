package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"rightsteps/internal/catalog"
	"rightsteps/internal/config"
	"rightsteps/internal/costtracker"
	"rightsteps/internal/progress"
	"rightsteps/internal/services"
	"rightsteps/internal/store"
	"rightsteps/internal/store/primary"
)

type App struct {
	Config *config.Config

	// Stores
	PrimaryStore   store.PrimaryStore
	CatalogStore   store.CatalogStore
	ProgressSource store.ProgressSource
	CostTracker    costtracker.CostTracker

	// CompletionService is the configured provider, behind the circuit
	// breaker when one is enabled.
	CompletionService services.CompletionService

	// --- Initialized Services ---
	RecommendationService *services.RecommendationService
	CatalogService        *services.CatalogService
	HistoryService        *services.HistoryService
	CostService           *services.CostService

	closers []func() error
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initPrimaryStore(ctx); err != nil {
		return nil, err
	}
	if err := app.initCatalog(); err != nil {
		app.Close()
		return nil, err
	}
	if err := app.initCompletionService(ctx); err != nil {
		app.Close()
		return nil, err
	}
	if err := app.initCoreServices(); err != nil {
		app.Close()
		return nil, err
	}

	log.Debug("Application initialization complete.")
	return app, nil
}

// --- Private Helper Methods ---

func (a *App) initPrimaryStore(ctx context.Context) error {
	cfg := a.Config
	if cfg.Database.Driver == "" {
		log.Info("No database configured; search history and cost logs will not be persisted.")
		a.PrimaryStore = store.NewNoopStore()
		a.CostTracker = costtracker.New(nil)
		return nil
	}

	ps, err := primary.NewPrimaryStore(ctx, cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("init primary store: %w", err)
	}
	a.PrimaryStore = ps
	a.CostTracker = costtracker.New(ps)
	a.closers = append(a.closers, ps.Close)
	return nil
}

func (a *App) initCatalog() error {
	cat, err := catalog.LoadFile(a.Config.Catalog.Path)
	if err != nil {
		return fmt.Errorf("init catalog: %w", err)
	}
	a.CatalogStore = cat
	a.ProgressSource = progress.NewStatic(nil)
	return nil
}

func (a *App) initCompletionService(ctx context.Context) error {
	cfg := a.Config
	if !cfg.RAG.Enabled || cfg.RAG.Provider == config.ProviderNone {
		log.Info("AI search is disabled; searches will return the fallback answer.")
		a.CompletionService = services.NewNoopCompletionService()
		return nil
	}

	var completer services.CompletionService
	switch cfg.RAG.Provider {
	case config.ProviderOpenAI:
		completer = services.NewOpenAIProvider(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.BaseURL,
			cfg.RAG.Model,
			a.CostTracker,
			cfg.ProviderPricing(config.ProviderOpenAI),
		)
	case config.ProviderGemini:
		gp, err := services.NewGeminiProvider(ctx,
			cfg.Gemini.APIKey,
			cfg.RAG.Model,
			a.CostTracker,
			cfg.ProviderPricing(config.ProviderGemini),
		)
		if err != nil {
			return fmt.Errorf("failed to initialize Gemini completion provider: %w", err)
		}
		a.closers = append(a.closers, gp.Close)
		completer = gp
	default:
		return fmt.Errorf("unknown or unsupported RAG provider configured: %s", cfg.RAG.Provider)
	}

	if cfg.Breaker.Enabled {
		completer = services.NewBreakerCompletionService(completer, services.BreakerSettings{
			FailureThreshold: cfg.Breaker.FailureThreshold,
			MaxRequests:      cfg.Breaker.MaxRequests,
			Interval:         cfg.Breaker.Interval,
			Timeout:          cfg.Breaker.Timeout,
		})
	}
	a.CompletionService = completer
	return nil
}

func (a *App) initCoreServices() error {
	cfg := a.Config
	prompt, err := config.LoadPromptContent(cfg.RAG.Prompt)
	if err != nil {
		return fmt.Errorf("load system prompt: %w", err)
	}

	a.RecommendationService = services.NewRecommendationService(
		a.CatalogStore,
		a.ProgressSource,
		a.CompletionService,
		a.PrimaryStore,
		services.RecommendationConfig{
			SystemPrompt: prompt,
			Temperature:  cfg.RAG.Temperature,
			MaxTokens:    cfg.RAG.MaxTokens,
			Timeout:      cfg.RAG.Timeout,
			MaxSentences: cfg.RAG.MaxSentences,
		},
	)
	a.CatalogService = services.NewCatalogService(a.CatalogStore)
	a.HistoryService = services.NewHistoryService(a.PrimaryStore)
	a.CostService = services.NewCostService(a.PrimaryStore)
	return nil
}

// Close releases the database and provider clients in reverse order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Warnf("Error during shutdown: %v", err)
		}
	}
	a.closers = nil
}
