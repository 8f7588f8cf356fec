package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"rightsteps/internal/metrics"
	"rightsteps/internal/models"
	"rightsteps/internal/recommend"
	"rightsteps/internal/store"
	"rightsteps/internal/textutil"
)

// FallbackAnswer is shown when the completion provider could not answer.
const FallbackAnswer = "I apologize, but I encountered an error processing your request. Please try again or contact support if the issue persists."

// answerPreviewRunes bounds the answer excerpt kept in search history.
const answerPreviewRunes = 160

// RecommendationConfig holds the generation settings for AI search.
type RecommendationConfig struct {
	SystemPrompt string
	Temperature  float32
	MaxTokens    int
	Timeout      time.Duration // per provider call; 0 means no extra deadline
	MaxSentences int           // 0 keeps the whole answer
}

// RecommendationService answers free-text parent queries with a model
// suggestion plus keyword-filtered courses and tutors.
type RecommendationService struct {
	catalog    store.CatalogStore
	progress   store.ProgressSource
	completion CompletionService
	history    store.SearchHistoryStore
	cfg        RecommendationConfig
}

// NewRecommendationService wires the orchestrator. history may be nil.
func NewRecommendationService(
	catalog store.CatalogStore,
	progress store.ProgressSource,
	completion CompletionService,
	history store.SearchHistoryStore,
	cfg RecommendationConfig,
) *RecommendationService {
	return &RecommendationService{
		catalog:    catalog,
		progress:   progress,
		completion: completion,
		history:    history,
		cfg:        cfg,
	}
}

// FallbackResponse is the degraded result returned when the provider fails.
func FallbackResponse() *models.RecommendationResponse {
	return &models.RecommendationResponse{
		AISuggestion: FallbackAnswer,
		Courses:      []models.Course{},
		Tutors:       []models.Tutor{},
		ProgressData: nil,
	}
}

// WantsProgress reports whether progress data applies to a query, either
// because the caller asked for it or because the query talks about it.
func WantsProgress(query string, includeProgress bool) bool {
	if includeProgress {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(q, "progress") || strings.Contains(q, "check my child")
}

// Recommend runs one AI search.
//
// An empty query returns models.ErrInvalidRequest before the provider is
// called. A provider failure returns FallbackResponse together with the
// *models.ProviderError so the transport can pick an error status while still
// sending a well-formed body. Any other error means no response was built.
func (s *RecommendationService) Recommend(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResponse, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		metrics.RecordRecommendation(metrics.OutcomeInvalid)
		return nil, fmt.Errorf("%w: query parameter is required", models.ErrInvalidRequest)
	}
	includeProgress := WantsProgress(query, req.IncludeProgress)

	cat, err := s.readCatalog(ctx)
	if err != nil {
		return nil, err
	}

	var snapshot *models.LearnerProgressSnapshot
	if includeProgress {
		snapshot, err = s.progress.GetSnapshot(ctx, "")
		if err != nil {
			return nil, fmt.Errorf("failed to load learner progress: %w", err)
		}
	}

	logger := log.WithFields(log.Fields{
		"include_progress": includeProgress,
		"rules":            recommend.MatchedRules(query),
		"provider":         s.completion.Name(),
	})

	answer, err := s.complete(ctx, query, recommend.ComposeContext(cat, snapshot))
	if err != nil {
		var perr *models.ProviderError
		if !errors.As(err, &perr) {
			perr = &models.ProviderError{Provider: s.completion.Name(), Err: err}
		}
		logger.WithError(perr).Error("Completion failed, returning fallback answer")
		metrics.RecordRecommendation(metrics.OutcomeFallback)

		resp := FallbackResponse()
		s.recordSearch(ctx, query, includeProgress, resp, true)
		return resp, perr
	}

	result := recommend.Filter(cat, query, snapshot)
	resp := &models.RecommendationResponse{
		AISuggestion: answer,
		Courses:      result.Courses,
		Tutors:       result.Tutors,
		ProgressData: snapshot,
	}

	logger.WithFields(log.Fields{
		"courses": len(resp.Courses),
		"tutors":  len(resp.Tutors),
	}).Info("AI search answered")
	metrics.RecordRecommendation(metrics.OutcomeSuccess)
	s.recordSearch(ctx, query, includeProgress, resp, false)
	return resp, nil
}

func (s *RecommendationService) readCatalog(ctx context.Context) (recommend.Catalog, error) {
	courses, err := s.catalog.ListCourses(ctx)
	if err != nil {
		return recommend.Catalog{}, fmt.Errorf("failed to list courses: %w", err)
	}
	tutors, err := s.catalog.ListTutors(ctx)
	if err != nil {
		return recommend.Catalog{}, fmt.Errorf("failed to list tutors: %w", err)
	}
	return recommend.Catalog{Courses: courses, Tutors: tutors}, nil
}

// complete makes the single provider call and cleans up its answer.
func (s *RecommendationService) complete(ctx context.Context, query, grounding string) (string, error) {
	messages := []ChatMessage{
		{Role: ChatMessageRoleSystem, Content: s.cfg.SystemPrompt},
		{Role: ChatMessageRoleSystem, Content: grounding},
		{Role: ChatMessageRoleUser, Content: query},
	}

	callCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	answer, err := s.completion.GenerateChatCompletion(callCtx, messages, SamplingOptions{
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	})
	metrics.RecordProviderCall(s.completion.Name(), time.Since(start), err)
	if err != nil {
		return "", models.NewProviderError(s.completion.Name(), err)
	}

	answer = textutil.FirstSentences(textutil.StripHTML(answer), s.cfg.MaxSentences)
	if answer == "" {
		return "", models.NewProviderError(s.completion.Name(), ErrEmptyCompletion)
	}
	return answer, nil
}

// recordSearch stores the query in search history. Failures are only logged.
func (s *RecommendationService) recordSearch(ctx context.Context, query string, includeProgress bool, resp *models.RecommendationResponse, fallback bool) {
	if s.history == nil {
		return
	}
	entry := &models.SearchQuery{
		Query:           query,
		IncludeProgress: includeProgress,
		CourseCount:     len(resp.Courses),
		TutorCount:      len(resp.Tutors),
		Fallback:        fallback,
		AnswerPreview:   textutil.Preview(resp.AISuggestion, answerPreviewRunes),
	}
	// The search already happened; a client hang-up must not drop the record.
	if err := s.history.RecordSearchQuery(context.WithoutCancel(ctx), entry); err != nil {
		log.WithError(err).Warn("Failed to record search query")
	}
}
