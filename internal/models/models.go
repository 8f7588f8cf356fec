package models

import (
	"strconv"
	"strings"
	"time"
)

// Difficulty is the course level shown in the marketplace.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Course is a pre-recorded course listed in the marketplace.
type Course struct {
	ID             int64      `json:"id" yaml:"id"`
	Slug           string     `json:"slug" yaml:"slug"`
	Name           string     `json:"name" yaml:"name"`
	Category       string     `json:"category,omitempty" yaml:"category"`
	Difficulty     Difficulty `json:"difficulty" yaml:"difficulty"`
	Price          float64    `json:"price" yaml:"price"`
	Rating         float64    `json:"rating" yaml:"rating"`
	Reviews        int        `json:"reviews" yaml:"reviews"`
	Duration       string     `json:"duration" yaml:"duration"`
	Provider       string     `json:"provider" yaml:"provider"` // "rightsteps" or "external"
	ProviderName   string     `json:"providerName" yaml:"provider_name"`
	Instructor     string     `json:"instructor" yaml:"instructor"`
	Description    string     `json:"description" yaml:"description"`
	Badges         []string   `json:"badges" yaml:"badges"`
	Grade          string     `json:"grade" yaml:"grade"`
	Lessons        int        `json:"lessons" yaml:"lessons"`
	Enrollments    int        `json:"enrollments" yaml:"enrollments"`
	CompletionRate int        `json:"completionRate" yaml:"completion_rate"`
	LearningPoints []string   `json:"learningPoints" yaml:"learning_points"`
}

// Tutor is a one-to-one tutor that parents can book.
type Tutor struct {
	ID             int64    `json:"id" yaml:"id"`
	Slug           string   `json:"slug" yaml:"slug"`
	Name           string   `json:"name" yaml:"name"`
	Category       string   `json:"category" yaml:"category"`
	Specialization []string `json:"specialization" yaml:"specialization"`
	Experience     string   `json:"experience" yaml:"experience"` // e.g. "8 years"
	HourlyRate     float64  `json:"hourlyRate" yaml:"hourly_rate"`
	Rating         float64  `json:"rating" yaml:"rating"`
	Reviews        int      `json:"reviews" yaml:"reviews"`
	Verified       bool     `json:"verified" yaml:"verified"`
	Available      bool     `json:"available" yaml:"available"`
	Tagline        string   `json:"tagline" yaml:"tagline"`
	Education      string   `json:"education" yaml:"education"`
	Languages      []string `json:"languages" yaml:"languages"`
}

// HasSpecialization reports whether the tutor lists name exactly.
func (t Tutor) HasSpecialization(name string) bool {
	for _, s := range t.Specialization {
		if s == name {
			return true
		}
	}
	return false
}

// ExperienceYears parses the leading integer of the experience label.
// Returns 0 when the label carries no number.
func (t Tutor) ExperienceYears() int {
	fields := strings.Fields(t.Experience)
	if len(fields) == 0 {
		return 0
	}
	years, err := strconv.Atoi(strings.TrimSuffix(fields[0], "+"))
	if err != nil {
		return 0
	}
	return years
}

// SubjectProgress is one subject line of a learner's progress report.
type SubjectProgress struct {
	Subject        string `json:"subject" yaml:"subject"`
	Score          int    `json:"score" yaml:"score"`
	Trend          string `json:"trend" yaml:"trend"` // "improving", "stable", "declining"
	LastAssessment string `json:"lastAssessment" yaml:"last_assessment"`
}

// LearnerProgressSnapshot is supplied whole by a progress source.
// Subjects keep their reporting order so rendered context is stable.
type LearnerProgressSnapshot struct {
	ChildName          string            `json:"childName"`
	OverallPerformance int               `json:"overallPerformance"`
	Subjects           []SubjectProgress `json:"subjects"`
	Strengths          []string          `json:"strengths"`
	Weaknesses         []string          `json:"weaknesses"`
	StudyHours         int               `json:"studyHours"` // per week
}

// Clone returns a deep copy so callers cannot mutate the source's snapshot.
func (p *LearnerProgressSnapshot) Clone() *LearnerProgressSnapshot {
	if p == nil {
		return nil
	}
	out := *p
	out.Subjects = append([]SubjectProgress(nil), p.Subjects...)
	out.Strengths = append([]string(nil), p.Strengths...)
	out.Weaknesses = append([]string(nil), p.Weaknesses...)
	return &out
}

// RecommendationRequest is the AI search request body.
type RecommendationRequest struct {
	Query           string `json:"query"`
	IncludeProgress bool   `json:"includeProgress"`
}

// RecommendationResponse is the AI search result. Courses and Tutors are
// never nil so they encode as JSON arrays.
type RecommendationResponse struct {
	AISuggestion string                   `json:"aiSuggestion"`
	Courses      []Course                 `json:"courses"`
	Tutors       []Tutor                  `json:"tutors"`
	ProgressData *LearnerProgressSnapshot `json:"progressData"`
}

// AIUsageLog represents a record of AI API usage for cost tracking.
type AIUsageLog struct {
	ID           int64     `db:"id" json:"id"`
	Timestamp    time.Time `db:"timestamp" json:"timestamp"`
	ProviderName string    `db:"provider_name" json:"providerName"`
	ServiceType  string    `db:"service_type" json:"serviceType"` // e.g. "recommendation"
	ModelName    string    `db:"model_name" json:"modelName"`
	InputTokens  int       `db:"input_tokens" json:"inputTokens"`
	OutputTokens int       `db:"output_tokens" json:"outputTokens"`
	Cost         float64   `db:"cost" json:"cost"`
}

// SearchQuery is one recorded AI search.
type SearchQuery struct {
	ID              int64     `db:"id" json:"id"`
	Query           string    `db:"query" json:"query"`
	IncludeProgress bool      `db:"include_progress" json:"includeProgress"`
	CourseCount     int       `db:"course_count" json:"courseCount"`
	TutorCount      int       `db:"tutor_count" json:"tutorCount"`
	Fallback        bool      `db:"fallback" json:"fallback"`
	AnswerPreview   string    `db:"answer_preview" json:"answerPreview"`
	ExecutedAt      time.Time `db:"executed_at" json:"executedAt"`
}
