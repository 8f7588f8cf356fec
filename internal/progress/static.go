package progress

import (
	"context"

	"rightsteps/internal/models"
	"rightsteps/internal/store"
)

// Static is a progress source that reports the same snapshot for every learner.
// It stands in until learner accounts exist.
type Static struct {
	snapshot *models.LearnerProgressSnapshot
}

var _ store.ProgressSource = (*Static)(nil)

// NewStatic returns a source serving snap. A nil snap serves the demo snapshot.
func NewStatic(snap *models.LearnerProgressSnapshot) *Static {
	if snap == nil {
		snap = DemoSnapshot()
	}
	return &Static{snapshot: snap.Clone()}
}

// GetSnapshot ignores learnerID and returns a private copy of the snapshot.
func (s *Static) GetSnapshot(ctx context.Context, learnerID string) (*models.LearnerProgressSnapshot, error) {
	return s.snapshot.Clone(), nil
}

// DemoSnapshot is the sample report shown to parents in the marketplace demo.
func DemoSnapshot() *models.LearnerProgressSnapshot {
	return &models.LearnerProgressSnapshot{
		ChildName:          "Your child",
		OverallPerformance: 68,
		Subjects: []models.SubjectProgress{
			{Subject: "Mathematics", Score: 62, Trend: "declining", LastAssessment: "2 weeks ago"},
			{Subject: "Science", Score: 58, Trend: "stable", LastAssessment: "1 week ago"},
			{Subject: "English", Score: 85, Trend: "improving", LastAssessment: "3 days ago"},
		},
		Strengths:  []string{"English Literature", "Creative Writing"},
		Weaknesses: []string{"Algebra", "Physics", "Chemical reactions"},
		StudyHours: 12,
	}
}
