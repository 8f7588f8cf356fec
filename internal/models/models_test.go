package models

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTutor_ExperienceYears(t *testing.T) {
	testCases := []struct {
		experience string
		want       int
	}{
		{"8 years", 8},
		{"12 years", 12},
		{"10+ years", 10},
		{"", 0},
		{"Over a decade", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.experience, func(t *testing.T) {
			assert.Equal(t, tc.want, Tutor{Experience: tc.experience}.ExperienceYears())
		})
	}
}

func TestTutor_HasSpecialization(t *testing.T) {
	tutor := Tutor{Specialization: []string{"Exam Preparation", "Homework Help"}}
	assert.True(t, tutor.HasSpecialization("Homework Help"))
	assert.False(t, tutor.HasSpecialization("Exam"))
}

func TestLearnerProgressSnapshot_Clone(t *testing.T) {
	orig := &LearnerProgressSnapshot{
		Subjects:   []SubjectProgress{{Subject: "Mathematics", Score: 62}},
		Weaknesses: []string{"Algebra"},
	}
	cp := orig.Clone()
	cp.Subjects[0].Score = 99
	cp.Weaknesses[0] = "Physics"

	assert.Equal(t, 62, orig.Subjects[0].Score)
	assert.Equal(t, "Algebra", orig.Weaknesses[0])

	var nilSnap *LearnerProgressSnapshot
	assert.Nil(t, nilSnap.Clone())
}

func TestNewProviderError(t *testing.T) {
	assert.NoError(t, NewProviderError("openai", nil))

	err := NewProviderError("openai", context.DeadlineExceeded)
	var perr *ProviderError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "openai", perr.Provider)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "completion provider openai")

	// Already-typed errors are not double wrapped.
	assert.Same(t, err, NewProviderError("gemini", err))
}
