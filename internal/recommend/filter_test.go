package recommend

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rightsteps/internal/catalog"
	"rightsteps/internal/models"
)

func defaultCatalog(t *testing.T) Catalog {
	t.Helper()
	s := catalog.Default()
	courses, err := s.ListCourses(context.Background())
	require.NoError(t, err)
	tutors, err := s.ListTutors(context.Background())
	require.NoError(t, err)
	return Catalog{Courses: courses, Tutors: tutors}
}

func courseNames(cs []models.Course) []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	return names
}

func tutorNames(ts []models.Tutor) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.Name
	}
	return names
}

func assertRanked(t *testing.T, res Result) {
	t.Helper()
	assert.LessOrEqual(t, len(res.Courses), MaxResults)
	assert.LessOrEqual(t, len(res.Tutors), MaxResults)
	for i := 1; i < len(res.Courses); i++ {
		assert.GreaterOrEqual(t, res.Courses[i-1].Rating, res.Courses[i].Rating)
	}
	for i := 1; i < len(res.Tutors); i++ {
		assert.GreaterOrEqual(t, res.Tutors[i-1].Rating, res.Tutors[i].Rating)
	}
}

func TestFilter_MathSubject(t *testing.T) {
	res := Filter(defaultCatalog(t), "Any good MATH help?", nil)

	assert.Equal(t, []string{
		"GCSE Mathematics Higher",
		"A-Level Mathematics",
		"Complete Mathematics Mastery",
		"Advanced Mathematics",
	}, courseNames(res.Courses))
	assert.Equal(t, []string{
		"Dr. Emily Thompson",
		"Mr. Oliver Davies",
		"Dr. Michael Foster",
		"Ms. Rachel Green",
	}, tutorNames(res.Tutors))

	for _, c := range res.Courses {
		assert.Contains(t, strings.ToLower(c.Name), "math")
	}
	for _, tu := range res.Tutors {
		assert.Equal(t, "Mathematics", tu.Category)
	}
}

func TestFilter_ExamStageNarrowsSubject(t *testing.T) {
	res := Filter(defaultCatalog(t), "math gcse", nil)

	assert.Equal(t, []string{"GCSE Mathematics Higher"}, courseNames(res.Courses))
	assert.Equal(t, []string{"Dr. Emily Thompson", "Mr. Oliver Davies", "Dr. Michael Foster"}, tutorNames(res.Tutors))
}

func TestFilter_SatsWithNoMatchingCourses(t *testing.T) {
	res := Filter(defaultCatalog(t), "SATs prep", nil)

	assert.NotNil(t, res.Courses)
	assert.Empty(t, res.Courses)
	assert.Equal(t, []string{
		"Dr. Emily Thompson",
		"Mr. Oliver Davies",
		"Ms. Charlotte Brown",
		"Dr. Daniel Martinez",
		"Dr. Michael Foster",
	}, tutorNames(res.Tutors))
}

func TestFilter_TutorIntentClearsCourses(t *testing.T) {
	res := Filter(defaultCatalog(t), "I need a tutor for science", nil)

	assert.Empty(t, res.Courses)
	assert.Equal(t, []string{
		"Ms. Charlotte Brown",
		"Dr. Daniel Martinez",
		"Prof. James Richardson",
		"Dr. Amelia Watson",
		"Mr. Thomas Wilson",
	}, tutorNames(res.Tutors))
}

func TestFilter_CourseIntentClearsTutors(t *testing.T) {
	res := Filter(defaultCatalog(t), "homework help courses", nil)

	assert.Empty(t, res.Tutors)
	assert.Equal(t, []string{
		"Science Fundamentals",
		"GCSE Physics Preparation",
		"Biology for GCSE",
		"GCSE Mathematics Higher",
		"A-Level Chemistry",
	}, courseNames(res.Courses))
}

func TestFilter_BothIntentsKeepBoth(t *testing.T) {
	res := Filter(defaultCatalog(t), "a course or a tutor for physics", nil)

	assert.NotEmpty(t, res.Courses)
	assert.NotEmpty(t, res.Tutors)
}

func TestFilter_SpecializationOnlyTouchesTutors(t *testing.T) {
	res := Filter(defaultCatalog(t), "struggling with english", nil)

	assert.Equal(t, []string{"English Language Excellence", "Creative Writing Workshop"}, courseNames(res.Courses))
	assert.Equal(t, []string{"Ms. Sarah Collins", "Ms. Jessica Lee", "Mr. Benjamin Clarke"}, tutorNames(res.Tutors))
}

func TestFilter_ProgressOverride(t *testing.T) {
	snap := &models.LearnerProgressSnapshot{Weaknesses: []string{"Algebra", "Physics"}}

	// The subject keyword is ignored once progress is in play.
	res := Filter(defaultCatalog(t), "check progress in math", snap)

	assert.Equal(t, []string{"GCSE Physics Preparation", "Introduction to Algebra"}, courseNames(res.Courses))
	assert.Equal(t, []string{"Ms. Charlotte Brown"}, tutorNames(res.Tutors))
	for _, c := range res.Courses {
		name := strings.ToLower(c.Name)
		assert.True(t, strings.Contains(name, "algebra") || strings.Contains(name, "physics"))
	}
	assertRanked(t, res)
}

func TestFilter_EndToEndExample(t *testing.T) {
	res := Filter(defaultCatalog(t), "My child struggles with mathematics", nil)

	require.NotEmpty(t, res.Tutors)
	assert.Equal(t, "Dr. Emily Thompson", res.Tutors[0].Name)
	for _, c := range res.Courses {
		assert.Contains(t, strings.ToLower(c.Name), "math")
	}
}

func TestFilter_EmptyCatalog(t *testing.T) {
	res := Filter(Catalog{}, "math tutor", nil)
	assert.NotNil(t, res.Courses)
	assert.NotNil(t, res.Tutors)

	res = Filter(Catalog{}, "anything", &models.LearnerProgressSnapshot{Weaknesses: []string{"Algebra"}})
	assert.NotNil(t, res.Courses)
	assert.NotNil(t, res.Tutors)
}

func TestFilter_RankedForManyQueries(t *testing.T) {
	cat := defaultCatalog(t)
	queries := []string{
		"", "math", "science exam", "english homework", "gcse", "year 6 test",
		"confidence", "tutor", "course", "biology gcse tutor", "what should we do next?",
	}
	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			assertRanked(t, Filter(cat, q, nil))
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	cat := defaultCatalog(t)
	first, err := json.Marshal(Filter(cat, "science exam tutor", nil))
	require.NoError(t, err)
	second, err := json.Marshal(Filter(cat, "science exam tutor", nil))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestFilter_DoesNotReorderInput(t *testing.T) {
	cat := defaultCatalog(t)
	before := courseNames(cat.Courses)
	Filter(cat, "chemistry", nil)
	assert.Equal(t, before, courseNames(cat.Courses))
}

func TestMatchedRules(t *testing.T) {
	assert.Equal(t, []string{"mathematics", "gcse", "tutors-only"}, MatchedRules("Math GCSE tutor"))
	assert.Equal(t, []string{"exam-prep"}, MatchedRules("test prep"))
	assert.Empty(t, MatchedRules("hello"))
}
