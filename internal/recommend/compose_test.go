package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rightsteps/internal/models"
)

func smallCatalog() Catalog {
	return Catalog{
		Courses: []models.Course{
			{Name: "Introduction to Algebra", Category: "Mathematics", Difficulty: models.DifficultyBeginner, Price: 19.99, Rating: 4.5, Duration: "9 hours"},
			{Name: "Study Skills", Difficulty: models.DifficultyIntermediate, Price: 25, Rating: 4, Duration: "3 hours"},
		},
		Tutors: []models.Tutor{
			{Name: "Dr. Emily Thompson", Category: "Mathematics", Specialization: []string{"Exam Preparation", "Homework Help"}, Experience: "8 years", HourlyRate: 25, Rating: 4.9},
		},
	}
}

func TestComposeContext_CatalogOnly(t *testing.T) {
	want := "Available Courses:\n" +
		"- Introduction to Algebra (Mathematics, Beginner, £19.99, Rating: 4.5, 9 hours)\n" +
		"- Study Skills (General, Intermediate, £25, Rating: 4, 3 hours)\n" +
		"\nAvailable Tutors:\n" +
		"- Dr. Emily Thompson (Mathematics, Exam Preparation, Homework Help, 8 years, £25/hr, Rating: 4.9)\n"

	assert.Equal(t, want, ComposeContext(smallCatalog(), nil))
}

func TestComposeContext_WithProgress(t *testing.T) {
	snap := &models.LearnerProgressSnapshot{
		OverallPerformance: 68,
		Subjects: []models.SubjectProgress{
			{Subject: "Mathematics", Score: 62, Trend: "declining"},
			{Subject: "Science", Score: 58, Trend: "stable"},
		},
		Strengths:  []string{"English Literature", "Creative Writing"},
		Weaknesses: []string{"Algebra", "Physics"},
		StudyHours: 12,
	}

	got := ComposeContext(smallCatalog(), snap)

	assert.Contains(t, got, "\n\nChild Progress Data:\n"+
		"Overall Performance: 68%\n"+
		"Subject Scores:\n"+
		"  - Mathematics: 62% (declining)\n"+
		"  - Science: 58% (stable)\n"+
		"Strengths: English Literature, Creative Writing\n"+
		"Weaknesses: Algebra, Physics\n"+
		"Study Hours/Week: 12\n")
	assert.Equal(t, got, ComposeContext(smallCatalog(), snap))
}

func TestComposeContext_EmptyCatalog(t *testing.T) {
	assert.Equal(t, "Available Courses:\n\nAvailable Tutors:\n", ComposeContext(Catalog{}, nil))
}

func TestComposeContext_DescribesWholeCatalog(t *testing.T) {
	cat := defaultCatalog(t)
	got := ComposeContext(cat, nil)
	for _, c := range cat.Courses {
		assert.Contains(t, got, "- "+c.Name+" (")
	}
	for _, tu := range cat.Tutors {
		assert.Contains(t, got, "- "+tu.Name+" (")
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "29.99", formatNumber(29.99))
	assert.Equal(t, "25", formatNumber(25))
	assert.Equal(t, "4.8", formatNumber(4.8))
	assert.Equal(t, "0", formatNumber(0))
}
