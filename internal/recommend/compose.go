package recommend

import (
	"fmt"
	"strconv"
	"strings"

	"rightsteps/internal/models"
)

// defaultCategory labels courses that carry no category.
const defaultCategory = "General"

// ComposeContext renders the whole catalog, and the learner's progress when
// given, as plain text for the model to ground its answer on. The output is
// byte-for-byte stable for identical inputs.
func ComposeContext(cat Catalog, progress *models.LearnerProgressSnapshot) string {
	var b strings.Builder

	b.WriteString("Available Courses:\n")
	for _, c := range cat.Courses {
		category := c.Category
		if category == "" {
			category = defaultCategory
		}
		fmt.Fprintf(&b, "- %s (%s, %s, £%s, Rating: %s, %s)\n",
			c.Name, category, c.Difficulty, formatNumber(c.Price), formatNumber(c.Rating), c.Duration)
	}

	b.WriteString("\nAvailable Tutors:\n")
	for _, t := range cat.Tutors {
		fmt.Fprintf(&b, "- %s (%s, %s, %s, £%s/hr, Rating: %s)\n",
			t.Name, t.Category, strings.Join(t.Specialization, ", "), t.Experience,
			formatNumber(t.HourlyRate), formatNumber(t.Rating))
	}

	if progress != nil {
		b.WriteString("\nChild Progress Data:\n")
		fmt.Fprintf(&b, "Overall Performance: %d%%\n", progress.OverallPerformance)
		b.WriteString("Subject Scores:\n")
		for _, s := range progress.Subjects {
			fmt.Fprintf(&b, "  - %s: %d%% (%s)\n", s.Subject, s.Score, s.Trend)
		}
		fmt.Fprintf(&b, "Strengths: %s\n", strings.Join(progress.Strengths, ", "))
		fmt.Fprintf(&b, "Weaknesses: %s\n", strings.Join(progress.Weaknesses, ", "))
		fmt.Fprintf(&b, "Study Hours/Week: %d\n", progress.StudyHours)
	}

	return b.String()
}

// formatNumber prints the shortest form that round-trips: 29.99, 25, 4.8.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
