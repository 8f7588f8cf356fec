// Package recommend holds the deterministic half of AI search: the keyword
// rules that narrow the catalog and the grounding text sent to the model.
// Nothing here performs I/O.
package recommend

import (
	"sort"
	"strings"

	"rightsteps/internal/models"
)

// MaxResults caps each of the course and tutor lists.
const MaxResults = 5

// Catalog is a point-in-time read of the catalog store.
type Catalog struct {
	Courses []models.Course
	Tutors  []models.Tutor
}

// Result is the keyword-filtered selection. Both lists are non-nil, sorted by
// rating (highest first) and hold at most MaxResults entries.
type Result struct {
	Courses []models.Course
	Tutors  []models.Tutor
}

// rule narrows the working set when its predicate matches the lowercased query.
type rule struct {
	name  string
	match func(q string) bool
	apply func(ws *Catalog)
}

// stage is evaluated top to bottom and stops at the first matching rule.
type stage []rule

// stages run in order. Each rule replaces the working set, so later stages
// only see what earlier stages kept.
var stages = []stage{
	{ // subject
		{
			name:  "mathematics",
			match: containsAny("math"),
			apply: narrow(courseNameContains("math"), tutorCategoryIs("Mathematics")),
		},
		{
			name:  "science",
			match: containsAny("science", "physics", "chemistry", "biology"),
			apply: narrow(courseNameContains("science", "physics", "chemistry", "biology"), tutorCategoryIs("Science")),
		},
		{
			name:  "english",
			match: containsAny("english", "literature", "writing"),
			apply: narrow(courseNameContains("english", "literature", "writing"), tutorCategoryIs("English")),
		},
	},
	{ // exam stage
		{
			name:  "gcse",
			match: containsAny("gcse"),
			apply: narrow(
				func(c models.Course) bool {
					return strings.Contains(c.Name, "GCSE") ||
						strings.Contains(c.Grade, "Year 10") || strings.Contains(c.Grade, "Year 11")
				},
				tutorSpecializesIn("Exam Preparation"),
			),
		},
		{
			name:  "sats",
			match: containsAny("sats", "year 6"),
			apply: narrow(
				func(c models.Course) bool {
					return strings.Contains(c.Name, "SATs") || strings.Contains(c.Grade, "Year 6")
				},
				tutorSpecializesIn("Exam Preparation", "Test Preparation"),
			),
		},
	},
	{ // tutor specialization, courses untouched
		{
			name:  "exam-prep",
			match: containsAny("exam", "test"),
			apply: narrow(nil, tutorSpecializesIn("Exam Preparation", "Test Preparation")),
		},
		{
			name:  "homework",
			match: containsAny("homework"),
			apply: narrow(nil, tutorSpecializesIn("Homework Help")),
		},
		{
			name:  "confidence",
			match: containsAny("confidence", "struggling"),
			apply: narrow(nil, tutorSpecializesIn("Confidence Building")),
		},
	},
	{ // intent
		{
			name:  "tutors-only",
			match: func(q string) bool { return strings.Contains(q, "tutor") && !strings.Contains(q, "course") },
			apply: func(ws *Catalog) { ws.Courses = []models.Course{} },
		},
		{
			name:  "courses-only",
			match: func(q string) bool { return strings.Contains(q, "course") && !strings.Contains(q, "tutor") },
			apply: func(ws *Catalog) { ws.Tutors = []models.Tutor{} },
		},
	},
}

// Filter selects the courses and tutors that best fit query.
//
// When progress is non-nil the keyword cascade is discarded and the result is
// rebuilt from the full catalog around the learner's weak subjects instead.
func Filter(cat Catalog, query string, progress *models.LearnerProgressSnapshot) Result {
	if progress != nil {
		return filterByWeakness(cat, progress.Weaknesses)
	}

	q := strings.ToLower(query)
	ws := Catalog{Courses: cat.Courses, Tutors: cat.Tutors}
	for _, st := range stages {
		for _, r := range st {
			if r.match(q) {
				r.apply(&ws)
				break
			}
		}
	}
	return rank(ws)
}

// MatchedRules names the rule picked in each stage for query, for logging.
func MatchedRules(query string) []string {
	q := strings.ToLower(query)
	var names []string
	for _, st := range stages {
		for _, r := range st {
			if r.match(q) {
				names = append(names, r.name)
				break
			}
		}
	}
	return names
}

func filterByWeakness(cat Catalog, weaknesses []string) Result {
	weak := make([]string, 0, len(weaknesses))
	for _, w := range weaknesses {
		if w = strings.ToLower(w); w != "" {
			weak = append(weak, w)
		}
	}
	mentions := func(s string) bool {
		s = strings.ToLower(s)
		for _, w := range weak {
			if strings.Contains(s, w) {
				return true
			}
		}
		return false
	}

	ws := Catalog{
		Courses: filterCourses(cat.Courses, func(c models.Course) bool { return mentions(c.Name) }),
		Tutors:  filterTutors(cat.Tutors, func(t models.Tutor) bool { return mentions(t.Category) || mentions(t.Tagline) }),
	}
	return rank(ws)
}

// rank copies, stable-sorts by rating and truncates both lists.
func rank(ws Catalog) Result {
	courses := append([]models.Course{}, ws.Courses...)
	sort.SliceStable(courses, func(i, j int) bool { return courses[i].Rating > courses[j].Rating })
	if len(courses) > MaxResults {
		courses = courses[:MaxResults]
	}

	tutors := append([]models.Tutor{}, ws.Tutors...)
	sort.SliceStable(tutors, func(i, j int) bool { return tutors[i].Rating > tutors[j].Rating })
	if len(tutors) > MaxResults {
		tutors = tutors[:MaxResults]
	}
	return Result{Courses: courses, Tutors: tutors}
}

func containsAny(terms ...string) func(string) bool {
	return func(q string) bool {
		for _, t := range terms {
			if strings.Contains(q, t) {
				return true
			}
		}
		return false
	}
}

// narrow builds a rule action. A nil predicate leaves that list alone.
func narrow(keepCourse func(models.Course) bool, keepTutor func(models.Tutor) bool) func(*Catalog) {
	return func(ws *Catalog) {
		if keepCourse != nil {
			ws.Courses = filterCourses(ws.Courses, keepCourse)
		}
		if keepTutor != nil {
			ws.Tutors = filterTutors(ws.Tutors, keepTutor)
		}
	}
}

func courseNameContains(terms ...string) func(models.Course) bool {
	return func(c models.Course) bool {
		return containsAny(terms...)(strings.ToLower(c.Name))
	}
}

func tutorCategoryIs(category string) func(models.Tutor) bool {
	return func(t models.Tutor) bool { return t.Category == category }
}

func tutorSpecializesIn(specs ...string) func(models.Tutor) bool {
	return func(t models.Tutor) bool {
		for _, s := range specs {
			if t.HasSpecialization(s) {
				return true
			}
		}
		return false
	}
}

func filterCourses(in []models.Course, keep func(models.Course) bool) []models.Course {
	out := []models.Course{}
	for _, c := range in {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func filterTutors(in []models.Tutor, keep func(models.Tutor) bool) []models.Tutor {
	out := []models.Tutor{}
	for _, t := range in {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
