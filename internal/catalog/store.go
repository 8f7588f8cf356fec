package catalog

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"rightsteps/internal/models"
	"rightsteps/internal/store"
)

// Store is a read-only, in-memory catalog of courses and tutors.
// Every call hands out copies, so callers may sort or trim freely.
type Store struct {
	courses []models.Course
	tutors  []models.Tutor
}

var _ store.CatalogStore = (*Store)(nil)

// New builds a store from the given records. Missing slugs are derived from names.
func New(courses []models.Course, tutors []models.Tutor) *Store {
	s := &Store{
		courses: cloneCourses(courses),
		tutors:  cloneTutors(tutors),
	}
	for i := range s.courses {
		if s.courses[i].Slug == "" {
			s.courses[i].Slug = Slugify(s.courses[i].Name)
		}
	}
	for i := range s.tutors {
		if s.tutors[i].Slug == "" {
			s.tutors[i].Slug = Slugify(s.tutors[i].Name)
		}
	}
	return s
}

// Default returns a store holding the built-in marketplace catalog.
func Default() *Store {
	return New(defaultCourses, defaultTutors)
}

// fileCatalog is the on-disk layout of a catalog fixture.
type fileCatalog struct {
	Courses []models.Course `yaml:"courses"`
	Tutors  []models.Tutor  `yaml:"tutors"`
}

// LoadFile reads a YAML catalog fixture. An empty path yields the built-in catalog.
func LoadFile(path string) (*Store, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	for i, c := range fc.Courses {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("%w: course #%d has no name", models.ErrValidation, i+1)
		}
		if c.Difficulty != "" && !c.Difficulty.Valid() {
			return nil, fmt.Errorf("%w: course %q has unknown difficulty %q", models.ErrValidation, c.Name, c.Difficulty)
		}
	}
	for i, t := range fc.Tutors {
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("%w: tutor #%d has no name", models.ErrValidation, i+1)
		}
	}

	log.WithFields(log.Fields{
		"path":    path,
		"courses": len(fc.Courses),
		"tutors":  len(fc.Tutors),
	}).Info("Loaded catalog file")

	return New(fc.Courses, fc.Tutors), nil
}

func (s *Store) ListCourses(ctx context.Context) ([]models.Course, error) {
	return cloneCourses(s.courses), nil
}

func (s *Store) ListTutors(ctx context.Context) ([]models.Tutor, error) {
	return cloneTutors(s.tutors), nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display name into a URL slug, e.g. "History: World War II" -> "history-world-war-ii".
func Slugify(name string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

func cloneCourses(in []models.Course) []models.Course {
	out := make([]models.Course, len(in))
	for i, c := range in {
		c.Badges = cloneStrings(c.Badges)
		c.LearningPoints = cloneStrings(c.LearningPoints)
		out[i] = c
	}
	return out
}

func cloneTutors(in []models.Tutor) []models.Tutor {
	out := make([]models.Tutor, len(in))
	for i, t := range in {
		t.Specialization = cloneStrings(t.Specialization)
		t.Languages = cloneStrings(t.Languages)
		out[i] = t
	}
	return out
}

// cloneStrings never returns nil so list fields encode as [] rather than null.
func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
