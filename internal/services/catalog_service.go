package services

import (
	"context"
	"fmt"
	"strings"

	"rightsteps/internal/models"
	"rightsteps/internal/store"
)

const (
	DefaultPage      = 1
	DefaultPageLimit = 10

	// categoryAll disables the category filter.
	categoryAll = "All"
)

// Page selects a 1-based page of results.
type Page struct {
	Page  int
	Limit int
}

// normalize applies defaults to missing or out-of-range values.
func (p Page) normalize() Page {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	return p
}

// CourseFilter narrows ListCourses. Zero values do not filter.
type CourseFilter struct {
	Category   string // substring of the course name
	Difficulty string
	Provider   string
	Page
}

// TutorFilter narrows ListTutors. Zero values do not filter.
type TutorFilter struct {
	Category       string
	Specialization string
	MinExperience  int
	MinRating      float64
	Page
}

// CoursePage is one page of courses plus pagination totals.
type CoursePage struct {
	Courses     []models.Course `json:"courses"`
	Total       int             `json:"total"`
	HasNextPage bool            `json:"hasNextPage"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
}

// TutorPage is one page of tutors plus pagination totals.
type TutorPage struct {
	Tutors      []models.Tutor `json:"tutors"`
	Total       int            `json:"total"`
	HasNextPage bool           `json:"hasNextPage"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
}

// CatalogService serves the browse and detail views of the marketplace.
type CatalogService struct {
	store store.CatalogStore
}

func NewCatalogService(s store.CatalogStore) *CatalogService {
	return &CatalogService{store: s}
}

// ListCourses returns the requested page of courses matching f, in catalog order.
func (s *CatalogService) ListCourses(ctx context.Context, f CourseFilter) (*CoursePage, error) {
	courses, err := s.store.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	matched := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if f.Category != "" && f.Category != categoryAll && !strings.Contains(c.Name, f.Category) {
			continue
		}
		if f.Difficulty != "" && string(c.Difficulty) != f.Difficulty {
			continue
		}
		if f.Provider != "" && c.Provider != f.Provider {
			continue
		}
		matched = append(matched, c)
	}

	p := f.Page.normalize()
	lo, hi := pageBounds(len(matched), p)
	return &CoursePage{
		Courses:     matched[lo:hi],
		Total:       len(matched),
		HasNextPage: hi < len(matched),
		CurrentPage: p.Page,
		TotalPages:  totalPages(len(matched), p.Limit),
	}, nil
}

// GetCourse looks a course up by slug.
func (s *CatalogService) GetCourse(ctx context.Context, slug string) (*models.Course, error) {
	courses, err := s.store.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	for i := range courses {
		if courses[i].Slug == slug {
			return &courses[i], nil
		}
	}
	return nil, fmt.Errorf("course %q: %w", slug, models.ErrNotFound)
}

// ListTutors returns the requested page of tutors matching f, in catalog order.
func (s *CatalogService) ListTutors(ctx context.Context, f TutorFilter) (*TutorPage, error) {
	tutors, err := s.store.ListTutors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tutors: %w", err)
	}

	matched := make([]models.Tutor, 0, len(tutors))
	for _, t := range tutors {
		if f.Category != "" && f.Category != categoryAll && t.Category != f.Category {
			continue
		}
		if f.Specialization != "" && !t.HasSpecialization(f.Specialization) {
			continue
		}
		if f.MinExperience > 0 && t.ExperienceYears() < f.MinExperience {
			continue
		}
		if f.MinRating > 0 && t.Rating < f.MinRating {
			continue
		}
		matched = append(matched, t)
	}

	p := f.Page.normalize()
	lo, hi := pageBounds(len(matched), p)
	return &TutorPage{
		Tutors:      matched[lo:hi],
		Total:       len(matched),
		HasNextPage: hi < len(matched),
		CurrentPage: p.Page,
		TotalPages:  totalPages(len(matched), p.Limit),
	}, nil
}

// GetTutor looks a tutor up by slug.
func (s *CatalogService) GetTutor(ctx context.Context, slug string) (*models.Tutor, error) {
	tutors, err := s.store.ListTutors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tutors: %w", err)
	}
	for i := range tutors {
		if tutors[i].Slug == slug {
			return &tutors[i], nil
		}
	}
	return nil, fmt.Errorf("tutor %q: %w", slug, models.ErrNotFound)
}

// pageBounds returns the slice bounds of page p. Pages past the end are empty.
// Comparisons are made before multiplying so huge values cannot overflow.
func pageBounds(total int, p Page) (lo, hi int) {
	if p.Page-1 > total/p.Limit {
		return total, total
	}
	lo = (p.Page - 1) * p.Limit
	if lo > total {
		lo = total
	}
	hi = total
	if p.Limit < total-lo {
		hi = lo + p.Limit
	}
	return lo, hi
}

func totalPages(total, limit int) int {
	if total == 0 {
		return 0
	}
	return (total-1)/limit + 1
}
