package apihandlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"rightsteps/internal/app"
	"rightsteps/internal/models"
	"rightsteps/internal/services"
)

// maxPageLimit caps the page size a client can request.
const maxPageLimit = 100

type APIHandler struct {
	App *app.App
}

// SearchHandler handles POST /api/search.
func (h *APIHandler) SearchHandler(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithField("request_id", GetRequestID(c)).WithError(err).Warn("Invalid search request body")
		SearchBadRequest(c)
		return
	}

	resp, err := h.App.RecommendationService.Recommend(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRequest) {
			SearchBadRequest(c)
			return
		}
		log.WithField("request_id", GetRequestID(c)).WithError(err).Error("AI search failed")
		SearchFailed(c, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchHistoryHandler handles GET /api/search/history.
func (h *APIHandler) SearchHistoryHandler(c *gin.Context) {
	limit := queryInt(c, "limit", 20)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	queries, err := h.App.HistoryService.Recent(c.Request.Context(), limit)
	if err != nil {
		log.WithField("request_id", GetRequestID(c)).WithError(err).Error("Failed to fetch search history")
		Internal(c, "Failed to fetch search history")
		return
	}
	OK(c, "Search history fetched successfully", gin.H{"queries": queries})
}

// ListCoursesHandler handles GET /api/courses.
func (h *APIHandler) ListCoursesHandler(c *gin.Context) {
	filter := services.CourseFilter{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Provider:   c.Query("provider"),
		Page:       parsePage(c),
	}
	page, err := h.App.CatalogService.ListCourses(c.Request.Context(), filter)
	if err != nil {
		log.WithField("request_id", GetRequestID(c)).WithError(err).Error("Error fetching courses")
		Internal(c, "Failed to fetch courses")
		return
	}
	OK(c, "Courses fetched successfully", page)
}

// GetCourseHandler handles GET /api/courses/:slug.
func (h *APIHandler) GetCourseHandler(c *gin.Context) {
	course, err := h.App.CatalogService.GetCourse(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			NotFound(c, "Course not found")
			return
		}
		log.WithField("request_id", GetRequestID(c)).WithError(err).Error("Error fetching course")
		Internal(c, "Failed to fetch course")
		return
	}
	OK(c, "Course fetched successfully", gin.H{"course": course})
}

// ListTutorsHandler handles GET /api/tutors.
func (h *APIHandler) ListTutorsHandler(c *gin.Context) {
	filter := services.TutorFilter{
		Category:       c.Query("category"),
		Specialization: c.Query("specialization"),
		MinExperience:  queryInt(c, "experience", 0),
		Page:           parsePage(c),
	}
	if r := c.Query("rating"); r != "" {
		if v, err := strconv.ParseFloat(r, 64); err == nil {
			filter.MinRating = v
		}
	}
	page, err := h.App.CatalogService.ListTutors(c.Request.Context(), filter)
	if err != nil {
		log.WithField("request_id", GetRequestID(c)).WithError(err).Error("Error fetching tutors")
		Internal(c, "Failed to fetch tutors")
		return
	}
	OK(c, "Tutors fetched successfully", page)
}

// GetTutorHandler handles GET /api/tutors/:slug.
func (h *APIHandler) GetTutorHandler(c *gin.Context) {
	tutor, err := h.App.CatalogService.GetTutor(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			NotFound(c, "Tutor not found")
			return
		}
		log.WithField("request_id", GetRequestID(c)).WithError(err).Error("Error fetching tutor")
		Internal(c, "Failed to fetch tutor")
		return
	}
	OK(c, "Tutor fetched successfully", gin.H{"tutor": tutor})
}

// HealthHandler handles GET /health. The service stays healthy without a
// database or provider; their state is reported for diagnosis.
func (h *APIHandler) HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	database := "ok"
	if err := h.App.PrimaryStore.Ping(ctx); err != nil {
		database = err.Error()
	}
	cs := h.App.CompletionService
	provider := gin.H{
		"name":   cs.Name(),
		"model":  cs.ModelName(),
		"status": cs.Status().String(),
	}
	if b, ok := cs.(services.BreakerState); ok {
		provider["breaker"] = b.State()
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": database,
		"provider": provider,
	})
}

// parsePage reads page and limit, falling back to defaults on bad input.
func parsePage(c *gin.Context) services.Page {
	limit := queryInt(c, "limit", services.DefaultPageLimit)
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return services.Page{
		Page:  queryInt(c, "page", services.DefaultPage),
		Limit: limit,
	}
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
