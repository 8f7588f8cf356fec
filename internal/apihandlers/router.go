package apihandlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the gin engine with middleware and every route mounted.
func NewRouter(h *APIHandler) *gin.Engine {
	router := gin.New()
	// Recovery runs inside the logger and metrics so a panic is still
	// logged and counted as a 500.
	router.Use(RequestID(), RequestLogger(), PrometheusMetrics(), Recovery())

	api := router.Group("/api")
	{
		searchGroup := api.Group("/search")
		{
			searchGroup.POST("", append(h.searchLimits(), h.SearchHandler)...)
			searchGroup.GET("/history", h.SearchHistoryHandler)
		}

		courseGroup := api.Group("/courses")
		{
			courseGroup.GET("", h.ListCoursesHandler)
			courseGroup.GET("/:slug", h.GetCourseHandler)
		}

		tutorGroup := api.Group("/tutors")
		{
			tutorGroup.GET("", h.ListTutorsHandler)
			tutorGroup.GET("/:slug", h.GetTutorHandler)
		}
	}

	router.GET("/health", h.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return router
}

// searchLimits returns the rate limit for AI search, if one is configured.
func (h *APIHandler) searchLimits() []gin.HandlerFunc {
	cfg := h.App.Config
	if cfg == nil || cfg.Server.SearchRatePerMinute <= 0 {
		return nil
	}
	rl := NewRateLimiter(cfg.Server.SearchRatePerMinute, cfg.Server.SearchBurst)
	return []gin.HandlerFunc{rl.Middleware()}
}
