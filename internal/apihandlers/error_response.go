package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rightsteps/internal/models"
	"rightsteps/internal/services"
)

const (
	msgQueryRequired = "Query parameter is required."
	msgSearchFailed  = "An error occurred while processing your request."
)

// Envelope is the {success, message, data} shape used by the catalog endpoints.
// Example: { "success": false, "message": "Course not found", "data": null }
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// searchErrorResponse keeps the full result shape so clients can render the
// fallback answer unchanged.
type searchErrorResponse struct {
	Error string `json:"error"`
	*models.RecommendationResponse
}

// JSONEnvelope sends a catalog envelope.
func JSONEnvelope(ctx *gin.Context, status int, message string, data any) {
	ctx.JSON(status, Envelope{Success: status < http.StatusBadRequest, Message: message, Data: data})
}

// Convenience wrappers
func OK(ctx *gin.Context, message string, data any) {
	JSONEnvelope(ctx, http.StatusOK, message, data)
}

func NotFound(ctx *gin.Context, msg string) {
	JSONEnvelope(ctx, http.StatusNotFound, msg, nil)
}

func Internal(ctx *gin.Context, msg string) {
	JSONEnvelope(ctx, http.StatusInternalServerError, msg, nil)
}

// SearchBadRequest answers an AI search without a usable query.
func SearchBadRequest(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": msgQueryRequired})
}

// SearchFailed answers an AI search that could not be completed. resp may be
// nil, in which case the standard fallback body is sent.
func SearchFailed(ctx *gin.Context, resp *models.RecommendationResponse) {
	if resp == nil {
		resp = services.FallbackResponse()
	}
	ctx.JSON(http.StatusInternalServerError, searchErrorResponse{Error: msgSearchFailed, RecommendationResponse: resp})
}
