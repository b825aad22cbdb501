package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/services"
)

type AssistantHandler struct {
	log              *logger.Logger
	assistantService services.AssistantService
}

func NewAssistantHandler(log *logger.Logger, assistantService services.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		log:              log.With("handler", "AssistantHandler"),
		assistantService: assistantService,
	}
}

// POST /assistant
func (h *AssistantHandler) Ask(c *gin.Context) {
	var req struct {
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	result, err := h.assistantService.Ask(c.Request.Context(), req.Question)
	if err != nil {
		h.log.Error("Ask failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"response": result.Response, "matching_courses": result.MatchingCourses})
}

// POST /summarize
func (h *AssistantHandler) Summarize(c *gin.Context) {
	var req struct {
		CourseDescription string `json:"courseDescription"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	summary, err := h.assistantService.Summarize(c.Request.Context(), req.CourseDescription)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"summary": summary})
}
