package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/services"
)

type AnalyticsHandler struct {
	log              *logger.Logger
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(log *logger.Logger, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		log:              log.With("handler", "AnalyticsHandler"),
		analyticsService: analyticsService,
	}
}

// POST /courses/:code/view
func (h *AnalyticsHandler) RecordView(c *gin.Context) {
	code := c.Param("code")
	views := h.analyticsService.RecordView(code)
	RespondOK(c, gin.H{"code": code, "views": views})
}

// GET /analytics
func (h *AnalyticsHandler) ListAnalytics(c *gin.Context) {
	RespondOK(c, gin.H{"courses": h.analyticsService.ListAnalytics()})
}
