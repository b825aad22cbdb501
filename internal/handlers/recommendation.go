package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/courseatlas/backend/internal/catalog"
	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/services"
)

type RecommendationHandler struct {
	log     *logger.Logger
	catalog *catalog.Store
	recSvc  services.RecommendationService
}

func NewRecommendationHandler(log *logger.Logger, cat *catalog.Store, recSvc services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		log:     log.With("handler", "RecommendationHandler"),
		catalog: cat,
		recSvc:  recSvc,
	}
}

// GET /recommend/:courseId
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	code := c.Param("courseId")
	recs, err := h.recSvc.Recommend(code)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	payload := gin.H{"recommendations": recs}
	if course, ok := h.catalog.FindCourse(code); ok {
		payload["course"] = course
	}
	RespondOK(c, payload)
}
