package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/services"
)

type CartHandler struct {
	log         *logger.Logger
	cartService services.CartService
}

func NewCartHandler(log *logger.Logger, cartService services.CartService) *CartHandler {
	return &CartHandler{
		log:         log.With("handler", "CartHandler"),
		cartService: cartService,
	}
}

// POST /select-course
func (h *CartHandler) SelectCourse(c *gin.Context) {
	var req struct {
		CourseCode string `json:"courseCode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	selected, err := h.cartService.Select(req.CourseCode)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"selected_courses": selected, "limit": services.CartLimit})
}

// DELETE /remove-course/:code
func (h *CartHandler) RemoveCourse(c *gin.Context) {
	selected, err := h.cartService.Remove(c.Param("code"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"selected_courses": selected, "limit": services.CartLimit})
}

// GET /selected-courses
func (h *CartHandler) ListSelected(c *gin.Context) {
	selected, limit := h.cartService.List()
	RespondOK(c, gin.H{"selected_courses": selected, "limit": limit})
}
