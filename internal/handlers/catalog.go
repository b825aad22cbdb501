package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/courseatlas/backend/internal/catalog"
	"github.com/courseatlas/backend/internal/logger"
)

type CatalogHandler struct {
	log     *logger.Logger
	catalog *catalog.Store
}

func NewCatalogHandler(log *logger.Logger, cat *catalog.Store) *CatalogHandler {
	return &CatalogHandler{
		log:     log.With("handler", "CatalogHandler"),
		catalog: cat,
	}
}

// GET /majors
func (h *CatalogHandler) ListMajors(c *gin.Context) {
	RespondOK(c, h.catalog.ListMajors())
}

// GET /courses/:majorId
func (h *CatalogHandler) GetCourses(c *gin.Context) {
	majorID, err := strconv.Atoi(c.Param("majorId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_major_id", err)
		return
	}
	major, courses, err := h.catalog.Courses(majorID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"major": major, "courses": courses})
}

// GET /faculty/:majorId
func (h *CatalogHandler) GetFaculty(c *gin.Context) {
	majorID, err := strconv.Atoi(c.Param("majorId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_major_id", err)
		return
	}
	major, faculty, err := h.catalog.Faculty(majorID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"major": major, "faculty": faculty})
}
