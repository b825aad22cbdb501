package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/services"
	"github.com/courseatlas/backend/internal/types"
)

type UserHandler struct {
	log         *logger.Logger
	userService services.UserService
}

func NewUserHandler(log *logger.Logger, userService services.UserService) *UserHandler {
	return &UserHandler{
		log:         log.With("handler", "UserHandler"),
		userService: userService,
	}
}

// POST /signup
func (h *UserHandler) Signup(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	user, err := h.userService.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"uid": user.UID, "name": user.Name, "email": user.Email})
}

// POST /login
func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	user, err := h.userService.Login(req.Email, req.Password)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"uid": user.UID, "name": user.Name, "email": user.Email})
}

// GET /welcome/:uid
func (h *UserHandler) Welcome(c *gin.Context) {
	welcome, err := h.userService.Welcome(c.Param("uid"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, welcome)
}

// POST /complete-registration
func (h *UserHandler) CompleteRegistration(c *gin.Context) {
	var req struct {
		UID     string         `json:"uid"`
		Courses []types.Course `json:"courses"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	regs, err := h.userService.CompleteRegistration(req.UID, req.Courses)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, regs)
}

// GET /user-registrations/:uid
func (h *UserHandler) GetRegistrations(c *gin.Context) {
	regs, err := h.userService.Registrations(c.Param("uid"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, regs)
}

// DELETE /user-registrations/:uid
func (h *UserHandler) ClearRegistrations(c *gin.Context) {
	regs, err := h.userService.ClearRegistrations(c.Param("uid"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, regs)
}
