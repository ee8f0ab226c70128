package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unalcansuu/kds-jolly/internal/dto"
	"github.com/unalcansuu/kds-jolly/internal/service"
	"github.com/unalcansuu/kds-jolly/pkg/response"
)

// AuthHandler handles dashboard login requests
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.BadRequest("Username and password are required"))
		return
	}

	if err := h.authService.Login(req.Username, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Invalid username or password"))
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Success: true, Message: "Login successful"})
}
