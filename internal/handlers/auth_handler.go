package handlers

import (
	"errors"
	"io"
	"net/http"

	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /auth/login. Credentials come from a JSON body,
// a form body or the query string.
func (h *AuthHandler) Login(c *gin.Context) {
	logger.Info("Auth login endpoint called")

	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "Invalid request format", err)
		return
	}
	if req.Username == "" && req.Password == "" {
		if err := c.ShouldBindQuery(&req); err != nil {
			badRequest(c, "Invalid request format", err)
			return
		}
	}

	resp, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		logger.Warn("Login rejected", zap.String("username", req.Username), zap.Error(err))
		respondError(c, err)
		return
	}

	logger.Info("Login succeeded", zap.String("username", resp.Username))
	c.JSON(http.StatusOK, resp)
}
