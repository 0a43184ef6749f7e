package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ahudio-admin-server/internal/services"
	"ahudio-admin-server/pkg/logger"
	"ahudio-admin-server/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var notFoundErrors = []error{
	services.ErrEmailNotFound,
	services.ErrPhoneContactNotFound,
	services.ErrAssistantNotFound,
	services.ErrPhoneNumberNotFound,
	services.ErrCallNotFound,
}

var badRequestErrors = []error{
	services.ErrNoUpdatableField,
	services.ErrInvalidPagination,
	services.ErrInvalidTuningValue,
	services.ErrInvalidVoice,
	services.ErrUnsupportedFileType,
	services.ErrInvalidAboutField,
	services.ErrInvalidMessage,
	utils.ErrUnsupportedEncoding,
	utils.ErrUndecodableText,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondError maps a service error to its status code and writes {"error": ...}
func respondError(c *gin.Context, err error) {
	var upErr *services.UpstreamError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case isAny(err, notFoundErrors):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case isAny(err, badRequestErrors):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrFileTooLarge), errors.As(err, &maxBytesErr):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": services.ErrFileTooLarge.Error()})
	case errors.As(err, &upErr):
		logger.Error("Upstream request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": upErr.Error()})
	default:
		logger.Error("Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func badRequest(c *gin.Context, message string, err error) {
	logger.Warn(message, zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// idParam parses the :id route parameter, answering 400 itself when it is not an integer
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid ID", err)
		return 0, false
	}
	return id, true
}

// intQuery parses an optional integer query parameter
func intQuery(c *gin.Context, key string, fallback int) (int, bool) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, "Invalid "+key, err)
		return 0, false
	}
	return v, true
}
