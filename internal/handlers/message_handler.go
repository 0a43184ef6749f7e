package handlers

import (
	"net/http"

	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultPageNumber = 1
	defaultPageSize   = 10
)

// MessageHandler handles contact-form submissions
type MessageHandler struct {
	messageService MessageServiceInterface
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService MessageServiceInterface) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// CreateMessage handles POST /contactUs/ (public)
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	logger.Info("Contact form endpoint called")

	var req models.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}

	msg, err := h.messageService.CreateMessage(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Contact message stored",
		zap.Int64("id", msg.ID),
		zap.String("business_type", string(msg.BusinessType)))
	c.JSON(http.StatusCreated, msg)
}

// ListMessages handles GET /messages/?page_number=&page_size=
func (h *MessageHandler) ListMessages(c *gin.Context) {
	pageNumber, ok := intQuery(c, "page_number", defaultPageNumber)
	if !ok {
		return
	}
	pageSize, ok := intQuery(c, "page_size", defaultPageSize)
	if !ok {
		return
	}

	page, err := h.messageService.ListMessages(pageNumber, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}
