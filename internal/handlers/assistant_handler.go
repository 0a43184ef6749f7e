package handlers

import (
	"net/http"

	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler handles the remote assistant endpoints and the type catalogs
type AssistantHandler struct {
	assistantService AssistantServiceInterface
	catalogService   CatalogServiceInterface
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistants AssistantServiceInterface, catalog CatalogServiceInterface) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistants,
		catalogService:   catalog,
	}
}

// List handles GET /assistants/ after a full sync
func (h *AssistantHandler) List(c *gin.Context) {
	assistants, err := h.assistantService.ListAssistants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assistants)
}

// Sync handles POST /assistants/sync
func (h *AssistantHandler) Sync(c *gin.Context) {
	logger.Info("Assistant sync endpoint called", zap.String("user", c.GetString("username")))

	report, err := h.assistantService.SyncAssistants(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *AssistantHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	assistant, err := h.assistantService.GetAssistant(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assistant)
}

func (h *AssistantHandler) Create(c *gin.Context) {
	var req models.AssistantCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	assistant, err := h.assistantService.CreateAssistant(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assistant)
}

// Update handles PATCH /assistants/:id
func (h *AssistantHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req models.AssistantUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	assistant, err := h.assistantService.UpdateAssistant(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assistant)
}

func (h *AssistantHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.assistantService.DeleteAssistant(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// VoiceTypes handles GET /vapi/voice-types
func (h *AssistantHandler) VoiceTypes(c *gin.Context) {
	types, err := h.catalogService.VoiceTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// BehaviorTypes handles GET /vapi/behavior-types
func (h *AssistantHandler) BehaviorTypes(c *gin.Context) {
	types, err := h.catalogService.BehaviorTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

// PhoneHandler handles the remote phone number endpoints
type PhoneHandler struct {
	phoneService PhoneServiceInterface
}

// NewPhoneHandler creates a new phone number handler
func NewPhoneHandler(phoneService PhoneServiceInterface) *PhoneHandler {
	return &PhoneHandler{phoneService: phoneService}
}

// List handles GET /phones/ (public) after a full sync
func (h *PhoneHandler) List(c *gin.Context) {
	phones, err := h.phoneService.ListPhoneNumbers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, phones)
}

// Sync handles POST /phones/sync
func (h *PhoneHandler) Sync(c *gin.Context) {
	logger.Info("Phone number sync endpoint called", zap.String("user", c.GetString("username")))

	report, err := h.phoneService.SyncPhoneNumbers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *PhoneHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	phone, err := h.phoneService.GetPhoneNumber(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, phone)
}

func (h *PhoneHandler) Create(c *gin.Context) {
	var req models.PhoneNumberCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	phone, err := h.phoneService.CreatePhoneNumber(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, phone)
}

// Update handles PATCH /phones/:id
func (h *PhoneHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req models.PhoneNumberUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}
	phone, err := h.phoneService.UpdatePhoneNumber(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, phone)
}

func (h *PhoneHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.phoneService.DeletePhoneNumber(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
