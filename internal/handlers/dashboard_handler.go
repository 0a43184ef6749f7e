package handlers

import (
	"net/http"
	"strconv"

	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/internal/services"
	"ahudio-admin-server/internal/stats"
	"ahudio-admin-server/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler handles the call dashboards and the assistant settings
type DashboardHandler struct {
	dashboardService DashboardServiceInterface
	settingsService  SettingsServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboard DashboardServiceInterface, settings SettingsServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboard,
		settingsService:  settings,
	}
}

// Overview handles GET /dashboard/overview
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.dashboardService.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// Stats handles GET /stats/dashboard
func (h *DashboardHandler) Stats(c *gin.Context) {
	result, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Calls handles GET /dashboard/calls?page=&page_size=&call_type=&status=
func (h *DashboardHandler) Calls(c *gin.Context) {
	page, ok := intQuery(c, "page", 1)
	if !ok {
		return
	}
	pageSize, ok := intQuery(c, "page_size", stats.DefaultPageSize)
	if !ok {
		return
	}

	calls, err := h.dashboardService.ListCalls(c.Request.Context(), stats.CallFilter{
		Type:     c.Query("call_type"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, calls)
}

// Call handles GET /dashboard/calls/:id
func (h *DashboardHandler) Call(c *gin.Context) {
	call, err := h.dashboardService.GetCall(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, call)
}

// Voices handles GET /dashboard/voices
func (h *DashboardHandler) Voices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"voices": services.VoiceCatalog()})
}

func assistantIDQuery(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("assistant_id"), 10, 64)
	if err != nil {
		badRequest(c, "assistant_id is required", err)
		return 0, false
	}
	return id, true
}

// GetSettings handles GET /dashboard/assistant/settings?assistant_id=
func (h *DashboardHandler) GetSettings(c *gin.Context) {
	id, ok := assistantIDQuery(c)
	if !ok {
		return
	}
	settings, err := h.settingsService.GetSettings(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PATCH /dashboard/assistant/settings?assistant_id=
func (h *DashboardHandler) UpdateSettings(c *gin.Context) {
	id, ok := assistantIDQuery(c)
	if !ok {
		return
	}
	var upd models.AssistantSettingsUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		badRequest(c, "Invalid request format", err)
		return
	}

	if err := h.settingsService.UpdateSettings(c.Request.Context(), id, &upd); err != nil {
		logger.Warn("Assistant settings update failed", zap.Int64("assistant_id", id), zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Assistant settings updated"})
}
