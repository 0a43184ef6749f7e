package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"ahudio-admin-server/internal/models"
	"ahudio-admin-server/internal/services"
	"ahudio-admin-server/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupDashboardRoutes(dash *mockDashboardService, settings *mockSettingsService) *gin.Engine {
	r := newTestEngine()
	h := NewDashboardHandler(dash, settings)
	r.GET("/dashboard/overview", h.Overview)
	r.GET("/dashboard/calls", h.Calls)
	r.GET("/dashboard/calls/:id", h.Call)
	r.GET("/dashboard/voices", h.Voices)
	r.GET("/dashboard/assistant/settings", h.GetSettings)
	r.PATCH("/dashboard/assistant/settings", h.UpdateSettings)
	r.GET("/stats/dashboard", h.Stats)
	return r
}

func TestDashboardOverview(t *testing.T) {
	dash := new(mockDashboardService)
	dash.On("Overview", mock.Anything).Return(&stats.OverviewResponse{
		Stats:       stats.OverviewStats{TotalCalls: 4},
		ChartData:   stats.WeeklyChartData{DailyData: []stats.DailyCallData{}},
		RecentCalls: []stats.RecentCall{},
		Skipped:     1,
	}, nil)

	w := perform(setupDashboardRoutes(dash, nil), http.MethodGet, "/dashboard/overview", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, string(body["stats"]), `"total_calls":4`)
	assert.NotContains(t, w.Body.String(), "Skipped")
}

func TestDashboardStatsUpstreamError(t *testing.T) {
	dash := new(mockDashboardService)
	dash.On("Stats", mock.Anything).
		Return(nil, &services.UpstreamError{Op: "Failed to fetch calls", Err: errors.New("401 Unauthorized")})

	w := perform(setupDashboardRoutes(dash, nil), http.MethodGet, "/stats/dashboard", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to fetch calls: 401 Unauthorized", decodeError(t, w))
}

func TestDashboardCalls(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		filter         *stats.CallFilter
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "defaults",
			filter:         &stats.CallFilter{Page: 1, PageSize: stats.DefaultPageSize},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "filtered",
			query:          "?page=2&page_size=5&call_type=webCall&status=ended",
			filter:         &stats.CallFilter{Type: "webCall", Status: "ended", Page: 2, PageSize: 5},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "oversized page",
			query:          "?page_size=500",
			filter:         &stats.CallFilter{Page: 1, PageSize: 500},
			serviceErr:     services.ErrInvalidPagination,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "page not a number",
			query:          "?page=first",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dash := new(mockDashboardService)
			if tt.filter != nil {
				if tt.serviceErr != nil {
					dash.On("ListCalls", mock.Anything, *tt.filter).Return(nil, tt.serviceErr)
				} else {
					dash.On("ListCalls", mock.Anything, *tt.filter).Return([]stats.CallSummary{{ID: "c1"}}, nil)
				}
			}

			w := perform(setupDashboardRoutes(dash, nil), http.MethodGet, "/dashboard/calls"+tt.query, nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			dash.AssertExpectations(t)
		})
	}
}

func TestDashboardCall(t *testing.T) {
	dash := new(mockDashboardService)
	dash.On("GetCall", mock.Anything, "c1").Return(&stats.CallDetail{CallSummary: stats.CallSummary{ID: "c1"}}, nil)
	dash.On("GetCall", mock.Anything, "zz").Return(nil, services.ErrCallNotFound)
	r := setupDashboardRoutes(dash, nil)

	w := perform(r, http.MethodGet, "/dashboard/calls/c1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"c1"`)

	w = perform(r, http.MethodGet, "/dashboard/calls/zz", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Call not found", decodeError(t, w))
}

func TestDashboardVoices(t *testing.T) {
	w := perform(setupDashboardRoutes(nil, nil), http.MethodGet, "/dashboard/voices", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Voices []models.VoiceOption `json:"voices"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Voices, 4)
	assert.Equal(t, "elevenlabs", body.Voices[0].Provider)
}

func TestAssistantSettingsEndpoints(t *testing.T) {
	t.Run("get requires assistant id", func(t *testing.T) {
		w := perform(setupDashboardRoutes(nil, new(mockSettingsService)), http.MethodGet, "/dashboard/assistant/settings", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "assistant_id is required", decodeError(t, w))
	})

	t.Run("get", func(t *testing.T) {
		settings := new(mockSettingsService)
		settings.On("GetSettings", int64(3)).Return(&models.AssistantSettingsResponse{
			CurrentSettings: models.AssistantSettings{Flexibility: 70, Humor: 30, GoalFocus: 50},
		}, nil)

		w := perform(setupDashboardRoutes(nil, settings), http.MethodGet, "/dashboard/assistant/settings?assistant_id=3", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"flexibility":70`)
	})

	t.Run("get missing assistant", func(t *testing.T) {
		settings := new(mockSettingsService)
		settings.On("GetSettings", int64(8)).Return(nil, services.ErrAssistantNotFound)

		w := perform(setupDashboardRoutes(nil, settings), http.MethodGet, "/dashboard/assistant/settings?assistant_id=8", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("patch", func(t *testing.T) {
		settings := new(mockSettingsService)
		settings.On("UpdateSettings", mock.Anything, int64(3), &models.AssistantSettingsUpdate{Humor: intPtr(80)}).Return(nil)

		w := perform(setupDashboardRoutes(nil, settings), http.MethodPatch, "/dashboard/assistant/settings?assistant_id=3", map[string]int{"humor": 80})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"success","message":"Assistant settings updated"}`, w.Body.String())
		settings.AssertExpectations(t)
	})

	t.Run("patch out of range", func(t *testing.T) {
		settings := new(mockSettingsService)
		settings.On("UpdateSettings", mock.Anything, int64(3), mock.Anything).Return(services.ErrInvalidTuningValue)

		w := perform(setupDashboardRoutes(nil, settings), http.MethodPatch, "/dashboard/assistant/settings?assistant_id=3", map[string]int{"humor": 180})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "tuning values must be between 0 and 100", decodeError(t, w))
	})
}
