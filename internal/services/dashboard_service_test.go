package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ahudio-admin-server/internal/stats"
)

var dashboardNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func setupTestDashboardService(t *testing.T, records ...string) (*mockCallGateway, *DashboardService) {
	gw := new(mockCallGateway)
	t.Cleanup(func() { gw.AssertExpectations(t) })

	if records != nil {
		raw := make([]json.RawMessage, len(records))
		for i, r := range records {
			raw[i] = json.RawMessage(r)
		}
		gw.On("ListCalls", mock.Anything).Return(raw, nil)
	}

	service := NewDashboardService(gw)
	service.now = func() time.Time { return dashboardNow }
	return gw, service
}

var dashboardRecords = []string{
	`{"id":"c1","type":"webCall","status":"ended","endedReason":"customer-ended-call","cost":0.5,
	  "createdAt":"2024-06-15T09:00:00Z","endedAt":"2024-06-15T09:02:00Z"}`,
	`{"id":"c2","type":"inboundPhoneCall","status":"ended","endedReason":"pipeline-error-openai","cost":0.25,
	  "createdAt":"2024-06-14T09:00:00Z","endedAt":"2024-06-14T09:00:30Z","customer":{"number":"+905551234567"}}`,
	`{"id":"c3","type":"outboundPhoneCall","status":"in-progress","createdAt":"2024-06-15T11:59:00Z"}`,
	`null`,
}

func TestDashboardService_Stats(t *testing.T) {
	_, service := setupTestDashboardService(t, dashboardRecords...)

	result, err := service.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, result.BasicStats.TotalCalls)
	assert.Equal(t, 1, result.BasicStats.SuccessfulCalls)
	assert.Equal(t, 1, result.BasicStats.FailedCalls)
	assert.Equal(t, 1, result.BasicStats.ActiveCalls)
	assert.Equal(t, 0.75, result.BasicStats.TotalCost)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 2, result.DetailedStats.TodayCalls)
	require.NotNil(t, result.DetailedStats.AverageCallDuration)
	assert.Equal(t, "02:00", *result.DetailedStats.AverageCallDuration)
}

func TestDashboardService_Overview(t *testing.T) {
	_, service := setupTestDashboardService(t, dashboardRecords...)

	overview, err := service.Overview(context.Background())
	require.NoError(t, err)
	require.Len(t, overview.ChartData.DailyData, 7)
	assert.Equal(t, "2024-06-15", overview.ChartData.DailyData[6].Date)
	require.Len(t, overview.RecentCalls, 3)
	assert.Equal(t, "c3", overview.RecentCalls[0].ID)
}

func TestDashboardService_ListCalls(t *testing.T) {
	t.Run("filters and pages", func(t *testing.T) {
		_, service := setupTestDashboardService(t, dashboardRecords...)

		calls, err := service.ListCalls(context.Background(), stats.CallFilter{Status: "ended", Page: 1, PageSize: 1})
		require.NoError(t, err)
		require.Len(t, calls, 1)
		assert.Equal(t, "c1", calls[0].ID)
	})

	tests := []struct {
		name   string
		filter stats.CallFilter
	}{
		{name: "zero page", filter: stats.CallFilter{Page: 0, PageSize: 20}},
		{name: "zero size", filter: stats.CallFilter{Page: 1, PageSize: 0}},
		{name: "size above maximum", filter: stats.CallFilter{Page: 1, PageSize: 101}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, service := setupTestDashboardService(t)
			_, err := service.ListCalls(context.Background(), tt.filter)
			assert.ErrorIs(t, err, ErrInvalidPagination)
		})
	}
}

func TestDashboardService_GetCall(t *testing.T) {
	_, service := setupTestDashboardService(t, dashboardRecords...)

	call, err := service.GetCall(context.Background(), "c2")
	require.NoError(t, err)
	assert.Equal(t, "inboundPhoneCall", call.Type)
	require.NotNil(t, call.CustomerPhone)
	assert.NotContains(t, *call.CustomerPhone, "1234567")

	_, err = service.GetCall(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCallNotFound)
}

func TestDashboardService_UpstreamError(t *testing.T) {
	gw, service := setupTestDashboardService(t)
	gw.On("ListCalls", mock.Anything).Return(nil, errors.New("401 Unauthorized"))

	ctx := context.Background()
	_, errOverview := service.Overview(ctx)
	_, errStats := service.Stats(ctx)
	_, errList := service.ListCalls(ctx, stats.CallFilter{Page: 1, PageSize: 20})
	_, errGet := service.GetCall(ctx, "c1")

	for _, err := range []error{errOverview, errStats, errList, errGet} {
		var upErr *UpstreamError
		require.True(t, errors.As(err, &upErr))
		assert.Equal(t, opFetchCalls, upErr.Op)
	}
}
