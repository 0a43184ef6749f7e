package services

import (
	"context"
	"time"

	"ahudio-admin-server/internal/stats"
	"ahudio-admin-server/pkg/logger"

	"go.uber.org/zap"
)

// DashboardService fetches the remote call list on every request and aggregates it
type DashboardService struct {
	gateway CallGateway
	now     func() time.Time
}

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(gateway CallGateway) *DashboardService {
	return &DashboardService{
		gateway: gateway,
		now:     time.Now,
	}
}

// Overview returns counters, the seven-day series and the latest calls
func (s *DashboardService) Overview(ctx context.Context) (*stats.OverviewResponse, error) {
	raw, err := s.gateway.ListCalls(ctx)
	if err != nil {
		return nil, upstream(opFetchCalls, err)
	}

	overview := stats.Overview(raw, s.now())
	logSkipped(overview.Skipped, len(raw))
	return &overview, nil
}

// Stats returns the stats dashboard counters
func (s *DashboardService) Stats(ctx context.Context) (*stats.DashboardStats, error) {
	raw, err := s.gateway.ListCalls(ctx)
	if err != nil {
		return nil, upstream(opFetchCalls, err)
	}

	result := stats.Aggregate(raw, s.now())
	logSkipped(result.Skipped, len(raw))
	return &result, nil
}

// ListCalls returns one filtered page of calls, newest first
func (s *DashboardService) ListCalls(ctx context.Context, filter stats.CallFilter) ([]stats.CallSummary, error) {
	if filter.Page < 1 || filter.PageSize < 1 || filter.PageSize > stats.MaxPageSize {
		return nil, ErrInvalidPagination
	}

	raw, err := s.gateway.ListCalls(ctx)
	if err != nil {
		return nil, upstream(opFetchCalls, err)
	}
	return stats.ListCalls(raw, filter), nil
}

// GetCall returns the detail of one call
func (s *DashboardService) GetCall(ctx context.Context, id string) (*stats.CallDetail, error) {
	raw, err := s.gateway.ListCalls(ctx)
	if err != nil {
		return nil, upstream(opFetchCalls, err)
	}

	call, ok := stats.FindCall(raw, id)
	if !ok {
		return nil, ErrCallNotFound
	}
	return call, nil
}

func logSkipped(skipped, total int) {
	if skipped > 0 {
		logger.Warn("Skipped malformed call records", zap.Int("skipped", skipped), zap.Int("total", total))
	}
}
