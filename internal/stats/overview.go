package stats

import (
	"encoding/json"
	"sort"
	"time"
)

const (
	chartDays        = 7
	recentCallsLimit = 5
	dateLayout       = "2006-01-02"
)

// OverviewStats is the flat counter block of the dashboard overview
type OverviewStats struct {
	TotalCalls      int     `json:"total_calls"`
	SuccessfulCalls int     `json:"successful_calls"`
	FailedCalls     int     `json:"failed_calls"`
	ActiveCalls     int     `json:"active_calls"`
	TotalCost       float64 `json:"total_cost"`
	TodayCalls      int     `json:"today_calls"`
	WeekCalls       int     `json:"week_calls"`
	MonthCalls      int     `json:"month_calls"`
	SuccessRate     float64 `json:"success_rate"`
	AverageDuration *string `json:"average_duration"`
	InboundCalls    int     `json:"inbound_calls"`
	OutboundCalls   int     `json:"outbound_calls"`
	WebCalls        int     `json:"web_calls"`
}

// DailyCallData is one day of the chart series
type DailyCallData struct {
	Date       string `json:"date"`
	Total      int    `json:"total"`
	Successful int    `json:"successful"`
	Failed     int    `json:"failed"`
}

// WeeklyChartData holds the last seven days in ascending order
type WeeklyChartData struct {
	DailyData []DailyCallData `json:"daily_data"`
}

// RecentCall is a row of the recent calls widget
type RecentCall struct {
	ID                string     `json:"id"`
	Type              string     `json:"type"`
	CustomerPhone     *string    `json:"customer_phone"`
	DurationFormatted *string    `json:"duration_formatted"`
	Summary           *string    `json:"summary"`
	CreatedAt         *time.Time `json:"created_at"`
	Sentiment         *string    `json:"sentiment"`
}

// OverviewResponse is the dashboard overview payload
type OverviewResponse struct {
	Stats       OverviewStats   `json:"stats"`
	ChartData   WeeklyChartData `json:"chart_data"`
	RecentCalls []RecentCall    `json:"recent_calls"`
	Skipped     int             `json:"-"`
}

// Overview computes counters, the daily series and the most recent calls in one pass
func Overview(raw []json.RawMessage, now time.Time) OverviewResponse {
	midnight := midnightUTC(now)

	days := make([]DailyCallData, chartDays)
	index := make(map[string]int, chartDays)
	for i := range days {
		date := midnight.AddDate(0, 0, i-(chartDays-1)).Format(dateLayout)
		days[i] = DailyCallData{Date: date}
		index[date] = i
	}

	var dated []*Record
	t := collect(raw, now, func(r *Record) {
		if r.Created == nil {
			return
		}
		dated = append(dated, r)
		i, ok := index[r.Created.Format(dateLayout)]
		if !ok {
			return
		}
		days[i].Total++
		if r.Successful() {
			days[i].Successful++
		} else if r.Failed() {
			days[i].Failed++
		}
	})

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].Created.After(*dated[j].Created)
	})
	if len(dated) > recentCallsLimit {
		dated = dated[:recentCallsLimit]
	}

	recent := make([]RecentCall, 0, len(dated))
	for _, r := range dated {
		call := RecentCall{
			ID:            r.ID,
			Type:          r.Type,
			CustomerPhone: r.CustomerPhone(),
			Summary:       r.Summary,
			CreatedAt:     r.Created,
			Sentiment:     r.Sentiment(),
		}
		if d, ok := r.DurationSeconds(); ok {
			call.DurationFormatted = FormatDuration(d)
		}
		recent = append(recent, call)
	}

	return OverviewResponse{
		Stats: OverviewStats{
			TotalCalls:      t.total,
			SuccessfulCalls: t.successful,
			FailedCalls:     t.failed,
			ActiveCalls:     t.active,
			TotalCost:       round2(t.cost),
			TodayCalls:      t.today,
			WeekCalls:       t.week,
			MonthCalls:      t.month,
			SuccessRate:     t.successRate(),
			AverageDuration: t.averageDuration(),
			InboundCalls:    t.inbound,
			OutboundCalls:   t.outbound,
			WebCalls:        t.web,
		},
		ChartData:   WeeklyChartData{DailyData: days},
		RecentCalls: recent,
		Skipped:     t.skipped,
	}
}
