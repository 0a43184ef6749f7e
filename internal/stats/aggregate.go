package stats

import (
	"encoding/json"
	"time"
)

const (
	weekWindow  = 7 * 24 * time.Hour
	monthWindow = 30 * 24 * time.Hour
)

// BasicStats are the headline counters
type BasicStats struct {
	TotalCalls      int     `json:"total_calls"`
	SuccessfulCalls int     `json:"successful_calls"`
	FailedCalls     int     `json:"failed_calls"`
	ActiveCalls     int     `json:"active_calls"`
	TotalCost       float64 `json:"total_cost"`
}

// DetailedStats are windowed counts, average duration and success rate
type DetailedStats struct {
	AverageCallDuration *string `json:"average_call_duration"`
	TodayCalls          int     `json:"today_calls"`
	WeekCalls           int     `json:"week_calls"`
	MonthCalls          int     `json:"month_calls"`
	SuccessRate         float64 `json:"success_rate"`
}

// CallTypeStats counts calls per channel
type CallTypeStats struct {
	WebCall       int `json:"web_call"`
	OutboundPhone int `json:"outbound_phone"`
	InboundPhone  int `json:"inbound_phone"`
}

// DashboardStats is the response of the stats dashboard
type DashboardStats struct {
	BasicStats    BasicStats    `json:"basic_stats"`
	DetailedStats DetailedStats `json:"detailed_stats"`
	CallTypeStats CallTypeStats `json:"call_type_stats"`
	Skipped       int           `json:"-"`
}

// tally accumulates the counters shared by Aggregate and Overview
type tally struct {
	total, successful, failed, active int
	today, week, month                int
	inbound, outbound, web            int
	cost                              float64
	durationSum, durationCount        int
	skipped                           int
}

func midnightUTC(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (t *tally) add(r *Record, midnight time.Time) {
	switch {
	case r.Successful():
		t.successful++
		if d, ok := r.DurationSeconds(); ok {
			t.durationSum += d
			t.durationCount++
		}
	case r.Failed():
		t.failed++
	}
	if r.Active() {
		t.active++
	}

	if cost, ok := r.NumericCost(); ok {
		t.cost += cost
	}

	if r.Created != nil {
		if !r.Created.Before(midnight) {
			t.today++
		}
		if !r.Created.Before(midnight.Add(-weekWindow)) {
			t.week++
		}
		if !r.Created.Before(midnight.Add(-monthWindow)) {
			t.month++
		}
	}

	switch r.Type {
	case CallTypeInbound:
		t.inbound++
	case CallTypeOutbound:
		t.outbound++
	case CallTypeWeb:
		t.web++
	}
}

func (t *tally) averageDuration() *string {
	if t.durationCount == 0 {
		return nil
	}
	return FormatDuration(t.durationSum / t.durationCount)
}

func (t *tally) successRate() float64 {
	if t.total == 0 {
		return 0
	}
	return round2(float64(t.successful) / float64(t.total) * 100)
}

func collect(raw []json.RawMessage, now time.Time, each func(*Record)) *tally {
	t := &tally{total: len(raw)}
	midnight := midnightUTC(now)
	for res := range ParseCalls(raw) {
		if res.Err != nil {
			t.skipped++
			continue
		}
		t.add(res.Record, midnight)
		if each != nil {
			each(res.Record)
		}
	}
	return t
}

// Aggregate computes the dashboard counters. Malformed records count toward the total
// and are reported in Skipped.
func Aggregate(raw []json.RawMessage, now time.Time) DashboardStats {
	t := collect(raw, now, nil)

	return DashboardStats{
		BasicStats: BasicStats{
			TotalCalls:      t.total,
			SuccessfulCalls: t.successful,
			FailedCalls:     t.failed,
			ActiveCalls:     t.active,
			TotalCost:       round2(t.cost),
		},
		DetailedStats: DetailedStats{
			AverageCallDuration: t.averageDuration(),
			TodayCalls:          t.today,
			WeekCalls:           t.week,
			MonthCalls:          t.month,
			SuccessRate:         t.successRate(),
		},
		CallTypeStats: CallTypeStats{
			WebCall:       t.web,
			OutboundPhone: t.outbound,
			InboundPhone:  t.inbound,
		},
		Skipped: t.skipped,
	}
}
