package stats

import (
	"encoding/json"
	"sort"
	"time"
)

// Paging limits for call listings
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// CallFilter selects and pages call listings. Empty Type or Status match everything.
type CallFilter struct {
	Type     string
	Status   string
	Page     int
	PageSize int
}

// CallSummary is a row of the call listing
type CallSummary struct {
	ID                string     `json:"id"`
	Type              string     `json:"type"`
	Status            string     `json:"status"`
	DurationSeconds   *int       `json:"duration_seconds"`
	DurationFormatted *string    `json:"duration_formatted"`
	Cost              *float64   `json:"cost"`
	CreatedAt         *time.Time `json:"created_at"`
	EndedAt           *time.Time `json:"ended_at"`
	CustomerPhone     *string    `json:"customer_phone"`
	Summary           *string    `json:"summary"`
	EndedReason       *string    `json:"ended_reason"`
}

// CallDetail adds the conversation to a summary
type CallDetail struct {
	CallSummary
	Transcript *string          `json:"transcript"`
	Messages   []map[string]any `json:"messages"`
	Analysis   map[string]any   `json:"analysis"`
}

func summarize(r *Record) CallSummary {
	s := CallSummary{
		ID:            r.ID,
		Type:          r.Type,
		Status:        r.Status,
		CreatedAt:     r.Created,
		CustomerPhone: r.CustomerPhone(),
		Summary:       r.Summary,
		EndedReason:   r.EndedReason,
	}
	if cost, ok := r.NumericCost(); ok {
		s.Cost = &cost
	}

	if r.Status == statusEnded {
		s.EndedAt = r.Ended
		if r.Created != nil && r.Ended != nil {
			d := max(0, int(r.Ended.Sub(*r.Created).Seconds()))
			s.DurationSeconds = &d
			s.DurationFormatted = FormatDuration(d)
		}
	}
	return s
}

// ListCalls filters the records, sorts them by their createdAt text newest first and
// returns the requested page. Malformed records are left out.
func ListCalls(raw []json.RawMessage, filter CallFilter) []CallSummary {
	var records []*Record
	for res := range ParseCalls(raw) {
		if res.Err != nil {
			continue
		}
		r := res.Record
		if filter.Type != "" && r.Type != filter.Type {
			continue
		}
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		records = append(records, r)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return createdText(records[i]) > createdText(records[j])
	})

	page := max(filter.Page, 1)
	size := filter.PageSize
	if size < 1 {
		size = DefaultPageSize
	}
	size = min(size, MaxPageSize)

	out := make([]CallSummary, 0, size)
	// compare page numbers first so the offset cannot overflow
	if len(records) == 0 || page-1 > (len(records)-1)/size {
		return out
	}
	start := (page - 1) * size
	end := min(start+size, len(records))
	for _, r := range records[start:end] {
		out = append(out, summarize(r))
	}
	return out
}

// FindCall returns the detail of the call with the given id
func FindCall(raw []json.RawMessage, id string) (*CallDetail, bool) {
	for res := range ParseCalls(raw) {
		if res.Err != nil || res.Record.ID != id {
			continue
		}
		r := res.Record
		return &CallDetail{
			CallSummary: summarize(r),
			Transcript:  r.Transcript,
			Messages:    r.Messages,
			Analysis:    r.Analysis,
		}, true
	}
	return nil, false
}

func createdText(r *Record) string {
	if r.CreatedAt == nil {
		return ""
	}
	return *r.CreatedAt
}
