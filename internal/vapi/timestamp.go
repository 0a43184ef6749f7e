package vapi

import (
	"strings"
	"time"
)

// Layouts tried in order. Fractional seconds after the seconds field are accepted by
// time.Parse even though no layout spells them out.
var timestampLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04",
}

// ParseTimestamp parses an ISO-8601 timestamp from the platform and normalizes it to UTC.
// Values without an offset are taken as UTC. Returns nil for nil, empty or unparsable input.
func ParseTimestamp(s *string) *time.Time {
	if s == nil {
		return nil
	}
	value := strings.TrimSpace(*s)
	if value == "" {
		return nil
	}
	// A space separator is accepted as well as T
	if len(value) > 10 && value[10] == ' ' {
		value = value[:10] + "T" + value[11:]
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}
