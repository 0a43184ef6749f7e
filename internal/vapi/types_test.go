package vapi

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name  string
		input *string
		want  *time.Time
	}{
		{name: "nil", input: nil, want: nil},
		{name: "empty", input: str(""), want: nil},
		{name: "garbage", input: str("not-a-date"), want: nil},
		{name: "date only", input: str("2024-01-15"), want: nil},
		{
			name:  "zulu with millis",
			input: str("2024-01-15T10:00:00.000Z"),
			want:  ptrTime(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)),
		},
		{
			name:  "numeric offset normalized to UTC",
			input: str("2024-01-15T13:00:00+03:00"),
			want:  ptrTime(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)),
		},
		{
			name:  "compact offset",
			input: str("2024-01-15T13:00:00+0300"),
			want:  ptrTime(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)),
		},
		{
			name:  "minute precision",
			input: str("2024-01-15T10:05Z"),
			want:  ptrTime(time.Date(2024, 1, 15, 10, 5, 0, 0, time.UTC)),
		},
		{
			name:  "no offset is taken as UTC",
			input: str("2024-01-15T10:00:00.250"),
			want:  ptrTime(time.Date(2024, 1, 15, 10, 0, 0, 250_000_000, time.UTC)),
		},
		{
			name:  "space separator",
			input: str("2024-01-15 10:00:00Z"),
			want:  ptrTime(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTimestamp(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestVoice_Empty(t *testing.T) {
	blank := ""
	id := "v1"
	stability := 0.4

	assert.True(t, (*Voice)(nil).Empty())
	assert.True(t, (&Voice{}).Empty())
	assert.True(t, (&Voice{VoiceID: &blank}).Empty())
	assert.False(t, (&Voice{VoiceID: &id}).Empty())
	assert.False(t, (&Voice{Stability: &stability}).Empty())
}

func TestCall_NumericCost(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		wantOK bool
	}{
		{raw: `{"id":"c","cost":1.5}`, want: 1.5, wantOK: true},
		{raw: `{"id":"c","cost":0}`, want: 0, wantOK: true},
		{raw: `{"id":"c","cost":"1.5"}`, wantOK: false},
		{raw: `{"id":"c","cost":null}`, wantOK: false},
		{raw: `{"id":"c"}`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var call Call
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &call))
			got, ok := call.NumericCost()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFields(t *testing.T) {
	m := map[string]any{"model": "gpt-4o", "temperature": 0.7, "maxTokens": json.Number("250"), "bad": true}

	assert.Equal(t, "gpt-4o", *StringField(m, "model"))
	assert.Nil(t, StringField(m, "temperature"))
	assert.Equal(t, 0.7, *FloatField(m, "temperature"))
	assert.Equal(t, 250.0, *FloatField(m, "maxTokens"))
	assert.Nil(t, FloatField(m, "bad"))
	assert.Nil(t, FloatField(nil, "temperature"))
}
