package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMessagePage(t *testing.T) {
	tests := []struct {
		name         string
		pageNumber   int
		pageSize     int
		totalCount   int
		wantPages    int
		wantNext     bool
		wantPrevious bool
	}{
		{"empty", 1, 10, 0, 0, false, false},
		{"exact fit", 1, 10, 10, 1, false, false},
		{"one over", 1, 10, 11, 2, true, false},
		{"middle page", 2, 5, 12, 3, true, true},
		{"last page", 3, 5, 12, 3, false, true},
		{"beyond the end", 9, 5, 12, 3, false, true},
		{"overflowing page number", math.MaxInt64/2 + 2, 2, 3, 2, false, true},
		{"overflowing page size", 1, math.MaxInt, 3, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewMessagePage(nil, tt.pageNumber, tt.pageSize, tt.totalCount)

			assert.NotNil(t, page.Items)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.wantNext, page.HasNextPage)
			assert.Equal(t, tt.wantPrevious, page.HasPreviousPage)
			assert.Equal(t, tt.totalCount, page.TotalCount)
		})
	}
}

func TestBusinessTypeValid(t *testing.T) {
	for _, b := range BusinessTypes {
		assert.True(t, b.Valid(), string(b))
	}
	assert.False(t, BusinessType("berber").Valid())
	assert.False(t, BusinessType("").Valid())
}

func TestVoiceToResponse(t *testing.T) {
	stability := "0.5"
	broken := "not-a-number"
	v := &Voice{ID: 1, AssistantID: 2, Stability: &stability, SimilarityBoost: &broken}

	resp := v.ToResponse()

	if assert.NotNil(t, resp.Stability) {
		assert.InDelta(t, 0.5, *resp.Stability, 1e-9)
	}
	assert.Nil(t, resp.SimilarityBoost)
	assert.Equal(t, int64(2), resp.AssistantID)

	var missing *Voice
	assert.Nil(t, missing.ToResponse())
}

func TestPhoneNumberUpdateRequestEmpty(t *testing.T) {
	assert.True(t, PhoneNumberUpdateRequest{}.Empty())
	provider := "twilio"
	assert.False(t, PhoneNumberUpdateRequest{Provider: &provider}.Empty())
}
