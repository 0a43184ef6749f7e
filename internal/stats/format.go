package stats

import (
	"fmt"
	"math"
	"strings"
)

// MaskPhoneNumber hides everything but the country/area prefix and the last two digits.
// Returns nil for empty input.
func MaskPhoneNumber(phone string) *string {
	if phone == "" {
		return nil
	}

	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	var masked string
	switch {
	case len(digits) < 4:
		masked = "***"
	case len(digits) >= 10:
		prefix := digits[:3]
		if strings.HasPrefix(digits, "90") {
			prefix = digits[:4]
		}
		masked = fmt.Sprintf("+%s %c** *** **%s", prefix[0:2], prefix[2], digits[len(digits)-2:])
	default:
		masked = "***" + digits[len(digits)-2:]
	}
	return &masked
}

// FormatDuration renders seconds as MM:SS. Returns nil for negative input.
func FormatDuration(seconds int) *string {
	if seconds < 0 {
		return nil
	}
	s := fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
	return &s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
