package timetoken

import (
	"fmt"
	"math"
)

// Seconds returns the canonical time in seconds with hundredths precision.
func Seconds(minutes, seconds, hundredths int) float64 {
	total := minutes*6000 + seconds*100 + hundredths
	return float64(total) / 100
}

// Hundredths converts a canonical time back to whole hundredths.
func Hundredths(t float64) int {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return 0
	}
	return int(math.Round(t * 100))
}

// Display renders t with one fractional digit, omitting zero minutes.
func Display(t float64) string {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return "0.0"
	}
	tenths := (Hundredths(t) + 5) / 10
	minutes := tenths / 600
	rest := tenths % 600
	if minutes > 0 {
		return fmt.Sprintf("%d:%02d.%d", minutes, rest/10, rest%10)
	}
	return fmt.Sprintf("%d.%d", rest/10, rest%10)
}

// Precise renders t with both fractional digits; the output tokenizes back
// to the same hundredths.
func Precise(t float64) string {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return "0.00"
	}
	h := Hundredths(t)
	minutes := h / 6000
	rest := h % 6000
	if minutes > 0 {
		return fmt.Sprintf("%d:%02d.%02d", minutes, rest/100, rest%100)
	}
	return fmt.Sprintf("%d.%02d", rest/100, rest%100)
}
