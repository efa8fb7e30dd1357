package util

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrNotFinite = errors.New("value is not finite")

// ParseAmount parses a number written with comma thousands separators,
// e.g. "26,854,599" or "1,234.5".
func ParseAmount(raw string) (float64, error) {
	compact := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	parsed, err := strconv.ParseFloat(compact, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, ErrNotFinite
	}
	return parsed, nil
}

// RoundHalfEven rounds v to the given number of decimal places, sending
// exact halves to the even neighbour. The scaled value is rounded as a
// float64, so 1.005 (stored just below the half) rounds to 1.0.
func RoundHalfEven(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.RoundToEven(v*scale) / scale
}

// FormatFloat writes v as its shortest round-trip form, always with a
// decimal point: 2 becomes "2.0", 26854.6 stays "26854.6".
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
