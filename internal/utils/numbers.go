package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseDecimal converts free-form user input to a number. The calculation
// pipeline is total: empty, partial, or otherwise unparseable text becomes 0
// instead of an error, and NaN or infinite values never escape this function.
func ParseDecimal(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	// Mid-edit input like "5," should behave the same as "5.".
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
