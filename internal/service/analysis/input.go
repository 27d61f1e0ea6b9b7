package analysis

import (
	"strconv"
	"strings"
)

// Input holds the raw query parameters for an analysis request.
type Input struct {
	// Period is the raw window parameter, e.g. "7d". Empty or malformed
	// values fall back to the configured default.
	Period string

	// Source filters by channel. Empty means "all".
	Source string
}

// parsePeriod converts a period string like "7d" into a day count.
// Malformed input yields the default; negative values clamp to zero.
func parsePeriod(period string, defaultDays int) int {
	period = strings.TrimSuffix(strings.TrimSpace(strings.ToLower(period)), "d")
	if period == "" {
		return defaultDays
	}

	days, err := strconv.Atoi(period)
	if err != nil {
		return defaultDays
	}
	if days < 0 {
		return 0
	}
	return days
}
