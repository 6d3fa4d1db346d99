package util

import "time"

// UTCDay formats a moment as its UTC calendar day.
func UTCDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ClampLimit bounds a list limit into [1, max], with def on zero.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
