package util

import "strings"

// Obvious automated clients. View rows from these are noise, not reach.
var botMarkers = []string{
	"bot",
	"crawl",
	"spider",
	"slurp",
	"curl/",
	"wget/",
	"python-requests",
	"headlesschrome",
	"facebookexternalhit",
}

// IsLikelyBot reports whether a User-Agent looks automated. A missing
// UA counts as automated; every mainstream browser sends one.
func IsLikelyBot(userAgent string) bool {
	if userAgent == "" {
		return true
	}
	ua := strings.ToLower(userAgent)
	for _, marker := range botMarkers {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}
