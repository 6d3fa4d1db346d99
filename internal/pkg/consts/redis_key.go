package consts

const (
	EngagementDirtyKey = "engagement:dirty"
	LikeCountKey       = "engagement:likes:"
	ViewCountKey       = "engagement:views:"
	Metrics7DaysKey    = "engagement:metrics:7days:"
	Metrics30DaysKey   = "engagement:metrics:30days:"
	StatsTotalsKey     = "stats:totals"
	StatsLatestKey     = "stats:latest"
	ActivityRecentKey  = "activity:recent:"
)
