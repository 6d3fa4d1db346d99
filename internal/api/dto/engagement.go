package dto

// ViewResultDTO reports whether the view increased the counter.
type ViewResultDTO struct {
	Counted bool  `json:"counted"`
	Views   int64 `json:"views"`
}

// LikeStateDTO is the caller's current like state for a target.
type LikeStateDTO struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

// EngagementCountsDTO carries both counters for a target.
type EngagementCountsDTO struct {
	Likes int64 `json:"likes"`
	Views int64 `json:"views"`
}

// MetricPointDTO is one day of the trend series.
type MetricPointDTO struct {
	Date  string `json:"date"`
	Likes int64  `json:"likes"`
	Views int64  `json:"views"`
}
