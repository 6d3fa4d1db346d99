package dto

// StatsTotalsDTO counts active rows per content table.
type StatsTotalsDTO struct {
	Articles  int64 `json:"articles"`
	Fatwas    int64 `json:"fatwas"`
	Books     int64 `json:"books"`
	Writers   int64 `json:"writers"`
	Scholars  int64 `json:"scholars"`
	Questions int64 `json:"questions"`
}

// LatestItemDTO is the newest row of one content table.
type LatestItemDTO struct {
	Kind      string `json:"kind"`
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}

// ActivityItemDTO is one row of the recent-activity feed.
type ActivityItemDTO struct {
	Kind      string `json:"kind"`
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at"`
}
