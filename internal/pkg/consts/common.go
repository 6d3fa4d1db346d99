package consts

// Engagement target kinds. Only these tables carry anonymous counters.
const (
	TargetArticle = "article"
	TargetFatwa   = "fatwa"
)

// Context keys set by middleware.
const (
	AnonHashKey = "anon_hash"
	UserIDKey   = "user_id"
	RoleKey     = "role"
)

const RoleAdmin = "ADMIN"
