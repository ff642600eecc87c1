package consts

const (
	GameSessionKey     = "game:session:"
	GlobalAnalyticsKey = "analytics:global:"
	UserAnalyticsKey   = "analytics:user:"
)

const (
	LeaderboardDedupeLock = "lock:leaderboard:dedupe"
)
