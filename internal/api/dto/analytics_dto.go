package dto

import "time"

// BiasMetricDTO 某类数字的占比与均匀分布期望的偏离（百分点，带符号）
type BiasMetricDTO struct {
	Name        string  `json:"name"`
	ObservedPct float64 `json:"observed_pct"`
	ExpectedPct float64 `json:"expected_pct"`
	Deviation   float64 `json:"deviation"`
}

// NumberCountDTO 数字出现次数
type NumberCountDTO struct {
	Number int `json:"number"`
	Count  int `json:"count"`
}

// GlobalAnalyticsDTO 全局统计视图
type GlobalAnalyticsDTO struct {
	TotalGames          int              `json:"total_games"`
	TotalPlayers        int              `json:"total_players"`
	AvgScore            float64          `json:"avg_score"`
	BestScore           int              `json:"best_score"`
	HitRatePct          float64          `json:"hit_rate_pct"`
	ScoreDistribution   map[int]int      `json:"score_distribution"`
	PredictionFrequency map[int]int      `json:"prediction_frequency"`
	RandomFrequency     map[int]int      `json:"random_frequency"`
	PredictionHeatmap   [][]int          `json:"prediction_heatmap"`
	RandomHeatmap       [][]int          `json:"random_heatmap"`
	PredictionBias      []*BiasMetricDTO `json:"prediction_bias"`
	RandomBias          []*BiasMetricDTO `json:"random_bias"`
	RandomnessScore     int              `json:"randomness_score"`
}

// UserRunDTO 单局历史记录
type UserRunDTO struct {
	Score         int       `json:"score"`
	Predictions   []int     `json:"predictions"`
	RandomNumbers []int     `json:"random_numbers"`
	CreatedAt     time.Time `json:"created_at"`
}

// UserAnalyticsDTO 个人统计视图
type UserAnalyticsDTO struct {
	TotalGames      int               `json:"total_games"`
	BestScore       int               `json:"best_score"`
	AvgScore        float64           `json:"avg_score"`
	LatestScore     int               `json:"latest_score"`
	FirstGameAt     *time.Time        `json:"first_game_at"`
	GamesLastWeek   int               `json:"games_last_week"`
	ScoreTrend      []int             `json:"score_trend"`
	FavoriteNumbers []*NumberCountDTO `json:"favorite_numbers"`
	RecentRuns      []*UserRunDTO     `json:"recent_runs"`
}
