package dto

// LeaderboardRowDTO 排行榜对外只暴露名字和最好成绩
type LeaderboardRowDTO struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	BestScore int    `json:"best_score"`
}
