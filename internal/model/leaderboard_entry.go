package model

// LeaderboardEntry 每个 (邮箱, 玩法) 的最好成绩聚合行
// 邮箱写入前必须先归一化，(email, game_type) 全表唯一
type LeaderboardEntry struct {
	ID               uint64 `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"type:varchar(50);not null" json:"name"`
	Email            string `gorm:"type:varchar(100);not null;uniqueIndex:uk_email_type" json:"email"`
	BestScore        int    `gorm:"type:int;not null;default:0" json:"best_score"`
	TotalGamesPlayed int    `gorm:"type:int;not null;default:0" json:"total_games_played"`
	GameType         string `gorm:"type:varchar(64);not null;uniqueIndex:uk_email_type" json:"game_type"`
}

func (LeaderboardEntry) TableName() string {
	return "leaderboard"
}
