package model

import "time"

// GameRun 一局完成的游戏记录，落库后不再修改
type GameRun struct {
	ID            uint64  `gorm:"primaryKey" json:"id"`
	UserName      string  `gorm:"type:varchar(50);not null" json:"user_name"`
	Email         string  `gorm:"type:varchar(100);not null;index:idx_email_type" json:"email"`
	Predictions   IntList `gorm:"type:json;not null" json:"predictions"`
	RandomNumbers IntList `gorm:"type:json;not null" json:"random_numbers"`
	Score         int     `gorm:"type:int;not null" json:"score"`
	GameType      string  `gorm:"type:varchar(64);not null;index:idx_email_type" json:"game_type"`
	CreatedAt     time.Time `json:"created_at"`
}

func (GameRun) TableName() string {
	return "game_runs"
}
