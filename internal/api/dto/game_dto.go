package dto

import "time"

// DrawDTO 提交 10 个预测数字并触发开奖
type DrawDTO struct {
	Predictions []int `json:"predictions" binding:"required"`
}

// IdentityDTO 结果确认前的身份信息
type IdentityDTO struct {
	Name  string `json:"name" binding:"required,max=50"`
	Email string `json:"email" binding:"required,email,max=100"`
}

// GameSessionDTO 会话当前状态
type GameSessionDTO struct {
	SessionID     string    `json:"session_id"`
	Phase         string    `json:"phase"`
	Predictions   []int     `json:"predictions"`
	RandomNumbers []int     `json:"random_numbers"`
	Matched       []int     `json:"matched"`
	Score         int       `json:"score"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// GameResultDTO 身份提交后的最终结果
type GameResultDTO struct {
	Score         int    `json:"score"`
	Predictions   []int  `json:"predictions"`
	RandomNumbers []int  `json:"random_numbers"`
	Matched       []int  `json:"matched"`
	IsNewBest     bool   `json:"is_new_best"`
	Message       string `json:"message"`
}
