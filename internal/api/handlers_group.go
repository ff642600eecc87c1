package api

import "Lucky99/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	GameHandler        *handler.GameHandler
	LeaderboardHandler *handler.LeaderboardHandler
	AnalyticsHandler   *handler.AnalyticsHandler
}
