package api

import (
	"Lucky99/internal/api/middleware"
	"Lucky99/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		gameGroup := apiGroup.Group("/game")
		{
			gameGroup.POST("/session", group.GameHandler.StartSession)
			gameGroup.GET("/session/:session_id", group.GameHandler.GetSession)
			gameGroup.POST("/session/:session_id/draw", group.GameHandler.Draw)
			gameGroup.POST("/session/:session_id/identity", group.GameHandler.SubmitIdentity)
			gameGroup.POST("/session/:session_id/replay", group.GameHandler.Replay)
		}

		apiGroup.GET("/leaderboard", group.LeaderboardHandler.Top)

		analyticsGroup := apiGroup.Group("/analytics")
		{
			analyticsGroup.GET("/global", group.AnalyticsHandler.Global)
			analyticsGroup.GET("/user", group.AnalyticsHandler.User)
		}
	}

	return r
}
