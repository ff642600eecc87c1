package wire

import (
	"Lucky99/internal/api"
	"Lucky99/internal/api/config"
	"Lucky99/internal/api/handler"
	"Lucky99/internal/job"
	"Lucky99/internal/pkg/cron"
	"Lucky99/internal/pkg/randomorg"
	"Lucky99/internal/pkg/session"
	"Lucky99/internal/repository"
	"Lucky99/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	runRepo := repository.NewGameRunRepo(db)
	lbRepo := repository.NewLeaderboardRepo(db)

	sessionStore := session.NewRedisStore()
	drawer := randomorg.NewClient(cfg.RandomOrg)

	gameService := service.NewGameService(sessionStore, drawer, runRepo, lbRepo, cfg.Game)
	leaderboardService := service.NewLeaderboardService(lbRepo, cfg.Game)
	analyticsService := service.NewAnalyticsService(runRepo, cfg.Game)

	handlers := &api.HandlersGroup{
		GameHandler:        handler.NewGameHandler(gameService),
		LeaderboardHandler: handler.NewLeaderboardHandler(leaderboardService),
		AnalyticsHandler:   handler.NewAnalyticsHandler(analyticsService),
	}

	router := api.SetupRouter(handlers)

	dedupeJob := job.NewLeaderboardDedupeJob(lbRepo, runRepo)
	cronMgr := cron.NewCronManager(dedupeJob, cfg.Cron)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
