package cron

import (
	"Lucky99/internal/api/config"
	"Lucky99/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine     *cron.Cron
	dedupeSpec string
	dedupeJob  *job.LeaderboardDedupeJob
}

func NewCronManager(dedupeJob *job.LeaderboardDedupeJob, cfg config.CronConfig) *Manager {
	spec := cfg.DedupeSpec
	if spec == "" {
		spec = "@daily"
	}
	return &Manager{
		engine:     cron.New(cron.WithSeconds()),
		dedupeSpec: spec,
		dedupeJob:  dedupeJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.dedupeSpec, s.dedupeJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
