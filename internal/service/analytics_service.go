package service

import (
	"Lucky99/internal/api/config"
	"Lucky99/internal/api/dto"
	"Lucky99/internal/pkg/consts"
	"Lucky99/internal/pkg/redis"
	"Lucky99/internal/pkg/util"
	"Lucky99/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

// 统计视图都从对局日志现算，结果缓存 5 分钟以限制重复查询的数据库压力
const analyticsCacheTTL = 5 * time.Minute

type AnalyticsService interface {
	Global(ctx context.Context) (*dto.GlobalAnalyticsDTO, error)
	User(ctx context.Context, email string) (*dto.UserAnalyticsDTO, error)
}

type analyticsServiceImpl struct {
	runRepo repository.GameRunRepo
	game    config.GameConfig
}

func NewAnalyticsService(runRepo repository.GameRunRepo, game config.GameConfig) AnalyticsService {
	return &analyticsServiceImpl{
		runRepo: runRepo,
		game:    game,
	}
}

func (s *analyticsServiceImpl) Global(ctx context.Context) (*dto.GlobalAnalyticsDTO, error) {
	key := consts.GlobalAnalyticsKey + s.game.Type

	cached := &dto.GlobalAnalyticsDTO{}
	if ok := getCached(ctx, key, cached); ok {
		return cached, nil
	}

	runs, err := s.runRepo.ListByGameType(ctx, s.game.Type)
	if err != nil {
		return nil, err
	}

	result := buildGlobalAnalytics(runs)
	putCached(ctx, key, result)
	return result, nil
}

func (s *analyticsServiceImpl) User(ctx context.Context, email string) (*dto.UserAnalyticsDTO, error) {
	normalizedEmail := util.NormalizeEmail(email)
	key := consts.UserAnalyticsKey + s.game.Type + ":" + normalizedEmail

	cached := &dto.UserAnalyticsDTO{}
	if ok := getCached(ctx, key, cached); ok {
		return cached, nil
	}

	runs, err := s.runRepo.ListByEmail(ctx, normalizedEmail, s.game.Type)
	if err != nil {
		return nil, err
	}

	result := buildUserAnalytics(runs, time.Now())
	putCached(ctx, key, result)
	return result, nil
}

func getCached(ctx context.Context, key string, out interface{}) bool {
	value, err := redis.GetValue(ctx, key)
	if err != nil || value == "" {
		return false
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		log.WarnContext(ctx, "broken analytics cache entry, recomputing", "key", key, "err", err)
		return false
	}
	return true
}

func putCached(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	// 缓存写失败只影响下次查询的耗时，不影响本次结果
	if err := redis.SetWithExpiration(ctx, key, string(data), analyticsCacheTTL); err != nil {
		log.WarnContext(ctx, "failed to cache analytics result", "key", key, "err", err)
	}
}
