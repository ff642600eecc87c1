package job

import (
	"Lucky99/internal/model"
	"Lucky99/internal/pkg/consts"
	"Lucky99/internal/pkg/logger"
	"Lucky99/internal/pkg/redis"
	"Lucky99/internal/pkg/util"
	"Lucky99/internal/repository"
	"context"
	log "log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
)

// LeaderboardDedupeJob 合并大小写邮箱产生的重复排行榜行并归一化历史记录邮箱。
// 正常写路径已经归一化，这里兜底清理早期遗留的脏数据
type LeaderboardDedupeJob struct {
	lbRepo  repository.LeaderboardRepo
	runRepo repository.GameRunRepo
}

func NewLeaderboardDedupeJob(lbRepo repository.LeaderboardRepo, runRepo repository.GameRunRepo) *LeaderboardDedupeJob {
	return &LeaderboardDedupeJob{
		lbRepo:  lbRepo,
		runRepo: runRepo,
	}
}

func (s *LeaderboardDedupeJob) Run() {
	traceID := "job-dedupe-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lockValue := uuid.NewString()
	lock, err := redis.TryLock(ctx, consts.LeaderboardDedupeLock, lockValue, time.Minute*5, 1)
	if err != nil {
		log.ErrorContext(ctx, "dedupe lock error", "err", err)
		return
	}
	if !lock {
		return
	}
	defer redis.UnLock(ctx, consts.LeaderboardDedupeLock, lockValue)

	entries, err := s.lbRepo.ListAll(ctx)
	if err != nil {
		log.ErrorContext(ctx, "list leaderboard error", "err", err)
		return
	}

	updates, deletes := planMerges(entries)
	for _, entry := range updates {
		if err := s.lbRepo.UpdateEntry(ctx, entry); err != nil {
			log.ErrorContext(ctx, "update merged entry error", "id", entry.ID, "err", err)
			return
		}
	}
	for _, id := range deletes {
		if err := s.lbRepo.DeleteEntry(ctx, id); err != nil {
			log.ErrorContext(ctx, "delete duplicate entry error", "id", id, "err", err)
			return
		}
	}

	normalized, err := s.runRepo.NormalizeEmails(ctx)
	if err != nil {
		log.ErrorContext(ctx, "normalize run emails error", "err", err)
		return
	}

	log.InfoContext(ctx, "LeaderboardDedupeJob finished",
		"merged", len(updates), "deleted", len(deletes), "runs_normalized", normalized)
}

// planMerges 按 (归一化邮箱, 玩法) 分组：保留成绩最高的行，
// 累加所有重复行的对局数，其余行删除；单行组只修正未归一化的邮箱
func planMerges(entries []*model.LeaderboardEntry) (updates []*model.LeaderboardEntry, deletes []uint64) {
	groups := make(map[string][]*model.LeaderboardEntry)
	keys := make([]string, 0)
	for _, entry := range entries {
		key := util.NormalizeEmail(entry.Email) + "|" + entry.GameType
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], entry)
	}

	for _, key := range keys {
		group := groups[key]
		normalized := util.NormalizeEmail(group[0].Email)

		if len(group) == 1 {
			entry := group[0]
			if entry.Email != normalized {
				entry.Email = normalized
				updates = append(updates, entry)
			}
			continue
		}

		sort.SliceStable(group, func(i, j int) bool {
			if group[i].BestScore != group[j].BestScore {
				return group[i].BestScore > group[j].BestScore
			}
			return group[i].TotalGamesPlayed > group[j].TotalGamesPlayed
		})

		best := group[0]
		totalGames := 0
		for _, entry := range group {
			totalGames += entry.TotalGamesPlayed
		}
		best.Email = normalized
		best.TotalGamesPlayed = totalGames
		updates = append(updates, best)

		for _, entry := range group[1:] {
			deletes = append(deletes, entry.ID)
		}
	}

	return updates, deletes
}
