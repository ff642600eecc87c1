package main

import (
	"Lucky99/internal/api/config"
	"Lucky99/internal/model"
	"Lucky99/internal/pkg/database"
	"Lucky99/internal/pkg/logger"
	"Lucky99/internal/pkg/util"
	"Lucky99/internal/repository"
	"context"
	"flag"
	log "log/slog"
	"math/rand"
	"time"
)

// 造数工具：为统计页生成带人为偏好的演示数据，或清掉这些测试行
type persona struct {
	name  string
	email string
	pick  func(r *rand.Rand) []int
}

var personas = []persona{
	// Alice 偏爱小数字
	{"Alice Demo", "alice@demo.com", func(r *rand.Rand) []int {
		nums := make([]int, 10)
		for i := range nums {
			nums[i] = 1 + r.Intn(30)
		}
		return nums
	}},
	// Bob 偏爱大数字
	{"Bob Test", "bob@demo.com", func(r *rand.Rand) []int {
		nums := make([]int, 10)
		for i := range nums {
			nums[i] = 50 + r.Intn(50)
		}
		return nums
	}},
	// Charlie 只选 5 的倍数
	{"Charlie Sample", "charlie@demo.com", func(r *rand.Rand) []int {
		nums := make([]int, 10)
		for i := range nums {
			nums[i] = 5 * (1 + r.Intn(19))
		}
		return nums
	}},
	{"Diana Example", "diana@demo.com", sampleDistinct},
	{"Eve Analytics", "eve@demo.com", sampleDistinct},
}

func sampleDistinct(r *rand.Rand) []int {
	perm := r.Perm(99)
	nums := make([]int, 10)
	for i := 0; i < 10; i++ {
		nums[i] = perm[i] + 1
	}
	return nums
}

func main() {
	cleanup := flag.Bool("cleanup", false, "删除测试数据而不是生成")
	minGames := flag.Int("min-games", 15, "每个测试用户的最少对局数")
	maxGames := flag.Int("max-games", 25, "每个测试用户的最多对局数")
	flag.Parse()

	if err := config.LoadConfig(); err != nil {
		log.Error("failed to load configuration", "err", err)
		panic(err)
	}
	logger.InitLogger()

	dbCfg := config.Cfg.DB
	db, err := database.NewGormDB(&dbCfg)
	if err != nil {
		log.Error("failed to create database connection", "err", err)
		panic(err)
	}

	runRepo := repository.NewGameRunRepo(db)
	lbRepo := repository.NewLeaderboardRepo(db)
	ctx := context.Background()

	if *cleanup {
		runCleanup(ctx, runRepo, lbRepo)
		return
	}

	gameType := config.Cfg.Game.Type
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	totalRuns := 0

	for _, p := range personas {
		games := *minGames
		if *maxGames > *minGames {
			games += r.Intn(*maxGames - *minGames + 1)
		}
		log.Info("seeding games", "user", p.name, "games", games)

		for i := 0; i < games; i++ {
			predictions := p.pick(r)
			draws := sampleDistinct(r)
			score := util.CountMatches(predictions, draws)
			createdAt := time.Now().
				Add(-time.Duration(r.Intn(30*24)) * time.Hour).
				Add(-time.Duration(r.Intn(60)) * time.Minute)

			run := &model.GameRun{
				UserName:      p.name,
				Email:         p.email,
				Predictions:   model.IntList(predictions),
				RandomNumbers: model.IntList(draws),
				Score:         score,
				GameType:      gameType,
				CreatedAt:     createdAt,
			}
			if err := runRepo.CreateRun(ctx, run); err != nil {
				log.Error("insert run failed", "user", p.name, "err", err)
				panic(err)
			}
			if _, _, err := lbRepo.UpsertBest(ctx, p.name, p.email, score, gameType); err != nil {
				log.Error("leaderboard upsert failed", "user", p.name, "err", err)
				panic(err)
			}
			totalRuns++
		}
	}

	log.Info("seed finished", "users", len(personas), "runs", totalRuns)
}

func runCleanup(ctx context.Context, runRepo repository.GameRunRepo, lbRepo repository.LeaderboardRepo) {
	emails := make([]string, 0, len(personas))
	for _, p := range personas {
		emails = append(emails, p.email)
	}

	if err := runRepo.DeleteByEmails(ctx, emails); err != nil {
		log.Error("delete test runs failed", "err", err)
		panic(err)
	}
	if err := lbRepo.DeleteByEmails(ctx, emails); err != nil {
		log.Error("delete test leaderboard rows failed", "err", err)
		panic(err)
	}
	log.Info("test data removed", "users", len(emails))
}
