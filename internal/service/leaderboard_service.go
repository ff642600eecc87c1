package service

import (
	"Lucky99/internal/api/config"
	"Lucky99/internal/api/dto"
	"Lucky99/internal/repository"
	"context"
)

const defaultTopN = 10

type LeaderboardService interface {
	Top(ctx context.Context, limit int) ([]*dto.LeaderboardRowDTO, error)
}

type leaderboardServiceImpl struct {
	lbRepo repository.LeaderboardRepo
	game   config.GameConfig
}

func NewLeaderboardService(lbRepo repository.LeaderboardRepo, game config.GameConfig) LeaderboardService {
	return &leaderboardServiceImpl{
		lbRepo: lbRepo,
		game:   game,
	}
}

func (s *leaderboardServiceImpl) Top(ctx context.Context, limit int) ([]*dto.LeaderboardRowDTO, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultTopN
	}

	entries, err := s.lbRepo.TopN(ctx, s.game.Type, limit)
	if err != nil {
		return nil, err
	}

	rows := make([]*dto.LeaderboardRowDTO, 0, len(entries))
	for i, entry := range entries {
		rows = append(rows, &dto.LeaderboardRowDTO{
			Rank:      i + 1,
			Name:      entry.Name,
			BestScore: entry.BestScore,
		})
	}
	return rows, nil
}
