package repository

import (
	"Lucky99/internal/model"
	"context"

	"gorm.io/gorm"
)

type LeaderboardRepo interface {
	UpsertBest(ctx context.Context, name string, email string, score int, gameType string) (*model.LeaderboardEntry, bool, error)
	TopN(ctx context.Context, gameType string, n int) ([]*model.LeaderboardEntry, error)
	ListAll(ctx context.Context) ([]*model.LeaderboardEntry, error)
	UpdateEntry(ctx context.Context, entry *model.LeaderboardEntry) error
	DeleteEntry(ctx context.Context, id uint64) error
	DeleteByEmails(ctx context.Context, emails []string) error
}

type leaderboardRepoImpl struct {
	db *gorm.DB
}

func NewLeaderboardRepo(db *gorm.DB) LeaderboardRepo {
	return &leaderboardRepoImpl{db: db}
}

// UpsertBest 记录一局结果：total_games_played 无条件 +1，
// best_score/name 仅在新成绩严格更高时覆盖，返回更新后的行和是否刷新纪录。
// 计数与比较都走条件 UPDATE，在同一事务内完成，并发提交不会丢失计数
func (s *leaderboardRepoImpl) UpsertBest(ctx context.Context, name string, email string, score int, gameType string) (*model.LeaderboardEntry, bool, error) {
	var entry model.LeaderboardEntry
	isNewBest := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.LeaderboardEntry{}).
			Where("email = ? AND game_type = ?", email, gameType).
			UpdateColumn("total_games_played", gorm.Expr("total_games_played + 1"))
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			entry = model.LeaderboardEntry{
				Name:             name,
				Email:            email,
				BestScore:        score,
				TotalGamesPlayed: 1,
				GameType:         gameType,
			}
			isNewBest = true
			return tx.Create(&entry).Error
		}

		result = tx.Model(&model.LeaderboardEntry{}).
			Where("email = ? AND game_type = ? AND best_score < ?", email, gameType, score).
			Updates(map[string]interface{}{
				"best_score": score,
				"name":       name,
			})
		if result.Error != nil {
			return result.Error
		}
		isNewBest = result.RowsAffected > 0

		return tx.Where("email = ? AND game_type = ?", email, gameType).
			First(&entry).Error
	})
	if err != nil {
		return nil, false, wrapStorage("upsert leaderboard", err)
	}

	return &entry, isNewBest, nil
}

// TopN 按最好成绩降序取前 n 行
func (s *leaderboardRepoImpl) TopN(ctx context.Context, gameType string, n int) ([]*model.LeaderboardEntry, error) {
	entries := make([]*model.LeaderboardEntry, 0)
	result := s.db.WithContext(ctx).
		Where("game_type = ?", gameType).
		Order("best_score DESC").
		Limit(n).
		Find(&entries)
	if result.Error != nil {
		return nil, wrapStorage("list top leaderboard", result.Error)
	}
	return entries, nil
}

func (s *leaderboardRepoImpl) ListAll(ctx context.Context) ([]*model.LeaderboardEntry, error) {
	entries := make([]*model.LeaderboardEntry, 0)
	result := s.db.WithContext(ctx).Find(&entries)
	if result.Error != nil {
		return nil, wrapStorage("list leaderboard", result.Error)
	}
	return entries, nil
}

func (s *leaderboardRepoImpl) UpdateEntry(ctx context.Context, entry *model.LeaderboardEntry) error {
	return wrapStorage("update leaderboard entry",
		s.db.WithContext(ctx).Save(entry).Error)
}

func (s *leaderboardRepoImpl) DeleteEntry(ctx context.Context, id uint64) error {
	return wrapStorage("delete leaderboard entry",
		s.db.WithContext(ctx).Delete(&model.LeaderboardEntry{}, id).Error)
}

func (s *leaderboardRepoImpl) DeleteByEmails(ctx context.Context, emails []string) error {
	return wrapStorage("delete leaderboard by emails",
		s.db.WithContext(ctx).Where("email IN ?", emails).Delete(&model.LeaderboardEntry{}).Error)
}
