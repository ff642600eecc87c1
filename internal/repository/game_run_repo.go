package repository

import (
	"Lucky99/internal/model"
	"context"

	"gorm.io/gorm"
)

type GameRunRepo interface {
	CreateRun(ctx context.Context, run *model.GameRun) error
	ListByGameType(ctx context.Context, gameType string) ([]*model.GameRun, error)
	ListByEmail(ctx context.Context, email string, gameType string) ([]*model.GameRun, error)
	NormalizeEmails(ctx context.Context) (int64, error)
	DeleteByEmails(ctx context.Context, emails []string) error
}

type gameRunRepoImpl struct {
	db *gorm.DB
}

func NewGameRunRepo(db *gorm.DB) GameRunRepo {
	return &gameRunRepoImpl{db: db}
}

// CreateRun 追加一条对局记录，记录写入后不再修改
func (s *gameRunRepoImpl) CreateRun(ctx context.Context, run *model.GameRun) error {
	return wrapStorage("insert game run", s.db.WithContext(ctx).Create(run).Error)
}

func (s *gameRunRepoImpl) ListByGameType(ctx context.Context, gameType string) ([]*model.GameRun, error) {
	runs := make([]*model.GameRun, 0)
	result := s.db.WithContext(ctx).
		Where("game_type = ?", gameType).
		Find(&runs)
	if result.Error != nil {
		return nil, wrapStorage("list game runs", result.Error)
	}
	return runs, nil
}

// ListByEmail 查询某个玩家的对局历史，最新的在前；email 需由调用方先归一化
func (s *gameRunRepoImpl) ListByEmail(ctx context.Context, email string, gameType string) ([]*model.GameRun, error) {
	runs := make([]*model.GameRun, 0)
	result := s.db.WithContext(ctx).
		Where("email = ? AND game_type = ?", email, gameType).
		Order("created_at DESC").
		Find(&runs)
	if result.Error != nil {
		return nil, wrapStorage("list game runs by email", result.Error)
	}
	return runs, nil
}

// NormalizeEmails 把历史记录中的邮箱统一为小写去空白形式，返回修正的行数
func (s *gameRunRepoImpl) NormalizeEmails(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.GameRun{}).
		Where("email <> LOWER(TRIM(email))").
		Update("email", gorm.Expr("LOWER(TRIM(email))"))
	if result.Error != nil {
		return 0, wrapStorage("normalize game run emails", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *gameRunRepoImpl) DeleteByEmails(ctx context.Context, emails []string) error {
	return wrapStorage("delete game runs by emails",
		s.db.WithContext(ctx).Where("email IN ?", emails).Delete(&model.GameRun{}).Error)
}
