package service

import (
	"Lucky99/internal/api/config"
	"Lucky99/internal/api/dto"
	"Lucky99/internal/model"
	"Lucky99/internal/pkg/session"
	"Lucky99/internal/pkg/util"
	"Lucky99/internal/repository"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// NumberDrawer 抽取 count 个 [min,max] 内互不相同的整数
type NumberDrawer interface {
	Draw(ctx context.Context, count, min, max int) ([]int, error)
}

type GameService interface {
	StartSession(ctx context.Context) (*dto.GameSessionDTO, error)
	GetSession(ctx context.Context, sessionID string) (*dto.GameSessionDTO, error)
	Draw(ctx context.Context, sessionID string, predictions []int) (*dto.GameSessionDTO, error)
	SubmitIdentity(ctx context.Context, sessionID string, name string, email string) (*dto.GameResultDTO, error)
	Replay(ctx context.Context, sessionID string) (*dto.GameSessionDTO, error)
}

type gameServiceImpl struct {
	store   session.Store
	drawer  NumberDrawer
	runRepo repository.GameRunRepo
	lbRepo  repository.LeaderboardRepo
	game    config.GameConfig
}

func NewGameService(
	store session.Store,
	drawer NumberDrawer,
	runRepo repository.GameRunRepo,
	lbRepo repository.LeaderboardRepo,
	game config.GameConfig,
) GameService {
	return &gameServiceImpl{
		store:   store,
		drawer:  drawer,
		runRepo: runRepo,
		lbRepo:  lbRepo,
		game:    game,
	}
}

func (s *gameServiceImpl) StartSession(ctx context.Context) (*dto.GameSessionDTO, error) {
	now := time.Now()
	sess := &session.GameSession{
		SessionID: uuid.NewString(),
		Phase:     session.PhaseInput,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return toSessionDTO(sess)
}

func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*dto.GameSessionDTO, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toSessionDTO(sess)
}

// Draw 校验预测数字后请求一次真随机开奖并计分，会话推进到身份确认阶段。
// 校验或开奖失败时会话保持原状态，用户可以直接重试
func (s *gameServiceImpl) Draw(ctx context.Context, sessionID string, predictions []int) (*dto.GameSessionDTO, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != session.PhaseInput {
		return nil, ErrPhaseInvalid
	}

	if err := s.validatePredictions(predictions); err != nil {
		return nil, err
	}

	draws, err := s.drawer.Draw(ctx, s.game.Count, s.game.Min, s.game.Max)
	if err != nil {
		return nil, err
	}

	sess.Predictions = predictions
	sess.RandomNumbers = draws
	sess.Matched = util.MatchedNumbers(predictions, draws)
	sess.Score = util.CountMatches(predictions, draws)
	sess.Phase = session.PhaseIdentify

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return toSessionDTO(sess)
}

// SubmitIdentity 落库一条对局记录并原子更新排行榜，会话进入结果阶段
func (s *gameServiceImpl) SubmitIdentity(ctx context.Context, sessionID string, name string, email string) (*dto.GameResultDTO, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Phase != session.PhaseIdentify {
		return nil, ErrPhaseInvalid
	}

	name = strings.TrimSpace(name)
	normalizedEmail := util.NormalizeEmail(email)
	if name == "" || normalizedEmail == "" {
		return nil, ErrIdentityMissing
	}

	run := &model.GameRun{
		UserName:      name,
		Email:         normalizedEmail,
		Predictions:   model.IntList(sess.Predictions),
		RandomNumbers: model.IntList(sess.RandomNumbers),
		Score:         sess.Score,
		GameType:      s.game.Type,
	}
	if err := s.runRepo.CreateRun(ctx, run); err != nil {
		return nil, err
	}

	entry, isNewBest, err := s.lbRepo.UpsertBest(ctx, name, normalizedEmail, sess.Score, s.game.Type)
	if err != nil {
		return nil, err
	}

	sess.Phase = session.PhaseResults
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	return &dto.GameResultDTO{
		Score:         sess.Score,
		Predictions:   sess.Predictions,
		RandomNumbers: sess.RandomNumbers,
		Matched:       sess.Matched,
		IsNewBest:     isNewBest,
		Message:       upsertMessage(entry, isNewBest),
	}, nil
}

// Replay 清空本局数据，回到填写阶段
func (s *gameServiceImpl) Replay(ctx context.Context, sessionID string) (*dto.GameSessionDTO, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sess.Phase = session.PhaseInput
	sess.Predictions = nil
	sess.RandomNumbers = nil
	sess.Matched = nil
	sess.Score = 0

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return toSessionDTO(sess)
}

func (s *gameServiceImpl) loadSession(ctx context.Context, sessionID string) (*session.GameSession, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *gameServiceImpl) validatePredictions(predictions []int) error {
	if len(predictions) != s.game.Count {
		return ErrPredictionCount
	}

	seen := make(map[int]struct{}, len(predictions))
	for _, n := range predictions {
		if n == 0 {
			return ErrPredictionZero
		}
		if n < s.game.Min || n > s.game.Max {
			return ErrPredictionRange
		}
		if _, dup := seen[n]; dup {
			return ErrPredictionDuplicate
		}
		seen[n] = struct{}{}
	}
	return nil
}

func upsertMessage(entry *model.LeaderboardEntry, isNewBest bool) string {
	if isNewBest {
		if entry.TotalGamesPlayed == 1 {
			return "已加入排行榜！"
		}
		return "新纪录！成绩已写入排行榜"
	}
	return fmt.Sprintf("你的最好成绩仍是 %d/10", entry.BestScore)
}

func toSessionDTO(sess *session.GameSession) (*dto.GameSessionDTO, error) {
	out := &dto.GameSessionDTO{}
	if err := copier.Copy(out, sess); err != nil {
		return nil, err
	}
	return out, nil
}
