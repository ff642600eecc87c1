package session

import (
	"Lucky99/internal/pkg/consts"
	"Lucky99/internal/pkg/redis"
	"context"
	"time"

	"github.com/goccy/go-json"
	pkgerrors "github.com/pkg/errors"
)

// 会话三阶段：填数字 -> 留身份 -> 看结果
const (
	PhaseInput    = "input"
	PhaseIdentify = "identify"
	PhaseResults  = "results"
)

// SessionTTL 每次写入时刷新，闲置一小时后会话过期
const SessionTTL = time.Hour

// GameSession 单个访客的游戏会话状态
type GameSession struct {
	SessionID     string    `json:"session_id"`
	Phase         string    `json:"phase"`
	Predictions   []int     `json:"predictions"`
	RandomNumbers []int     `json:"random_numbers"`
	Matched       []int     `json:"matched"`
	Score         int       `json:"score"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Store interface {
	Save(ctx context.Context, sess *GameSession) error
	Get(ctx context.Context, sessionID string) (*GameSession, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisStore struct{}

func NewRedisStore() Store {
	return &redisStore{}
}

func (s *redisStore) Save(ctx context.Context, sess *GameSession) error {
	sess.UpdatedAt = time.Now()
	data, err := json.Marshal(sess)
	if err != nil {
		return pkgerrors.Wrap(err, "marshal game session")
	}
	return pkgerrors.Wrap(
		redis.SetWithExpiration(ctx, consts.GameSessionKey+sess.SessionID, string(data), SessionTTL),
		"save game session")
}

// Get 会话不存在或已过期时返回 nil, nil
func (s *redisStore) Get(ctx context.Context, sessionID string) (*GameSession, error) {
	value, err := redis.GetValue(ctx, consts.GameSessionKey+sessionID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load game session")
	}
	if value == "" {
		return nil, nil
	}

	var sess GameSession
	if err := json.Unmarshal([]byte(value), &sess); err != nil {
		return nil, pkgerrors.Wrap(err, "unmarshal game session")
	}
	return &sess, nil
}

func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	return pkgerrors.Wrap(
		redis.DeleteKey(ctx, consts.GameSessionKey+sessionID),
		"delete game session")
}
