package repository

import (
	"context"
	"slot_backend/internal/model"
	"slot_backend/internal/slot"
	"time"
)

type AuthRepository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (refreshToken string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
	GetPlayerBySessionID(ctx context.Context, sessionID string) (*model.Player, error)
}

type UserRepository interface {
	CreatePlayer(ctx context.Context, player *model.Player) (id int, err error)
	GetPlayerByLogin(ctx context.Context, login string) (*model.Player, error)
}

// GameSessionRepository - игровые сессии в памяти, по одной на сессию авторизации.
// Сессия живет от Open до Delete или до expiresAt
type GameSessionRepository interface {
	Open(sessionID string, expiresAt time.Time)
	GetOrCreate(sessionID string, create func() *slot.Sequencer) (*slot.Sequencer, error)
	Get(sessionID string) (*slot.Sequencer, error)
	Delete(sessionID string)
	Sweep() int
	Count() int
}

// StatsRepository - статистика RTP по всем рассчитанным ходам
type StatsRepository interface {
	Record(result model.SpinResult)
	Stats() model.Stats
}
