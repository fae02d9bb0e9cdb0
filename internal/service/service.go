package service

import (
	"context"
	"slot_backend/internal/model"
	"slot_backend/internal/slot"
)

type AuthService interface {
	Register(ctx context.Context, player *model.Player) (*model.AuthData, error)
	Login(ctx context.Context, login, password string) (*model.AuthData, error)
	Refresh(ctx context.Context, data *model.AuthData) (newAccessToken string, err error)
	Logout(ctx context.Context, sessionID string) error
}

// SlotService - команды игрока, направляемые в секвенсор его сессии
type SlotService interface {
	Spin(ctx context.Context, sessionID string) (*model.SpinResult, error)
	SetBet(ctx context.Context, sessionID string, amount int64) (model.LedgerState, error)
	ActivateFreeSpins(ctx context.Context, sessionID string) (model.LedgerState, error)
	State(ctx context.Context, sessionID string) (*model.GameState, error)
	Config() slot.Config
	Stats() model.Stats
}
