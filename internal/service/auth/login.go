package auth

import (
	"context"
	"errors"
	"slot_backend/internal/model"
	"slot_backend/internal/repository/user_repo"
	"slot_backend/internal/slot"
	"slot_backend/pkg/pass"

	"go.uber.org/zap"
)

func (s *serv) Login(ctx context.Context, login, password string) (*model.AuthData, error) {
	player, err := s.userRepo.GetPlayerByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, user_repo.ErrPlayerNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !pass.VerifyPassword(player.Password, password) {
		return nil, model.ErrInvalidCredentials
	}

	data, expiresAt, err := s.openSession(ctx, player.ID)
	if err != nil {
		return nil, err
	}
	s.gameSessions.Open(data.SessionID, expiresAt)

	s.log.Info("player logged in", zap.Int("player_id", player.ID), zap.String("session_id", data.SessionID))
	return data, nil
}

// Logout закрывает сессию авторизации и вместе с ней игровую сессию
func (s *serv) Logout(ctx context.Context, sessionID string) error {
	if err := s.authRepo.DeleteSession(ctx, sessionID); err != nil {
		return err
	}
	if seq, err := s.gameSessions.Get(sessionID); err == nil && seq.State() != slot.StateIdle {
		s.log.Warn("closing session with unfinished turn",
			zap.String("session_id", sessionID),
			zap.String("phase", string(seq.State())),
		)
	}
	s.gameSessions.Delete(sessionID)

	s.log.Info("session closed",
		zap.String("session_id", sessionID),
		zap.Int("active_game_sessions", s.gameSessions.Count()),
	)
	return nil
}
