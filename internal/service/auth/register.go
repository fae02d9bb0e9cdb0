package auth

import (
	"context"
	"slot_backend/internal/model"
	"slot_backend/pkg/pass"
	"slot_backend/pkg/token"
	"time"

	"go.uber.org/zap"
)

// Register создает игрока и сессию авторизации в одной транзакции
func (s *serv) Register(ctx context.Context, player *model.Player) (*model.AuthData, error) {
	passwordHash, err := pass.HashPassword(player.Password)
	if err != nil {
		return nil, err
	}
	player.Password = passwordHash

	var (
		data      *model.AuthData
		expiresAt time.Time
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.userRepo.CreatePlayer(ctx, player)
		if err != nil {
			return err
		}
		player.ID = id

		data, expiresAt, err = s.openSession(ctx, player.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	// Игровая сессия открывается только после коммита
	s.gameSessions.Open(data.SessionID, expiresAt)

	s.log.Info("player registered", zap.Int("player_id", player.ID), zap.String("session_id", data.SessionID))
	return data, nil
}

// openSession - refresh токен (в БД только хэш), сессия и access токен.
// Возвращает срок жизни сессии, игровая сессия живет столько же
func (s *serv) openSession(ctx context.Context, playerID int) (*model.AuthData, time.Time, error) {
	sessionID := generateSessionID()

	refreshToken, err := token.GenerateRefreshToken()
	if err != nil {
		return nil, time.Time{}, err
	}

	expiresAt := time.Now().Add(s.jwtConfig.RefreshTokenDuration())
	err = s.authRepo.CreateSession(ctx, &model.Session{
		ID:           sessionID,
		PlayerID:     playerID,
		RefreshToken: token.HashRefreshToken(refreshToken),
		ExpiresAt:    expiresAt,
	})
	if err != nil {
		return nil, time.Time{}, err
	}

	accessToken, err := token.GenerateAccessToken(
		playerID,
		sessionID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
	if err != nil {
		return nil, time.Time{}, err
	}

	return &model.AuthData{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		SessionID:    sessionID,
	}, expiresAt, nil
}
