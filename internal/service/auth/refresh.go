package auth

import (
	"context"
	"errors"
	"fmt"
	"slot_backend/internal/model"
	"slot_backend/internal/repository/auth_repo"
	"slot_backend/pkg/token"
)

// Refresh выдает новый access токен по паре session ID + refresh токен
func (s *serv) Refresh(ctx context.Context, data *model.AuthData) (string, error) {
	refreshTokenHash, err := s.authRepo.GetRefreshTokenBySessionID(ctx, data.SessionID)
	if err != nil {
		if errors.Is(err, auth_repo.ErrSessionExpired) {
			return "", fmt.Errorf("%w: %w", model.ErrUnauthorized, err)
		}
		return "", err
	}

	if !token.VerifyRefreshToken(data.RefreshToken, refreshTokenHash) {
		return "", fmt.Errorf("%w: invalid refresh token", model.ErrUnauthorized)
	}

	player, err := s.authRepo.GetPlayerBySessionID(ctx, data.SessionID)
	if err != nil {
		return "", err
	}

	return token.GenerateAccessToken(
		player.ID,
		data.SessionID,
		s.jwtConfig.AccessTokenSecretKey(),
		s.jwtConfig.AccessTokenDuration())
}
