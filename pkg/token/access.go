package token

import (
	"errors"
	"fmt"
	"slot_backend/internal/model"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken - JWT с ID игрока в sub и ID сессии авторизации в sid
func GenerateAccessToken(playerID int, sessionID string, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := model.PlayerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(playerID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		SessionID: sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.PlayerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.PlayerClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected token signing method")
		}
		return secretKey, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.PlayerClaims)
	if !ok || claims.SessionID == "" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}

// PlayerID - ID игрока из claims
func PlayerID(claims *model.PlayerClaims) (int, error) {
	return strconv.Atoi(claims.Subject)
}
