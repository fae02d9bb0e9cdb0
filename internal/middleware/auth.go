package middleware

import (
	"context"
	"net/http"
	"slot_backend/pkg/resp"
	"slot_backend/pkg/token"
	"strings"

	"go.uber.org/zap"
)

type ctxKey int

const (
	playerIDKey ctxKey = iota
	sessionIDKey
)

// Auth проверяет access токен из заголовка Authorization: Bearer <token>
// и кладет в контекст ID игрока и ID сессии
func Auth(secretKey []byte, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing access token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				log.Debug("access token rejected", zap.Error(err))
				resp.WriteError(w, http.StatusUnauthorized, "invalid access token")
				return
			}
			playerID, err := token.PlayerID(claims)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			ctx := context.WithValue(r.Context(), playerIDKey, playerID)
			ctx = context.WithValue(ctx, sessionIDKey, claims.SessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func PlayerIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(playerIDKey).(int)
	return id, ok
}

// SessionIDFromContext - ID сессии авторизации, к ней привязана игровая сессия
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}
