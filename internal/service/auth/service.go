package auth

import (
	"slot_backend/internal/config"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type serv struct {
	txManager    trm.Manager
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	gameSessions repository.GameSessionRepository
	jwtConfig    config.JWTConfig
	log          *zap.Logger
}

func NewAuthService(
	txManager trm.Manager,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	gameSessions repository.GameSessionRepository,
	jwtConfig config.JWTConfig,
	log *zap.Logger,
) service.AuthService {
	return &serv{
		txManager:    txManager,
		userRepo:     userRepo,
		authRepo:     authRepo,
		gameSessions: gameSessions,
		jwtConfig:    jwtConfig,
		log:          log.Named("auth"),
	}
}

func generateSessionID() string {
	return uuid.NewString()
}
