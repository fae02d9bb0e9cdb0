package env

import (
	"errors"
	"fmt"
	"os"
	"slot_backend/internal/config"
	"time"
)

const (
	accessSecretEnvName    = "ACCESS_TOKEN"
	accessDurationEnvName  = "ACCESS_TOKEN_DURATION"
	refreshDurationEnvName = "REFRESH_TOKEN_DURATION"

	defaultAccessDuration  = 15 * time.Minute
	defaultRefreshDuration = 30 * 24 * time.Hour
)

type jwtConfig struct {
	secret          []byte
	accessDuration  time.Duration
	refreshDuration time.Duration
}

// NewJWTConfig - секрет обязателен, длительности берутся по умолчанию, если не заданы
func NewJWTConfig() (config.JWTConfig, error) {
	secret := os.Getenv(accessSecretEnvName)
	if secret == "" {
		return nil, errors.New("access token secret key not found")
	}

	access, err := durationFromEnv(accessDurationEnvName, defaultAccessDuration)
	if err != nil {
		return nil, err
	}
	refresh, err := durationFromEnv(refreshDurationEnvName, defaultRefreshDuration)
	if err != nil {
		return nil, err
	}
	if access >= refresh {
		return nil, fmt.Errorf("access token duration %s must be shorter than refresh %s", access, refresh)
	}

	return &jwtConfig{
		secret:          []byte(secret),
		accessDuration:  access,
		refreshDuration: refresh,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return j.secret
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessDuration
}

func (j *jwtConfig) RefreshTokenDuration() time.Duration {
	return j.refreshDuration
}

// durationFromEnv читает длительность вида "15m", пустое значение заменяется на def
func durationFromEnv(name string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", name, d)
	}
	return d, nil
}
