package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// Player - учетная запись игрока. Баланс игры живет только в сессии, в БД не хранится
type Player struct {
	ID       int
	Name     string
	Login    string
	Password string
}

// PlayerClaims - claims access токена. ID - идентификатор игрока, SessionID - сессия авторизации
type PlayerClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}
