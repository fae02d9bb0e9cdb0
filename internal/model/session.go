package model

import "time"

// Session - сессия авторизации. К ней привязана игровая сессия (счет + секвенсор)
type Session struct {
	ID           string
	PlayerID     int
	RefreshToken string
	ExpiresAt    time.Time
}

// AuthData - токены, выдаваемые при входе
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
