package model

import "errors"

var (
	// ErrInsufficientFunds - ставка больше баланса и нет активного фриспина
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrBlockedBySpin - ход уже выполняется
	ErrBlockedBySpin = errors.New("spin in progress")
	// ErrInvalidBetSelection - ставки нет среди шагов или она больше баланса
	ErrInvalidBetSelection = errors.New("invalid bet selection")
	// ErrFreeSpinsActive - фриспины еще не израсходованы
	ErrFreeSpinsActive = errors.New("free spins are not empty")
	ErrInvalidAmount   = errors.New("amount must not be negative")
	ErrSessionNotFound = errors.New("game session not found")
)

var (
	// ErrInvalidCredentials - неверный логин или пароль
	ErrInvalidCredentials = errors.New("invalid login or password")
	// ErrUnauthorized - нет или просрочен access/refresh токен
	ErrUnauthorized = errors.New("unauthorized")
)
