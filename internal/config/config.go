package config

import (
	"slot_backend/internal/model"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// SlotConfig - документ конфигурации автомата. Ядро только читает его
type SlotConfig interface {
	Reels() int
	Rows() int
	Symbols() []model.Symbol

	MinBet() int64
	BetSteps() []int64
	InitialBalance() int64
	InitialJackpot() int64

	JackpotRate() decimal.Decimal
	ConsolationRate() decimal.Decimal
	ConsolationRun() int
	SecondChanceEnabled() bool
	MaxPayoutMultiplier() int64

	Paylines() []model.Payline

	FreeSpinSymbol() string
	FreeSpinCount() int
	FreeSpinMultiplier() int

	// Тайминги анимации нужны только клиенту и таймеру показа
	RevealDuration() time.Duration
	ReelStagger() time.Duration
	CellHeight() int
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}

type LogConfig interface {
	Level() zapcore.Level
}
