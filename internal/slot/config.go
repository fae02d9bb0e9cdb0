package slot

import (
	"fmt"
	"slices"
	"slot_backend/internal/config"
	"slot_backend/internal/ledger"
	"slot_backend/internal/model"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

const (
	// Минимальное число барабанов, при котором в поиск бонуса добавляются вертикали
	verticalBonusMinReels = 4
	defaultConsolationRun = 3
)

// Config - параметры машины, которые читает ядро
type Config struct {
	Reels   int
	Rows    int
	Symbols []model.Symbol

	MinBet         int64
	BetSteps       []int64
	InitialBalance int64
	InitialJackpot int64

	JackpotRate     decimal.Decimal
	ConsolationRate decimal.Decimal
	// ConsolationRun - минимальная длина серии для утешительного приза
	ConsolationRun int
	// SecondChance - включен ли второй шанс. Если выключен, серии N-1 уходят в утешительный приз
	SecondChance bool
	// MaxPayoutMultiplier - лимит обычного выигрыша в ставках, 0 - без лимита
	MaxPayoutMultiplier int64

	Paylines []model.Payline

	BonusSymbolID      string
	FreeSpinCount      int
	FreeSpinMultiplier int

	RevealDuration time.Duration
	ReelStagger    time.Duration
	// CellHeight - высота ячейки в пикселях, нужна только клиенту
	CellHeight int
}

// FromConfig собирает Config из документа конфигурации
func FromConfig(c config.SlotConfig) Config {
	return Config{
		Reels:               c.Reels(),
		Rows:                c.Rows(),
		Symbols:             c.Symbols(),
		MinBet:              c.MinBet(),
		BetSteps:            c.BetSteps(),
		InitialBalance:      c.InitialBalance(),
		InitialJackpot:      c.InitialJackpot(),
		JackpotRate:         c.JackpotRate(),
		ConsolationRate:     c.ConsolationRate(),
		ConsolationRun:      c.ConsolationRun(),
		SecondChance:        c.SecondChanceEnabled(),
		MaxPayoutMultiplier: c.MaxPayoutMultiplier(),
		Paylines:            c.Paylines(),
		BonusSymbolID:       c.FreeSpinSymbol(),
		FreeSpinCount:       c.FreeSpinCount(),
		FreeSpinMultiplier:  c.FreeSpinMultiplier(),
		RevealDuration:      c.RevealDuration(),
		ReelStagger:         c.ReelStagger(),
		CellHeight:          c.CellHeight(),
	}
}

// LedgerSettings - часть конфигурации, нужная счету
func (c Config) LedgerSettings() ledger.Settings {
	return ledger.Settings{
		InitialBalance:     c.InitialBalance,
		InitialJackpot:     c.InitialJackpot,
		MinBet:             c.MinBet,
		BetSteps:           slices.Clone(c.BetSteps),
		FreeSpinMultiplier: c.FreeSpinMultiplier,
	}
}

func (c Config) consolationRun() int {
	if c.ConsolationRun <= 0 {
		return defaultConsolationRun
	}
	return c.ConsolationRun
}

// Validate проверяет конфигурацию целиком и возвращает все найденные ошибки
func (c Config) Validate() error {
	var err error

	if c.Reels < 3 {
		err = multierr.Append(err, fmt.Errorf("reels must be at least 3, got %d", c.Reels))
	}
	if c.Rows < 1 {
		err = multierr.Append(err, fmt.Errorf("rows must be at least 1, got %d", c.Rows))
	}
	if len(c.Symbols) == 0 {
		err = multierr.Append(err, fmt.Errorf("symbol catalog is empty"))
	}

	known := make(map[string]bool, len(c.Symbols))
	for _, s := range c.Symbols {
		if s.ID == "" {
			err = multierr.Append(err, fmt.Errorf("symbol with empty id"))
			continue
		}
		if known[s.ID] {
			err = multierr.Append(err, fmt.Errorf("duplicate symbol %q", s.ID))
		}
		known[s.ID] = true
	}

	if len(c.BetSteps) == 0 {
		err = multierr.Append(err, fmt.Errorf("bet steps are empty"))
	}
	if !slices.Contains(c.BetSteps, c.MinBet) {
		err = multierr.Append(err, fmt.Errorf("min bet %d is not among bet steps", c.MinBet))
	}
	for _, step := range c.BetSteps {
		if step < c.MinBet {
			err = multierr.Append(err, fmt.Errorf("bet step %d is below min bet %d", step, c.MinBet))
		}
	}
	if c.InitialBalance < 0 || c.InitialJackpot < 0 {
		err = multierr.Append(err, fmt.Errorf("initial balance and jackpot must not be negative"))
	}

	if c.JackpotRate.IsNegative() || c.JackpotRate.GreaterThan(decimal.NewFromInt(1)) {
		err = multierr.Append(err, fmt.Errorf("jackpot rate %s is out of [0, 1]", c.JackpotRate))
	}
	if c.ConsolationRate.IsNegative() {
		err = multierr.Append(err, fmt.Errorf("consolation rate %s is negative", c.ConsolationRate))
	}
	if c.ConsolationRun < 0 || (c.Reels > 0 && c.consolationRun() >= c.Reels) {
		err = multierr.Append(err, fmt.Errorf("consolation run %d must be shorter than reel count %d", c.consolationRun(), c.Reels))
	}

	for i, p := range c.Paylines {
		if len(p.Combination) != c.Reels {
			err = multierr.Append(err, fmt.Errorf("payline %d: combination has %d symbols, want %d", i, len(p.Combination), c.Reels))
		}
		for _, id := range p.Combination {
			if !known[id] {
				err = multierr.Append(err, fmt.Errorf("payline %d: unknown symbol %q", i, id))
			}
		}
		if !p.IsJackpot && !p.Multiplier.IsPositive() {
			err = multierr.Append(err, fmt.Errorf("payline %d: multiplier must be positive", i))
		}
	}

	if !known[c.BonusSymbolID] {
		err = multierr.Append(err, fmt.Errorf("free spin symbol %q is not in the catalog", c.BonusSymbolID))
	}
	if c.FreeSpinCount < 0 {
		err = multierr.Append(err, fmt.Errorf("free spin count must not be negative"))
	}
	if c.FreeSpinMultiplier < 1 {
		err = multierr.Append(err, fmt.Errorf("free spin multiplier must be at least 1"))
	}
	if c.RevealDuration < 0 || c.ReelStagger < 0 {
		err = multierr.Append(err, fmt.Errorf("animation durations must not be negative"))
	}

	return err
}
