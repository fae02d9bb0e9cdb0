package env

import (
	"fmt"
	"os"
	"slices"
	"slot_backend/internal/config"
	"slot_backend/internal/model"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	slotConfigEnvName = "SLOT_CONFIG"
	defaultSlotConfig = "config.yaml"
)

// number - десятичное значение из YAML (ставки, множители). Парсится без float
type number struct {
	decimal.Decimal
}

func (n *number) UnmarshalYAML(node *yaml.Node) error {
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	n.Decimal = d
	return nil
}

type slotDocument struct {
	Reels   int `yaml:"reels"`
	Rows    int `yaml:"rows"`
	Symbols []struct {
		ID    string `yaml:"id"`
		Glyph string `yaml:"glyph"`
		Value int    `yaml:"value"`
	} `yaml:"symbols"`

	GameSettings struct {
		InitialBalance int64 `yaml:"initialBalance"`
		InitialJackpot int64 `yaml:"initialJackpot"`
		Bets           struct {
			Min   int64   `yaml:"min"`
			Steps []int64 `yaml:"steps"`
		} `yaml:"bets"`
		JackpotRate         number `yaml:"jackpotRate"`
		ConsolationRate     number `yaml:"consolationRate"`
		ConsolationRun      int    `yaml:"consolationRun"`
		SecondChance        *bool  `yaml:"secondChance"`
		MaxPayoutMultiplier int64  `yaml:"maxPayoutMultiplier"`
		FreeSpins           struct {
			Symbol     string `yaml:"symbol"`
			Count      int    `yaml:"count"`
			Multiplier int    `yaml:"multiplier"`
		} `yaml:"freeSpins"`
	} `yaml:"gameSettings"`

	Paylines []struct {
		Combination []string `yaml:"combination"`
		Multiplier  number   `yaml:"multiplier"`
		IsJackpot   bool     `yaml:"isJackpot"`
	} `yaml:"paylines"`

	Animation struct {
		RevealDurationMs int `yaml:"revealDurationMs"`
		ReelStaggerMs    int `yaml:"reelStaggerMs"`
		CellHeight       int `yaml:"cellHeight"`
	} `yaml:"animation"`
}

type slotConfig struct {
	doc      slotDocument
	symbols  []model.Symbol
	paylines []model.Payline
}

// NewSlotConfigFromEnv читает YAML по пути из SLOT_CONFIG (по умолчанию config.yaml)
func NewSlotConfigFromEnv() (config.SlotConfig, error) {
	path := os.Getenv(slotConfigEnvName)
	if path == "" {
		path = defaultSlotConfig
	}
	return NewSlotConfigFromYAML(path)
}

func NewSlotConfigFromYAML(path string) (config.SlotConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read slot config: %w", err)
	}
	return ParseSlotConfig(raw)
}

// ParseSlotConfig разбирает документ. Проверка значений - на стороне slot.Config.Validate
func ParseSlotConfig(raw []byte) (config.SlotConfig, error) {
	var doc slotDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse slot config: %w", err)
	}

	cfg := &slotConfig{doc: doc}
	for _, s := range doc.Symbols {
		cfg.symbols = append(cfg.symbols, model.Symbol{ID: s.ID, Glyph: s.Glyph, PayValue: s.Value})
	}
	for _, p := range doc.Paylines {
		cfg.paylines = append(cfg.paylines, model.Payline{
			Combination: p.Combination,
			Multiplier:  p.Multiplier.Decimal,
			IsJackpot:   p.IsJackpot,
		})
	}
	return cfg, nil
}

func (c *slotConfig) Reels() int { return c.doc.Reels }

func (c *slotConfig) Rows() int { return c.doc.Rows }

func (c *slotConfig) Symbols() []model.Symbol { return slices.Clone(c.symbols) }

func (c *slotConfig) MinBet() int64 { return c.doc.GameSettings.Bets.Min }

func (c *slotConfig) BetSteps() []int64 { return slices.Clone(c.doc.GameSettings.Bets.Steps) }

func (c *slotConfig) InitialBalance() int64 { return c.doc.GameSettings.InitialBalance }

func (c *slotConfig) InitialJackpot() int64 { return c.doc.GameSettings.InitialJackpot }

func (c *slotConfig) JackpotRate() decimal.Decimal { return c.doc.GameSettings.JackpotRate.Decimal }

func (c *slotConfig) ConsolationRate() decimal.Decimal {
	return c.doc.GameSettings.ConsolationRate.Decimal
}

func (c *slotConfig) ConsolationRun() int { return c.doc.GameSettings.ConsolationRun }

// SecondChanceEnabled - второй шанс включен, если ключ не задан
func (c *slotConfig) SecondChanceEnabled() bool {
	if c.doc.GameSettings.SecondChance == nil {
		return true
	}
	return *c.doc.GameSettings.SecondChance
}

func (c *slotConfig) MaxPayoutMultiplier() int64 { return c.doc.GameSettings.MaxPayoutMultiplier }

func (c *slotConfig) Paylines() []model.Payline { return slices.Clone(c.paylines) }

func (c *slotConfig) FreeSpinSymbol() string { return c.doc.GameSettings.FreeSpins.Symbol }

func (c *slotConfig) FreeSpinCount() int { return c.doc.GameSettings.FreeSpins.Count }

func (c *slotConfig) FreeSpinMultiplier() int { return c.doc.GameSettings.FreeSpins.Multiplier }

func (c *slotConfig) RevealDuration() time.Duration {
	return time.Duration(c.doc.Animation.RevealDurationMs) * time.Millisecond
}

func (c *slotConfig) ReelStagger() time.Duration {
	return time.Duration(c.doc.Animation.ReelStaggerMs) * time.Millisecond
}

func (c *slotConfig) CellHeight() int { return c.doc.Animation.CellHeight }
