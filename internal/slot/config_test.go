package slot_test

import (
	"slot_backend/internal/model"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

func TestConfigValidate(t *testing.T) {
	if err := testConfig().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	cfg := testConfig()
	cfg.BetSteps = []int64{50, 100}
	cfg.JackpotRate = decimal.NewFromInt(2)
	cfg.Paylines = append(cfg.Paylines, model.Payline{Combination: []string{"A", "Z"}, Multiplier: decimal.Zero})
	cfg.BonusSymbolID = "W"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil")
	}

	errs := multierr.Errors(err)
	for _, want := range []string{
		"min bet 10 is not among bet steps",
		"jackpot rate 2 is out of [0, 1]",
		"combination has 2 symbols, want 5",
		`unknown symbol "Z"`,
		"multiplier must be positive",
		`free spin symbol "W"`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
	if len(errs) < 6 {
		t.Errorf("got %d errors, want every problem reported", len(errs))
	}
}

func TestLedgerSettings(t *testing.T) {
	cfg := testConfig()
	s := cfg.LedgerSettings()

	if s.InitialBalance != 1000 || s.InitialJackpot != 5000 || s.MinBet != 10 || s.FreeSpinMultiplier != 3 {
		t.Errorf("LedgerSettings() = %+v", s)
	}
	s.BetSteps[0] = 999
	if cfg.BetSteps[0] != 10 {
		t.Error("bet steps are shared with the config")
	}
}
