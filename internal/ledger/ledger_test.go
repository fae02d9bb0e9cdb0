package ledger_test

import (
	"errors"
	"slot_backend/internal/ledger"
	"slot_backend/internal/model"
	"testing"

	"pgregory.net/rapid"
)

func testSettings() ledger.Settings {
	return ledger.Settings{
		InitialBalance:     1000,
		InitialJackpot:     5000,
		MinBet:             10,
		BetSteps:           []int64{10, 50, 100, 500},
		FreeSpinMultiplier: 3,
	}
}

func TestNew(t *testing.T) {
	l := ledger.New(testSettings())

	want := model.LedgerState{Balance: 1000, Bet: 10, Jackpot: 5000, SpinMultiplier: 1}
	if got := l.Snapshot(); got != want {
		t.Fatalf("Snapshot() = %+v, want %+v", got, want)
	}
}

func TestDeductStake(t *testing.T) {
	tests := []struct {
		name        string
		freeSpins   int
		amount      int64
		wantBalance int64
		wantErr     error
	}{
		{"paid spin", 0, 100, 900, nil},
		{"whole balance", 0, 1000, 0, nil},
		{"insufficient funds", 0, 1001, 1000, model.ErrInsufficientFunds},
		{"negative amount", 0, -1, 1000, model.ErrInvalidAmount},
		{"free spin takes no stake", 2, 5000, 1000, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ledger.New(testSettings())
			l.GrantFreeSpins(tt.freeSpins)

			err := l.DeductStake(tt.amount)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DeductStake(%d) error = %v, want %v", tt.amount, err, tt.wantErr)
			}
			if l.Balance() != tt.wantBalance {
				t.Errorf("balance = %d, want %d", l.Balance(), tt.wantBalance)
			}
		})
	}
}

func TestJackpot(t *testing.T) {
	l := ledger.New(testSettings())

	if err := l.ContributeToJackpot(250); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Jackpot() != 5250 {
		t.Fatalf("jackpot = %d, want 5250", l.Jackpot())
	}
	if err := l.ContributeToJackpot(-1); !errors.Is(err, model.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	l.ResetJackpot()
	if l.Jackpot() != 5000 {
		t.Errorf("jackpot after reset = %d, want 5000", l.Jackpot())
	}
}

func TestFreeSpins(t *testing.T) {
	l := ledger.New(testSettings())

	l.GrantFreeSpins(2)
	if l.FreeSpinsRemaining() != 2 || l.SpinMultiplier() != 3 {
		t.Fatalf("after grant: spins=%d multiplier=%d", l.FreeSpinsRemaining(), l.SpinMultiplier())
	}

	l.ConsumeFreeSpin()
	if l.FreeSpinsRemaining() != 1 || l.SpinMultiplier() != 3 {
		t.Fatalf("after first consume: spins=%d multiplier=%d", l.FreeSpinsRemaining(), l.SpinMultiplier())
	}

	l.ConsumeFreeSpin()
	l.ConsumeFreeSpin()
	if l.FreeSpinsRemaining() != 0 || l.SpinMultiplier() != 1 {
		t.Fatalf("after last consume: spins=%d multiplier=%d", l.FreeSpinsRemaining(), l.SpinMultiplier())
	}

	l.GrantFreeSpins(4)
	l.GrantFreeSpins(0)
	if l.FreeSpinsRemaining() != 0 || l.SpinMultiplier() != 1 {
		t.Errorf("grant(0): spins=%d multiplier=%d", l.FreeSpinsRemaining(), l.SpinMultiplier())
	}
}

func TestSetBet(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		wantBet int64
		wantErr bool
	}{
		{"configured step", 100, 100, false},
		{"not a step", 70, 10, true},
		{"step above balance", 500, 10, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSettings()
			s.InitialBalance = 300
			l := ledger.New(s)

			err := l.SetBet(tt.amount)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetBet(%d) error = %v, wantErr %v", tt.amount, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, model.ErrInvalidBetSelection) {
				t.Errorf("unexpected error kind: %v", err)
			}
			if l.Bet() != tt.wantBet {
				t.Errorf("bet = %d, want %d", l.Bet(), tt.wantBet)
			}
		})
	}
}

func TestFailedOperationsLeaveLedgerUnchanged(t *testing.T) {
	l := ledger.New(testSettings())
	before := l.Snapshot()

	_ = l.DeductStake(1_000_000)
	_ = l.Credit(-5)
	_ = l.ContributeToJackpot(-5)
	_ = l.SetBet(7)

	if after := l.Snapshot(); after != before {
		t.Errorf("ledger changed after failed operations: %+v -> %+v", before, after)
	}
}

func TestBalanceNeverNegativeProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := ledger.New(testSettings())

		ops := rapid.IntRange(1, 200).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			amount := rapid.Int64Range(0, 2000).Draw(t, "amount")
			switch rapid.IntRange(0, 4).Draw(t, "op") {
			case 0:
				_ = l.DeductStake(amount)
			case 1:
				_ = l.Credit(amount)
			case 2:
				l.GrantFreeSpins(rapid.IntRange(0, 5).Draw(t, "spins"))
			case 3:
				l.ConsumeFreeSpin()
			case 4:
				_ = l.SetBet(amount)
			}

			if l.Balance() < 0 {
				t.Fatalf("balance went negative: %d", l.Balance())
			}
			if l.FreeSpinsRemaining() < 0 {
				t.Fatalf("free spins went negative: %d", l.FreeSpinsRemaining())
			}
			if l.SpinMultiplier() > 1 && l.FreeSpinsRemaining() == 0 {
				t.Fatalf("multiplier %d without free spins", l.SpinMultiplier())
			}
		}
	})
}
