package stats_repo_test

import (
	"slot_backend/internal/model"
	"slot_backend/internal/repository/stats_repo"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRecord(t *testing.T) {
	r := stats_repo.NewStatsRepository(0)

	r.Record(model.SpinResult{OutcomeKind: model.OutcomeNoWin, Bet: 100})
	r.Record(model.SpinResult{OutcomeKind: model.OutcomeSecondChance, Bet: 100, IsSecondChancePending: true})
	r.Record(model.SpinResult{OutcomeKind: model.OutcomeFullWin, Bet: 100, Amount: 150, IsSecondChanceResolve: true})
	r.Record(model.SpinResult{OutcomeKind: model.OutcomeBonus, Bet: 100})
	r.Record(model.SpinResult{OutcomeKind: model.OutcomeFullWin, Bet: 100, Amount: 75, IsFreeSpin: true, JackpotHit: true})

	s := r.Stats()
	if s.TotalSpins != 5 || s.PaidSpins != 3 {
		t.Errorf("spins = %d/%d, want 5/3", s.TotalSpins, s.PaidSpins)
	}
	if s.TotalBet != 300 || s.TotalPayout != 225 {
		t.Errorf("bet/payout = %d/%d, want 300/225", s.TotalBet, s.TotalPayout)
	}
	if !s.CurrentRTP.Equal(decimal.NewFromInt(75)) {
		t.Errorf("CurrentRTP = %s, want 75", s.CurrentRTP)
	}
	if s.Outcomes[model.OutcomeFullWin] != 2 || s.JackpotHits != 1 || s.BonusTriggers != 1 {
		t.Errorf("counters = %+v", s)
	}
	if s.WindowSize != 500 {
		t.Errorf("WindowSize = %d, want default 500", s.WindowSize)
	}
}

func TestWindowRTP(t *testing.T) {
	r := stats_repo.NewStatsRepository(2)

	r.Record(model.SpinResult{Bet: 100, Amount: 1000})
	r.Record(model.SpinResult{Bet: 100})
	r.Record(model.SpinResult{Bet: 100, Amount: 50})

	s := r.Stats()
	if !s.WindowRTP.Equal(decimal.NewFromInt(25)) {
		t.Errorf("WindowRTP = %s, want 25", s.WindowRTP)
	}
	if !s.CurrentRTP.Equal(decimal.NewFromInt(350)) {
		t.Errorf("CurrentRTP = %s, want 350", s.CurrentRTP)
	}
}

func TestEmptyStats(t *testing.T) {
	s := stats_repo.NewStatsRepository(10).Stats()
	if !s.CurrentRTP.IsZero() || !s.WindowRTP.IsZero() {
		t.Errorf("RTP on empty repo = %s/%s", s.CurrentRTP, s.WindowRTP)
	}
}

func TestConcurrentRecord(t *testing.T) {
	r := stats_repo.NewStatsRepository(50)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Record(model.SpinResult{Bet: 10, Amount: 5})
				_ = r.Stats()
			}
		}()
	}
	wg.Wait()

	if s := r.Stats(); s.TotalSpins != 800 || s.TotalBet != 8000 {
		t.Errorf("totals = %d/%d, want 800/8000", s.TotalSpins, s.TotalBet)
	}
}
