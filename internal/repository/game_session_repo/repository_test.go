package game_session_repo_test

import (
	"errors"
	"slot_backend/internal/model"
	"slot_backend/internal/repository/game_session_repo"
	"slot_backend/internal/slot"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newSequencer() *slot.Sequencer {
	return slot.NewSequencer(slot.Config{
		Reels:              3,
		Rows:               3,
		Symbols:            []model.Symbol{{ID: "A"}, {ID: "B"}},
		MinBet:             10,
		BetSteps:           []int64{10},
		InitialBalance:     100,
		JackpotRate:        decimal.Zero,
		BonusSymbolID:      "B",
		FreeSpinCount:      3,
		FreeSpinMultiplier: 1,
	})
}

// clock - ручные часы для проверки срока жизни
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClock() *clock {
	return &clock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestSessionsAreIsolated(t *testing.T) {
	c := newClock()
	r := game_session_repo.NewGameSessionRepository(game_session_repo.WithClock(c.Now))
	r.Open("a", c.Now().Add(time.Hour))
	r.Open("b", c.Now().Add(time.Hour))

	a, err := r.GetOrCreate("a", newSequencer)
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.GetOrCreate("b", newSequencer)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatal("two sessions share a sequencer")
	}
	if again, _ := r.GetOrCreate("a", newSequencer); again != a {
		t.Error("GetOrCreate created a second sequencer for the same session")
	}

	if err := a.ActivateFreeSpins(); err != nil {
		t.Fatal(err)
	}
	if b.Snapshot().FreeSpinsRemaining != 0 {
		t.Error("free spins leaked into another session")
	}
	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}
}

func TestUnopenedSessionIsRejected(t *testing.T) {
	r := game_session_repo.NewGameSessionRepository()

	created := false
	_, err := r.GetOrCreate("ghost", func() *slot.Sequencer {
		created = true
		return newSequencer()
	})
	if !errors.Is(err, model.ErrSessionNotFound) {
		t.Fatalf("GetOrCreate() error = %v, want ErrSessionNotFound", err)
	}
	if created {
		t.Error("sequencer created for a session that was never opened")
	}
}

func TestDelete(t *testing.T) {
	c := newClock()
	r := game_session_repo.NewGameSessionRepository(game_session_repo.WithClock(c.Now))
	r.Open("a", c.Now().Add(time.Hour))
	if _, err := r.GetOrCreate("a", newSequencer); err != nil {
		t.Fatal(err)
	}

	r.Delete("a")
	if _, err := r.Get("a"); !errors.Is(err, model.ErrSessionNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrSessionNotFound", err)
	}
	if _, err := r.GetOrCreate("a", newSequencer); !errors.Is(err, model.ErrSessionNotFound) {
		t.Errorf("GetOrCreate() after Delete error = %v, want ErrSessionNotFound", err)
	}
	r.Delete("a")
}

func TestExpiredSessionIsEvicted(t *testing.T) {
	c := newClock()
	r := game_session_repo.NewGameSessionRepository(game_session_repo.WithClock(c.Now))
	r.Open("short", c.Now().Add(time.Minute))
	r.Open("long", c.Now().Add(time.Hour))
	r.Open("idle", c.Now().Add(time.Minute))
	for _, id := range []string{"short", "long"} {
		if _, err := r.GetOrCreate(id, newSequencer); err != nil {
			t.Fatal(err)
		}
	}

	c.Advance(2 * time.Minute)

	if _, err := r.Get("short"); !errors.Is(err, model.ErrSessionNotFound) {
		t.Errorf("Get() on expired session error = %v, want ErrSessionNotFound", err)
	}
	if n := r.Sweep(); n != 1 {
		t.Errorf("Sweep() = %d, want 1 (idle)", n)
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
	if _, err := r.Get("long"); err != nil {
		t.Errorf("Get() on live session error = %v", err)
	}
}

func TestGetOrCreateConcurrent(t *testing.T) {
	c := newClock()
	r := game_session_repo.NewGameSessionRepository(game_session_repo.WithClock(c.Now))
	r.Open("same", c.Now().Add(time.Hour))

	var created atomic.Int32
	create := func() *slot.Sequencer {
		created.Add(1)
		return newSequencer()
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.GetOrCreate("same", create)
		}()
	}
	wg.Wait()

	if created.Load() != 1 {
		t.Errorf("created %d sequencers, want 1", created.Load())
	}
}
