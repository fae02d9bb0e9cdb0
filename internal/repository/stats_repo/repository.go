package stats_repo

import (
	"maps"
	"slot_backend/internal/model"
	"sync"

	"github.com/shopspring/decimal"
)

const (
	// defaultWindowSize Размер окна последних ходов для RTP
	defaultWindowSize = 500
	rtpPrecision      = 2
)

var hundred = decimal.NewFromInt(100)

// windowEntry - ход в окне
type windowEntry struct {
	bet    int64
	payout int64
}

// StatsRepo хранит статистику в памяти. Только наблюдение, на выплаты не влияет
type StatsRepo struct {
	mtx sync.RWMutex

	totalSpins  int64
	paidSpins   int64
	totalBet    int64
	totalPayout int64
	outcomes    map[model.OutcomeKind]int64
	jackpotHits int64
	bonuses     int64

	window     []windowEntry
	windowSize int
	windowBet  int64
	windowPay  int64
}

// NewStatsRepository - windowSize <= 0 заменяется значением по умолчанию
func NewStatsRepository(windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StatsRepo{
		outcomes:   make(map[model.OutcomeKind]int64),
		window:     make([]windowEntry, 0, windowSize),
		windowSize: windowSize,
	}
}

// Record учитывает рассчитанный ход. Ставка считается только там, где она списывалась:
// не во фриспине и не при розыгрыше второго шанса
func (r *StatsRepo) Record(res model.SpinResult) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	var bet int64
	if !res.IsFreeSpin && !res.IsSecondChanceResolve {
		bet = res.Bet
		r.paidSpins++
	}

	r.totalSpins++
	r.totalBet += bet
	r.totalPayout += res.Amount
	r.outcomes[res.OutcomeKind]++
	if res.JackpotHit {
		r.jackpotHits++
	}
	if res.OutcomeKind == model.OutcomeBonus {
		r.bonuses++
	}

	// Поддерживаем размер окна и суммы по нему
	r.window = append(r.window, windowEntry{bet: bet, payout: res.Amount})
	r.windowBet += bet
	r.windowPay += res.Amount
	if len(r.window) > r.windowSize {
		old := r.window[0]
		r.window = r.window[1:]
		r.windowBet -= old.bet
		r.windowPay -= old.payout
	}
}

// Stats возвращает копию текущей сводки
func (r *StatsRepo) Stats() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return model.Stats{
		TotalSpins:    r.totalSpins,
		PaidSpins:     r.paidSpins,
		TotalBet:      r.totalBet,
		TotalPayout:   r.totalPayout,
		CurrentRTP:    rtp(r.totalPayout, r.totalBet),
		WindowRTP:     rtp(r.windowPay, r.windowBet),
		WindowSize:    r.windowSize,
		Outcomes:      maps.Clone(r.outcomes),
		JackpotHits:   r.jackpotHits,
		BonusTriggers: r.bonuses,
	}
}

func rtp(payout, bet int64) decimal.Decimal {
	if bet == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(payout).Mul(hundred).Div(decimal.NewFromInt(bet)).Round(rtpPrecision)
}
