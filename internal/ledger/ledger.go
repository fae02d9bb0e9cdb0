// Package ledger - счет игровой сессии: баланс, ставка, пул джекпота и фриспины.
// Операция либо применяется целиком, либо возвращает ошибку и не меняет счет.
// Счет не потокобезопасен, доступ сериализует секвенсор
package ledger

import (
	"fmt"
	"slices"
	"slot_backend/internal/model"
)

// Settings - параметры из конфигурации, нужные счету
type Settings struct {
	InitialBalance     int64
	InitialJackpot     int64
	MinBet             int64
	BetSteps           []int64
	FreeSpinMultiplier int
}

type Ledger struct {
	settings Settings

	balance    int64
	bet        int64
	jackpot    int64
	freeSpins  int
	multiplier int
}

// New создает счет сессии с начальным балансом и джекпотом из конфигурации
func New(s Settings) *Ledger {
	return &Ledger{
		settings:   s,
		balance:    s.InitialBalance,
		bet:        s.MinBet,
		jackpot:    s.InitialJackpot,
		multiplier: 1,
	}
}

func (l *Ledger) Balance() int64 { return l.balance }

func (l *Ledger) Bet() int64 { return l.bet }

func (l *Ledger) Jackpot() int64 { return l.jackpot }

func (l *Ledger) FreeSpinsRemaining() int { return l.freeSpins }

func (l *Ledger) SpinMultiplier() int { return l.multiplier }

// FreeSpinActive - есть неизрасходованные фриспины
func (l *Ledger) FreeSpinActive() bool { return l.freeSpins > 0 }

// Snapshot возвращает копию состояния счета
func (l *Ledger) Snapshot() model.LedgerState {
	return model.LedgerState{
		Balance:            l.balance,
		Bet:                l.bet,
		Jackpot:            l.jackpot,
		FreeSpinsRemaining: l.freeSpins,
		SpinMultiplier:     l.multiplier,
	}
}

// DeductStake списывает ставку. Во время фриспинов ставка не списывается
func (l *Ledger) DeductStake(amount int64) error {
	if amount < 0 {
		return model.ErrInvalidAmount
	}
	if l.FreeSpinActive() {
		return nil
	}
	if amount > l.balance {
		return fmt.Errorf("stake %d, balance %d: %w", amount, l.balance, model.ErrInsufficientFunds)
	}
	l.balance -= amount
	return nil
}

// Credit начисляет выигрыш
func (l *Ledger) Credit(amount int64) error {
	if amount < 0 {
		return model.ErrInvalidAmount
	}
	l.balance += amount
	return nil
}

// ContributeToJackpot пополняет пул джекпота
func (l *Ledger) ContributeToJackpot(amount int64) error {
	if amount < 0 {
		return model.ErrInvalidAmount
	}
	l.jackpot += amount
	return nil
}

// ResetJackpot возвращает пул к начальному значению
func (l *Ledger) ResetJackpot() {
	l.jackpot = l.settings.InitialJackpot
}

// GrantFreeSpins устанавливает количество фриспинов (не прибавляет)
func (l *Ledger) GrantFreeSpins(count int) {
	if count <= 0 {
		l.freeSpins = 0
		l.multiplier = 1
		return
	}
	l.freeSpins = count
	l.multiplier = max(l.settings.FreeSpinMultiplier, 1)
}

// ConsumeFreeSpin уменьшает счетчик фриспинов, множитель сбрасывается на последнем
func (l *Ledger) ConsumeFreeSpin() {
	l.freeSpins = max(l.freeSpins-1, 0)
	if l.freeSpins == 0 {
		l.multiplier = 1
	}
}

// SetBet меняет ставку. Ставка должна быть одним из шагов конфигурации и не больше баланса
func (l *Ledger) SetBet(amount int64) error {
	if !slices.Contains(l.settings.BetSteps, amount) || amount > l.balance {
		return model.ErrInvalidBetSelection
	}
	l.bet = amount
	return nil
}
