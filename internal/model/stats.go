package model

import "github.com/shopspring/decimal"

// Stats - сводка по рассчитанным ходам
type Stats struct {
	TotalSpins  int64 // Сколько ходов рассчитано (включая розыгрыши второго шанса)
	PaidSpins   int64 // Сколько ходов со списанием ставки
	TotalBet    int64
	TotalPayout int64

	CurrentRTP decimal.Decimal // TotalPayout / TotalBet * 100
	WindowRTP  decimal.Decimal // RTP по последним WindowSize ходам
	WindowSize int

	Outcomes      map[OutcomeKind]int64
	JackpotHits   int64
	BonusTriggers int64
}
