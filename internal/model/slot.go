package model

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Payline - выигрышная комбинация из конфигурации
type Payline struct {
	Combination []string
	Multiplier  decimal.Decimal
	IsJackpot   bool
}

// Equal сравнивает линии по значению
func (p Payline) Equal(o Payline) bool {
	return p.IsJackpot == o.IsJackpot &&
		p.Multiplier.Equal(o.Multiplier) &&
		slices.Equal(p.Combination, o.Combination)
}

// OutcomeKind - вариант результата оценки поля
type OutcomeKind string

const (
	OutcomeNoWin        OutcomeKind = "no_win"
	OutcomeFullWin      OutcomeKind = "full_win"
	OutcomeConsolation  OutcomeKind = "consolation"
	OutcomeSecondChance OutcomeKind = "second_chance"
	OutcomeBonus        OutcomeKind = "bonus"
)

// AnchorSide - край поля, к которому прижато совпадение длины N-1
type AnchorSide string

const (
	AnchorNone  AnchorSide = ""
	AnchorLeft  AnchorSide = "left"
	AnchorRight AnchorSide = "right"
)

// Outcome - результат оценки поля.
// Набор заполненных полей зависит от Kind:
//   - FullWin: Amount, Description, Lines, MatchedCells, JackpotHit
//   - Consolation: Amount, Description, Lines (одна линия), MatchedCells
//   - SecondChance: Lines, MatchedRows, Anchor
//   - Bonus: Lines (одна линия), MatchedCells
type Outcome struct {
	Kind         OutcomeKind
	Amount       int64
	Description  string
	Lines        []LineGeometry
	MatchedCells []Cell
	MatchedRows  []int
	Anchor       AnchorSide
	JackpotHit   bool
}

// LedgerState - снимок счета игрока
type LedgerState struct {
	Balance            int64
	Bet                int64
	Jackpot            int64
	FreeSpinsRemaining int
	SpinMultiplier     int
}

// SpinResult - запись о расчете хода, публикуется после каждого Settling
type SpinResult struct {
	SpinID                string
	OutcomeKind           OutcomeKind
	Amount                int64
	Description           string
	MatchedGeometry       []LineGeometry
	MatchedCells          []Cell
	IsSecondChancePending bool
	IsSecondChanceResolve bool
	IsFreeSpin            bool
	AwardedFreeSpins      int
	JackpotHit            bool
	Bet                   int64
	Grid                  Grid
	Ledger                LedgerState
}

// GameState - состояние игровой сессии для клиента
type GameState struct {
	Phase   string
	Ledger  LedgerState
	Pending *Outcome
}
