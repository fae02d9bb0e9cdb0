package slot_test

import (
	"slot_backend/internal/model"
	"slot_backend/internal/slot"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// S - бонусный символ, X - джекпот
const testIDs = "A B C D E F G H J K L M N P Q S X"

func testSymbols() []model.Symbol {
	ids := strings.Fields(testIDs)
	out := make([]model.Symbol, len(ids))
	for i, id := range ids {
		out[i] = model.Symbol{ID: id, Glyph: strings.ToLower(id), PayValue: i + 1}
	}
	return out
}

func line(id string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = id
	}
	return out
}

func testConfig() slot.Config {
	return slot.Config{
		Reels:           5,
		Rows:            3,
		Symbols:         testSymbols(),
		MinBet:          10,
		BetSteps:        []int64{10, 50, 100, 500},
		InitialBalance:  1000,
		InitialJackpot:  5000,
		JackpotRate:     decimal.RequireFromString("0.1"),
		ConsolationRate: decimal.RequireFromString("0.5"),
		ConsolationRun:  3,
		SecondChance:    true,
		Paylines: []model.Payline{
			{Combination: line("A", 5), Multiplier: decimal.NewFromInt(20)},
			{Combination: line("B", 5), Multiplier: decimal.NewFromInt(10)},
			{Combination: line("C", 5), Multiplier: decimal.RequireFromString("2.5")},
			{Combination: line("X", 5), IsJackpot: true},
		},
		BonusSymbolID:      "S",
		FreeSpinCount:      10,
		FreeSpinMultiplier: 3,
		RevealDuration:     time.Second,
		ReelStagger:        200 * time.Millisecond,
	}
}

// filler - поле без единой серии длиннее двух
var filler = []string{
	"A B C D E",
	"F G H J K",
	"L M N P Q",
}

// gridOf строит поле из строк вида "A B C D E", строки перечисляются сверху вниз
func gridOf(rows ...string) model.Grid {
	byID := make(map[string]model.Symbol)
	for _, s := range testSymbols() {
		byID[s.ID] = s
	}

	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = strings.Fields(row)
	}

	g := model.NewGrid(len(cells[0]), len(rows))
	for r := range cells {
		for c, id := range cells[r] {
			g[c][r] = byID[id]
		}
	}
	return g
}

// with заменяет строку row в filler
func with(row int, ids string) model.Grid {
	rows := append([]string(nil), filler...)
	rows[row] = ids
	return gridOf(rows...)
}

// queueRNG отдает заранее записанные значения, после их окончания - 0
type queueRNG struct {
	vals []int
}

func (q *queueRNG) IntN(n int) int {
	if len(q.vals) == 0 {
		return 0
	}
	v := q.vals[0]
	q.vals = q.vals[1:]
	return v % n
}

// push записывает значения, при которых генератор выдаст указанные барабаны поля
func (q *queueRNG) push(g model.Grid, columns ...int) {
	index := make(map[string]int)
	for i, s := range testSymbols() {
		index[s.ID] = i
	}
	if len(columns) == 0 {
		for c := range g {
			columns = append(columns, c)
		}
	}
	for _, c := range columns {
		for _, s := range g[c] {
			q.vals = append(q.vals, index[s.ID])
		}
	}
}

// immediateTimer рассчитывает ход сразу
type immediateTimer struct{}

func (immediateTimer) AfterFunc(_ time.Duration, f func()) { f() }

// manualTimer рассчитывает ход по вызову fire
type manualTimer struct {
	delays []time.Duration
	fns    []func()
}

func (m *manualTimer) AfterFunc(d time.Duration, f func()) {
	m.delays = append(m.delays, d)
	m.fns = append(m.fns, f)
}

func (m *manualTimer) fire() {
	f := m.fns[0]
	m.fns = m.fns[1:]
	f()
}
