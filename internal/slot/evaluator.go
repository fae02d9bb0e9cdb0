package slot

import (
	"fmt"
	"slices"
	"slot_backend/internal/model"
	"strings"

	"github.com/shopspring/decimal"
)

// EvalInput - данные хода, нужные для оценки поля
type EvalInput struct {
	Bet        int64
	Jackpot    int64
	IsFreeSpin bool
	Multiplier int
}

// Evaluator классифицирует поле. Чистая функция: счет не меняет.
//
// Порядок проверок фиксирован, срабатывает первая подходящая:
//  1. бонус - полная линия из бонусного символа, первая найденная;
//  2. полные линии - выплаты всех совпавших линий суммируются;
//  3. второй шанс - серии длины N-1 у края, собираются все линии, край выбирается один;
//  4. утешительный приз - первая найденная короткая серия.
type Evaluator struct {
	cfg Config
}

func NewEvaluator(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Evaluate оценивает только что выпавшее поле
func (e *Evaluator) Evaluate(grid model.Grid, in EvalInput) model.Outcome {
	if !grid.Complete() {
		return noWin("incomplete grid")
	}

	if out, ok := e.bonusScan(grid, e.bonusLines(grid)); ok {
		return out
	}

	lines := winLines(grid)
	if out, ok := e.fullLineScan(grid, lines, in); ok {
		return out
	}

	if e.cfg.SecondChance {
		if out, ok := e.secondChanceScan(grid, lines); ok {
			return out
		}
	}

	if out, ok := e.consolationScan(grid, lines, in); ok {
		return out
	}

	return noWin("no win")
}

// Resolve оценивает поле после повторного вращения. Проверяются только бонус и полные линии,
// и только на линиях, которые дали второй шанс
func (e *Evaluator) Resolve(grid model.Grid, in EvalInput, pending model.Outcome) model.Outcome {
	if !grid.Complete() {
		return noWin("incomplete grid")
	}

	if out, ok := e.bonusScan(grid, pending.Lines); ok {
		return out
	}
	if out, ok := e.fullLineScan(grid, pending.Lines, in); ok {
		return out
	}
	return noWin("second chance missed")
}

// bonusLines - строки сверху вниз, обе диагонали, затем вертикали (если барабанов достаточно)
func (e *Evaluator) bonusLines(grid model.Grid) []model.LineGeometry {
	lines := winLines(grid)
	if grid.Reels() >= verticalBonusMinReels {
		for c := 0; c < grid.Reels(); c++ {
			lines = append(lines, model.VerticalLine(c))
		}
	}
	return lines
}

// winLines - строки сверху вниз, затем обе диагонали
func winLines(grid model.Grid) []model.LineGeometry {
	lines := make([]model.LineGeometry, 0, grid.Rows()+2)
	for r := 0; r < grid.Rows(); r++ {
		lines = append(lines, model.HorizontalLine(r))
	}
	return append(lines,
		model.LineGeometry{Kind: model.DiagonalDown},
		model.LineGeometry{Kind: model.DiagonalUp},
	)
}

func (e *Evaluator) bonusScan(grid model.Grid, lines []model.LineGeometry) (model.Outcome, bool) {
	for _, line := range lines {
		cells := line.Cells(grid.Reels(), grid.Rows())
		ids := cellIDs(grid, cells)
		if !uniform(ids) || ids[0] != e.cfg.BonusSymbolID {
			continue
		}
		return model.Outcome{
			Kind:         model.OutcomeBonus,
			Description:  fmt.Sprintf("Free spins x%d: bonus line on %s", e.cfg.FreeSpinCount, line),
			Lines:        []model.LineGeometry{line},
			MatchedCells: cells,
		}, true
	}
	return model.Outcome{}, false
}

// fullLineScan суммирует выплаты по всем полностью совпавшим линиям.
// Джекпот выплачивается один раз, даже если совпало несколько джекпот-линий
func (e *Evaluator) fullLineScan(grid model.Grid, lines []model.LineGeometry, in EvalInput) (model.Outcome, bool) {
	var (
		total      = decimal.Zero
		jackpotHit bool
		matched    []model.LineGeometry
		cells      []model.Cell
		parts      []string
	)

	bet := decimal.NewFromInt(in.Bet)
	for _, line := range lines {
		lineCells := line.Cells(grid.Reels(), grid.Rows())
		ids := cellIDs(grid, lineCells)
		if len(ids) != grid.Reels() || !uniform(ids) {
			continue
		}
		p, ok := e.payline(ids)
		if !ok {
			continue
		}

		matched = append(matched, line)
		cells = append(cells, lineCells...)

		if p.IsJackpot {
			jackpotHit = true
			parts = append(parts, fmt.Sprintf("JACKPOT on %s", line))
			continue
		}

		amount := p.Multiplier.Mul(bet)
		if in.IsFreeSpin && in.Multiplier > 1 {
			amount = amount.Mul(decimal.NewFromInt(int64(in.Multiplier)))
		}
		total = total.Add(amount)
		parts = append(parts, fmt.Sprintf("%s x%s", line, p.Multiplier))
	}

	if len(matched) == 0 {
		return model.Outcome{}, false
	}

	amount := e.applyMaxPayout(total.Floor().IntPart(), in.Bet)
	if jackpotHit {
		amount += in.Jackpot
	}

	desc := "Full line: " + strings.Join(parts, "; ")
	if in.IsFreeSpin && in.Multiplier > 1 {
		desc += fmt.Sprintf(" (free spin x%d)", in.Multiplier)
	}

	return model.Outcome{
		Kind:         model.OutcomeFullWin,
		Amount:       amount,
		Description:  desc,
		Lines:        matched,
		MatchedCells: cells,
		JackpotHit:   jackpotHit,
	}, true
}

// secondChanceScan ищет серии длины N-1 у левого или правого края.
// Для линии край "left", если совпала ведущая группа, иначе "right".
// Общий край выбирается большинством, при равенстве - по первой найденной линии
func (e *Evaluator) secondChanceScan(grid model.Grid, lines []model.LineGeometry) (model.Outcome, bool) {
	reels := grid.Reels()
	threshold := reels - 1

	var (
		matched     []model.LineGeometry
		rows        []int
		cells       []model.Cell
		first       model.AnchorSide
		left, right int
	)

	for _, line := range lines {
		lineCells := line.Cells(reels, grid.Rows())
		ids := cellIDs(grid, lineCells)

		var side model.AnchorSide
		var run []model.Cell
		switch {
		case uniform(ids[:threshold]):
			side, run = model.AnchorLeft, lineCells[:threshold]
			left++
		case uniform(ids[reels-threshold:]):
			side, run = model.AnchorRight, lineCells[reels-threshold:]
			right++
		default:
			continue
		}

		if first == model.AnchorNone {
			first = side
		}
		matched = append(matched, line)
		cells = append(cells, run...)
		if line.Kind == model.Horizontal {
			rows = append(rows, line.Index)
		}
	}

	if len(matched) == 0 {
		return model.Outcome{}, false
	}

	anchor := first
	switch {
	case left > right:
		anchor = model.AnchorLeft
	case right > left:
		anchor = model.AnchorRight
	}

	return model.Outcome{
		Kind:         model.OutcomeSecondChance,
		Description:  fmt.Sprintf("Second chance: %d line(s) one symbol short, anchored %s", len(matched), anchor),
		Lines:        matched,
		MatchedRows:  rows,
		MatchedCells: cells,
		Anchor:       anchor,
	}, true
}

// consolationScan - первая линия с непрерывной серией не короче ConsolationRun
func (e *Evaluator) consolationScan(grid model.Grid, lines []model.LineGeometry, in EvalInput) (model.Outcome, bool) {
	minRun := e.cfg.consolationRun()
	for _, line := range lines {
		lineCells := line.Cells(grid.Reels(), grid.Rows())
		ids := cellIDs(grid, lineCells)

		start, length := longestRun(ids)
		if length < minRun || length >= len(ids) {
			continue
		}

		amount := decimal.NewFromInt(in.Bet).Mul(e.cfg.ConsolationRate).Floor().IntPart()
		return model.Outcome{
			Kind:         model.OutcomeConsolation,
			Amount:       amount,
			Description:  fmt.Sprintf("Consolation: %d of %d on %s", length, len(ids), line),
			Lines:        []model.LineGeometry{line},
			MatchedCells: slices.Clone(lineCells[start : start+length]),
		}, true
	}
	return model.Outcome{}, false
}

// payline ищет линию конфигурации, комбинация которой совпадает с ids
func (e *Evaluator) payline(ids []string) (model.Payline, bool) {
	for _, p := range e.cfg.Paylines {
		if slices.Equal(p.Combination, ids) {
			return p, true
		}
	}
	return model.Payline{}, false
}

// applyMaxPayout применяет лимит по максимальному выигрышу
func (e *Evaluator) applyMaxPayout(amount, bet int64) int64 {
	if e.cfg.MaxPayoutMultiplier <= 0 {
		return amount
	}
	return min(amount, e.cfg.MaxPayoutMultiplier*bet)
}

// OppositeColumns - барабаны, которые перекручиваются при втором шансе:
// все, что не покрыты серией N-1 со стороны anchor
func OppositeColumns(anchor model.AnchorSide, reels int) []int {
	threshold := reels - 1
	var cols []int
	if anchor == model.AnchorRight {
		for c := 0; c < reels-threshold; c++ {
			cols = append(cols, c)
		}
		return cols
	}
	for c := threshold; c < reels; c++ {
		cols = append(cols, c)
	}
	return cols
}

func noWin(desc string) model.Outcome {
	return model.Outcome{Kind: model.OutcomeNoWin, Description: desc}
}

func cellIDs(grid model.Grid, cells []model.Cell) []string {
	ids := make([]string, len(cells))
	for i, c := range cells {
		ids[i] = grid.At(c.Reel, c.Row).ID
	}
	return ids
}

func uniform(ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids[1:] {
		if id != ids[0] {
			return false
		}
	}
	return true
}

// longestRun возвращает начало и длину самой длинной серии одинаковых ID (первой при равенстве)
func longestRun(ids []string) (start, length int) {
	for i := 0; i < len(ids); {
		j := i + 1
		for j < len(ids) && ids[j] == ids[i] {
			j++
		}
		if j-i > length {
			start, length = i, j-i
		}
		i = j
	}
	return start, length
}
