package slot

import (
	"math/rand"
	"slot_backend/internal/model"
)

// RNG - источник случайных чисел, подменяется в тестах
type RNG interface {
	// IntN возвращает случайное число в [0, n)
	IntN(n int) int
}

type stdRNG struct{}

func (stdRNG) IntN(n int) int { return rand.Intn(n) }

// Generator заполняет поле символами. Скрытого состояния нет, каждый вызов независим
type Generator struct {
	rng RNG
}

func NewGenerator(rng RNG) *Generator {
	if rng == nil {
		rng = stdRNG{}
	}
	return &Generator{rng: rng}
}

// Draw заполняет каждую ячейку независимо, равновероятно выбирая символ из population
func (g *Generator) Draw(reels, rows int, population []model.Symbol) model.Grid {
	grid := model.NewGrid(reels, rows)
	for r := 0; r < reels; r++ {
		g.fillReel(grid[r], population)
	}
	return grid
}

// DrawReplacement возвращает копию grid, в которой заново выпали только барабаны columns
func (g *Generator) DrawReplacement(grid model.Grid, columns []int, rows int, population []model.Symbol) model.Grid {
	out := grid.Clone()
	for _, c := range columns {
		if c < 0 || c >= len(out) {
			continue
		}
		out[c] = make([]model.Symbol, rows)
		g.fillReel(out[c], population)
	}
	return out
}

func (g *Generator) fillReel(reel []model.Symbol, population []model.Symbol) {
	for row := range reel {
		reel[row] = population[g.rng.IntN(len(population))]
	}
}
