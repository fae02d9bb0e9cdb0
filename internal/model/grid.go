package model

// Symbol - символ барабана. Идентичность определяется только ID
type Symbol struct {
	ID       string
	Glyph    string
	PayValue int
}

// Grid - игровое поле, индексируется как [барабан][строка]
type Grid [][]Symbol

// NewGrid создает пустое поле reels x rows
func NewGrid(reels, rows int) Grid {
	g := make(Grid, reels)
	for r := range g {
		g[r] = make([]Symbol, rows)
	}
	return g
}

func (g Grid) Reels() int {
	return len(g)
}

func (g Grid) Rows() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At возвращает символ в ячейке
func (g Grid) At(reel, row int) Symbol {
	return g[reel][row]
}

// Complete - все ячейки заполнены (у каждой ячейки есть ID)
func (g Grid) Complete() bool {
	if len(g) == 0 {
		return false
	}
	rows := len(g[0])
	for _, reel := range g {
		if len(reel) != rows || rows == 0 {
			return false
		}
		for _, s := range reel {
			if s.ID == "" {
				return false
			}
		}
	}
	return true
}

// Clone возвращает глубокую копию поля
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = append([]Symbol(nil), g[r]...)
	}
	return out
}

// IDs - матрица ID символов для отдачи клиенту
func (g Grid) IDs() [][]string {
	out := make([][]string, len(g))
	for r, reel := range g {
		out[r] = make([]string, len(reel))
		for i, s := range reel {
			out[r][i] = s.ID
		}
	}
	return out
}

// Cell - координата ячейки
type Cell struct {
	Reel int
	Row  int
}
