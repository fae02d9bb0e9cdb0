package model

import "fmt"

// GeometryKind - тип линии сканирования
type GeometryKind string

const (
	Horizontal   GeometryKind = "horizontal"
	DiagonalDown GeometryKind = "diagonal_tl_br" // из левого верхнего в правый нижний
	DiagonalUp   GeometryKind = "diagonal_tr_bl" // из правого верхнего в левый нижний
	Vertical     GeometryKind = "vertical"
)

// LineGeometry - линия на поле. Index - номер строки для Horizontal и номер барабана для Vertical
type LineGeometry struct {
	Kind  GeometryKind
	Index int
}

func HorizontalLine(row int) LineGeometry {
	return LineGeometry{Kind: Horizontal, Index: row}
}

func VerticalLine(reel int) LineGeometry {
	return LineGeometry{Kind: Vertical, Index: reel}
}

// Cells возвращает ячейки линии в порядке слева направо (для вертикали - сверху вниз).
// Для неквадратного поля строка диагонали на барабане c равна c*(rows-1)/(reels-1)
func (l LineGeometry) Cells(reels, rows int) []Cell {
	switch l.Kind {
	case Horizontal:
		cells := make([]Cell, reels)
		for c := 0; c < reels; c++ {
			cells[c] = Cell{Reel: c, Row: l.Index}
		}
		return cells
	case Vertical:
		cells := make([]Cell, rows)
		for r := 0; r < rows; r++ {
			cells[r] = Cell{Reel: l.Index, Row: r}
		}
		return cells
	case DiagonalDown, DiagonalUp:
		cells := make([]Cell, reels)
		for c := 0; c < reels; c++ {
			row := diagonalRow(c, reels, rows)
			if l.Kind == DiagonalUp {
				row = diagonalRow(reels-1-c, reels, rows)
			}
			cells[c] = Cell{Reel: c, Row: row}
		}
		return cells
	}
	return nil
}

func diagonalRow(reel, reels, rows int) int {
	if reels <= 1 {
		return 0
	}
	return reel * (rows - 1) / (reels - 1)
}

// String - описание линии для клиента
func (l LineGeometry) String() string {
	switch l.Kind {
	case Horizontal:
		return fmt.Sprintf("row %d", l.Index+1)
	case Vertical:
		return fmt.Sprintf("reel %d", l.Index+1)
	case DiagonalDown:
		return "diagonal top-left to bottom-right"
	case DiagonalUp:
		return "diagonal top-right to bottom-left"
	}
	return string(l.Kind)
}
