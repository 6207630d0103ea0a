package mino

import (
	"strings"
)

// Board is the playfield of locked cells. Row 0 is the top row. Its size is
// fixed at construction.
type Board struct {
	W int // Width
	H int // Height

	cells [][]Kind
}

func NewBoard(w int, h int) *Board {
	b := &Board{W: w, H: h, cells: make([][]Kind, h)}
	for y := range b.cells {
		b.cells[y] = make([]Kind, w)
	}

	return b
}

func (b *Board) inBounds(x int, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// IsValidPosition reports whether every block of p is inside the board and
// over an empty cell.
func (b *Board) IsValidPosition(p Piece) bool {
	for _, c := range p.Cells() {
		if !b.inBounds(c.X, c.Y) {
			return false
		}

		if b.cells[c.Y][c.X] != KindNone {
			return false
		}
	}

	return true
}

// Lock writes p into the board. The caller must have validated the position.
func (b *Board) Lock(p Piece) {
	for _, c := range p.Cells() {
		b.cells[c.Y][c.X] = p.Kind
	}
}

func (b *Board) LineFilled(y int) bool {
	for x := 0; x < b.W; x++ {
		if b.cells[y][x] == KindNone {
			return false
		}
	}

	return true
}

// FullLines returns the indexes of every filled row, top to bottom.
func (b *Board) FullLines() []int {
	var lines []int
	for y := 0; y < b.H; y++ {
		if b.LineFilled(y) {
			lines = append(lines, y)
		}
	}

	return lines
}

// ClearLines removes filled rows scanning from the bottom, shifting the rows
// above down and inserting empty rows at the top. Row 0 is never tested.
func (b *Board) ClearLines() int {
	cleared := 0

	y := b.H - 1
	for y > 0 {
		if !b.LineFilled(y) {
			y--
			continue
		}

		copy(b.cells[1:y+1], b.cells[:y])
		b.cells[0] = make([]Kind, b.W)

		cleared++
	}

	return cleared
}

// Cell returns the kind locked at (x, y), or KindNone when empty or out of
// bounds.
func (b *Board) Cell(x int, y int) Kind {
	if !b.inBounds(x, y) {
		return KindNone
	}

	return b.cells[y][x]
}

// SetCell overwrites a single cell. It reports false when out of bounds.
func (b *Board) SetCell(x int, y int, k Kind) bool {
	if !b.inBounds(x, y) {
		return false
	}

	b.cells[y][x] = k
	return true
}

// Rows returns a copy of the grid.
func (b *Board) Rows() [][]Kind {
	rows := make([][]Kind, b.H)
	for y := range b.cells {
		rows[y] = make([]Kind, b.W)
		copy(rows[y], b.cells[y])
	}

	return rows
}

func (b *Board) Clear() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x] = KindNone
		}
	}
}

// Render draws the board top to bottom using the kind letters.
func (b *Board) Render() string {
	var s strings.Builder

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if k := b.cells[y][x]; k == KindNone {
				s.WriteRune('.')
			} else {
				s.WriteString(k.String())
			}
		}

		if y < b.H-1 {
			s.WriteRune('\n')
		}
	}

	return s.String()
}
