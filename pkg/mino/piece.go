package mino

import (
	"fmt"
)

const (
	Rotation0 = 0
	RotationR = 1
	Rotation2 = 2
	RotationL = 3

	RotationStates = 4
)

// Piece is a tetromino placed at an anchor on the board. Pieces are values;
// the game copies them instead of sharing pointers.
type Piece struct {
	Point
	Kind     Kind
	Rotation int
}

// NewPiece returns a piece of kind k at the origin in its spawn orientation.
func NewPiece(k Kind) Piece {
	return Piece{Kind: k}
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@%s/%d", p.Kind, p.Point, p.Rotation)
}

// Offsets returns the block offsets for the piece's current rotation.
func (p Piece) Offsets() [4]Point {
	return Blocks(p.Kind, p.Rotation)
}

// Cells returns the absolute board cells covered by the piece.
func (p Piece) Cells() [4]Point {
	cells := p.Offsets()
	for i := range cells {
		cells[i] = cells[i].Add(p.Point)
	}

	return cells
}

// Moved returns a copy of p translated by (dx, dy).
func (p Piece) Moved(dx int, dy int) Piece {
	p.X += dx
	p.Y += dy

	return p
}

// Rotated returns a copy of p turned one state clockwise or counter-clockwise.
func (p Piece) Rotated(clockwise bool) Piece {
	if clockwise {
		p.Rotation = NormalizeRotation(p.Rotation + 1)
	} else {
		p.Rotation = NormalizeRotation(p.Rotation - 1)
	}

	return p
}
