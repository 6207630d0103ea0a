package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/termtris/pkg/mino"
)

const (
	cellWidth  = 2 // Columns per board cell, keeps cells roughly square
	panelWidth = 22

	blockSolid = '█'
	blockGhost = '░'
	blockEmpty = '·'
)

// View is the read-only game state the renderer draws.
type View interface {
	Cell(x, y int) mino.Kind
	CurrentPiece() (mino.Piece, bool)
	GhostPiece() (mino.Piece, bool)
	HeldPiece() (mino.Kind, bool)
	HoldAvailable() bool
	NextPieces() []mino.Kind
	Score() uint64
	Level() int
	LinesCleared() int
	LinesUntilNextLevel() int
	Combo() int
	BackToBack() bool
	PiecesPlaced() int
	Stats() map[mino.Kind]int
	GameOver() bool
	Paused() bool
	ShouldShowClearedRows() bool
	ClearingRows() []int
}

// DefStyle is the default style for tcell rendering
var DefStyle = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// drawCell fills one board cell, cellWidth columns wide
func drawCell(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	for i := 0; i < cellWidth; i++ {
		drawRune(s, x+i, y, style, r)
	}
}

// BoardSize returns the screen size of a w x h board including its border
func BoardSize(w, h int) (int, int) {
	return w*cellWidth + 2, h + 2
}

// Size returns the screen size of the whole game area
func Size(w, h int) (int, int) {
	bw, bh := BoardSize(w, h)
	return bw + 1 + panelWidth, bh
}

// DrawBoard draws the playfield with its border at (x, y)
func DrawBoard(s tcell.Screen, x, y, w, h int, v View, t Theme) {
	borderStyle := DefStyle.Foreground(t.Border)
	bw, bh := BoardSize(w, h)

	for i := 1; i < bw-1; i++ {
		drawRune(s, x+i, y, borderStyle, '─')
		drawRune(s, x+i, y+bh-1, borderStyle, '─')
	}
	for j := 1; j < bh-1; j++ {
		drawRune(s, x, y+j, borderStyle, '│')
		drawRune(s, x+bw-1, y+j, borderStyle, '│')
	}
	drawRune(s, x, y, borderStyle, '┌')
	drawRune(s, x+bw-1, y, borderStyle, '┐')
	drawRune(s, x, y+bh-1, borderStyle, '└')
	drawRune(s, x+bw-1, y+bh-1, borderStyle, '┘')

	clearing := make(map[int]bool)
	for _, row := range v.ClearingRows() {
		clearing[row] = true
	}
	showCleared := v.ShouldShowClearedRows()

	emptyStyle := DefStyle.Foreground(t.Empty)
	for by := 0; by < h; by++ {
		for bx := 0; bx < w; bx++ {
			sx, sy := x+1+bx*cellWidth, y+1+by

			k := v.Cell(bx, by)
			switch {
			case clearing[by] && showCleared:
				drawCell(s, sx, sy, DefStyle.Foreground(t.Flash), blockSolid)
			case clearing[by]:
				drawCell(s, sx, sy, emptyStyle, ' ')
			case k == mino.KindNone:
				drawRune(s, sx, sy, emptyStyle, blockEmpty)
				drawRune(s, sx+1, sy, emptyStyle, ' ')
			case v.GameOver():
				drawCell(s, sx, sy, DefStyle.Foreground(t.KindColor(k)), blockGhost)
			default:
				drawCell(s, sx, sy, DefStyle.Foreground(t.KindColor(k)), blockSolid)
			}
		}
	}

	if ghost, ok := v.GhostPiece(); ok && !v.GameOver() {
		drawPiece(s, x+1, y+1, ghost, DefStyle.Foreground(t.KindColor(ghost.Kind)), blockGhost, w, h)
	}

	if p, ok := v.CurrentPiece(); ok {
		drawPiece(s, x+1, y+1, p, DefStyle.Foreground(t.KindColor(p.Kind)), blockSolid, w, h)
	}
}

func drawPiece(s tcell.Screen, x, y int, p mino.Piece, style tcell.Style, r rune, w, h int) {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= w || c.Y < 0 || c.Y >= h {
			continue
		}

		drawCell(s, x+c.X*cellWidth, y+c.Y, style, r)
	}
}

// drawPreview draws a kind in its spawn orientation inside a 4x2 box
func drawPreview(s tcell.Screen, x, y int, k mino.Kind, style tcell.Style) {
	for j := 0; j < 2; j++ {
		drawText(s, x, y+j, DefStyle, "        ")
	}

	if !k.Valid() {
		return
	}

	for _, p := range mino.Blocks(k, mino.Rotation0) {
		if p.Y > 1 {
			continue
		}

		drawCell(s, x+p.X*cellWidth, y+p.Y, style, blockSolid)
	}
}

// DrawPanel draws hold, preview and score information at (x, y)
func DrawPanel(s tcell.Screen, x, y int, nickname string, v View, t Theme) {
	labelStyle := DefStyle.Foreground(t.Label)
	valueStyle := DefStyle.Foreground(t.Value)

	row := y
	drawText(s, x, row, valueStyle, nickname)
	row += 2

	holdLabel := "HOLD"
	if !v.HoldAvailable() {
		holdLabel = "HOLD (used)"
	}
	drawText(s, x, row, labelStyle, fmt.Sprintf("%-*s", panelWidth, holdLabel))
	row++
	if k, ok := v.HeldPiece(); ok {
		drawPreview(s, x, row, k, DefStyle.Foreground(t.KindColor(k)))
	} else {
		drawPreview(s, x, row, mino.KindNone, DefStyle)
	}
	row += 3

	drawText(s, x, row, labelStyle, "NEXT")
	row++
	for _, k := range v.NextPieces() {
		drawPreview(s, x, row, k, DefStyle.Foreground(t.KindColor(k)))
		row += 3
	}

	for _, line := range []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", v.Score())},
		{"LEVEL", fmt.Sprintf("%d", v.Level())},
		{"LINES", fmt.Sprintf("%d (%d to go)", v.LinesCleared(), v.LinesUntilNextLevel())},
		{"PIECES", fmt.Sprintf("%d", v.PiecesPlaced())},
	} {
		drawText(s, x, row, labelStyle, fmt.Sprintf("%-7s", line.label))
		drawText(s, x+7, row, valueStyle, fmt.Sprintf("%-*s", panelWidth-7, line.value))
		row++
	}

	var chain string
	if v.Combo() > 1 {
		chain = fmt.Sprintf("COMBO x%d ", v.Combo()-1)
	}
	if v.BackToBack() {
		chain += "B2B"
	}
	drawText(s, x, row, DefStyle.Foreground(t.Flash), fmt.Sprintf("%-*s", panelWidth, chain))
	row += 2

	stats := v.Stats()
	for i, k := range mino.AllKinds {
		drawText(s, x+(i%4)*5, row+i/4, DefStyle.Foreground(t.KindColor(k)), fmt.Sprintf("%s%-3d", k, stats[k]))
	}
	row += 3

	var msg string
	switch {
	case v.GameOver():
		msg = "GAME OVER - q to quit"
	case v.Paused():
		msg = "PAUSED - p to resume"
	}
	drawText(s, x, row, DefStyle.Foreground(t.Message), fmt.Sprintf("%-*s", panelWidth, msg))
}

// Render draws the board and the side panel with the board's top left corner
// at (x, y)
func Render(s tcell.Screen, x, y, w, h int, nickname string, v View, t Theme) {
	DrawBoard(s, x, y, w, h, v, t)

	bw, _ := BoardSize(w, h)
	DrawPanel(s, x+bw+1, y+1, nickname, v, t)
}
