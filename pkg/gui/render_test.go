package gui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/termtris/pkg/game"
	"github.com/qnkhuat/termtris/pkg/mino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.Screen {
	t.Helper()

	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 40)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func textAt(s tcell.Screen, x, y, n int) string {
	var rs []rune
	for i := 0; i < n; i++ {
		rs = append(rs, runeAt(s, x+i, y))
	}
	return string(rs)
}

func TestSize(t *testing.T) {
	w, h := BoardSize(10, 20)
	assert.Equal(t, 22, w)
	assert.Equal(t, 22, h)

	w, h = Size(10, 20)
	assert.Equal(t, 22+1+panelWidth, w)
	assert.Equal(t, 22, h)
}

func TestRenderBoard(t *testing.T) {
	s := newScreen(t)
	defer s.Fini()

	c := game.DefaultConfig()
	c.EnableGhostPiece = false
	g := game.NewGame(c, mino.NewSeededBag(1))
	g.SpawnPiece()
	g.Board.SetCell(3, 19, mino.KindZ)

	Render(s, 0, 0, c.BoardWidth, c.BoardHeight, "tester", g, ThemeBasic)

	assert.Equal(t, '┌', runeAt(s, 0, 0))
	assert.Equal(t, '┐', runeAt(s, 21, 0))
	assert.Equal(t, '└', runeAt(s, 0, 21))
	assert.Equal(t, '┘', runeAt(s, 21, 21))

	p, ok := g.CurrentPiece()
	require.True(t, ok)
	for _, cell := range p.Cells() {
		assert.Equal(t, blockSolid, runeAt(s, 1+cell.X*cellWidth, 1+cell.Y), cell.String())
	}

	assert.Equal(t, blockSolid, runeAt(s, 1+3*cellWidth, 20), "locked cell")
	assert.Equal(t, blockEmpty, runeAt(s, 1+9*cellWidth, 10), "empty cell")

	assert.Equal(t, "tester", textAt(s, 23, 1, 6))
	assert.Equal(t, "NEXT", textAt(s, 23, 7, 4))
}

func TestRenderGhost(t *testing.T) {
	s := newScreen(t)
	defer s.Fini()

	g := game.NewGame(game.DefaultConfig(), mino.NewSeededBag(1))
	g.SpawnPiece()

	Render(s, 0, 0, 10, 20, "tester", g, ThemeBasic)

	ghost, ok := g.GhostPiece()
	require.True(t, ok)
	for _, cell := range ghost.Cells() {
		assert.Equal(t, blockGhost, runeAt(s, 1+cell.X*cellWidth, 1+cell.Y), cell.String())
	}
}

func TestRenderMessages(t *testing.T) {
	s := newScreen(t)
	defer s.Fini()

	g := game.NewGame(game.DefaultConfig(), mino.NewSeededBag(1))
	g.SpawnPiece()
	g.TogglePause()

	bw, _ := BoardSize(10, 20)
	DrawPanel(s, bw+1, 1, "tester", g, ThemeBasic)

	found := false
	for y := 1; y < 40; y++ {
		if textAt(s, bw+1, y, 6) == "PAUSED" {
			found = true
		}
	}
	assert.True(t, found)
}
