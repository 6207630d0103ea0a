package pkg

import (
	"fmt"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/termtris/pkg/game"
	"github.com/qnkhuat/termtris/pkg/gui"
	"github.com/qnkhuat/termtris/pkg/mino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedSounds struct {
	played []string
}

func (r *recordedSounds) PlayLock()           { r.played = append(r.played, "lock") }
func (r *recordedSounds) PlayHold()           { r.played = append(r.played, "hold") }
func (r *recordedSounds) PlayClear(lines int) { r.played = append(r.played, fmt.Sprintf("clear %d", lines)) }
func (r *recordedSounds) PlayLevelUp()        { r.played = append(r.played, "level up") }
func (r *recordedSounds) PlayGameOver()       { r.played = append(r.played, "game over") }
func (r *recordedSounds) PauseMusic(paused bool) {
	r.played = append(r.played, fmt.Sprintf("music paused %t", paused))
}

func newTestClient(t *testing.T, c game.Config) (*Client, *recordedSounds) {
	t.Helper()

	sounds := &recordedSounds{}
	g := game.NewGame(c, mino.NewSeededBag(1))
	cl := NewClient(g, gui.ThemeBasic, "tester", sounds)

	_, ok := cl.Game.CurrentPiece()
	require.True(t, ok, "the first piece spawns with the client")
	return cl, sounds
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestClientHardDrop(t *testing.T) {
	cl, sounds := newTestClient(t, game.DefaultConfig())

	assert.Nil(t, cl.handleKey(key(' ')))
	assert.Equal(t, 1, cl.Game.PiecesPlaced())
	assert.Equal(t, []string{"lock"}, sounds.played)
}

func TestClientHold(t *testing.T) {
	cl, sounds := newTestClient(t, game.DefaultConfig())
	p, _ := cl.Game.CurrentPiece()

	cl.handleKey(key('c'))
	held, ok := cl.Game.HeldPiece()
	require.True(t, ok)
	assert.Equal(t, p.Kind, held)
	assert.Equal(t, []string{"hold"}, sounds.played)

	cl.handleKey(key('c'))
	assert.Equal(t, []string{"hold"}, sounds.played, "hold is spent until the next piece")
}

func TestClientPause(t *testing.T) {
	cl, sounds := newTestClient(t, game.DefaultConfig())

	cl.handleKey(key('p'))
	assert.True(t, cl.Game.Paused())
	assert.True(t, cl.clock.Paused())

	before, _ := cl.Game.CurrentPiece()
	cl.handleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	after, _ := cl.Game.CurrentPiece()
	assert.Equal(t, before, after, "input is ignored while paused")

	cl.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	assert.False(t, cl.Game.Paused())
	assert.False(t, cl.clock.Paused())
	assert.Equal(t, []string{"music paused true", "music paused false"}, sounds.played)
}

func TestClientUnboundKeyPassesThrough(t *testing.T) {
	cl, _ := newTestClient(t, game.DefaultConfig())

	ev := key('?')
	assert.Equal(t, ev, cl.handleKey(ev))
	assert.Nil(t, cl.handleKey(key('q')))
}

func TestClientGameOver(t *testing.T) {
	c := game.DefaultConfig()
	c.BoardHeight = 4
	cl, sounds := newTestClient(t, c)

	for i := 0; i < 20 && !cl.Game.GameOver(); i++ {
		cl.handleKey(key(' '))
	}

	require.True(t, cl.Game.GameOver())
	assert.Equal(t, "game over", sounds.played[len(sounds.played)-1])
	assert.True(t, cl.clock.Paused())
	assert.False(t, cl.poll())
}

func TestClientTick(t *testing.T) {
	cl, _ := newTestClient(t, game.DefaultConfig())
	before, _ := cl.Game.CurrentPiece()

	cl.tick()
	after, _ := cl.Game.CurrentPiece()
	assert.Equal(t, before.Y+1, after.Y)
}

func TestClientPollFinishesLineClear(t *testing.T) {
	cl, sounds := newTestClient(t, game.DefaultConfig())

	now := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	cl.Game.SetClock(func() time.Time { return now })

	// Fill the bottom row around where the current piece lands
	ghost, ok := cl.Game.GhostPiece()
	require.True(t, ok)
	landing := make(map[int]bool)
	for _, c := range ghost.Cells() {
		if c.Y == cl.Game.Board.H-1 {
			landing[c.X] = true
		}
	}
	require.NotEmpty(t, landing)
	for x := 0; x < cl.Game.Board.W; x++ {
		if !landing[x] {
			cl.Game.Board.SetCell(x, cl.Game.Board.H-1, mino.KindZ)
		}
	}

	cl.handleKey(key(' '))
	require.Equal(t, []int{cl.Game.Board.H - 1}, cl.Game.ClearingRows())

	assert.True(t, cl.poll(), "the clear is pending")
	assert.Equal(t, 0, cl.Game.LinesCleared(), "the animation is still running")

	now = now.Add(game.LineClearDelayPerLine)
	assert.True(t, cl.poll())
	assert.Equal(t, 1, cl.Game.LinesCleared())
	assert.Nil(t, cl.Game.ClearingRows())
	assert.False(t, cl.poll())
	assert.Equal(t, []string{"lock", "clear 1"}, sounds.played)
}
