package pkg

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/termtris/pkg/game"
	"github.com/qnkhuat/termtris/pkg/gui"
	"github.com/qnkhuat/termtris/pkg/mino"
	"github.com/rivo/tview"
)

const (
	FrameInterval = 50 * time.Millisecond
	helpWidth     = 24
)

// Sounds receives game events worth an audio cue
type Sounds interface {
	PlayLock()
	PlayHold()
	PlayClear(lines int)
	PlayLevelUp()
	PlayGameOver()
	PauseMusic(paused bool)
}

type nopSounds struct{}

func (nopSounds) PlayLock()       {}
func (nopSounds) PlayHold()       {}
func (nopSounds) PlayClear(int)   {}
func (nopSounds) PlayLevelUp()    {}
func (nopSounds) PlayGameOver()   {}
func (nopSounds) PauseMusic(bool) {}

// progress is the part of the game state compared before and after a step to
// pick audio cues
type progress struct {
	placed   int
	lines    int
	level    int
	held     mino.Kind
	gameOver bool
}

// Client runs one local game. Every game mutation happens on the tview event
// loop; the gravity clock and the frame ticker only queue updates onto it.
type Client struct {
	App      *tview.Application
	Board    *tview.Box
	Help     *tview.TextView
	Layout   *tview.Grid
	Game     *game.Game
	Theme    gui.Theme
	Nickname string

	sounds   Sounds
	clock    *Clock
	repeater *Repeater
	done     chan struct{}
	now      func() time.Time
}

func NewClient(g *game.Game, theme gui.Theme, nickname string, sounds Sounds) *Client {
	if sounds == nil {
		sounds = nopSounds{}
	}

	app := tview.NewApplication()

	cl := &Client{
		App:      app,
		Game:     g,
		Theme:    theme,
		Nickname: nickname,
		sounds:   sounds,
		repeater: NewRepeater(g.Config.DASDelayDuration(), g.Config.DASRepeatDuration()),
		done:     make(chan struct{}),
		now:      time.Now,
	}

	cl.Board = tview.NewBox().SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		gui.Render(screen, x, y, g.Config.BoardWidth, g.Config.BoardHeight, cl.Nickname, cl.Game, cl.Theme)
		return x, y, width, height
	})

	cl.Help = tview.NewTextView().
		SetText(HelpText()).
		SetTextColor(theme.Label)

	w, h := gui.Size(g.Config.BoardWidth, g.Config.BoardHeight)
	cl.Layout = tview.NewGrid().
		SetRows(-1, h, -1).
		SetColumns(-1, w, helpWidth, -1).
		AddItem(tview.NewBox(), 0, 0, 1, 4, 0, 0, false).
		AddItem(tview.NewBox(), 1, 0, 1, 1, 0, 0, false).
		AddItem(cl.Board, 1, 1, 1, 1, 0, 0, true).
		AddItem(cl.Help, 1, 2, 1, 1, 0, 0, false).
		AddItem(tview.NewBox(), 1, 3, 1, 1, 0, 0, false).
		AddItem(tview.NewBox(), 2, 0, 1, 4, 0, 0, false)

	app.SetInputCapture(cl.handleKey)

	cl.clock = NewClock(g.Level(), func() {
		cl.App.QueueUpdateDraw(cl.tick)
	})

	if _, ok := g.CurrentPiece(); !ok && !g.GameOver() {
		g.SpawnPiece()
	}

	return cl
}

func (cl *Client) snapshot() progress {
	held, _ := cl.Game.HeldPiece()
	return progress{
		placed:   cl.Game.PiecesPlaced(),
		lines:    cl.Game.LinesCleared(),
		level:    cl.Game.Level(),
		held:     held,
		gameOver: cl.Game.GameOver(),
	}
}

// observe plays cues for what changed since before and keeps the gravity
// clock in step with the game
func (cl *Client) observe(before progress) {
	after := cl.snapshot()

	if after.held != before.held {
		cl.sounds.PlayHold()
	}
	if after.lines > before.lines {
		cl.sounds.PlayClear(after.lines - before.lines)
	} else if after.placed > before.placed {
		cl.sounds.PlayLock()
	}
	if after.level > before.level {
		cl.sounds.PlayLevelUp()
		cl.clock.SetLevel(after.level)
	}
	if after.gameOver && !before.gameOver {
		log.Printf("game over: score %d, level %d, lines %d", cl.Game.Score(), after.level, after.lines)
		cl.sounds.PlayGameOver()
		cl.clock.Pause()
	}
}

func (cl *Client) tick() {
	before := cl.snapshot()
	cl.Game.Tick()
	cl.observe(before)
}

// poll finishes a line clear whose animation has run out. It reports whether
// a line clear was pending.
func (cl *Client) poll() bool {
	if _, ok := cl.Game.PendingLineClear(); !ok {
		return false
	}

	if !cl.Game.IsLineClearAnimationActive() {
		cl.tick()
	}
	return true
}

func (cl *Client) apply(a game.Action) bool {
	before := cl.snapshot()
	changed := cl.Game.Apply(a)

	if a == game.ActionPause && changed {
		if cl.Game.Paused() {
			cl.clock.Pause()
		} else {
			cl.clock.Resume()
		}
		cl.sounds.PauseMusic(cl.Game.Paused())
	}

	cl.observe(before)
	return changed
}

func (cl *Client) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if IsQuit(ev) {
		cl.App.Stop()
		return nil
	}

	a := KeyAction(ev)
	if a == game.ActionUnknown {
		return ev
	}

	if cl.repeater.Allow(a, cl.now()) {
		cl.apply(a)
	}
	return nil
}

func (cl *Client) frames() {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-cl.done:
			return
		case <-ticker.C:
			cl.App.QueueUpdateDraw(func() {
				cl.poll()
			})
		}
	}
}

// Run blocks until the player quits
func (cl *Client) Run() error {
	go cl.clock.Run()
	go cl.frames()
	defer cl.Stop()

	log.Printf("starting game for %s", cl.Nickname)
	return cl.App.SetRoot(cl.Layout, true).Run()
}

func (cl *Client) Stop() {
	cl.clock.Stop()

	select {
	case <-cl.done:
	default:
		close(cl.done)
	}
}
