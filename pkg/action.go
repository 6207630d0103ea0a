package pkg

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/termtris/pkg/game"
)

// KeyHelp is one line of the controls legend
type KeyHelp struct {
	Keys   string
	Action string
}

var Controls = []KeyHelp{
	{"←/→ h/l", game.ActionMoveLeft.String() + "/" + game.ActionMoveRight.String()},
	{"↓ j", game.ActionSoftDrop.String()},
	{"space", game.ActionHardDrop.String()},
	{"↑ x k", game.ActionRotateCW.String()},
	{"z", game.ActionRotateCCW.String()},
	{"c", game.ActionHold.String()},
	{"p esc", game.ActionPause.String()},
	{"q", "Quit"},
}

var runeActions = map[rune]game.Action{
	'h': game.ActionMoveLeft,
	'a': game.ActionMoveLeft,
	'l': game.ActionMoveRight,
	'd': game.ActionMoveRight,
	'j': game.ActionSoftDrop,
	's': game.ActionSoftDrop,
	'k': game.ActionRotateCW,
	'x': game.ActionRotateCW,
	'w': game.ActionRotateCW,
	'z': game.ActionRotateCCW,
	' ': game.ActionHardDrop,
	'c': game.ActionHold,
	'p': game.ActionPause,
}

var keyActions = map[tcell.Key]game.Action{
	tcell.KeyLeft:   game.ActionMoveLeft,
	tcell.KeyRight:  game.ActionMoveRight,
	tcell.KeyDown:   game.ActionSoftDrop,
	tcell.KeyUp:     game.ActionRotateCW,
	tcell.KeyEscape: game.ActionPause,
}

// KeyAction maps a key press to a game action, ActionUnknown when unbound
func KeyAction(ev *tcell.EventKey) game.Action {
	if ev.Key() == tcell.KeyRune {
		if a, ok := runeActions[ev.Rune()]; ok {
			return a
		}
		return game.ActionUnknown
	}

	if a, ok := keyActions[ev.Key()]; ok {
		return a
	}
	return game.ActionUnknown
}

// IsQuit reports whether the key asks to leave the game
func IsQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'))
}

func HelpText() string {
	var b strings.Builder
	for _, c := range Controls {
		b.WriteString(c.Keys)
		b.WriteString(": ")
		b.WriteString(c.Action)
		b.WriteString("\n")
	}
	return b.String()
}

// AutoRepeatGap is the longest gap between two identical key events that is
// read as terminal key repeat rather than a new tap. Terminals repeat every
// 25 to 40ms; deliberate taps are further apart.
const AutoRepeatGap = 60 * time.Millisecond

// Repeater applies delayed auto shift to the terminal's key repeat. Terminals
// send no release events, so a held key is a run of identical shift actions
// no more than Gap apart. Separate taps and the first event of a run always
// pass; the rest of a run passes once Delay has elapsed since the run began,
// at most once per Repeat.
type Repeater struct {
	Delay  time.Duration
	Repeat time.Duration
	Gap    time.Duration

	last      game.Action
	lastEvent time.Time
	start     time.Time
	lastFire  time.Time
}

func NewRepeater(delay, repeat time.Duration) *Repeater {
	return &Repeater{Delay: delay, Repeat: repeat, Gap: AutoRepeatGap}
}

func isShift(a game.Action) bool {
	return a == game.ActionMoveLeft || a == game.ActionMoveRight || a == game.ActionSoftDrop
}

// Allow reports whether the action should be applied at now
func (r *Repeater) Allow(a game.Action, now time.Time) bool {
	repeated := isShift(a) && a == r.last && !r.lastEvent.IsZero() && now.Sub(r.lastEvent) <= r.Gap
	r.last = a
	r.lastEvent = now

	if !repeated {
		r.start = now
		r.lastFire = now
		return true
	}

	if now.Sub(r.start) < r.Delay || now.Sub(r.lastFire) < r.Repeat {
		return false
	}

	r.lastFire = now
	return true
}
