package game

import (
	"io/ioutil"
	"log"
	"math"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/qnkhuat/termtris/pkg/mino"
)

// Game owns the board, the active, held and queued pieces and every counter.
// It is not safe for concurrent use; the driving loop serializes calls.
type Game struct {
	Board  *mino.Board
	Config Config

	current  *mino.Piece
	held     mino.Kind
	holdUsed bool
	next     *mino.Queue

	score               uint64
	level               int
	linesCleared        int
	linesUntilNextLevel float64
	combo               int
	backToBack          bool
	piecesPlaced        int

	gameOver bool
	paused   bool

	lineClear *LineClear

	placed *intmap.Map[mino.Kind, int]

	now    func() time.Time
	logger *log.Logger
}

// NewGame prepares a game with an empty board and a filled preview queue. No
// piece is active until SpawnPiece is called. A nil bag draws from a
// time-seeded source.
func NewGame(c Config, bag *mino.Bag) *Game {
	c = c.Normalize()

	if bag == nil {
		bag = mino.NewSeededBag(time.Now().UnixNano())
	}

	g := &Game{
		Board:               mino.NewBoard(c.BoardWidth, c.BoardHeight),
		Config:              c,
		next:                mino.NewQueue(bag, c.PreviewCount),
		level:               c.StartingLevel,
		linesUntilNextLevel: float64(c.LinesPerLevel),
		placed:              intmap.New[mino.Kind, int](len(mino.AllKinds)),
		now:                 time.Now,
		logger:              log.New(ioutil.Discard, "", 0),
	}

	return g
}

func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(ioutil.Discard, "", 0)
	}

	g.logger = l
}

// SetClock replaces the wall clock used to time line clear animations.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// SpawnPiece activates the head of the preview queue at the origin. When it
// does not fit the game is over.
func (g *Game) SpawnPiece() {
	if g.gameOver {
		return
	}

	g.spawn(g.next.Pop())
	g.holdUsed = false
}

func (g *Game) spawn(k mino.Kind) {
	p := mino.NewPiece(k)
	g.current = &p

	if !g.Board.IsValidPosition(p) {
		g.gameOver = true
		g.logger.Printf("game over: %s does not fit at spawn (score %d, level %d, lines %d)", k, g.score, g.level, g.linesCleared)
	}
}

// MovePiece translates the active piece when the destination is free.
func (g *Game) MovePiece(dx int, dy int) bool {
	if g.current == nil || g.gameOver {
		return false
	}

	moved := g.current.Moved(dx, dy)
	if !g.Board.IsValidPosition(moved) {
		return false
	}

	*g.current = moved
	return true
}

// RotatePiece turns the active piece, trying each wall kick for the transition
// in order. When none fits the piece is left untouched.
func (g *Game) RotatePiece(clockwise bool) bool {
	if g.current == nil || g.gameOver {
		return false
	}

	rotated := g.current.Rotated(clockwise)
	for _, kick := range mino.Kicks(rotated.Kind, g.current.Rotation, rotated.Rotation) {
		candidate := rotated.Moved(kick.X, kick.Y)
		if g.Board.IsValidPosition(candidate) {
			*g.current = candidate
			return true
		}
	}

	return false
}

// HardDrop moves the active piece down as far as it goes and locks it.
func (g *Game) HardDrop() {
	if g.current == nil || g.gameOver {
		return
	}

	for g.MovePiece(0, 1) {
	}

	g.LockCurrentPiece()
}

// LockCurrentPiece writes the active piece into the board. Filled rows start a
// line clear animation that CompleteLineClear finishes; otherwise the next
// piece spawns immediately.
func (g *Game) LockCurrentPiece() {
	if g.current == nil || g.gameOver {
		return
	}

	p := *g.current
	g.current = nil

	g.Board.Lock(p)
	g.piecesPlaced++

	count, _ := g.placed.Get(p.Kind)
	g.placed.Put(p.Kind, count+1)

	rows := g.Board.FullLines()
	if len(rows) > 0 {
		g.lineClear = newLineClear(rows, g.now())
		return
	}

	g.updateScore(0)
	g.SpawnPiece()
}

// CompleteLineClear removes the rows of a pending line clear, scores them and
// spawns the next piece. It does nothing when no clear is pending.
func (g *Game) CompleteLineClear() {
	if g.lineClear == nil {
		return
	}

	cleared := g.Board.ClearLines()
	g.linesCleared += cleared
	g.logger.Printf("cleared %d lines (total %d)", cleared, g.linesCleared)

	g.updateScore(cleared)

	g.lineClear = nil
	g.SpawnPiece()
}

// HoldPiece banks the active piece. A previously held kind comes back at the
// origin in spawn orientation; with nothing held the next queued piece spawns.
// Hold may be used once per piece.
func (g *Game) HoldPiece() {
	if !g.Config.EnableHold || g.current == nil || g.gameOver || g.holdUsed {
		return
	}

	p := *g.current
	g.current = nil

	if g.held != mino.KindNone {
		k := g.held
		g.held = p.Kind
		g.spawn(k)
	} else {
		g.held = p.Kind
		g.spawn(g.next.Pop())
	}

	g.holdUsed = true
}

// Tick advances gravity by one step. While a line clear is pending it only
// completes the clear once the animation is over.
func (g *Game) Tick() {
	if g.gameOver || g.paused {
		return
	}

	if g.lineClear != nil {
		if !g.IsLineClearAnimationActive() {
			g.CompleteLineClear()
		}
		return
	}

	if g.current == nil {
		g.SpawnPiece()
		return
	}

	if !g.MovePiece(0, 1) {
		g.LockCurrentPiece()
	}
}

func (g *Game) TogglePause() {
	if g.gameOver {
		return
	}

	g.paused = !g.paused
}

// CurrentPiece returns a copy of the active piece.
func (g *Game) CurrentPiece() (mino.Piece, bool) {
	if g.current == nil {
		return mino.Piece{}, false
	}

	return *g.current, true
}

// GhostPiece returns where the active piece would land. It reports false when
// ghost pieces are disabled or no piece is active.
func (g *Game) GhostPiece() (mino.Piece, bool) {
	if !g.Config.EnableGhostPiece || g.current == nil {
		return mino.Piece{}, false
	}

	ghost := *g.current
	for g.Board.IsValidPosition(ghost.Moved(0, 1)) {
		ghost = ghost.Moved(0, 1)
	}

	return ghost, true
}

func (g *Game) HeldPiece() (mino.Kind, bool) {
	return g.held, g.held != mino.KindNone
}

// NextPieces returns the preview queue, head first.
func (g *Game) NextPieces() []mino.Kind {
	return g.next.Kinds()
}

func (g *Game) Cell(x int, y int) mino.Kind {
	return g.Board.Cell(x, y)
}

func (g *Game) Score() uint64       { return g.score }
func (g *Game) Level() int          { return g.level }
func (g *Game) LinesCleared() int   { return g.linesCleared }
func (g *Game) Combo() int          { return g.combo }
func (g *Game) BackToBack() bool    { return g.backToBack }
func (g *Game) PiecesPlaced() int   { return g.piecesPlaced }
func (g *Game) GameOver() bool      { return g.gameOver }
func (g *Game) Paused() bool        { return g.paused }
func (g *Game) HoldAvailable() bool { return g.Config.EnableHold && !g.holdUsed }

func (g *Game) LinesUntilNextLevel() int {
	return int(math.Ceil(g.linesUntilNextLevel))
}

// Stats returns how many pieces of each kind have been locked.
func (g *Game) Stats() map[mino.Kind]int {
	stats := make(map[mino.Kind]int, len(mino.AllKinds))
	for _, k := range mino.AllKinds {
		count, _ := g.placed.Get(k)
		stats[k] = count
	}

	return stats
}
