package game

import (
	"time"
)

const (
	LineClearDelayPerLine = 500 * time.Millisecond
	LineClearBlinkPeriod  = 100 * time.Millisecond
)

// LineClear marks filled rows waiting to be removed. It is advanced only by
// the driving loop polling the game, never by a timer.
type LineClear struct {
	Rows     []int
	Start    time.Time
	Duration time.Duration
}

func newLineClear(rows []int, start time.Time) *LineClear {
	return &LineClear{Rows: rows, Start: start, Duration: time.Duration(len(rows)) * LineClearDelayPerLine}
}

func (lc LineClear) TotalLines() int {
	return len(lc.Rows)
}

func (lc LineClear) Active(now time.Time) bool {
	return now.Sub(lc.Start) < lc.Duration
}

// Visible reports whether the cleared rows are shown in the current blink
// phase.
func (lc LineClear) Visible(now time.Time) bool {
	return (now.Sub(lc.Start)/LineClearBlinkPeriod)%2 == 0
}

// PendingLineClear returns the line clear awaiting CompleteLineClear.
func (g *Game) PendingLineClear() (LineClear, bool) {
	if g.lineClear == nil {
		return LineClear{}, false
	}

	lc := *g.lineClear
	lc.Rows = append([]int(nil), g.lineClear.Rows...)
	return lc, true
}

func (g *Game) IsLineClearAnimationActive() bool {
	return g.lineClear != nil && g.lineClear.Active(g.now())
}

// ShouldShowClearedRows reports the blink phase of the pending cleared rows.
func (g *Game) ShouldShowClearedRows() bool {
	return g.lineClear != nil && g.lineClear.Visible(g.now())
}

// ClearingRows lists the rows of the pending line clear, nil when none.
func (g *Game) ClearingRows() []int {
	if g.lineClear == nil {
		return nil
	}

	return append([]int(nil), g.lineClear.Rows...)
}
