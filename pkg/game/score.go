package game

import (
	"math"
)

const (
	ComboBonus = 50

	idealPiecesPerLine  = 2.5
	maxEfficiency       = 2.0
	backToBackPerLevel  = 0.05
	minBackToBackFactor = 0.5
	comboReductionStep  = 0.05
	maxComboReduction   = 0.5
	goalGrowthPerLevel  = 0.02
	minLinesNeeded      = 1.0
)

var (
	lineScores  = map[int]uint64{1: 100, 2: 300, 3: 500, 4: 800}
	tSpinScores = map[int]uint64{1: 800, 2: 1200, 3: 1600, 4: 2000}
)

// detectTSpin always reports false: T-spins are not detected.
func (g *Game) detectTSpin() bool {
	return false
}

func (g *Game) updateScore(lines int) {
	if lines == 0 {
		g.combo = 0
		return
	}

	tSpin := g.detectTSpin()
	awarded := lines

	base := lineScores[awarded]

	var tSpinBonus uint64
	if tSpin {
		tSpinBonus = tSpinScores[awarded]
	}

	comboBonus := uint64(g.combo) * ComboBonus

	special := lines == 4 || tSpin
	wasBackToBack := g.backToBack

	var backToBackBonus uint64
	if wasBackToBack && special {
		backToBackBonus = (base + tSpinBonus) / 2
	}

	g.score += (base + tSpinBonus + comboBonus + backToBackBonus) * uint64(g.level)

	g.backToBack = special
	g.combo++

	if g.Config.VariableGoal {
		g.advanceVariableGoal(lines, special, wasBackToBack)
	} else {
		g.advanceFixedGoal(lines)
	}
}

func (g *Game) advanceFixedGoal(lines int) {
	remaining := g.linesUntilNextLevel - float64(lines)
	if remaining > 0 {
		g.linesUntilNextLevel = remaining
		return
	}

	overflow := -remaining
	g.linesUntilNextLevel = math.Max(float64(g.Config.LinesPerLevel)-overflow, minLinesNeeded)
	g.levelUp()
}

// advanceVariableGoal scales the lines needed for the next level by how
// efficiently pieces are turned into lines and by active chains.
func (g *Game) advanceVariableGoal(lines int, special bool, wasBackToBack bool) {
	cleared := g.linesCleared
	if cleared < 1 {
		cleared = 1
	}

	efficiency := math.Min(float64(g.piecesPlaced)/float64(cleared)/idealPiecesPerLine, maxEfficiency)

	backToBack := 1.0
	if special && wasBackToBack {
		backToBack = math.Max(1.0-float64(g.level)*backToBackPerLevel, minBackToBackFactor)
	}

	comboReduction := math.Min(float64(g.combo)*comboReductionStep, maxComboReduction)

	needed := math.Max(float64(g.Config.LinesPerLevel)*efficiency*backToBack*(1.0-comboReduction), minLinesNeeded)

	remaining := g.linesUntilNextLevel - float64(lines)
	if remaining > 0 {
		g.linesUntilNextLevel = remaining
		return
	}

	overflow := -remaining
	g.linesUntilNextLevel = math.Max(needed*(1.0+float64(g.level)*goalGrowthPerLevel)-overflow, minLinesNeeded)
	g.levelUp()
}

func (g *Game) levelUp() {
	g.level++
	g.logger.Printf("level up: %d (%d lines to next level)", g.level, g.LinesUntilNextLevel())
}
