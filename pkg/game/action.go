package game

type Action int

const (
	ActionUnknown Action = iota
	ActionRotateCCW
	ActionRotateCW
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionHold
	ActionPause
)

func (a Action) String() string {
	switch a {
	case ActionRotateCCW:
		return "Rotate CCW"
	case ActionRotateCW:
		return "Rotate CW"
	case ActionMoveLeft:
		return "Left"
	case ActionMoveRight:
		return "Right"
	case ActionSoftDrop:
		return "Soft drop"
	case ActionHardDrop:
		return "Hard drop"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Apply performs a player action. It reports whether the game changed. Only
// pause is accepted while paused.
func (g *Game) Apply(a Action) bool {
	if a == ActionPause {
		if g.gameOver {
			return false
		}

		g.TogglePause()
		return true
	}

	if g.paused || g.gameOver || g.current == nil {
		return false
	}

	switch a {
	case ActionRotateCCW:
		return g.RotatePiece(false)
	case ActionRotateCW:
		return g.RotatePiece(true)
	case ActionMoveLeft:
		return g.MovePiece(-1, 0)
	case ActionMoveRight:
		return g.MovePiece(1, 0)
	case ActionSoftDrop:
		if !g.MovePiece(0, 1) {
			g.LockCurrentPiece()
		}
		return true
	case ActionHardDrop:
		g.HardDrop()
		return true
	case ActionHold:
		if !g.HoldAvailable() {
			return false
		}

		g.HoldPiece()
		return true
	default:
		return false
	}
}
