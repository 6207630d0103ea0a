package mino

// Transition is a rotation from one state to an adjacent one.
type Transition struct {
	From, To int
}

// Wall kick offsets, y-down. Every list starts with the unkicked attempt.
var (
	kicksJLSTZ = map[Transition][]Point{
		{Rotation0, RotationR}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}},
		{RotationR, Rotation0}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}},
		{RotationR, Rotation2}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}},
		{Rotation2, RotationR}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}},
		{Rotation2, RotationL}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}},
		{RotationL, Rotation2}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}},
		{RotationL, Rotation0}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}},
		{Rotation0, RotationL}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}},
	}

	kicksI = map[Transition][]Point{
		{Rotation0, RotationR}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		{RotationR, Rotation0}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		{RotationR, Rotation2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
		{Rotation2, RotationR}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		{Rotation2, RotationL}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		{RotationL, Rotation2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		{RotationL, Rotation0}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		{Rotation0, RotationL}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	}

	noKick = []Point{{0, 0}}
)

// Kicks returns the ordered offsets to try when rotating kind k from one state
// to another. Untabulated transitions and the O piece only try (0,0).
func Kicks(k Kind, from int, to int) []Point {
	t := Transition{NormalizeRotation(from), NormalizeRotation(to)}

	var table map[Transition][]Point
	switch k {
	case KindI:
		table = kicksI
	case KindT, KindS, KindZ, KindJ, KindL:
		table = kicksJLSTZ
	default:
		return noKick
	}

	if kicks, ok := table[t]; ok {
		return kicks
	}

	return noKick
}
