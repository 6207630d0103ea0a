package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	noteLock     = 196.00 // G3
	noteHold     = 261.63 // C4
	noteLevelUp  = 659.25 // E5
	noteGameOver = 110.00 // A2

	noteLength = 70 * time.Millisecond
)

// Clear jingles climb this scale, one step per cleared line
var clearScale = []float64{523.25, 659.25, 783.99, 1046.50}

// tone is a sine note of the given length. Unplayable frequencies are silent.
func tone(freq float64, d time.Duration) beep.Streamer {
	n := sampleRate.N(d)

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(n)
	}

	return beep.Take(n, sine)
}

// withVolume scales s, treating 0 as silence since log2(0) is -Inf
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func lockSound() beep.Streamer {
	return tone(noteLock, 40*time.Millisecond)
}

func holdSound() beep.Streamer {
	return tone(noteHold, 40*time.Millisecond)
}

// clearSound plays one rising note per cleared line. Four lines repeat the top
// note.
func clearSound(lines int) beep.Streamer {
	if lines < 1 {
		lines = 1
	}
	if lines > len(clearScale) {
		lines = len(clearScale)
	}

	notes := make([]beep.Streamer, 0, lines+1)
	for i := 0; i < lines; i++ {
		notes = append(notes, tone(clearScale[i], noteLength))
	}
	if lines == len(clearScale) {
		notes = append(notes, tone(clearScale[len(clearScale)-1], 2*noteLength))
	}

	return beep.Seq(notes...)
}

func levelUpSound() beep.Streamer {
	return beep.Seq(
		tone(noteLevelUp, noteLength),
		tone(noteLevelUp*1.5, noteLength),
		tone(noteLevelUp*2, 2*noteLength),
	)
}

func gameOverSound() beep.Streamer {
	return beep.Seq(
		tone(noteGameOver*2, 3*noteLength),
		tone(noteGameOver*1.5, 3*noteLength),
		tone(noteGameOver, 6*noteLength),
	)
}
