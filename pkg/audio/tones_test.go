package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
)

// drain streams s to the end and returns the number of samples and the peak
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0

	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			for _, v := range buf[i] {
				if v > peak {
					peak = v
				} else if -v > peak {
					peak = -v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneLength(t *testing.T) {
	n, peak := drain(tone(440, 100*time.Millisecond))

	assert.Equal(t, sampleRate.N(100*time.Millisecond), n)
	assert.LessOrEqual(t, peak, 1.0)
	assert.Greater(t, peak, 0.0)
}

func TestToneAboveNyquistIsSilent(t *testing.T) {
	n, peak := drain(tone(float64(sampleRate), 10*time.Millisecond))

	assert.Equal(t, sampleRate.N(10*time.Millisecond), n)
	assert.Equal(t, 0.0, peak)
}

func TestClearSoundGrowsWithLines(t *testing.T) {
	tests := []struct {
		lines int
		notes int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 6},
		{9, 6},
	}

	for _, tt := range tests {
		n, _ := drain(clearSound(tt.lines))
		assert.Equal(t, tt.notes*sampleRate.N(noteLength), n, "lines=%d", tt.lines)
	}
}

func TestWithVolume(t *testing.T) {
	_, full := drain(tone(440, 50*time.Millisecond))
	_, half := drain(withVolume(tone(440, 50*time.Millisecond), 0.5))
	_, mute := drain(withVolume(tone(440, 50*time.Millisecond), 0))

	assert.InDelta(t, full/2, half, 1e-9)
	assert.Equal(t, 0.0, mute)
}

func TestUninitializedManagerIsNoop(t *testing.T) {
	sm := NewSoundManager(0.5)

	assert.False(t, sm.Initialized())
	sm.PlayLock()
	sm.PlayClear(4)
	sm.PlayLevelUp()
	sm.PlayGameOver()
	sm.PauseMusic(true)
	assert.NoError(t, sm.PlayMusic("does-not-exist.wav"))
	sm.Cleanup()

	sm.SetVolume(4)
	assert.Equal(t, 1.0, sm.Volume())
	sm.SetVolume(-1)
	assert.Equal(t, 0.0, sm.Volume())
}
