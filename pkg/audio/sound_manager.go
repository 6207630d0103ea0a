package audio

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays effects and an optional music loop through one mixer.
// Every method is a no-op until Initialize succeeds, so a game runs the same
// without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicFile   beep.StreamSeekCloser
	volume      float64
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return fmt.Errorf("failed to open audio device: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the music file
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	if sm.musicFile != nil {
		sm.musicFile.Close()
		sm.musicFile = nil
	}
	sm.music = nil

	speaker.Close()
	sm.initialized = false
}

func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.initialized
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

func (sm *SoundManager) PlayLock()     { sm.play(lockSound()) }
func (sm *SoundManager) PlayHold()     { sm.play(holdSound()) }
func (sm *SoundManager) PlayLevelUp()  { sm.play(levelUpSound()) }
func (sm *SoundManager) PlayGameOver() { sm.play(gameOverSound()) }

// PlayClear plays the jingle for a clear of the given number of lines
func (sm *SoundManager) PlayClear(lines int) {
	sm.play(clearSound(lines))
}

// PlayMusic loops a WAV file until Cleanup. Any previous loop is replaced.
func (sm *SoundManager) PlayMusic(path string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open music %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("failed to decode music %s: %w", path, err)
	}

	var loop beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != sampleRate {
		loop = beep.Resample(4, format.SampleRate, sampleRate, loop)
	}

	ctrl := &beep.Ctrl{Streamer: withVolume(loop, sm.volume), Paused: false}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Add(ctrl)
	speaker.Unlock()

	if sm.musicFile != nil {
		sm.musicFile.Close()
	}
	sm.music = ctrl
	sm.musicFile = streamer
	return nil
}

// PauseMusic holds or resumes the music loop
func (sm *SoundManager) PauseMusic(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}

	speaker.Lock()
	sm.music.Paused = paused
	speaker.Unlock()
}

// SetVolume applies to sounds started afterwards. It is clamped to 0..1.
func (sm *SoundManager) SetVolume(volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if volume < 0 {
		volume = 0
	} else if volume > 1 {
		volume = 1
	}
	sm.volume = volume
}

func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.volume
}
