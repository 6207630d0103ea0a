package pkg

import (
	"fmt"
	"math"
	"sync"
	"time"
)

const (
	MinGravityLevel = 1
	MaxGravityLevel = 20
)

// FallInterval is the time a piece takes to fall one row at the given level,
// following the guideline curve (0.8 - (level-1) * 0.007) ^ (level-1) seconds.
func FallInterval(level int) time.Duration {
	if level < MinGravityLevel {
		level = MinGravityLevel
	} else if level > MaxGravityLevel {
		level = MaxGravityLevel
	}

	seconds := math.Pow(0.8-float64(level-1)*0.007, float64(level-1))
	return time.Duration(seconds * float64(time.Second))
}

// Clock calls OnTick once per fall interval of its level until stopped
type Clock struct {
	mu     sync.Mutex
	level  int
	paused bool
	OnTick func()
	done   chan struct{}
	once   sync.Once
}

func (cl *Clock) String() string {
	return fmt.Sprintf("level %d every %s", cl.Level(), cl.Interval())
}

func NewClock(level int, onTick func()) *Clock {
	return &Clock{
		level:  level,
		OnTick: onTick,
		done:   make(chan struct{}),
	}
}

// Run blocks until Stop. A level change takes effect from the next tick.
func (cl *Clock) Run() {
	timer := time.NewTimer(cl.Interval())
	defer timer.Stop()

	for {
		select {
		case <-cl.done:
			return
		case <-timer.C:
			if !cl.Paused() && cl.OnTick != nil {
				cl.OnTick()
			}
			timer.Reset(cl.Interval())
		}
	}
}

func (cl *Clock) Interval() time.Duration {
	return FallInterval(cl.Level())
}

func (cl *Clock) Level() int {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.level
}

func (cl *Clock) SetLevel(level int) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.level = level
}

func (cl *Clock) Paused() bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.paused
}

func (cl *Clock) Pause() {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.paused = true
}

func (cl *Clock) Resume() {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.paused = false
}

func (cl *Clock) Stop() {
	cl.once.Do(func() { close(cl.done) })
}
