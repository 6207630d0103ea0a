package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/qnkhuat/termtris/pkg/mino"
)

var ErrInvalidConfig = errors.New("invalid config")

// MinBoardSize is the smallest board edge holding any piece in every
// orientation.
const MinBoardSize = 4

// Config is read once when a Game is created and never changes afterwards.
type Config struct {
	BoardWidth       int  `json:"board_width"`
	BoardHeight      int  `json:"board_height"`
	StartingLevel    int  `json:"starting_level"`
	LinesPerLevel    int  `json:"lines_per_level"`
	EnableGhostPiece bool `json:"enable_ghost_piece"`
	EnableHold       bool `json:"enable_hold"`
	PreviewCount     int  `json:"preview_count"`
	VariableGoal     bool `json:"variable_goal"`
	EnableSound      bool `json:"enable_sound"`
	DASDelay         int  `json:"das_delay"`  // Milliseconds
	DASRepeat        int  `json:"das_repeat"` // Milliseconds

	MusicFile string  `json:"music_file,omitempty"` // Looped WAV file, none when empty
	Volume    float64 `json:"volume"`               // 0 is silent, 1 is full
}

func DefaultConfig() Config {
	return Config{
		BoardWidth:       10,
		BoardHeight:      20,
		StartingLevel:    1,
		LinesPerLevel:    10,
		EnableGhostPiece: true,
		EnableHold:       true,
		PreviewCount:     3,
		VariableGoal:     false,
		EnableSound:      true,
		DASDelay:         250,
		DASRepeat:        50,
		Volume:           0.5,
	}
}

// Normalize clamps out of range values instead of rejecting them.
func (c Config) Normalize() Config {
	c.PreviewCount = mino.ClampPreview(c.PreviewCount)

	if c.BoardWidth < MinBoardSize {
		c.BoardWidth = MinBoardSize
	}
	if c.BoardHeight < MinBoardSize {
		c.BoardHeight = MinBoardSize
	}

	if c.StartingLevel < 1 {
		c.StartingLevel = 1
	}
	if c.LinesPerLevel < 1 {
		c.LinesPerLevel = 1
	}
	if c.DASDelay < 0 {
		c.DASDelay = 0
	}
	if c.DASRepeat < 0 {
		c.DASRepeat = 0
	}
	if c.Volume < 0 {
		c.Volume = 0
	} else if c.Volume > 1 {
		c.Volume = 1
	}

	return c
}

// Validate rejects boards too small to hold any piece in every orientation.
func (c Config) Validate() error {
	if c.BoardWidth < MinBoardSize || c.BoardHeight < MinBoardSize {
		return fmt.Errorf("%w: board must be at least %dx%d, got %dx%d", ErrInvalidConfig, MinBoardSize, MinBoardSize, c.BoardWidth, c.BoardHeight)
	}

	return nil
}

func (c Config) DASDelayDuration() time.Duration {
	return time.Duration(c.DASDelay) * time.Millisecond
}

func (c Config) DASRepeatDuration() time.Duration {
	return time.Duration(c.DASRepeat) * time.Millisecond
}

// LoadConfig reads a JSON config file over the defaults. A missing file yields
// the defaults. A board below the minimum size is reported as ErrInvalidConfig
// alongside the clamped config.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	} else if err != nil {
		return c, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	err = json.Unmarshal(data, &c)
	if err != nil {
		return c, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	err = c.Validate()
	return c.Normalize(), err
}

func (c Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	err = ioutil.WriteFile(path, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}
