package game

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	assert.Equal(t, 10, c.BoardWidth)
	assert.Equal(t, 20, c.BoardHeight)
	assert.Equal(t, 1, c.StartingLevel)
	assert.Equal(t, 10, c.LinesPerLevel)
	assert.True(t, c.EnableGhostPiece)
	assert.True(t, c.EnableHold)
	assert.Equal(t, 3, c.PreviewCount)
	assert.False(t, c.VariableGoal)
	assert.Equal(t, 250*time.Millisecond, c.DASDelayDuration())
	assert.Equal(t, 50*time.Millisecond, c.DASRepeatDuration())
	assert.Equal(t, 0.5, c.Volume)
	assert.Empty(t, c.MusicFile)
	assert.NoError(t, c.Validate())
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(c *Config)
		expected func(c Config) bool
	}{
		{"preview below range", func(c *Config) { c.PreviewCount = 0 }, func(c Config) bool { return c.PreviewCount == 1 }},
		{"preview above range", func(c *Config) { c.PreviewCount = 12 }, func(c Config) bool { return c.PreviewCount == 6 }},
		{"level below one", func(c *Config) { c.StartingLevel = -2 }, func(c Config) bool { return c.StartingLevel == 1 }},
		{"no lines per level", func(c *Config) { c.LinesPerLevel = 0 }, func(c Config) bool { return c.LinesPerLevel == 1 }},
		{"negative das", func(c *Config) { c.DASDelay = -5 }, func(c Config) bool { return c.DASDelay == 0 }},
		{"negative board height", func(c *Config) { c.BoardHeight = -1 }, func(c Config) bool { return c.BoardHeight == MinBoardSize }},
		{"narrow board", func(c *Config) { c.BoardWidth = 2 }, func(c Config) bool { return c.BoardWidth == MinBoardSize }},
		{"volume above one", func(c *Config) { c.Volume = 3 }, func(c Config) bool { return c.Volume == 1 }},
		{"negative volume", func(c *Config) { c.Volume = -1 }, func(c Config) bool { return c.Volume == 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			assert.True(t, tt.expected(c.Normalize()))
		})
	}
}

func TestConfigValidate(t *testing.T) {
	c := DefaultConfig()
	c.BoardWidth = 3

	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewGameClampsPreview(t *testing.T) {
	c := DefaultConfig()
	c.PreviewCount = 40

	g := NewGame(c, nil)
	assert.Len(t, g.NextPieces(), 6)
}

func TestNewGameClampsBoard(t *testing.T) {
	c := DefaultConfig()
	c.BoardWidth = 0
	c.BoardHeight = -1

	g := NewGame(c, nil)
	assert.Equal(t, MinBoardSize, g.Board.W)
	assert.Equal(t, MinBoardSize, g.Board.H)
	assert.Equal(t, MinBoardSize, g.Config.BoardHeight)

	g.SpawnPiece()
	_, ok := g.CurrentPiece()
	assert.True(t, ok)
}

func TestLoadConfig(t *testing.T) {
	dir, err := ioutil.TempDir("", "termtris")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.json")

	c, err := LoadConfig(path)
	require.NoError(t, err, "a missing file yields the defaults")
	assert.Equal(t, DefaultConfig(), c)

	c.BoardWidth = 12
	c.VariableGoal = true
	c.PreviewCount = 5
	require.NoError(t, c.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)

	require.NoError(t, ioutil.WriteFile(path, []byte(`{"preview_count": 9, "enable_hold": false}`), 0644))
	loaded, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 6, loaded.PreviewCount)
	assert.False(t, loaded.EnableHold)
	assert.Equal(t, 10, loaded.BoardWidth, "unset fields keep their defaults")

	require.NoError(t, ioutil.WriteFile(path, []byte(`{"board_width": 2}`), 0644))
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	require.NoError(t, ioutil.WriteFile(path, []byte(`{`), 0644))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}
