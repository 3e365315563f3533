package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		args, err := ParseArgs([]string{"mazer"})
		require.NoError(t, err)
		assert.Equal(t, -1, args.MazeStyle)
		assert.Equal(t, -1, args.Color)
		assert.Equal(t, -1, args.AgentStyle)
		assert.Equal(t, Envs.Agents, args.Agents)
		assert.Equal(t, Envs.FrameDelayMS, args.WaitMS)
		assert.False(t, args.Interactive)
		assert.Empty(t, args.Theme)
	})

	t.Run("flags override", func(t *testing.T) {
		args, err := ParseArgs([]string{
			"mazer", "-m", "2", "-c", "5", "-a", "1", "-n", "7", "-w", "0", "-i", "-t", "theme.toml",
		})
		require.NoError(t, err)
		assert.Equal(t, 2, args.MazeStyle)
		assert.Equal(t, 5, args.Color)
		assert.Equal(t, 1, args.AgentStyle)
		assert.Equal(t, 7, args.Agents)
		assert.Equal(t, 0, args.WaitMS)
		assert.True(t, args.Interactive)
		assert.Equal(t, "theme.toml", args.Theme)
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		_, err := ParseArgs([]string{"mazer", "-c", "9"})
		assert.Error(t, err)

		_, err = ParseArgs([]string{"mazer", "-n", "0"})
		assert.Error(t, err)
	})
}
