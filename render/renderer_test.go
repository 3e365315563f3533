package render_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/mazer/agent"
	"github.com/beka-birhanu/mazer/core/i"
	"github.com/beka-birhanu/mazer/maze"
	"github.com/beka-birhanu/mazer/render"
)

// gridScreen records every write for later inspection.
type gridScreen struct {
	width  int
	height int
	runes  []rune
	colors []uint8
	attrs  []i.Attribute
}

func newGridScreen(width, height int) *gridScreen {
	g := &gridScreen{
		width:  width,
		height: height,
		runes:  make([]rune, width*height),
		colors: make([]uint8, width*height),
		attrs:  make([]i.Attribute, width*height),
	}
	for idx := range g.runes {
		g.runes[idx] = ' '
	}
	return g
}

func (g *gridScreen) Set(x, y int, c rune, color uint8, attr i.Attribute) error {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return errors.New("write out of bounds")
	}
	g.runes[y*g.width+x] = c
	g.colors[y*g.width+x] = color
	g.attrs[y*g.width+x] = attr
	return nil
}

func (g *gridScreen) at(x, y int) rune { return g.runes[y*g.width+x] }

// failingScreen errors on its first write.
type failingScreen struct{ err error }

func (f *failingScreen) Set(int, int, rune, uint8, i.Attribute) error { return f.err }

func buildMaze(t *testing.T, width, height int, seed int64) *maze.Maze {
	t.Helper()
	m, err := maze.New(width, height)
	require.NoError(t, err)
	r := rand.New(rand.NewSource(seed))
	for m.BuildNext(r) {
	}
	return m
}

func renderTo(t *testing.T, m *maze.Maze, style render.Style, seed uint64, agents []*agent.Agent, agentStyle render.AgentStyle) *gridScreen {
	t.Helper()
	width, height := m.BitmapSize()
	screen := newGridScreen(width, height)
	require.NoError(t, render.New(screen, seed).Render(m, style, agents, agentStyle))
	return screen
}

func TestSolidOneByOne(t *testing.T) {
	m := buildMaze(t, 1, 1, 1)
	screen := renderTo(t, m, render.Style{Outer: render.Solid, Inner: render.Solid, Color: 7}, 0, nil, render.Smiley)

	want := [][]rune{
		{'╶', '─', '╴'},
		{' ', ' ', ' '}, // entrance, open interior, exit
		{'╶', '─', '╴'},
	}
	for y, row := range want {
		for x, c := range row {
			assert.Equal(t, string(c), string(screen.at(x, y)), "pixel (%d,%d)", x, y)
		}
	}
}

func TestBlockStyle(t *testing.T) {
	m := buildMaze(t, 1, 1, 1)
	screen := renderTo(t, m, render.Style{Outer: render.Block, Inner: render.Block, Color: 3}, 0, nil, render.Smiley)

	for x := 0; x < 3; x++ {
		assert.Equal(t, '█', screen.at(x, 0))
		assert.Equal(t, '█', screen.at(x, 2))
		assert.Equal(t, ' ', screen.at(x, 1))
	}
}

func TestPendingMarkersOnUngeneratedMaze(t *testing.T) {
	m, err := maze.New(2, 2)
	require.NoError(t, err)

	style := render.Style{Outer: render.Solid, Inner: render.Solid, Color: 5}
	screen := renderTo(t, m, style, 0, nil, render.Smiley)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if x%2 == 1 && y%2 == 1 {
				assert.Equal(t, '∎', screen.at(x, y), "center (%d,%d)", x, y)
				assert.Equal(t, i.AttrDim, screen.attrs[y*5+x])
				assert.Equal(t, uint8(5), screen.colors[y*5+x])
				continue
			}
			assert.Equal(t, ' ', screen.at(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestHedgeTexture(t *testing.T) {
	m := buildMaze(t, 4, 4, 9)
	style := render.Style{Outer: render.Hedge, Inner: render.Hedge, Color: 2}

	t.Run("deterministic across frames", func(t *testing.T) {
		first := renderTo(t, m, style, 42, nil, render.Smiley)
		second := renderTo(t, m, style, 42, nil, render.Smiley)
		assert.Equal(t, first.runes, second.runes)
	})

	t.Run("seed changes the texture", func(t *testing.T) {
		first := renderTo(t, m, style, 42, nil, render.Smiley)
		other := renderTo(t, m, style, 43, nil, render.Smiley)
		assert.NotEqual(t, first.runes, other.runes)
	})

	t.Run("wall pixels draw braille glyphs", func(t *testing.T) {
		screen := renderTo(t, m, style, 42, nil, render.Smiley)
		bmpWidth, _ := m.BitmapSize()
		for idx, wall := range m.Bitmap() {
			if !wall {
				continue
			}
			c := screen.runes[idx]
			assert.True(t, c >= 0x2800 && c <= 0x28FF,
				"pixel (%d,%d) is not braille: %q", idx%bmpWidth, idx/bmpWidth, c)
		}
	})
}

func TestAgentOverlay(t *testing.T) {
	m := buildMaze(t, 2, 2, 4)
	a := agent.New(m, 6)

	style := render.Style{Outer: render.Solid, Inner: render.Solid, Color: 7}
	screen := renderTo(t, m, style, 0, []*agent.Agent{a}, render.Smiley)

	// A fresh agent thinks on the entrance cell, bitmap center (1, 1).
	assert.Equal(t, '☻', screen.at(1, 1))
	assert.Equal(t, uint8(6), screen.colors[1*5+1])
	assert.Equal(t, i.AttrBold, screen.attrs[1*5+1])
}

func TestWriteErrorPropagates(t *testing.T) {
	m := buildMaze(t, 2, 2, 4)
	sinkErr := errors.New("sink closed")

	r := render.New(&failingScreen{err: sinkErr}, 0)
	err := r.Render(m, render.Style{Outer: render.Solid, Inner: render.Solid}, nil, render.Smiley)
	assert.ErrorIs(t, err, sinkErr)
}
