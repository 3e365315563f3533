/*
Package render turns a maze's wall-pixel bitmap plus the active agents into
styled glyphs on a Screen.

Wall pixels resolve to box-drawing glyphs through a connectivity mask of
their four neighboring pixels, except for the Block style (one fixed glyph)
and the Hedge style (a braille texture keyed by a stable coordinate hash).
Pixels covered by an agent render the agent's glyph instead.
*/
package render

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/beka-birhanu/mazer/agent"
	"github.com/beka-birhanu/mazer/core/i"
	"github.com/beka-birhanu/mazer/dir"
	"github.com/beka-birhanu/mazer/maze"
)

// hedgeRunes is the fixed character set the Hedge style draws from.
var hedgeRunes = [...]rune{
	'⡟', '⡪', '⡯', '⡳', '⡵', '⡵', '⡷', '⡹', '⡺', '⡻', '⡼', '⡽', '⡾',
	'⡿', '⢏', '⢕', '⢗', '⢜', '⢝', '⢞', '⢟', '⢮', '⢯', '⢷', '⢻', '⢽',
	'⢾', '⢿', '⣎', '⣏', '⣕', '⣗', '⣝', '⣞', '⣟', '⣣', '⣧', '⣪', '⣫',
	'⣮', '⣯', '⣳', '⣵', '⣷', '⣹', '⣺', '⣻', '⣼', '⣽', '⣾', '⣿',
}

const (
	blockRune   = '█'
	pendingRune = '∎'
)

// Renderer writes maze frames to a Screen. The hedge seed is fixed for the
// renderer's lifetime, so an unchanged maze renders the same texture on
// every frame without any per-pixel state.
type Renderer struct {
	screen i.Screen
	seed   uint64
}

// New returns a renderer targeting screen. seed keys the hedge texture;
// callers draw it at random once per run.
func New(screen i.Screen, seed uint64) *Renderer {
	return &Renderer{screen: screen, seed: seed}
}

// Render draws one full frame: the maze in style, overlaid with every
// agent in agents at its render position. The first write error aborts the
// frame and is returned.
func (r *Renderer) Render(m *maze.Maze, style Style, agents []*agent.Agent, agentStyle AgentStyle) error {
	bmp := m.Bitmap()
	bmpWidth, bmpHeight := m.BitmapSize()
	width, height := m.Size()

	for y := 0; y < bmpHeight; y++ {
	pixels:
		for x := 0; x < bmpWidth; x++ {
			for _, a := range agents {
				ax, ay := a.RenderPosition()
				if ax == x && ay == y {
					if err := r.screen.Set(x, y, agentRune(agentStyle, a), a.Color(), i.AttrBold); err != nil {
						return err
					}
					continue pixels
				}
			}

			if !bmp[y*bmpWidth+x] {
				cellX, cellY := (x-1)/2, (y-1)/2
				if x%2 == 1 && y%2 == 1 && cellX < width && cellY < height && !m.CellVisited(cellX, cellY) {
					// Undiscovered cell centers get a dim marker so the
					// construction frontier stays visible.
					if err := r.screen.Set(x, y, pendingRune, style.Color, i.AttrDim); err != nil {
						return err
					}
					continue
				}

				if err := r.screen.Set(x, y, ' ', style.Color, i.AttrNormal); err != nil {
					return err
				}
				continue
			}

			var mask dir.Directions
			if y > 0 && bmp[(y-1)*bmpWidth+x] {
				mask = mask.Add(dir.North)
			}
			if y+1 < bmpHeight && bmp[(y+1)*bmpWidth+x] {
				mask = mask.Add(dir.South)
			}
			if x > 0 && bmp[y*bmpWidth+(x-1)] {
				mask = mask.Add(dir.West)
			}
			if x+1 < bmpWidth && bmp[y*bmpWidth+(x+1)] {
				mask = mask.Add(dir.East)
			}

			xBorder := x == 0 || x+1 == bmpWidth
			yBorder := y == 0 || y+1 == bmpHeight
			border := xBorder || yBorder

			var c rune
			switch {
			case style.Outer == Block && border:
				c = blockRune
			case style.Outer == Hedge && border:
				c = r.hedgeRune(x, y)
			case style.Inner == Block && !border:
				c = blockRune
			case style.Inner == Hedge && !border:
				c = r.hedgeRune(x, y)
			default:
				// A border column draws vertical strokes and a border row
				// horizontal ones, so each stroke family follows the style
				// of the border it may belong to.
				vertical := style.Inner
				if xBorder {
					vertical = style.Outer
				}
				horizontal := style.Inner
				if yBorder {
					horizontal = style.Outer
				}
				c = mask.Border(borderStyle(vertical), borderStyle(horizontal))
			}

			if err := r.screen.Set(x, y, c, style.Color, i.AttrNormal); err != nil {
				return err
			}
		}
	}

	return nil
}

// hedgeRune picks the texture glyph for a pixel by hashing its coordinates
// with the renderer's seed.
func (r *Renderer) hedgeRune(x, y int) rune {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:], r.seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(x))
	binary.LittleEndian.PutUint64(buf[16:], uint64(y))
	return hedgeRunes[xxhash.Sum64(buf[:])%uint64(len(hedgeRunes))]
}

// agentRune selects an agent's glyph from its style, state and facing.
func agentRune(style AgentStyle, a *agent.Agent) rune {
	switch style {
	case Inchworm:
		switch a.State() {
		case agent.StateMoving:
			return '∿'
		case agent.StateHalted:
			return 'o'
		}
		return 'ω'
	case Turtle:
		switch a.State() {
		case agent.StateMoving:
			switch a.Facing() {
			case dir.North:
				return '▲'
			case dir.East:
				return '▶'
			case dir.South:
				return '▼'
			case dir.West:
				return '◀'
			}
		case agent.StateHalted:
			return '■'
		}
		return '●'
	}
	return '☻'
}
