package engine

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/beka-birhanu/mazer/core/i"
)

var (
	ErrOutOfBounds = errors.New("screen write out of bounds")
)

type screenCell struct {
	c     rune
	color uint8
	attr  i.Attribute
}

// Screen is an in-memory cell buffer implementing i.Screen. View
// serializes it to a styled frame string; styling goes through lipgloss so
// the terminal's color profile is respected.
type Screen struct {
	width  int
	height int
	cells  []screenCell
	styles [3][8]lipgloss.Style
}

// NewScreen returns a cleared screen of the given size. palette holds the
// eight base colors; dim and bold variants are derived from it.
func NewScreen(width, height int, palette [8]string) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		cells:  make([]screenCell, width*height),
	}

	for c := 0; c < 8; c++ {
		base := lipgloss.NewStyle().Foreground(lipgloss.Color(palette[c]))
		s.styles[i.AttrNormal][c] = base
		s.styles[i.AttrDim][c] = base.Faint(true)
		s.styles[i.AttrBold][c] = base.Bold(true)
	}

	s.Clear()
	return s
}

// Size returns the buffer dimensions.
func (s *Screen) Size() (width, height int) {
	return s.width, s.height
}

// Clear resets every cell to a blank.
func (s *Screen) Clear() {
	for idx := range s.cells {
		s.cells[idx] = screenCell{c: ' '}
	}
}

// Set places a styled glyph at (x, y).
func (s *Screen) Set(x, y int, c rune, color uint8, attr i.Attribute) error {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ErrOutOfBounds
	}
	s.cells[y*s.width+x] = screenCell{c: c, color: color % 8, attr: attr}
	return nil
}

// View serializes the buffer row-major into one styled string. Runs of
// cells sharing a style are rendered together to keep the frame small.
func (s *Screen) View() string {
	var b strings.Builder

	for y := 0; y < s.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}

		var run []rune
		var cur screenCell
		flush := func() {
			if len(run) == 0 {
				return
			}
			b.WriteString(s.styles[cur.attr][cur.color].Render(string(run)))
			run = run[:0]
		}

		for x := 0; x < s.width; x++ {
			cell := s.cells[y*s.width+x]
			if len(run) > 0 && (cell.color != cur.color || cell.attr != cur.attr) {
				flush()
			}
			cur = cell
			run = append(run, cell.c)
		}
		flush()
	}

	return b.String()
}
