package render

import "github.com/beka-birhanu/mazer/dir"

// WallStyle is one visual treatment of a wall pixel.
type WallStyle int

const (
	// Solid draws thin box-drawing lines.
	Solid WallStyle = iota
	// Curved is Solid with rounded corners.
	Curved
	// Double draws double lines.
	Double
	// Bold draws heavy lines.
	Bold
	// Block fills every wall pixel with a full block.
	Block
	// Hedge fills wall pixels with a braille texture chosen by hashing
	// the pixel coordinates, stable across frames.
	Hedge
)

// Style is a maze render style: the wall treatment of the outer border,
// the wall treatment of interior walls, and a palette color.
type Style struct {
	Outer WallStyle
	Inner WallStyle
	Color uint8
}

// WithColor returns a copy of the style using the given palette color.
func (s Style) WithColor(color uint8) Style {
	s.Color = color
	return s
}

// AgentStyle selects the glyph family used to draw agents.
type AgentStyle int

const (
	Smiley AgentStyle = iota
	Inchworm
	Turtle
)

// Styles is the built-in set of maze render styles the driver rolls from.
var Styles = [...]Style{
	{Outer: Solid, Inner: Solid, Color: 7},
	{Outer: Bold, Inner: Curved, Color: 7},
	{Outer: Double, Inner: Double, Color: 7},
	{Outer: Block, Inner: Block, Color: 7},
	{Outer: Block, Inner: Hedge, Color: 7},
	{Outer: Hedge, Inner: Hedge, Color: 7},
}

// AgentStyles is the built-in set of agent glyph families.
var AgentStyles = [...]AgentStyle{Smiley, Inchworm, Turtle}

// borderStyle maps a line-drawing wall style onto its glyph-table family.
// Block and Hedge never reach the table lookup.
func borderStyle(s WallStyle) dir.BorderStyle {
	switch s {
	case Curved:
		return dir.Curved
	case Double:
		return dir.Double
	case Bold:
		return dir.Bold
	}
	return dir.Single
}
