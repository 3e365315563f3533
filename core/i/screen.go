package i

// Attribute is the text weight applied to a glyph.
type Attribute int

const (
	AttrNormal Attribute = iota
	AttrDim
	AttrBold
)

// Screen is a positioned, styled glyph sink. Colors are indices into an
// eight-entry palette owned by the implementation.
type Screen interface {
	// Set places a glyph at the given column and row.
	Set(x, y int, c rune, color uint8, attr Attribute) error
}
