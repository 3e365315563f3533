package dir

// BorderStyle selects one of the box-drawing line families.
type BorderStyle int

const (
	Single BorderStyle = iota
	Curved
	Double
	Bold
)

// Each table maps a 4-bit connectivity mask to a glyph. Index order is the
// Directions bit layout: N=1, E=2, S=4, W=8. Mixed tables are named
// <vertical>-<horizontal>, where the vertical family draws the north/south
// strokes and the horizontal family the east/west strokes.

var bordersSingle = [16]rune{
	' ', '╵', '╶', '└',
	'╷', '│', '┌', '├',
	'╴', '┘', '─', '┴',
	'┐', '┤', '┬', '┼',
}

var bordersCurved = [16]rune{
	' ', '╵', '╶', '╰',
	'╷', '│', '╭', '├',
	'╴', '╯', '─', '┴',
	'╮', '┤', '┬', '┼',
}

var bordersDouble = [16]rune{
	' ', '╨', '╞', '╚',
	'╥', '║', '╔', '╠',
	'╡', '╝', '═', '╩',
	'╗', '╣', '╦', '╬',
}

var bordersDoubleSingle = [16]rune{
	' ', '╨', '╶', '╙',
	'╥', '║', '╓', '╟',
	'╴', '╜', '─', '╨',
	'╖', '╢', '╥', '╫',
}

var bordersSingleDouble = [16]rune{
	' ', '╵', '╞', '╘',
	'╷', '│', '╒', '╞',
	'╡', '╛', '═', '╧',
	'╕', '╡', '╤', '╪',
}

var bordersBold = [16]rune{
	' ', '╹', '╺', '┗',
	'╻', '┃', '┏', '┣',
	'╸', '┛', '━', '┻',
	'┓', '┫', '┳', '╋',
}

var bordersBoldSingle = [16]rune{
	' ', '╹', '╶', '┖',
	'╻', '┃', '┎', '┠',
	'╴', '┚', '─', '┸',
	'┒', '┨', '┰', '╂',
}

var bordersSingleBold = [16]rune{
	' ', '╵', '╺', '┕',
	'╷', '│', '┍', '┝',
	'╸', '┙', '━', '┷',
	'┑', '┥', '┯', '┿',
}

// Border resolves the glyph for connectivity mask d with the given style
// pair. vertical styles the north/south strokes and horizontal the
// east/west strokes; the curved family only differs from single in its
// corners, so mixed pairs reuse the single tables.
func (d Directions) Border(vertical, horizontal BorderStyle) rune {
	var table *[16]rune

	switch {
	case vertical == Single && horizontal == Single:
		table = &bordersSingle
	case vertical == Curved && horizontal == Curved:
		table = &bordersCurved
	case vertical == Bold && horizontal == Bold:
		table = &bordersBold
	case vertical == Bold && (horizontal == Single || horizontal == Curved):
		table = &bordersBoldSingle
	case (vertical == Single || vertical == Curved) && horizontal == Bold:
		table = &bordersSingleBold
	case vertical == Double && horizontal == Double:
		table = &bordersDouble
	case vertical == Double && (horizontal == Single || horizontal == Curved):
		table = &bordersDoubleSingle
	case (vertical == Single || vertical == Curved) && horizontal == Double:
		table = &bordersSingleDouble
	default:
		table = &bordersSingle
	}

	return table[d&All]
}
