/*
Package dir implements a small bit-set over the four cardinal directions.

A Directions value doubles as a wall set (which sides of a cell are walled)
and as a connectivity mask (which neighboring pixels of a wall pixel are
also walls). The package also owns the box-drawing glyph tables used to
render a connectivity mask in a given pair of border styles.
*/
package dir

import (
	"strings"

	"github.com/beka-birhanu/mazer/core/i"
)

// Directions is a set of cardinal directions packed into the low four bits
// of a byte.
type Directions uint8

const (
	North Directions = 1 << iota
	East
	South
	West

	// All is the full set.
	All = North | East | South | West
)

// Has reports whether every direction in o is present in d.
func (d Directions) Has(o Directions) bool {
	return d&o == o
}

// Add returns the union of d and o.
func (d Directions) Add(o Directions) Directions {
	return d | o
}

// Remove returns d without the directions in o.
func (d Directions) Remove(o Directions) Directions {
	return d &^ o
}

// Complement returns the directions absent from d.
func (d Directions) Complement() Directions {
	return All &^ d
}

// Count returns the number of directions in the set.
func (d Directions) Count() int {
	n := 0
	for _, s := range [4]Directions{North, East, South, West} {
		if d.Has(s) {
			n++
		}
	}
	return n
}

// Opposite returns the set with every member replaced by its opposite
// direction.
func (d Directions) Opposite() Directions {
	var o Directions
	if d.Has(North) {
		o |= South
	}
	if d.Has(East) {
		o |= West
	}
	if d.Has(South) {
		o |= North
	}
	if d.Has(West) {
		o |= East
	}
	return o
}

// Delta returns the unit cell offset of a single-direction set. The zero
// set, and any multi-direction set, yields (0, 0).
func (d Directions) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Choose draws one member of the set uniformly at random. Returns the zero
// set when d is empty.
func (d Directions) Choose(r i.Randomizer) Directions {
	members := make([]Directions, 0, 4)
	for _, s := range [4]Directions{North, East, South, West} {
		if d.Has(s) {
			members = append(members, s)
		}
	}
	if len(members) == 0 {
		return 0
	}
	return members[r.Intn(len(members))]
}

// String returns a compact representation like "N|E" for logging.
func (d Directions) String() string {
	if d == 0 {
		return "none"
	}
	names := make([]string, 0, 4)
	for _, s := range [4]struct {
		d Directions
		n string
	}{{North, "N"}, {East, "E"}, {South, "S"}, {West, "W"}} {
		if d.Has(s.d) {
			names = append(names, s.n)
		}
	}
	return strings.Join(names, "|")
}
