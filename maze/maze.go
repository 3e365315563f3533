/*
Package maze provides randomized perfect-maze generation over a rectangular
grid.

A Maze is built one step at a time with BuildNext, which grows a random
spanning tree of the grid graph using an explicit frontier stack (iterative
depth-first backtracking). On completion exactly width*height-1 internal
walls have been removed, every cell is reachable from every other, and the
passages contain no cycle. The east wall of the bottom-right cell is removed
at construction as the exit; the entrance is an opening in the border next
to cell (0, 0).

The package also derives a wall-pixel bitmap of size (2w+1) x (2h+1) used
for rendering, cached behind a dirty flag and recomputed lazily. The maze
is owned and mutated by a single goroutine; no locking is provided.
*/
package maze

import (
	"errors"

	"github.com/beka-birhanu/mazer/core/i"
	"github.com/beka-birhanu/mazer/dir"
)

var (
	ErrInvalidDimensions = errors.New("maze dimensions must be at least 1x1")
)

// openCell is a frontier entry: a discovered cell plus the visited cell
// that discovered it. The same cell may be queued several times, once per
// visited neighbor; duplicates are filtered lazily when popped. Filtering
// at push time instead would change the branching statistics of the
// generated maze.
type openCell struct {
	cell CellPosition
	from CellPosition
}

// Maze owns the logical cell grid, the generation frontier and the cached
// display bitmap.
type Maze struct {
	width  int
	height int
	cells  []Cell

	frontier []openCell

	bitmap      []bool
	bitmapDirty bool
}

// New returns an ungenerated maze: every internal wall present, the exit
// wall removed, no cell visited, and the frontier seeded with the entrance
// cell (0, 0).
func New(width, height int) (*Maze, error) {
	if min(width, height) < 1 {
		return nil, ErrInvalidDimensions
	}

	cells := make([]Cell, width*height)
	for idx := range cells {
		cells[idx] = Cell{EastWall: true, SouthWall: true}
	}
	cells[width*height-1].EastWall = false // Exit

	return &Maze{
		width:       width,
		height:      height,
		cells:       cells,
		frontier:    []openCell{{}},
		bitmapDirty: true,
	}, nil
}

// Size returns the grid dimensions in cells.
func (m *Maze) Size() (width, height int) {
	return m.width, m.height
}

// BitmapSize returns the display bitmap dimensions in pixels.
func (m *Maze) BitmapSize() (width, height int) {
	return m.width*2 + 1, m.height*2 + 1
}

// CellVisited reports whether generation has reached the cell at (x, y).
func (m *Maze) CellVisited(x, y int) bool {
	return m.cells[m.cellIndex(x, y)].Visited
}

// Walls returns the set of walled directions around the cell at (x, y).
// North and west are derived from the neighboring cells, or walled on the
// grid boundary.
func (m *Maze) Walls(x, y int) dir.Directions {
	cell := m.cells[m.cellIndex(x, y)]
	var walls dir.Directions

	if cell.EastWall {
		walls = walls.Add(dir.East)
	}
	if cell.SouthWall {
		walls = walls.Add(dir.South)
	}
	if x == 0 || m.cells[m.cellIndex(x-1, y)].EastWall {
		walls = walls.Add(dir.West)
	}
	if y == 0 || m.cells[m.cellIndex(x, y-1)].SouthWall {
		walls = walls.Add(dir.North)
	}

	return walls
}

// BuildNext advances generation by one cell: it pops frontier entries until
// it finds an unvisited cell, carves the wall back to the cell that
// discovered it, and queues its unvisited neighbors in a freshly shuffled
// direction order. Returns false once the frontier is exhausted, meaning
// the maze is complete.
func (m *Maze) BuildNext(r i.Randomizer) bool {
	oc, ok := m.popUnvisited()
	if !ok {
		return false
	}

	x, y := oc.cell.X, oc.cell.Y
	current := m.cellIndex(x, y)
	m.cells[current].Visited = true

	from := m.cellIndex(oc.from.X, oc.from.Y)

	// Carve the wall between the cell and its discoverer. The entrance
	// discovers itself, so every branch is a no-op there.
	switch {
	case x < oc.from.X:
		m.cells[current].EastWall = false
	case x > oc.from.X:
		m.cells[from].EastWall = false
	case y < oc.from.Y:
		m.cells[current].SouthWall = false
	case y > oc.from.Y:
		m.cells[from].SouthWall = false
	}

	// The shuffle is re-drawn on every step; a single global order would
	// flatten the tree's branching shape.
	dirs := []dir.Directions{dir.North, dir.East, dir.South, dir.West}
	r.Shuffle(len(dirs), func(i, j int) { dirs[i], dirs[j] = dirs[j], dirs[i] })

	for _, d := range dirs {
		dx, dy := d.Delta()
		nx, ny := x+dx, y+dy
		if nx < 0 || nx >= m.width || ny < 0 || ny >= m.height {
			continue
		}
		if !m.cells[m.cellIndex(nx, ny)].Visited {
			m.frontier = append(m.frontier, openCell{
				cell: CellPosition{X: nx, Y: ny},
				from: CellPosition{X: x, Y: y},
			})
		}
	}

	m.bitmapDirty = true

	return true
}

// Bitmap returns the wall-pixel grid, recomputing it first if the wall
// structure changed since the last call. A true pixel is part of the wall
// lattice; a false pixel is passage (or undiscovered space). Callers must
// not mutate the returned slice.
func (m *Maze) Bitmap() []bool {
	if m.bitmapDirty {
		m.renderBitmap()
	}
	return m.bitmap
}

func (m *Maze) renderBitmap() {
	bmpWidth, bmpHeight := m.BitmapSize()
	bitmap := make([]bool, bmpWidth*bmpHeight)

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			cell := m.cells[m.cellIndex(x, y)]
			if !cell.Visited {
				continue
			}

			bx := x*2 + 1
			by := y*2 + 1

			bitmap[(by-1)*bmpWidth+(bx-1)] = true
			bitmap[(by-1)*bmpWidth+(bx+1)] = true
			bitmap[(by+1)*bmpWidth+(bx+1)] = true
			bitmap[(by+1)*bmpWidth+(bx-1)] = true

			if cell.EastWall {
				bitmap[by*bmpWidth+(bx+1)] = true
			}
			if cell.SouthWall {
				bitmap[(by+1)*bmpWidth+bx] = true
			}
			if x == 0 || m.cells[m.cellIndex(x-1, y)].EastWall {
				bitmap[by*bmpWidth+(bx-1)] = true
			}
			if y == 0 || m.cells[m.cellIndex(x, y-1)].SouthWall {
				bitmap[(by-1)*bmpWidth+bx] = true
			}
		}
	}

	// The entrance has no interior neighbor to derive openness from, so
	// its border pixel is forced open as a special case.
	bitmap[bmpWidth] = false

	m.bitmap = bitmap
	m.bitmapDirty = false
}

func (m *Maze) cellIndex(x, y int) int {
	return y*m.width + x
}

func (m *Maze) popUnvisited() (openCell, bool) {
	for len(m.frontier) > 0 {
		oc := m.frontier[len(m.frontier)-1]
		m.frontier = m.frontier[:len(m.frontier)-1]
		if !m.cells[m.cellIndex(oc.cell.X, oc.cell.Y)].Visited {
			return oc, true
		}
	}
	return openCell{}, false
}
