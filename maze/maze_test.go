package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beka-birhanu/mazer/dir"
)

// rotateRand shuffles deterministically by rotating the sequence left by
// one: [N, E, S, W] becomes [E, S, W, N] on every draw.
type rotateRand struct{}

func (rotateRand) Intn(n int) int { return 0 }

func (rotateRand) Shuffle(n int, swap func(i, j int)) {
	for k := 0; k < n-1; k++ {
		swap(k, k+1)
	}
}

func build(t *testing.T, width, height int, r interface {
	Intn(int) int
	Shuffle(int, func(int, int))
}) *Maze {
	t.Helper()
	m, err := New(width, height)
	require.NoError(t, err)
	for m.BuildNext(r) {
	}
	return m
}

// removedInternalWalls counts absent walls shared by two in-grid cells.
// The exit and entrance openings face the outside and do not count.
func removedInternalWalls(m *Maze) int {
	width, height := m.Size()
	count := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			walls := m.Walls(x, y)
			if x+1 < width && !walls.Has(dir.East) {
				count++
			}
			if y+1 < height && !walls.Has(dir.South) {
				count++
			}
		}
	}
	return count
}

// reachable counts cells reachable from (0, 0) through open walls.
func reachable(m *Maze) int {
	width, height := m.Size()
	seen := map[CellPosition]struct{}{{X: 0, Y: 0}: {}}
	queue := []CellPosition{{X: 0, Y: 0}}

	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]

		open := m.Walls(pos.X, pos.Y).Complement()
		for _, d := range []dir.Directions{dir.North, dir.East, dir.South, dir.West} {
			if !open.Has(d) {
				continue
			}
			dx, dy := d.Delta()
			next := CellPosition{X: pos.X + dx, Y: pos.Y + dy}
			if next.X < 0 || next.X >= width || next.Y < 0 || next.Y >= height {
				continue
			}
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	return len(seen)
}

func TestNew(t *testing.T) {
	t.Run("rejects invalid dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}} {
			_, err := New(dims[0], dims[1])
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		}
	})

	t.Run("starts fully walled except the exit", func(t *testing.T) {
		m, err := New(3, 2)
		require.NoError(t, err)

		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				want := dir.All
				if x == 2 && y == 1 {
					want = want.Remove(dir.East)
				}
				assert.Equal(t, want, m.Walls(x, y))
				assert.False(t, m.CellVisited(x, y))
			}
		}
	})
}

func TestSpanningTree(t *testing.T) {
	sizes := [][2]int{{1, 1}, {2, 2}, {3, 5}, {7, 1}, {1, 6}, {8, 8}}

	for _, size := range sizes {
		width, height := size[0], size[1]
		m := build(t, width, height, rand.New(rand.NewSource(int64(width*100+height))))

		assert.Equal(t, width*height-1, removedInternalWalls(m), "size %dx%d", width, height)
		assert.Equal(t, width*height, reachable(m), "size %dx%d", width, height)

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				assert.True(t, m.CellVisited(x, y))
			}
		}
	}
}

func TestWallsSymmetry(t *testing.T) {
	m := build(t, 6, 4, rand.New(rand.NewSource(11)))

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			walls := m.Walls(x, y)
			if x+1 < 6 {
				assert.Equal(t, walls.Has(dir.East), m.Walls(x+1, y).Has(dir.West),
					"east/west disagree at (%d,%d)", x, y)
			}
			if y+1 < 4 {
				assert.Equal(t, walls.Has(dir.South), m.Walls(x, y+1).Has(dir.North),
					"south/north disagree at (%d,%d)", x, y)
			}
		}
	}
}

func TestFixedShuffleTwoByTwo(t *testing.T) {
	m, err := New(2, 2)
	require.NoError(t, err)

	steps := 0
	for m.BuildNext(rotateRand{}) {
		steps++
	}

	// One productive step per cell; stale frontier duplicates are skipped,
	// not counted.
	assert.Equal(t, 4, steps)
	assert.Equal(t, 3, removedInternalWalls(m))
	assert.Equal(t, 4, reachable(m))

	// The rotated order explores south first from the entrance, carving
	// the chain (0,0)-(0,1)-(1,1)-(1,0).
	assert.Equal(t, dir.North|dir.East|dir.West, m.Walls(0, 0))
	assert.Equal(t, dir.South|dir.West, m.Walls(0, 1))
	assert.Equal(t, dir.South, m.Walls(1, 1)) // east is the exit, north and west carved
	assert.Equal(t, dir.North|dir.East|dir.West, m.Walls(1, 0))
}

func TestOneByOne(t *testing.T) {
	m, err := New(1, 1)
	require.NoError(t, err)

	assert.True(t, m.BuildNext(rotateRand{}))
	assert.False(t, m.BuildNext(rotateRand{}))

	assert.True(t, m.CellVisited(0, 0))
	assert.Equal(t, dir.North|dir.South|dir.West, m.Walls(0, 0))
}

func TestBitmap(t *testing.T) {
	t.Run("one by one layout", func(t *testing.T) {
		m := build(t, 1, 1, rotateRand{})
		bmp := m.Bitmap()

		want := []bool{
			true, true, true,
			false, false, false, // entrance, open center, exit
			true, true, true,
		}
		assert.Equal(t, want, bmp)
	})

	t.Run("entrance pixel stays open", func(t *testing.T) {
		m := build(t, 4, 3, rand.New(rand.NewSource(5)))
		bmpWidth, _ := m.BitmapSize()
		assert.False(t, m.Bitmap()[bmpWidth])
		// Its neighbors on the border remain walls.
		assert.True(t, m.Bitmap()[0])
		assert.True(t, m.Bitmap()[2*bmpWidth])
	})

	t.Run("cached until the walls change", func(t *testing.T) {
		m, err := New(2, 2)
		require.NoError(t, err)

		first := m.Bitmap()
		second := m.Bitmap()
		assert.True(t, &first[0] == &second[0], "expected the cached slice")

		require.True(t, m.BuildNext(rotateRand{}))
		third := m.Bitmap()
		assert.NotEqual(t, first, third, "expected a recompute after a build step")
	})

	t.Run("unvisited cells contribute nothing", func(t *testing.T) {
		m, err := New(2, 2)
		require.NoError(t, err)

		for _, px := range m.Bitmap() {
			assert.False(t, px)
		}
	})
}
