package maze

// Cell represents a single cell in the maze grid.
//
// Only the east and south walls are stored. A cell's west wall is the east
// wall of its western neighbor and its north wall is the south wall of its
// northern neighbor (or the grid boundary), so the two cells sharing a
// wall can never disagree about it.
type Cell struct {
	// EastWall indicates whether there is a wall on the east side of the cell.
	EastWall bool
	// SouthWall indicates whether there is a wall on the south side of the cell.
	SouthWall bool
	// Visited indicates whether generation has reached the cell.
	Visited bool
}

// CellPosition identifies a cell by its column and row.
type CellPosition struct {
	X int
	Y int
}
