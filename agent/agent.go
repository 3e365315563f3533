/*
Package agent implements an autonomous maze solver.

An Agent performs a depth-first search with backtracking over an already
generated maze, advancing one state transition per tick. It keeps its own
stack of junctions (cells with directions still to try) and a closed set of
cells it has entered, so it never explores a cell twice. Because the maze's
passages form a spanning tree, the walk terminates in finitely many steps,
normally by stepping off the grid through the exit opening.
*/
package agent

import (
	"github.com/google/uuid"

	"github.com/beka-birhanu/mazer/core/i"
	"github.com/beka-birhanu/mazer/dir"
	"github.com/beka-birhanu/mazer/maze"
)

// Maze is the read-only view of a maze an agent navigates.
type Maze interface {
	// Walls returns the walled directions around the cell at (x, y).
	Walls(x, y int) dir.Directions
	// Size returns the grid dimensions in cells.
	Size() (width, height int)
}

// State identifies the solver's position in its tick state machine.
type State int

const (
	// StateThinking means the agent sits on a junction choosing its next move.
	StateThinking State = iota
	// StateMoving means the agent is crossing into the adjacent cell.
	StateMoving
	// StateHalted is terminal: the agent exited the maze or exhausted it.
	StateHalted
)

// Junction records a cell on the search stack: the directions not yet
// tried and the direction back to the cell that led here. A zero From
// marks the root junction at the entrance.
type Junction struct {
	Open dir.Directions
	From dir.Directions
}

// Agent is a single solver walking the maze one step per tick.
type Agent struct {
	id     uuid.UUID
	maze   Maze
	pos    maze.CellPosition
	state  State
	moving dir.Directions // direction in flight while StateMoving
	facing dir.Directions
	path   []Junction
	closed map[maze.CellPosition]struct{}
	exited bool
	color  uint8
}

// New returns an agent standing on the entrance cell of m, with the
// entrance's passable directions as its root junction.
func New(m Maze, color uint8) *Agent {
	return &Agent{
		id:     uuid.New(),
		maze:   m,
		state:  StateThinking,
		facing: dir.East,
		path:   []Junction{{Open: m.Walls(0, 0).Complement()}},
		closed: make(map[maze.CellPosition]struct{}),
		color:  color,
	}
}

// Update advances the state machine by exactly one transition.
func (a *Agent) Update(r i.Randomizer) {
	switch a.state {
	case StateThinking:
		top := &a.path[len(a.path)-1]
		switch {
		case top.Open != 0:
			d := top.Open.Choose(r)
			top.Open = top.Open.Remove(d)
			a.moving = d
			a.facing = d
			a.state = StateMoving
		case top.From != 0:
			// Junction exhausted: retreat toward its discoverer.
			a.moving = top.From
			a.facing = top.From
			a.path = a.path[:len(a.path)-1]
			a.state = StateMoving
		default:
			// Root exhausted without an exit. Cannot happen for a maze
			// whose exit is reachable from the entrance.
			a.state = StateHalted
		}

	case StateMoving:
		a.closed[a.pos] = struct{}{}

		dx, dy := a.moving.Delta()
		next := maze.CellPosition{X: a.pos.X + dx, Y: a.pos.Y + dy}

		width, height := a.maze.Size()
		if next.X < 0 || next.X >= width || next.Y < 0 || next.Y >= height {
			// Stepping off the grid is only possible through the exit
			// opening; the walk is over.
			a.exited = true
			a.state = StateHalted
			return
		}

		a.pos = next
		if _, seen := a.closed[next]; !seen {
			back := a.moving.Opposite()
			a.path = append(a.path, Junction{
				Open: a.maze.Walls(next.X, next.Y).Complement().Remove(back),
				From: back,
			})
		}
		a.facing = a.moving
		a.state = StateThinking

	case StateHalted:
	}
}

// RenderPosition returns the agent's bitmap coordinates for this frame.
// The logical cell maps to its bitmap center; while moving the position is
// offset one pixel toward the destination so the agent visibly crosses the
// wall pixel, and after exiting it is nudged one pixel past the border so
// the glyph leaves the frame.
func (a *Agent) RenderPosition() (x, y int) {
	bx := a.pos.X*2 + 1
	by := a.pos.Y*2 + 1

	dx, dy := a.moving.Delta()
	switch {
	case a.state == StateMoving:
		return bx + dx, by + dy
	case a.state == StateHalted && a.exited:
		return bx + 2*dx, by + 2*dy
	}
	return bx, by
}

// ID returns the agent's identity, used for logging.
func (a *Agent) ID() uuid.UUID {
	return a.id
}

// Position returns the agent's current cell.
func (a *Agent) Position() maze.CellPosition {
	return a.pos
}

// State returns the current state machine state.
func (a *Agent) State() State {
	return a.state
}

// Facing returns the last direction the agent moved in.
func (a *Agent) Facing() dir.Directions {
	return a.facing
}

// Color returns the agent's palette index.
func (a *Agent) Color() uint8 {
	return a.color
}

// Exited reports whether the agent halted by stepping off the grid
// through the exit opening, as opposed to exhausting its search stack.
func (a *Agent) Exited() bool {
	return a.exited
}

// Halted reports whether the agent has reached its terminal state.
func (a *Agent) Halted() bool {
	return a.state == StateHalted
}

// Path returns the agent's junction stack, root first. Exposed for tests
// and diagnostics.
func (a *Agent) Path() []Junction {
	return a.path
}
