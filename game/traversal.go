package game

import (
	"github.com/beka-birhanu/maze-sprint-api/maze"
)

// Phase is the lifecycle stage of a traversal.
type Phase uint8

const (
	// PhaseIdle means no move has been accepted yet and the player sits on
	// the start cell.
	PhaseIdle Phase = iota
	// PhaseInProgress means at least one move was accepted and the goal has
	// not been reached.
	PhaseInProgress
	// PhaseCompleted means the player reached the goal cell. Nothing leaves
	// this phase; a reset replaces the traversal instead.
	PhaseCompleted
)

// String returns the wire name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseInProgress:
		return "in_progress"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// MoveOutcome is the result of a single move attempt. Blocked is an
// expected, frequent consequence of exploratory input, not an error.
type MoveOutcome uint8

const (
	// Blocked means a wall, the grid boundary or a completed traversal
	// rejected the move. The position did not change.
	Blocked MoveOutcome = iota
	// Moved means the step was accepted.
	Moved
	// MovedAndStarted means the step was accepted and it was the first of
	// the traversal.
	MovedAndStarted
	// MovedAndCompleted means the step was accepted and landed on the goal.
	MovedAndCompleted
)

// String returns the wire name of the outcome.
func (o MoveOutcome) String() string {
	switch o {
	case Blocked:
		return "blocked"
	case Moved:
		return "moved"
	case MovedAndStarted:
		return "moved_and_started"
	case MovedAndCompleted:
		return "moved_and_completed"
	}
	return "unknown"
}

// Accepted reports whether the outcome changed the player position.
func (o MoveOutcome) Accepted() bool {
	return o != Blocked
}

// Traversal tracks the player position inside a carved grid and decides move
// legality. It owns the position exclusively: the only way to change it is
// AttemptMove.
type Traversal struct {
	grid  *maze.Grid
	pos   maze.CellPosition
	goal  maze.CellPosition
	phase Phase
}

// NewTraversal places a traversal on the start cell of grid, with the goal
// fixed at the bottom-right cell.
func NewTraversal(grid *maze.Grid) *Traversal {
	return &Traversal{
		grid: grid,
		pos:  maze.CellPosition{Row: 0, Col: 0},
		goal: maze.CellPosition{Row: grid.Rows() - 1, Col: grid.Cols() - 1},
	}
}

// Pos returns the current player position.
func (t *Traversal) Pos() maze.CellPosition {
	return t.pos
}

// Goal returns the goal cell position.
func (t *Traversal) Goal() maze.CellPosition {
	return t.goal
}

// Phase returns the current lifecycle stage.
func (t *Traversal) Phase() Phase {
	return t.phase
}

// AttemptMove tries to step one cell in direction d. The step is legal when
// the current cell has no wall facing d and the destination lies inside the
// grid; the bounds check stays even though boundary cells always carry their
// outer walls. Attempts on a completed traversal are rejected without
// changing anything, so a blocked probe can be retried forever with the same
// answer.
func (t *Traversal) AttemptMove(d maze.Direction) MoveOutcome {
	if t.phase == PhaseCompleted {
		return Blocked
	}
	if t.grid.HasWall(t.pos, d) {
		return Blocked
	}

	to := t.pos.Step(d)
	if !t.grid.InBound(to.Row, to.Col) {
		// A missing boundary wall would be a carving bug, not a license to
		// leave the grid.
		return Blocked
	}

	t.pos = to
	switch {
	case t.pos == t.goal:
		t.phase = PhaseCompleted
		return MovedAndCompleted
	case t.phase == PhaseIdle:
		t.phase = PhaseInProgress
		return MovedAndStarted
	default:
		return Moved
	}
}
