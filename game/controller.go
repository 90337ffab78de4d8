package game

import (
	"time"

	"github.com/beka-birhanu/maze-sprint-api/maze"
)

// MoveResult is what a move request reports back to the caller.
type MoveResult struct {
	Outcome  MoveOutcome
	Position maze.CellPosition
	Elapsed  time.Duration
}

// CompletionEvent describes a finished sprint.
type CompletionEvent struct {
	Rows    int
	Cols    int
	Moves   int
	Elapsed time.Duration
}

// CompletionHandler consumes completion events, for example to persist the
// run or update a leaderboard.
type CompletionHandler func(CompletionEvent)

// Snapshot captures the full observable state of a session at one instant.
type Snapshot struct {
	Rows     int
	Cols     int
	Cells    [][]maze.Cell
	Position maze.CellPosition
	Goal     maze.CellPosition
	Phase    Phase
	Moves    int
	Elapsed  time.Duration
}

// Config holds the construction parameters for a Controller.
type Config struct {
	Rows int
	Cols int
	// Carver generates the maze on construction and on every reset. Nil
	// gets a time-seeded depth-first backtracker.
	Carver maze.Generator
	// OnComplete, when set, runs synchronously as part of the move that
	// reaches the goal.
	OnComplete CompletionHandler
}

// Controller owns one game session: the grid, the traversal and the clock.
// It is the sole writer of all three and replaces them wholesale on Reset.
// It is not safe for concurrent use; callers driving it from multiple
// goroutines must serialize access the way service.SprintManager does.
type Controller struct {
	rows       int
	cols       int
	carver     maze.Generator
	onComplete CompletionHandler

	grid      *maze.Grid
	traversal *Traversal
	clock     *RunClock
	moves     int
}

// NewController validates cfg and builds a controller with a freshly carved
// maze, ready for moves.
func NewController(cfg Config) (*Controller, error) {
	carver := cfg.Carver
	if carver == nil {
		carver = maze.NewDFSGenerator(nil)
	}

	c := &Controller{
		rows:       cfg.Rows,
		cols:       cfg.Cols,
		carver:     carver,
		onComplete: cfg.OnComplete,
	}
	if err := c.Reset(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reset discards the grid, traversal and clock and builds fresh ones: a new
// carve, the player back on the start cell, a clock that has never run. A
// reset is allowed at any time, including mid-sprint.
func (c *Controller) Reset() error {
	grid, err := maze.NewGrid(c.rows, c.cols)
	if err != nil {
		return err
	}
	c.carver.Generate(grid)

	c.grid = grid
	c.traversal = NewTraversal(grid)
	c.clock = NewRunClock()
	c.moves = 0
	return nil
}

// RequestMove forwards one directional input to the traversal. The first
// accepted move starts the clock; the move that reaches the goal stops it
// and fires the completion handler with the final figures. When the very
// first move already wins, the clock is started and stopped in the same
// request.
func (c *Controller) RequestMove(d maze.Direction) MoveResult {
	outcome := c.traversal.AttemptMove(d)
	switch outcome {
	case MovedAndStarted:
		c.moves++
		c.clock.Start()
	case Moved:
		c.moves++
	case MovedAndCompleted:
		c.moves++
		c.clock.Start()
		c.clock.Stop()
		if c.onComplete != nil {
			c.onComplete(CompletionEvent{
				Rows:    c.rows,
				Cols:    c.cols,
				Moves:   c.moves,
				Elapsed: c.clock.Elapsed(),
			})
		}
	}

	return MoveResult{
		Outcome:  outcome,
		Position: c.traversal.Pos(),
		Elapsed:  c.clock.Elapsed(),
	}
}

// CurrentElapsed is cheap enough to poll on every frame: zero before the
// first move, live during the sprint, frozen after completion.
func (c *Controller) CurrentElapsed() time.Duration {
	return c.clock.Elapsed()
}

// CurrentPosition returns the player position.
func (c *Controller) CurrentPosition() maze.CellPosition {
	return c.traversal.Pos()
}

// Phase returns the lifecycle stage of the current traversal.
func (c *Controller) Phase() Phase {
	return c.traversal.Phase()
}

// Moves returns the number of accepted moves so far this sprint.
func (c *Controller) Moves() int {
	return c.moves
}

// Goal returns the goal cell position.
func (c *Controller) Goal() maze.CellPosition {
	return c.traversal.Goal()
}

// Rows returns the grid row count.
func (c *Controller) Rows() int {
	return c.rows
}

// Cols returns the grid column count.
func (c *Controller) Cols() int {
	return c.cols
}

// SnapshotGrid returns a deep copy of the maze cells for rendering.
func (c *Controller) SnapshotGrid() [][]maze.Cell {
	return c.grid.Snapshot()
}

// Snapshot bundles grid, position, phase and timing into one read model.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Rows:     c.rows,
		Cols:     c.cols,
		Cells:    c.grid.Snapshot(),
		Position: c.traversal.Pos(),
		Goal:     c.traversal.Goal(),
		Phase:    c.traversal.Phase(),
		Moves:    c.moves,
		Elapsed:  c.clock.Elapsed(),
	}
}
