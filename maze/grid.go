package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimensions is returned when a grid is constructed with fewer
	// than one row or column.
	ErrInvalidDimensions = errors.New("maze: rows and cols must be at least 1")

	// ErrOutOfBounds is returned when a cell position falls outside the grid.
	ErrOutOfBounds = errors.New("maze: cell position out of bounds")
)

// Grid is a fixed-size rectangular collection of cells. It is pure structure:
// the only mutation it offers is removing the wall between two adjacent
// cells, which generators drive. The zero value is not usable; construct with
// NewGrid.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid returns a rows by cols grid with every wall present and no cell
// visited.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}

	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
		for j := range cells[i] {
			cells[i][j] = Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid.
func (g *Grid) Cols() int {
	return g.cols
}

// InBound reports whether row and col address a cell of the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// CellAt returns a copy of the cell at pos.
func (g *Grid) CellAt(pos CellPosition) (Cell, error) {
	if !g.InBound(pos.Row, pos.Col) {
		return Cell{}, ErrOutOfBounds
	}
	return g.cells[pos.Row][pos.Col], nil
}

// HasWall reports whether the cell at pos still has its wall facing d.
// Out-of-bounds positions report true: there is never a passage out of the
// grid.
func (g *Grid) HasWall(pos CellPosition, d Direction) bool {
	if !g.InBound(pos.Row, pos.Col) {
		return true
	}
	return g.cells[pos.Row][pos.Col].HasWall(d)
}

// NeighborsOf finds all moves from pos to cells inside the grid, walls
// notwithstanding. Neighbors are listed in the fixed north, east, south,
// west order, so repeated calls yield identical slices.
func (g *Grid) NeighborsOf(pos CellPosition) []Move {
	result := make([]Move, 0, len(Directions))
	for _, dir := range Directions {
		to := pos.Step(dir)
		if g.InBound(to.Row, to.Col) {
			result = append(result, Move{From: pos, To: to, Direction: dir})
		}
	}
	return result
}

// RemoveWallBetween opens the wall separating two adjacent cells, clearing
// the flag on each cell facing the other as a single operation. The cells
// must be distinct and grid-adjacent; anything else is a bug in the caller
// and panics.
func (g *Grid) RemoveWallBetween(a, b CellPosition) {
	dir, ok := g.adjacency(a, b)
	if !ok {
		panic(fmt.Sprintf("maze: RemoveWallBetween(%+v, %+v): cells are not adjacent", a, b))
	}

	switch dir {
	case North:
		g.cells[a.Row][a.Col].NorthWall = false
		g.cells[b.Row][b.Col].SouthWall = false
	case South:
		g.cells[a.Row][a.Col].SouthWall = false
		g.cells[b.Row][b.Col].NorthWall = false
	case East:
		g.cells[a.Row][a.Col].EastWall = false
		g.cells[b.Row][b.Col].WestWall = false
	case West:
		g.cells[a.Row][a.Col].WestWall = false
		g.cells[b.Row][b.Col].EastWall = false
	}
}

// adjacency resolves the direction from a to b when both are in bounds and
// exactly one step apart.
func (g *Grid) adjacency(a, b CellPosition) (Direction, bool) {
	if !g.InBound(a.Row, a.Col) || !g.InBound(b.Row, b.Col) {
		return North, false
	}
	for _, dir := range Directions {
		if a.Step(dir) == b {
			return dir, true
		}
	}
	return North, false
}

// Snapshot returns a deep copy of the grid's cells for read-only consumers
// such as renderers. Mutating the copy does not affect the grid.
func (g *Grid) Snapshot() [][]Cell {
	snap := make([][]Cell, g.rows)
	for i := range snap {
		snap[i] = make([]Cell, g.cols)
		copy(snap[i], g.cells[i])
	}
	return snap
}

// resetForCarve restores every wall and clears the visited markers, so a
// grid can be carved more than once.
func (g *Grid) resetForCarve() {
	for i := range g.cells {
		for j := range g.cells[i] {
			g.cells[i][j] = Cell{
				NorthWall: true,
				SouthWall: true,
				EastWall:  true,
				WestWall:  true,
			}
		}
	}
}

// String provides a textual representation of the maze.
func (g *Grid) String() string {
	var output string

	// Top boundary
	output += "+" + strings.Repeat("---+", g.cols) + "\n"

	for row := 0; row < g.rows; row++ {
		// Cell rows
		cellRow := "|"
		for col := 0; col < g.cols; col++ {
			cell := g.cells[row][col]
			if !cell.EastWall {
				cellRow += "    "
			} else {
				cellRow += "   |"
			}
		}
		output += cellRow + "\n"

		// Wall rows
		wallRow := "+"
		for col := 0; col < g.cols; col++ {
			cell := g.cells[row][col]
			if !cell.SouthWall {
				wallRow += "   +"
			} else {
				wallRow += "---+"
			}
		}
		output += wallRow + "\n"
	}

	return output
}
