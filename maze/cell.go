package maze

// Cell represents a single cell in a maze grid.
// It includes properties for walls on each side and a transient marker used
// while carving.
type Cell struct {
	// NorthWall indicates whether there is a wall on the north side of the cell.
	NorthWall bool
	// SouthWall indicates whether there is a wall on the south side of the cell.
	SouthWall bool
	// EastWall indicates whether there is a wall on the east side of the cell.
	EastWall bool
	// WestWall indicates whether there is a wall on the west side of the cell.
	WestWall bool

	visited bool
}

// HasWall reports whether the cell still has its wall facing d.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	case West:
		return c.WestWall
	}
	return true
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int
	Col int
}

// Step returns the position one cell away in direction d.
func (p CellPosition) Step(d Direction) CellPosition {
	dRow, dCol := d.Delta()
	return CellPosition{Row: p.Row + dRow, Col: p.Col + dCol}
}

// Move represents a movement from one cell to an adjacent cell in a specific
// direction.
type Move struct {
	From      CellPosition
	To        CellPosition
	Direction Direction
}
