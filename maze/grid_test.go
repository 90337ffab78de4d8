package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	t.Run("valid dimensions", func(t *testing.T) {
		g, err := NewGrid(3, 5)

		assert.NoError(t, err)
		assert.Equal(t, 3, g.Rows())
		assert.Equal(t, 5, g.Cols())
		for row := 0; row < g.Rows(); row++ {
			for col := 0; col < g.Cols(); col++ {
				cell, err := g.CellAt(CellPosition{Row: row, Col: col})
				assert.NoError(t, err)
				assert.True(t, cell.NorthWall)
				assert.True(t, cell.SouthWall)
				assert.True(t, cell.EastWall)
				assert.True(t, cell.WestWall)
			}
		}
	})

	t.Run("invalid dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}, {3, -2}} {
			g, err := NewGrid(dims[0], dims[1])

			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrInvalidDimensions)
		}
	})
}

func TestNeighborsOf(t *testing.T) {
	g, err := NewGrid(3, 3)
	assert.NoError(t, err)

	t.Run("interior cell lists all four in fixed order", func(t *testing.T) {
		center := CellPosition{Row: 1, Col: 1}
		moves := g.NeighborsOf(center)

		assert.Len(t, moves, 4)
		assert.Equal(t, []Direction{North, East, South, West}, []Direction{
			moves[0].Direction, moves[1].Direction, moves[2].Direction, moves[3].Direction,
		})
		assert.Equal(t, CellPosition{Row: 0, Col: 1}, moves[0].To)
		assert.Equal(t, CellPosition{Row: 1, Col: 2}, moves[1].To)
		assert.Equal(t, CellPosition{Row: 2, Col: 1}, moves[2].To)
		assert.Equal(t, CellPosition{Row: 1, Col: 0}, moves[3].To)
	})

	t.Run("corner cell drops out-of-bounds moves", func(t *testing.T) {
		moves := g.NeighborsOf(CellPosition{Row: 0, Col: 0})

		assert.Len(t, moves, 2)
		assert.Equal(t, East, moves[0].Direction)
		assert.Equal(t, South, moves[1].Direction)
	})

	t.Run("repeated calls agree", func(t *testing.T) {
		pos := CellPosition{Row: 2, Col: 1}
		assert.Equal(t, g.NeighborsOf(pos), g.NeighborsOf(pos))
	})
}

func TestRemoveWallBetween(t *testing.T) {
	t.Run("clears both facing walls", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		assert.NoError(t, err)

		a := CellPosition{Row: 0, Col: 0}
		b := CellPosition{Row: 0, Col: 1}
		g.RemoveWallBetween(a, b)

		assert.False(t, g.HasWall(a, East))
		assert.False(t, g.HasWall(b, West))
		// Unrelated walls stay up.
		assert.True(t, g.HasWall(a, South))
		assert.True(t, g.HasWall(b, East))
	})

	t.Run("vertical pair", func(t *testing.T) {
		g, err := NewGrid(2, 2)
		assert.NoError(t, err)

		a := CellPosition{Row: 1, Col: 0}
		b := CellPosition{Row: 0, Col: 0}
		g.RemoveWallBetween(a, b)

		assert.False(t, g.HasWall(a, North))
		assert.False(t, g.HasWall(b, South))
	})

	t.Run("panics on non-adjacent cells", func(t *testing.T) {
		g, err := NewGrid(3, 3)
		assert.NoError(t, err)

		assert.Panics(t, func() {
			g.RemoveWallBetween(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: 0})
		})
		assert.Panics(t, func() {
			g.RemoveWallBetween(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 1, Col: 1})
		})
		assert.Panics(t, func() {
			g.RemoveWallBetween(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: 2})
		})
		assert.Panics(t, func() {
			g.RemoveWallBetween(CellPosition{Row: 0, Col: 0}, CellPosition{Row: -1, Col: 0})
		})
	})
}

func TestHasWall(t *testing.T) {
	g, err := NewGrid(2, 2)
	assert.NoError(t, err)

	t.Run("out of bounds reports a wall", func(t *testing.T) {
		assert.True(t, g.HasWall(CellPosition{Row: -1, Col: 0}, South))
		assert.True(t, g.HasWall(CellPosition{Row: 0, Col: 9}, West))
	})

	t.Run("fresh grid has every wall", func(t *testing.T) {
		pos := CellPosition{Row: 1, Col: 1}
		for _, dir := range Directions {
			assert.True(t, g.HasWall(pos, dir))
		}
	})
}

func TestCellAt(t *testing.T) {
	g, err := NewGrid(2, 3)
	assert.NoError(t, err)

	_, err = g.CellAt(CellPosition{Row: 2, Col: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = g.CellAt(CellPosition{Row: 0, Col: -1})
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	g, err := NewGrid(2, 2)
	assert.NoError(t, err)

	snap := g.Snapshot()
	snap[0][0].EastWall = false

	assert.True(t, g.HasWall(CellPosition{Row: 0, Col: 0}, East))
}

func TestString(t *testing.T) {
	g, err := NewGrid(2, 2)
	assert.NoError(t, err)

	g.RemoveWallBetween(CellPosition{Row: 0, Col: 0}, CellPosition{Row: 0, Col: 1})
	g.RemoveWallBetween(CellPosition{Row: 0, Col: 1}, CellPosition{Row: 1, Col: 1})

	expected := "+---+---+\n" +
		"|       |\n" +
		"+---+   +\n" +
		"|   |   |\n" +
		"+---+---+\n"
	assert.Equal(t, expected, g.String())
}

func TestDirection(t *testing.T) {
	t.Run("opposites", func(t *testing.T) {
		assert.Equal(t, South, North.Opposite())
		assert.Equal(t, North, South.Opposite())
		assert.Equal(t, West, East.Opposite())
		assert.Equal(t, East, West.Opposite())
	})

	t.Run("parse accepts names and aliases", func(t *testing.T) {
		for input, want := range map[string]Direction{
			"north": North, "South": South, "EAST": East, "west": West,
			"up": North, "down": South, "right": East, "left": West,
		} {
			got, err := ParseDirection(input)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("parse rejects junk", func(t *testing.T) {
		_, err := ParseDirection("northwest")
		assert.Error(t, err)
	})
}
