package maze

import (
	"fmt"
	"strings"
)

// Direction identifies one of the four cardinal directions a cell wall can
// face. North decreases the row index, South increases it, East increases
// the column index and West decreases it.
type Direction uint8

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists the four directions in the fixed order neighbor lookups
// use: north, east, south, west. Ranging over this array is deterministic,
// unlike ranging over a map.
var Directions = [4]Direction{North, East, South, West}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "unknown"
}

// Opposite returns the direction facing d. The wall a cell holds toward a
// neighbor is the neighbor's Opposite wall.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// Delta returns the row and column offset of a single step in direction d.
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

// ParseDirection maps a direction name, case-insensitively, onto its
// Direction. The screen-relative aliases up, down, left and right are
// accepted as well.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "north", "up":
		return North, nil
	case "south", "down":
		return South, nil
	case "east", "right":
		return East, nil
	case "west", "left":
		return West, nil
	}
	return North, fmt.Errorf("unknown direction %q", s)
}
