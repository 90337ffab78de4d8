// Package sprintapi provides structures and utilities for driving maze
// sprints over REST.
package sprintapi

import (
	"time"

	dmn "github.com/beka-birhanu/maze-sprint-api/domain"
	"github.com/beka-birhanu/maze-sprint-api/game"
	"github.com/beka-birhanu/maze-sprint-api/maze"
)

// MoveRequest represents one directional input.
type MoveRequest struct {
	Direction string `json:"direction" binding:"required"`
}

// Position is a cell address in grid coordinates.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// CellWalls flags which sides of a cell are still closed.
type CellWalls struct {
	North bool `json:"north"`
	South bool `json:"south"`
	East  bool `json:"east"`
	West  bool `json:"west"`
}

// StateResponse represents the full observable state of a sprint.
type StateResponse struct {
	Rows      int           `json:"rows"`
	Cols      int           `json:"cols"`
	Cells     [][]CellWalls `json:"cells"`
	Position  Position      `json:"position"`
	Goal      Position      `json:"goal"`
	Phase     string        `json:"phase"`
	Moves     int           `json:"moves"`
	ElapsedMs int64         `json:"elapsed_ms"`
}

// MoveResponse reports one processed move.
type MoveResponse struct {
	Outcome   string   `json:"outcome"`
	Position  Position `json:"position"`
	ElapsedMs int64    `json:"elapsed_ms"`
}

// ElapsedResponse carries just the timer, for high-rate polling.
type ElapsedResponse struct {
	ElapsedMs int64 `json:"elapsed_ms"`
}

// RunResponse represents one recorded finish.
type RunResponse struct {
	Rows       int       `json:"rows"`
	Cols       int       `json:"cols"`
	Moves      int       `json:"moves"`
	Millis     int64     `json:"millis"`
	FinishedAt time.Time `json:"finished_at"`
}

// LeaderboardEntryResponse represents one ranked best time.
type LeaderboardEntryResponse struct {
	Rank     int64  `json:"rank"`
	Username string `json:"username"`
	Millis   int64  `json:"millis"`
}

// PersonalBestResponse carries the caller's own best time.
type PersonalBestResponse struct {
	Username string `json:"username"`
	Millis   int64  `json:"millis"`
}

func positionOf(p maze.CellPosition) Position {
	return Position{Row: p.Row, Col: p.Col}
}

func newStateResponse(s game.Snapshot) StateResponse {
	cells := make([][]CellWalls, len(s.Cells))
	for r, row := range s.Cells {
		cells[r] = make([]CellWalls, len(row))
		for c, cell := range row {
			cells[r][c] = CellWalls{
				North: cell.NorthWall,
				South: cell.SouthWall,
				East:  cell.EastWall,
				West:  cell.WestWall,
			}
		}
	}

	return StateResponse{
		Rows:      s.Rows,
		Cols:      s.Cols,
		Cells:     cells,
		Position:  positionOf(s.Position),
		Goal:      positionOf(s.Goal),
		Phase:     s.Phase.String(),
		Moves:     s.Moves,
		ElapsedMs: s.Elapsed.Milliseconds(),
	}
}

func newRunResponse(r dmn.Run) RunResponse {
	return RunResponse{
		Rows:       r.Rows,
		Cols:       r.Cols,
		Moves:      r.Moves,
		Millis:     r.Millis,
		FinishedAt: r.FinishedAt,
	}
}
