package engine

import (
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/grid"
)

// GamePhase is the simulation state machine
type GamePhase uint8

const (
	PhaseRunning GamePhase = iota
	PhaseGameOver
)

func (p GamePhase) String() string {
	if p == PhaseGameOver {
		return "game-over"
	}
	return "running"
}

// EndReason records why the game reached PhaseGameOver
type EndReason uint8

const (
	ReasonNone      EndReason = iota
	ReasonCollision           // Head moved onto a wall or the body
	ReasonBoardFull           // No free cell left for food
	ReasonQuit                // Quit intent or cancelled run
)

func (r EndReason) String() string {
	switch r {
	case ReasonCollision:
		return "collision"
	case ReasonBoardFull:
		return "board-full"
	case ReasonQuit:
		return "quit"
	default:
		return "none"
	}
}

// Stats are per-game counters for the status line and logs
type Stats struct {
	Ticks  uint64
	Eaten  int
	Length int
}

// StepResult is returned by Game.Step after each simulation tick
type StepResult struct {
	Phase  GamePhase
	Reason EndReason
	Ate    bool           // Food consumed this tick
	Hit    grid.CellState // Cell the head collided with, Empty when no collision
}

// Frame is the read-only snapshot handed to the render sink
type Frame struct {
	GridSize int
	Head     core.Point
	Cells    []grid.Cell // Wall, Food and SnakeBody cells, row-major
	Stats    Stats
}

// Snapshot is the full state dump written to the debug log when a run ends
type Snapshot struct {
	Phase     GamePhase
	Reason    EndReason
	Direction string
	Food      core.Point
	Chain     []core.Point
	Stats     Stats
}
