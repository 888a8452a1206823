package constants

import "time"

// Grid & Simulation
const (
	// GridSize is the reference side length of the square grid
	GridSize = 64

	// MinGridSize leaves room for the start position (8,8) and its two trailing segments
	MinGridSize = 12

	// MaxGridSize bounds memory for the cell map
	MaxGridSize = 256

	// TickRate is the reference simulation rate in ticks per second
	TickRate = 15

	// MaxTickRate keeps the period above terminal refresh granularity
	MaxTickRate = 120

	// TickInterval is the fixed scheduler period at the reference rate
	TickInterval = time.Second / TickRate
)

// Start layout
const (
	StartRow = 8
	StartCol = 8

	// StartSegments is the number of body segments trailing the head at start
	StartSegments = 2
)

// Input
const (
	// EventBufferSize is the capacity of the pumped terminal event channel
	EventBufferSize = 256
)
