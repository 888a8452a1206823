// Package grid holds the fixed-size cell-state map the snake moves on
package grid

import (
	"errors"

	"github.com/lixenwraith/grid-snake/core"
)

// CellState classifies a grid cell
type CellState uint8

const (
	Empty CellState = iota
	SnakeBody
	Wall
	Food
)

// stateCount is the number of CellState values, sizes the per-state counters
const stateCount = int(Food) + 1

func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case SnakeBody:
		return "snake"
	case Wall:
		return "wall"
	case Food:
		return "food"
	default:
		return "invalid"
	}
}

// ErrNoFreeCell is returned by PlaceFood when every interior cell is occupied
var ErrNoFreeCell = errors.New("no free cell for food")

// Rand is the random source used for food placement
// Satisfied by *rand.Rand from golang.org/x/exp/rand and math/rand
type Rand interface {
	Intn(n int) int
}

// Cell is a classified grid position
type Cell struct {
	Pos   core.Point
	State CellState
}

// Grid is a dense square cell-state map
// Cells are stored row-major: index = row*size + col
type Grid struct {
	size   int
	cells  []CellState
	counts [stateCount]int
	food   core.Point
}

// New creates a size×size grid with its border marked Wall
func New(size int) *Grid {
	g := &Grid{
		size:  size,
		cells: make([]CellState, size*size),
		food:  core.Point{Row: -1, Col: -1},
	}
	g.counts[Empty] = size * size
	g.InitBorder()
	return g
}

// Size returns the side length
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether p addresses a cell of the grid
func (g *Grid) InBounds(p core.Point) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// Classify returns the state of (row, col), O(1)
func (g *Grid) Classify(row, col int) CellState {
	return g.cells[row*g.size+col]
}

// ClassifyPoint is Classify for a Point
func (g *Grid) ClassifyPoint(p core.Point) CellState {
	return g.Classify(p.Row, p.Col)
}

// Set writes the state of (row, col), O(1)
// Coordinates are validated by callers
func (g *Grid) Set(row, col int, state CellState) {
	idx := row*g.size + col
	prev := g.cells[idx]
	if prev == state {
		return
	}
	g.counts[prev]--
	g.counts[state]++
	g.cells[idx] = state

	if state == Food {
		g.food = core.Point{Row: row, Col: col}
	} else if prev == Food && g.food == (core.Point{Row: row, Col: col}) {
		g.food = core.Point{Row: -1, Col: -1}
	}
}

// SetPoint is Set for a Point
func (g *Grid) SetPoint(p core.Point, state CellState) {
	g.Set(p.Row, p.Col, state)
}

// InitBorder marks the outermost ring as Wall
func (g *Grid) InitBorder() {
	last := g.size - 1
	for n := 0; n < g.size; n++ {
		g.Set(n, 0, Wall)
		g.Set(n, last, Wall)
		g.Set(0, n, Wall)
		g.Set(last, n, Wall)
	}
}

// Count returns the number of cells in the given state
func (g *Grid) Count(state CellState) int {
	return g.counts[state]
}

// Food returns the most recently placed food cell and whether one exists
func (g *Grid) Food() (core.Point, bool) {
	return g.food, g.food.Row >= 0
}

// PlaceFood marks a uniformly random free interior cell as Food
// Rejection sampling has no iteration cap; it terminates with probability 1 while
// at least one Empty interior cell exists, which is checked up front in O(1)
func (g *Grid) PlaceFood(rng Rand) (core.Point, error) {
	// Border cells are always Wall, so every Empty cell is interior
	if g.counts[Empty] == 0 {
		return core.Point{}, ErrNoFreeCell
	}

	interior := g.size - 2
	for {
		row := 1 + rng.Intn(interior)
		col := 1 + rng.Intn(interior)
		if g.Classify(row, col) == Empty {
			g.Set(row, col, Food)
			return core.Point{Row: row, Col: col}, nil
		}
	}
}

// Cells returns all cells whose state is in states, row-major
func (g *Grid) Cells(states ...CellState) []Cell {
	var want [stateCount]bool
	n := 0
	for _, s := range states {
		if !want[s] {
			want[s] = true
			n += g.counts[s]
		}
	}

	out := make([]Cell, 0, n)
	for idx, s := range g.cells {
		if want[s] {
			out = append(out, Cell{
				Pos:   core.Point{Row: idx / g.size, Col: idx % g.size},
				State: s,
			})
		}
	}
	return out
}
