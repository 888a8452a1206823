package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/grid"
	"github.com/lixenwraith/grid-snake/input"
	"github.com/lixenwraith/grid-snake/snake"
)

// ErrGridTooSmall is returned by NewGame when the start layout does not fit
var ErrGridTooSmall = errors.New("grid too small for start layout")

// GameOptions configures a new game
type GameOptions struct {
	Size int
	Rand grid.Rand
}

// Game owns all simulation state: grid, segment chain and the input latch
// Only step mutates grid and chain, keeping every chain position mapped to a SnakeBody cell
type Game struct {
	grid  *grid.Grid
	chain *snake.Chain
	latch *input.Latch
	rng   grid.Rand

	phase  GamePhase
	reason EndReason
	stats  Stats
}

// NewGame creates the reference start: head at (8,8) heading right with two trailing
// segments, border walls, and the first food placed
func NewGame(opts GameOptions) (*Game, error) {
	if opts.Size < constants.MinGridSize {
		return nil, fmt.Errorf("size %d: %w", opts.Size, ErrGridTooSmall)
	}
	if opts.Rand == nil {
		return nil, errors.New("game requires a random source")
	}

	head := core.Point{Row: constants.StartRow, Col: constants.StartCol}
	tail := make([]core.Point, constants.StartSegments)
	for i := range tail {
		tail[i] = core.Point{Row: head.Row, Col: head.Col - 1 - i}
	}

	g := &Game{
		grid:  grid.New(opts.Size),
		chain: snake.New(head, tail...),
		latch: input.NewLatch(core.Right),
		rng:   opts.Rand,
	}

	for _, p := range g.chain.Positions() {
		g.grid.SetPoint(p, grid.SnakeBody)
	}
	if _, err := g.grid.PlaceFood(g.rng); err != nil {
		return nil, fmt.Errorf("initial food: %w", err)
	}
	g.stats.Length = g.chain.Len()

	return g, nil
}

// Latch returns the input latch steering the snake
func (g *Game) Latch() *input.Latch {
	return g.latch
}

// Phase returns the current simulation phase
func (g *Game) Phase() GamePhase {
	return g.phase
}

// Reason returns why the game ended, ReasonNone while running
func (g *Game) Reason() EndReason {
	return g.reason
}

// Stats returns the per-game counters
func (g *Game) Stats() Stats {
	return g.stats
}

// Tick consumes the latched heading and advances one step
func (g *Game) Tick() StepResult {
	return g.step(g.latch.ConsumeAndReset())
}

// step advances the head one cell in dir and resolves collision, food and propagation
// A collision ends the game without touching grid or chain
func (g *Game) step(dir core.Direction) StepResult {
	if g.phase == PhaseGameOver {
		return g.result(false, grid.Empty)
	}
	g.stats.Ticks++

	next := g.chain.Head().Add(dir.Delta())
	ate := false
	boardFull := false

	switch hit := g.grid.ClassifyPoint(next); hit {
	case grid.Wall, grid.SnakeBody:
		g.end(ReasonCollision)
		log.Debug().
			Uint64("tick", g.stats.Ticks).
			Stringer("pos", next).
			Stringer("hit", hit).
			Msg("Collision")
		return g.result(false, hit)

	case grid.Food:
		ate = true
		// Candidate is still Food here, so the new food lands elsewhere
		food, err := g.grid.PlaceFood(g.rng)
		// PlaceFood only fails with grid.ErrNoFreeCell
		boardFull = err != nil
		g.chain.AppendAtTail()
		g.stats.Eaten++
		log.Debug().
			Uint64("tick", g.stats.Ticks).
			Stringer("eaten", next).
			Stringer("food", food).
			Int("length", g.chain.Len()).
			Msg("Food eaten")
	}

	g.grid.SetPoint(next, grid.SnakeBody)
	vacated := g.chain.PrependPropagate(next)
	// After growth the duplicated tail still occupies the vacated cell
	if !ate {
		g.grid.SetPoint(vacated, grid.Empty)
	}
	g.stats.Length = g.chain.Len()

	if boardFull {
		g.end(ReasonBoardFull)
	}
	return g.result(ate, grid.Empty)
}

// Quit ends a running game with ReasonQuit
func (g *Game) Quit() {
	if g.phase == PhaseRunning {
		g.end(ReasonQuit)
	}
}

func (g *Game) end(reason EndReason) {
	g.phase = PhaseGameOver
	g.reason = reason
}

func (g *Game) result(ate bool, hit grid.CellState) StepResult {
	return StepResult{
		Phase:  g.phase,
		Reason: g.reason,
		Ate:    ate,
		Hit:    hit,
	}
}

// Frame builds the render snapshot: head plus every wall, food and body cell
func (g *Game) Frame() Frame {
	return Frame{
		GridSize: g.grid.Size(),
		Head:     g.chain.Head(),
		Cells:    g.grid.Cells(grid.Wall, grid.Food, grid.SnakeBody),
		Stats:    g.stats,
	}
}

// Snapshot returns a copy of the full game state
func (g *Game) Snapshot() Snapshot {
	food, _ := g.grid.Food()
	return Snapshot{
		Phase:     g.phase,
		Reason:    g.reason,
		Direction: g.latch.Direction().String(),
		Food:      food,
		Chain:     g.chain.Positions(),
		Stats:     g.stats,
	}
}
