package engine

import (
	"errors"
	"reflect"
	"testing"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/grid"
	"github.com/lixenwraith/grid-snake/input"
	"github.com/lixenwraith/grid-snake/snake"
)

func pt(row, col int) core.Point {
	return core.Point{Row: row, Col: col}
}

func newTestRand() grid.Rand {
	return rand.New(rand.NewSource(1))
}

// newTestGame creates the reference start with food moved to a known cell
func newTestGame(t *testing.T, size int, food core.Point) *Game {
	t.Helper()
	g, err := NewGame(GameOptions{Size: size, Rand: newTestRand()})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}
	moveFood(g, food)
	return g
}

// newGameWithChain builds a game around an arbitrary chain, bypassing the start layout
func newGameWithChain(size int, dir core.Direction, food core.Point, positions ...core.Point) *Game {
	g := &Game{
		grid:  grid.New(size),
		chain: snake.New(positions[0], positions[1:]...),
		latch: input.NewLatch(dir),
		rng:   newTestRand(),
	}
	for _, p := range positions {
		g.grid.SetPoint(p, grid.SnakeBody)
	}
	g.grid.SetPoint(food, grid.Food)
	g.stats.Length = g.chain.Len()
	return g
}

func moveFood(g *Game, p core.Point) {
	if old, ok := g.grid.Food(); ok {
		g.grid.SetPoint(old, grid.Empty)
	}
	g.grid.SetPoint(p, grid.Food)
}

// assertInSync checks every chain position is SnakeBody and no other cell is
func assertInSync(t *testing.T, g *Game) {
	t.Helper()
	positions := g.chain.Positions()
	seen := make(map[core.Point]bool, len(positions))
	for _, p := range positions {
		if s := g.grid.ClassifyPoint(p); s != grid.SnakeBody {
			t.Fatalf("Chain position %v classified %v, want snake", p, s)
		}
		seen[p] = true
	}
	if got := g.grid.Count(grid.SnakeBody); got != len(seen) {
		t.Fatalf("Grid has %d snake cells, chain covers %d", got, len(seen))
	}
}

func TestNewGameReferenceStart(t *testing.T) {
	g, err := NewGame(GameOptions{Size: 64, Rand: newTestRand()})
	if err != nil {
		t.Fatalf("NewGame failed: %v", err)
	}

	want := []core.Point{pt(8, 8), pt(8, 7), pt(8, 6)}
	if got := g.chain.Positions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected start chain %v, got %v", want, got)
	}
	if g.latch.Direction() != core.Right {
		t.Errorf("Expected heading right, got %v", g.latch.Direction())
	}
	if g.grid.Count(grid.Food) != 1 {
		t.Errorf("Expected exactly one food cell, got %d", g.grid.Count(grid.Food))
	}
	if g.Phase() != PhaseRunning {
		t.Errorf("Expected running, got %v", g.Phase())
	}
	assertInSync(t, g)
}

func TestNewGameRejectsSmallGrid(t *testing.T) {
	_, err := NewGame(GameOptions{Size: 8, Rand: newTestRand()})
	if !errors.Is(err, ErrGridTooSmall) {
		t.Errorf("Expected ErrGridTooSmall, got %v", err)
	}
}

func TestStepMovesOneCell(t *testing.T) {
	g := newTestGame(t, 64, pt(40, 40))

	res := g.Tick()

	if res.Phase != PhaseRunning || res.Ate {
		t.Fatalf("Unexpected result: %+v", res)
	}
	want := []core.Point{pt(8, 9), pt(8, 8), pt(8, 7)}
	if got := g.chain.Positions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected chain %v, got %v", want, got)
	}
	if s := g.grid.Classify(8, 6); s != grid.Empty {
		t.Errorf("Expected (8,6) empty, got %v", s)
	}
	if s := g.grid.Classify(8, 9); s != grid.SnakeBody {
		t.Errorf("Expected (8,9) snake, got %v", s)
	}
	assertInSync(t, g)
}

func TestStepEatsFood(t *testing.T) {
	g := newTestGame(t, 64, pt(40, 40))
	g.Tick() // head to (8,9)
	moveFood(g, pt(8, 10))

	res := g.Tick()

	if !res.Ate {
		t.Error("Expected food to be eaten")
	}
	if res.Phase != PhaseRunning {
		t.Errorf("Expected running after eating, got %v (%v)", res.Phase, res.Reason)
	}
	if g.chain.Len() != 4 {
		t.Fatalf("Expected chain length 4, got %d", g.chain.Len())
	}
	want := []core.Point{pt(8, 10), pt(8, 9), pt(8, 8), pt(8, 7)}
	if got := g.chain.Positions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected chain %v, got %v", want, got)
	}

	food, ok := g.grid.Food()
	if !ok || g.grid.Count(grid.Food) != 1 {
		t.Fatalf("Expected exactly one food cell, got %d", g.grid.Count(grid.Food))
	}
	if food == pt(8, 10) {
		t.Error("Expected food relocated away from the eaten cell")
	}
	if s := g.grid.ClassifyPoint(food); s != grid.Food {
		t.Errorf("Expected new food cell classified food, got %v", s)
	}
	if g.Stats().Eaten != 1 || g.Stats().Length != 4 {
		t.Errorf("Unexpected stats: %+v", g.Stats())
	}
	assertInSync(t, g)

	// Next tick moves the grown chain without leaving a gap
	g.Tick()
	want = []core.Point{pt(8, 11), pt(8, 10), pt(8, 9), pt(8, 8)}
	if got := g.chain.Positions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected chain %v, got %v", want, got)
	}
	if s := g.grid.Classify(8, 7); s != grid.Empty {
		t.Errorf("Expected (8,7) empty, got %v", s)
	}
	assertInSync(t, g)
}

func TestStepWallCollision(t *testing.T) {
	g := newTestGame(t, 64, pt(40, 40))
	g.latch.Record(core.Up)

	// Seven steps reach row 1, the eighth hits the border
	for i := 0; i < 7; i++ {
		if res := g.Tick(); res.Phase != PhaseRunning {
			t.Fatalf("Unexpected game over at step %d", i)
		}
	}

	chainBefore := g.chain.Positions()
	cellsBefore := g.grid.Cells(grid.Wall, grid.Food, grid.SnakeBody)

	res := g.Tick()

	if res.Phase != PhaseGameOver || res.Reason != ReasonCollision || res.Hit != grid.Wall {
		t.Fatalf("Expected wall collision, got %+v", res)
	}
	if got := g.chain.Positions(); !reflect.DeepEqual(got, chainBefore) {
		t.Errorf("Chain mutated on collision: %v -> %v", chainBefore, got)
	}
	if got := g.grid.Cells(grid.Wall, grid.Food, grid.SnakeBody); !reflect.DeepEqual(got, cellsBefore) {
		t.Error("Grid mutated on collision")
	}
}

func TestStepBodyCollision(t *testing.T) {
	// Head moving left along row 5, body folds back under it
	g := newGameWithChain(16, core.Left, pt(12, 12),
		pt(5, 5), pt(5, 6), pt(6, 6), pt(6, 5), pt(6, 4), pt(7, 4))

	g.latch.Record(core.Down)
	res := g.Tick()

	if res.Phase != PhaseGameOver || res.Reason != ReasonCollision || res.Hit != grid.SnakeBody {
		t.Fatalf("Expected body collision, got %+v", res)
	}
	if g.chain.Head() != pt(5, 5) {
		t.Errorf("Expected head unchanged, got %v", g.chain.Head())
	}
}

// Moving into the cell the tail is about to leave still counts as a collision
func TestStepTailCellIsCollision(t *testing.T) {
	g := newGameWithChain(16, core.Left, pt(12, 12),
		pt(5, 5), pt(5, 6), pt(6, 6), pt(6, 5))

	g.latch.Record(core.Down)
	res := g.Tick()

	if res.Reason != ReasonCollision {
		t.Errorf("Expected collision with tail cell, got %+v", res)
	}
}

func TestStepAfterGameOverIsNoop(t *testing.T) {
	g := newGameWithChain(16, core.Up, pt(12, 12), pt(1, 5), pt(2, 5))

	g.Tick()
	ticks := g.Stats().Ticks
	g.latch.Record(core.Right)
	res := g.Tick()

	if res.Phase != PhaseGameOver || g.chain.Head() != pt(1, 5) {
		t.Errorf("Expected no movement after game over, head %v", g.chain.Head())
	}
	if g.Stats().Ticks != ticks {
		t.Error("Expected tick counter frozen after game over")
	}
}

func TestStepBoardFull(t *testing.T) {
	const size = 12
	g := newGameWithChain(size, core.Right, pt(5, 6), pt(5, 5), pt(5, 4), pt(5, 3))
	// Fill every other free interior cell
	for r := 1; r < size-1; r++ {
		for c := 1; c < size-1; c++ {
			if g.grid.Classify(r, c) == grid.Empty {
				g.grid.Set(r, c, grid.Wall)
			}
		}
	}

	res := g.Tick()

	if !res.Ate {
		t.Error("Expected the last food to be eaten")
	}
	if res.Phase != PhaseGameOver || res.Reason != ReasonBoardFull {
		t.Fatalf("Expected board-full game over, got %+v", res)
	}
	if g.chain.Len() != 4 {
		t.Errorf("Expected chain length 4, got %d", g.chain.Len())
	}
	assertInSync(t, g)
}

// Shift-by-one holds for every tick without collision, across turns
func TestStepShiftInvariant(t *testing.T) {
	g := newTestGame(t, 64, pt(60, 60))
	turns := map[int]core.Direction{5: core.Down, 12: core.Right, 20: core.Down, 25: core.Left}
	dir := core.Right

	for i := 0; i < 30; i++ {
		if d, ok := turns[i]; ok {
			g.latch.Record(d)
			dir = d
		}
		before := g.chain.Positions()

		res := g.Tick()
		if res.Phase != PhaseRunning {
			t.Fatalf("tick %d: unexpected %v", i, res.Reason)
		}

		after := g.chain.Positions()
		if after[0] != before[0].Add(dir.Delta()) {
			t.Fatalf("tick %d: head %v, want %v", i, after[0], before[0].Add(dir.Delta()))
		}
		for j := 1; j < len(after); j++ {
			if after[j] != before[j-1] {
				t.Fatalf("tick %d: segment %d at %v, want %v", i, j, after[j], before[j-1])
			}
		}
		assertInSync(t, g)
	}
}

func TestQuit(t *testing.T) {
	g := newTestGame(t, 64, pt(40, 40))
	g.Quit()

	if g.Phase() != PhaseGameOver || g.Reason() != ReasonQuit {
		t.Errorf("Expected quit game over, got %v/%v", g.Phase(), g.Reason())
	}

	// Quit does not overwrite an earlier reason
	g2 := newGameWithChain(16, core.Up, pt(12, 12), pt(1, 5), pt(2, 5))
	g2.Tick()
	g2.Quit()
	if g2.Reason() != ReasonCollision {
		t.Errorf("Expected collision reason kept, got %v", g2.Reason())
	}
}

func TestFrameContents(t *testing.T) {
	g := newTestGame(t, 16, pt(12, 12))
	f := g.Frame()

	if f.GridSize != 16 || f.Head != pt(8, 8) {
		t.Errorf("Unexpected frame header: size=%d head=%v", f.GridSize, f.Head)
	}

	counts := map[grid.CellState]int{}
	for _, c := range f.Cells {
		counts[c.State]++
	}
	if counts[grid.Wall] != 4*16-4 || counts[grid.Food] != 1 || counts[grid.SnakeBody] != 3 {
		t.Errorf("Unexpected frame cell counts: %v", counts)
	}
	if counts[grid.Empty] != 0 {
		t.Error("Frame must not carry empty cells")
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(t, 16, pt(12, 12))
	g.Tick()
	s := g.Snapshot()

	if s.Direction != "right" || s.Food != pt(12, 12) || s.Stats.Ticks != 1 {
		t.Errorf("Unexpected snapshot: %+v", s)
	}
	if len(s.Chain) != 3 || s.Chain[0] != pt(8, 9) {
		t.Errorf("Unexpected snapshot chain: %v", s.Chain)
	}
}
