package render

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/core"
	"github.com/lixenwraith/grid-snake/engine"
	"github.com/lixenwraith/grid-snake/grid"
)

// ErrOutOfBounds is returned when a frame references a cell outside its grid
var ErrOutOfBounds = errors.New("cell outside grid")

// TerminalRenderer draws frames onto a tcell screen
// Each grid cell is CellWidth columns by one row, centered, clipped to the terminal
type TerminalRenderer struct {
	screen  tcell.Screen
	style   tcell.Style
	glyphs  map[grid.CellState]rune
	size    int
	width   int
	height  int
	originX int
	originY int
}

// NewTerminalRenderer creates a renderer for screen using palette
func NewTerminalRenderer(screen tcell.Screen, palette Palette) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		style:  palette.Style(),
		glyphs: map[grid.CellState]rune{
			grid.Wall:      constants.GlyphWall,
			grid.Food:      constants.GlyphFood,
			grid.SnakeBody: constants.GlyphBody,
		},
	}
}

// Render clears the screen, draws obstacles then the head, and presents once
func (r *TerminalRenderer) Render(f engine.Frame) error {
	if f.GridSize != r.size {
		r.size = f.GridSize
		r.layout()
	}

	r.screen.SetStyle(r.style)
	r.screen.Clear()

	for _, c := range f.Cells {
		glyph, ok := r.glyphs[c.State]
		if !ok {
			continue
		}
		if err := r.drawCell(c.Pos, glyph); err != nil {
			return err
		}
	}

	// Head pass
	if err := r.drawCell(f.Head, constants.GlyphHead); err != nil {
		return fmt.Errorf("head: %w", err)
	}

	r.drawStatus(f.Stats)
	r.screen.Show()
	return nil
}

// Resize recomputes the layout and forces a full redraw
func (r *TerminalRenderer) Resize() {
	r.layout()
	r.screen.Sync()
}

// layout centers the board when it fits, otherwise anchors it top-left
func (r *TerminalRenderer) layout() {
	r.width, r.height = r.screen.Size()
	boardW := r.size * constants.CellWidth
	boardH := r.size + constants.StatusLineHeight
	r.originX = max(0, (r.width-boardW)/2)
	r.originY = max(0, (r.height-boardH)/2)
}

func (r *TerminalRenderer) drawCell(p core.Point, glyph rune) error {
	if p.Row < 0 || p.Row >= r.size || p.Col < 0 || p.Col >= r.size {
		return fmt.Errorf("%v: %w", p, ErrOutOfBounds)
	}

	x := r.originX + p.Col*constants.CellWidth
	y := r.originY + p.Row
	if y >= r.height {
		return nil
	}
	for i := 0; i < constants.CellWidth && x+i < r.width; i++ {
		r.screen.SetContent(x+i, y, glyph, nil, r.style)
	}
	return nil
}

func (r *TerminalRenderer) drawStatus(s engine.Stats) {
	y := r.originY + r.size
	if y >= r.height {
		return
	}
	text := fmt.Sprintf("length %d  eaten %d  tick %d", s.Length, s.Eaten, s.Ticks)
	for i, ch := range []rune(text) {
		x := r.originX + i
		if x >= r.width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, r.style)
	}
}
