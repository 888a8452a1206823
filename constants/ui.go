package constants

// Cell rendering
const (
	// CellWidth is the number of terminal columns per grid cell, two columns approximate a square
	CellWidth = 2

	// StatusLineHeight is the number of rows reserved below the grid
	StatusLineHeight = 1
)

// Glyphs per cell state, the palette is two colors so states differ by glyph only
const (
	GlyphHead = '█'
	GlyphBody = '▓'
	GlyphWall = '▒'
	GlyphFood = '●'
)

// Console messages printed after the screen is released
const (
	MessageGameOver = "Game Over!"
	MessageWin      = "You Win!"
)
