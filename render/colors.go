package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode selects how palette colors are emitted
type ColorMode uint8

const (
	ColorMode256 ColorMode = iota
	ColorModeTrueColor
)

// ParseColorMode resolves a color flag value, "auto" and unknown values detect from getenv
func ParseColorMode(value string, getenv func(string) string) ColorMode {
	switch value {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode(getenv)
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode(getenv func(string) string) ColorMode {
	colorterm := getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	if getenv("KITTY_WINDOW_ID") != "" ||
		getenv("KONSOLE_VERSION") != "" ||
		getenv("ITERM_SESSION_ID") != "" ||
		getenv("ALACRITTY_WINDOW_ID") != "" ||
		getenv("WEZTERM_PANE") != "" {
		return ColorModeTrueColor
	}

	term := getenv("TERM")
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Palette is the two-color scheme of the board
type Palette struct {
	Background tcell.Color
	Foreground tcell.Color
}

// DefaultPalette returns black background and white foreground for the color mode
func DefaultPalette(mode ColorMode) Palette {
	if mode == ColorModeTrueColor {
		return Palette{
			Background: tcell.NewRGBColor(0, 0, 0),
			Foreground: tcell.NewRGBColor(255, 255, 255),
		}
	}
	return Palette{
		Background: tcell.ColorBlack,
		Foreground: tcell.ColorWhite,
	}
}

// Style returns the single drawing style of the palette
func (p Palette) Style() tcell.Style {
	return tcell.StyleDefault.Background(p.Background).Foreground(p.Foreground)
}
