package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorBlue     = lipgloss.Color("#5555FF")
	ColorOrange   = lipgloss.Color("#FFA500")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8") // ANSI 8
)

// Setup fixes the lipgloss color profile and background before the first
// render, so lipgloss never has to query the terminal (slow in Warp).
func Setup(color bool) {
	if color {
		lipgloss.SetColorProfile(termenv.ColorProfile())
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	lipgloss.SetHasDarkBackground(true)
}

func BranchColor(branch string) lipgloss.Color {
	switch {
	case branch == "main" || branch == "master":
		return ColorRed
	case branch == "dev" || branch == "develop":
		return ColorGreen
	case branch == "staging":
		return ColorYellow
	case strings.HasPrefix(branch, "feature/"):
		return ColorMagenta
	case strings.HasPrefix(branch, "fix/") || strings.HasPrefix(branch, "hotfix/"):
		return ColorOrange
	default:
		return ColorCyan
	}
}
