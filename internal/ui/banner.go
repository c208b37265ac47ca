package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the ASCII art header of the browser
var Banner = []string{
	" _____ ___  ____   ___  ",
	"|_   _/ _ \\|  _ \\ / _ \\ ",
	"  | || | | | |_) | | | |",
	"  | || |_| |  __/| |_| |",
	"  |_| \\___/|_|    \\___/ ",
}

// RenderBanner returns the styled banner followed by a subtitle line
func RenderBanner(subtitle string) string {
	bannerStyle := lipgloss.NewStyle().Foreground(ColorCyan)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}

	if subtitle != "" {
		subStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
		lines = append(lines, subStyle.Render(subtitle))
	}

	return strings.Join(lines, "\n")
}
