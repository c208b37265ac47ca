package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ShortHashLength is how many hex digits the browser shows per commit
const ShortHashLength = 10

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// Spinner frames using braille characters
var SpinnerFrames = []rune{'⠋', '⠙', '⠹', '⠸', '⠼', '⠴', '⠦', '⠧', '⠇', '⠏'}

// Spinner returns the spinner character at the given frame index
func Spinner(frame int) string {
	return string(SpinnerFrames[frame%len(SpinnerFrames)])
}

// Arrow returns an arrow indicator for selection
func Arrow(selected bool) string {
	if selected {
		return "▶ "
	}
	return "  "
}

// KeyBinding renders a key binding hint
func KeyBinding(key, description string, color lipgloss.Color) string {
	keyStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(ColorWhite)

	return fmt.Sprintf("%s %s",
		keyStyle.Render(key),
		descStyle.Render(description),
	)
}

// Box creates a bordered box
func Box(content string, borderColor lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1)

	return style.Render(content)
}

// ShortHash truncates a commit id for display
func ShortHash(hash string) string {
	if len(hash) > ShortHashLength {
		return hash[:ShortHashLength]
	}
	return hash
}

// BranchTags renders branch names as colored tags
func BranchTags(names []string) string {
	tags := make([]string, 0, len(names))
	for _, name := range names {
		style := lipgloss.NewStyle().Foreground(BranchColor(name)).Bold(true)
		tags = append(tags, style.Render("("+name+")"))
	}
	return strings.Join(tags, " ")
}

// CommitRow renders one commit of the list
func CommitRow(index int, hash string, branches []string, highlighted bool) string {
	numStyle := lipgloss.NewStyle().Foreground(ColorDarkGray)
	hashStyle := lipgloss.NewStyle().Foreground(ColorYellow)
	if highlighted {
		hashStyle = hashStyle.Bold(true).Foreground(ColorCyan)
	}

	row := Arrow(highlighted) + numStyle.Render(fmt.Sprintf("%5d ", index+1)) + hashStyle.Render(ShortHash(hash))
	if len(branches) > 0 {
		row += " " + BranchTags(branches)
	}
	return row
}

// SeamRow renders the break between two printed commits that are not
// parent and child: the parents of the commit above, then the children of
// the commit below.
func SeamRow(parents, children []string) string {
	style := lipgloss.NewStyle().Foreground(ColorDarkGray)
	return style.Render(fmt.Sprintf("        ┄ %s= ┄ =%s",
		joinShort(parents), joinShort(children)))
}

func joinShort(hashes []string) string {
	short := make([]string, len(hashes))
	for i, h := range hashes {
		short[i] = ShortHash(h)
	}
	return strings.Join(short, " ")
}
