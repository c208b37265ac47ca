package app

import (
	"fmt"
	"strings"

	"github.com/wahlandcase/topo-order-commits/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// chromeHeight is the number of rows used by everything except the list
func (m Model) chromeHeight() int {
	h := 2 + 4 // section header + blank, status bar + gap
	if m.config.Browse.Banner {
		h += len(ui.Banner) + 2 // banner, subtitle, blank
	}
	return h
}

// listHeight returns how many list rows fit on screen
func (m Model) listHeight() int {
	h := m.height - m.chromeHeight()
	if h < 3 {
		h = 3
	}
	return h
}

// View renders the application
func (m Model) View() string {
	if m.shouldQuit {
		return ""
	}

	var sections []string

	if m.config.Browse.Banner {
		sections = append(sections, ui.RenderBanner(m.subtitle()))
		sections = append(sections, "")
	}

	switch m.screen {
	case ScreenLoading:
		sections = append(sections, m.renderLoading())
	case ScreenCommits:
		sections = append(sections, m.renderCommits())
	case ScreenDetail:
		sections = append(sections, m.renderDetail())
	case ScreenError:
		sections = append(sections, m.renderError())
	}

	sections = append(sections, "")
	sections = append(sections, m.renderStatusBar())

	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, strings.Join(sections, "\n"))
}

func (m Model) subtitle() string {
	if m.report == nil {
		return "deterministic topological commit order"
	}
	return fmt.Sprintf("%d commits · %d branches · %d seams",
		len(m.report.Lines), m.report.Branches.Len(), m.report.SeamCount())
}

func (m Model) renderLoading() string {
	spinnerStyle := lipgloss.NewStyle().Foreground(ui.ColorCyan)
	return fmt.Sprintf("  %s %s", spinnerStyle.Render(ui.Spinner(m.spinnerFrame)), spinnerStyle.Render(m.loadingMessage))
}

func (m Model) renderCommits() string {
	lines := []string{ui.SectionHeader("COMMITS", ui.ColorCyan), ""}

	if m.lineCount() == 0 {
		dim := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
		lines = append(lines, dim.Render("  No branches found"))
		return strings.Join(lines, "\n")
	}

	height := m.listHeight()
	rows := 0
	for i := m.offset; i < m.lineCount() && rows < height; i++ {
		line := m.report.Lines[i]
		lines = append(lines, ui.CommitRow(i, line.Hash, line.Branches, i == m.cursor))
		rows++
		if line.Seam != nil && rows < height {
			lines = append(lines, ui.SeamRow(line.Seam.Parents, line.Seam.Children))
			rows++
		}
	}

	return strings.Join(lines, "\n")
}

func (m Model) renderDetail() string {
	line, ok := m.current()
	if !ok {
		return ""
	}
	node := m.report.Graph.Node(line.Hash)

	labelStyle := lipgloss.NewStyle().Foreground(ui.ColorBlue).Bold(true)
	hashStyle := lipgloss.NewStyle().Foreground(ui.ColorYellow)
	dim := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)

	lines := []string{ui.SectionHeader("COMMIT", ui.ColorYellow), ""}
	lines = append(lines, "  "+hashStyle.Bold(true).Render(line.Hash))
	lines = append(lines, dim.Render(fmt.Sprintf("  %d of %d", m.cursor+1, m.lineCount())))
	if len(line.Branches) > 0 {
		lines = append(lines, "  "+ui.BranchTags(line.Branches))
	}
	lines = append(lines, "")

	lines = append(lines, labelStyle.Render("  Parents"))
	lines = append(lines, m.renderHashList(node.Parents())...)
	lines = append(lines, labelStyle.Render("  Children"))
	lines = append(lines, m.renderHashList(node.Children())...)

	if line.Seam != nil {
		seamStyle := lipgloss.NewStyle().Foreground(ui.ColorOrange)
		lines = append(lines, "")
		lines = append(lines, seamStyle.Render("  The next printed commit is not a parent of this one"))
	}

	return ui.Box(strings.Join(lines, "\n"), ui.ColorYellow)
}

func (m Model) renderHashList(hashes []string) []string {
	dim := lipgloss.NewStyle().Foreground(ui.ColorDarkGray)
	if len(hashes) == 0 {
		return []string{dim.Render("    none")}
	}
	out := make([]string, 0, len(hashes))
	for _, h := range hashes {
		out = append(out, fmt.Sprintf("    %s %s", h, dim.Render(fmt.Sprintf("#%d", m.position[h]+1))))
	}
	return out
}

func (m Model) renderError() string {
	var lines []string

	errorStyle := lipgloss.NewStyle().Foreground(ui.ColorRed).Bold(true)

	lines = append(lines, "")
	lines = append(lines, errorStyle.Render("   ✗ Error"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("   %s", m.errorMessage))
	lines = append(lines, "")
	lines = append(lines, "   Press Enter to quit")

	return strings.Join(lines, "\n")
}

func (m Model) renderStatusBar() string {
	var hints []string

	switch m.screen {
	case ScreenLoading:
		hints = []string{
			ui.KeyBinding("q", "Quit", ui.ColorRed),
		}
	case ScreenCommits:
		hints = []string{
			ui.KeyBinding("↑↓", "Navigate", ui.ColorWhite),
			ui.KeyBinding("n/N", "Seams", ui.ColorOrange),
			ui.KeyBinding("Enter", "Details", ui.ColorGreen),
			ui.KeyBinding("y", "Copy", ui.ColorBlue),
			ui.KeyBinding("q", "Quit", ui.ColorRed),
		}
	case ScreenDetail:
		hints = []string{
			ui.KeyBinding("p", "Parent", ui.ColorMagenta),
			ui.KeyBinding("c", "Child", ui.ColorMagenta),
			ui.KeyBinding("y", "Copy", ui.ColorBlue),
			ui.KeyBinding("Esc", "Back", ui.ColorYellow),
		}
	case ScreenError:
		hints = []string{
			ui.KeyBinding("Enter", "Quit", ui.ColorRed),
		}
	}

	bar := strings.Join(hints, "  ")
	if m.copyFeedback != "" {
		feedbackStyle := lipgloss.NewStyle().Foreground(ui.ColorGreen)
		bar += "  " + feedbackStyle.Render(m.copyFeedback)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorDarkGray).
		Padding(0, 1).
		Render(bar)
}
