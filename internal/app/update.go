package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureVisible()
		return m, nil

	case tickMsg:
		// Only the loading screen animates
		if m.screen != ScreenLoading {
			return m, nil
		}
		m.spinnerFrame = (m.spinnerFrame + 1) % 10
		return m, tickCmd()

	case reportLoadedResult:
		return m.handleReportLoaded(msg)

	case clipboardResult:
		return m.handleClipboardResult(msg)
	}

	return m, nil
}

// handleKey processes keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear copy feedback on any keypress
	m.copyFeedback = ""

	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.shouldQuit = true
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenLoading:
		if msg.String() == "q" {
			m.shouldQuit = true
			return m, tea.Quit
		}
	case ScreenCommits:
		return m.handleCommitsKey(msg)
	case ScreenDetail:
		return m.handleDetailKey(msg)
	case ScreenError:
		return m.handleErrorKey(msg)
	}

	return m, nil
}

func (m Model) handleCommitsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "pgup", "ctrl+u":
		m.moveCursor(-m.listHeight())
	case "pgdown", "ctrl+d":
		m.moveCursor(m.listHeight())
	case "g", "home":
		m.moveCursor(-m.lineCount())
	case "G", "end":
		m.moveCursor(m.lineCount())
	case "n":
		m.jumpToSeam(1)
	case "N":
		m.jumpToSeam(-1)
	case "enter":
		if m.lineCount() > 0 {
			m.screen = ScreenDetail
		}
	case "y":
		if line, ok := m.current(); ok {
			return m, copyHashCmd(line.Hash)
		}
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.shouldQuit = true
		return m, tea.Quit
	case "esc", "backspace", "enter":
		m.screen = ScreenCommits
	case "p":
		m.followEdge(true)
	case "c":
		m.followEdge(false)
	case "y":
		if line, ok := m.current(); ok {
			return m, copyHashCmd(line.Hash)
		}
	}
	return m, nil
}

func (m Model) handleErrorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "enter", "esc":
		m.shouldQuit = true
		return m, tea.Quit
	}
	return m, nil
}

// moveCursor moves the highlight by delta lines, clamped to the report
func (m *Model) moveCursor(delta int) {
	if m.lineCount() == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), m.lineCount()-1)
	m.ensureVisible()
}

// jumpToSeam moves to the next (dir > 0) or previous seam
func (m *Model) jumpToSeam(dir int) {
	for i := m.cursor + dir; i >= 0 && i < m.lineCount(); i += dir {
		if m.report.Lines[i].Seam != nil {
			m.cursor = i
			m.ensureVisible()
			return
		}
	}
}

// followEdge moves to the first parent, or the first child, of the current commit
func (m *Model) followEdge(toParent bool) {
	line, ok := m.current()
	if !ok {
		return
	}
	node := m.report.Graph.Node(line.Hash)
	targets := node.Children()
	if toParent {
		targets = node.Parents()
	}
	if len(targets) == 0 {
		return
	}
	if idx, ok := m.position[targets[0]]; ok {
		m.cursor = idx
		m.ensureVisible()
	}
}

// rowsFor returns how many screen rows line i occupies in the list
func (m Model) rowsFor(i int) int {
	if m.report.Lines[i].Seam != nil {
		return 2
	}
	return 1
}

// ensureVisible scrolls the list so the cursor row is on screen
func (m *Model) ensureVisible() {
	if m.lineCount() == 0 {
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
		return
	}
	height := m.listHeight()
	rows := 0
	for i := m.offset; i <= m.cursor; i++ {
		rows += m.rowsFor(i)
	}
	for rows > height && m.offset < m.cursor {
		rows -= m.rowsFor(m.offset)
		m.offset++
	}
}
