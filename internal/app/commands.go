package app

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wahlandcase/topo-order-commits/internal/topo"
)

// Message types for async operations

type reportLoadedResult struct {
	report *topo.Report
	err    error
}

type clipboardResult struct {
	hash string
	err  error
}

// loadReportCmd runs the whole pipeline off the UI loop
func loadReportCmd(load LoadFunc) tea.Cmd {
	return func() tea.Msg {
		report, err := load()
		return reportLoadedResult{report: report, err: err}
	}
}

// copyHashCmd puts a commit id on the system clipboard
func copyHashCmd(hash string) tea.Cmd {
	return func() tea.Msg {
		return clipboardResult{hash: hash, err: clipboard.WriteAll(hash)}
	}
}

func (m Model) handleReportLoaded(msg reportLoadedResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.screen = ScreenError
		m.errorMessage = msg.err.Error()
		return m, nil
	}
	m.setReport(msg.report)
	return m, nil
}

func (m Model) handleClipboardResult(msg clipboardResult) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.copyFeedback = "Copy failed: " + msg.err.Error()
	} else {
		m.copyFeedback = "Copied " + msg.hash
	}
	return m, nil
}
