package app

import (
	"time"

	"github.com/wahlandcase/topo-order-commits/internal/config"
	"github.com/wahlandcase/topo-order-commits/internal/topo"

	tea "github.com/charmbracelet/bubbletea"
)

// LoadFunc produces the report the browser shows
type LoadFunc func() (*topo.Report, error)

// Model is the browser state
type Model struct {
	config *config.Config
	load   LoadFunc

	// Navigation
	screen     Screen
	shouldQuit bool

	// Loaded history
	report   *topo.Report
	position map[string]int
	cursor   int // index into report.Lines
	offset   int // first line shown in the list

	// UI state
	errorMessage   string
	loadingMessage string
	spinnerFrame   int
	copyFeedback   string // Brief "Copied" message, clears on next key

	// Window size
	width  int
	height int
}

// New creates a new browser model
func New(cfg *config.Config, load LoadFunc) Model {
	return Model{
		config:         cfg,
		load:           load,
		screen:         ScreenLoading,
		loadingMessage: "Reading commit graph...",
		width:          80,
		height:         24,
	}
}

// Init starts loading the report
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		loadReportCmd(m.load),
	)
}

// tickMsg drives the loading spinner
type tickMsg struct{}

func tickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// setReport installs a freshly loaded report and resets navigation
func (m *Model) setReport(report *topo.Report) {
	m.report = report
	m.position = make(map[string]int, len(report.Order))
	for i, hash := range report.Order {
		m.position[hash] = i
	}
	m.cursor = 0
	m.offset = 0
	m.screen = ScreenCommits
}

// lineCount returns the number of commits in the report
func (m Model) lineCount() int {
	if m.report == nil {
		return 0
	}
	return len(m.report.Lines)
}

// current returns the highlighted line
func (m Model) current() (topo.Line, bool) {
	if m.cursor < 0 || m.cursor >= m.lineCount() {
		return topo.Line{}, false
	}
	return m.report.Lines[m.cursor], true
}
