package app

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/topo-order-commits/internal/config"
	"github.com/wahlandcase/topo-order-commits/internal/git"
	"github.com/wahlandcase/topo-order-commits/internal/gittest"
	"github.com/wahlandcase/topo-order-commits/internal/topo"
	"github.com/wahlandcase/topo-order-commits/internal/ui"
)

type history struct {
	root, x, y, merge, side string
}

// newHistory builds a repository printed as merge, side, y, x, root with
// seams after merge and after y.
func newHistory(t *testing.T) (*gittest.Repo, history) {
	t.Helper()
	repo := gittest.New(t)
	var h history
	h.root = repo.Commit()
	h.x = repo.Commit(h.root)
	h.y = repo.Commit(h.root)
	h.merge = repo.Commit(h.x, h.y)
	h.side = repo.Commit(h.y)
	repo.Branch("main", h.merge)
	repo.Branch("alpha", h.side)
	return repo, h
}

func loaderFor(repo *gittest.Repo) LoadFunc {
	return func() (*topo.Report, error) {
		r, err := git.OpenRepository(repo.Root, git.DefaultLayout())
		if err != nil {
			return nil, err
		}
		return topo.Build(r)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func loaded(t *testing.T, load LoadFunc) Model {
	t.Helper()
	ui.Setup(false)
	m := New(config.DefaultConfig(), load)
	m, _ = send(t, m, loadReportCmd(load)())
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_LoadsReport(t *testing.T) {
	repo, h := newHistory(t)
	m := loaded(t, loaderFor(repo))

	assert.Equal(t, ScreenCommits, m.screen)
	assert.Equal(t, 5, m.lineCount())
	line, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, h.merge, line.Hash)
	assert.Contains(t, m.View(), ui.ShortHash(h.merge))
}

func TestModel_LoadErrorShowsErrorScreen(t *testing.T) {
	m := loaded(t, func() (*topo.Report, error) {
		return nil, errors.New("object deadbeef: missing")
	})

	assert.Equal(t, ScreenError, m.screen)
	assert.Contains(t, m.View(), "object deadbeef: missing")

	m, cmd := send(t, m, key("enter"))
	assert.True(t, isQuit(cmd))
	assert.Equal(t, "", m.View())
}

func TestModel_Navigation(t *testing.T) {
	repo, h := newHistory(t)
	m := loaded(t, loaderFor(repo))

	m, _ = send(t, m, key("j"))
	m, _ = send(t, m, key("j"))
	line, _ := m.current()
	assert.Equal(t, h.y, line.Hash)

	m, _ = send(t, m, key("k"))
	assert.Equal(t, 1, m.cursor)

	m, _ = send(t, m, key("G"))
	assert.Equal(t, 4, m.cursor)
	m, _ = send(t, m, key("j"))
	assert.Equal(t, 4, m.cursor)

	m, _ = send(t, m, key("g"))
	assert.Equal(t, 0, m.cursor)
	m, _ = send(t, m, key("k"))
	assert.Equal(t, 0, m.cursor)
}

func TestModel_SeamJumps(t *testing.T) {
	repo, _ := newHistory(t)
	m := loaded(t, loaderFor(repo))

	m, _ = send(t, m, key("n"))
	assert.Equal(t, 2, m.cursor)

	// no seam after y
	m, _ = send(t, m, key("n"))
	assert.Equal(t, 2, m.cursor)

	m, _ = send(t, m, key("N"))
	assert.Equal(t, 0, m.cursor)
}

func TestModel_DetailFollowsEdges(t *testing.T) {
	repo, h := newHistory(t)
	m := loaded(t, loaderFor(repo))

	m, _ = send(t, m, key("enter"))
	assert.Equal(t, ScreenDetail, m.screen)
	assert.Contains(t, m.View(), h.merge)

	// first parent of the merge is x
	m, _ = send(t, m, key("p"))
	line, _ := m.current()
	assert.Equal(t, h.x, line.Hash)

	m, _ = send(t, m, key("p"))
	line, _ = m.current()
	assert.Equal(t, h.root, line.Hash)

	// root has no parent
	m, _ = send(t, m, key("p"))
	line, _ = m.current()
	assert.Equal(t, h.root, line.Hash)

	// children are kept in discovery order and y was found first
	m, _ = send(t, m, key("c"))
	line, _ = m.current()
	assert.Equal(t, h.y, line.Hash)

	m, _ = send(t, m, key("esc"))
	assert.Equal(t, ScreenCommits, m.screen)
}

func TestModel_Quit(t *testing.T) {
	repo, _ := newHistory(t)
	m := loaded(t, loaderFor(repo))

	_, cmd := send(t, m, key("q"))
	assert.True(t, isQuit(cmd))

	m, _ = send(t, m, key("enter"))
	_, cmd = send(t, m, key("q"))
	assert.True(t, isQuit(cmd))

	_, cmd = send(t, m, key("ctrl+c"))
	assert.True(t, isQuit(cmd))
}

func TestModel_TickOnlyWhileLoading(t *testing.T) {
	repo, _ := newHistory(t)
	m := New(config.DefaultConfig(), loaderFor(repo))

	m, cmd := send(t, m, tickMsg{})
	assert.Equal(t, 1, m.spinnerFrame)
	assert.NotNil(t, cmd)

	m, _ = send(t, m, loadReportCmd(m.load)())
	_, cmd = send(t, m, tickMsg{})
	assert.Nil(t, cmd)
}

func TestModel_CopyFeedback(t *testing.T) {
	repo, h := newHistory(t)
	m := loaded(t, loaderFor(repo))

	m, _ = send(t, m, clipboardResult{hash: h.merge})
	assert.Equal(t, "Copied "+h.merge, m.copyFeedback)

	m, _ = send(t, m, clipboardResult{hash: h.merge, err: errors.New("no clipboard")})
	assert.Equal(t, "Copy failed: no clipboard", m.copyFeedback)

	m, _ = send(t, m, key("j"))
	assert.Empty(t, m.copyFeedback)
}

func TestModel_SmallWindowKeepsCursorVisible(t *testing.T) {
	repo, _ := newHistory(t)
	m := loaded(t, loaderFor(repo))

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 10})
	assert.Equal(t, 3, m.listHeight())

	m, _ = send(t, m, key("G"))
	assert.Equal(t, 4, m.cursor)
	assert.Greater(t, m.offset, 0)
	assert.LessOrEqual(t, m.offset, m.cursor)
}
