package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/topo-order-commits/internal/gittest"
)

// isolate points the user config directory at an empty temp dir and
// returns where topo.toml would live.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	path, err := os.UserConfigDir()
	require.NoError(t, err)
	return filepath.Join(path, "topo.toml")
}

// chdir changes the working directory for the duration of the test,
// restoring the previous one on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := execute(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestExecute_PrintsReport(t *testing.T) {
	isolate(t)
	repo := gittest.New(t)
	b := repo.Commit()
	a := repo.Commit(b)
	repo.Branch("main", a)
	chdir(t, repo.Root)

	code, stdout, stderr := runCLI(t)

	assert.Equal(t, 0, code)
	assert.Equal(t, a+" main\n"+b+"\n", stdout)
	assert.Empty(t, stderr)
}

func TestExecute_FromSubdirectory(t *testing.T) {
	isolate(t)
	repo := gittest.New(t)
	a := repo.Commit()
	repo.Branch("main", a)

	sub := filepath.Join(repo.Root, "src", "pkg")
	require.NoError(t, os.MkdirAll(sub, 0755))
	chdir(t, sub)

	code, stdout, _ := runCLI(t)

	assert.Equal(t, 0, code)
	assert.Equal(t, a+" main\n", stdout)
}

func TestExecute_NotInsideRepository(t *testing.T) {
	path := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("[repository]\nmetadata_dir = \".topo-test-absent\"\n"), 0644))
	chdir(t, t.TempDir())

	code, stdout, stderr := runCLI(t)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "Not inside a Git repository\n", stderr)
}

func TestExecute_MissingObjectExitsTwo(t *testing.T) {
	isolate(t)
	repo := gittest.New(t)
	a := repo.Commit()
	repo.Branch("main", a)
	repo.RemoveObject(a)
	chdir(t, repo.Root)

	code, stdout, stderr := runCLI(t)

	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "failed to load commit graph")
	assert.Contains(t, stderr, a)
}

func TestExecute_RejectsArguments(t *testing.T) {
	isolate(t)
	repo := gittest.New(t)
	repo.Branch("main", repo.Commit())
	chdir(t, repo.Root)

	code, stdout, _ := runCLI(t, "extra")

	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
}

func TestExecute_VerboseLogsToStderr(t *testing.T) {
	isolate(t)
	repo := gittest.New(t)
	a := repo.Commit()
	repo.Branch("main", a)
	chdir(t, repo.Root)

	code, stdout, stderr := runCLI(t, "--verbose")

	assert.Equal(t, 0, code)
	assert.Equal(t, a+" main\n", stdout)
	assert.Contains(t, stderr, "topo: loaded 1 commits from 1 branches")
}

func TestExecute_ConfigInit(t *testing.T) {
	path := isolate(t)
	chdir(t, t.TempDir())

	code, stdout, _ := runCLI(t, "config", "path")
	assert.Equal(t, 0, code)
	assert.Equal(t, path+"\n", stdout)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	code, stdout, _ = runCLI(t, "config", "init")
	assert.Equal(t, 0, code)
	assert.Equal(t, path+"\n", stdout)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "metadata_dir")
	assert.Contains(t, string(data), "refs/heads")

	code, _, stderr := runCLI(t, "config", "init")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "config already exists")
}

func TestExecute_BadConfigFallsBackForReport(t *testing.T) {
	path := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("[repository\nmetadata_dir = "), 0644))

	repo := gittest.New(t)
	a := repo.Commit()
	repo.Branch("main", a)
	chdir(t, repo.Root)

	code, stdout, stderr := runCLI(t)
	assert.Equal(t, 0, code)
	assert.Equal(t, a+" main\n", stdout)
	assert.Empty(t, stderr)

	code, _, stderr = runCLI(t, "--verbose")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "topo: ignoring config")

	code, _, stderr = runCLI(t, "browse")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "failed to load config")
}
