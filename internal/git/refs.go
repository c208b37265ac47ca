package git

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wahlandcase/topo-order-commits/internal/models"
)

// ReadBranches maps every file below headsDir to the commit id on its first line.
// Branch names use "/" as separator whatever the host separator is.
func ReadBranches(headsDir string) (models.BranchMap, error) {
	info, err := os.Stat(headsDir)
	if err != nil {
		return models.BranchMap{}, &RefError{Path: headsDir, Err: err}
	}
	if !info.IsDir() {
		return models.BranchMap{}, &RefError{Path: headsDir, Err: errors.New("not a directory")}
	}

	var paths []string
	err = filepath.WalkDir(headsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		// Follow symlinks the way a plain open would
		st, err := os.Stat(path)
		if err != nil || !st.Mode().IsRegular() {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return models.BranchMap{}, &RefError{Path: headsDir, Err: err}
	}

	// Compare by path component so traversal order does not leak into the result
	sort.Slice(paths, func(i, j int) bool {
		return models.LessBranchName(filepath.ToSlash(paths[i]), filepath.ToSlash(paths[j]))
	})

	branches := make([]models.Branch, 0, len(paths))
	for _, path := range paths {
		rel, err := filepath.Rel(headsDir, path)
		if err != nil {
			return models.BranchMap{}, &RefError{Path: path, Err: err}
		}
		hash, err := readRefHash(path)
		if err != nil {
			return models.BranchMap{}, &RefError{Path: path, Err: err}
		}
		branches = append(branches, models.Branch{
			Name: filepath.ToSlash(rel),
			Hash: hash,
		})
	}

	return models.NewBranchMap(branches), nil
}

// readRefHash returns the trimmed first line of a ref file
func readRefHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	hash := strings.ToLower(strings.TrimSpace(line))
	if !IsValidHash(hash) {
		return "", fmt.Errorf("first line %q is not a commit id", strings.TrimSpace(line))
	}
	return hash, nil
}
