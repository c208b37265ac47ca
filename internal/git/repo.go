package git

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/wahlandcase/topo-order-commits/internal/models"
)

// Layout names the directories that make up a repository's metadata
type Layout struct {
	// MetadataDir is the directory searched for while walking up (".git")
	MetadataDir string
	// HeadsDir is the branch heads subtree relative to MetadataDir
	HeadsDir string
	// ObjectsDir is the loose object store relative to MetadataDir
	ObjectsDir string
}

// DefaultLayout is the standard git directory layout
func DefaultLayout() Layout {
	return Layout{
		MetadataDir: ".git",
		HeadsDir:    filepath.Join("refs", "heads"),
		ObjectsDir:  "objects",
	}
}

// Repository is an opened metadata directory
type Repository struct {
	// GitDir is the absolute path to the metadata directory
	GitDir string
	layout Layout
}

// FindGitDir walks up from start until it finds a directory entry called name.
// The filesystem root itself is not searched; reaching it returns
// *NotRepositoryError.
func FindGitDir(start, name string) (string, error) {
	path, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		parent := filepath.Dir(path)
		if parent == path {
			return "", &NotRepositoryError{Start: start}
		}
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		path = parent
	}
}

// OpenRepository locates the metadata directory above start
func OpenRepository(start string, layout Layout) (*Repository, error) {
	gitDir, err := FindGitDir(start, layout.MetadataDir)
	if err != nil {
		return nil, err
	}
	log.Printf("topo: using metadata directory %s", gitDir)
	return &Repository{GitDir: gitDir, layout: layout}, nil
}

// OpenCurrentRepository opens the repository containing the working directory
func OpenCurrentRepository(layout Layout) (*Repository, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	return OpenRepository(cwd, layout)
}

// HeadsDir returns the absolute path of the branch heads subtree
func (r *Repository) HeadsDir() string {
	return filepath.Join(r.GitDir, r.layout.HeadsDir)
}

// Objects returns the loose object store of the repository
func (r *Repository) Objects() *ObjectStore {
	return NewObjectStore(filepath.Join(r.GitDir, r.layout.ObjectsDir))
}

// Branches enumerates the branch heads of the repository
func (r *Repository) Branches() (models.BranchMap, error) {
	return ReadBranches(r.HeadsDir())
}
