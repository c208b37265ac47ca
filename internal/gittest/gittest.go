// Package gittest builds throwaway repositories made of loose objects for tests.
package gittest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/klauspost/compress/zlib"
)

const emptyTree = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"

// Repo is a repository under construction inside t.TempDir()
type Repo struct {
	t testing.TB

	// Root is the working directory containing the metadata directory
	Root string
	// GitDir is Root/.git
	GitDir string

	seq int
}

// New creates an empty repository with objects/ and refs/heads/
func New(t testing.TB) *Repo {
	t.Helper()
	root := t.TempDir()
	gitDir := filepath.Join(root, ".git")
	for _, dir := range []string{
		filepath.Join(gitDir, "objects"),
		filepath.Join(gitDir, "refs", "heads"),
	} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("create %s: %v", dir, err)
		}
	}
	return &Repo{t: t, Root: root, GitDir: gitDir}
}

// Commit writes a commit object with the given parents and returns its id.
// Every call produces a distinct commit.
func (r *Repo) Commit(parents ...string) string {
	r.t.Helper()
	r.seq++

	var body strings.Builder
	fmt.Fprintf(&body, "tree %s\n", emptyTree)
	for _, p := range parents {
		fmt.Fprintf(&body, "parent %s\n", p)
	}
	fmt.Fprintf(&body, "author Test <test@example.com> %d +0000\n", 1700000000+r.seq)
	fmt.Fprintf(&body, "committer Test <test@example.com> %d +0000\n", 1700000000+r.seq)
	fmt.Fprintf(&body, "\ncommit %d\n", r.seq)

	return r.WriteObject(plumbing.CommitObject, []byte(body.String()))
}

// WriteObject stores content as a loose object of type typ and returns its id
func (r *Repo) WriteObject(typ plumbing.ObjectType, content []byte) string {
	r.t.Helper()
	hash := plumbing.ComputeHash(typ, content).String()

	var raw bytes.Buffer
	fmt.Fprintf(&raw, "%s %d\x00", typ, len(content))
	raw.Write(content)

	r.WriteRaw(hash, Deflate(r.t, raw.Bytes()))
	return hash
}

// WriteRaw stores data verbatim at the loose object path for hash
func (r *Repo) WriteRaw(hash string, data []byte) {
	r.t.Helper()
	path := r.ObjectPath(hash)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.t.Fatalf("create object dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		r.t.Fatalf("write object %s: %v", hash, err)
	}
}

// ObjectPath returns where the loose object for hash lives
func (r *Repo) ObjectPath(hash string) string {
	return filepath.Join(r.GitDir, "objects", hash[:2], hash[2:])
}

// RemoveObject deletes the loose object for hash
func (r *Repo) RemoveObject(hash string) {
	r.t.Helper()
	if err := os.Remove(r.ObjectPath(hash)); err != nil {
		r.t.Fatalf("remove object %s: %v", hash, err)
	}
}

// Branch points refs/heads/<name> at hash. Slashes in name create subdirectories.
func (r *Repo) Branch(name, hash string) {
	r.t.Helper()
	r.WriteRef(name, hash+"\n")
}

// WriteRef writes arbitrary content to refs/heads/<name>
func (r *Repo) WriteRef(name, content string) {
	r.t.Helper()
	path := filepath.Join(r.GitDir, "refs", "heads", filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		r.t.Fatalf("create ref dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		r.t.Fatalf("write ref %s: %v", name, err)
	}
}

// Deflate zlib-compresses data
func Deflate(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("deflate: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("deflate: %v", err)
	}
	return buf.Bytes()
}
