package models

import (
	"slices"
	"sort"
	"strings"
)

// Branch is a named branch tip
type Branch struct {
	// Name is the path below refs/heads, slash separated (e.g., "feature/login")
	Name string
	// Hash is the commit the branch points at
	Hash string
}

// BranchMap maps branch names to commit ids.
// Entries are kept in LessBranchName order and never change after construction.
type BranchMap struct {
	entries []Branch
	byHash  map[string][]string
}

// NewBranchMap builds a BranchMap. A later entry with a duplicate name wins.
func NewBranchMap(branches []Branch) BranchMap {
	byName := make(map[string]string, len(branches))
	for _, b := range branches {
		byName[b.Name] = b.Hash
	}

	entries := make([]Branch, 0, len(byName))
	for name, hash := range byName {
		entries = append(entries, Branch{Name: name, Hash: hash})
	}
	sort.Slice(entries, func(i, j int) bool {
		return LessBranchName(entries[i].Name, entries[j].Name)
	})

	byHash := make(map[string][]string)
	for _, e := range entries {
		byHash[e.Hash] = append(byHash[e.Hash], e.Name)
	}
	for _, names := range byHash {
		sort.Strings(names)
	}

	return BranchMap{entries: entries, byHash: byHash}
}

// LessBranchName orders names one "/" separated component at a time,
// so "a/b" sorts before "a-b" even though '-' < '/'.
func LessBranchName(a, b string) bool {
	return slices.Compare(strings.Split(a, "/"), strings.Split(b, "/")) < 0
}

// Entries returns the branches in LessBranchName order
func (m BranchMap) Entries() []Branch {
	return append([]Branch(nil), m.entries...)
}

// Tips returns the branch tip hashes in entry order, duplicates included
func (m BranchMap) Tips() []string {
	tips := make([]string, len(m.entries))
	for i, e := range m.entries {
		tips[i] = e.Hash
	}
	return tips
}

// NamesFor returns the names of every branch pointing at hash, sorted as plain strings
func (m BranchMap) NamesFor(hash string) []string {
	return append([]string(nil), m.byHash[hash]...)
}

// Len returns the number of branches
func (m BranchMap) Len() int {
	return len(m.entries)
}
