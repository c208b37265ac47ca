package models

import mapset "github.com/deckarep/golang-set/v2"

// CommitNode is one commit in the ancestry graph
type CommitNode struct {
	// Hash is the 40 character lowercase hex commit id
	Hash string

	parents   []string
	parentSet mapset.Set[string]
	children  []string
	childSet  mapset.Set[string]
}

// NewCommitNode creates a node with no recorded edges
func NewCommitNode(hash string) *CommitNode {
	return &CommitNode{
		Hash:      hash,
		parentSet: mapset.NewThreadUnsafeSet[string](),
		childSet:  mapset.NewThreadUnsafeSet[string](),
	}
}

// SetParents replaces the parent set, keeping first-seen order and dropping duplicates
func (n *CommitNode) SetParents(hashes []string) {
	n.parents = n.parents[:0]
	n.parentSet.Clear()
	for _, h := range hashes {
		if n.parentSet.Add(h) {
			n.parents = append(n.parents, h)
		}
	}
}

// AddChild records a commit that declares this one as a parent
func (n *CommitNode) AddChild(hash string) {
	if n.childSet.Add(hash) {
		n.children = append(n.children, hash)
	}
}

// Parents returns parent ids in the order the commit object lists them
func (n *CommitNode) Parents() []string {
	return append([]string(nil), n.parents...)
}

// Children returns child ids in discovery order
func (n *CommitNode) Children() []string {
	return append([]string(nil), n.children...)
}

func (n *CommitNode) HasParent(hash string) bool {
	return n.parentSet.Contains(hash)
}

func (n *CommitNode) HasChild(hash string) bool {
	return n.childSet.Contains(hash)
}

// IsRoot reports whether the commit records no parents
func (n *CommitNode) IsRoot() bool {
	return len(n.parents) == 0
}

// ParentSet returns a copy of the parent set for destructive consumers
func (n *CommitNode) ParentSet() mapset.Set[string] {
	return n.parentSet.Clone()
}
