package models

// Graph is an arena of commit nodes addressed by hash.
// Hashes() preserves insertion order so that iteration never depends on map order.
type Graph struct {
	nodes map[string]*CommitNode
	order []string
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*CommitNode)}
}

// Ensure returns the node for hash, creating it if needed.
// The boolean is true when the node was created by this call.
func (g *Graph) Ensure(hash string) (*CommitNode, bool) {
	if n, ok := g.nodes[hash]; ok {
		return n, false
	}
	n := NewCommitNode(hash)
	g.nodes[hash] = n
	g.order = append(g.order, hash)
	return n, true
}

// Node returns the node for hash or nil
func (g *Graph) Node(hash string) *CommitNode {
	return g.nodes[hash]
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.order)
}

// Hashes returns every node hash in insertion order
func (g *Graph) Hashes() []string {
	return append([]string(nil), g.order...)
}
