// Package topo orders a commit graph and renders the annotated report.
package topo

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/wahlandcase/topo-order-commits/internal/git"
	"github.com/wahlandcase/topo-order-commits/internal/models"
)

// Sort returns every commit exactly once, newest first.
//
// Root commits are peeled off Kahn style: the frontier starts with parentless
// nodes in graph order and is used as a stack, and children are released in
// discovery order. The resulting oldest-first order is reversed. Only a copy
// of the parent sets is consumed, so the graph stays usable.
func Sort(graph *models.Graph) ([]string, error) {
	remaining := make(map[string]mapset.Set[string], graph.Len())
	var frontier []string
	for _, hash := range graph.Hashes() {
		node := graph.Node(hash)
		remaining[hash] = node.ParentSet()
		if node.IsRoot() {
			frontier = append(frontier, hash)
		}
	}

	sorted := make([]string, 0, graph.Len())
	for len(frontier) > 0 {
		hash := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		sorted = append(sorted, hash)

		for _, child := range graph.Node(hash).Children() {
			left := remaining[child]
			left.Remove(hash)
			if left.Cardinality() == 0 {
				frontier = append(frontier, child)
			}
		}
	}

	if len(sorted) != graph.Len() {
		return nil, &git.InvariantError{Stage: "topological sort", Want: graph.Len(), Got: len(sorted)}
	}

	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	return sorted, nil
}
