package git

import (
	"log"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/wahlandcase/topo-order-commits/internal/models"
)

// ObjectReader is the part of ObjectStore the loader needs
type ObjectReader interface {
	ReadText(hash string) (string, error)
}

// LoadGraph decodes every commit reachable from the branch tips and links
// parents and children both ways. Traversal is depth first with a stack
// seeded from branches.Tips().
func LoadGraph(objects ObjectReader, branches models.BranchMap) (*models.Graph, error) {
	graph := models.NewGraph()
	visited := mapset.NewThreadUnsafeSet[string]()
	toVisit := branches.Tips()

	for len(toVisit) > 0 {
		hash := toVisit[len(toVisit)-1]
		toVisit = toVisit[:len(toVisit)-1]

		if visited.Contains(hash) {
			continue
		}

		text, err := objects.ReadText(hash)
		if err != nil {
			return nil, err
		}
		parents := ParseParents(text)

		node, _ := graph.Ensure(hash)
		node.SetParents(parents)

		for _, parent := range parents {
			if !visited.Contains(parent) {
				toVisit = append(toVisit, parent)
			}
			parentNode, _ := graph.Ensure(parent)
			parentNode.AddChild(hash)
		}

		visited.Add(hash)
	}

	if visited.Cardinality() != graph.Len() {
		return nil, &InvariantError{Stage: "load graph", Want: graph.Len(), Got: visited.Cardinality()}
	}

	log.Printf("topo: loaded %d commits from %d branches", graph.Len(), branches.Len())
	return graph, nil
}
