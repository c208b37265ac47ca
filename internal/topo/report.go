package topo

import (
	"fmt"
	"io"

	"github.com/wahlandcase/topo-order-commits/internal/git"
	"github.com/wahlandcase/topo-order-commits/internal/models"
)

// Report is the loaded, ordered and annotated history of a repository
type Report struct {
	Branches models.BranchMap
	Graph    *models.Graph
	Order    []string
	Lines    []Line
}

// Build runs the whole pipeline: branches, graph, sort, annotations
func Build(repo *git.Repository) (*Report, error) {
	branches, err := repo.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to read branches: %w", err)
	}
	return BuildFrom(repo.Objects(), branches)
}

// BuildFrom runs the pipeline against an explicit object source and branch map
func BuildFrom(objects git.ObjectReader, branches models.BranchMap) (*Report, error) {
	graph, err := git.LoadGraph(objects, branches)
	if err != nil {
		return nil, fmt.Errorf("failed to load commit graph: %w", err)
	}

	order, err := Sort(graph)
	if err != nil {
		return nil, err
	}

	return &Report{
		Branches: branches,
		Graph:    graph,
		Order:    order,
		Lines:    Annotate(order, graph, branches),
	}, nil
}

// Print renders the report to w
func (r *Report) Print(w io.Writer) error {
	return WriteLines(w, r.Lines)
}

// SeamCount returns how many printed adjacencies are not parent edges
func (r *Report) SeamCount() int {
	n := 0
	for _, line := range r.Lines {
		if line.Seam != nil {
			n++
		}
	}
	return n
}
