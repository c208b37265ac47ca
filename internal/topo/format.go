package topo

import (
	"bufio"
	"io"
	"sort"
	"strings"

	"github.com/wahlandcase/topo-order-commits/internal/models"
)

// Line is one printed commit with its annotations
type Line struct {
	Hash string
	// Branches are the sorted names of branches pointing at Hash
	Branches []string
	// Seam is set when the next printed commit is not a parent of Hash
	Seam *Seam
}

// Seam marks a jump in the printed order between unrelated commits
type Seam struct {
	// Parents of the current commit, in printed order
	Parents []string
	// Children of the next printed commit, in printed order
	Children []string
}

// Annotate pairs every commit in order with its branch names and seam
func Annotate(order []string, graph *models.Graph, branches models.BranchMap) []Line {
	position := make(map[string]int, len(order))
	for i, hash := range order {
		position[hash] = i
	}

	lines := make([]Line, len(order))
	for i, hash := range order {
		lines[i] = Line{Hash: hash, Branches: branches.NamesFor(hash)}
		if i+1 == len(order) {
			continue
		}

		next := graph.Node(order[i+1])
		if next.HasChild(hash) {
			continue
		}
		lines[i].Seam = &Seam{
			Parents:  inPrintedOrder(graph.Node(hash).Parents(), position),
			Children: inPrintedOrder(next.Children(), position),
		}
	}
	return lines
}

func inPrintedOrder(hashes []string, position map[string]int) []string {
	sort.SliceStable(hashes, func(i, j int) bool {
		return position[hashes[i]] < position[hashes[j]]
	})
	return hashes
}

// WriteLines renders lines in the report format:
//
//	<hash>[ <branch>...]
//	<parents>=
//
//	=<children of next>
//
// where the last three lines only appear for a seam.
func WriteLines(w io.Writer, lines []Line) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		bw.WriteString(line.Hash)
		for _, name := range line.Branches {
			bw.WriteString(" ")
			bw.WriteString(name)
		}
		if line.Seam != nil {
			bw.WriteString("\n")
			bw.WriteString(strings.Join(line.Seam.Parents, " "))
			bw.WriteString("=\n")
			bw.WriteString("\n=")
			bw.WriteString(strings.Join(line.Seam.Children, " "))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}
