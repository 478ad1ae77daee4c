package stats

import (
	"github.com/mholzen/leaftree/pkg/collections"
	"github.com/mholzen/leaftree/pkg/tree"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Summary struct {
	Leaves   int `json:"leaves"`
	Groups   int `json:"groups"`
	MaxDepth int `json:"maxDepth"`
	Smallest int `json:"smallest"`
	Largest  int `json:"largest"`
}

type frame struct {
	node  tree.Node
	depth int
}

// Count walks the whole tree once. The root is at depth 0; Smallest and Largest
// are tree.NoLeaf when the tree has no leaves.
func Count(root tree.Node) Summary {
	summary := Summary{Smallest: tree.NoLeaf, Largest: tree.NoLeaf}
	frames := collections.NewStack(frame{node: root})

	for !frames.IsEmpty() {
		f, _ := frames.Pop()
		switch n := f.node.(type) {
		case tree.Leaf:
			summary.Leaves++
			value := n.Value()
			if summary.Smallest == tree.NoLeaf || value < summary.Smallest {
				summary.Smallest = value
			}
			if value > summary.Largest {
				summary.Largest = value
			}
		case tree.Group:
			summary.Groups++
			for child := range n.Children() {
				frames.Push(frame{node: child, depth: f.depth + 1})
			}
		default:
			continue
		}
		summary.MaxDepth = max(summary.MaxDepth, f.depth)
	}
	return summary
}

func (s Summary) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("leaves: %d, groups: %d, depth: %d, smallest: %d, largest: %d",
		s.Leaves, s.Groups, s.MaxDepth, s.Smallest, s.Largest)
}
