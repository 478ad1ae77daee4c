package outline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mholzen/leaftree/pkg/collections"
	"github.com/mholzen/leaftree/pkg/tree"
	"github.com/xlab/treeprint"
)

type renderFrame struct {
	node  tree.Node
	level int
}

// Render writes node in the notation read by Parse, as a single top-level
// bullet.
func Render(node tree.Node) string {
	var b strings.Builder
	frames := collections.NewStack(renderFrame{node: node})

	for !frames.IsEmpty() {
		f, _ := frames.Pop()
		indent := strings.Repeat(" ", f.level*indentWidth)
		switch n := f.node.(type) {
		case tree.Leaf:
			fmt.Fprintf(&b, "%s- %d\n", indent, n.Value())
		case tree.Group:
			fmt.Fprintf(&b, "%s- *\n", indent)
			for i := n.Len() - 1; i >= 0; i-- {
				frames.Push(renderFrame{node: n.Child(i), level: f.level + 1})
			}
		}
	}
	return b.String()
}

type branch struct {
	group tree.Group
	treeprint.Tree
}

// Diagram draws node as a box-drawing tree. Groups are labelled "*". A nil
// node draws nothing and nil children are skipped.
func Diagram(node tree.Node) string {
	if node == nil {
		return ""
	}
	group, ok := node.(tree.Group)
	if !ok {
		return treeprint.NewWithRoot(label(node)).String()
	}

	root := treeprint.NewWithRoot(label(group))
	remaining := []branch{{group: group, Tree: root}}
	for len(remaining) > 0 {
		current := remaining[0]
		remaining = remaining[1:]
		for child := range current.group.Children() {
			if child == nil {
				continue
			}
			if g, ok := child.(tree.Group); ok {
				remaining = append(remaining, branch{group: g, Tree: current.AddBranch(label(g))})
				continue
			}
			current.AddNode(label(child))
		}
	}
	return root.String()
}

func label(node tree.Node) string {
	if leaf, ok := node.(tree.Leaf); ok {
		return strconv.Itoa(leaf.Value())
	}
	return "*"
}
