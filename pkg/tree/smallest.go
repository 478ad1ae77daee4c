package tree

import (
	"iter"

	"github.com/mholzen/leaftree/pkg/collections"
)

// NoLeaf is returned by SmallestLeaf when no leaf is reachable. Leaf values are
// never negative, so it cannot collide with a real value.
const NoLeaf = -1

// SmallestLeaf returns the smallest leaf value reachable from root, or NoLeaf.
func SmallestLeaf(root Node) int {
	smallest := NoLeaf
	for value := range Leaves(root) {
		if smallest == NoLeaf || value < smallest {
			smallest = value
		}
	}
	return smallest
}

// Leaves yields every leaf value reachable from root, depth first with
// children in order. The walk uses an explicit stack, so depth is only
// bounded by memory.
func Leaves(root Node) iter.Seq[int] {
	return func(yield func(int) bool) {
		stack := collections.Stack[Node]{}
		stack.Push(root)
		for {
			node, ok := stack.Pop()
			if !ok {
				return
			}
			switch n := node.(type) {
			case Leaf:
				if !yield(n.value) {
					return
				}
			case Group:
				for i := len(n.children) - 1; i >= 0; i-- {
					stack.Push(n.children[i])
				}
			}
		}
	}
}
