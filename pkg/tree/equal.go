package tree

import "github.com/mholzen/leaftree/pkg/collections"

type nodePair struct {
	a, b Node
}

// Equal reports whether a and b have the same shape and the same leaf values,
// comparing children in order.
func Equal(a, b Node) bool {
	stack := collections.NewStack(nodePair{a, b})
	for {
		pair, ok := stack.Pop()
		if !ok {
			return true
		}
		switch x := pair.a.(type) {
		case nil:
			if pair.b != nil {
				return false
			}
		case Leaf:
			y, ok := pair.b.(Leaf)
			if !ok || x != y {
				return false
			}
		case Group:
			y, ok := pair.b.(Group)
			if !ok || len(x.children) != len(y.children) {
				return false
			}
			for i := range x.children {
				stack.Push(nodePair{x.children[i], y.children[i]})
			}
		}
	}
}
