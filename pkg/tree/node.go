// Package tree models a rooted tree of groups and non-negative integer leaves.
//
// A Node is either a Group or a Leaf. Both are immutable values: a Group copies
// its children on construction and a Leaf can only be built with a value >= 0.
package tree

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Node is implemented only by Group and Leaf.
type Node interface {
	fmt.Stringer
	isNode()
}

type Group struct {
	children []Node
}

func NewGroup(children ...Node) Group {
	return Group{children: slices.Clone(children)}
}

func (Group) isNode() {}

func (g Group) Children() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, child := range g.children {
			if !yield(child) {
				return
			}
		}
	}
}

func (g Group) Len() int {
	return len(g.children)
}

func (g Group) Child(i int) Node {
	return g.children[i]
}

func (g Group) String() string {
	parts := make([]string, 0, len(g.children))
	for _, child := range g.children {
		if child == nil {
			parts = append(parts, "<nil>")
			continue
		}
		parts = append(parts, child.String())
	}
	return "Group[" + strings.Join(parts, " ") + "]"
}

// Leaf holds a non-negative value. The zero Leaf holds 0.
type Leaf struct {
	value int
}

func NewLeaf(value int) (Leaf, error) {
	if value < 0 {
		return Leaf{}, &InvalidArgumentError{Value: value}
	}
	return Leaf{value: value}, nil
}

// MustLeaf is like NewLeaf but panics on a negative value.
func MustLeaf(value int) Leaf {
	leaf, err := NewLeaf(value)
	if err != nil {
		panic(err)
	}
	return leaf
}

func (Leaf) isNode() {}

func (l Leaf) Value() int {
	return l.value
}

func (l Leaf) String() string {
	return fmt.Sprintf("Leaf(%d)", l.value)
}
