// Package outline builds trees from an indented bullet list and writes them
// back out.
//
//	- *
//	  - 9
//	  - *
//	    - 2
//	  - 6
//
// "- *" (or "- group") opens a group, "- <n>" is a leaf, and children are
// indented two spaces deeper than their parent.
package outline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mholzen/leaftree/pkg/collections"
	"github.com/mholzen/leaftree/pkg/tree"
)

const indentWidth = 2

var (
	ErrIndentation = errors.New("bad indentation")
	ErrSyntax      = errors.New("syntax error")
)

type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type openGroup struct {
	level    int
	children []tree.Node
}

// Parse reads an outline. Lines have no length limit. A document with one top-level bullet returns that
// node; several top-level bullets are wrapped in a group, and an empty
// document is the empty group.
func Parse(text string) (tree.Node, error) {
	groups := collections.NewStack(&openGroup{level: -1})

	closeUntil := func(level int) *openGroup {
		for {
			top, _ := groups.Top()
			if top.level < level {
				return top
			}
			groups.Pop()
			parent, _ := groups.Top()
			parent.children = append(parent.children, tree.NewGroup(top.children...))
		}
	}

	lineNumber := 0
	for raw := range strings.Lines(text) {
		lineNumber++
		line := strings.TrimRight(raw, " \t\r\n")
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		indent := len(line) - len(trimmed)
		if indent%indentWidth != 0 || strings.HasPrefix(trimmed, "\t") {
			return nil, &ParseError{Line: lineNumber, Err: fmt.Errorf("%w: indent must be a multiple of %d spaces", ErrIndentation, indentWidth)}
		}
		level := indent / indentWidth

		parent := closeUntil(level)
		if parent.level != level-1 {
			return nil, &ParseError{Line: lineNumber, Err: fmt.Errorf("%w: level %d has no parent group", ErrIndentation, level)}
		}

		item, err := parseItem(trimmed)
		if err != nil {
			return nil, &ParseError{Line: lineNumber, Err: err}
		}
		if item == nil {
			groups.Push(&openGroup{level: level})
			continue
		}
		parent.children = append(parent.children, item)
	}

	root := closeUntil(0)
	if len(root.children) == 1 {
		return root.children[0], nil
	}
	return tree.NewGroup(root.children...), nil
}

// parseItem returns the leaf for a bullet, or nil for a group bullet.
func parseItem(bullet string) (tree.Node, error) {
	if bullet != "-" && !strings.HasPrefix(bullet, "- ") {
		return nil, fmt.Errorf("%w: expected '- ' bullet, got %q", ErrSyntax, bullet)
	}
	item := strings.TrimSpace(strings.TrimPrefix(bullet, "-"))

	switch strings.ToLower(item) {
	case "*", "group":
		return nil, nil
	case "":
		return nil, fmt.Errorf("%w: empty bullet", ErrSyntax)
	}

	value, err := strconv.Atoi(item)
	if err != nil {
		return nil, fmt.Errorf("%w: leaf value %q is not an integer", ErrSyntax, item)
	}
	leaf, err := tree.NewLeaf(value)
	if err != nil {
		return nil, err
	}
	return leaf, nil
}
