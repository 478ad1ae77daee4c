package collections

// Stack is a LIFO work-list. The zero value is an empty stack.
type Stack[T any] struct {
	Items []T
}

func NewStack[T any](items ...T) *Stack[T] {
	return &Stack[T]{Items: append([]T(nil), items...)}
}

func (s Stack[T]) IsEmpty() bool {
	return len(s.Items) == 0
}

func (s Stack[T]) Len() int {
	return len(s.Items)
}

func (s *Stack[T]) Push(items ...T) {
	s.Items = append(s.Items, items...)
}

// Pop removes and returns the top item. ok is false when the stack is empty.
func (s *Stack[T]) Pop() (item T, ok bool) {
	if len(s.Items) == 0 {
		return item, false
	}
	last := len(s.Items) - 1
	item = s.Items[last]
	var zero T
	s.Items[last] = zero
	s.Items = s.Items[:last]
	return item, true
}

func (s *Stack[T]) Top() (item T, ok bool) {
	if len(s.Items) == 0 {
		return item, false
	}
	return s.Items[len(s.Items)-1], true
}
