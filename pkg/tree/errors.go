package tree

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a leaf value that is out of range.
type InvalidArgumentError struct {
	Value int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("leaf value must be non-negative (value=%d)", e.Value)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
