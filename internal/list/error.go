package list

import (
	"errors"
	"fmt"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrCursorEnd       = errors.New("cursor is at the end of the list")
	ErrStaleCursor     = errors.New("cursor refers to a removed element")
)

// IndexError is returned by every indexed operation that got an invalid index.
// errors.Is(err, ErrIndexOutOfRange) reports true for it.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("list: %s: index %d out of range with length %d", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

func newIndexErr(op string, index, l int) error {
	return &IndexError{Op: op, Index: index, Len: l}
}
