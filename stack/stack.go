// Package stack is a LIFO adapter over slist: push and pop work on the head.
package stack

import (
	"github.com/pengdafu/adt/diag"
	"github.com/pengdafu/adt/mem"
	"github.com/pengdafu/adt/order"
	"github.com/pengdafu/adt/slist"
)

type Stack[T any] struct {
	list *slist.List[T]
	dim  int
}

// New creates a stack holding at most dim payloads; dim 0 means unbounded.
func New[T any](cmp order.Ordering[T], dim int, opts ...mem.Option) (*Stack[T], error) {
	if cmp == nil {
		return nil, diag.InvalidArgf("key_cmp function cannot be nil")
	}
	if dim < 0 {
		return nil, diag.InvalidArgf("stack dimension cannot be negative")
	}
	l, err := slist.Create(cmp, opts...)
	if err != nil {
		return nil, diag.Wrap(err, "couldn't create stack")
	}
	return &Stack[T]{list: l, dim: dim}, nil
}

func errNilStack() error {
	return diag.InvalidArgf("stack cannot be nil")
}

// Destroy empties the stack, releasing the payloads when release is true.
func (s *Stack[T]) Destroy(release bool) {
	if s == nil {
		return
	}
	s.list.Destroy(release)
	s.list = nil
}

func (s *Stack[T]) Push(key T) error {
	if s == nil {
		return errNilStack()
	}
	if mem.IsNil(key) {
		return diag.InvalidArgf("key cannot be nil")
	}
	if s.dim > 0 && s.list.Len()+1 > s.dim {
		return diag.Fullf("cannot push element into stack: stack is full")
	}
	return s.list.AddHead(key)
}

// Pop removes the top payload and returns it; the caller owns it again.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s == nil {
		return zero, errNilStack()
	}
	head := s.list.Head()
	if head == nil {
		return zero, diag.Emptyf("stack is empty")
	}
	out := head.Key()
	if err := s.list.RemoveHead(false); err != nil {
		return zero, diag.Wrap(err, "popping the node from the stack")
	}
	return out, nil
}

func (s *Stack[T]) Top() (T, error) {
	var zero T
	if s == nil {
		return zero, errNilStack()
	}
	head := s.list.Head()
	if head == nil {
		return zero, diag.Emptyf("stack is empty")
	}
	return head.Key(), nil
}

func (s *Stack[T]) IsEmpty() bool {
	return s.Len() == 0
}

// IsFull is always false for an unbounded stack.
func (s *Stack[T]) IsFull() bool {
	if s == nil || s.dim == 0 {
		return false
	}
	return s.list.Len() == s.dim
}

func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.list.Len()
}

func (s *Stack[T]) Dim() int {
	if s == nil {
		return 0
	}
	return s.dim
}

// IsTop reports whether key compares equal to the top payload.
func (s *Stack[T]) IsTop(key T) (bool, error) {
	if s == nil {
		return false, errNilStack()
	}
	if mem.IsNil(key) {
		return false, diag.InvalidArgf("key cannot be nil")
	}
	head := s.list.Head()
	if head == nil {
		return false, nil
	}
	return s.list.Compare(key, head.Key()) == 0, nil
}

func (s *Stack[T]) Contains(key T) (bool, error) {
	if s == nil {
		return false, errNilStack()
	}
	if mem.IsNil(key) {
		return false, diag.InvalidArgf("key cannot be nil")
	}
	return s.list.Contains(key), nil
}

// Keys lists the payloads from the top down.
func (s *Stack[T]) Keys() []T {
	if s == nil {
		return nil
	}
	return s.list.Keys()
}
