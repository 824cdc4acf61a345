package slist

import "github.com/pengdafu/adt/diag"

// Node holds one borrowed payload.
type Node[T any] struct {
	next  *Node[T]
	value T
}

func (n *Node[T]) Key() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.value
}

func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}
	return n.next
}

// Key returns the payload of node.
func Key[T any](node *Node[T]) (T, error) {
	if node == nil {
		var zero T
		return zero, diag.InvalidArgf("node cannot be nil")
	}
	return node.value, nil
}

// Iter walks a list from the head independently of its cursor. Removing the
// node Next just returned is safe.
type Iter[T any] struct {
	next *Node[T]
}

func (iter *Iter[T]) Next() *Node[T] {
	cur := iter.next
	if cur != nil {
		iter.next = cur.next
	}
	return cur
}
