package adlist

import "github.com/pengdafu/adt/diag"

// Node holds one borrowed payload. It never owns the memory behind it.
type Node[T any] struct {
	prev  *Node[T]
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

func (n *Node[T]) Prev() *Node[T] {
	if n == nil {
		return nil
	}
	return n.prev
}

// Key returns the payload of node.
func Key[T any](node *Node[T]) (T, error) {
	if node == nil {
		var zero T
		return zero, diag.InvalidArgf("node cannot be nil")
	}
	return node.value, nil
}

const (
	StartHead = 0
	StartTail = 1
)

// Iter walks a list independently of its cursor. Removing the node Next just
// returned is safe, any other mutation invalidates the iterator.
type Iter[T any] struct {
	next      *Node[T]
	direction int
}

func (iter *Iter[T]) Next() *Node[T] {
	cur := iter.next
	if cur != nil {
		if iter.direction == StartHead {
			iter.next = cur.next
		} else {
			iter.next = cur.prev
		}
	}
	return cur
}
