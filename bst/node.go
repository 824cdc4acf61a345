package bst

import "github.com/pengdafu/adt/diag"

const (
	left  = 0
	right = 1
)

// Node owns references to a key and a value. Both are borrowed from the
// caller and are released only on request, independently of each other.
type Node[K, V any] struct {
	key      K
	value    V
	children []*Node[K, V]
}

func (n *Node[K, V]) Key() K {
	if n == nil {
		var zero K
		return zero
	}
	return n.key
}

func (n *Node[K, V]) Value() V {
	if n == nil {
		var zero V
		return zero
	}
	return n.value
}

// Child returns child i: 0 is the left child, 1 the right one.
func (n *Node[K, V]) Child(i int) *Node[K, V] {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// SetValue swaps the value and returns the previous one, which is not
// released.
func (n *Node[K, V]) SetValue(v V) V {
	old := n.value
	n.value = v
	return old
}

func (n *Node[K, V]) isLeaf() bool {
	for _, c := range n.children {
		if c != nil {
			return false
		}
	}
	return true
}

// MaxNode returns the rightmost node of the subtree rooted at root.
func MaxNode[K, V any](root *Node[K, V]) *Node[K, V] {
	if root == nil {
		diag.InvalidArgf("the root node cannot be nil")
		return nil
	}
	for root.children[right] != nil {
		root = root.children[right]
	}
	return root
}

// MinNode returns the leftmost node of the subtree rooted at root.
func MinNode[K, V any](root *Node[K, V]) *Node[K, V] {
	if root == nil {
		diag.InvalidArgf("the root node cannot be nil")
		return nil
	}
	for root.children[left] != nil {
		root = root.children[left]
	}
	return root
}
