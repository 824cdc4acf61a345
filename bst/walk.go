package bst

import "github.com/pengdafu/adt/diag"

// VisitFunc is applied to nodes by ForEach. Returning an error stops the
// traversal.
type VisitFunc[K, V any] func(n *Node[K, V], opt any) error

// ForEach visits every node in post-order, children before their parent, so
// visit may free the node it is given.
func (t *Tree[K, V]) ForEach(visit VisitFunc[K, V], opt any) error {
	if t == nil {
		return errNilTree()
	}
	if visit == nil {
		return diag.InvalidArgf("visit function cannot be nil")
	}
	if err := forEach(t.root, visit, opt); err != nil {
		return diag.Visit(err)
	}
	return nil
}

func forEach[K, V any](n *Node[K, V], visit VisitFunc[K, V], opt any) error {
	if n == nil {
		return nil
	}
	for _, c := range n.children {
		if err := forEach(c, visit, opt); err != nil {
			return err
		}
	}
	return visit(n, opt)
}

// InOrder calls fn on every node in key order until fn returns false.
func (t *Tree[K, V]) InOrder(fn func(n *Node[K, V]) bool) {
	if t == nil {
		return
	}
	var stack []*Node[K, V]
	n := t.root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.children[left]
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		n = n.children[right]
	}
}

// Keys returns the keys in order.
func (t *Tree[K, V]) Keys() []K {
	var keys []K
	t.InOrder(func(n *Node[K, V]) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// Height is 0 for an empty tree and 1 for a lone root; -1 for a nil tree.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		errNilTree()
		return -1
	}
	return height(t.root)
}

func height[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	max := 0
	for _, c := range n.children {
		if h := height(c); h > max {
			max = h
		}
	}
	return 1 + max
}

func (t *Tree[K, V]) NodesNum() int {
	if t == nil {
		errNilTree()
		return -1
	}
	return nodesNum(t.root)
}

func nodesNum[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	cnt := 1
	for _, c := range n.children {
		cnt += nodesNum(c)
	}
	return cnt
}

func (t *Tree[K, V]) LeavesNum() int {
	if t == nil {
		errNilTree()
		return -1
	}
	return leavesNum(t.root)
}

func leavesNum[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return 1
	}
	cnt := 0
	for _, c := range n.children {
		cnt += leavesNum(c)
	}
	return cnt
}

// Verify checks the search-tree ordering of every node: keys in a right
// subtree never compare below their ancestor and keys in a left subtree never
// compare above it. Equal keys may sit on the left once a two-children removal
// has promoted a duplicate.
func (t *Tree[K, V]) Verify() error {
	if t == nil {
		return errNilTree()
	}
	return t.verify(t.root, nil, nil)
}

func (t *Tree[K, V]) verify(n *Node[K, V], lo, hi *Node[K, V]) error {
	if n == nil {
		return nil
	}
	if len(n.children) != t.arity {
		return diag.Corruptedf("node has %d children slots, want %d", len(n.children), t.arity)
	}
	if lo != nil && t.cmp(n.key, lo.key) < 0 {
		return diag.Corruptedf("node sorts below an ancestor it is right of")
	}
	if hi != nil && t.cmp(n.key, hi.key) > 0 {
		return diag.Corruptedf("node sorts above an ancestor it is left of")
	}
	if err := t.verify(n.children[left], lo, n); err != nil {
		return err
	}
	return t.verify(n.children[right], n, hi)
}
