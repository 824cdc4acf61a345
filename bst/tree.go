// Package bst is an unbalanced binary search tree keyed by an injected
// ordering function. Keys comparing below a node go left, everything else
// (equal keys included) goes right. Removing a node with two children promotes
// the rightmost key of its left subtree, which may leave an equal key on the
// left, so lookups also search the left subtree on a match.
//
// There is no rebalancing, so adversarial insert orders degrade to a linked
// chain; the recursive operations then recurse as deep as the tree is high.
package bst

import (
	"unsafe"

	"github.com/pengdafu/adt/diag"
	"github.com/pengdafu/adt/mem"
	"github.com/pengdafu/adt/order"
)

// binary is the arity of the nodes.
const binary = 2

type Tree[K, V any] struct {
	root  *Node[K, V]
	cmp   order.Ordering[K]
	arity int
	alloc mem.Allocator
}

func Create[K, V any](cmp order.Ordering[K], opts ...mem.Option) (*Tree[K, V], error) {
	if cmp == nil {
		return nil, diag.InvalidArgf("key_cmp function cannot be nil")
	}
	alloc, err := mem.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	t := new(Tree[K, V])
	if !alloc.Reserve(unsafe.Sizeof(*t)) {
		return nil, diag.Allocationf("cannot allocate memory for new binary search tree")
	}
	t.cmp = cmp
	t.arity = binary
	t.alloc = alloc
	return t, nil
}

func errNilTree() error {
	return diag.InvalidArgf("the binary search tree cannot be nil")
}

func (t *Tree[K, V]) Root() *Node[K, V] {
	if t == nil {
		return nil
	}
	return t.root
}

func (t *Tree[K, V]) nodeSize() uintptr {
	var n Node[K, V]
	return unsafe.Sizeof(n)
}

func (t *Tree[K, V]) childrenSize() uintptr {
	var p *Node[K, V]
	return unsafe.Sizeof(p) * uintptr(t.arity)
}

func (t *Tree[K, V]) newNode(key K, value V) (*Node[K, V], error) {
	if mem.IsNil(key) {
		return nil, errNilKey()
	}
	if mem.IsNil(value) {
		return nil, diag.InvalidArgf("value cannot be nil")
	}
	if !t.alloc.Reserve(t.nodeSize()) {
		return nil, diag.Allocationf("cannot allocate memory for new tree node")
	}
	if !t.alloc.Reserve(t.childrenSize()) {
		t.alloc.Unreserve(t.nodeSize())
		return nil, diag.Allocationf("cannot allocate memory for the children of the new node")
	}
	return &Node[K, V]{
		key:      key,
		value:    value,
		children: make([]*Node[K, V], t.arity),
	}, nil
}

func (t *Tree[K, V]) release(n *Node[K, V], releaseValue, releaseKey bool) {
	if releaseValue {
		t.alloc.Release(n.value)
	}
	if releaseKey {
		t.alloc.Release(n.key)
	}
}

// freeNode drops n's children array and the node itself, releasing its
// payloads per the flags.
func (t *Tree[K, V]) freeNode(n *Node[K, V], releaseValue, releaseKey bool) {
	t.release(n, releaseValue, releaseKey)
	var (
		zk K
		zv V
	)
	n.key, n.value = zk, zv
	n.children = nil
	t.alloc.Unreserve(t.childrenSize())
	t.alloc.Unreserve(t.nodeSize())
}

// Insert adds key/value as a new leaf.
func (t *Tree[K, V]) Insert(key K, value V) error {
	if t == nil {
		return errNilTree()
	}
	n, err := t.newNode(key, value)
	if err != nil {
		return err
	}
	if t.root == nil {
		t.root = n
		return nil
	}
	visit := t.root
	for {
		side := right
		if t.cmp(key, visit.key) < 0 {
			side = left
		}
		if visit.children[side] == nil {
			visit.children[side] = n
			return nil
		}
		visit = visit.children[side]
	}
}

// Search returns the node whose key equals key, nil when there is none. On a
// match the left subtree is probed first so that, among duplicates, the one
// closest to the left wins.
func (t *Tree[K, V]) Search(key K) *Node[K, V] {
	if t == nil {
		errNilTree()
		return nil
	}
	if mem.IsNil(key) {
		errNilKey()
		return nil
	}
	return t.search(t.root, key)
}

func (t *Tree[K, V]) search(n *Node[K, V], key K) *Node[K, V] {
	for n != nil {
		c := t.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.children[left]
		case c > 0:
			n = n.children[right]
		default:
			if out := t.search(n.children[left], key); out != nil {
				return out
			}
			return n
		}
	}
	return nil
}

// IsLeaf reports whether the node holding key has no children.
func (t *Tree[K, V]) IsLeaf(key K) (bool, error) {
	if t == nil {
		return false, errNilTree()
	}
	if mem.IsNil(key) {
		return false, errNilKey()
	}
	n := t.search(t.root, key)
	if n == nil {
		return false, diag.NotFoundf("couldn't find given key inside the binary search tree")
	}
	return n.isLeaf(), nil
}

// Destroy frees every node, releasing values and keys per the flags. The tree
// must not be used afterwards.
func (t *Tree[K, V]) Destroy(releaseValue, releaseKey bool) error {
	if t == nil {
		return errNilTree()
	}
	err := t.ForEach(deleteNode[K, V], &deleteOpt[K, V]{tree: t, value: releaseValue, key: releaseKey})
	t.root = nil
	t.alloc.Unreserve(unsafe.Sizeof(*t))
	return err
}

type deleteOpt[K, V any] struct {
	tree       *Tree[K, V]
	value, key bool
}

func deleteNode[K, V any](n *Node[K, V], opt any) error {
	o, ok := opt.(*deleteOpt[K, V])
	if !ok || n == nil {
		return diag.InvalidArgf("bad arguments for node deletion")
	}
	o.tree.freeNode(n, o.value, o.key)
	return nil
}

func errNilKey() error {
	return diag.InvalidArgf("key cannot be nil")
}
