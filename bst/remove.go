package bst

import "github.com/pengdafu/adt/mem"

// Remove deletes the first node found whose key equals key. A node with two
// children takes over the key and value of its in-order predecessor (the
// maximum of its left subtree) after releasing its own per the flags; the
// predecessor's node is then unlinked without releasing what moved. A missing
// key is not an error.
func (t *Tree[K, V]) Remove(key K, releaseValue, releaseKey bool) error {
	if t == nil {
		return errNilTree()
	}
	if mem.IsNil(key) {
		return errNilKey()
	}
	t.root = t.remove(t.root, key, releaseValue, releaseKey)
	return nil
}

func (t *Tree[K, V]) remove(n *Node[K, V], key K, releaseValue, releaseKey bool) *Node[K, V] {
	if n == nil {
		return nil
	}
	c := t.cmp(key, n.key)
	switch {
	case c < 0:
		n.children[left] = t.remove(n.children[left], key, releaseValue, releaseKey)
	case c > 0:
		n.children[right] = t.remove(n.children[right], key, releaseValue, releaseKey)
	case n.children[left] != nil && n.children[right] != nil:
		t.release(n, releaseValue, releaseKey)
		var pred *Node[K, V]
		n.children[left], pred = detachMax(n.children[left])
		n.key, n.value = pred.key, pred.value
		t.freeNode(pred, false, false)
	default:
		child := n.children[left]
		if child == nil {
			child = n.children[right]
		}
		t.freeNode(n, releaseValue, releaseKey)
		return child
	}
	return n
}

// detachMax unlinks the rightmost node of sub. It returns the new root of sub
// and the detached node.
func detachMax[K, V any](sub *Node[K, V]) (*Node[K, V], *Node[K, V]) {
	if sub.children[right] == nil {
		return sub.children[left], sub
	}
	var max *Node[K, V]
	sub.children[right], max = detachMax(sub.children[right])
	return sub, max
}
