// Package slist is a singly linked list over borrowed payloads, with the same
// ownership rules as adlist: nodes belong to the list, payloads to the caller
// unless a release flag says otherwise.
package slist

import (
	"unsafe"

	"github.com/pengdafu/adt/diag"
	"github.com/pengdafu/adt/mem"
	"github.com/pengdafu/adt/order"
)

type List[T any] struct {
	head, tail *Node[T]
	cursor     *Node[T]
	cmp        order.Ordering[T]
	alloc      mem.Allocator
	size       int
}

func Create[T any](cmp order.Ordering[T], opts ...mem.Option) (*List[T], error) {
	if cmp == nil {
		return nil, diag.InvalidArgf("key_cmp function cannot be nil")
	}
	alloc, err := mem.Resolve(opts...)
	if err != nil {
		return nil, err
	}
	l := new(List[T])
	if !alloc.Reserve(unsafe.Sizeof(*l)) {
		return nil, diag.Allocationf("cannot allocate memory for new list")
	}
	l.cmp = cmp
	l.alloc = alloc
	return l, nil
}

func (l *List[T]) Destroy(release bool) {
	if l == nil {
		return
	}
	l.RemoveAll(release)
	l.alloc.Unreserve(unsafe.Sizeof(*l))
}

func errNilList() error {
	return diag.InvalidArgf("list is nil: create it with slist.Create first")
}

func (l *List[T]) nodeSize() uintptr {
	var n Node[T]
	return unsafe.Sizeof(n)
}

func (l *List[T]) newNode(key T) (*Node[T], error) {
	if mem.IsNil(key) {
		return nil, diag.InvalidArgf("key cannot be nil")
	}
	if !l.alloc.Reserve(l.nodeSize()) {
		return nil, diag.Allocationf("cannot allocate memory for new node")
	}
	return &Node[T]{value: key}, nil
}

func (l *List[T]) freeNode(n *Node[T], release bool) {
	if release {
		l.alloc.Release(n.value)
	}
	var zero T
	n.value = zero
	n.next = nil
	l.alloc.Unreserve(l.nodeSize())
}

func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

func (l *List[T]) Head() *Node[T] {
	if l == nil {
		return nil
	}
	return l.head
}

func (l *List[T]) Tail() *Node[T] {
	if l == nil {
		return nil
	}
	return l.tail
}

// Compare applies the list's ordering function.
func (l *List[T]) Compare(a, b T) int {
	return l.cmp(a, b)
}

func (l *List[T]) AddHead(key T) error {
	if l == nil {
		return errNilList()
	}
	n, err := l.newNode(key)
	if err != nil {
		return err
	}
	n.next = l.head
	if l.head == nil {
		l.tail = n
		l.cursor = n
	}
	l.head = n
	l.size++
	return nil
}

func (l *List[T]) AddTail(key T) error {
	if l == nil {
		return errNilList()
	}
	n, err := l.newNode(key)
	if err != nil {
		return err
	}
	if l.tail == nil {
		l.head = n
		l.cursor = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
	return nil
}

// Add inserts key at position pos (0-based); pos == Len() appends.
func (l *List[T]) Add(key T, pos int) error {
	if l == nil {
		return errNilList()
	}
	if mem.IsNil(key) {
		return diag.InvalidArgf("key cannot be nil")
	}
	if pos < 0 || pos > l.size {
		return diag.InvalidArgf("position %d out of range for list of size %d", pos, l.size)
	}
	switch pos {
	case l.size:
		return l.AddTail(key)
	case 0:
		return l.AddHead(key)
	}
	n, err := l.newNode(key)
	if err != nil {
		return err
	}
	prev := l.nodeAt(pos - 1)
	n.next = prev.next
	prev.next = n
	l.size++
	return nil
}

func (l *List[T]) nodeAt(pos int) *Node[T] {
	if pos == l.size-1 {
		return l.tail
	}
	n := l.head
	for i := 0; i < pos; i++ {
		n = n.next
	}
	return n
}

func (l *List[T]) NodeAt(pos int) (*Node[T], error) {
	if l == nil {
		return nil, errNilList()
	}
	if pos < 0 || pos >= l.size {
		return nil, diag.InvalidArgf("position %d out of range for list of size %d", pos, l.size)
	}
	return l.nodeAt(pos), nil
}

// NodeByKey returns the first node from the head equal to key.
func (l *List[T]) NodeByKey(key T) (*Node[T], error) {
	if l == nil {
		return nil, errNilList()
	}
	if mem.IsNil(key) {
		return nil, diag.InvalidArgf("key cannot be nil")
	}
	if _, n := l.find(key); n != nil {
		return n, nil
	}
	return nil, diag.NotFoundf("no key can be found")
}

// Contains reports whether a node equal to key is linked. A miss is not a
// failure, so nothing is recorded.
func (l *List[T]) Contains(key T) bool {
	if l == nil || mem.IsNil(key) {
		return false
	}
	_, n := l.find(key)
	return n != nil
}

// find returns the first node equal to key and its predecessor.
func (l *List[T]) find(key T) (prev, n *Node[T]) {
	for n = l.head; n != nil; prev, n = n, n.next {
		if l.cmp(n.value, key) == 0 {
			return prev, n
		}
	}
	return nil, nil
}

func (l *List[T]) KeyAt(pos int) (T, error) {
	n, err := l.NodeAt(pos)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}

// SetKeyAt swaps in newkey at pos and hands back the old payload unreleased.
func (l *List[T]) SetKeyAt(newkey T, pos int) (T, error) {
	var zero T
	if l == nil {
		return zero, errNilList()
	}
	if mem.IsNil(newkey) {
		return zero, diag.InvalidArgf("new key cannot be nil")
	}
	n, err := l.NodeAt(pos)
	if err != nil {
		return zero, err
	}
	old := n.value
	n.value = newkey
	return old, nil
}

// SetKey swaps in newkey on node, which must belong to l.
func (l *List[T]) SetKey(newkey T, node *Node[T]) (T, error) {
	var zero T
	if l == nil {
		return zero, errNilList()
	}
	if node == nil {
		return zero, diag.InvalidArgf("node cannot be nil")
	}
	if mem.IsNil(newkey) {
		return zero, diag.InvalidArgf("new key cannot be nil")
	}
	if l.head == nil {
		return zero, diag.Emptyf("head of the list is nil: add some nodes first")
	}
	found := node == l.tail
	for n := l.head; n != nil && !found; n = n.next {
		found = n == node
	}
	if !found {
		return zero, diag.NotFoundf("node does not belong to the list")
	}
	old := node.value
	node.value = newkey
	return old, nil
}

// SetKeyByKey replaces every payload equal to oldkey and returns the count,
// or -1 on error.
func (l *List[T]) SetKeyByKey(newkey, oldkey T) (int, error) {
	if l == nil {
		return -1, errNilList()
	}
	if mem.IsNil(newkey) || mem.IsNil(oldkey) {
		return -1, diag.InvalidArgf("keys cannot be nil")
	}
	cnt := 0
	for n := l.head; n != nil; n = n.next {
		if l.cmp(n.value, oldkey) == 0 {
			n.value = newkey
			cnt++
		}
	}
	return cnt, nil
}

// delete unlinks n, whose predecessor is prev (nil for the head), repairs the
// cursor and frees the node.
func (l *List[T]) delete(prev, n *Node[T], release bool) {
	if l.cursor == n {
		if prev != nil {
			l.cursor = prev
		} else {
			l.cursor = n.next
		}
	}
	if prev == nil {
		l.head = n.next
	} else {
		prev.next = n.next
	}
	if l.tail == n {
		l.tail = prev
	}
	l.size--
	l.freeNode(n, release)
}

func (l *List[T]) RemoveHead(release bool) error {
	if l == nil {
		return errNilList()
	}
	if l.head == nil {
		l.tail = nil
		return diag.Emptyf("head of the list is nil: add some nodes first")
	}
	l.delete(nil, l.head, release)
	return nil
}

// RemoveTail is O(n): the predecessor of the tail has to be found from the
// head.
func (l *List[T]) RemoveTail(release bool) error {
	if l == nil {
		return errNilList()
	}
	if l.tail == nil {
		l.head = nil
		return diag.Emptyf("tail of the list is nil: add some nodes first")
	}
	var prev *Node[T]
	if l.size > 1 {
		prev = l.nodeAt(l.size - 2)
	}
	l.delete(prev, l.tail, release)
	return nil
}

func (l *List[T]) Remove(pos int, release bool) error {
	if l == nil {
		return errNilList()
	}
	if l.head == nil {
		return diag.Emptyf("head of the list is nil: add some nodes first")
	}
	if pos < 0 || pos >= l.size {
		return diag.InvalidArgf("position %d out of range for list of size %d", pos, l.size)
	}
	if pos == 0 {
		l.delete(nil, l.head, release)
		return nil
	}
	prev := l.nodeAt(pos - 1)
	l.delete(prev, prev.next, release)
	return nil
}

// RemoveByKey deletes the first node equal to key: 1 removed, 0 not found,
// -1 error.
func (l *List[T]) RemoveByKey(key T, release bool) (int, error) {
	if l == nil {
		return -1, errNilList()
	}
	if mem.IsNil(key) {
		return -1, diag.InvalidArgf("key cannot be nil")
	}
	prev, n := l.find(key)
	if n == nil {
		return 0, nil
	}
	l.delete(prev, n, release)
	return 1, nil
}

func (l *List[T]) RemoveAllByKey(key T, release bool) (int, error) {
	cnt := 0
	for {
		ok, err := l.RemoveByKey(key, release)
		if err != nil {
			return -1, err
		}
		if ok == 0 {
			return cnt, nil
		}
		cnt++
	}
}

func (l *List[T]) RemoveAll(release bool) {
	if l == nil {
		return
	}
	for l.head != nil {
		l.delete(nil, l.head, release)
	}
	l.tail = nil
	l.cursor = nil
}

func (l *List[T]) Keys() []T {
	if l == nil {
		return nil
	}
	keys := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		keys = append(keys, n.value)
	}
	return keys
}

func (l *List[T]) Iter() *Iter[T] {
	return &Iter[T]{next: l.Head()}
}

// Verify checks that size and tail match the reachable chain.
func (l *List[T]) Verify() error {
	if l == nil {
		return errNilList()
	}
	if (l.head == nil) != (l.tail == nil) || (l.head == nil) != (l.size == 0) {
		return diag.Corruptedf("head, tail and size disagree (size %d)", l.size)
	}
	var last *Node[T]
	cnt := 0
	for n := l.head; n != nil; n = n.next {
		last = n
		cnt++
		if cnt > l.size {
			return diag.Corruptedf("list holds more nodes than its size %d", l.size)
		}
	}
	if last != l.tail {
		return diag.Corruptedf("tail is not the last reachable node")
	}
	if cnt != l.size {
		return diag.Corruptedf("size is %d but %d nodes are reachable", l.size, cnt)
	}
	return nil
}
