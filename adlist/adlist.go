// Package adlist is a doubly linked list over borrowed payloads.
//
// The list owns its nodes, never the payloads. Every operation that destroys a
// node takes a release flag; when it is true the payload is handed to the
// list's allocator as well. Passing true for a payload still referenced
// elsewhere is a caller error the list cannot detect.
//
// A List is not safe for concurrent use.
package adlist

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
	len        int
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

// Destroy removes every node, releasing payloads when release is true. The
// list must not be used afterwards.
func (l *List[T]) Destroy(release bool) {
	if l == nil {
		return
	}
	l.RemoveAll(release)
	l.alloc.Unreserve(unsafe.Sizeof(*l))
}

func errNilList() error {
	return diag.InvalidArgf("list is nil: create it with adlist.Create first")
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
	n.prev, n.next = nil, nil
	l.alloc.Unreserve(l.nodeSize())
}

func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.len
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

func (l *List[T]) AddHead(key T) error {
	if l == nil {
		return errNilList()
	}
	n, err := l.newNode(key)
	if err != nil {
		return err
	}
	if l.len == 0 {
		l.head, l.tail = n, n
		l.cursor = n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.len++
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
	if l.len == 0 {
		l.head, l.tail = n, n
		l.cursor = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.len++
	return nil
}

// Add inserts key so that it ends up at position pos (0-based). pos == Len()
// appends.
func (l *List[T]) Add(key T, pos int) error {
	if l == nil {
		return errNilList()
	}
	if mem.IsNil(key) {
		return diag.InvalidArgf("key cannot be nil")
	}
	if pos < 0 || pos > l.len {
		return diag.InvalidArgf("position %d out of range for list of size %d", pos, l.len)
	}
	switch pos {
	case l.len:
		return l.AddTail(key)
	case 0:
		return l.AddHead(key)
	}
	n, err := l.newNode(key)
	if err != nil {
		return err
	}
	at := l.nodeAt(pos)
	n.next = at
	n.prev = at.prev
	at.prev.next = n
	at.prev = n
	l.len++
	return nil
}

// nodeAt walks from whichever end is closer. pos must be in range.
func (l *List[T]) nodeAt(pos int) *Node[T] {
	if pos > l.len/2 {
		n := l.tail
		for i := l.len - 1; i > pos; i-- {
			n = n.prev
		}
		return n
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
	if pos < 0 || pos >= l.len {
		return nil, diag.InvalidArgf("position %d out of range for list of size %d", pos, l.len)
	}
	return l.nodeAt(pos), nil
}

// NodeByKey returns the first node from the head whose payload compares equal
// to key.
func (l *List[T]) NodeByKey(key T) (*Node[T], error) {
	if l == nil {
		return nil, errNilList()
	}
	if mem.IsNil(key) {
		return nil, diag.InvalidArgf("key cannot be nil")
	}
	if n := l.find(key); n != nil {
		return n, nil
	}
	return nil, diag.NotFoundf("no key can be found")
}

func (l *List[T]) find(key T) *Node[T] {
	for n := l.head; n != nil; n = n.next {
		if l.cmp(n.value, key) == 0 {
			return n
		}
	}
	return nil
}

func (l *List[T]) KeyAt(pos int) (T, error) {
	n, err := l.NodeAt(pos)
	if err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}

// SetKeyAt replaces the payload at pos and returns the previous one. Nothing
// is released.
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

// SetKey replaces the payload of node, which must belong to l, and returns the
// previous one. Nothing is released.
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
	if !l.owns(node) {
		return zero, diag.NotFoundf("node does not belong to the list")
	}
	old := node.value
	node.value = newkey
	return old, nil
}

func (l *List[T]) owns(node *Node[T]) bool {
	if node == l.head || node == l.tail {
		return true
	}
	for n := l.head; n != nil; n = n.next {
		if n == node {
			return true
		}
	}
	return false
}

// SetKeyByKey replaces every payload equal to oldkey with newkey and returns
// how many were replaced, or -1 on error.
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

// unlink detaches n and moves the cursor off it: to the predecessor, or to
// the successor when n was the head.
func (l *List[T]) unlink(n *Node[T]) {
	if l.cursor == n {
		if n.prev != nil {
			l.cursor = n.prev
		} else {
			l.cursor = n.next
		}
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	l.len--
}

func (l *List[T]) delete(n *Node[T], release bool) {
	l.unlink(n)
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
	l.delete(l.head, release)
	return nil
}

func (l *List[T]) RemoveTail(release bool) error {
	if l == nil {
		return errNilList()
	}
	if l.tail == nil {
		l.head = nil
		return diag.Emptyf("tail of the list is nil: add some nodes first")
	}
	l.delete(l.tail, release)
	return nil
}

// Remove deletes the node at pos.
func (l *List[T]) Remove(pos int, release bool) error {
	if l == nil {
		return errNilList()
	}
	if l.head == nil {
		return diag.Emptyf("head of the list is nil: add some nodes first")
	}
	if pos < 0 || pos >= l.len {
		return diag.InvalidArgf("position %d out of range for list of size %d", pos, l.len)
	}
	l.delete(l.nodeAt(pos), release)
	return nil
}

// RemoveByKey deletes the first node equal to key. It returns 1 when a node
// was removed, 0 when none matched and -1 on error.
func (l *List[T]) RemoveByKey(key T, release bool) (int, error) {
	if l == nil {
		return -1, errNilList()
	}
	if mem.IsNil(key) {
		return -1, diag.InvalidArgf("key cannot be nil")
	}
	n := l.find(key)
	if n == nil {
		return 0, nil
	}
	l.delete(n, release)
	return 1, nil
}

// RemoveAllByKey deletes every node equal to key and returns the count, or -1
// on error.
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
		l.delete(l.head, release)
	}
	l.tail = nil
	l.cursor = nil
}

// Keys returns the payloads from head to tail.
func (l *List[T]) Keys() []T {
	if l == nil {
		return nil
	}
	keys := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		keys = append(keys, n.value)
	}
	return keys
}

// Iter returns an iterator starting at the head (StartHead) or the tail
// (StartTail).
func (l *List[T]) Iter(direction int) *Iter[T] {
	iter := &Iter[T]{direction: direction}
	if l == nil {
		return iter
	}
	if direction == StartHead {
		iter.next = l.head
	} else {
		iter.next = l.tail
	}
	return iter
}

// Verify walks the chain and checks the back-links, the tail and the size.
func (l *List[T]) Verify() error {
	if l == nil {
		return errNilList()
	}
	if (l.head == nil) != (l.tail == nil) || (l.head == nil) != (l.len == 0) {
		return diag.Corruptedf("head, tail and size disagree (size %d)", l.len)
	}
	var old *Node[T]
	cnt := 0
	for n := l.head; n != nil; n = n.next {
		if n.prev != old {
			return diag.Corruptedf("corrupted double linked list at position %d", cnt)
		}
		old = n
		cnt++
		if cnt > l.len {
			return diag.Corruptedf("list holds more nodes than its size %d", l.len)
		}
	}
	if old != l.tail {
		return diag.Corruptedf("tail is not the last reachable node")
	}
	if cnt != l.len {
		return diag.Corruptedf("size is %d but %d nodes are reachable", l.len, cnt)
	}
	return nil
}
