package adlist

import "github.com/pengdafu/adt/diag"

// The cursor is the single traversal position a list keeps. It starts on the
// first node ever inserted, Rewind moves it back to the head, and removing the
// node under it moves it to a live neighbour. Use Iter for independent
// traversals.

func (l *List[T]) pointed() (*Node[T], error) {
	if l == nil {
		return nil, errNilList()
	}
	if l.len == 0 {
		return nil, diag.Emptyf("list is empty")
	}
	if l.cursor == nil {
		l.cursor = l.head
	}
	return l.cursor, nil
}

func (l *List[T]) Rewind() error {
	if l == nil {
		return errNilList()
	}
	if l.len == 0 || l.head == nil {
		return diag.Emptyf("list is empty")
	}
	l.cursor = l.head
	return nil
}

func (l *List[T]) Current() (*Node[T], error) {
	return l.pointed()
}

func (l *List[T]) HasNext() (bool, error) {
	n, err := l.pointed()
	if err != nil {
		return false, err
	}
	return n.next != nil, nil
}

// Next advances the cursor and returns the node under it. At the tail it
// keeps returning the tail.
func (l *List[T]) Next() (*Node[T], error) {
	n, err := l.pointed()
	if err != nil {
		return nil, err
	}
	if n.next != nil {
		l.cursor = n.next
	}
	return l.cursor, nil
}

func (l *List[T]) HasPrevious() (bool, error) {
	n, err := l.pointed()
	if err != nil {
		return false, err
	}
	return n.prev != nil, nil
}

// Previous moves the cursor back. At the head it keeps returning the head.
func (l *List[T]) Previous() (*Node[T], error) {
	n, err := l.pointed()
	if err != nil {
		return nil, err
	}
	if n.prev != nil {
		l.cursor = n.prev
	}
	return l.cursor, nil
}
