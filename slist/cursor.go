package slist

import "github.com/pengdafu/adt/diag"

func (l *List[T]) pointed() (*Node[T], error) {
	if l == nil {
		return nil, errNilList()
	}
	if l.size == 0 {
		return nil, diag.Emptyf("list is empty")
	}
	if l.cursor == nil {
		l.cursor = l.head
	}
	return l.cursor, nil
}

// Rewind puts the cursor back on the head.
func (l *List[T]) Rewind() error {
	if l == nil {
		return errNilList()
	}
	if l.size == 0 || l.head == nil {
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

// Next advances the cursor; on the tail it returns the tail again.
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
