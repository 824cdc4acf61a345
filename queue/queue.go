// Package queue is a FIFO adapter over slist. Payloads enter at the head and
// leave from the tail.
package queue

import (
	"github.com/pengdafu/adt/diag"
	"github.com/pengdafu/adt/mem"
	"github.com/pengdafu/adt/order"
	"github.com/pengdafu/adt/slist"
)

type Queue[T any] struct {
	list *slist.List[T]
	dim  int
}

// New creates a queue holding at most dim payloads; dim 0 means unbounded.
func New[T any](cmp order.Ordering[T], dim int, opts ...mem.Option) (*Queue[T], error) {
	if cmp == nil {
		return nil, diag.InvalidArgf("key_cmp function cannot be nil")
	}
	if dim < 0 {
		return nil, diag.InvalidArgf("queue dimension cannot be negative")
	}
	l, err := slist.Create(cmp, opts...)
	if err != nil {
		return nil, diag.Wrap(err, "couldn't create queue")
	}
	return &Queue[T]{list: l, dim: dim}, nil
}

func errNilQueue() error {
	return diag.InvalidArgf("queue cannot be nil")
}

func (q *Queue[T]) Destroy(release bool) {
	if q == nil {
		return
	}
	q.list.Destroy(release)
	q.list = nil
}

func (q *Queue[T]) Enqueue(key T) error {
	if q == nil {
		return errNilQueue()
	}
	if mem.IsNil(key) {
		return diag.InvalidArgf("key cannot be nil")
	}
	if q.dim > 0 && q.list.Len()+1 > q.dim {
		return diag.Fullf("cannot enqueue element into queue: queue is full")
	}
	return q.list.AddHead(key)
}

// Dequeue removes the oldest payload and returns it unreleased.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q == nil {
		return zero, errNilQueue()
	}
	tail := q.list.Tail()
	if tail == nil {
		return zero, diag.Emptyf("queue is empty")
	}
	out := tail.Key()
	if err := q.list.RemoveTail(false); err != nil {
		return zero, diag.Wrap(err, "dequeuing the node")
	}
	return out, nil
}

// Peek returns the payload Dequeue would return next.
func (q *Queue[T]) Peek() (T, error) {
	var zero T
	if q == nil {
		return zero, errNilQueue()
	}
	tail := q.list.Tail()
	if tail == nil {
		return zero, diag.Emptyf("queue is empty")
	}
	return tail.Key(), nil
}

// Rear returns the most recently enqueued payload.
func (q *Queue[T]) Rear() (T, error) {
	var zero T
	if q == nil {
		return zero, errNilQueue()
	}
	head := q.list.Head()
	if head == nil {
		return zero, diag.Emptyf("queue is empty")
	}
	return head.Key(), nil
}

func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

func (q *Queue[T]) IsFull() bool {
	if q == nil || q.dim == 0 {
		return false
	}
	return q.list.Len() == q.dim
}

func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return q.list.Len()
}

func (q *Queue[T]) Dim() int {
	if q == nil {
		return 0
	}
	return q.dim
}

func (q *Queue[T]) Contains(key T) (bool, error) {
	if q == nil {
		return false, errNilQueue()
	}
	if mem.IsNil(key) {
		return false, diag.InvalidArgf("key cannot be nil")
	}
	return q.list.Contains(key), nil
}

// Keys lists the payloads from the newest to the oldest.
func (q *Queue[T]) Keys() []T {
	if q == nil {
		return nil
	}
	return q.list.Keys()
}
