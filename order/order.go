// Package order defines the comparator containers are created with.
package order

import (
	"bytes"
	"strings"

	"golang.org/x/exp/constraints"
)

// Ordering returns a negative number when a < b, zero when a == b and a
// positive number when a > b. It must be a total order.
type Ordering[T any] func(a, b T) int

func Natural[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Reverse flips cmp.
func Reverse[T any](cmp Ordering[T]) Ordering[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}

// Pointers orders pointers by the values they point to. A nil pointer sorts
// before everything else.
func Pointers[T constraints.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return Natural(*a, *b)
}

func Bytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

// FoldStrings compares strings ignoring case.
func FoldStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// By orders values of T by a key extracted from them.
func By[T any, K constraints.Ordered](key func(T) K) Ordering[T] {
	return func(a, b T) int {
		return Natural(key(a), key(b))
	}
}
