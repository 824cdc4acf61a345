package order

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNatural(t *testing.T) {
	require.Equal(t, -1, Natural(1, 2))
	require.Equal(t, 0, Natural("a", "a"))
	require.Equal(t, 1, Natural(3.9, -2.0))
}

func TestReverse(t *testing.T) {
	cmp := Reverse[int](Natural[int])
	require.Equal(t, 1, cmp(1, 2))
	require.Equal(t, -1, cmp(2, 1))
}

func TestPointers(t *testing.T) {
	a, b := 7.3, 1.0
	require.Equal(t, 1, Pointers(&a, &b))
	require.Equal(t, 0, Pointers(&a, &a))
	require.Equal(t, -1, Pointers(nil, &b))
	require.Equal(t, 1, Pointers(&a, nil))
	require.Equal(t, 0, Pointers[float64](nil, nil))
}

func TestBytesAndFold(t *testing.T) {
	require.Equal(t, 0, Bytes([]byte("pdf"), []byte("pdf")))
	require.Equal(t, -1, Bytes([]byte("pdf"), []byte("pdf1")))
	require.Equal(t, 0, FoldStrings("Key", "kEY"))
}

func TestBy(t *testing.T) {
	type item struct {
		name string
		rank int
	}
	cmp := By(func(i item) int { return i.rank })
	require.Equal(t, -1, cmp(item{"a", 1}, item{"b", 2}))
	require.Equal(t, 0, cmp(item{"a", 1}, item{"b", 1}))
}
