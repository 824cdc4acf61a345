package slist

import (
	"os"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/pengdafu/adt/diag"
	"github.com/pengdafu/adt/mem"
	"github.com/pengdafu/adt/order"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := mem.Start(mem.NewHeap()); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func listOf(t *testing.T, keys ...int) *List[int] {
	t.Helper()
	l, err := Create(order.Natural[int])
	require.NoError(t, err)
	for _, k := range keys {
		require.NoError(t, l.AddTail(k))
	}
	return l
}

type item struct {
	id int
}

func itemCmp(a, b *item) int {
	return order.Natural(a.id, b.id)
}

func TestCreate(t *testing.T) {
	_, err := Create[int](nil)
	require.True(t, errors.Is(err, diag.ErrInvalidArgument))

	mem.Stop()
	_, err = Create(order.Natural[int])
	require.True(t, errors.Is(err, diag.ErrInvalidArgument))
	require.Contains(t, diag.GetError(), "allocator not configured")
	require.NoError(t, mem.Start(mem.NewHeap()))

	l, err := Create(order.Natural[int])
	require.NoError(t, err)
	require.Equal(t, 0, l.Len())
}

func TestLen(t *testing.T) {
	l := listOf(t)
	require.Equal(t, 0, l.Len())
	require.NoError(t, l.AddHead(1))
	require.Equal(t, 1, l.Len())
}

func TestAddHeadTail(t *testing.T) {
	l := listOf(t)
	require.NoError(t, l.AddHead(2))
	require.NoError(t, l.AddHead(1))
	require.NoError(t, l.AddTail(3))
	require.Equal(t, []int{1, 2, 3}, l.Keys())
	require.Equal(t, 1, l.Head().Key())
	require.Equal(t, 3, l.Tail().Key())
	require.Nil(t, l.Tail().Next())
}

func TestAddAt(t *testing.T) {
	l := listOf(t, 0, 2, 4)
	require.NoError(t, l.Add(1, 1))
	require.NoError(t, l.Add(3, 3))
	require.NoError(t, l.Add(5, 5))
	require.NoError(t, l.Add(-1, 0))
	require.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5}, l.Keys())
	require.NoError(t, l.Verify())
	require.True(t, errors.Is(l.Add(9, 8), diag.ErrInvalidArgument))
	require.True(t, errors.Is(l.Add(9, -1), diag.ErrInvalidArgument))
}

func TestNilKeysRejected(t *testing.T) {
	l, err := Create(itemCmp)
	require.NoError(t, err)
	require.True(t, errors.Is(l.AddHead(nil), diag.ErrInvalidArgument))
	require.Equal(t, "key cannot be nil", diag.GetError())
	require.True(t, errors.Is(l.AddTail(nil), diag.ErrInvalidArgument))
	_, err = l.NodeByKey(nil)
	require.True(t, errors.Is(err, diag.ErrInvalidArgument))
	n, err := l.RemoveByKey(nil, false)
	require.Error(t, err)
	require.Equal(t, -1, n)
}

func TestFind(t *testing.T) {
	l := listOf(t, 1, 2, 1)
	n, err := l.NodeByKey(1)
	require.NoError(t, err)
	require.Same(t, l.Head(), n)
	n, err = l.NodeByKey(2)
	require.NoError(t, err)
	require.Equal(t, 2, n.Key())
	_, err = l.NodeByKey(7)
	require.True(t, errors.Is(err, diag.ErrNotFound))

	diag.Clear()
	require.True(t, l.Contains(2))
	require.False(t, l.Contains(7))
	require.Empty(t, diag.GetError())
	var nl *List[int]
	require.False(t, nl.Contains(1))
}

func TestNodeAt(t *testing.T) {
	l := listOf(t, 10, 20, 30)
	n, err := l.NodeAt(2)
	require.NoError(t, err)
	require.Same(t, l.Tail(), n)
	k, err := l.KeyAt(1)
	require.NoError(t, err)
	require.Equal(t, 20, k)
	_, err = l.NodeAt(3)
	require.True(t, errors.Is(err, diag.ErrInvalidArgument))
	v, err := Key(n)
	require.NoError(t, err)
	require.Equal(t, 30, v)
	_, err = Key[int](nil)
	require.Error(t, err)
}

func TestSetKeys(t *testing.T) {
	l := listOf(t, 1, 2, 3, 2)
	old, err := l.SetKeyAt(20, 1)
	require.NoError(t, err)
	require.Equal(t, 2, old)
	old, err = l.SetKey(30, l.Head().Next().Next())
	require.NoError(t, err)
	require.Equal(t, 3, old)
	cnt, err := l.SetKeyByKey(0, 2)
	require.NoError(t, err)
	require.Equal(t, 1, cnt)
	require.Equal(t, []int{1, 20, 30, 0}, l.Keys())

	stranger := listOf(t, 5)
	_, err = l.SetKey(6, stranger.Head())
	require.True(t, errors.Is(err, diag.ErrNotFound))
	_, err = listOf(t).SetKey(1, stranger.Head())
	require.True(t, errors.Is(err, diag.ErrEmpty))
}

func TestRemove(t *testing.T) {
	l := listOf(t, 1, 2, 3, 4, 5)
	require.NoError(t, l.RemoveHead(false))
	require.NoError(t, l.RemoveTail(false))
	require.NoError(t, l.Remove(1, false))
	require.Equal(t, []int{2, 4}, l.Keys())
	require.Equal(t, 4, l.Tail().Key())
	require.NoError(t, l.Remove(1, false))
	require.Equal(t, 2, l.Tail().Key())
	require.NoError(t, l.Verify())
	require.NoError(t, l.RemoveTail(false))
	require.Nil(t, l.Head())
	require.Nil(t, l.Tail())

	require.True(t, errors.Is(l.RemoveHead(false), diag.ErrEmpty))
	require.True(t, errors.Is(l.RemoveTail(false), diag.ErrEmpty))
	require.True(t, errors.Is(l.Remove(0, false), diag.ErrEmpty))
	require.NoError(t, l.AddTail(1))
	require.Equal(t, 1, l.Len())
}

func TestRemoveByKey(t *testing.T) {
	l := listOf(t, 3, 1, 3, 2, 3)
	n, err := l.RemoveByKey(3, false)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, []int{1, 3, 2, 3}, l.Keys())

	n, err = l.RemoveAllByKey(3, false)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []int{1, 2}, l.Keys())
	require.Equal(t, 2, l.Tail().Key())
	require.NoError(t, l.Verify())

	n, err = l.RemoveByKey(9, false)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	var nilList *List[int]
	n, err = nilList.RemoveAllByKey(1, false)
	require.Error(t, err)
	require.Equal(t, -1, n)
}

func TestReleaseOnlyWhenAsked(t *testing.T) {
	tr := mem.NewTracking(nil)
	l, err := Create(itemCmp, mem.WithAllocator(tr))
	require.NoError(t, err)
	items := []*item{{1}, {2}, {3}, {4}}
	for _, it := range items {
		require.NoError(t, l.AddTail(it))
	}
	require.NoError(t, l.Remove(1, true))
	require.NoError(t, l.RemoveTail(false))
	require.True(t, tr.Released(items[1]))
	require.False(t, tr.Released(items[3]))

	l.Destroy(true)
	require.True(t, tr.Released(items[0]))
	require.True(t, tr.Released(items[2]))
	require.Equal(t, 3, tr.Releases())
	require.Equal(t, 0, tr.DoubleReleases())
	require.Equal(t, uintptr(0), tr.Live())
}

func TestDestroyWithoutRelease(t *testing.T) {
	tr := mem.NewTracking(nil)
	l, err := Create(itemCmp, mem.WithAllocator(tr))
	require.NoError(t, err)
	items := []*item{{1}, {2}}
	for _, it := range items {
		require.NoError(t, l.AddHead(it))
		tr.Release(it)
	}
	l.Destroy(false)
	require.Equal(t, 0, tr.DoubleReleases())
}

func TestInsertRemoveInverse(t *testing.T) {
	for pos := 0; pos <= 3; pos++ {
		l := listOf(t, 1, 2, 3)
		require.NoError(t, l.Add(99, pos))
		require.NoError(t, l.Remove(pos, false))
		require.Equal(t, []int{1, 2, 3}, l.Keys())
		require.NoError(t, l.Verify())
	}
}

func TestVerify(t *testing.T) {
	l := listOf(t, 1, 2, 3)
	require.NoError(t, l.Verify())
	l.tail = l.head
	require.True(t, errors.Is(l.Verify(), diag.ErrCorrupted))

	l = listOf(t, 1, 2)
	l.size = 1
	require.True(t, errors.Is(l.Verify(), diag.ErrCorrupted))
}

func TestIter(t *testing.T) {
	l := listOf(t, 1, 2, 3)
	var got []int
	it := l.Iter()
	for n := it.Next(); n != nil; n = it.Next() {
		got = append(got, n.Key())
		if n.Key() == 2 {
			_, err := l.RemoveByKey(2, false)
			require.NoError(t, err)
		}
	}
	require.Equal(t, []int{1, 2, 3}, got)
	require.Equal(t, []int{1, 3}, l.Keys())
}
