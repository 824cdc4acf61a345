package bst

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/pengdafu/adt/diag"
	"github.com/pengdafu/adt/order"
	"github.com/stretchr/testify/require"
)

func TestForEachPostOrder(t *testing.T) {
	tr := sample(t)
	var seen []float64
	err := tr.ForEach(func(n *Node[float64, string], opt any) error {
		seen = append(seen, n.Key())
		*opt.(*int)++
		return nil
	}, new(int))
	require.NoError(t, err)
	require.Equal(t, []float64{-2, 3.9, 1.0, 347, 7.3}, seen)
}

func TestForEachAbort(t *testing.T) {
	tr := sample(t)
	boom := errors.New("boom")
	calls := 0
	err := tr.ForEach(func(n *Node[float64, string], _ any) error {
		calls++
		if n.Key() == 3.9 {
			return boom
		}
		return nil
	}, nil)
	require.True(t, errors.Is(err, diag.ErrVisit))
	require.True(t, errors.Is(err, boom))
	require.Equal(t, 2, calls)
	require.Equal(t, "provided function error: boom", diag.GetError())

	require.True(t, errors.Is(tr.ForEach(nil, nil), diag.ErrInvalidArgument))
}

func TestInOrderStops(t *testing.T) {
	tr := sample(t)
	var seen []string
	tr.InOrder(func(n *Node[float64, string]) bool {
		seen = append(seen, n.Value())
		return len(seen) < 3
	})
	require.Equal(t, []string{"C", "B", "D"}, seen)
}

func TestDegenerateChain(t *testing.T) {
	tr, err := Create[int, int](order.Natural[int])
	require.NoError(t, err)
	for i := 0; i < 64; i++ {
		require.NoError(t, tr.Insert(i, i))
	}
	require.Equal(t, 64, tr.Height())
	require.Equal(t, 1, tr.LeavesNum())
	require.Equal(t, 63, MaxNode(tr.Root()).Key())
}

func TestVerifyDetectsCorruption(t *testing.T) {
	tr := sample(t)
	tr.Root().Child(0).Child(1).key = 500
	err := tr.Verify()
	require.True(t, errors.Is(err, diag.ErrCorrupted))
}
