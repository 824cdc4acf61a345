package adlist

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/pengdafu/adt/diag"
	"github.com/stretchr/testify/require"
)

func TestCursorEmpty(t *testing.T) {
	l := newStrings(t)
	require.True(t, errors.Is(l.Rewind(), diag.ErrEmpty))
	_, err := l.Current()
	require.True(t, errors.Is(err, diag.ErrEmpty))
	_, err = l.HasNext()
	require.Error(t, err)
	_, err = l.Previous()
	require.Error(t, err)
}

func TestCursorWalk(t *testing.T) {
	l := newStrings(t, "a", "b", "c")
	require.NoError(t, l.Rewind())

	var got []string
	for {
		n, err := l.Current()
		require.NoError(t, err)
		got = append(got, n.Key())
		more, err := l.HasNext()
		require.NoError(t, err)
		if !more {
			break
		}
		_, err = l.Next()
		require.NoError(t, err)
	}
	require.Equal(t, []string{"a", "b", "c"}, got)

	// saturating at the tail
	n, err := l.Next()
	require.NoError(t, err)
	require.Equal(t, "c", n.Key())

	got = got[:0]
	for {
		n, err := l.Current()
		require.NoError(t, err)
		got = append(got, n.Key())
		more, err := l.HasPrevious()
		require.NoError(t, err)
		if !more {
			break
		}
		_, err = l.Previous()
		require.NoError(t, err)
	}
	require.Equal(t, []string{"c", "b", "a"}, got)

	n, err = l.Previous()
	require.NoError(t, err)
	require.Equal(t, "a", n.Key())
}

func TestCursorRepair(t *testing.T) {
	l := newStrings(t, "a", "b", "c")
	require.NoError(t, l.Rewind())
	_, err := l.Next()
	require.NoError(t, err)

	// removing the node under the cursor moves it to the predecessor
	require.NoError(t, l.Remove(1, false))
	n, err := l.Current()
	require.NoError(t, err)
	require.Equal(t, "a", n.Key())

	// the head has no predecessor, so the cursor moves forward
	require.NoError(t, l.RemoveHead(false))
	n, err = l.Current()
	require.NoError(t, err)
	require.Equal(t, "c", n.Key())
	more, err := l.HasNext()
	require.NoError(t, err)
	require.False(t, more)

	require.NoError(t, l.RemoveTail(false))
	require.Nil(t, l.cursor)
	_, err = l.Current()
	require.True(t, errors.Is(err, diag.ErrEmpty))
}

func TestCursorRepairOnTail(t *testing.T) {
	l := newStrings(t, "a", "b", "c")
	require.NoError(t, l.Rewind())
	_, _ = l.Next()
	_, _ = l.Next()
	require.NoError(t, l.RemoveTail(false))
	n, err := l.Current()
	require.NoError(t, err)
	require.Equal(t, "b", n.Key())
	more, err := l.HasNext()
	require.NoError(t, err)
	require.False(t, more)
}

func TestCursorFirstInsert(t *testing.T) {
	l := newStrings(t)
	require.NoError(t, l.AddTail("a"))
	n, err := l.Current()
	require.NoError(t, err)
	require.Equal(t, "a", n.Key())
}
