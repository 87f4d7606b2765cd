package selectlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextFromNoSelectionPicksFirst(t *testing.T) {
	l := WithItems([]string{"a", "b", "c"})
	_, err := l.Current()
	require.ErrorIs(t, err, ErrNoSelection)

	l.Next()
	got, err := l.Current()
	require.NoError(t, err)
	require.Equal(t, "a", got)
}

func TestPreviousFromNoSelectionPicksLast(t *testing.T) {
	l := WithItems([]string{"a", "b", "c"})
	l.Previous()
	got, err := l.Current()
	require.NoError(t, err)
	require.Equal(t, "c", got)
}

func TestWrapAround(t *testing.T) {
	l := WithItems([]int{10, 20, 30})
	l.Select(2)
	l.Next()
	idx, ok := l.Selected()
	require.True(t, ok)
	require.Equal(t, 0, idx)

	l.Previous()
	idx, _ = l.Selected()
	require.Equal(t, 2, idx)
}

func TestCursorStaysInRange(t *testing.T) {
	for n := 1; n <= 5; n++ {
		items := make([]int, n)
		l := WithItems(items)
		moves := []bool{true, true, false, true, false, false, false, true, true, true, true}
		for _, forward := range moves {
			if forward {
				l.Next()
			} else {
				l.Previous()
			}
			idx, ok := l.Selected()
			if !ok || idx < 0 || idx >= n {
				t.Fatalf("n=%d: cursor %d (ok=%v) out of range", n, idx, ok)
			}
		}
	}
}

func TestNCallsToNextReturnToStart(t *testing.T) {
	l := WithItems([]string{"a", "b", "c", "d"})
	for start := 0; start < 4; start++ {
		l.Select(start)
		for i := 0; i < l.Len(); i++ {
			l.Next()
		}
		idx, _ := l.Selected()
		if idx != start {
			t.Fatalf("start %d: ended at %d", start, idx)
		}
	}
}

func TestPreviousNextIsIdentity(t *testing.T) {
	l := WithItems([]string{"a", "b", "c"})
	for start := 0; start < 3; start++ {
		l.Select(start)
		l.Previous()
		l.Next()
		idx, _ := l.Selected()
		require.Equal(t, start, idx)

		l.Next()
		l.Previous()
		idx, _ = l.Selected()
		require.Equal(t, start, idx)
	}
}

func TestEmptyListNavigationIsNoop(t *testing.T) {
	l := WithItems[string](nil)
	l.Next()
	_, ok := l.Selected()
	require.False(t, ok)
	l.Previous()
	_, ok = l.Selected()
	require.False(t, ok)

	_, err := l.Current()
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}

	var zero List[int]
	zero.Next()
	zero.Previous()
	_, ok = zero.Selected()
	require.False(t, ok)
}

func TestShrinkInvalidatesCursor(t *testing.T) {
	l := WithItems([]string{"a", "b", "c"})
	l.Select(2)
	l.SetItems([]string{"a"})
	_, err := l.Current()
	require.ErrorIs(t, err, ErrNoSelection)

	l.Select(0)
	l.SetItems([]string{"x", "y"})
	got, err := l.Current()
	require.NoError(t, err)
	require.Equal(t, "x", got)
}

func TestWithItemsCopiesInput(t *testing.T) {
	src := []string{"a", "b"}
	l := WithItems(src)
	src[0] = "z"
	l.Next()
	got, _ := l.Current()
	require.Equal(t, "a", got)
}

func TestNilListIsSafe(t *testing.T) {
	var l *List[string]
	l.Next()
	l.Previous()
	require.Equal(t, 0, l.Len())
	_, err := l.Current()
	require.ErrorIs(t, err, ErrNoSelection)
}
