package collections

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func TestMultisetCounts(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	m := NewOrderedMultiset[string]()
	for _, w := range strings.Fields("the quick fox jumps over the lazy dog the end") {
		m.Add(w)
	}
	require.Equal(t, 10, m.Len())
	require.Equal(t, 8, m.Distinct())
	require.Equal(t, 3, m.Count("the"))
	require.True(t, m.Contains("fox"))

	// dog end fox jumps lazy over quick the the the
	require.Equal(t, 8, m.Rank("the"))
	for i := 7; i < 10; i++ {
		w, err := m.At(i)
		require.NoError(t, err)
		require.Equal(t, "the", w)
	}
	next, ok := m.Next("quick")
	require.True(t, ok)
	require.Equal(t, "the", next)
	prev, ok := m.Prev("dog")
	require.False(t, ok)
	require.Equal(t, "", prev)

	require.NoError(t, m.Remove("the"))
	require.Equal(t, 2, m.Count("the"))
	require.ErrorIs(t, m.Remove("cat"), ErrNotFound)
}

func TestMultisetErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	m := NewOrderedMultiset[int]()
	require.ErrorIs(t, m.Remove(1), ErrEmptyCollection)
	_, err := m.At(0)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	m.Add(1)
	m.Add(1)
	_, err = m.At(2)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = m.At(-1)
	require.ErrorIs(t, err, ErrIndexOutOfBounds)
	require.NoError(t, m.Remove(1))
	require.NoError(t, m.Remove(1))
	require.ErrorIs(t, m.Remove(1), ErrEmptyCollection)
	m.Add(5)
	m.Clear()
	require.Equal(t, 0, m.Len())

	_, err = NewMultiset[int](nil)
	require.ErrorIs(t, err, ErrIllegalArguments)
}

func TestOrderedSet(t *testing.T) {
	s := NewSet(50, 10, 40, 20, 30)
	require.False(t, s.Add(30))
	require.True(t, s.Add(35))
	require.Equal(t, 6, s.Len())
	require.Equal(t, 3, s.IndexOf(35))
	require.Equal(t, -1, s.IndexOf(36))

	k, err := s.At(0)
	require.NoError(t, err)
	require.Equal(t, 10, k)
	k, err = s.At(5)
	require.NoError(t, err)
	require.Equal(t, 50, k)

	lo, _ := s.Min()
	hi, _ := s.Max()
	require.Equal(t, 10, lo)
	require.Equal(t, 50, hi)
	n, ok := s.Next(35)
	require.True(t, ok)
	require.Equal(t, 40, n)
	p, ok := s.Prev(10)
	require.False(t, ok)
	require.Equal(t, 0, p)

	require.NoError(t, s.Remove(35))
	require.ErrorIs(t, s.Remove(35), ErrNotFound)
	require.False(t, s.Contains(35))
	require.NoError(t, s.Tree().Check())
}

func TestOrderedSetCustomOrder(t *testing.T) {
	byLength := func(a, b string) int { return len(a) - len(b) }
	s, err := NewOrderedSet(byLength)
	require.NoError(t, err)
	s.Add("ccc")
	s.Add("a")
	s.Add("bb")
	s.Add("dd") // same length as "bb"
	require.Equal(t, 3, s.Len())
	k, err := s.At(1)
	require.NoError(t, err)
	require.Equal(t, "bb", k)

	_, err = NewOrderedSet[string](nil)
	require.ErrorIs(t, err, ErrIllegalArguments)
}
