package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/concussgo/concuss/unionfind"
)

func TestHistogramSingletonHasCenter(t *testing.T) {
	h := unionfind.NewHistogram(3)
	h.NewRoot(0, 1) // vertex 0, color 1
	require.True(t, h.HasCenter(0))
}

func TestHistogramUnionSaturates(t *testing.T) {
	// Two singleton vertices of the same color union to a component where
	// that color now appears twice: no longer a center for that color.
	h := unionfind.NewHistogram(2)
	h.NewRoot(0, 5)
	h.NewRoot(1, 5)
	h.Union(0, 1)
	require.False(t, h.HasCenter(0))
	require.Equal(t, h.Find(0), h.Find(1))
}

func TestHistogramUnionDistinctColorsKeepsCenter(t *testing.T) {
	h := unionfind.NewHistogram(2)
	h.NewRoot(0, 1)
	h.NewRoot(1, 2)
	h.Union(0, 1)
	require.True(t, h.HasCenter(0))
}

func TestHistogramCloneIsIndependent(t *testing.T) {
	h := unionfind.NewHistogram(2)
	h.NewRoot(0, 1)
	clone := h.Clone()
	clone.NewRoot(1, 1)
	clone.Union(0, 1)
	require.False(t, clone.HasCenter(0))
	require.True(t, h.HasCenter(0)) // original untouched
}

func TestSizeUnionSumsMembers(t *testing.T) {
	s := unionfind.NewSize(3)
	s.NewRoot(0)
	s.NewRoot(1)
	s.NewRoot(2)
	s.Union(0, 1)
	s.Union(1, 2)
	require.Equal(t, 3, s.SizeOf(0))
	require.ElementsMatch(t, []int{0, 1, 2}, s.Members(0))
}

func TestHistogramStackPushPop(t *testing.T) {
	stk := unionfind.NewHistogramStack(2)
	f1, err := stk.Push(3)
	require.NoError(t, err)
	f1.NewRoot(0, 0)

	f2, err := stk.Push(3)
	require.NoError(t, err)
	require.True(t, f2.Present(0)) // inherited from f1 via clone

	_, err = stk.Push(3)
	require.ErrorIs(t, err, unionfind.ErrStackFull)

	stk.Pop()
	require.Equal(t, 1, stk.Depth())
}
