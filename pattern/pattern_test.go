package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/concussgo/concuss/pattern"
)

func TestParseNameBuildsClique(t *testing.T) {
	b, err := pattern.ParseName("clique{4}")
	require.NoError(t, err)
	h, err := pattern.Build(b)
	require.NoError(t, err)
	require.Equal(t, 4, h.N())
	require.Equal(t, 6, h.M())
}

func TestParseNameBuildsBicliqueTwoBraces(t *testing.T) {
	b, err := pattern.ParseName("biclique{2},{3}")
	require.NoError(t, err)
	h, err := pattern.Build(b)
	require.NoError(t, err)
	require.Equal(t, 5, h.N())
	require.Equal(t, 6, h.M())
}

func TestParseNameRejectsUnknown(t *testing.T) {
	_, err := pattern.ParseName("nonsense{4}")
	require.ErrorIs(t, err, pattern.ErrUnknownPatternName)
}

func TestAllPatternsOnTriangleFindsSeparators(t *testing.T) {
	h, err := pattern.Build(pattern.Clique(3))
	require.NoError(t, err)

	all := pattern.AllPatterns(h, 2)
	require.NotEmpty(t, all)
	for _, p := range all {
		require.True(t, p.IsSeparator())
	}
}

func TestForgetInverseForgetRoundTrip(t *testing.T) {
	h, err := pattern.Build(pattern.Path(3))
	require.NoError(t, err)

	p := pattern.NewKPattern(h, 1)
	p.V[0] = true
	p.V[1] = true
	p.V[2] = true
	p.B[1] = true
	p.Phi[1] = 0
	require.True(t, p.IsSeparator())

	forgotten, ok := p.Forget(0)
	require.True(t, ok)

	found := false
	for _, cand := range forgotten.InverseForget(0) {
		if cand.Key() == p.Key() {
			found = true
			break
		}
	}
	require.True(t, found)
}

func TestJoinInverseJoinRoundTrip(t *testing.T) {
	h, err := pattern.Build(pattern.Path(3))
	require.NoError(t, err)

	p := pattern.NewKPattern(h, 1)
	p.V[0] = true
	p.V[1] = true
	p.V[2] = true
	p.B[1] = true
	p.Phi[1] = 0
	require.True(t, p.IsSeparator())

	found := false
	for _, pair := range p.InverseJoin() {
		joined, ok := pair[0].Join(pair[1])
		if ok && joined.Key() == p.Key() {
			found = true
			break
		}
	}
	require.True(t, found)
}

func TestBVKPatternMirrorsKPatternSeparator(t *testing.T) {
	h, err := pattern.Build(pattern.Clique(3))
	require.NoError(t, err)

	bv := pattern.NewBVKPattern(h, 3, 1)
	bv.Vmask = 0b011
	bv.Bmask = 0b001
	bv.PhiSlot[0] = 0
	// vertex 1 is not boundary and its neighbour 2 lies outside V
	require.False(t, bv.IsSeparator())

	kp := pattern.NewKPattern(h, 1)
	kp.V[0], kp.V[1] = true, true
	kp.B[0] = true
	kp.Phi[0] = 0
	require.Equal(t, kp.IsSeparator(), bv.IsSeparator())
}

func TestTreedepthLowerBoundNamed(t *testing.T) {
	d, err := pattern.TreedepthLowerBoundNamed("clique", 5)
	require.NoError(t, err)
	require.Equal(t, 5, d)

	d, err = pattern.TreedepthLowerBoundNamed("star", 10)
	require.NoError(t, err)
	require.Equal(t, 2, d)
}
