package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"

	"github.com/concussgo/concuss/coloring"
	"github.com/concussgo/concuss/combine"
	"github.com/concussgo/concuss/decompose"
)

func TestDefaultUsesInclusionExclusionAndCombinationsSweep(t *testing.T) {
	cfg := Default()
	require.Equal(t, combine.KindInclusionExclusion, cfg.Combine)
	require.IsType(t, decompose.CombinationsSweep{}, cfg.Sweep)
}

func TestFromFileMapsRecognisedOptions(t *testing.T) {
	src := []byte(`
[color]
low_degree_orientation = sandpile_orientation
coloring = dsatur
chooser = least_used

[compute]
k_pattern = BVKPattern
table_forward = true

[combine]
count = HybridCount

[decompose]
sweep = DFSSweep
`)
	f, err := ini.Load(src)
	require.NoError(t, err)

	cfg, err := fromFile(f)
	require.NoError(t, err)

	require.Equal(t, coloring.OrientationSandpile, cfg.Color.Orientation)
	require.Equal(t, coloring.HeuristicDSATUR, cfg.Color.Heuristic)
	require.Equal(t, coloring.ChooserLeastUsed, cfg.Color.Chooser)
	require.True(t, cfg.BVKPattern)
	require.True(t, cfg.Forward)
	require.Equal(t, combine.KindHybridCount, cfg.Combine)
	require.IsType(t, decompose.DFSSweep{}, cfg.Sweep)
}

func TestFromFileRejectsUnknownCombineKind(t *testing.T) {
	src := []byte("[combine]\ncount = NotAKind\n")
	f, err := ini.Load(src)
	require.NoError(t, err)

	_, err = fromFile(f)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFromFileRejectsUnknownOrientation(t *testing.T) {
	src := []byte("[color]\nlow_degree_orientation = bogus\n")
	f, err := ini.Load(src)
	require.NoError(t, err)

	_, err = fromFile(f)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFromFileEnablesOptimizationAndPreprocessWhenRequested(t *testing.T) {
	src := []byte(`
[color]
optimization = true
optimization_window = 5
preprocess = true
preprocess_min_degree = 1
preprocess_max_degree = 20
`)
	f, err := ini.Load(src)
	require.NoError(t, err)

	cfg, err := fromFile(f)
	require.NoError(t, err)

	require.NotNil(t, cfg.Color.Optimization)
	require.Equal(t, 5, cfg.Color.Optimization.WindowLength)
	require.NotNil(t, cfg.Color.Preprocess)
	require.Equal(t, 1, cfg.Color.Preprocess.MinDegree)
	require.Equal(t, 20, cfg.Color.Preprocess.MaxDegree)
}
