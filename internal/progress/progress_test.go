package progress

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNilReporterReportIsNoOp(t *testing.T) {
	var r *Reporter
	require.NotPanics(t, func() { r.Report("color", 50) })
}

func TestReportInvokesCallback(t *testing.T) {
	var gotStage string
	var gotPercent float64
	r := New(func(stage string, percent float64) {
		gotStage, gotPercent = stage, percent
	})
	r.Report("decompose", 42.5)
	require.Equal(t, "decompose", gotStage)
	require.Equal(t, 42.5, gotPercent)
}

func TestWithMetricsUpdatesGaugeAndCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := WithMetrics(nil, reg)
	r.Report("dp", 10)
	r.Report("dp", 20)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)
}
