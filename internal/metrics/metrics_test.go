package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarat-asymmetrica/dockvedic/internal/metrics"
)

func TestNewRegistersAllCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)
	require.NotNil(t, rec)
}

func TestNewRejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)
	_, err = metrics.New(reg)
	assert.Error(t, err)
}

func TestObserveSFEvaluationIncrementsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)

	rec.ObserveSFEvaluation("VdwSF", 0.002, true)
	rec.ObserveSFEvaluation("VdwSF", 0.003, false)

	count := testutil.CollectAndCount(reg, "dockvedic_sf_evaluation_total")
	assert.Equal(t, 2, count)
}

func TestObserveCacheAccessTracksHitsAndMisses(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)

	rec.ObserveCacheAccess(true)
	rec.ObserveCacheAccess(false)
	rec.ObserveCacheAccess(true)

	count := testutil.CollectAndCount(reg, "dockvedic_cache_access_total")
	assert.Equal(t, 2, count)
}

func TestNoopDiscardsEveryObservation(t *testing.T) {
	var rec metrics.Recorder = metrics.Noop{}
	assert.NotPanics(t, func() {
		rec.ObserveSFEvaluation("VdwSF", 0.001, true)
		rec.ObserveTransformCycle("SimAnnTransform", 1.5)
		rec.SetPopulationBestScore(-42.0)
		rec.ObserveCacheAccess(true)
		rec.IncPosesWritten()
	})
}

func TestInMemoryRecordsObservations(t *testing.T) {
	rec := &metrics.InMemory{}

	rec.ObserveSFEvaluation("VdwSF", 0.001, true)
	rec.ObserveSFEvaluation("VdwSF", 0.002, false)
	rec.ObserveTransformCycle("SimAnnTransform", 0.5)
	rec.SetPopulationBestScore(-12.5)
	rec.ObserveCacheAccess(true)
	rec.ObserveCacheAccess(false)
	rec.ObserveCacheAccess(true)
	rec.IncPosesWritten()
	rec.IncPosesWritten()

	assert.EqualValues(t, 2, rec.SFEvalCount())
	assert.EqualValues(t, 1, rec.SFEvalErrors())
	assert.EqualValues(t, 1, rec.TransformCycles())
	assert.Equal(t, -12.5, rec.LastBestScore())
	assert.EqualValues(t, 2, rec.CacheHits())
	assert.EqualValues(t, 1, rec.CacheMisses())
	assert.EqualValues(t, 2, rec.PosesWritten())
}

func TestInMemoryLastBestScoreDefaultsToZero(t *testing.T) {
	rec := &metrics.InMemory{}
	assert.Equal(t, 0.0, rec.LastBestScore())
}
