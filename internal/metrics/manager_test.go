package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_RegistersCounters(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()

	m.CounterSetsLogged.Inc()
	m.CounterBodyMetricsRecorded.WithLabelValues("waist").Add(2)
	m.CounterSettingsUpserts.WithLabelValues("update").Inc()
	m.CounterCatalogSeeds.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterSetsLogged))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterBodyMetricsRecorded.WithLabelValues("waist")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterSettingsUpserts.WithLabelValues("update")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterCatalogSeeds))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "workouttracker_test_server_sets_logged")
	assert.Contains(t, names, "workouttracker_test_server_catalog_seeds")
}

func TestNewTestManager_Isolated(t *testing.T) {
	// each test manager has its own registry, so building two must not panic
	a := NewTestManager()
	b := NewTestManager()
	a.CounterSetsLogged.Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.CounterSetsLogged))
}
