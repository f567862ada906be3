package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ropesim/internal/geom"
	"ropesim/internal/rope"
)

func TestCollectorTracksSimulation(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	sim, err := rope.NewSimulator(2, geom.Pt(0, 0), rope.WithObserver(c))
	require.NoError(t, err)
	n := sim.Run([]geom.Move{
		geom.MoveFrom(geom.Right, 4),
		geom.MoveFrom(geom.Up, 4),
	})

	assert.Equal(t, 2.0, testutil.ToFloat64(c.moves))
	assert.Equal(t, 8.0, testutil.ToFloat64(c.steps))
	assert.Equal(t, float64(n), testutil.ToFloat64(c.visited))

	snap, err := Snapshot(reg)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"ropesim_moves_total":      2,
		"ropesim_unit_steps_total": 8,
		"ropesim_tail_visited":     7,
	}, snap)
}

func TestNewCollectorRejectsDoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg)
	require.NoError(t, err)
	_, err = NewCollector(reg)
	assert.Error(t, err)
}

func TestCollectorReportsOriginWithoutSteps(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	sim, err := rope.NewSimulator(10, geom.Pt(0, 0), rope.WithObserver(c))
	require.NoError(t, err)
	n := sim.Run([]geom.Move{geom.MoveFrom(geom.Right, 0)})

	assert.Equal(t, 1, n)
	assert.Equal(t, 1.0, testutil.ToFloat64(c.visited))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.moves))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.steps))
}
