package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"ropesim/internal/geom"
	"ropesim/internal/rope"
)

// Collector counts simulation progress. It implements rope.Observer.
type Collector struct {
	moves   prometheus.Counter
	steps   prometheus.Counter
	visited prometheus.Gauge
}

var _ rope.Observer = (*Collector)(nil)

// NewCollector creates the ropesim metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		moves: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ropesim_moves_total",
			Help: "Total number of move commands applied",
		}),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ropesim_unit_steps_total",
			Help: "Total number of unit steps propagated through the rope",
		}),
		visited: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ropesim_tail_visited",
			Help: "Distinct positions visited by the tail so far",
		}),
	}
	for _, m := range []prometheus.Collector{c.moves, c.steps, c.visited} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Collector) OnStart(_ rope.Rope, visited int) {
	c.visited.Set(float64(visited))
}

func (c *Collector) OnMove(geom.Move) { c.moves.Inc() }

func (c *Collector) OnStep(_ rope.Rope, visited int) {
	c.steps.Inc()
	c.visited.Set(float64(visited))
}

// Snapshot returns the current value of every counter and gauge in g, keyed by metric name.
func Snapshot(g prometheus.Gatherer) (map[string]float64, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			out[mf.GetName()] += value(mf.GetType(), m)
		}
	}
	return out, nil
}

func value(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	}
	return 0
}
