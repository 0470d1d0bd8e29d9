// SPDX-License-Identifier: MIT

package attribution

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records PageRank runs. A nil *Metrics records nothing.
type Metrics struct {
	runs       *prometheus.CounterVec
	iterations prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg, when reg
// is not nil:
//
//	credrank_pagerank_runs_total{converged="true|false"}
//	credrank_pagerank_iterations
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "credrank_pagerank_runs_total",
			Help: "Stationary distribution computations, by convergence.",
		}, []string{"converged"}),
		iterations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "credrank_pagerank_iterations",
			Help:    "Power-iteration steps per stationary distribution computation.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.runs, m.iterations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(converged bool, iterations int) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(strconv.FormatBool(converged)).Inc()
	m.iterations.Observe(float64(iterations))
}
