// SPDX-License-Identifier: MIT

package attribution

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/credrank/address"
	"github.com/katalvlaran/credrank/markov"
)

// Options configures Pagerank, TimelinePagerank and TimelineCred.
type Options struct {
	// Alpha is the teleport probability. TimelinePagerank takes it as an
	// argument instead.
	Alpha float64
	// ConvergenceThreshold and MaxIterations bound every stationary
	// distribution computation.
	ConvergenceThreshold float64
	MaxIterations        int
	// SeedWeights, when non-nil, is the teleport seed of Pagerank.
	SeedWeights map[address.NodeAddress]float64
	// SeedFromNodeWeights seeds Pagerank with the evaluated node weights
	// when SeedWeights is nil. Otherwise the seed is uniform.
	SeedFromNodeWeights bool
	// Logger receives one debug record per computation and a warning when
	// one does not converge.
	Logger *zap.Logger
	// Metrics, when non-nil, records every computation.
	Metrics *Metrics
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the markov defaults, a uniform seed and a no-op
// logger.
func DefaultOptions() Options {
	return Options{
		Alpha:                markov.DefaultAlpha,
		ConvergenceThreshold: markov.DefaultConvergenceThreshold,
		MaxIterations:        markov.DefaultMaxIterations,
		Logger:               zap.NewNop(),
	}
}

// WithAlpha sets the teleport probability.
func WithAlpha(alpha float64) Option { return func(o *Options) { o.Alpha = alpha } }

// WithConvergenceThreshold sets the L∞ stopping threshold.
func WithConvergenceThreshold(theta float64) Option {
	return func(o *Options) { o.ConvergenceThreshold = theta }
}

// WithMaxIterations sets the iteration budget.
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// WithSeedWeights seeds Pagerank proportionally to w.
func WithSeedWeights(w map[address.NodeAddress]float64) Option {
	return func(o *Options) { o.SeedWeights = w }
}

// WithSeedFromNodeWeights seeds Pagerank with the node weights of the
// weighted graph.
func WithSeedFromNodeWeights() Option {
	return func(o *Options) { o.SeedFromNodeWeights = true }
}

// WithLogger sets the logger; nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.Logger = l
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *Metrics) Option { return func(o *Options) { o.Metrics = m } }

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// stationaryOptions translates o for markov.FindStationaryDistribution.
func (o Options) stationaryOptions(seed, pi0 markov.Distribution) []markov.Option {
	return []markov.Option{
		markov.WithAlpha(o.Alpha),
		markov.WithConvergenceThreshold(o.ConvergenceThreshold),
		markov.WithMaxIterations(o.MaxIterations),
		markov.WithSeed(seed),
		markov.WithInitial(pi0),
	}
}
