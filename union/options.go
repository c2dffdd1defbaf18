// SPDX-License-Identifier: MIT

package union

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures a View at construction.
type Option func(*settings)

type settings struct {
	combiner   WeightCombiner
	logger     *zap.Logger
	registerer prometheus.Registerer
}

func defaultSettings() settings {
	return settings{combiner: Sum, logger: zap.NewNop()}
}

// WithCombiner sets the weight policy for edges present in both graphs.
// A nil combiner keeps the default (Sum).
func WithCombiner(c WeightCombiner) Option {
	return func(s *settings) {
		if c != nil {
			s.combiner = c
		}
	}
}

// WithLogger routes the view's debug events to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRegisterer enables Prometheus counters on r. Views built with the same
// registry share their counters.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(s *settings) { s.registerer = r }
}
