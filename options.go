package cache

import (
	"log/slog"

	"github.com/krisalay/lfu-cache/types"
)

type options struct {
	metrics types.Metrics
	logger  *slog.Logger
}

// Option configures a Cache.
type Option func(*options)

// WithMetrics sets the sink for hit, miss and eviction events. A nil value keeps the no-op default.
func WithMetrics(m types.Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// WithLogger sets the logger used for eviction debug records. A nil value keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions() options {
	return options{
		metrics: types.NoopMetrics{},
		logger:  slog.New(slog.DiscardHandler),
	}
}
