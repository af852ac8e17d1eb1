package bookcode

import (
	"log/slog"
	"math/rand"

	"github.com/emersonbque13/bookcode/codec"
	"github.com/emersonbque13/bookcode/normalize"
	"github.com/emersonbque13/bookcode/snapshot"
)

type options struct {
	policy           normalize.Policy
	rng              *rand.Rand
	codec            codec.Codec
	compression      snapshot.CompressionType
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures BookCode constructor behavior.
type Option func(*options)

// WithNormalization configures the key normalization policy.
// The default is PolicyStrict: accented characters stay distinct.
// PolicyFoldAccents folds accents so "cão" and "cao" share a key.
func WithNormalization(policy normalize.Policy) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithRand injects the random source used for homophone selection.
// Pass a seeded *rand.Rand for reproducible cipher output; nil keeps the
// default shared source.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithCodec configures the codec used for snapshot payloads.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures the compression used for snapshots written by
// SaveToWriter. The default is ZSTD.
func WithCompression(t snapshot.CompressionType) Option {
	return func(o *options) {
		o.compression = t
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bookcode.BasicMetricsCollector{}
//	bc, _ := bookcode.New(text, model.LineWord, bookcode.WithMetricsCollector(metrics))
//	// ... use bc ...
//	stats := metrics.GetStats()
//	fmt.Printf("Encodes: %d, Avg latency: %dns\n", stats.EncodeCount, stats.EncodeAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := bookcode.NewJSONLogger(slog.LevelInfo)
//	bc, _ := bookcode.New(text, model.LineWord, bookcode.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		policy:           normalize.PolicyStrict,
		codec:            codec.Default,
		compression:      snapshot.CompressionZSTD,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
