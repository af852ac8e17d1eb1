package bookcode

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    encodeCounter   prometheus.Counter
//	    encodeHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordEncode(tokens, missing int, duration time.Duration, err error) {
//	    p.encodeCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordIndexBuild is called after each index build.
	// keys and locations describe the built index, err is nil if successful.
	RecordIndexBuild(keys, locations int, duration time.Duration, err error)

	// RecordEncode is called after each encode operation.
	// tokens is the number of message tokens processed, missing the number
	// of bracket-escaped ones.
	RecordEncode(tokens, missing int, duration time.Duration, err error)

	// RecordDecode is called after each decode operation.
	// unresolved is the number of tokens rendered as "?".
	RecordDecode(tokens, unresolved int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIndexBuild(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordEncode(int, int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordDecode(int, int, time.Duration, error)     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	IndexBuildCount  atomic.Int64
	IndexBuildErrors atomic.Int64
	EncodeCount      atomic.Int64
	EncodeErrors     atomic.Int64
	EncodeTokens     atomic.Int64
	EncodeMissing    atomic.Int64
	EncodeTotalNanos atomic.Int64
	DecodeCount      atomic.Int64
	DecodeErrors     atomic.Int64
	DecodeTokens     atomic.Int64
	DecodeUnresolved atomic.Int64
	DecodeTotalNanos atomic.Int64
}

// RecordIndexBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIndexBuild(keys, locations int, duration time.Duration, err error) {
	b.IndexBuildCount.Add(1)
	if err != nil {
		b.IndexBuildErrors.Add(1)
	}
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(tokens, missing int, duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	b.EncodeTokens.Add(int64(tokens))
	b.EncodeMissing.Add(int64(missing))
	b.EncodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EncodeErrors.Add(1)
	}
}

// RecordDecode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecode(tokens, unresolved int, duration time.Duration, err error) {
	b.DecodeCount.Add(1)
	b.DecodeTokens.Add(int64(tokens))
	b.DecodeUnresolved.Add(int64(unresolved))
	b.DecodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DecodeErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		IndexBuildCount:  b.IndexBuildCount.Load(),
		IndexBuildErrors: b.IndexBuildErrors.Load(),
		EncodeCount:      b.EncodeCount.Load(),
		EncodeErrors:     b.EncodeErrors.Load(),
		EncodeTokens:     b.EncodeTokens.Load(),
		EncodeMissing:    b.EncodeMissing.Load(),
		EncodeAvgNanos:   avgNanos(b.EncodeTotalNanos.Load(), b.EncodeCount.Load()),
		DecodeCount:      b.DecodeCount.Load(),
		DecodeErrors:     b.DecodeErrors.Load(),
		DecodeTokens:     b.DecodeTokens.Load(),
		DecodeUnresolved: b.DecodeUnresolved.Load(),
		DecodeAvgNanos:   avgNanos(b.DecodeTotalNanos.Load(), b.DecodeCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	IndexBuildCount  int64
	IndexBuildErrors int64
	EncodeCount      int64
	EncodeErrors     int64
	EncodeTokens     int64
	EncodeMissing    int64
	EncodeAvgNanos   int64
	DecodeCount      int64
	DecodeErrors     int64
	DecodeTokens     int64
	DecodeUnresolved int64
	DecodeAvgNanos   int64
}
