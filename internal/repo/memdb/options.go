package memdb

import (
	"time"

	"github.com/Egor213/LogiBuffer/internal/metrics"
)

type Option func(*LogBuffer)

func WithSink(sink Sink) Option {
	return func(b *LogBuffer) {
		if sink != nil {
			b.sink = sink
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(b *LogBuffer) {
		if now != nil {
			b.now = now
		}
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(b *LogBuffer) {
		if newID != nil {
			b.newID = newID
		}
	}
}

// WithRecordCounter counts every stored entry, labelled by level.
func WithRecordCounter(c metrics.Counter) Option {
	return func(b *LogBuffer) {
		b.recorded = c
	}
}

func WithEvictionCounter(c metrics.Counter) Option {
	return func(b *LogBuffer) {
		b.evicted = c
	}
}
