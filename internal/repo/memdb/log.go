package memdb

import (
	"sync"
	"time"

	"github.com/Egor213/LogiBuffer/internal/domain"
	"github.com/Egor213/LogiBuffer/internal/metrics"
	"github.com/Egor213/LogiBuffer/pkg/logger"
	"github.com/google/uuid"
)

const DefaultMaxLogs = 500

// Listener receives a snapshot of the buffer after every mutation.
// The slice is shared between listeners and must not be modified.
// A panicking listener is recovered and logged; the mutation it follows stays applied.
type Listener func(entries []domain.LogEntry)

// LogBuffer keeps the most recent maxLogs entries in arrival order.
// Every access to entries happens under mu; there is no reader/writer split.
type LogBuffer struct {
	mu      sync.Mutex
	entries []domain.LogEntry
	maxLogs int

	totalRecorded uint64
	totalEvicted  uint64
	totalCleared  uint64

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextID      int

	sink     Sink
	now      func() time.Time
	newID    func() string
	recorded metrics.Counter
	evicted  metrics.Counter
}

func NewLogBuffer(maxLogs int, opts ...Option) *LogBuffer {
	if maxLogs <= 0 {
		maxLogs = DefaultMaxLogs
	}

	b := &LogBuffer{
		entries:   make([]domain.LogEntry, 0, maxLogs+1),
		maxLogs:   maxLogs,
		listeners: make(map[int]Listener),
		sink:      NewStdoutSink(),
		now:       time.Now,
		newID:     uuid.NewString,
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Record appends a message; an empty level is recorded as info.
func (b *LogBuffer) Record(message string, level domain.LogLevel) {
	b.Append(message, level)
}

func (b *LogBuffer) Debug(message string)   { b.Record(message, domain.LevelDebug) }
func (b *LogBuffer) Info(message string)    { b.Record(message, domain.LevelInfo) }
func (b *LogBuffer) Warning(message string) { b.Record(message, domain.LevelWarning) }
func (b *LogBuffer) Error(message string)   { b.Record(message, domain.LevelError) }

// Append is Record that also returns the stored entry.
func (b *LogBuffer) Append(message string, level domain.LogLevel) domain.LogEntry {
	entry := b.store(message, level)
	b.sink.WriteLine(entry.ConsoleLine())
	return entry
}

func (b *LogBuffer) store(message string, level domain.LogLevel) domain.LogEntry {
	if level == "" {
		level = domain.LevelInfo
	}

	entry := domain.LogEntry{
		ID:        b.newID(),
		Timestamp: b.now().Truncate(time.Millisecond),
		Message:   message,
		Level:     level,
	}

	b.mu.Lock()
	b.entries = append(b.entries, entry)
	b.totalRecorded++
	evicted := b.truncate()
	snapshot := b.snapshotForListeners()
	b.mu.Unlock()

	if b.recorded != nil {
		b.recorded.Inc(string(level))
	}
	// One entry in means at most one entry out.
	if b.evicted != nil && evicted {
		b.evicted.Inc()
	}
	b.notify(snapshot)

	return entry
}

// truncate drops from the front until len(entries) == maxLogs and reports
// whether anything was dropped. Caller holds mu.
func (b *LogBuffer) truncate() bool {
	excess := len(b.entries) - b.maxLogs
	if excess <= 0 {
		return false
	}

	n := copy(b.entries, b.entries[excess:])
	clear(b.entries[n:])
	b.entries = b.entries[:n]
	b.totalEvicted += uint64(excess)
	return true
}

// Snapshot returns an independent copy of the entries, oldest first.
func (b *LogBuffer) Snapshot() []domain.LogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.copyEntries()
}

func (b *LogBuffer) Clear() {
	b.mu.Lock()
	clear(b.entries)
	b.entries = b.entries[:0]
	b.totalCleared++
	snapshot := b.snapshotForListeners()
	b.mu.Unlock()

	b.notify(snapshot)
}

func (b *LogBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

func (b *LogBuffer) Cap() int {
	return b.maxLogs
}

func (b *LogBuffer) Stats() domain.BufferStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return domain.BufferStats{
		Size:          len(b.entries),
		Capacity:      b.maxLogs,
		TotalRecorded: b.totalRecorded,
		TotalEvicted:  b.totalEvicted,
		TotalCleared:  b.totalCleared,
	}
}

// Subscribe registers l to be called after every Record and Clear.
// Listeners run outside the buffer lock and must not block for long.
func (b *LogBuffer) Subscribe(l Listener) (unsubscribe func()) {
	b.listenersMu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = l
	b.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.listenersMu.Lock()
			delete(b.listeners, id)
			b.listenersMu.Unlock()
		})
	}
}

func (b *LogBuffer) copyEntries() []domain.LogEntry {
	out := make([]domain.LogEntry, len(b.entries))
	copy(out, b.entries)
	return out
}

// snapshotForListeners returns nil when nobody is subscribed. Caller holds mu.
func (b *LogBuffer) snapshotForListeners() []domain.LogEntry {
	b.listenersMu.Lock()
	n := len(b.listeners)
	b.listenersMu.Unlock()
	if n == 0 {
		return nil
	}
	return b.copyEntries()
}

func (b *LogBuffer) notify(snapshot []domain.LogEntry) {
	if snapshot == nil {
		return
	}

	b.listenersMu.Lock()
	listeners := make([]Listener, 0, len(b.listeners))
	for _, l := range b.listeners {
		listeners = append(listeners, l)
	}
	b.listenersMu.Unlock()

	for _, l := range listeners {
		callListener(l, snapshot)
	}
}

// callListener runs l and contains a panic so it cannot unwind into Record,
// Clear or a logrus Fire.
func callListener(l Listener, snapshot []domain.LogEntry) {
	defer func() {
		if r := recover(); r != nil {
			logger.Uncaptured().WithField("panic", r).Error("Log buffer listener panicked")
		}
	}()
	l(snapshot)
}
