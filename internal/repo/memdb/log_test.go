package memdb_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/Egor213/LogiBuffer/internal/domain"
	countermocks "github.com/Egor213/LogiBuffer/internal/mocks/counters"
	"github.com/Egor213/LogiBuffer/internal/repo/memdb"
	"github.com/Egor213/LogiBuffer/pkg/logger"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQuietBuffer(maxLogs int, opts ...memdb.Option) *memdb.LogBuffer {
	return memdb.NewLogBuffer(maxLogs, append([]memdb.Option{memdb.WithSink(memdb.NopSink{})}, opts...)...)
}

func messages(entries []domain.LogEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message)
	}
	return out
}

func TestLogBuffer_LengthIsBoundedByCap(t *testing.T) {
	const maxLogs = 5

	testCases := []struct {
		name    string
		records int
		wantLen int
	}{
		{name: "empty", records: 0, wantLen: 0},
		{name: "one", records: 1, wantLen: 1},
		{name: "below cap", records: 4, wantLen: 4},
		{name: "at cap", records: 5, wantLen: 5},
		{name: "above cap", records: 6, wantLen: 5},
		{name: "far above cap", records: 100, wantLen: 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newQuietBuffer(maxLogs)
			for i := 0; i < tc.records; i++ {
				b.Info(fmt.Sprint(i))
			}
			assert.Len(t, b.Snapshot(), tc.wantLen)
			assert.Equal(t, tc.wantLen, b.Len())
		})
	}
}

func TestLogBuffer_EvictsOldestFirst(t *testing.T) {
	b := newQuietBuffer(4)
	for i := 0; i < 10; i++ {
		b.Info(fmt.Sprint(i))
	}

	assert.Equal(t, []string{"6", "7", "8", "9"}, messages(b.Snapshot()))
}

func TestLogBuffer_MixedLevelsScenario(t *testing.T) {
	b := newQuietBuffer(3)

	b.Info("a")
	b.Warning("b")
	b.Error("c")
	b.Debug("d")

	got := b.Snapshot()
	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "c", "d"}, messages(got))
	assert.Equal(t, domain.LevelWarning, got[0].Level)
	assert.Equal(t, domain.LevelError, got[1].Level)
	assert.Equal(t, domain.LevelDebug, got[2].Level)
}

func TestLogBuffer_Clear(t *testing.T) {
	b := newQuietBuffer(3)
	b.Info("a")
	b.Info("b")

	b.Clear()
	assert.Empty(t, b.Snapshot())
	assert.Equal(t, 3, b.Cap())

	b.Clear()
	assert.Empty(t, b.Snapshot())

	b.Info("c")
	assert.Equal(t, []string{"c"}, messages(b.Snapshot()))
}

func TestLogBuffer_SnapshotIsIndependentCopy(t *testing.T) {
	b := newQuietBuffer(10)
	b.Info("a")
	b.Error("b")

	first := b.Snapshot()
	second := b.Snapshot()
	assert.Equal(t, first, second)

	first[0].Message = "changed"
	assert.Equal(t, "a", b.Snapshot()[0].Message)
}

func TestLogBuffer_DefaultLevelIsInfo(t *testing.T) {
	b := newQuietBuffer(10)
	b.Record("x", "")

	got := b.Snapshot()
	require.Len(t, got, 1)
	assert.Equal(t, domain.LevelInfo, got[0].Level)
}

func TestLogBuffer_NonPositiveCapUsesDefault(t *testing.T) {
	assert.Equal(t, memdb.DefaultMaxLogs, newQuietBuffer(0).Cap())
	assert.Equal(t, memdb.DefaultMaxLogs, newQuietBuffer(-1).Cap())
}

func TestLogBuffer_EntryFields(t *testing.T) {
	now := time.Date(2024, 1, 2, 13, 14, 15, 123456789, time.UTC)
	b := newQuietBuffer(10,
		memdb.WithClock(func() time.Time { return now }),
		memdb.WithIDGenerator(func() string { return "fixed-id" }),
	)

	entry := b.Append("started", domain.LevelInfo)

	assert.Equal(t, "fixed-id", entry.ID)
	assert.Equal(t, time.Date(2024, 1, 2, 13, 14, 15, 123000000, time.UTC), entry.Timestamp)
	assert.Equal(t, "[13:14:15.123] [INFO] started", entry.FormattedMessage())
	assert.Equal(t, []domain.LogEntry{entry}, b.Snapshot())
}

func TestLogBuffer_IDsAreUnique(t *testing.T) {
	b := newQuietBuffer(100)
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[b.Append("m", domain.LevelDebug).ID] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestLogBuffer_WritesConsoleLine(t *testing.T) {
	var out bytes.Buffer
	b := memdb.NewLogBuffer(10, memdb.WithSink(memdb.NewWriterSink(&out)))

	b.Info("hello")
	b.Error("boom")

	assert.Equal(t, "[INFO] hello\n[ERROR] boom\n", out.String())
}

func TestLogBuffer_ConcurrentRecords(t *testing.T) {
	const (
		maxLogs   = 500
		workers   = 10
		perWorker = 100
	)

	b := newQuietBuffer(maxLogs)

	var (
		wg      sync.WaitGroup
		ids     sync.Map
		overCap = make(chan int, workers)
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				entry := b.Append(fmt.Sprintf("w%d-%d", w, i), domain.LevelInfo)
				ids.Store(entry.ID, struct{}{})
				if n := len(b.Snapshot()); n > maxLogs {
					overCap <- n
				}
			}
		}(w)
	}
	wg.Wait()
	close(overCap)

	for n := range overCap {
		t.Fatalf("snapshot exceeded cap: %d", n)
	}

	unique := 0
	ids.Range(func(_, _ any) bool {
		unique++
		return true
	})
	assert.Equal(t, workers*perWorker, unique)

	stats := b.Stats()
	assert.Equal(t, uint64(workers*perWorker), stats.TotalRecorded)
	assert.Equal(t, uint64(workers*perWorker-maxLogs), stats.TotalEvicted)
	assert.Equal(t, maxLogs, stats.Size)

	snapshot := b.Snapshot()
	require.Len(t, snapshot, maxLogs)
	for _, e := range snapshot {
		_, ok := ids.Load(e.ID)
		assert.True(t, ok)
	}
}

func TestLogBuffer_Stats(t *testing.T) {
	b := newQuietBuffer(2)
	b.Info("a")
	b.Info("b")
	b.Info("c")
	b.Clear()
	b.Info("d")

	assert.Equal(t, domain.BufferStats{
		Size:          1,
		Capacity:      2,
		TotalRecorded: 4,
		TotalEvicted:  1,
		TotalCleared:  1,
	}, b.Stats())
}

func TestLogBuffer_EvictionCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	counter := countermocks.NewMockCounter(ctrl)
	counter.EXPECT().Inc().Times(2)

	b := newQuietBuffer(1, memdb.WithEvictionCounter(counter))
	b.Info("a")
	b.Info("b")
	b.Info("c")
}

func TestLogBuffer_RecordCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	counter := countermocks.NewMockCounter(ctrl)
	counter.EXPECT().Inc("info").Times(2)
	counter.EXPECT().Inc("error")
	counter.EXPECT().Inc("warning")

	b := newQuietBuffer(1, memdb.WithRecordCounter(counter))

	lg := log.New()
	lg.SetOutput(io.Discard)
	lg.AddHook(b.Hook())

	b.Info("a")
	b.Append("b", domain.LevelError)
	lg.Warn("captured")
	lg.WithField(logger.FieldSkipCapture, true).Error("skipped")
	b.Clear()
	b.Record("c", "")
}

func TestLogBuffer_Subscribe(t *testing.T) {
	b := newQuietBuffer(2)

	var got [][]string
	unsubscribe := b.Subscribe(func(entries []domain.LogEntry) {
		got = append(got, messages(entries))
	})

	b.Info("a")
	b.Info("b")
	b.Info("c")
	b.Clear()

	unsubscribe()
	unsubscribe()
	b.Info("d")

	assert.Equal(t, [][]string{
		{"a"},
		{"a", "b"},
		{"b", "c"},
		{},
	}, got)
}

func TestLogBuffer_PanickingListener(t *testing.T) {
	log.SetOutput(io.Discard)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	b := newQuietBuffer(3)

	var calls int
	b.Subscribe(func([]domain.LogEntry) { panic("listener failed") })
	b.Subscribe(func([]domain.LogEntry) { calls++ })

	assert.NotPanics(t, func() {
		b.Info("a")
		b.Clear()
	})
	assert.Equal(t, 2, calls)
	assert.Equal(t, uint64(1), b.Stats().TotalRecorded)
}

func TestHook_SkipsMarkedEntries(t *testing.T) {
	b := newQuietBuffer(10)

	lg := log.New()
	lg.SetOutput(io.Discard)
	lg.AddHook(b.Hook())

	lg.Info("kept")
	lg.WithField(logger.FieldSkipCapture, true).Info("request log")
	lg.WithField("other", 1).Warn("kept too")

	assert.Equal(t, []string{"kept", "kept too"}, messages(b.Snapshot()))
}

func TestHook_CapturesLogrusEntries(t *testing.T) {
	var out bytes.Buffer
	b := memdb.NewLogBuffer(10, memdb.WithSink(memdb.NewWriterSink(&out)))

	lg := log.New()
	lg.SetOutput(io.Discard)
	lg.SetLevel(log.TraceLevel)
	lg.AddHook(b.Hook())

	lg.Trace("t")
	lg.Debug("d")
	lg.Info("i")
	lg.Warn("w")
	lg.Error("e")

	got := b.Snapshot()
	require.Len(t, got, 5)
	assert.Equal(t, []string{"t", "d", "i", "w", "e"}, messages(got))
	assert.Equal(t, []domain.LogLevel{
		domain.LevelDebug,
		domain.LevelDebug,
		domain.LevelInfo,
		domain.LevelWarning,
		domain.LevelError,
	}, []domain.LogLevel{got[0].Level, got[1].Level, got[2].Level, got[3].Level, got[4].Level})
	assert.Empty(t, out.String())
}
