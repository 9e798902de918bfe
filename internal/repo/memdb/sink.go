package memdb

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Sink is the console side of Record: one line per recorded entry.
type Sink interface {
	WriteLine(line string)
}

type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func NewStdoutSink() *WriterSink {
	return NewWriterSink(os.Stdout)
}

// WriteLine is best effort; write errors are dropped.
func (s *WriterSink) WriteLine(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.w, line)
}

type NopSink struct{}

func (NopSink) WriteLine(string) {}
