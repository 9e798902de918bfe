package repo

import (
	"github.com/Egor213/LogiBuffer/internal/domain"
	"github.com/Egor213/LogiBuffer/internal/repo/memdb"
)

type Log interface {
	Append(message string, level domain.LogLevel) domain.LogEntry
	Snapshot() []domain.LogEntry
	Clear()
	Stats() domain.BufferStats
}

type Repositories struct {
	Log
}

func NewRepositories(buffer *memdb.LogBuffer) *Repositories {
	return &Repositories{
		Log: buffer,
	}
}
