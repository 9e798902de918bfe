package memdb

import (
	"github.com/Egor213/LogiBuffer/internal/domain"
	"github.com/Egor213/LogiBuffer/pkg/logger"
	log "github.com/sirupsen/logrus"
)

// Hook captures logrus output into the buffer. Captured entries are not echoed
// to the console sink because logrus has already written them. Entries carrying
// logger.FieldSkipCapture are ignored.
type Hook struct {
	buffer *LogBuffer
}

func (b *LogBuffer) Hook() *Hook {
	return &Hook{buffer: b}
}

func (h *Hook) Levels() []log.Level {
	return log.AllLevels
}

func (h *Hook) Fire(entry *log.Entry) error {
	if _, skip := entry.Data[logger.FieldSkipCapture]; skip {
		return nil
	}
	h.buffer.store(entry.Message, levelFromLogrus(entry.Level))
	return nil
}

func levelFromLogrus(l log.Level) domain.LogLevel {
	switch l {
	case log.TraceLevel, log.DebugLevel:
		return domain.LevelDebug
	case log.InfoLevel:
		return domain.LevelInfo
	case log.WarnLevel:
		return domain.LevelWarning
	default:
		return domain.LevelError
	}
}
