package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type LogLevel string

const (
	LevelDebug   LogLevel = "debug"
	LevelInfo    LogLevel = "info"
	LevelWarning LogLevel = "warning"
	LevelError   LogLevel = "error"
)

var ErrUnknownLevel = errors.New("unknown log level")

// ParseLevel is case-insensitive. Empty input means info, "warn" is accepted for warning.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(LevelInfo):
		return LevelInfo, nil
	case string(LevelDebug):
		return LevelDebug, nil
	case string(LevelWarning), "warn":
		return LevelWarning, nil
	case string(LevelError):
		return LevelError, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

func (l LogLevel) IsValid() bool {
	switch l {
	case LevelDebug, LevelInfo, LevelWarning, LevelError:
		return true
	}
	return false
}

func (l LogLevel) DisplayName() string {
	return strings.ToUpper(string(l))
}

type LogEntry struct {
	ID        string
	Timestamp time.Time
	Message   string
	Level     LogLevel
}

// FormattedMessage renders "[HH:MM:SS.mmm] [LEVEL] message" in the timestamp's location.
func (e LogEntry) FormattedMessage() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Timestamp.Format("15:04:05.000"), e.Level.DisplayName(), e.Message)
}

func (e LogEntry) ConsoleLine() string {
	return fmt.Sprintf("[%s] %s", e.Level.DisplayName(), e.Message)
}

type BufferStats struct {
	Size          int
	Capacity      int
	TotalRecorded uint64
	TotalEvicted  uint64
	TotalCleared  uint64
}
