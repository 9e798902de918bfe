package httpv1

import (
	"time"

	"github.com/Egor213/LogiBuffer/internal/domain"
	"github.com/Egor213/LogiBuffer/internal/repo/repotypes"
)

type RecordLogRequest struct {
	Message string `json:"message"`
	Level   string `json:"level"`
}

type RecordLogResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type LogResponse struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Formatted string    `json:"formatted"`
}

type GetLogsResponse struct {
	Count int           `json:"count"`
	Logs  []LogResponse `json:"logs"`
}

type StatsResponse struct {
	Size          int    `json:"size"`
	Capacity      int    `json:"capacity"`
	TotalRecorded uint64 `json:"total_recorded"`
	TotalEvicted  uint64 `json:"total_evicted"`
	TotalCleared  uint64 `json:"total_cleared"`
}

// NewLogFilter expects a level that already passed validation.
func NewLogFilter(level string, limit int) repotypes.LogFilter {
	lf := repotypes.LogFilter{Limit: limit}
	if level != "" {
		lf.Level, _ = domain.ParseLevel(level)
	}
	return lf
}

func ToLogResponse(e domain.LogEntry) LogResponse {
	return LogResponse{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		Level:     string(e.Level),
		Message:   e.Message,
		Formatted: e.FormattedMessage(),
	}
}

func ToGetLogsResponse(entries []domain.LogEntry) GetLogsResponse {
	logs := make([]LogResponse, 0, len(entries))
	for _, e := range entries {
		logs = append(logs, ToLogResponse(e))
	}
	return GetLogsResponse{Count: len(logs), Logs: logs}
}

func ToStatsResponse(s domain.BufferStats) StatsResponse {
	return StatsResponse{
		Size:          s.Size,
		Capacity:      s.Capacity,
		TotalRecorded: s.TotalRecorded,
		TotalEvicted:  s.TotalEvicted,
		TotalCleared:  s.TotalCleared,
	}
}
