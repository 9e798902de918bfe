package repotypes

import "github.com/Egor213/LogiBuffer/internal/domain"

// LogFilter narrows a buffer snapshot. Zero values mean no filtering.
type LogFilter struct {
	Level domain.LogLevel
	Limit int
}

// Apply keeps entries of Level (if set), then the newest Limit of them (if > 0), oldest first.
func (f LogFilter) Apply(entries []domain.LogEntry) []domain.LogEntry {
	out := entries
	if f.Level != "" {
		out = make([]domain.LogEntry, 0, len(entries))
		for _, e := range entries {
			if e.Level == f.Level {
				out = append(out, e)
			}
		}
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[len(out)-f.Limit:]
	}
	return out
}
