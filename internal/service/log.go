package service

import (
	"context"
	"fmt"

	"github.com/Egor213/LogiBuffer/internal/domain"
	"github.com/Egor213/LogiBuffer/internal/repo"
	"github.com/Egor213/LogiBuffer/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/LogiBuffer/pkg/errors"
)

type LogService struct {
	logRepo repo.Log
}

func NewLogService(lr repo.Log) *LogService {
	return &LogService{
		logRepo: lr,
	}
}

func (s *LogService) Record(ctx context.Context, message, level string) (domain.LogEntry, error) {
	lvl, err := domain.ParseLevel(level)
	if err != nil {
		return domain.LogEntry{}, errorsUtils.WrapPathErr(fmt.Errorf("%w: %q", ErrInvalidLevel, level))
	}

	return s.logRepo.Append(message, lvl), nil
}

func (s *LogService) GetLogs(ctx context.Context, lf repotypes.LogFilter) ([]domain.LogEntry, error) {
	if lf.Level != "" && !lf.Level.IsValid() {
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("%w: %q", ErrInvalidLevel, lf.Level))
	}
	return lf.Apply(s.logRepo.Snapshot()), nil
}

func (s *LogService) Clear(ctx context.Context) error {
	s.logRepo.Clear()
	return nil
}

func (s *LogService) GetStats(ctx context.Context) (domain.BufferStats, error) {
	return s.logRepo.Stats(), nil
}
