package service

import (
	"context"

	"github.com/Egor213/LogiBuffer/internal/domain"
	"github.com/Egor213/LogiBuffer/internal/repo"
	"github.com/Egor213/LogiBuffer/internal/repo/repotypes"
)

type Log interface {
	Record(ctx context.Context, message, level string) (domain.LogEntry, error)
	GetLogs(ctx context.Context, lf repotypes.LogFilter) ([]domain.LogEntry, error)
	Clear(ctx context.Context) error
	GetStats(ctx context.Context) (domain.BufferStats, error)
}

type Services struct {
	Log
}

type ServicesDependencies struct {
	Repos *repo.Repositories
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Log: NewLogService(deps.Repos.Log),
	}
}
