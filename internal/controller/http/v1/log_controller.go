package httpv1

import (
	"errors"
	"net/http"

	logginghelper "github.com/Egor213/LogiBuffer/internal/controller/common/logging"
	"github.com/Egor213/LogiBuffer/internal/controller/http/validators"
	"github.com/Egor213/LogiBuffer/internal/metrics"
	"github.com/Egor213/LogiBuffer/internal/service"
	"github.com/labstack/echo/v4"
)

type LogController struct {
	logService service.Log
	counters   *metrics.Counters
}

func NewLogController(ls service.Log, cnt *metrics.Counters) *LogController {
	return &LogController{
		logService: ls,
		counters:   cnt,
	}
}

func (c *LogController) RecordLog(ctx echo.Context) error {
	c.counters.HttpRequests.Inc("RecordLog", "received")

	var req RecordLogRequest
	if err := ctx.Bind(&req); err != nil {
		c.counters.HttpRequests.Inc("RecordLog", "failed")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := validators.ValidateLevel(req.Level); err != nil {
		c.counters.HttpRequests.Inc("RecordLog", "failed")
		logginghelper.LogError("RecordLog", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid argument: "+err.Error())
	}

	entry, err := c.logService.Record(ctx.Request().Context(), req.Message, req.Level)
	if err != nil {
		c.counters.HttpRequests.Inc("RecordLog", "failed")
		logginghelper.LogError("RecordLog", err)
		if errors.Is(err, service.ErrInvalidLevel) {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid argument: "+err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "unknown error")
	}

	logginghelper.LogRecorded(entry)
	c.counters.HttpRequests.Inc("RecordLog", "ok")

	return ctx.JSON(http.StatusCreated, RecordLogResponse{
		ID:     entry.ID,
		Status: "ok",
	})
}

func (c *LogController) GetLogs(ctx echo.Context) error {
	c.counters.HttpRequests.Inc("GetLogs", "received")

	var (
		level string
		limit int
	)
	err := echo.QueryParamsBinder(ctx).
		String("level", &level).
		Int("limit", &limit).
		BindError()
	if err != nil {
		c.counters.HttpRequests.Inc("GetLogs", "failed")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	if err := errors.Join(validators.ValidateLevel(level), validators.ValidateLimit(limit)); err != nil {
		c.counters.HttpRequests.Inc("GetLogs", "failed")
		return echo.NewHTTPError(http.StatusBadRequest, "invalid argument: "+err.Error())
	}

	logs, err := c.logService.GetLogs(ctx.Request().Context(), NewLogFilter(level, limit))
	if err != nil {
		c.counters.HttpRequests.Inc("GetLogs", "failed")
		logginghelper.LogError("GetLogs", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "unknown error")
	}

	c.counters.HttpRequests.Inc("GetLogs", "ok")
	return ctx.JSON(http.StatusOK, ToGetLogsResponse(logs))
}

func (c *LogController) ClearLogs(ctx echo.Context) error {
	c.counters.HttpRequests.Inc("ClearLogs", "received")

	if err := c.logService.Clear(ctx.Request().Context()); err != nil {
		c.counters.HttpRequests.Inc("ClearLogs", "failed")
		logginghelper.LogError("ClearLogs", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "unknown error")
	}

	logginghelper.LogCleared()
	c.counters.HttpRequests.Inc("ClearLogs", "ok")
	return ctx.NoContent(http.StatusNoContent)
}

func (c *LogController) GetStats(ctx echo.Context) error {
	c.counters.HttpRequests.Inc("GetStats", "received")

	stats, err := c.logService.GetStats(ctx.Request().Context())
	if err != nil {
		c.counters.HttpRequests.Inc("GetStats", "failed")
		logginghelper.LogError("GetStats", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "unknown error")
	}

	c.counters.HttpRequests.Inc("GetStats", "ok")
	return ctx.JSON(http.StatusOK, ToStatsResponse(stats))
}
