package httpv1

import (
	"net/http"

	"github.com/Egor213/LogiBuffer/internal/metrics"
	"github.com/Egor213/LogiBuffer/internal/service"
	"github.com/labstack/echo/v4"
)

func ConfigureRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters) {
	handler.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	lc := NewLogController(services.Log, counters)

	logs := handler.Group("/api/v1/logs")
	logs.GET("", lc.GetLogs)
	logs.POST("", lc.RecordLog)
	logs.DELETE("", lc.ClearLogs)
	logs.GET("/stats", lc.GetStats)
}
