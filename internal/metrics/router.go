package metrics

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
)

func ConfigureRouter(handler *echo.Echo) {
	handler.GET("/metrics", echoprometheus.NewHandler())
}

// Middleware records request latency and size for the API router under the given subsystem.
func Middleware(subsystem string) echo.MiddlewareFunc {
	return echoprometheus.NewMiddleware(subsystem)
}
