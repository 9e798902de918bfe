package app

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/LogiBuffer/internal/config"
	httpv1 "github.com/Egor213/LogiBuffer/internal/controller/http/v1"
	"github.com/Egor213/LogiBuffer/internal/domain"
	"github.com/Egor213/LogiBuffer/internal/metrics"
	"github.com/Egor213/LogiBuffer/internal/repo"
	"github.com/Egor213/LogiBuffer/internal/repo/memdb"
	"github.com/Egor213/LogiBuffer/internal/service"
	errorsUtils "github.com/Egor213/LogiBuffer/pkg/errors"
	"github.com/Egor213/LogiBuffer/pkg/httpserver"
	"github.com/Egor213/LogiBuffer/pkg/logger"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Buffer
	metricsCnt := metrics.New()
	buffer := NewBuffer(cfg.Buffer, metricsCnt)
	log.WithField("max_logs", buffer.Cap()).Info("Log buffer created")

	// Repos
	repositories := repo.NewRepositories(buffer)

	// Services
	deps := service.ServicesDependencies{
		Repos: repositories,
	}
	services := service.NewServices(deps)

	// API server
	log.Infof("Starting API server...")
	log.Debugf("API server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	apiHandler.HideBanner = true
	apiHandler.Use(metrics.Middleware("logibuffer"))
	httpv1.ConfigureRouter(apiHandler, services, metricsCnt)
	apiServer := httpserver.New(apiHandler,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Metrics server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	log.Info("Configuring graceful shutdown...")

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info(errorsUtils.WrapPathErr(errors.New(s.String())))
	case err := <-metricsServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-apiServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	shutdownApp(apiServer, metricsServer)
}

// NewBuffer builds the log buffer from config and wires it into metrics and,
// if enabled, into the standard logrus logger.
func NewBuffer(cfg config.Buffer, cnt *metrics.Counters) *memdb.LogBuffer {
	opts := []memdb.Option{
		memdb.WithRecordCounter(cnt.LogsRecorded),
		memdb.WithEvictionCounter(cnt.LogsEvicted),
	}
	if !cfg.ConsoleEcho {
		opts = append(opts, memdb.WithSink(memdb.NopSink{}))
	}

	buffer := memdb.NewLogBuffer(cfg.MaxLogs, opts...)
	buffer.Subscribe(func(entries []domain.LogEntry) {
		cnt.BufferSize.Set(float64(len(entries)))
	})

	if cfg.CaptureAppLogs {
		log.AddHook(buffer.Hook())
	}

	return buffer
}

func shutdownApp(apiServer, metricsServer *httpserver.Server) {
	log.Info("Shutting down...")
	if err := apiServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
}
