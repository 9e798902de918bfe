package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	errorsUtils "github.com/Egor213/LogiBuffer/pkg/errors"
)

const (
	defaultReadTimeout     = 5 * time.Second
	defaultWriteTimeout    = 5 * time.Second
	defaultAddr            = ":80"
	defaultShutdownTimeout = 3 * time.Second
)

type Server struct {
	server          *http.Server
	notify          chan error
	shutdownTimeout time.Duration
}

func New(handler http.Handler, opts ...Option) *Server {
	httpServer := &http.Server{
		Handler:      handler,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		Addr:         defaultAddr,
	}

	s := &Server{
		server:          httpServer,
		notify:          make(chan error, 1),
		shutdownTimeout: defaultShutdownTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.start()

	return s
}

// start reports only unexpected serve errors; a Shutdown just closes notify.
func (s *Server) start() {
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.notify <- errorsUtils.WrapPathErr(err)
		}
		close(s.notify)
	}()
}

func (s *Server) Addr() string {
	return s.server.Addr
}

// Timeouts reports the read and write timeouts the server was built with.
func (s *Server) Timeouts() (read, write time.Duration) {
	return s.server.ReadTimeout, s.server.WriteTimeout
}

func (s *Server) Notify() <-chan error {
	return s.notify
}

func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
