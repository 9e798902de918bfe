package httpserver

import (
	"net"
	"time"
)

// Option tunes the server before it starts listening.
type Option func(*Server)

func Port(port string) Option {
	return func(s *Server) {
		s.server.Addr = net.JoinHostPort("", port)
	}
}

// ReadTimeout, WriteTimeout and ShutdownTimeout keep the default when given a non-positive duration.

func ReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		if timeout > 0 {
			s.server.ReadTimeout = timeout
		}
	}
}

func WriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		if timeout > 0 {
			s.server.WriteTimeout = timeout
		}
	}
}

func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		if timeout > 0 {
			s.shutdownTimeout = timeout
		}
	}
}
