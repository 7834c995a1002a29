package server

import (
	"time"

	"github.com/gorilla/mux"
)

// Option for configuring the http server.
type Option func(s *Server) error

// WithHTTPAddr sets the host:port the server listens on.
func WithHTTPAddr(addr string) Option {
	return func(s *Server) error {
		s.cfg.httpAddr = addr
		return nil
	}
}

// WithAllowedOrigins sets the CORS allowed origins.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) error {
		s.cfg.allowedOrigins = origins
		return nil
	}
}

// WithRouter sets the router serving every endpoint.
func WithRouter(r *mux.Router) Option {
	return func(s *Server) error {
		s.cfg.router = r
		return nil
	}
}

// WithRateLimit limits each client to rate requests per second with bursts of up to burst requests.
func WithRateLimit(rate float64, burst int64) Option {
	return func(s *Server) error {
		s.cfg.rateLimit = rate
		s.cfg.burst = burst
		return nil
	}
}

// WithTimeout sets the read and write timeouts of the server.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Server) error {
		s.cfg.timeout = timeout
		return nil
	}
}
