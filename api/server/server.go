// Package server runs the HTTP JSON API in front of the numeric routines.
package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/kevinms/leakybucket-go"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/numerics/runtime"
)

var _ runtime.Service = (*Server)(nil)

const defaultTimeout = 10 * time.Second

// Config parameters for setting up the http server.
type config struct {
	httpAddr       string
	allowedOrigins []string
	router         http.Handler
	rateLimit      float64
	burst          int64
	timeout        time.Duration
}

// Server serves HTTP JSON traffic.
type Server struct {
	cfg          *config
	server       *http.Server
	cancel       context.CancelFunc
	ctx          context.Context
	failureLock  sync.RWMutex
	startFailure error
}

// New returns a new instance of the Server.
func New(ctx context.Context, opts ...Option) (*Server, error) {
	g := &Server{
		ctx: ctx,
		cfg: &config{timeout: defaultTimeout},
	}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	if g.cfg.router == nil {
		return nil, errors.New("router option not configured")
	}
	if g.cfg.rateLimit <= 0 || g.cfg.burst < 1 {
		return nil, errors.Errorf("invalid rate limit %v with burst %d", g.cfg.rateLimit, g.cfg.burst)
	}

	collector := leakybucket.NewCollector(g.cfg.rateLimit, g.cfg.burst, true /* deleteEmptyBuckets */)
	handler := CorsHandler(g.cfg.allowedOrigins).Handler(RateLimitHandler(collector, g.cfg.router))
	g.server = &http.Server{
		Addr:              g.cfg.httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       g.cfg.timeout,
		WriteTimeout:      g.cfg.timeout,
	}
	return g, nil
}

// Handler returns the fully wrapped handler, mainly for tests.
func (g *Server) Handler() http.Handler {
	return g.server.Handler
}

// Start the http server.
func (g *Server) Start() {
	_, cancel := context.WithCancel(g.ctx)
	g.cancel = cancel

	log.WithField("address", g.cfg.httpAddr).Info("Starting HTTP server")
	go func() {
		if err := g.server.ListenAndServe(); err != http.ErrServerClosed {
			log.WithError(err).Error("Failed to start HTTP server")
			g.failureLock.Lock()
			g.startFailure = err
			g.failureLock.Unlock()
		}
	}()
}

// Status of the HTTP server. Returns an error if this service is unhealthy.
func (g *Server) Status() error {
	g.failureLock.RLock()
	defer g.failureLock.RUnlock()
	return g.startFailure
}

// Stop the HTTP server with a graceful shutdown.
func (g *Server) Stop() error {
	if g.server != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(g.ctx, 2*time.Second)
		defer shutdownCancel()
		if err := g.server.Shutdown(shutdownCtx); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				log.Warn("Existing connections terminated")
			} else {
				log.WithError(err).Error("Failed to gracefully shut down server")
			}
		}
	}
	if g.cancel != nil {
		g.cancel()
	}
	return nil
}
