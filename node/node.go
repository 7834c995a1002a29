// Package node is the main service which launches the numerics API and
// manages the lifecycle of all its associated services at runtime,
// gracefully closing them if the process ends.
package node

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/numerics/api/numerics"
	"github.com/prysmaticlabs/numerics/api/server"
	"github.com/prysmaticlabs/numerics/async"
	"github.com/prysmaticlabs/numerics/cache"
	"github.com/prysmaticlabs/numerics/cmd/flags"
	"github.com/prysmaticlabs/numerics/config/params"
	"github.com/prysmaticlabs/numerics/monitoring/prometheus"
	"github.com/prysmaticlabs/numerics/monitoring/purge"
	"github.com/prysmaticlabs/numerics/runtime"
	"github.com/prysmaticlabs/numerics/runtime/version"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.WithField("prefix", "node")

const statusLogInterval = time.Minute

// NumericsNode defines a struct that handles the services running a numerics server.
type NumericsNode struct {
	cliCtx   *cli.Context
	ctx      context.Context
	cancel   context.CancelFunc
	services *runtime.ServiceRegistry
	lock     sync.RWMutex
	stop     chan struct{} // Channel to wait for termination notifications.
	results  *cache.ResultCache
	sessions *numerics.SessionStore
}

// New creates a new node instance from the active numerics config and the
// serve flags, and registers every required service to the node.
func New(cliCtx *cli.Context) (*NumericsNode, error) {
	cfg := params.ActiveConfig()

	ctx, cancel := context.WithCancel(cliCtx.Context)
	node := &NumericsNode{
		cliCtx:   cliCtx,
		ctx:      ctx,
		cancel:   cancel,
		services: runtime.NewServiceRegistry(),
		stop:     make(chan struct{}),
		sessions: numerics.NewSessionStore(cfg.GuessSessionTTL(), cfg.GuessSessionCleanupInterval()),
	}

	results, err := cache.NewResultCache(cfg.ResultCacheSize)
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "could not create result cache")
	}
	node.results = results

	if err := node.registerAPIService(cfg); err != nil {
		cancel()
		return nil, errors.Wrap(err, "could not register API service")
	}
	if err := node.registerParamsWatcher(); err != nil {
		cancel()
		return nil, errors.Wrap(err, "could not register params watcher")
	}
	if !cliCtx.Bool(flags.DisableMonitoringFlag.Name) {
		if err := node.registerPrometheusService(); err != nil {
			cancel()
			return nil, errors.Wrap(err, "could not register prometheus service")
		}
	}
	return node, nil
}

// Start the NumericsNode and kicks off every registered service.
func (n *NumericsNode) Start() {
	n.lock.Lock()

	log.WithFields(version.Fields()).WithField(
		"config", params.ActiveConfig().ConfigName,
	).Info("Starting numerics node")

	n.services.StartAll()
	async.RunEvery(n.ctx, statusLogInterval, n.logStatus)

	stop := n.stop
	n.lock.Unlock()

	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigc)
		select {
		case <-sigc:
		case <-stop:
			return
		}
		log.Info("Got interrupt, shutting down...")
		go n.Close()
		for i := 10; i > 0; i-- {
			<-sigc
			if i > 1 {
				log.WithField("times", i-1).Info("Already shutting down, interrupt more to panic")
			}
		}
		panic("Panic closing the numerics node")
	}()

	// Wait for stop channel to be closed.
	<-stop
}

// Close handles graceful shutdown of the system.
func (n *NumericsNode) Close() {
	n.lock.Lock()
	defer n.lock.Unlock()

	log.Info("Stopping numerics node")
	n.services.StopAll()
	n.cancel()
	close(n.stop)
}

func (n *NumericsNode) logStatus() {
	log.WithFields(logrus.Fields{
		"cachedResults": n.results.Len(),
		"guessSessions": n.sessions.Len(),
	}).Info("Numerics node status")
}

func (n *NumericsNode) registerAPIService(cfg *params.NumericsConfig) error {
	router := mux.NewRouter()
	api := &numerics.Server{
		Results:  n.results,
		Sessions: n.sessions,
	}
	api.RegisterRoutes(router)

	host := n.cliCtx.String(flags.HTTPHostFlag.Name)
	port := n.cliCtx.Int(flags.HTTPPortFlag.Name)
	srv, err := server.New(n.ctx,
		server.WithHTTPAddr(net.JoinHostPort(host, strconv.Itoa(port))),
		server.WithAllowedOrigins(n.cliCtx.StringSlice(flags.AllowedOriginsFlag.Name)),
		server.WithRouter(router),
		server.WithRateLimit(cfg.APIRateLimit, cfg.APIBurst),
	)
	if err != nil {
		return err
	}
	return n.services.RegisterService(srv)
}

func (n *NumericsNode) registerParamsWatcher() error {
	file := n.cliCtx.String(flags.ParamsFileFlag.Name)
	if !n.cliCtx.Bool(flags.WatchParamsFlag.Name) || file == "" {
		return nil
	}
	// Cached results may sit outside a lowered MAX_INPUT, so they go on every reload.
	watcher, err := NewParamsWatcher(n.ctx, file, flags.BaseParams(n.cliCtx), func(*params.NumericsConfig) {
		n.results.Purge()
	})
	if err != nil {
		return err
	}
	return n.services.RegisterService(watcher)
}

func (n *NumericsNode) registerPrometheusService() error {
	var additionalHandlers []prometheus.Handler
	additionalHandlers = append(additionalHandlers, prometheus.Handler{
		Path:    "/cache/purge",
		Handler: purge.Handler(n.results),
	})
	service := prometheus.NewService(
		fmt.Sprintf("%s:%d", n.cliCtx.String(flags.HTTPHostFlag.Name), n.cliCtx.Int(flags.MonitoringPortFlag.Name)),
		n.services,
		additionalHandlers...,
	)
	return n.services.RegisterService(service)
}
