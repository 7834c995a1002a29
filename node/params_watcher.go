package node

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/prysmaticlabs/numerics/async"
	"github.com/prysmaticlabs/numerics/config/params"
	"github.com/prysmaticlabs/numerics/runtime"
)

var _ runtime.Service = (*ParamsWatcher)(nil)

var debounceFileChangesInterval = time.Second

// ParamsWatcher reloads a params yaml file on top of a base config whenever
// the file is written, and calls onReload after each successful reload.
type ParamsWatcher struct {
	ctx      context.Context
	cancel   context.CancelFunc
	path     string
	base     *params.NumericsConfig
	onReload func(*params.NumericsConfig)
	watcher  *fsnotify.Watcher
	done     chan struct{}
	started  bool
	lock     sync.RWMutex
	failure  error
}

// NewParamsWatcher watches the params file at path. A nil base means the
// default config.
func NewParamsWatcher(
	ctx context.Context,
	path string,
	base *params.NumericsConfig,
	onReload func(*params.NumericsConfig),
) (*ParamsWatcher, error) {
	if base == nil {
		base = params.DefaultConfig()
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "could not initialize file watcher")
	}
	if err := watcher.Add(path); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			log.WithError(closeErr).Error("Could not close file watcher")
		}
		return nil, errors.Wrapf(err, "could not add file %s to file watcher", path)
	}
	ctx, cancel := context.WithCancel(ctx)
	return &ParamsWatcher{
		ctx:      ctx,
		cancel:   cancel,
		path:     path,
		base:     base,
		onReload: onReload,
		watcher:  watcher,
		done:     make(chan struct{}),
	}, nil
}

// Start watching for file changes.
func (w *ParamsWatcher) Start() {
	w.started = true
	go w.run()
}

func (w *ParamsWatcher) run() {
	defer close(w.done)
	fileChangesChan := make(chan interface{}, 100)
	go async.Debounce(w.ctx, debounceFileChangesInterval, fileChangesChan, func(interface{}) {
		w.reload()
	})
	for {
		select {
		case event := <-w.watcher.Events:
			if event.Op&fsnotify.Write == fsnotify.Write {
				select {
				case fileChangesChan <- event:
				default:
				}
			}
		case err := <-w.watcher.Errors:
			log.WithError(err).Errorf("Could not watch for file changes for: %s", w.path)
		case <-w.ctx.Done():
			return
		}
	}
}

func (w *ParamsWatcher) reload() {
	conf, err := params.UnmarshalConfigFileOnto(w.base, w.path)
	w.lock.Lock()
	w.failure = err
	w.lock.Unlock()
	if err != nil {
		log.WithError(err).Error("Could not reload params file, keeping current values")
		return
	}
	params.OverrideNumericsConfig(conf)
	log.WithField("config", conf.ConfigName).Info("Reloaded numeric params")
	if w.onReload != nil {
		w.onReload(conf)
	}
}

// Stop watching.
func (w *ParamsWatcher) Stop() error {
	w.cancel()
	if w.started {
		<-w.done
	}
	return w.watcher.Close()
}

// Status reports the error of the last failed reload.
func (w *ParamsWatcher) Status() error {
	w.lock.RLock()
	defer w.lock.RUnlock()
	return w.failure
}
