package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pommel-dev/pathkit/internal/api"
	"github.com/pommel-dev/pathkit/internal/config"
	"github.com/pommel-dev/pathkit/internal/metrics"
)

// ShutdownTimeout bounds how long in-flight requests may take once the
// daemon has been asked to stop.
const ShutdownTimeout = 5 * time.Second

// Daemon serves the path resolution API for one project and keeps its
// resolver in sync with the project's configuration.
type Daemon struct {
	projectRoot string
	config      *config.Config
	logger      *slog.Logger
	metrics     *metrics.Metrics
	router      *api.Router
	state       *StateManager

	mu    sync.Mutex
	addr  string
	ready chan struct{}
}

// New creates a new Daemon instance with all components initialized.
func New(projectRoot string, cfg *config.Config, logger *slog.Logger) (*Daemon, error) {
	info, err := os.Stat(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("project root does not exist: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("project root is not a directory: %s", projectRoot)
	}

	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if err := config.ValidateOrError(cfg); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	resolver, err := cfg.NewResolver(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resolver: %w", err)
	}

	m := metrics.New()

	return &Daemon{
		projectRoot: projectRoot,
		config:      cfg,
		logger:      logger,
		metrics:     m,
		router:      api.NewRouter(cfg, resolver, m, logger),
		state:       NewStateManager(projectRoot),
		ready:       make(chan struct{}),
	}, nil
}

// Handler returns the HTTP handler serving the API.
func (d *Daemon) Handler() http.Handler {
	return d.router
}

// Ready is closed once the daemon is accepting connections.
func (d *Daemon) Ready() <-chan struct{} {
	return d.ready
}

// Addr returns the address the daemon listens on, or "" before it is ready.
func (d *Daemon) Addr() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.addr
}

// Run starts the daemon and blocks until ctx is cancelled, a shutdown
// signal arrives or the server fails. A Daemon can only be run once.
func (d *Daemon) Run(ctx context.Context) error {
	if running, pid := d.state.IsRunning(); running {
		return fmt.Errorf("daemon already running with PID %d", pid)
	}

	port, err := DeterminePort(d.projectRoot, d.config)
	if err != nil {
		return fmt.Errorf("failed to determine port: %w", err)
	}

	listener, err := net.Listen("tcp", d.config.Daemon.AddressWithPort(port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	if err := d.state.WritePID(os.Getpid()); err != nil {
		listener.Close()
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	defer d.cleanup()

	addr := listener.Addr().String()
	if err := d.state.SaveState(&DaemonState{
		Version:   1,
		PID:       os.Getpid(),
		StartedAt: time.Now(),
		Address:   addr,
		Port:      listener.Addr().(*net.TCPAddr).Port,
	}); err != nil {
		d.logger.Warn("failed to save daemon state", "error", err)
	}

	server := &http.Server{
		Handler:           d.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	d.mu.Lock()
	d.addr = addr
	d.mu.Unlock()

	ctx, stop := signal.NotifyContext(ctx, ShutdownSignals()...)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	if watcher := d.watchConfig(); watcher != nil {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}
	g.Go(func() error {
		d.logger.Info("starting API server", "addr", addr, "project", d.projectRoot)
		close(d.ready)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		d.logger.Info("shutting down daemon")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			d.logger.Warn("server shutdown error", "error", err)
		}
		return nil
	})

	return g.Wait()
}

// Reload re-reads the merged configuration from disk and swaps the resolver
// used by the API. An invalid configuration leaves the current one in place.
func (d *Daemon) Reload() error {
	cfg, err := config.LoadMerged(d.projectRoot)
	if err == nil {
		err = config.ValidateOrError(cfg)
	}
	if err != nil {
		d.metrics.ObserveConfigReload(err)
		return fmt.Errorf("failed to reload config: %w", err)
	}

	resolver, err := cfg.NewResolver(d.logger)
	d.metrics.ObserveConfigReload(err)
	if err != nil {
		return fmt.Errorf("failed to create resolver: %w", err)
	}

	d.router.Handler().Update(cfg, resolver)
	d.logger.Info("configuration reloaded",
		"separator", resolver.Separator(),
		"relative_mode", resolver.DiffMode(),
		"ancestry_mode", resolver.AncestryMode())
	return nil
}

// watchConfig prepares a watcher that reloads the configuration whenever
// the project config file changes. Projects without a config file are
// served with the startup configuration and get no watcher.
func (d *Daemon) watchConfig() *config.Watcher {
	loader := config.NewLoader(d.projectRoot)
	if !loader.Exists() {
		d.logger.Debug("no project config to watch", "path", loader.ConfigPath())
		return nil
	}

	watcher, err := loader.Watch(func(_ *config.Config, err error) {
		if err != nil {
			d.metrics.ObserveConfigReload(err)
			d.logger.Warn("config change could not be read", "error", err)
			return
		}
		if err := d.Reload(); err != nil {
			d.logger.Warn("keeping previous configuration", "error", err)
		}
	})
	if err != nil {
		d.logger.Warn("config watch disabled", "error", err)
		return nil
	}
	return watcher
}

// cleanup removes the files that advertise a running daemon.
func (d *Daemon) cleanup() {
	if err := d.state.RemoveState(); err != nil {
		d.logger.Warn("failed to remove state file", "error", err)
	}
	if err := d.state.RemovePID(); err != nil {
		d.logger.Warn("failed to remove PID file", "error", err)
	}
}
