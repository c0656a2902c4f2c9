package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/ticketdesk/internal/actor"
	"github.com/yungbote/ticketdesk/internal/config"
	server "github.com/yungbote/ticketdesk/internal/http"
	"github.com/yungbote/ticketdesk/internal/observability"
	"github.com/yungbote/ticketdesk/internal/platform/logger"
)

// errWorkerExited is returned from Run when the actor worker stops while the
// server is still up.
var errWorkerExited = errors.New("ticket worker exited unexpectedly")

type App struct {
	Log      *logger.Logger
	Config   *config.Config
	Metrics  *observability.Metrics
	Services Services

	server      *server.Server
	worker      *actor.Client
	stopTracing func(context.Context) error
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log, err := logger.New(cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return NewWithLogger(ctx, cfg, log)
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	stopTracing, err := observability.InitTracing(ctx, log, cfg.Tracing, cfg.Env)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics()
	}

	serviceset, worker, err := wireServices(log, cfg, metrics)
	if err != nil {
		_ = stopTracing(ctx)
		log.Sync()
		return nil, err
	}

	handlerset := wireHandlers(log, cfg, serviceset)
	router := wireRouter(log, cfg, metrics, handlerset)

	return &App{
		Log:         log,
		Config:      cfg,
		Metrics:     metrics,
		Services:    serviceset,
		server:      server.NewServer(cfg.HTTP, router),
		worker:      worker,
		stopTracing: stopTracing,
	}, nil
}

// Run serves HTTP until ctx is done or the actor worker dies. The worker is
// released only after the server has drained, so in-flight requests still
// reach it.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	// serverDone is set before the worker is released, so the watcher can
	// tell an orderly release from a crash.
	var serverDone atomic.Bool
	g.Go(func() error {
		a.Log.Info("HTTP server listening", "addr", a.Config.HTTP.Addr, "backend", a.Config.Store.Backend)
		err := a.server.Run(gctx)
		serverDone.Store(true)
		a.releaseWorker()
		return err
	})

	if a.worker != nil {
		g.Go(func() error {
			select {
			case <-a.worker.Done():
				if gctx.Err() == nil && !serverDone.Load() {
					a.Log.Error("Ticket worker stopped while serving")
					return errWorkerExited
				}
				return nil
			case <-gctx.Done():
				return nil
			}
		})
	}

	err := g.Wait()
	a.Close()
	return err
}

func (a *App) releaseWorker() {
	if a.worker == nil {
		return
	}
	a.worker.Close()
	select {
	case <-a.worker.Done():
		a.Log.Debug("Ticket worker stopped")
	case <-time.After(a.Config.HTTP.ShutdownTimeout.Duration):
		a.Log.Warn("Ticket worker did not stop in time")
	}
}

// Close flushes telemetry and the logger. Run calls it on exit.
func (a *App) Close() {
	if a == nil {
		return
	}
	if a.stopTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.stopTracing(ctx); err != nil {
			a.Log.Warn("Tracing shutdown failed", "error", err)
		}
		cancel()
		a.stopTracing = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
