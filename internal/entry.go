// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/txtindex/internal/lock"
	"github.com/starford/txtindex/internal/manifest"
	"github.com/starford/txtindex/internal/report"
	"github.com/starford/txtindex/internal/storage"
	"github.com/starford/txtindex/internal/watch"
)

// Run performs one generation and, in watch mode, keeps regenerating on change.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		out:    os.Stdout,
		logOut: os.Stderr,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	logger := newLogger(cfg.App, app.logOut)
	slog.SetDefault(logger)

	store, err := storage.NewFS(cfg.Index.Root)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	logger.Debug("Configuration loaded",
		slog.String("root", store.Root()),
		slog.String("data_dir", cfg.Index.DataDir),
		slog.String("suffix", cfg.Index.Suffix),
		slog.Bool("lock", cfg.Lock.Enabled),
		slog.Bool("watch", app.watch),
		slog.String("log_level", cfg.App.LogLevel.String()))

	gen := manifest.NewGenerator(store, cfg.Index.Layout(),
		manifest.WithClock(app.now),
		manifest.WithLogger(logger))
	rep := report.New(app.out)

	lockPath := cfg.Lock.Path
	if lockPath == "" {
		lockPath = lock.PathFor(store.Root())
	}

	regenerate := func(ctx context.Context) error {
		if cfg.Lock.Enabled {
			l := lock.New(lockPath)
			if err := l.Acquire(); err != nil {
				return err
			}
			defer func() {
				if err := l.Release(); err != nil {
					logger.Warn("lock release failed", slog.String("error", err.Error()))
				}
			}()
		}

		res, err := gen.Generate(ctx)
		if err != nil {
			return err
		}
		logger.Info("Generation finished",
			slog.String("outcome", res.Outcome.String()),
			slog.Int("items", len(res.Items)),
			slog.Int("version", res.Version))
		rep.Result(res)
		return nil
	}

	if err := regenerate(ctx); err != nil {
		return err
	}

	if !app.watch {
		return nil
	}

	dataDir := filepath.Join(store.Root(), filepath.FromSlash(cfg.Index.DataDir))

	g, gCtx := errgroup.WithContext(ctx)
	watchCtx, cancel := context.WithCancel(gCtx)
	defer cancel()

	g.Go(func() error {
		defer cancel()
		return watch.Watch(watchCtx, dataDir, cfg.Index.Suffix, cfg.Watch.Debounce, logger, regenerate)
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-watchCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Watch error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Watcher stopped")
	return nil
}
