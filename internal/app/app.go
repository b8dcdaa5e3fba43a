package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/edip-crm/internal/config"
	"github.com/heartmarshall/edip-crm/internal/domain"
)

// Run is the server entry point. It loads configuration, opens the
// configured store, optionally seeds it, and serves HTTP until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application", append(versionAttrs(),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Kind),
	)...)

	backend, err := OpenBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Error("close store", slog.String("error", err.Error()))
		}
	}()

	svcs := NewServices(logger, backend, cfg.CRM)

	if cfg.Store.SeedSampleData {
		_, err := svcs.Seeder().Apply(ctx)
		switch {
		case errors.Is(err, domain.ErrConfiguration):
			logger.Warn("sample data not seeded", slog.String("error", err.Error()))
		case err != nil:
			return fmt.Errorf("seed sample data: %w", err)
		}
	}
	if n, err := backend.Accounts.Count(ctx); err == nil {
		logger.Info("store ready", slog.String("store", backend.Kind), slog.Int("accounts", n))
	}

	handler, err := NewHandler(cfg, logger, backend, svcs)
	if err != nil {
		return err
	}

	return serve(ctx, cfg.Server, handler, logger)
}

func serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
