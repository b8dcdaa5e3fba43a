// Command seeder loads the sample dataset into the configured store. It
// does nothing when the store already holds accounts.
//
// Flags:
//
//	--timeout  overall deadline (default 2m)
//
// Exit codes: 0 = success or nothing to do, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/edip-crm/internal/app"
	"github.com/heartmarshall/edip-crm/internal/config"
)

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	backend, err := app.OpenBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.Close() //nolint:errcheck

	res, err := app.NewServices(logger, backend, cfg.CRM).Seeder().Apply(ctx)
	if err != nil {
		return err
	}

	if !res.Applied {
		logger.Info("store already has accounts; nothing seeded", slog.String("store", backend.Kind))
		return nil
	}
	logger.Info("seed completed",
		slog.String("store", backend.Kind),
		slog.Int("business_areas", res.BusinessAreas),
		slog.Int("accounts", res.Accounts),
		slog.Int("use_cases", res.UseCases),
		slog.Int("updates", res.Updates),
	)
	return nil
}
