// Command backup exports the whole CRM dataset as a JSON document and writes
// it to the configured backup target (a local directory or an S3 bucket).
// It is intended to be invoked by an external cron job.
//
// Flags:
//
//	--list     list existing archives instead of writing a new one
//	--timeout  overall deadline (default 5m)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/edip-crm/internal/adapter/blob"
	"github.com/heartmarshall/edip-crm/internal/app"
	"github.com/heartmarshall/edip-crm/internal/config"
)

func main() {
	list := flag.Bool("list", false, "list existing archives and exit")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Backup.Validate(); err != nil {
		log.Fatalf("backup config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	sink, err := blob.Open(ctx, cfg.Backup)
	if err != nil {
		logger.Error("open backup target", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}

	if *list {
		err = listArchives(ctx, sink)
	} else {
		err = backup(ctx, cfg, logger, sink)
	}
	if err != nil {
		logger.Error("backup failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}

func backup(ctx context.Context, cfg *config.Config, logger *slog.Logger, sink blob.Sink) error {
	backend, err := app.OpenBackend(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.Close() //nolint:errcheck

	_, err = app.Backup(ctx, logger, app.NewServices(logger, backend, cfg.CRM).Reports, sink)
	return err
}

func listArchives(ctx context.Context, sink blob.Sink) error {
	objects, err := sink.List(ctx)
	if err != nil {
		return err
	}
	for _, o := range objects {
		fmt.Printf("%s\t%d\n", o.Key, o.Size)
	}
	return nil
}
