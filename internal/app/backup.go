package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/edip-crm/internal/adapter/blob"
	"github.com/heartmarshall/edip-crm/internal/service/report"
)

// Backup exports the full dataset and writes it to sink under a key derived
// from the snapshot time.
func Backup(ctx context.Context, log *slog.Logger, reports *report.Service, sink blob.Sink) (blob.Object, error) {
	snap, err := reports.Export(ctx)
	if err != nil {
		return blob.Object{}, fmt.Errorf("export: %w", err)
	}

	data, err := report.Encode(snap)
	if err != nil {
		return blob.Object{}, fmt.Errorf("encode snapshot: %w", err)
	}

	obj, err := sink.Put(ctx, report.ArchiveKey(snap.TakenAt), data, "application/json")
	if err != nil {
		return blob.Object{}, fmt.Errorf("write backup: %w", err)
	}

	log.InfoContext(ctx, "backup written",
		slog.String("key", obj.Key),
		slog.Int64("size", obj.Size),
		slog.Int("accounts", len(snap.Accounts)),
		slog.Int("use_cases", len(snap.UseCases)),
		slog.Int("updates", len(snap.Updates)),
	)
	return obj, nil
}
