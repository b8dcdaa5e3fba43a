// Package sqlite persists the in-memory store into a single-file SQLite
// database. The whole dataset is written as JSON blobs after every committed
// write and loaded back on open.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/heartmarshall/edip-crm/internal/adapter/memory"
	"github.com/heartmarshall/edip-crm/internal/domain"
)

// Store is a memory.Store whose commits are snapshotted to SQLite.
type Store struct {
	*memory.Store
	db   *sql.DB
	path string
}

const (
	bucketAccounts      = "accounts"
	bucketUseCases      = "use_cases"
	bucketUpdates       = "updates"
	bucketPlatforms     = "platforms_status"
	bucketBusinessAreas = "business_areas"
)

var buckets = []string{bucketAccounts, bucketUseCases, bucketUpdates, bucketPlatforms, bucketBusinessAreas}

// Open opens (or creates) the database at path and loads its contents.
func Open(ctx context.Context, path string, opts ...memory.Option) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path: %w", domain.ErrConfiguration)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w: %w", domain.ErrBackend, err)
	}
	// A single connection serializes writers inside the driver.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		saved_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w: %w", domain.ErrBackend, err)
	}

	s := &Store{db: db, path: path}
	s.Store = memory.New(append(opts, memory.WithCommitHook(s.persist))...)

	snap, err := s.load(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if snap != nil {
		s.Store.Restore(snap)
	}
	return s, nil
}

// Close closes the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Ping checks the database handle.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping: %w: %w", domain.ErrBackend, err)
	}
	return nil
}

func (s *Store) load(ctx context.Context) (*domain.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT bucket, payload FROM state`)
	if err != nil {
		return nil, fmt.Errorf("select state: %w: %w", domain.ErrBackend, err)
	}
	defer func() { _ = rows.Close() }()

	var (
		snap  domain.Snapshot
		found bool
	)
	for rows.Next() {
		var (
			bucket  string
			payload []byte
		)
		if err := rows.Scan(&bucket, &payload); err != nil {
			return nil, fmt.Errorf("scan state: %w: %w", domain.ErrBackend, err)
		}
		var target any
		switch bucket {
		case bucketAccounts:
			target = &snap.Accounts
		case bucketUseCases:
			target = &snap.UseCases
		case bucketUpdates:
			target = &snap.Updates
		case bucketPlatforms:
			target = &snap.PlatformStatuses
		case bucketBusinessAreas:
			target = &snap.BusinessAreas
		default:
			continue
		}
		if err := json.Unmarshal(payload, target); err != nil {
			return nil, fmt.Errorf("decode %s: %w", bucket, err)
		}
		found = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read state: %w: %w", domain.ErrBackend, err)
	}
	if !found {
		return nil, nil
	}
	return &snap, nil
}

func (s *Store) persist(ctx context.Context, snap *domain.Snapshot) (retErr error) {
	payloads := map[string]any{
		bucketAccounts:      snap.Accounts,
		bucketUseCases:      snap.UseCases,
		bucketUpdates:       snap.Updates,
		bucketPlatforms:     snap.PlatformStatuses,
		bucketBusinessAreas: snap.BusinessAreas,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w: %w", domain.ErrBackend, err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	savedAt := snap.TakenAt.UTC().Format(time.RFC3339Nano)
	for _, bucket := range buckets {
		data, err := json.Marshal(payloads[bucket])
		if err != nil {
			return fmt.Errorf("encode %s: %w", bucket, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO state(bucket, payload, saved_at) VALUES(?, ?, ?)
			 ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at`,
			bucket, data, savedAt,
		); err != nil {
			return fmt.Errorf("upsert %s: %w: %w", bucket, domain.ErrBackend, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w: %w", domain.ErrBackend, err)
	}
	return nil
}
