// Package blob writes export archives to a backup target: a local directory
// or an S3-compatible bucket.
package blob

import (
	"context"
	"fmt"

	"github.com/heartmarshall/edip-crm/internal/config"
)

// Object describes a stored archive.
type Object struct {
	Key  string
	Size int64
}

// Sink stores archives under a key.
type Sink interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (Object, error)
	List(ctx context.Context) ([]Object, error)
}

// Open builds the sink selected by cfg.Target.
func Open(ctx context.Context, cfg config.BackupConfig) (Sink, error) {
	switch cfg.Target {
	case config.BackupTargetDir:
		return NewDir(cfg.Dir)
	case config.BackupTargetS3:
		return NewS3(ctx, S3Config{
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			PathStyle:       cfg.S3UsePathStyle,
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
		})
	default:
		return nil, fmt.Errorf("unknown backup target %q", cfg.Target)
	}
}
