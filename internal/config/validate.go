package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Store.Kind {
	case StoreMemory:
	case StorePostgres:
		// Missing connection parameters are not fatal: the store starts
		// unconfigured and reports domain.ErrConfiguration per operation.
		if !isIdentifier(c.Database.Schema) {
			return fmt.Errorf("database.schema %q is not a valid identifier", c.Database.Schema)
		}
		if !isIdentifier(c.Database.TablePrefix) {
			return fmt.Errorf("database.table_prefix %q is not a valid identifier", c.Database.TablePrefix)
		}
	case StoreSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("store.sqlite_path is required for the sqlite store")
		}
	default:
		return fmt.Errorf("store.kind must be one of memory, postgres, sqlite (got %q)", c.Store.Kind)
	}

	if len(c.CRM.Platforms()) == 0 {
		return fmt.Errorf("crm.platforms must name at least one platform")
	}
	if c.CRM.RecentUpdatesLimit <= 0 {
		return fmt.Errorf("crm.recent_updates_limit must be > 0 (got %d)", c.CRM.RecentUpdatesLimit)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

// Validate checks the backup destination. Only cmd/backup needs it, so it is
// not part of Config.Validate.
func (b BackupConfig) Validate() error {
	switch b.Target {
	case BackupTargetDir:
		if b.Dir == "" {
			return fmt.Errorf("backup.dir is required for the dir target")
		}
	case BackupTargetS3:
		if b.S3Bucket == "" {
			return fmt.Errorf("backup.s3_bucket is required for the s3 target")
		}
		if (b.AccessKeyID == "") != (b.SecretAccessKey == "") {
			return fmt.Errorf("backup access key id and secret must be set together")
		}
	default:
		return fmt.Errorf("backup.target must be s3 or dir (got %q)", b.Target)
	}
	return nil
}

// isIdentifier reports whether s is a plain SQL identifier that can be
// interpolated into statements without quoting.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
