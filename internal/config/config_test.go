package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// chdirTemp moves the test into an empty directory so that no stray
// config.yaml or .env is picked up.
func chdirTemp(t *testing.T) {
	t.Helper()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())
}

func validConfig() *Config {
	return &Config{
		Server:  ServerConfig{Host: "0.0.0.0", Port: 8080},
		Store:   StoreConfig{Kind: StoreMemory, SeedSampleData: true},
		CRM:     CRMConfig{PlatformsRaw: "Databricks,Snowflake,Power Platform", RecentUpdatesLimit: 10},
		Log:     LogConfig{Level: "info", Format: "json"},
		Metrics: MetricsConfig{Enabled: true, Path: "/metrics", Namespace: "crm"},
		Database: DatabaseConfig{
			Port: 5432, Schema: "public", TablePrefix: "crm", SSLMode: "prefer",
		},
	}
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"

store:
  kind: "postgres"
  seed_sample_data: false

database:
  host: "db.internal"
  user: "crm"
  token: "secret"
  catalog: "edip"
  schema: "sales"
  table_prefix: "edip"
  max_conns: 4

crm:
  platforms: "Databricks, Fabric"
  recent_updates_limit: 5

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	chdirTemp(t)
	path := writeFile(t, t.TempDir(), "config.yaml", validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want 5s", cfg.Server.ReadTimeout)
	}
	if cfg.Store.Kind != StorePostgres || cfg.Store.SeedSampleData {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Database.Schema != "sales" || cfg.Database.TablePrefix != "edip" {
		t.Errorf("database schema/prefix = %q/%q", cfg.Database.Schema, cfg.Database.TablePrefix)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("database.port = %d, want default 5432", cfg.Database.Port)
	}
	if got := cfg.CRM.Platforms(); len(got) != 2 || got[1] != "Fabric" {
		t.Errorf("crm.platforms = %v", got)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want text", cfg.Log.Format)
	}
}

func TestLoad_YAMLFalseOverridesTrueDefaults(t *testing.T) {
	chdirTemp(t)
	path := writeFile(t, t.TempDir(), "config.yaml", `
store:
  seed_sample_data: false
metrics:
  enabled: false
`)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.SeedSampleData {
		t.Error("store.seed_sample_data: false was ignored")
	}
	if cfg.Metrics.Enabled {
		t.Error("metrics.enabled: false was ignored")
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("metrics.path = %q, want default", cfg.Metrics.Path)
	}
}

func TestLoad_EnvFalseOverridesTrueDefaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STORE_SEED_SAMPLE_DATA", "false")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.SeedSampleData || cfg.Metrics.Enabled {
		t.Errorf("env false ignored: seed=%v metrics=%v", cfg.Store.SeedSampleData, cfg.Metrics.Enabled)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	chdirTemp(t)
	path := writeFile(t, t.TempDir(), "config.yaml", validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want warn (ENV override)", cfg.Log.Level)
	}
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Store.Kind != StoreMemory || !cfg.Store.SeedSampleData {
		t.Errorf("store = %+v, want seeded memory store", cfg.Store)
	}
	if got := cfg.CRM.Platforms(); len(got) != 3 {
		t.Errorf("default platforms = %v", got)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")
	writeFile(t, ".", ".env", "STORE_KIND=sqlite\nSTORE_SQLITE_PATH=/tmp/crm-test.db\n")
	// Registered so the variables loaded from .env are cleared afterwards.
	t.Setenv("STORE_KIND", "")
	t.Setenv("STORE_SQLITE_PATH", "")
	os.Unsetenv("STORE_KIND")
	os.Unsetenv("STORE_SQLITE_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Kind != StoreSQLite || cfg.Store.SQLitePath != "/tmp/crm-test.db" {
		t.Errorf("store = %+v, want values from .env", cfg.Store)
	}
}

func TestLoad_ExplicitEnvFileNotFound(t *testing.T) {
	chdirTemp(t)
	t.Setenv("ENV_FILE", "/nonexistent/.env")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit env file")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	chdirTemp(t)
	path := writeFile(t, t.TempDir(), "config.yaml", `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Defaults(t *testing.T) {
	t.Parallel()

	if err := validConfig().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_UnknownStoreKind(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Store.Kind = "mongo"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown store kind")
	}
}

func TestValidate_PostgresMissingFieldsAllowed(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Store.Kind = StorePostgres
	cfg.Database.Host = "db"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("missing connection parameters must not fail startup: %v", err)
	}
	missing := strings.Join(cfg.Database.MissingFields(), ",")
	if missing != "user,token,catalog" {
		t.Errorf("MissingFields() = %q, want user,token,catalog", missing)
	}
}

func TestLoad_PostgresWithoutDatabaseVars(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("STORE_KIND", "postgres")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Database.MissingFields()) != 4 {
		t.Errorf("MissingFields() = %v", cfg.Database.MissingFields())
	}
}

func TestValidate_PostgresDSNOverride(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Store.Kind = StorePostgres
	cfg.Database.DSN = "postgres://u:p@localhost:5432/crm"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_BadTablePrefix(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Store.Kind = StorePostgres
	cfg.Database.DSN = "postgres://localhost/crm"
	cfg.Database.TablePrefix = "crm; drop table x"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for non-identifier table prefix")
	}
}

func TestValidate_NoPlatforms(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.CRM.PlatformsRaw = " , "

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty platform catalog")
	}
}

func TestDatabaseConfig_ConnString(t *testing.T) {
	t.Parallel()

	d := DatabaseConfig{Host: "db", Port: 6543, User: "crm", Token: "p@ss", Catalog: "edip", SSLMode: "require"}
	got := d.ConnString()
	want := "postgres://crm:p%40ss@db:6543/edip?sslmode=require"
	if got != want {
		t.Errorf("ConnString() = %q, want %q", got, want)
	}

	d.DSN = "postgres://override"
	if d.ConnString() != "postgres://override" {
		t.Error("DSN must override individual fields")
	}
}

func TestBackupConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     BackupConfig
		wantErr bool
	}{
		{"dir", BackupConfig{Target: BackupTargetDir, Dir: "/tmp"}, false},
		{"dir missing", BackupConfig{Target: BackupTargetDir}, true},
		{"s3", BackupConfig{Target: BackupTargetS3, S3Bucket: "b"}, false},
		{"s3 no bucket", BackupConfig{Target: BackupTargetS3}, true},
		{"s3 half credentials", BackupConfig{Target: BackupTargetS3, S3Bucket: "b", AccessKeyID: "k"}, true},
		{"unknown", BackupConfig{Target: "ftp"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
