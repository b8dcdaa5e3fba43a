package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Store kinds.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Backup targets.
const (
	BackupTargetS3  = "s3"
	BackupTargetDir = "dir"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
	CRM      CRMConfig      `yaml:"crm"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Backup   BackupConfig   `yaml:"backup"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// StoreConfig selects the entity store realization.
type StoreConfig struct {
	Kind           string `yaml:"kind"             env:"STORE_KIND"             env-default:"memory"`
	SeedSampleData bool   `yaml:"seed_sample_data" env:"STORE_SEED_SAMPLE_DATA"`
	SQLitePath     string `yaml:"sqlite_path"      env:"STORE_SQLITE_PATH"      env-default:"./crm.db"`
}

// DatabaseConfig holds PostgreSQL connection settings. DSN, when set,
// overrides the individual connection fields.
type DatabaseConfig struct {
	DSN         string `yaml:"dsn"          env:"DATABASE_DSN"`
	Host        string `yaml:"host"         env:"DATABASE_HOST"`
	Port        int    `yaml:"port"         env:"DATABASE_PORT"         env-default:"5432"`
	User        string `yaml:"user"         env:"DATABASE_USER"`
	Token       string `yaml:"token"        env:"DATABASE_TOKEN"`
	Catalog     string `yaml:"catalog"      env:"DATABASE_CATALOG"`
	Schema      string `yaml:"schema"       env:"DATABASE_SCHEMA"       env-default:"public"`
	TablePrefix string `yaml:"table_prefix" env:"DATABASE_TABLE_PREFIX" env-default:"crm"`
	SSLMode     string `yaml:"sslmode"      env:"DATABASE_SSLMODE"      env-default:"prefer"`

	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// CRMConfig holds domain settings.
type CRMConfig struct {
	PlatformsRaw       string `yaml:"platforms"            env:"CRM_PLATFORMS"            env-default:"Databricks,Snowflake,Power Platform"`
	RecentUpdatesLimit int    `yaml:"recent_updates_limit" env:"CRM_RECENT_UPDATES_LIMIT" env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"   env:"METRICS_ENABLED"`
	Path      string `yaml:"path"      env:"METRICS_PATH"      env-default:"/metrics"`
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE" env-default:"crm"`
}

// BackupConfig holds export destination settings for cmd/backup.
type BackupConfig struct {
	Target          string `yaml:"target"            env:"BACKUP_TARGET"            env-default:"dir"`
	Dir             string `yaml:"dir"               env:"BACKUP_DIR"               env-default:"./backups"`
	S3Bucket        string `yaml:"s3_bucket"         env:"BACKUP_S3_BUCKET"`
	S3Prefix        string `yaml:"s3_prefix"         env:"BACKUP_S3_PREFIX"         env-default:"crm-backups/"`
	S3Region        string `yaml:"s3_region"         env:"BACKUP_S3_REGION"         env-default:"us-east-1"`
	S3Endpoint      string `yaml:"s3_endpoint"       env:"BACKUP_S3_ENDPOINT"`
	S3UsePathStyle  bool   `yaml:"s3_use_path_style" env:"BACKUP_S3_USE_PATH_STYLE" env-default:"false"`
	AccessKeyID     string `yaml:"access_key_id"     env:"BACKUP_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"BACKUP_SECRET_ACCESS_KEY"`
}

// defaults returns a Config holding the defaults that env-default tags cannot
// express. cleanenv applies a tag default to any zero field, so a bool that
// defaults to true would swallow an explicit false from YAML.
func defaults() Config {
	return Config{
		Store:   StoreConfig{SeedSampleData: true},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// Platforms returns the configured platform names in order.
func (c CRMConfig) Platforms() []string {
	var out []string
	for _, p := range strings.Split(c.PlatformsRaw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// MissingFields lists the connection parameters that are required but empty.
// With a DSN set nothing else is required.
func (d DatabaseConfig) MissingFields() []string {
	if d.DSN != "" {
		return nil
	}
	var missing []string
	if d.Host == "" {
		missing = append(missing, "host")
	}
	if d.User == "" {
		missing = append(missing, "user")
	}
	if d.Token == "" {
		missing = append(missing, "token")
	}
	if d.Catalog == "" {
		missing = append(missing, "catalog")
	}
	return missing
}

// ConnString returns the DSN, building it from the individual fields when no
// explicit DSN is configured.
func (d DatabaseConfig) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Token),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Catalog,
	}
	q := url.Values{}
	if d.SSLMode != "" {
		q.Set("sslmode", d.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
