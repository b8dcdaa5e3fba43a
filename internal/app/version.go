package app

import (
	"fmt"
	"log/slog"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/edip-crm/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// versionAttrs returns the build identifiers as log attributes for the
// startup line of each command.
func versionAttrs() []any {
	return []any{
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("built", BuildTime),
	}
}
