// Package cliconfig holds the CLI and MCP server's own runtime settings —
// not the DSL config that reshape.Execute consumes. Grounded on
// erraggy-oastools/internal/mcpserver/config.go's loadConfig() pattern:
// a struct populated once from RESHAPE_* environment variables, each with
// a hardcoded fallback.
package cliconfig

import (
	"os"
	"strings"
)

// Settings holds the CLI's runtime settings. Only Color is read (as the
// fallback when --color is unset); DefaultTimezone and DefaultFormat are
// loaded but no command or operator reads them.
type Settings struct {
	DefaultTimezone string
	DefaultFormat   string
	Color           string
}

// Load reads RESHAPE_* environment variables, falling back to hardcoded
// defaults on an absent or malformed value.
func Load() Settings {
	return Settings{
		DefaultTimezone: envString("RESHAPE_DEFAULT_TIMEZONE", "UTC"),
		DefaultFormat:   envString("RESHAPE_DEFAULT_FORMAT", "iso8601"),
		Color:           envString("RESHAPE_COLOR", "auto"),
	}
}

func envString(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

// EnvBool mirrors the teacher's envFlag: true unless the variable is unset,
// empty, "0", or "false" (case-insensitive).
func EnvBool(key string) bool {
	v := os.Getenv(key)
	return v != "" && v != "0" && !strings.EqualFold(v, "false")
}
