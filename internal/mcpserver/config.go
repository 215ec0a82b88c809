package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/chipsenkbeil/typed-path-sub000/grammar"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Grammar used when a tool call does not name one.
	DefaultGrammar string

	// Input limits.
	MaxInputLength int
	MaxPushPaths   int

	// Components tool pagination.
	ComponentLimit int
	MaxLimit       int

	// Validate reports component problems in inspect results by default.
	Validate bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from TYPEDPATH_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		DefaultGrammar: envGrammar("TYPEDPATH_GRAMMAR", grammar.NamePosix),
		MaxInputLength: envInt("TYPEDPATH_MAX_INPUT", 32*1024),
		MaxPushPaths:   envInt("TYPEDPATH_MAX_PUSH_PATHS", 64),
		ComponentLimit: envInt("TYPEDPATH_COMPONENT_LIMIT", 100),
		MaxLimit:       envInt("TYPEDPATH_MAX_LIMIT", 1000),
		Validate:       envBool("TYPEDPATH_VALIDATE", true),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

// envGrammar returns the canonical name of the grammar named by key.
func envGrammar(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	g, ok := grammar.ByName(v)
	if !ok {
		slog.Warn("invalid grammar env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return g.Name()
}
