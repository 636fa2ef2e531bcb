// Package config reads the server's settings from the environment. Every
// value except DATABASE_URL has a default; bad values are reported together
// so one restart fixes them all.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config is the server's runtime configuration.
type Config struct {
	Port        string // PORT, default "8080"
	DatabaseURL string // DATABASE_URL, required

	// LogLevel comes from LOG_LEVEL (debug, info, warn, error). Default info.
	LogLevel slog.Level

	// CORSOrigins comes from the comma-separated CORS_ORIGINS. Defaults to
	// the Vite dev server.
	CORSOrigins []string

	MaxBodyBytes int64 // MAX_BODY_BYTES, default 1 MiB

	// PlannerTables optionally points at a YAML file overriding the
	// planner's policy tables (PLANNER_TABLES).
	PlannerTables string
	// PlannerLocale picks the destination name written into plans
	// (PLANNER_LOCALE, default "en").
	PlannerLocale string

	MigrateOnStart bool // MIGRATE_ON_START
}

// Load builds a Config from the environment.
func Load() (Config, error) {
	var e env
	cfg := Config{
		Port:           e.str("PORT", "8080"),
		DatabaseURL:    e.required("DATABASE_URL"),
		LogLevel:       e.level("LOG_LEVEL", slog.LevelInfo),
		CORSOrigins:    splitCSV(e.str("CORS_ORIGINS", "http://localhost:5173")),
		MaxBodyBytes:   e.positiveInt("MAX_BODY_BYTES", 1<<20),
		PlannerTables:  e.str("PLANNER_TABLES", ""),
		PlannerLocale:  e.str("PLANNER_LOCALE", "en"),
		MigrateOnStart: e.boolean("MIGRATE_ON_START", false),
	}
	if err := e.err(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// env reads variables and remembers which ones were missing or malformed.
type env struct {
	missing, invalid []string
}

func (e *env) str(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (e *env) required(key string) string {
	v := e.str(key, "")
	if v == "" {
		e.missing = append(e.missing, key)
	}
	return v
}

func (e *env) level(key string, fallback slog.Level) slog.Level {
	raw := e.str(key, "")
	if raw == "" {
		return fallback
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(raw)); err != nil {
		e.invalid = append(e.invalid, key)
		return fallback
	}
	return l
}

func (e *env) positiveInt(key string, fallback int64) int64 {
	raw := e.str(key, "")
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n < 1 {
		e.invalid = append(e.invalid, key)
		return fallback
	}
	return n
}

func (e *env) boolean(key string, fallback bool) bool {
	raw := e.str(key, "")
	if raw == "" {
		return fallback
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		e.invalid = append(e.invalid, key)
		return fallback
	}
	return b
}

func (e *env) err() error {
	switch {
	case len(e.missing) > 0:
		return fmt.Errorf("required environment variables not set: %s", strings.Join(e.missing, ", "))
	case len(e.invalid) > 0:
		return fmt.Errorf("invalid environment variables: %s", strings.Join(e.invalid, ", "))
	}
	return nil
}

func splitCSV(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
