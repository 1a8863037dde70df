package store

import "time"

// Config aggregates backend configuration
type Config struct {
	AppName string

	PG PGConfig
}

// PGConfig configures postgres connectivity and tracing
type PGConfig struct {
	Enabled bool
	URL     string

	// FallbackURL is tried when URL cannot be parsed (mirrors the
	// DATABASE_URL_ASYNC / DATABASE_URL_FALLBACK contract)
	FallbackURL string

	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// ConnectTimeout bounds each connection attempt, default 30s
	ConnectTimeout time.Duration
}
