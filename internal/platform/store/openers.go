package store

import (
	"context"
	"fmt"
	"time"

	"asistencia/internal/platform/store/pg"
)

// openPG opens pg and wraps it with our sql adapter.
// No eager ping here: pgxpool dials on first acquire, and the service is
// expected to come up even when Postgres is unreachable
func openPG(ctx context.Context, cfg Config, s *Store) (RowQuerier, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	connectTimeout := cfg.PG.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = 30 * time.Second
	}

	open := func(url string) (*pg.PG, error) {
		return pg.Open(ctx, pg.Config{
			URL:            url,
			MaxConns:       cfg.PG.MaxConns,
			SlowMs:         cfg.PG.SlowQueryMs,
			ConnectTimeout: connectTimeout,
		}, tracer)
	}

	p, err := open(cfg.PG.URL)
	if err != nil && cfg.PG.FallbackURL != "" {
		s.Log.Warn().Err(err).Msg("primary database url rejected, trying fallback")
		p, err = open(cfg.PG.FallbackURL)
	}
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	a := newPGAdapter(p)
	s.PG = a
	return a, nil
}
