package store

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
)

// TestOpen_Disabled_LeavesPGNil covers the no-backend path
func TestOpen_Disabled_LeavesPGNil(t *testing.T) {
	t.Parallel()

	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if s == nil || s.PG != nil {
		t.Fatalf("expected store with nil PG, got %#v", s)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

// TestOpen_PGEnabled_BadURL_BubblesError covers the PG parse error path
func TestOpen_PGEnabled_BadURL_BubblesError(t *testing.T) {
	t.Parallel()

	cfg := Config{
		PG: PGConfig{
			Enabled:  true,
			URL:      "://bad", // parse error inside pg.Open
			MaxConns: 1,
		},
	}

	s, err := Open(context.Background(), cfg)
	if err == nil {
		t.Fatalf("expected Open error for bad PG URL, got store=%#v", s)
	}
	if s != nil {
		t.Fatalf("expected nil store on error, got %#v", s)
	}
}

// TestOpen_FallbackURL_UsedWhenPrimaryUnparseable covers the fallback path
func TestOpen_FallbackURL_UsedWhenPrimaryUnparseable(t *testing.T) {
	t.Parallel()

	cfg := Config{
		PG: PGConfig{
			Enabled:     true,
			URL:         "://bad",
			FallbackURL: "postgres://u:p@localhost:5432/asistencia",
			MaxConns:    2,
		},
	}

	s, err := Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("expected fallback to rescue Open, got %v", err)
	}
	if s.PG == nil {
		t.Fatalf("PG not initialized via fallback")
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

// TestOpen_OptionsApplied_NoPanicOnWithLogger exercises the WithLogger option path
func TestOpen_OptionsApplied_NoPanicOnWithLogger(t *testing.T) {
	t.Parallel()

	// Build a zero-value zerolog.Logger (valid, no-op)
	var zl zerolog.Logger

	s, err := Open(context.Background(), Config{}, WithLogger(zl))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if s == nil {
		t.Fatalf("Open returned nil store")
	}
	if e := s.Close(context.Background()); e != nil {
		t.Fatalf("Close on empty store returned error: %v", e)
	}
}

// TestGuard_NilAndEmpty covers the guard edges; with a lazy pool a Guard on a
// store whose database is absent would dial, so only the cheap paths run here
func TestGuard_NilAndEmpty(t *testing.T) {
	t.Parallel()

	var nilStore *Store
	if err := nilStore.Guard(context.Background()); err == nil {
		t.Fatalf("nil store Guard should error")
	}

	s := &Store{}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("empty store Guard should be nil, got %v", err)
	}
}
