// Package modkit provides module wiring and core deps
package modkit

import (
	"asistencia/internal/modkit/repokit"
	"asistencia/internal/platform/config"
	"asistencia/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
	PG  repokit.Queryer
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check the optional store
func (d Deps) ZeroOK() bool { return true }
