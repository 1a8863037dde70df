package modkit

import (
	"asistencia/internal/mcp"
)

// Module is the common surface for tool modules that register handlers and expose ports
// keep this tiny so modules stay decoupled
type Module interface {
	// RegisterTools adds the module's tools to the process-wide registry
	RegisterTools(reg *mcp.Registry)
	// Ports returns a module specific port set interface for cross wiring
	Ports() any

	// Name returns the module name
	Name() string
}

// Builder constructs a Module from shared deps and options
// modules typically expose New(deps Deps, opts ...Option) Module and may delegate to this pattern
type Builder func(Deps, ...Option) Module
