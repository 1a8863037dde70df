package modkit

import (
	"asistencia/internal/mcp"
)

// Option mutates build configuration for a module
type Option func(*buildCfg)

// buildCfg is internal wiring state for options
type buildCfg struct {
	name     string
	ports    any
	register func(*mcp.Registry)
}

// WithName sets a module name used in logs and registry
func WithName(name string) Option {
	return func(c *buildCfg) { c.name = name }
}

// WithPorts injects cross module ports declared by another module
// the concrete type is owned by the importing module
func WithPorts[T any](p T) Option {
	return func(c *buildCfg) { c.ports = p }
}

// WithRegister sets the function that attaches the module's tools to the registry
func WithRegister(fn func(*mcp.Registry)) Option {
	return func(c *buildCfg) { c.register = fn }
}
