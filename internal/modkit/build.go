package modkit

import (
	"asistencia/internal/mcp"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name  string
	Ports any

	// registration hook set via options and exposed to modules
	Register func(*mcp.Registry)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	// default for the hook
	if c.register == nil {
		c.register = func(*mcp.Registry) {}
	}
	return Built{
		Name:     c.name,
		Ports:    c.ports,
		Register: c.register,
	}
}
