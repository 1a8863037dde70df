// Package module implements the punch-record module
package module

import (
	"asistencia/internal/mcp"
	"asistencia/internal/modkit"
	"asistencia/internal/modkit/repokit"
	"asistencia/internal/services/registros/domain"
	"asistencia/internal/services/registros/repo"
	"asistencia/internal/services/registros/service"
)

// Ports exposed by the registros module
type Ports struct {
	Query domain.QueryPort
}

// Module implements the registros service module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
}

// New constructs a new registros module
func New(deps modkit.Deps) *Module {
	svc := service.New(repokit.MustBind(repo.NewPG(), deps.PG))

	ports := Ports{Query: svc}
	return &Module{
		deps: deps,
		built: modkit.Build(
			modkit.WithName("registros"),
			modkit.WithPorts(ports),
			modkit.WithRegister(func(reg *mcp.Registry) { registerTools(reg, ports.Query) }),
		),
	}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return m.built.Name }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.built.Ports }

// RegisterTools satisfies modkit.Module
func (m *Module) RegisterTools(reg *mcp.Registry) { m.built.Register(reg) }
