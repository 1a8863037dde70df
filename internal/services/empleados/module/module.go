// Package module implements the employee directory module
package module

import (
	"asistencia/internal/mcp"
	"asistencia/internal/modkit"
	"asistencia/internal/modkit/repokit"
	"asistencia/internal/services/empleados/domain"
	"asistencia/internal/services/empleados/repo"
	"asistencia/internal/services/empleados/service"
)

// Ports exposed by the empleados module
type Ports struct {
	Query  domain.QueryPort
	Lector domain.LectorPort
}

// Module implements the empleados service module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
}

// New constructs a new empleados module
func New(deps modkit.Deps) *Module {
	svc := service.New(repokit.MustBind(repo.NewPG(), deps.PG))

	ports := Ports{
		Query:  svc,
		Lector: svc,
	}
	return &Module{
		deps: deps,
		built: modkit.Build(
			modkit.WithName("empleados"),
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
