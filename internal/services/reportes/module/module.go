// Package module implements the hour-report module
package module

import (
	"asistencia/internal/mcp"
	"asistencia/internal/modkit"
	"asistencia/internal/modkit/repokit"
	empdomain "asistencia/internal/services/empleados/domain"
	"asistencia/internal/services/reportes/domain"
	"asistencia/internal/services/reportes/repo"
	"asistencia/internal/services/reportes/service"
)

// Ports exposed by the reportes module
type Ports struct {
	Query domain.QueryPort
}

// Module implements the reportes service module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
}

// New constructs a new reportes module. The employee lector comes from the
// empleados module so both services resolve names the same way
func New(deps modkit.Deps, lector empdomain.LectorPort) *Module {
	svc := service.New(repokit.MustBind(repo.NewPG(), deps.PG), lector)

	ports := Ports{Query: svc}
	return &Module{
		deps: deps,
		built: modkit.Build(
			modkit.WithName("reportes"),
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
