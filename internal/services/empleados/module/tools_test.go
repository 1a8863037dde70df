package module

import (
	"context"
	"encoding/json"
	"testing"

	"asistencia/internal/mcp"
	perr "asistencia/internal/platform/errors"
	"asistencia/internal/services/empleados/domain"
)

type fakeQuery struct {
	gotFiltros domain.Filtros
	gotTermino string
}

func (f *fakeQuery) Consultar(_ context.Context, fl domain.Filtros) (domain.Listado, error) {
	f.gotFiltros = fl
	return domain.Listado{Filtros: fl, Empleados: []domain.Empleado{}}, nil
}

func (f *fakeQuery) Buscar(_ context.Context, termino string) (domain.Busqueda, error) {
	f.gotTermino = termino
	return domain.Busqueda{TerminoBusqueda: termino, Empleados: []domain.Coincidencia{}}, nil
}

func setup(t *testing.T) (*mcp.Registry, *fakeQuery) {
	t.Helper()
	reg := mcp.NewRegistry()
	q := &fakeQuery{}
	registerTools(reg, q)
	return reg, q
}

func TestRegisterTools_NombresYOrden(t *testing.T) {
	reg, _ := setup(t)
	tools := reg.List()
	if len(tools) != 2 {
		t.Fatalf("tools = %d", len(tools))
	}
	if tools[0].Name != "consultar_empleados" || tools[1].Name != "buscar_empleado" {
		t.Fatalf("orden de registro: %s, %s", tools[0].Name, tools[1].Name)
	}
}

func TestConsultarEmpleados_ActivosSoloPorDefecto(t *testing.T) {
	reg, q := setup(t)
	tool, ok := reg.Lookup("consultar_empleados")
	if !ok {
		t.Fatalf("herramienta no registrada")
	}

	if _, err := tool.Handler(context.Background(), nil); err != nil {
		t.Fatalf("sin argumentos: %v", err)
	}
	if !q.gotFiltros.ActivosSolo {
		t.Fatalf("activos_solo ausente debe valer true")
	}

	raw := json.RawMessage(`{"activos_solo": false, "restaurante": "Sede Norte"}`)
	if _, err := tool.Handler(context.Background(), raw); err != nil {
		t.Fatalf("con argumentos: %v", err)
	}
	if q.gotFiltros.ActivosSolo {
		t.Fatalf("activos_solo=false explicito debe respetarse")
	}
	if q.gotFiltros.Restaurante == nil || *q.gotFiltros.Restaurante != "Sede Norte" {
		t.Fatalf("restaurante = %v", q.gotFiltros.Restaurante)
	}
}

func TestBuscarEmpleado_TerminoRequerido(t *testing.T) {
	reg, q := setup(t)
	tool, _ := reg.Lookup("buscar_empleado")

	if _, err := tool.Handler(context.Background(), json.RawMessage(`{}`)); err == nil {
		t.Fatalf("termino ausente debe fallar")
	} else if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("codigo = %v", perr.CodeOf(err))
	}

	if _, err := tool.Handler(context.Background(), json.RawMessage(`{"termino":"EMP001"}`)); err != nil {
		t.Fatalf("busqueda valida: %v", err)
	}
	if q.gotTermino != "EMP001" {
		t.Fatalf("termino = %q", q.gotTermino)
	}
}
