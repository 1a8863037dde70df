package module

import (
	"context"
	"encoding/json"
	"testing"

	"asistencia/internal/mcp"
	perr "asistencia/internal/platform/errors"
	"asistencia/internal/services/registros/domain"
)

type fakeQuery struct {
	gotFecha   string
	gotFiltros domain.Filtros
	gotInicio  string
	gotFin     string
	gotID      string
}

func (f *fakeQuery) ConsultarFecha(_ context.Context, fecha string, fl domain.Filtros) (domain.Dia, error) {
	f.gotFecha, f.gotFiltros = fecha, fl
	return domain.Dia{Fecha: fecha}, nil
}

func (f *fakeQuery) ConsultarRango(_ context.Context, inicio, fin string, _ domain.FiltrosRango) (domain.Rango, error) {
	f.gotInicio, f.gotFin = inicio, fin
	return domain.Rango{}, nil
}

func (f *fakeQuery) Ultimo(_ context.Context, id string) (domain.Ultimo, error) {
	f.gotID = id
	return domain.Ultimo{EmpleadoID: id}, nil
}

func (f *fakeQuery) SinSalida(_ context.Context, fecha string) (domain.SinSalida, error) {
	f.gotFecha = fecha
	return domain.SinSalida{Fecha: fecha}, nil
}

func setup(t *testing.T) (*mcp.Registry, *fakeQuery) {
	t.Helper()
	reg := mcp.NewRegistry()
	q := &fakeQuery{}
	registerTools(reg, q)
	return reg, q
}

func TestRegisterTools_CuatroHerramientas(t *testing.T) {
	reg, _ := setup(t)
	if reg.Len() != 4 {
		t.Fatalf("tools = %d", reg.Len())
	}
	for _, name := range []string{
		"consultar_registros_fecha",
		"consultar_registros_rango",
		"obtener_ultimo_registro",
		"empleados_sin_salida",
	} {
		if _, ok := reg.Lookup(name); !ok {
			t.Fatalf("falta %s", name)
		}
	}
}

func TestConsultarRegistrosFecha_ValidaArgumentos(t *testing.T) {
	reg, q := setup(t)
	tool, _ := reg.Lookup("consultar_registros_fecha")

	if _, err := tool.Handler(context.Background(), json.RawMessage(`{}`)); !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("fecha ausente: %v", err)
	}
	if _, err := tool.Handler(context.Background(), json.RawMessage(`{"fecha":"2025-03-10","tipo":"ALMUERZO"}`)); err == nil {
		t.Fatalf("tipo fuera de ENTRADA/SALIDA debe fallar")
	}
	if _, err := tool.Handler(context.Background(), json.RawMessage(`{"fecha":"2025-03-10","empleado_id":"no-es-uuid"}`)); err == nil {
		t.Fatalf("empleado_id invalido debe fallar")
	}

	raw := json.RawMessage(`{"fecha":"2025-03-10","tipo":"ENTRADA","restaurante":"Norte"}`)
	if _, err := tool.Handler(context.Background(), raw); err != nil {
		t.Fatalf("argumentos validos: %v", err)
	}
	if q.gotFecha != "2025-03-10" || q.gotFiltros.Tipo == nil || *q.gotFiltros.Tipo != "ENTRADA" {
		t.Fatalf("argumentos no propagados: %q %+v", q.gotFecha, q.gotFiltros)
	}
}

func TestConsultarRegistrosRango_RequiereAmbasFechas(t *testing.T) {
	reg, q := setup(t)
	tool, _ := reg.Lookup("consultar_registros_rango")

	if _, err := tool.Handler(context.Background(), json.RawMessage(`{"fecha_inicio":"2025-03-01"}`)); err == nil {
		t.Fatalf("fecha_fin ausente debe fallar")
	}

	raw := json.RawMessage(`{"fecha_inicio":"2025-03-01","fecha_fin":"2025-03-15"}`)
	if _, err := tool.Handler(context.Background(), raw); err != nil {
		t.Fatalf("rango valido: %v", err)
	}
	if q.gotInicio != "2025-03-01" || q.gotFin != "2025-03-15" {
		t.Fatalf("rango no propagado: %q..%q", q.gotInicio, q.gotFin)
	}
}

func TestObtenerUltimoRegistro_RequiereUUID(t *testing.T) {
	reg, q := setup(t)
	tool, _ := reg.Lookup("obtener_ultimo_registro")

	if _, err := tool.Handler(context.Background(), json.RawMessage(`{"empleado_id":"123"}`)); err == nil {
		t.Fatalf("uuid invalido debe fallar")
	}

	raw := json.RawMessage(`{"empleado_id":"7b0c2c3a-0f6e-4bde-9a2f-1c9f6f3a9e01"}`)
	if _, err := tool.Handler(context.Background(), raw); err != nil {
		t.Fatalf("uuid valido: %v", err)
	}
	if q.gotID != "7b0c2c3a-0f6e-4bde-9a2f-1c9f6f3a9e01" {
		t.Fatalf("empleado_id = %q", q.gotID)
	}
}

func TestEmpleadosSinSalida_FechaOpcional(t *testing.T) {
	reg, q := setup(t)
	tool, _ := reg.Lookup("empleados_sin_salida")

	if _, err := tool.Handler(context.Background(), nil); err != nil {
		t.Fatalf("sin argumentos: %v", err)
	}
	if q.gotFecha != "" {
		t.Fatalf("fecha vacia debe llegar al servicio tal cual")
	}

	if _, err := tool.Handler(context.Background(), json.RawMessage(`{"fecha":"2025-03-10"}`)); err != nil {
		t.Fatalf("fecha valida: %v", err)
	}
	if q.gotFecha != "2025-03-10" {
		t.Fatalf("fecha = %q", q.gotFecha)
	}
}
