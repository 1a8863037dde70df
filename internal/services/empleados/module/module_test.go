package module

import (
	"context"
	"testing"

	modreg "asistencia/internal/modkit/module"
	"asistencia/internal/services/empleados/domain"
)

type fakeLector struct{}

func (fakeLector) Resumen(context.Context, string) (domain.Resumen, error) {
	return domain.Resumen{ID: "e1", Nombre: "Ana", Apellido: "Diaz"}, nil
}

// the lector port travels through the bootstrap registry, which is how
// dependent modules resolve it without importing this package's wiring
func TestPorts_SeResuelvenPorElRegistro(t *testing.T) {
	modreg.Reset()
	t.Cleanup(modreg.Reset)

	modreg.Register("empleados", Ports{Lector: fakeLector{}})

	ports, ok := modreg.PortsAs[Ports]("empleados")
	if !ok || ports.Lector == nil {
		t.Fatalf("ports no resueltos: ok=%v", ok)
	}
	r, err := ports.Lector.Resumen(context.Background(), "e1")
	if err != nil || r.ID != "e1" {
		t.Fatalf("lector resuelto por el registro: %v %+v", err, r)
	}
}
