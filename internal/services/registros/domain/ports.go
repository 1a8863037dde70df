package domain

import "context"

// QueryPort answers the punch-record tools
type QueryPort interface {
	ConsultarFecha(ctx context.Context, fecha string, f Filtros) (Dia, error)
	ConsultarRango(ctx context.Context, inicio, fin string, f FiltrosRango) (Rango, error)
	Ultimo(ctx context.Context, empleadoID string) (Ultimo, error)
	SinSalida(ctx context.Context, fecha string) (SinSalida, error)
}
