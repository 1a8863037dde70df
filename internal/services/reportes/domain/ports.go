package domain

import "context"

// QueryPort answers the hour-report tools.
// Dia returns DiaEmpleado, DiaSinRegistros or NoEncontrado depending on
// what the data allows; Configuracion returns one row or the list shape
type QueryPort interface {
	Dia(ctx context.Context, empleadoID, fecha string) (any, error)
	Semanal(ctx context.Context, fechaSemana string, f Filtros) (Semana, error)
	Mensual(ctx context.Context, anio, mes int, f Filtros) (Mes, error)
	Estadisticas(ctx context.Context, inicio, fin string, restaurante *string) (Estadisticas, error)
	Configuracion(ctx context.Context, clave string) (any, error)
}
