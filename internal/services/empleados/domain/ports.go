package domain

import "context"

// QueryPort answers the directory tools
type QueryPort interface {
	Consultar(ctx context.Context, f Filtros) (Listado, error)
	Buscar(ctx context.Context, termino string) (Busqueda, error)
}

// LectorPort resolves one employee for other services.
// Returns perr.ErrNotFound when the id does not exist
type LectorPort interface {
	Resumen(ctx context.Context, empleadoID string) (Resumen, error)
}
