package domain

import "context"

// QueryPort answers the payroll tool
type QueryPort interface {
	Quincenal(ctx context.Context, anio, mes, quincena int, restaurante *string) (Resumen, error)
}
