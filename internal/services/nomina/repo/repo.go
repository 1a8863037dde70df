// Package repo provides the payroll repository over Postgres
package repo

import (
	"context"

	"asistencia/internal/modkit/repokit"
	"asistencia/internal/platform/store"
	"asistencia/internal/services/nomina/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the payroll repository
type Storage interface {
	EventosQuincena(ctx context.Context, inicio, fin string, restaurante *string) ([]domain.EventoQuincena, error)
	Tarifas(ctx context.Context) (map[string]string, error)
}

// EventosQuincena implements Storage
func (s *pg) EventosQuincena(ctx context.Context, inicio, fin string, restaurante *string) ([]domain.EventoQuincena, error) {
	const sql = `
		SELECT
			r.empleado_id,
			e.codigo_empleado,
			e.nombre || ' ' || e.apellido AS nombre,
			e.cargo,
			e.departamento,
			e.liquida_dominical,
			r.fecha_registro::text AS fecha_registro,
			r.tipo_registro,
			r.hora_registro::text AS hora_registro
		FROM registros r
		JOIN empleados e ON r.empleado_id = e.id
		WHERE r.fecha_registro BETWEEN $1::date AND $2::date
		  AND ($3::text IS NULL OR r.punto_trabajo = $3)
		  AND e.activo = TRUE
		ORDER BY e.apellido, e.nombre, r.fecha_registro, r.hora_registro`

	return store.StructsByName[domain.EventoQuincena](ctx, s.q, sql, inicio, fin, restaurante)
}

// Tarifas implements Storage. Only the three hourly-rate keys matter here,
// missing rows fall back to the statutory defaults downstream
func (s *pg) Tarifas(ctx context.Context) (map[string]string, error) {
	const sql = `
		SELECT clave, valor FROM configuracion
		WHERE clave IN ('valor_hora_ordinaria', 'valor_hora_extra_diurna', 'valor_hora_extra_nocturna')`

	rows, err := store.Maps(ctx, s.q, sql)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		clave, _ := row["clave"].(string)
		valor, _ := row["valor"].(string)
		if clave != "" {
			out[clave] = valor
		}
	}
	return out, nil
}
