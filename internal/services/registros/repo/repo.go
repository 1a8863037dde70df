// Package repo provides the punch-record repository over Postgres
package repo

import (
	"context"

	"asistencia/internal/modkit/repokit"
	"asistencia/internal/platform/store"
	"asistencia/internal/services/registros/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the punch-record repository
type Storage interface {
	PorFecha(ctx context.Context, fecha string, f domain.Filtros) ([]domain.Registro, error)
	PorRango(ctx context.Context, inicio, fin string, f domain.FiltrosRango) ([]domain.RegistroRango, error)
	Ultimo(ctx context.Context, empleadoID string) (domain.UltimoRow, error)
	SinSalida(ctx context.Context, fecha string) ([]domain.Pendiente, error)
}

// PorFecha implements Storage. The restaurant filter matches by substring
// because kiosks report slightly different site spellings
func (s *pg) PorFecha(ctx context.Context, fecha string, f domain.Filtros) ([]domain.Registro, error) {
	const sql = `
		SELECT
			r.id,
			r.empleado_id,
			e.codigo_empleado,
			e.nombre || ' ' || e.apellido AS empleado_nombre,
			e.cargo,
			e.departamento,
			r.tipo_registro,
			r.punto_trabajo,
			r.fecha_registro::text AS fecha_registro,
			r.hora_registro::text AS hora_registro,
			r.confianza_reconocimiento AS confianza,
			r.observaciones
		FROM registros r
		JOIN empleados e ON r.empleado_id = e.id
		WHERE r.fecha_registro = $1::date
		  AND ($2::uuid IS NULL OR r.empleado_id = $2::uuid)
		  AND ($3::text IS NULL OR r.punto_trabajo ILIKE ('%' || $3::text || '%'))
		  AND ($4::text IS NULL OR r.tipo_registro = $4)
		ORDER BY r.hora_registro`

	rows, err := store.StructsByName[domain.Registro](ctx, s.q, sql,
		fecha, f.EmpleadoID, f.Restaurante, f.Tipo)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		// a zero recognition confidence reads as absent
		if rows[i].Confianza != nil && *rows[i].Confianza == 0 {
			rows[i].Confianza = nil
		}
	}
	return rows, nil
}

// PorRango implements Storage
func (s *pg) PorRango(ctx context.Context, inicio, fin string, f domain.FiltrosRango) ([]domain.RegistroRango, error) {
	const sql = `
		SELECT
			r.id,
			r.empleado_id,
			e.codigo_empleado,
			e.nombre || ' ' || e.apellido AS empleado_nombre,
			r.tipo_registro,
			r.punto_trabajo,
			r.fecha_registro::text AS fecha_registro,
			r.hora_registro::text AS hora_registro,
			r.observaciones
		FROM registros r
		JOIN empleados e ON r.empleado_id = e.id
		WHERE r.fecha_registro BETWEEN $1::date AND $2::date
		  AND ($3::uuid IS NULL OR r.empleado_id = $3::uuid)
		  AND ($4::text IS NULL OR r.punto_trabajo ILIKE ('%' || $4::text || '%'))
		ORDER BY r.fecha_registro, r.hora_registro`

	return store.StructsByName[domain.RegistroRango](ctx, s.q, sql,
		inicio, fin, f.EmpleadoID, f.Restaurante)
}

// Ultimo implements Storage. Returns perr.ErrNotFound when the employee
// has never punched
func (s *pg) Ultimo(ctx context.Context, empleadoID string) (domain.UltimoRow, error) {
	const sql = `
		SELECT
			r.tipo_registro,
			r.fecha_registro::text AS fecha_registro,
			r.hora_registro::text AS hora_registro,
			r.punto_trabajo,
			e.nombre || ' ' || e.apellido AS empleado_nombre
		FROM registros r
		JOIN empleados e ON r.empleado_id = e.id
		WHERE r.empleado_id = $1::uuid
		ORDER BY r.fecha_registro DESC, r.hora_registro DESC
		LIMIT 1`

	return store.StructByName[domain.UltimoRow](ctx, s.q, sql, empleadoID)
}

// SinSalida implements Storage. An employee counts as pending when the day
// has at least one ENTRADA and no SALIDA at all
func (s *pg) SinSalida(ctx context.Context, fecha string) ([]domain.Pendiente, error) {
	const sql = `
		WITH entradas AS (
			SELECT
				empleado_id,
				MIN(hora_registro) AS primera_entrada,
				punto_trabajo
			FROM registros
			WHERE fecha_registro = $1::date
			  AND tipo_registro = 'ENTRADA'
			GROUP BY empleado_id, punto_trabajo
		),
		salidas AS (
			SELECT DISTINCT empleado_id
			FROM registros
			WHERE fecha_registro = $1::date
			  AND tipo_registro = 'SALIDA'
		)
		SELECT
			e.id AS empleado_id,
			e.codigo_empleado,
			e.nombre || ' ' || e.apellido AS empleado_nombre,
			en.primera_entrada::text AS hora_entrada,
			en.punto_trabajo,
			EXTRACT(EPOCH FROM (NOW() - ($1::date + en.primera_entrada))) / 3600 AS horas_transcurridas
		FROM entradas en
		JOIN empleados e ON en.empleado_id = e.id
		LEFT JOIN salidas s ON en.empleado_id = s.empleado_id
		WHERE s.empleado_id IS NULL
		ORDER BY en.primera_entrada`

	return store.StructsByName[domain.Pendiente](ctx, s.q, sql, fecha)
}
