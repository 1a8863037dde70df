// Package repo provides the hour-report repository over Postgres
package repo

import (
	"context"

	"asistencia/internal/modkit/repokit"
	"asistencia/internal/platform/store"
	"asistencia/internal/services/reportes/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the hour-report repository. Reports filter by exact site
// name, unlike the punch queries which match by substring
type Storage interface {
	EventosDia(ctx context.Context, empleadoID, fecha string) ([]domain.EventoDia, error)
	EventosSemana(ctx context.Context, inicio, fin string, empleadoID, restaurante *string) ([]domain.EventoSemana, error)
	EventosMes(ctx context.Context, anio, mes int, empleadoID, restaurante *string) ([]domain.EventoMes, error)
	Estadisticas(ctx context.Context, inicio, fin string, restaurante *string) ([]domain.FilaEstadistica, error)
	EmpleadosUnicos(ctx context.Context, inicio, fin string, restaurante *string) (int, error)
	Configuraciones(ctx context.Context, clave *string) ([]domain.Configuracion, error)
}

// EventosDia implements Storage
func (s *pg) EventosDia(ctx context.Context, empleadoID, fecha string) ([]domain.EventoDia, error) {
	const sql = `
		SELECT
			tipo_registro,
			hora_registro::text AS hora_registro,
			observaciones
		FROM registros
		WHERE empleado_id = $1::uuid
		  AND fecha_registro = $2::date
		ORDER BY hora_registro`

	return store.StructsByName[domain.EventoDia](ctx, s.q, sql, empleadoID, fecha)
}

// EventosSemana implements Storage. Inactive employees never appear in reports
func (s *pg) EventosSemana(ctx context.Context, inicio, fin string, empleadoID, restaurante *string) ([]domain.EventoSemana, error) {
	const sql = `
		SELECT
			r.empleado_id,
			e.codigo_empleado,
			e.nombre || ' ' || e.apellido AS empleado_nombre,
			e.liquida_dominical,
			r.fecha_registro::text AS fecha_registro,
			r.tipo_registro,
			r.hora_registro::text AS hora_registro
		FROM registros r
		JOIN empleados e ON r.empleado_id = e.id
		WHERE r.fecha_registro BETWEEN $1::date AND $2::date
		  AND ($3::uuid IS NULL OR r.empleado_id = $3::uuid)
		  AND ($4::text IS NULL OR r.punto_trabajo = $4)
		  AND e.activo = TRUE
		ORDER BY e.apellido, e.nombre, r.fecha_registro, r.hora_registro`

	return store.StructsByName[domain.EventoSemana](ctx, s.q, sql, inicio, fin, empleadoID, restaurante)
}

// EventosMes implements Storage
func (s *pg) EventosMes(ctx context.Context, anio, mes int, empleadoID, restaurante *string) ([]domain.EventoMes, error) {
	const sql = `
		SELECT
			r.empleado_id,
			e.codigo_empleado,
			e.nombre,
			e.apellido,
			e.cargo,
			e.departamento,
			e.liquida_dominical,
			r.fecha_registro::text AS fecha_registro,
			r.tipo_registro,
			r.hora_registro::text AS hora_registro
		FROM registros r
		JOIN empleados e ON r.empleado_id = e.id
		WHERE EXTRACT(YEAR FROM r.fecha_registro) = $1
		  AND EXTRACT(MONTH FROM r.fecha_registro) = $2
		  AND ($3::uuid IS NULL OR r.empleado_id = $3::uuid)
		  AND ($4::text IS NULL OR r.punto_trabajo = $4)
		  AND e.activo = TRUE
		ORDER BY e.apellido, e.nombre, r.fecha_registro, r.hora_registro`

	return store.StructsByName[domain.EventoMes](ctx, s.q, sql, anio, mes, empleadoID, restaurante)
}

// Estadisticas implements Storage
func (s *pg) Estadisticas(ctx context.Context, inicio, fin string, restaurante *string) ([]domain.FilaEstadistica, error) {
	const sql = `
		SELECT
			COUNT(*) AS total_registros,
			COUNT(DISTINCT empleado_id) AS empleados_unicos,
			COUNT(*) FILTER (WHERE tipo_registro = 'ENTRADA') AS entradas,
			COUNT(*) FILTER (WHERE tipo_registro = 'SALIDA') AS salidas,
			COUNT(*) FILTER (WHERE observaciones LIKE '%FORZADO%') AS forzados,
			punto_trabajo
		FROM registros
		WHERE fecha_registro BETWEEN $1::date AND $2::date
		  AND ($3::text IS NULL OR punto_trabajo = $3)
		GROUP BY punto_trabajo`

	return store.StructsByName[domain.FilaEstadistica](ctx, s.q, sql, inicio, fin, restaurante)
}

// EmpleadosUnicos implements Storage. Counted globally because summing the
// per-site distinct counts would double employees who punch at several sites
func (s *pg) EmpleadosUnicos(ctx context.Context, inicio, fin string, restaurante *string) (int, error) {
	const sql = `
		SELECT COUNT(DISTINCT empleado_id) AS total
		FROM registros
		WHERE fecha_registro BETWEEN $1::date AND $2::date
		  AND ($3::text IS NULL OR punto_trabajo = $3)`

	total, err := store.Scalar[int64](ctx, s.q, sql, inicio, fin, restaurante)
	return int(total), err
}

// Configuraciones implements Storage
func (s *pg) Configuraciones(ctx context.Context, clave *string) ([]domain.Configuracion, error) {
	const sql = `
		SELECT clave, valor, descripcion, tipo_dato
		FROM configuracion
		WHERE ($1::text IS NULL OR clave = $1)
		ORDER BY clave`

	return store.StructsByName[domain.Configuracion](ctx, s.q, sql, clave)
}
