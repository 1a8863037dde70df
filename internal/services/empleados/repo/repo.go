// Package repo provides the employee directory repository over Postgres
package repo

import (
	"context"

	"asistencia/internal/modkit/repokit"
	"asistencia/internal/platform/store"
	"asistencia/internal/services/empleados/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the employee directory repository
type Storage interface {
	Listar(ctx context.Context, f domain.Filtros) ([]domain.Empleado, error)
	Buscar(ctx context.Context, termino string) ([]domain.Coincidencia, error)
	Resumen(ctx context.Context, empleadoID string) (domain.Resumen, error)
}

// Listar implements Storage
func (s *pg) Listar(ctx context.Context, f domain.Filtros) ([]domain.Empleado, error) {
	const sql = `
		SELECT
			id, codigo_empleado, nombre, apellido, email, telefono,
			departamento, cargo, liquida_dominical, dia_descanso,
			punto_trabajo, activo
		FROM empleados
		WHERE ($1 = FALSE OR activo = $1)
		  AND ($2::text IS NULL OR punto_trabajo = $2)
		  AND ($3::text IS NULL OR departamento = $3)
		ORDER BY apellido, nombre`

	rows, err := store.StructsByName[domain.Empleado](ctx, s.q, sql, f.ActivosSolo, f.Restaurante, f.Departamento)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].NombreCompleto = rows[i].Nombre + " " + rows[i].Apellido
	}
	return rows, nil
}

// Buscar implements Storage. Exact code matches sort ahead of partial ones
func (s *pg) Buscar(ctx context.Context, termino string) ([]domain.Coincidencia, error) {
	const sql = `
		SELECT
			id, codigo_empleado, nombre, apellido, cargo,
			departamento, punto_trabajo, activo
		FROM empleados
		WHERE codigo_empleado ILIKE '%' || $1 || '%'
		   OR nombre ILIKE '%' || $1 || '%'
		   OR apellido ILIKE '%' || $1 || '%'
		ORDER BY
			CASE WHEN codigo_empleado ILIKE $1 THEN 0 ELSE 1 END,
			apellido, nombre
		LIMIT 20`

	rows, err := store.StructsByName[domain.Coincidencia](ctx, s.q, sql, termino)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].NombreCompleto = rows[i].Nombre + " " + rows[i].Apellido
	}
	return rows, nil
}

// Resumen implements Storage
func (s *pg) Resumen(ctx context.Context, empleadoID string) (domain.Resumen, error) {
	const sql = `
		SELECT id, codigo_empleado, nombre, apellido, liquida_dominical
		FROM empleados
		WHERE id = $1`

	return store.StructByName[domain.Resumen](ctx, s.q, sql, empleadoID)
}
