// Package service provides the employee directory service implementation
package service

import (
	"context"
	"strings"

	perr "asistencia/internal/platform/errors"
	"asistencia/internal/services/empleados/domain"
	"asistencia/internal/services/empleados/repo"
)

// Service implements domain.QueryPort and domain.LectorPort
type Service struct {
	Storage repo.Storage
}

// New constructs a new employee directory service
func New(storage repo.Storage) *Service {
	if storage == nil {
		panic("empleados service requires storage")
	}
	return &Service{Storage: storage}
}

// Consultar implements domain.QueryPort
func (s *Service) Consultar(ctx context.Context, f domain.Filtros) (domain.Listado, error) {
	rows, err := s.Storage.Listar(ctx, f)
	if err != nil {
		return domain.Listado{}, perr.FromPostgres(err, "listado de empleados")
	}
	if rows == nil {
		rows = []domain.Empleado{}
	}
	return domain.Listado{Total: len(rows), Filtros: f, Empleados: rows}, nil
}

// Buscar implements domain.QueryPort
func (s *Service) Buscar(ctx context.Context, termino string) (domain.Busqueda, error) {
	termino = strings.TrimSpace(termino)
	if termino == "" {
		return domain.Busqueda{}, perr.InvalidArgf("termino de busqueda vacio")
	}
	rows, err := s.Storage.Buscar(ctx, termino)
	if err != nil {
		return domain.Busqueda{}, perr.FromPostgres(err, "busqueda de empleados")
	}
	if rows == nil {
		rows = []domain.Coincidencia{}
	}
	return domain.Busqueda{TerminoBusqueda: termino, Resultados: len(rows), Empleados: rows}, nil
}

// Resumen implements domain.LectorPort
func (s *Service) Resumen(ctx context.Context, empleadoID string) (domain.Resumen, error) {
	r, err := s.Storage.Resumen(ctx, empleadoID)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Resumen{}, err
		}
		return domain.Resumen{}, perr.FromPostgres(err, "resumen de empleado")
	}
	return r, nil
}
