// Package service provides the punch-record service implementation
package service

import (
	"context"

	"asistencia/internal/core/fechas"
	"asistencia/internal/core/laboral"
	perr "asistencia/internal/platform/errors"
	"asistencia/internal/services/registros/domain"
	"asistencia/internal/services/registros/repo"
)

// Service implements domain.QueryPort
type Service struct {
	Storage repo.Storage
}

// New constructs a new punch-record service
func New(storage repo.Storage) *Service {
	if storage == nil {
		panic("registros service requires storage")
	}
	return &Service{Storage: storage}
}

// ConsultarFecha implements domain.QueryPort
func (s *Service) ConsultarFecha(ctx context.Context, fecha string, f domain.Filtros) (domain.Dia, error) {
	if _, err := fechas.Parse(fecha); err != nil {
		return domain.Dia{}, err
	}
	rows, err := s.Storage.PorFecha(ctx, fecha, f)
	if err != nil {
		return domain.Dia{}, perr.FromPostgres(err, "registros por fecha")
	}
	if rows == nil {
		rows = []domain.Registro{}
	}
	return domain.Dia{
		Fecha:          fecha,
		Filtros:        f,
		TotalRegistros: len(rows),
		Registros:      rows,
	}, nil
}

// ConsultarRango implements domain.QueryPort
func (s *Service) ConsultarRango(ctx context.Context, inicio, fin string, f domain.FiltrosRango) (domain.Rango, error) {
	if _, err := fechas.Parse(inicio); err != nil {
		return domain.Rango{}, err
	}
	if _, err := fechas.Parse(fin); err != nil {
		return domain.Rango{}, err
	}
	rows, err := s.Storage.PorRango(ctx, inicio, fin, f)
	if err != nil {
		return domain.Rango{}, perr.FromPostgres(err, "registros por rango")
	}
	if rows == nil {
		rows = []domain.RegistroRango{}
	}
	return domain.Rango{
		Periodo:        domain.Periodo{Inicio: inicio, Fin: fin},
		Filtros:        f,
		TotalRegistros: len(rows),
		Registros:      rows,
	}, nil
}

// Ultimo implements domain.QueryPort. An employee without punches is not an
// error, the caller gets ENTRADA as the expected next action
func (s *Service) Ultimo(ctx context.Context, empleadoID string) (domain.Ultimo, error) {
	row, err := s.Storage.Ultimo(ctx, empleadoID)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.Ultimo{
				EmpleadoID:      empleadoID,
				SiguienteAccion: laboral.TipoEntrada,
				Mensaje:         "No hay registros para este empleado",
			}, nil
		}
		return domain.Ultimo{}, perr.FromPostgres(err, "ultimo registro")
	}

	siguiente := laboral.TipoEntrada
	if row.TipoRegistro == laboral.TipoEntrada {
		siguiente = laboral.TipoSalida
	}
	nombre := row.EmpleadoNombre
	return domain.Ultimo{
		EmpleadoID:     empleadoID,
		EmpleadoNombre: &nombre,
		UltimoRegistro: &domain.Marcacion{
			Tipo:         row.TipoRegistro,
			Fecha:        row.FechaRegistro,
			Hora:         row.HoraRegistro,
			PuntoTrabajo: row.PuntoTrabajo,
		},
		SiguienteAccion: siguiente,
	}, nil
}

// SinSalida implements domain.QueryPort. An empty fecha defaults to today
func (s *Service) SinSalida(ctx context.Context, fecha string) (domain.SinSalida, error) {
	if fecha == "" {
		fecha = fechas.Formato(fechas.Hoy())
	} else if _, err := fechas.Parse(fecha); err != nil {
		return domain.SinSalida{}, err
	}
	rows, err := s.Storage.SinSalida(ctx, fecha)
	if err != nil {
		return domain.SinSalida{}, perr.FromPostgres(err, "empleados sin salida")
	}
	if rows == nil {
		rows = []domain.Pendiente{}
	}
	for i := range rows {
		rows[i].HorasTranscurridas = laboral.Redondear2(rows[i].HorasTranscurridas)
	}
	return domain.SinSalida{
		Fecha:          fecha,
		TotalSinSalida: len(rows),
		Empleados:      rows,
	}, nil
}
