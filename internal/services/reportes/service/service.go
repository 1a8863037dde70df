// Package service provides the hour-report service implementation
package service

import (
	"context"
	"fmt"
	"time"

	"asistencia/internal/core/fechas"
	"asistencia/internal/core/laboral"
	perr "asistencia/internal/platform/errors"
	empdomain "asistencia/internal/services/empleados/domain"
	"asistencia/internal/services/reportes/domain"
	"asistencia/internal/services/reportes/repo"
)

// Service implements domain.QueryPort
type Service struct {
	Storage repo.Storage
	Lector  empdomain.LectorPort
}

// New constructs a new hour-report service
func New(storage repo.Storage, lector empdomain.LectorPort) *Service {
	if storage == nil {
		panic("reportes service requires storage")
	}
	if lector == nil {
		panic("reportes service requires the employee lector")
	}
	return &Service{Storage: storage, Lector: lector}
}

// Dia implements domain.QueryPort
func (s *Service) Dia(ctx context.Context, empleadoID, fecha string) (any, error) {
	emp, err := s.Lector.Resumen(ctx, empleadoID)
	if err != nil {
		if perr.IsCode(err, perr.ErrorCodeNotFound) {
			return domain.NoEncontrado{Error: fmt.Sprintf("Empleado %s no encontrado", empleadoID)}, nil
		}
		return nil, perr.FromPostgres(err, "empleado del dia")
	}

	dia, err := fechas.Parse(fecha)
	if err != nil {
		return nil, err
	}

	eventos, err := s.Storage.EventosDia(ctx, empleadoID, fecha)
	if err != nil {
		return nil, perr.FromPostgres(err, "registros del dia")
	}
	if len(eventos) == 0 {
		return domain.DiaSinRegistros{
			EmpleadoID:      empleadoID,
			EmpleadoNombre:  emp.NombreCompleto(),
			Fecha:           fecha,
			Mensaje:         "No hay registros para esta fecha",
			HorasTrabajadas: 0,
		}, nil
	}

	marcas := make([]laboral.Marca, 0, len(eventos))
	crudos := make([]domain.RegistroCrudo, 0, len(eventos))
	for _, ev := range eventos {
		hora, err := laboral.ParseHora(ev.HoraRegistro)
		if err != nil {
			return nil, perr.DBf("hora de registro corrupta: %v", err)
		}
		marcas = append(marcas, laboral.Marca{Tipo: ev.TipoRegistro, Hora: hora})
		crudos = append(crudos, domain.RegistroCrudo{
			Tipo: ev.TipoRegistro,
			Hora: ev.HoraRegistro,
			Obs:  ev.Observaciones,
		})
	}

	return domain.DiaEmpleado{
		DiaTotales:       laboral.CalcularDia(marcas, dia),
		EmpleadoID:       empleadoID,
		EmpleadoNombre:   emp.NombreCompleto(),
		LiquidaDominical: emp.LiquidaDominical,
		Registros:        crudos,
	}, nil
}

// semanaEmpleado accumulates one employee's punches grouped by date,
// preserving the order the rows arrived in
type semanaEmpleado struct {
	id       string
	codigo   string
	nombre   string
	fechas   []string
	porFecha map[string][]laboral.Marca
}

// Semanal implements domain.QueryPort. An empty fechaSemana means the week
// that contains today
func (s *Service) Semanal(ctx context.Context, fechaSemana string, f domain.Filtros) (domain.Semana, error) {
	var ref time.Time
	if fechaSemana != "" {
		var err error
		if ref, err = fechas.Parse(fechaSemana); err != nil {
			return domain.Semana{}, err
		}
	}
	inicio, fin := fechas.RangoSemana(ref)
	inicioStr, finStr := fechas.Formato(inicio), fechas.Formato(fin)

	eventos, err := s.Storage.EventosSemana(ctx, inicioStr, finStr, f.EmpleadoID, f.Restaurante)
	if err != nil {
		return domain.Semana{}, perr.FromPostgres(err, "registros de la semana")
	}

	var orden []string
	grupos := map[string]*semanaEmpleado{}
	for _, ev := range eventos {
		g, ok := grupos[ev.EmpleadoID]
		if !ok {
			g = &semanaEmpleado{
				id:       ev.EmpleadoID,
				codigo:   ev.CodigoEmpleado,
				nombre:   ev.EmpleadoNombre,
				porFecha: map[string][]laboral.Marca{},
			}
			grupos[ev.EmpleadoID] = g
			orden = append(orden, ev.EmpleadoID)
		}
		hora, err := laboral.ParseHora(ev.HoraRegistro)
		if err != nil {
			return domain.Semana{}, perr.DBf("hora de registro corrupta: %v", err)
		}
		if _, ok := g.porFecha[ev.FechaRegistro]; !ok {
			g.fechas = append(g.fechas, ev.FechaRegistro)
		}
		g.porFecha[ev.FechaRegistro] = append(g.porFecha[ev.FechaRegistro], laboral.Marca{
			Tipo: ev.TipoRegistro,
			Hora: hora,
		})
	}

	reportes := make([]domain.ReporteSemanal, 0, len(orden))
	for _, id := range orden {
		g := grupos[id]
		dias := make([]laboral.DiaTotales, 0, len(g.fechas))
		var acum laboral.Acumulado
		for _, fstr := range g.fechas {
			dia, err := fechas.Parse(fstr)
			if err != nil {
				return domain.Semana{}, perr.DBf("fecha de registro corrupta: %v", err)
			}
			totales := laboral.CalcularDia(g.porFecha[fstr], dia)
			dias = append(dias, totales)
			acum.Sumar(totales)
		}
		alerta, exceso := laboral.ExcesoSemanal(acum.HorasTrabajadas)
		reportes = append(reportes, domain.ReporteSemanal{
			EmpleadoID:   g.id,
			Codigo:       g.codigo,
			Nombre:       g.nombre,
			SemanaInicio: inicioStr,
			SemanaFin:    finStr,
			Dias:         dias,
			Totales: domain.TotalesSemana{
				HorasTrabajadas:      acum.HorasTrabajadas,
				HorasOrdinarias:      acum.HorasOrdinarias,
				HorasExtraDiurna:     acum.HorasExtraDiurna,
				HorasExtraNocturna:   acum.HorasExtraNocturna,
				HorasRecargoNocturno: acum.HorasRecargoNocturno,
				HorasDominical:       acum.HorasDominical,
			},
			AlertaExceso: alerta,
			HorasExceso:  exceso,
		})
	}

	return domain.Semana{
		Semana:         domain.Periodo{Inicio: inicioStr, Fin: finStr},
		Filtros:        f,
		TotalEmpleados: len(reportes),
		Reportes:       reportes,
	}, nil
}

// mesEmpleado accumulates one employee's punches grouped by date
type mesEmpleado struct {
	id           string
	codigo       string
	nombre       string
	cargo        *string
	departamento *string
	fechas       []string
	porFecha     map[string][]laboral.Marca
}

// Mensual implements domain.QueryPort
func (s *Service) Mensual(ctx context.Context, anio, mes int, f domain.Filtros) (domain.Mes, error) {
	if mes < 1 || mes > 12 {
		return domain.Mes{}, perr.InvalidArgf("mes fuera de rango: %d", mes)
	}
	inicio, fin := fechas.RangoMes(anio, mes)
	periodo := fechas.PeriodoMes(anio, mes)

	eventos, err := s.Storage.EventosMes(ctx, anio, mes, f.EmpleadoID, f.Restaurante)
	if err != nil {
		return domain.Mes{}, perr.FromPostgres(err, "registros del mes")
	}

	var orden []string
	grupos := map[string]*mesEmpleado{}
	for _, ev := range eventos {
		g, ok := grupos[ev.EmpleadoID]
		if !ok {
			g = &mesEmpleado{
				id:           ev.EmpleadoID,
				codigo:       ev.CodigoEmpleado,
				nombre:       ev.Nombre + " " + ev.Apellido,
				cargo:        ev.Cargo,
				departamento: ev.Departamento,
				porFecha:     map[string][]laboral.Marca{},
			}
			grupos[ev.EmpleadoID] = g
			orden = append(orden, ev.EmpleadoID)
		}
		hora, err := laboral.ParseHora(ev.HoraRegistro)
		if err != nil {
			return domain.Mes{}, perr.DBf("hora de registro corrupta: %v", err)
		}
		if _, ok := g.porFecha[ev.FechaRegistro]; !ok {
			g.fechas = append(g.fechas, ev.FechaRegistro)
		}
		g.porFecha[ev.FechaRegistro] = append(g.porFecha[ev.FechaRegistro], laboral.Marca{
			Tipo: ev.TipoRegistro,
			Hora: hora,
		})
	}

	reportes := make([]domain.ReporteMensual, 0, len(orden))
	for _, id := range orden {
		g := grupos[id]
		var acum laboral.Acumulado
		for _, fstr := range g.fechas {
			dia, err := fechas.Parse(fstr)
			if err != nil {
				return domain.Mes{}, perr.DBf("fecha de registro corrupta: %v", err)
			}
			acum.Sumar(laboral.CalcularDia(g.porFecha[fstr], dia))
		}
		reportes = append(reportes, domain.ReporteMensual{
			EmpleadoID:   g.id,
			Codigo:       g.codigo,
			Nombre:       g.nombre,
			Cargo:        g.cargo,
			Departamento: g.departamento,
			Periodo:      periodo,
			Resumen: domain.ResumenMensual{
				// every date with punches counts, even if classification
				// yielded zero hours
				DiasTrabajados:     len(g.fechas),
				TotalHoras:         acum.HorasTrabajadas,
				HorasOrdinarias:    acum.HorasOrdinarias,
				HorasExtraDiurna:   acum.HorasExtraDiurna,
				HorasExtraNocturna: acum.HorasExtraNocturna,
				RecargoNocturno:    acum.HorasRecargoNocturno,
				HorasDominical:     acum.HorasDominical,
			},
		})
	}

	return domain.Mes{
		Periodo:        periodo,
		Rango:          domain.Periodo{Inicio: fechas.Formato(inicio), Fin: fechas.Formato(fin)},
		Filtros:        f,
		TotalEmpleados: len(reportes),
		Reportes:       reportes,
	}, nil
}

// Estadisticas implements domain.QueryPort
func (s *Service) Estadisticas(ctx context.Context, inicio, fin string, restaurante *string) (domain.Estadisticas, error) {
	if _, err := fechas.Parse(inicio); err != nil {
		return domain.Estadisticas{}, err
	}
	if _, err := fechas.Parse(fin); err != nil {
		return domain.Estadisticas{}, err
	}

	filas, err := s.Storage.Estadisticas(ctx, inicio, fin, restaurante)
	if err != nil {
		return domain.Estadisticas{}, perr.FromPostgres(err, "estadisticas")
	}

	out := domain.Estadisticas{
		Periodo:        domain.Periodo{Inicio: inicio, Fin: fin},
		PorRestaurante: []domain.SitioAsistencia{},
	}
	for _, fila := range filas {
		out.Totales.TotalRegistros += fila.TotalRegistros
		out.Totales.Entradas += fila.Entradas
		out.Totales.Salidas += fila.Salidas
		out.Totales.RegistrosForzados += fila.Forzados
		out.PorRestaurante = append(out.PorRestaurante, domain.SitioAsistencia{
			Restaurante: fila.PuntoTrabajo,
			Registros:   fila.TotalRegistros,
			Empleados:   fila.EmpleadosUnicos,
		})
	}

	unicos, err := s.Storage.EmpleadosUnicos(ctx, inicio, fin, restaurante)
	if err != nil {
		return domain.Estadisticas{}, perr.FromPostgres(err, "empleados unicos")
	}
	out.Totales.EmpleadosUnicos = unicos

	return out, nil
}

// Configuracion implements domain.QueryPort. A named key that exists comes
// back as a single object, anything else as the list shape
func (s *Service) Configuracion(ctx context.Context, clave string) (any, error) {
	var filtro *string
	if clave != "" {
		filtro = &clave
	}
	filas, err := s.Storage.Configuraciones(ctx, filtro)
	if err != nil {
		return nil, perr.FromPostgres(err, "configuracion")
	}
	if clave != "" && len(filas) > 0 {
		return filas[0], nil
	}
	if filas == nil {
		filas = []domain.Configuracion{}
	}
	return domain.Configuraciones{Total: len(filas), Configuraciones: filas}, nil
}
