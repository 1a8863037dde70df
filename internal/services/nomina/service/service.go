// Package service provides the fortnight payroll service implementation
package service

import (
	"context"

	"asistencia/internal/core/fechas"
	"asistencia/internal/core/laboral"
	perr "asistencia/internal/platform/errors"
	"asistencia/internal/services/nomina/domain"
	"asistencia/internal/services/nomina/repo"
)

// Service implements domain.QueryPort
type Service struct {
	Storage repo.Storage
}

// New constructs a new payroll service
func New(storage repo.Storage) *Service {
	if storage == nil {
		panic("nomina service requires storage")
	}
	return &Service{Storage: storage}
}

// quincenaEmpleado accumulates one employee's punches grouped by date,
// preserving arrival order
type quincenaEmpleado struct {
	id           string
	codigo       string
	nombre       string
	cargo        *string
	departamento *string
	liquida      bool
	fechas       []string
	porFecha     map[string][]laboral.Marca
}

// Quincenal implements domain.QueryPort
func (s *Service) Quincenal(ctx context.Context, anio, mes, quincena int, restaurante *string) (domain.Resumen, error) {
	if mes < 1 || mes > 12 {
		return domain.Resumen{}, perr.InvalidArgf("mes fuera de rango: %d", mes)
	}
	if quincena != 1 && quincena != 2 {
		return domain.Resumen{}, perr.InvalidArgf("quincena debe ser 1 o 2, recibido %d", quincena)
	}

	inicio, fin := fechas.RangoQuincena(anio, mes, quincena)
	inicioStr, finStr := fechas.Formato(inicio), fechas.Formato(fin)

	cfg, err := s.Storage.Tarifas(ctx)
	if err != nil {
		return domain.Resumen{}, perr.FromPostgres(err, "tarifas de nomina")
	}
	tarifas := laboral.TarifasDesdeConfig(cfg)

	eventos, err := s.Storage.EventosQuincena(ctx, inicioStr, finStr, restaurante)
	if err != nil {
		return domain.Resumen{}, perr.FromPostgres(err, "registros de la quincena")
	}

	var orden []string
	grupos := map[string]*quincenaEmpleado{}
	for _, ev := range eventos {
		g, ok := grupos[ev.EmpleadoID]
		if !ok {
			g = &quincenaEmpleado{
				id:           ev.EmpleadoID,
				codigo:       ev.CodigoEmpleado,
				nombre:       ev.Nombre,
				cargo:        ev.Cargo,
				departamento: ev.Departamento,
				liquida:      ev.LiquidaDominical,
				porFecha:     map[string][]laboral.Marca{},
			}
			grupos[ev.EmpleadoID] = g
			orden = append(orden, ev.EmpleadoID)
		}
		hora, err := laboral.ParseHora(ev.HoraRegistro)
		if err != nil {
			return domain.Resumen{}, perr.DBf("hora de registro corrupta: %v", err)
		}
		if _, ok := g.porFecha[ev.FechaRegistro]; !ok {
			g.fechas = append(g.fechas, ev.FechaRegistro)
		}
		g.porFecha[ev.FechaRegistro] = append(g.porFecha[ev.FechaRegistro], laboral.Marca{
			Tipo: ev.TipoRegistro,
			Hora: hora,
		})
	}

	reportes := make([]domain.ReporteNomina, 0, len(orden))
	for _, id := range orden {
		g := grupos[id]
		var acum laboral.Acumulado
		detalle := []domain.DetalleDia{}
		for _, fstr := range g.fechas {
			dia, err := fechas.Parse(fstr)
			if err != nil {
				return domain.Resumen{}, perr.DBf("fecha de registro corrupta: %v", err)
			}
			totales := laboral.CalcularDia(g.porFecha[fstr], dia)
			acum.Sumar(totales)
			if len(totales.Intervalos) > 0 {
				detalle = append(detalle, domain.DetalleDia{
					Fecha:   fstr,
					Entrada: totales.Intervalos[0].Entrada,
					Salida:  totales.Intervalos[len(totales.Intervalos)-1].Salida,
					Horas:   totales.HorasTrabajadas,
				})
			}
		}

		// Sunday hours only settle for employees flagged for it
		if !g.liquida {
			acum.HorasDominical = 0
		}

		reportes = append(reportes, domain.ReporteNomina{
			EmpleadoID:     g.id,
			Codigo:         g.codigo,
			Nombre:         g.nombre,
			Cargo:          g.cargo,
			Departamento:   g.departamento,
			DiasTrabajados: len(g.fechas),
			Horas: domain.Horas{
				Ordinarias:      acum.HorasOrdinarias,
				ExtraDiurna:     acum.HorasExtraDiurna,
				ExtraNocturna:   acum.HorasExtraNocturna,
				RecargoNocturno: acum.HorasRecargoNocturno,
				Dominical:       acum.HorasDominical,
			},
			Valores:     laboral.CalcularValores(acum, tarifas, g.liquida),
			DetalleDias: detalle,
		})
	}

	return domain.Resumen{
		Periodo:        fechas.PeriodoQuincena(anio, mes, quincena),
		Quincena:       quincena,
		Rango:          domain.Periodo{Inicio: inicioStr, Fin: finStr},
		Filtros:        domain.Filtros{Restaurante: restaurante},
		TotalEmpleados: len(reportes),
		Reportes:       reportes,
	}, nil
}
