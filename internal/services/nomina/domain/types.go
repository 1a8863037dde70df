// Package domain holds the fortnight payroll types and ports
package domain

import "asistencia/internal/core/laboral"

// Periodo is an inclusive date window
type Periodo struct {
	Inicio string `json:"inicio"`
	Fin    string `json:"fin"`
}

// Filtros are the optional payroll filters, echoed in the envelope
type Filtros struct {
	Restaurante *string `json:"restaurante"`
}

// Horas is the classified hour summary of one employee's fortnight
type Horas struct {
	Ordinarias      float64 `json:"ordinarias"`
	ExtraDiurna     float64 `json:"extra_diurna"`
	ExtraNocturna   float64 `json:"extra_nocturna"`
	RecargoNocturno float64 `json:"recargo_nocturno"`
	Dominical       float64 `json:"dominical"`
}

// DetalleDia summarizes one worked day as first entry, last exit and hours
type DetalleDia struct {
	Fecha   string  `json:"fecha"`
	Entrada string  `json:"entrada"`
	Salida  string  `json:"salida"`
	Horas   float64 `json:"horas"`
}

// ReporteNomina is one employee's fortnight settlement
type ReporteNomina struct {
	EmpleadoID     string          `json:"empleado_id"`
	Codigo         string          `json:"codigo"`
	Nombre         string          `json:"nombre"`
	Cargo          *string         `json:"cargo"`
	Departamento   *string         `json:"departamento"`
	DiasTrabajados int             `json:"dias_trabajados"`
	Horas          Horas           `json:"horas"`
	Valores        laboral.Valores `json:"valores"`
	DetalleDias    []DetalleDia    `json:"detalle_dias"`
}

// Resumen is the resumen_nomina_quincenal envelope
type Resumen struct {
	Periodo        string          `json:"periodo"`
	Quincena       int             `json:"quincena"`
	Rango          Periodo         `json:"rango"`
	Filtros        Filtros         `json:"filtros"`
	TotalEmpleados int             `json:"total_empleados"`
	Reportes       []ReporteNomina `json:"reportes"`
}

// EventoQuincena is one punch row of the fortnight query
type EventoQuincena struct {
	EmpleadoID       string  `db:"empleado_id"`
	CodigoEmpleado   string  `db:"codigo_empleado"`
	Nombre           string  `db:"nombre"`
	Cargo            *string `db:"cargo"`
	Departamento     *string `db:"departamento"`
	LiquidaDominical bool    `db:"liquida_dominical"`
	FechaRegistro    string  `db:"fecha_registro"`
	TipoRegistro     string  `db:"tipo_registro"`
	HoraRegistro     string  `db:"hora_registro"`
}
