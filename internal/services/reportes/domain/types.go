// Package domain holds the hour-report types and ports
package domain

import "asistencia/internal/core/laboral"

// Periodo is an inclusive date window
type Periodo struct {
	Inicio string `json:"inicio"`
	Fin    string `json:"fin"`
}

// Filtros are the optional report filters, echoed in the envelopes
type Filtros struct {
	EmpleadoID  *string `json:"empleado_id"`
	Restaurante *string `json:"restaurante"`
}

// RegistroCrudo is one raw punch echoed back in the day breakdown
type RegistroCrudo struct {
	Tipo string  `json:"tipo"`
	Hora string  `json:"hora"`
	Obs  *string `json:"obs"`
}

// DiaEmpleado is the full calcular_horas_trabajadas_dia breakdown
type DiaEmpleado struct {
	laboral.DiaTotales
	EmpleadoID       string          `json:"empleado_id"`
	EmpleadoNombre   string          `json:"empleado_nombre"`
	LiquidaDominical bool            `json:"liquida_dominical"`
	Registros        []RegistroCrudo `json:"registros"`
}

// DiaSinRegistros replaces the breakdown when the employee has no punches
// on the requested date
type DiaSinRegistros struct {
	EmpleadoID      string  `json:"empleado_id"`
	EmpleadoNombre  string  `json:"empleado_nombre"`
	Fecha           string  `json:"fecha"`
	Mensaje         string  `json:"mensaje"`
	HorasTrabajadas float64 `json:"horas_trabajadas"`
}

// NoEncontrado is the legacy result shape for an unknown employee id,
// kept because existing clients read it as data rather than as an error
type NoEncontrado struct {
	Error string `json:"error"`
}

// TotalesSemana sums the classified categories across one week
type TotalesSemana struct {
	HorasTrabajadas      float64 `json:"horas_trabajadas"`
	HorasOrdinarias      float64 `json:"horas_ordinarias"`
	HorasExtraDiurna     float64 `json:"horas_extra_diurna"`
	HorasExtraNocturna   float64 `json:"horas_extra_nocturna"`
	HorasRecargoNocturno float64 `json:"horas_recargo_nocturno"`
	HorasDominical       float64 `json:"horas_dominical"`
}

// ReporteSemanal is one employee's week
type ReporteSemanal struct {
	EmpleadoID   string               `json:"empleado_id"`
	Codigo       string               `json:"codigo"`
	Nombre       string               `json:"nombre"`
	SemanaInicio string               `json:"semana_inicio"`
	SemanaFin    string               `json:"semana_fin"`
	Dias         []laboral.DiaTotales `json:"dias"`
	Totales      TotalesSemana        `json:"totales"`
	AlertaExceso bool                 `json:"alerta_exceso"`
	HorasExceso  float64              `json:"horas_exceso"`
}

// Semana is the reporte_horas_semanal envelope
type Semana struct {
	Semana         Periodo          `json:"semana"`
	Filtros        Filtros          `json:"filtros"`
	TotalEmpleados int              `json:"total_empleados"`
	Reportes       []ReporteSemanal `json:"reportes"`
}

// ResumenMensual consolidates one employee's month
type ResumenMensual struct {
	DiasTrabajados     int     `json:"dias_trabajados"`
	TotalHoras         float64 `json:"total_horas"`
	HorasOrdinarias    float64 `json:"horas_ordinarias"`
	HorasExtraDiurna   float64 `json:"horas_extra_diurna"`
	HorasExtraNocturna float64 `json:"horas_extra_nocturna"`
	RecargoNocturno    float64 `json:"recargo_nocturno"`
	HorasDominical     float64 `json:"horas_dominical"`
}

// ReporteMensual is one employee's month
type ReporteMensual struct {
	EmpleadoID   string         `json:"empleado_id"`
	Codigo       string         `json:"codigo"`
	Nombre       string         `json:"nombre"`
	Cargo        *string        `json:"cargo"`
	Departamento *string        `json:"departamento"`
	Periodo      string         `json:"periodo"`
	Resumen      ResumenMensual `json:"resumen"`
}

// Mes is the reporte_horas_mensual envelope
type Mes struct {
	Periodo        string           `json:"periodo"`
	Rango          Periodo          `json:"rango"`
	Filtros        Filtros          `json:"filtros"`
	TotalEmpleados int              `json:"total_empleados"`
	Reportes       []ReporteMensual `json:"reportes"`
}

// TotalesAsistencia are the attendance counters of a period
type TotalesAsistencia struct {
	TotalRegistros    int `json:"total_registros"`
	EmpleadosUnicos   int `json:"empleados_unicos"`
	Entradas          int `json:"entradas"`
	Salidas           int `json:"salidas"`
	RegistrosForzados int `json:"registros_forzados"`
}

// SitioAsistencia breaks the counters down per work site
type SitioAsistencia struct {
	Restaurante *string `json:"restaurante"`
	Registros   int     `json:"registros"`
	Empleados   int     `json:"empleados"`
}

// Estadisticas is the estadisticas_asistencia envelope
type Estadisticas struct {
	Periodo        Periodo           `json:"periodo"`
	Totales        TotalesAsistencia `json:"totales"`
	PorRestaurante []SitioAsistencia `json:"por_restaurante"`
}

// Configuracion is one system configuration row
type Configuracion struct {
	Clave       string  `db:"clave" json:"clave"`
	Valor       string  `db:"valor" json:"valor"`
	Descripcion *string `db:"descripcion" json:"descripcion"`
	TipoDato    *string `db:"tipo_dato" json:"tipo_dato"`
}

// Configuraciones is the list shape of obtener_configuracion
type Configuraciones struct {
	Total           int             `json:"total"`
	Configuraciones []Configuracion `json:"configuraciones"`
}

// Repository row shapes

// EventoDia is one punch of a single employee day
type EventoDia struct {
	TipoRegistro  string  `db:"tipo_registro"`
	HoraRegistro  string  `db:"hora_registro"`
	Observaciones *string `db:"observaciones"`
}

// EventoSemana is one punch row of the weekly report query
type EventoSemana struct {
	EmpleadoID       string `db:"empleado_id"`
	CodigoEmpleado   string `db:"codigo_empleado"`
	EmpleadoNombre   string `db:"empleado_nombre"`
	LiquidaDominical bool   `db:"liquida_dominical"`
	FechaRegistro    string `db:"fecha_registro"`
	TipoRegistro     string `db:"tipo_registro"`
	HoraRegistro     string `db:"hora_registro"`
}

// EventoMes is one punch row of the monthly report query
type EventoMes struct {
	EmpleadoID       string  `db:"empleado_id"`
	CodigoEmpleado   string  `db:"codigo_empleado"`
	Nombre           string  `db:"nombre"`
	Apellido         string  `db:"apellido"`
	Cargo            *string `db:"cargo"`
	Departamento     *string `db:"departamento"`
	LiquidaDominical bool    `db:"liquida_dominical"`
	FechaRegistro    string  `db:"fecha_registro"`
	TipoRegistro     string  `db:"tipo_registro"`
	HoraRegistro     string  `db:"hora_registro"`
}

// FilaEstadistica is one per-site counter row
type FilaEstadistica struct {
	TotalRegistros  int     `db:"total_registros"`
	EmpleadosUnicos int     `db:"empleados_unicos"`
	Entradas        int     `db:"entradas"`
	Salidas         int     `db:"salidas"`
	Forzados        int     `db:"forzados"`
	PuntoTrabajo    *string `db:"punto_trabajo"`
}
