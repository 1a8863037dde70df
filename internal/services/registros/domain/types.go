// Package domain holds the punch-record query types and ports
package domain

// Filtros are the optional filters of a single-day query, echoed in the result
type Filtros struct {
	EmpleadoID  *string `json:"empleado_id"`
	Restaurante *string `json:"restaurante"`
	Tipo        *string `json:"tipo"`
}

// FiltrosRango are the optional filters of a date-range query
type FiltrosRango struct {
	EmpleadoID  *string `json:"empleado_id"`
	Restaurante *string `json:"restaurante"`
}

// Registro is one punch event joined with the employee identity
type Registro struct {
	ID             string   `db:"id" json:"id"`
	EmpleadoID     string   `db:"empleado_id" json:"empleado_id"`
	CodigoEmpleado string   `db:"codigo_empleado" json:"codigo_empleado"`
	EmpleadoNombre string   `db:"empleado_nombre" json:"empleado_nombre"`
	Cargo          *string  `db:"cargo" json:"cargo"`
	Departamento   *string  `db:"departamento" json:"departamento"`
	TipoRegistro   string   `db:"tipo_registro" json:"tipo_registro"`
	PuntoTrabajo   *string  `db:"punto_trabajo" json:"punto_trabajo"`
	FechaRegistro  string   `db:"fecha_registro" json:"fecha_registro"`
	HoraRegistro   string   `db:"hora_registro" json:"hora_registro"`
	Confianza      *float64 `db:"confianza" json:"confianza"`
	Observaciones  *string  `db:"observaciones" json:"observaciones"`
}

// RegistroRango is the slimmer row shape of a date-range query
type RegistroRango struct {
	ID             string  `db:"id" json:"id"`
	EmpleadoID     string  `db:"empleado_id" json:"empleado_id"`
	CodigoEmpleado string  `db:"codigo_empleado" json:"codigo_empleado"`
	EmpleadoNombre string  `db:"empleado_nombre" json:"empleado_nombre"`
	TipoRegistro   string  `db:"tipo_registro" json:"tipo_registro"`
	PuntoTrabajo   *string `db:"punto_trabajo" json:"punto_trabajo"`
	FechaRegistro  string  `db:"fecha_registro" json:"fecha_registro"`
	HoraRegistro   string  `db:"hora_registro" json:"hora_registro"`
	Observaciones  *string `db:"observaciones" json:"observaciones"`
}

// Dia is the consultar_registros_fecha envelope
type Dia struct {
	Fecha          string     `json:"fecha"`
	Filtros        Filtros    `json:"filtros"`
	TotalRegistros int        `json:"total_registros"`
	Registros      []Registro `json:"registros"`
}

// Periodo is an inclusive date window
type Periodo struct {
	Inicio string `json:"inicio"`
	Fin    string `json:"fin"`
}

// Rango is the consultar_registros_rango envelope
type Rango struct {
	Periodo        Periodo         `json:"periodo"`
	Filtros        FiltrosRango    `json:"filtros"`
	TotalRegistros int             `json:"total_registros"`
	Registros      []RegistroRango `json:"registros"`
}

// Marcacion is the last punch of an employee
type Marcacion struct {
	Tipo         string  `json:"tipo"`
	Fecha        string  `json:"fecha"`
	Hora         string  `json:"hora"`
	PuntoTrabajo *string `json:"punto_trabajo"`
}

// Ultimo is the obtener_ultimo_registro envelope. An employee without
// punches carries a nil Marcacion and an explanatory Mensaje
type Ultimo struct {
	EmpleadoID      string     `json:"empleado_id"`
	EmpleadoNombre  *string    `json:"empleado_nombre"`
	UltimoRegistro  *Marcacion `json:"ultimo_registro"`
	SiguienteAccion string     `json:"siguiente_accion"`
	Mensaje         string     `json:"mensaje,omitempty"`
}

// UltimoRow is the raw repository row behind Ultimo
type UltimoRow struct {
	TipoRegistro   string  `db:"tipo_registro"`
	FechaRegistro  string  `db:"fecha_registro"`
	HoraRegistro   string  `db:"hora_registro"`
	PuntoTrabajo   *string `db:"punto_trabajo"`
	EmpleadoNombre string  `db:"empleado_nombre"`
}

// Pendiente is one employee with an entry and no matching exit
type Pendiente struct {
	EmpleadoID         string  `db:"empleado_id" json:"empleado_id"`
	CodigoEmpleado     string  `db:"codigo_empleado" json:"codigo_empleado"`
	EmpleadoNombre     string  `db:"empleado_nombre" json:"empleado_nombre"`
	HoraEntrada        string  `db:"hora_entrada" json:"hora_entrada"`
	PuntoTrabajo       *string `db:"punto_trabajo" json:"punto_trabajo"`
	HorasTranscurridas float64 `db:"horas_transcurridas" json:"horas_transcurridas"`
}

// SinSalida is the empleados_sin_salida envelope
type SinSalida struct {
	Fecha          string      `json:"fecha"`
	TotalSinSalida int         `json:"total_sin_salida"`
	Empleados      []Pendiente `json:"empleados"`
}
