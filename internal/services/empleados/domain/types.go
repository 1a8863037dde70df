// Package domain holds the employee directory types and ports
package domain

// Filtros are the optional listing filters, echoed back in the result
type Filtros struct {
	ActivosSolo  bool    `json:"activos_solo"`
	Restaurante  *string `json:"restaurante"`
	Departamento *string `json:"departamento"`
}

// Empleado is one directory row with the full contact detail
type Empleado struct {
	ID               string  `db:"id" json:"id"`
	CodigoEmpleado   string  `db:"codigo_empleado" json:"codigo_empleado"`
	NombreCompleto   string  `db:"-" json:"nombre_completo"`
	Nombre           string  `db:"nombre" json:"nombre"`
	Apellido         string  `db:"apellido" json:"apellido"`
	Email            *string `db:"email" json:"email"`
	Telefono         *string `db:"telefono" json:"telefono"`
	Departamento     *string `db:"departamento" json:"departamento"`
	Cargo            *string `db:"cargo" json:"cargo"`
	PuntoTrabajo     *string `db:"punto_trabajo" json:"punto_trabajo"`
	LiquidaDominical bool    `db:"liquida_dominical" json:"liquida_dominical"`
	DiaDescanso      *string `db:"dia_descanso" json:"dia_descanso"`
	Activo           bool    `db:"activo" json:"activo"`
}

// Coincidencia is one search hit, trimmed to what a lookup needs
type Coincidencia struct {
	ID             string  `db:"id" json:"id"`
	CodigoEmpleado string  `db:"codigo_empleado" json:"codigo_empleado"`
	NombreCompleto string  `db:"-" json:"nombre_completo"`
	Nombre         string  `db:"nombre" json:"-"`
	Apellido       string  `db:"apellido" json:"-"`
	Cargo          *string `db:"cargo" json:"cargo"`
	Departamento   *string `db:"departamento" json:"departamento"`
	PuntoTrabajo   *string `db:"punto_trabajo" json:"punto_trabajo"`
	Activo         bool    `db:"activo" json:"activo"`
}

// Resumen is the minimal identity other services need for an employee
type Resumen struct {
	ID               string `db:"id"`
	CodigoEmpleado   string `db:"codigo_empleado"`
	Nombre           string `db:"nombre"`
	Apellido         string `db:"apellido"`
	LiquidaDominical bool   `db:"liquida_dominical"`
}

// NombreCompleto joins first and last name the way the directory displays it
func (r Resumen) NombreCompleto() string { return r.Nombre + " " + r.Apellido }

// Listado is the consultar_empleados envelope
type Listado struct {
	Total     int        `json:"total"`
	Filtros   Filtros    `json:"filtros"`
	Empleados []Empleado `json:"empleados"`
}

// Busqueda is the buscar_empleado envelope
type Busqueda struct {
	TerminoBusqueda string         `json:"termino_busqueda"`
	Resultados      int            `json:"resultados"`
	Empleados       []Coincidencia `json:"empleados"`
}
