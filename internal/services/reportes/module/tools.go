package module

import (
	"context"
	"encoding/json"

	"asistencia/internal/mcp"
	"asistencia/internal/mcp/bind"
	"asistencia/internal/services/reportes/domain"
)

type diaArgs struct {
	EmpleadoID string `json:"empleado_id" validate:"required,uuid"`
	Fecha      string `json:"fecha" validate:"required,datetime=2006-01-02"`
}

type semanalArgs struct {
	EmpleadoID  *string `json:"empleado_id" validate:"omitempty,uuid"`
	FechaSemana string  `json:"fecha_semana" validate:"omitempty,datetime=2006-01-02"`
	Restaurante *string `json:"restaurante"`
}

type mensualArgs struct {
	Anio        int     `json:"anio" validate:"required"`
	Mes         int     `json:"mes" validate:"required,min=1,max=12"`
	EmpleadoID  *string `json:"empleado_id" validate:"omitempty,uuid"`
	Restaurante *string `json:"restaurante"`
}

type estadisticasArgs struct {
	FechaInicio string  `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string  `json:"fecha_fin" validate:"required,datetime=2006-01-02"`
	Restaurante *string `json:"restaurante"`
}

type configuracionArgs struct {
	Clave string `json:"clave"`
}

func registerTools(reg *mcp.Registry, q domain.QueryPort) {
	reg.Register(mcp.Tool{
		Name:        "calcular_horas_trabajadas_dia",
		Description: "Calcula horas trabajadas de un empleado en un dia con desglose de extras",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"empleado_id": map[string]any{"type": "string"},
				"fecha":       map[string]any{"type": "string", "format": "date"},
			},
			"required": []string{"empleado_id", "fecha"},
		},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			args, err := bind.ParseArgs[diaArgs](raw)
			if err != nil {
				return nil, err
			}
			return q.Dia(ctx, args.EmpleadoID, args.Fecha)
		},
	})

	reg.Register(mcp.Tool{
		Name:        "reporte_horas_semanal",
		Description: "Genera reporte semanal de horas trabajadas por empleado",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"empleado_id":  map[string]any{"type": "string"},
				"fecha_semana": map[string]any{"type": "string", "format": "date"},
				"restaurante":  map[string]any{"type": "string"},
			},
		},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			args, err := bind.ParseArgs[semanalArgs](raw)
			if err != nil {
				return nil, err
			}
			f := domain.Filtros{EmpleadoID: args.EmpleadoID, Restaurante: args.Restaurante}
			return q.Semanal(ctx, args.FechaSemana, f)
		},
	})

	reg.Register(mcp.Tool{
		Name:        "reporte_horas_mensual",
		Description: "Genera reporte mensual consolidado de horas por empleado",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"anio":        map[string]any{"type": "integer"},
				"mes":         map[string]any{"type": "integer", "minimum": 1, "maximum": 12},
				"empleado_id": map[string]any{"type": "string"},
				"restaurante": map[string]any{"type": "string"},
			},
			"required": []string{"anio", "mes"},
		},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			args, err := bind.ParseArgs[mensualArgs](raw)
			if err != nil {
				return nil, err
			}
			f := domain.Filtros{EmpleadoID: args.EmpleadoID, Restaurante: args.Restaurante}
			return q.Mensual(ctx, args.Anio, args.Mes, f)
		},
	})

	reg.Register(mcp.Tool{
		Name:        "estadisticas_asistencia",
		Description: "Genera estadisticas de asistencia para un periodo",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"fecha_inicio": map[string]any{"type": "string", "format": "date"},
				"fecha_fin":    map[string]any{"type": "string", "format": "date"},
				"restaurante":  map[string]any{"type": "string"},
			},
			"required": []string{"fecha_inicio", "fecha_fin"},
		},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			args, err := bind.ParseArgs[estadisticasArgs](raw)
			if err != nil {
				return nil, err
			}
			return q.Estadisticas(ctx, args.FechaInicio, args.FechaFin, args.Restaurante)
		},
	})

	reg.Register(mcp.Tool{
		Name:        "obtener_configuracion",
		Description: "Obtiene configuraciones del sistema para nomina",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"clave": map[string]any{"type": "string"},
			},
		},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			args, err := bind.ParseArgs[configuracionArgs](raw)
			if err != nil {
				return nil, err
			}
			return q.Configuracion(ctx, args.Clave)
		},
	})
}
