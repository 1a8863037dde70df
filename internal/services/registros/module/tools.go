package module

import (
	"context"
	"encoding/json"

	"asistencia/internal/mcp"
	"asistencia/internal/mcp/bind"
	"asistencia/internal/services/registros/domain"
)

type fechaArgs struct {
	Fecha       string  `json:"fecha" validate:"required,datetime=2006-01-02"`
	EmpleadoID  *string `json:"empleado_id" validate:"omitempty,uuid"`
	Restaurante *string `json:"restaurante"`
	Tipo        *string `json:"tipo" validate:"omitempty,oneof=ENTRADA SALIDA"`
}

type rangoArgs struct {
	FechaInicio string  `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string  `json:"fecha_fin" validate:"required,datetime=2006-01-02"`
	EmpleadoID  *string `json:"empleado_id" validate:"omitempty,uuid"`
	Restaurante *string `json:"restaurante"`
}

type ultimoArgs struct {
	EmpleadoID string `json:"empleado_id" validate:"required,uuid"`
}

type sinSalidaArgs struct {
	Fecha string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
}

func registerTools(reg *mcp.Registry, q domain.QueryPort) {
	reg.Register(mcp.Tool{
		Name:        "consultar_registros_fecha",
		Description: "Consulta registros de entrada/salida de una fecha especifica",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"fecha":       map[string]any{"type": "string", "format": "date"},
				"empleado_id": map[string]any{"type": "string"},
				"restaurante": map[string]any{"type": "string"},
				"tipo":        map[string]any{"type": "string", "enum": []string{"ENTRADA", "SALIDA"}},
			},
			"required": []string{"fecha"},
		},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			args, err := bind.ParseArgs[fechaArgs](raw)
			if err != nil {
				return nil, err
			}
			f := domain.Filtros{
				EmpleadoID:  args.EmpleadoID,
				Restaurante: args.Restaurante,
				Tipo:        args.Tipo,
			}
			return q.ConsultarFecha(ctx, args.Fecha, f)
		},
	})

	reg.Register(mcp.Tool{
		Name:        "consultar_registros_rango",
		Description: "Consulta registros en un rango de fechas",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"fecha_inicio": map[string]any{"type": "string", "format": "date"},
				"fecha_fin":    map[string]any{"type": "string", "format": "date"},
				"empleado_id":  map[string]any{"type": "string"},
				"restaurante":  map[string]any{"type": "string"},
			},
			"required": []string{"fecha_inicio", "fecha_fin"},
		},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			args, err := bind.ParseArgs[rangoArgs](raw)
			if err != nil {
				return nil, err
			}
			f := domain.FiltrosRango{
				EmpleadoID:  args.EmpleadoID,
				Restaurante: args.Restaurante,
			}
			return q.ConsultarRango(ctx, args.FechaInicio, args.FechaFin, f)
		},
	})

	reg.Register(mcp.Tool{
		Name:        "obtener_ultimo_registro",
		Description: "Obtiene el ultimo registro de un empleado",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"empleado_id": map[string]any{"type": "string"},
			},
			"required": []string{"empleado_id"},
		},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			args, err := bind.ParseArgs[ultimoArgs](raw)
			if err != nil {
				return nil, err
			}
			return q.Ultimo(ctx, args.EmpleadoID)
		},
	})

	reg.Register(mcp.Tool{
		Name:        "empleados_sin_salida",
		Description: "Lista empleados con entrada pero sin salida en una fecha",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"fecha": map[string]any{"type": "string", "format": "date"},
			},
		},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			args, err := bind.ParseArgs[sinSalidaArgs](raw)
			if err != nil {
				return nil, err
			}
			return q.SinSalida(ctx, args.Fecha)
		},
	})
}
