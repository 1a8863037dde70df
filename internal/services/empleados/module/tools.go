package module

import (
	"context"
	"encoding/json"

	"asistencia/internal/mcp"
	"asistencia/internal/mcp/bind"
	"asistencia/internal/services/empleados/domain"
)

type consultarArgs struct {
	ActivosSolo  *bool   `json:"activos_solo"`
	Restaurante  *string `json:"restaurante"`
	Departamento *string `json:"departamento"`
}

type buscarArgs struct {
	Termino string `json:"termino" validate:"required"`
}

func registerTools(reg *mcp.Registry, q domain.QueryPort) {
	reg.Register(mcp.Tool{
		Name:        "consultar_empleados",
		Description: "Lista empleados del sistema con filtros opcionales por restaurante y departamento",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"activos_solo": map[string]any{"type": "boolean", "default": true, "description": "Solo empleados activos"},
				"restaurante":  map[string]any{"type": "string", "description": "Filtrar por restaurante"},
				"departamento": map[string]any{"type": "string", "description": "Filtrar por departamento"},
			},
		},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			args, err := bind.ParseArgs[consultarArgs](raw)
			if err != nil {
				return nil, err
			}
			f := domain.Filtros{
				// absent means "only active", an explicit false widens the listing
				ActivosSolo:  args.ActivosSolo == nil || *args.ActivosSolo,
				Restaurante:  args.Restaurante,
				Departamento: args.Departamento,
			}
			return q.Consultar(ctx, f)
		},
	})

	reg.Register(mcp.Tool{
		Name:        "buscar_empleado",
		Description: "Busca empleados por codigo, nombre o apellido",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"termino": map[string]any{"type": "string", "description": "Texto a buscar"},
			},
			"required": []string{"termino"},
		},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			args, err := bind.ParseArgs[buscarArgs](raw)
			if err != nil {
				return nil, err
			}
			return q.Buscar(ctx, args.Termino)
		},
	})
}
