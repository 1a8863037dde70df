package module

import (
	"context"
	"encoding/json"

	"asistencia/internal/mcp"
	"asistencia/internal/mcp/bind"
	"asistencia/internal/services/nomina/domain"
)

type quincenalArgs struct {
	Anio        int     `json:"anio" validate:"required"`
	Mes         int     `json:"mes" validate:"required,min=1,max=12"`
	Quincena    int     `json:"quincena" validate:"required,oneof=1 2"`
	Restaurante *string `json:"restaurante"`
}

func registerTools(reg *mcp.Registry, q domain.QueryPort) {
	reg.Register(mcp.Tool{
		Name:        "resumen_nomina_quincenal",
		Description: "Genera resumen para liquidacion de nomina quincenal",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"anio":        map[string]any{"type": "integer"},
				"mes":         map[string]any{"type": "integer", "minimum": 1, "maximum": 12},
				"quincena":    map[string]any{"type": "integer", "enum": []int{1, 2}},
				"restaurante": map[string]any{"type": "string"},
			},
			"required": []string{"anio", "mes", "quincena"},
		},
		Handler: func(ctx context.Context, raw json.RawMessage) (any, error) {
			args, err := bind.ParseArgs[quincenalArgs](raw)
			if err != nil {
				return nil, err
			}
			return q.Quincenal(ctx, args.Anio, args.Mes, args.Quincena, args.Restaurante)
		},
	})
}
