package bind

import (
	"encoding/json"
	"strings"
	"testing"

	perr "asistencia/internal/platform/errors"
)

type reporteArgs struct {
	Fecha      string `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	EmpleadoID string `json:"empleado_id" validate:"omitempty,uuid"`
	Mes        int    `json:"mes" validate:"omitempty,min=1,max=12"`
	Quincena   int    `json:"quincena" validate:"omitempty,oneof=1 2"`
}

func TestParseArgs_ValidPayload(t *testing.T) {
	raw := json.RawMessage(`{"fecha":"2025-03-10","empleado_id":"7b69114e-9a84-4c3e-8a5a-2b2f6e5d9c01","mes":3,"quincena":1}`)
	got, err := ParseArgs[reporteArgs](raw)
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if got.Fecha != "2025-03-10" || got.Mes != 3 || got.Quincena != 1 {
		t.Fatalf("decoded mismatch: %+v", got)
	}
}

func TestParseArgs_EmptyArgumentsKeepsDefaults(t *testing.T) {
	got, err := ParseArgs[reporteArgs](nil)
	if err != nil {
		t.Fatalf("ParseArgs(nil): %v", err)
	}
	if got != (reporteArgs{}) {
		t.Fatalf("expected zero args, got %+v", got)
	}
}

func TestParseArgs_BadDateIsInvalidArgument(t *testing.T) {
	_, err := ParseArgs[reporteArgs](json.RawMessage(`{"fecha":"10/03/2025"}`))
	if err == nil {
		t.Fatalf("expected error for malformed date")
	}
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("code = %v, want invalid argument", perr.CodeOf(err))
	}
	if !strings.Contains(err.Error(), "fecha") {
		t.Fatalf("message should name the json field: %q", err.Error())
	}
}

func TestParseArgs_QuincenaOutOfRange(t *testing.T) {
	_, err := ParseArgs[reporteArgs](json.RawMessage(`{"quincena":3}`))
	if err == nil || !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestParseArgs_UnknownFieldRejected(t *testing.T) {
	_, err := ParseArgs[reporteArgs](json.RawMessage(`{"fechas":"2025-03-10"}`))
	if err == nil || !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument for unknown field, got %v", err)
	}
}

func TestParseArgs_MalformedJSON(t *testing.T) {
	_, err := ParseArgs[reporteArgs](json.RawMessage(`{"mes":`))
	if err == nil || !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("expected invalid argument for malformed json, got %v", err)
	}
}
