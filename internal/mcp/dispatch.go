package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	perr "asistencia/internal/platform/errors"
	"asistencia/internal/platform/logger"
)

// Dispatcher is the pure request engine shared by every transport.
// It takes one raw JSON-RPC message and returns the raw response bytes,
// never closing over transport state
type Dispatcher struct {
	reg *Registry
	log *logger.Logger
}

// NewDispatcher wires a dispatcher over a registry
func NewDispatcher(reg *Registry) *Dispatcher {
	return &Dispatcher{reg: reg, log: logger.Named("mcp")}
}

// InitializeResult is the handshake payload, also served on GET /mcp for discovery
func (d *Dispatcher) InitializeResult() map[string]any {
	return map[string]any{
		"protocolVersion": ProtocolVersion,
		"capabilities":    map[string]any{"tools": map[string]any{}},
		"serverInfo": map[string]any{
			"name":    ServerName,
			"version": ServerVersion,
		},
	}
}

// Handle processes one raw message and returns the marshaled response.
// A malformed payload yields a -32700 with null id
func (d *Dispatcher) Handle(ctx context.Context, raw []byte) []byte {
	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		d.log.Warn().Err(err).Msg("unparseable rpc payload")
		return d.marshal(NewError(nil, perr.RPCParseError, "Parse error"))
	}
	return d.marshal(d.dispatch(ctx, req))
}

func (d *Dispatcher) dispatch(ctx context.Context, req Request) Response {
	switch {
	case req.Method == "initialize":
		return NewResult(req.ID, d.InitializeResult())

	case req.Method == "tools/list":
		return NewResult(req.ID, map[string]any{"tools": d.reg.List()})

	case req.Method == "tools/call":
		return d.callTool(ctx, req)

	case strings.HasPrefix(req.Method, "notifications/"):
		// fire-and-forget in the base protocol, but upstream agents expect an ack
		return NewResult(req.ID, map[string]any{})

	default:
		return NewError(req.ID, perr.RPCMethodNotFound, "Method not found: "+req.Method)
	}
}

type callParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

func (d *Dispatcher) callTool(ctx context.Context, req Request) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().Interface("panic", r).Msg("tool handler panicked")
			resp = NewError(req.ID, perr.RPCInternalError, fmt.Sprintf("internal error: %v", r))
		}
	}()

	var p callParams
	if err := json.Unmarshal(req.Params, &p); err != nil || p.Name == "" {
		return NewError(req.ID, perr.RPCInvalidParams, "tools/call requires params.name")
	}

	tool, ok := d.reg.Lookup(p.Name)
	if !ok {
		return NewError(req.ID, perr.RPCMethodNotFound, fmt.Sprintf("Herramienta '%s' no encontrada", p.Name))
	}

	out, err := tool.Handler(ctx, p.Arguments)
	if err != nil {
		code, msg := perr.RPC(err)
		logger.C(ctx).Warn().Str("tool", p.Name).Int("rpc_code", code).Str("error", msg).Msg("tool call failed")
		return NewError(req.ID, code, msg)
	}

	res, err := TextResult(out)
	if err != nil {
		d.log.Error().Err(err).Str("tool", p.Name).Msg("result marshal failed")
		return NewError(req.ID, perr.RPCInternalError, "result serialization failed")
	}
	return NewResult(req.ID, res)
}

func (d *Dispatcher) marshal(resp Response) []byte {
	b, err := json.Marshal(resp)
	if err != nil {
		// results are built from maps and plain structs so this should not happen
		d.log.Error().Err(err).Msg("response marshal failed")
		fallback := NewError(resp.ID, perr.RPCInternalError, "response serialization failed")
		b, _ = json.Marshal(fallback)
	}
	return b
}
