package transport

import (
	"io"
	stdhttp "net/http"

	"asistencia/internal/mcp"
	perr "asistencia/internal/platform/errors"
	phttp "asistencia/internal/platform/net/http"
)

// HTTP serves the sessionless transport: GET /mcp for discovery and
// POST /mcp for synchronous dispatch
type HTTP struct {
	d *mcp.Dispatcher
}

// NewHTTP wires the plain HTTP transport over a dispatcher
func NewHTTP(d *mcp.Dispatcher) *HTTP {
	return &HTTP{d: d}
}

// Discover handles GET /mcp with an initialize-shaped result so clients
// can probe capabilities without a handshake
func (t *HTTP) Discover(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	phttp.JSON(w, stdhttp.StatusOK, mcp.NewResult(nil, t.d.InitializeResult()))
}

// Call handles POST /mcp: one request in, one response out, no session state.
// Concurrent posts dispatch in parallel and cancel with the client
func (t *HTTP) Call(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		phttp.RespondError(w, r, perr.InvalidArgf("cuerpo ilegible: %v", err))
		return
	}
	out := t.d.Handle(r.Context(), body)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(stdhttp.StatusOK)
	_, _ = w.Write(out)
}

// Health reports liveness for GET / and GET /health
func Health(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	phttp.JSON(w, stdhttp.StatusOK, map[string]any{
		"status":  "healthy",
		"service": mcp.ServerName,
		"version": mcp.ServerVersion,
	})
}

// Mount wires every transport route onto r
func Mount(r phttp.Router, d *mcp.Dispatcher) {
	sse := NewSSE(d)
	api := NewHTTP(d)

	r.Get("/", Health)
	r.Get("/health", Health)

	r.Get("/sse", sse.Stream)
	r.Post("/messages/", sse.Message)

	r.Get("/mcp", api.Discover)
	r.Post("/mcp", api.Call)
}
