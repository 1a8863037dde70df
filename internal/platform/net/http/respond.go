// Package http provides the chi server seam and JSON response helpers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	lumnet "asistencia/internal/platform/net"
)

// JSON writes v as application/json with the given status.
// Non-ASCII is preserved as-is; encoding/json does not escape it
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONStatus writes only a status with an empty object body
func JSONStatus(w stdhttp.ResponseWriter, status int) {
	JSON(w, status, map[string]any{})
}

// RespondError maps a project error into the plain HTTP envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	reqID := lumnet.RequestID(r.Context())
	status, wire := lumnet.Error(err, reqID)
	JSON(w, status, wire)
}
