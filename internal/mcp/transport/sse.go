package transport

import (
	"fmt"
	"io"
	stdhttp "net/http"

	"asistencia/internal/mcp"
	perr "asistencia/internal/platform/errors"
	"asistencia/internal/platform/logger"
	lumnet "asistencia/internal/platform/net"
	phttp "asistencia/internal/platform/net/http"
)

// SSE serves the event-stream transport: a long-lived GET /sse per client
// paired with POST /messages/?session_id=... for the requests
type SSE struct {
	d        *mcp.Dispatcher
	sessions *sessionTable
	log      *logger.Logger
}

// NewSSE wires the stream transport over a dispatcher
func NewSSE(d *mcp.Dispatcher) *SSE {
	return &SSE{d: d, sessions: newSessionTable(), log: logger.Named("sse")}
}

// Stream handles GET /sse. It announces the paired POST endpoint in an
// initial event and then relays every response as a data line. Closing
// the connection tears the session down and cancels in-flight handlers
func (t *SSE) Stream(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	flusher, ok := w.(stdhttp.Flusher)
	if !ok {
		phttp.RespondError(w, r, perr.Internalf("streaming no soportado por el servidor"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	// proxies must not buffer the stream
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(stdhttp.StatusOK)

	sess := t.sessions.add(r.Context())
	defer t.sessions.remove(sess.id)

	t.log.Info().Str("session_id", sess.id).Msg("sse stream opened")

	fmt.Fprintf(w, "event: endpoint\ndata: /messages/?session_id=%s\n\n", sess.id)
	flusher.Flush()

	go t.consume(sess)

	for {
		select {
		case <-sess.ctx.Done():
			t.log.Info().Str("session_id", sess.id).Msg("sse stream closed")
			return
		case msg := <-sess.outbound:
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

// consume drains the inbound queue in arrival order so responses keep
// the request order within the session
func (t *SSE) consume(sess *session) {
	ctx := logger.WithRequest(sess.ctx, "", sess.id)
	ctx = lumnet.WithRequest(ctx, "", sess.id)
	for {
		select {
		case <-sess.ctx.Done():
			return
		case raw := <-sess.inbound:
			sess.emit(t.d.Handle(ctx, raw))
		}
	}
}

// Message handles POST /messages/?session_id=...
// the request is queued for the session and answered over its stream
func (t *SSE) Message(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	id := r.URL.Query().Get("session_id")
	if id == "" {
		phttp.RespondError(w, r, perr.InvalidArgf("session_id requerido"))
		return
	}
	sess, ok := t.sessions.get(id)
	if !ok {
		phttp.RespondError(w, r, perr.NotFoundf("sesion '%s' no encontrada", id))
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		phttp.RespondError(w, r, perr.InvalidArgf("cuerpo ilegible: %v", err))
		return
	}

	if !sess.offer(body) {
		t.log.Warn().Str("session_id", id).Msg("inbound queue full")
		phttp.RespondError(w, r, perr.TooManyRequestsf("cola de sesion llena"))
		return
	}

	status, wire := lumnet.Accepted(nil, lumnet.RequestID(r.Context()))
	phttp.JSON(w, status, wire)
}
