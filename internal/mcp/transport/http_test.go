package transport

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"asistencia/internal/mcp"
	phttp "asistencia/internal/platform/net/http"
)

func testDispatcher() *mcp.Dispatcher {
	reg := mcp.NewRegistry()
	reg.Register(mcp.Tool{
		Name:        "eco",
		Description: "devuelve sus argumentos",
		InputSchema: map[string]any{"type": "object"},
		Handler: func(_ context.Context, raw json.RawMessage) (any, error) {
			var v map[string]any
			_ = json.Unmarshal(raw, &v)
			return v, nil
		},
	})
	reg.Freeze()
	return mcp.NewDispatcher(reg)
}

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	m := chi.NewRouter()
	Mount(phttp.AdaptChi(m), testDispatcher())
	srv := httptest.NewServer(m)
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth_Forma(t *testing.T) {
	srv := testServer(t)

	for _, path := range []string{"/", "/health"} {
		res, err := srv.Client().Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		var body map[string]string
		if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		res.Body.Close()

		if res.StatusCode != 200 {
			t.Fatalf("GET %s status = %d", path, res.StatusCode)
		}
		if body["status"] != "healthy" || body["service"] != mcp.ServerName || body["version"] != mcp.ServerVersion {
			t.Fatalf("GET %s body = %v", path, body)
		}
	}
}

func TestDiscover_FormaInitialize(t *testing.T) {
	srv := testServer(t)

	res, err := srv.Client().Get(srv.URL + "/mcp")
	if err != nil {
		t.Fatalf("GET /mcp: %v", err)
	}
	defer res.Body.Close()

	var resp struct {
		JSONRPC string `json:"jsonrpc"`
		Result  struct {
			ProtocolVersion string `json:"protocolVersion"`
			ServerInfo      struct {
				Name string `json:"name"`
			} `json:"serverInfo"`
		} `json:"result"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.JSONRPC != "2.0" || resp.Result.ProtocolVersion != mcp.ProtocolVersion {
		t.Fatalf("discovery = %+v", resp)
	}
	if resp.Result.ServerInfo.Name != mcp.ServerName {
		t.Fatalf("serverInfo.name = %q", resp.Result.ServerInfo.Name)
	}
}

func TestCall_DespachoSincrono(t *testing.T) {
	srv := testServer(t)

	req := `{"jsonrpc":"2.0","id":7,"method":"tools/call","params":{"name":"eco","arguments":{"hola":"mundo"}}}`
	res, err := srv.Client().Post(srv.URL+"/mcp", "application/json", strings.NewReader(req))
	if err != nil {
		t.Fatalf("POST /mcp: %v", err)
	}
	defer res.Body.Close()

	var resp struct {
		ID     int `json:"id"`
		Result struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"result"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != 7 || len(resp.Result.Content) != 1 || resp.Result.Content[0].Type != "text" {
		t.Fatalf("respuesta = %+v", resp)
	}
	if !strings.Contains(resp.Result.Content[0].Text, `"hola": "mundo"`) {
		t.Fatalf("texto = %s", resp.Result.Content[0].Text)
	}
}

func TestCall_ErrorDeParseo(t *testing.T) {
	srv := testServer(t)

	res, err := srv.Client().Post(srv.URL+"/mcp", "application/json", strings.NewReader("{no es json"))
	if err != nil {
		t.Fatalf("POST /mcp: %v", err)
	}
	defer res.Body.Close()

	var resp struct {
		ID    json.RawMessage `json:"id"`
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Code != -32700 || resp.Error.Message != "Parse error" {
		t.Fatalf("error = %+v", resp.Error)
	}
	if string(resp.ID) != "null" {
		t.Fatalf("id = %s, debe ser null", resp.ID)
	}
}

func TestMessage_SesionDesconocida(t *testing.T) {
	srv := testServer(t)

	res, err := srv.Client().Post(
		srv.URL+"/messages/?session_id=no-existe", "application/json", strings.NewReader("{}"))
	if err != nil {
		t.Fatalf("POST /messages/: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != 404 {
		t.Fatalf("status = %d, esperaba 404", res.StatusCode)
	}
}

func TestSSE_IdaYVuelta(t *testing.T) {
	srv := testServer(t)

	res, err := srv.Client().Get(srv.URL + "/sse")
	if err != nil {
		t.Fatalf("GET /sse: %v", err)
	}
	defer res.Body.Close()

	if ct := res.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if cc := res.Header.Get("Cache-Control"); cc != "no-cache" {
		t.Fatalf("Cache-Control = %q", cc)
	}

	sc := bufio.NewScanner(res.Body)
	endpoint := readEvent(t, sc)
	if !strings.HasPrefix(endpoint, "/messages/?session_id=") {
		t.Fatalf("evento inicial = %q", endpoint)
	}

	req := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`
	post, err := srv.Client().Post(srv.URL+endpoint, "application/json", strings.NewReader(req))
	if err != nil {
		t.Fatalf("POST %s: %v", endpoint, err)
	}
	post.Body.Close()
	if post.StatusCode != 202 {
		t.Fatalf("status = %d, esperaba 202", post.StatusCode)
	}

	data := readEvent(t, sc)
	var resp struct {
		ID     int `json:"id"`
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		t.Fatalf("decode %q: %v", data, err)
	}
	if resp.ID != 1 || len(resp.Result.Tools) != 1 || resp.Result.Tools[0].Name != "eco" {
		t.Fatalf("tools/list por sse = %+v", resp)
	}
}

// readEvent scans the body until the next data line, failing on timeout
// via the scanner hitting EOF when the server closes
func readEvent(t *testing.T, sc *bufio.Scanner) string {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for sc.Scan() {
		if time.Now().After(deadline) {
			break
		}
		line := sc.Text()
		if strings.HasPrefix(line, "data: ") {
			return strings.TrimPrefix(line, "data: ")
		}
	}
	t.Fatalf("sin evento data en el stream: %v", sc.Err())
	return ""
}
