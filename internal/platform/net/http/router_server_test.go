package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestAdaptChi_RoutesAndGroups(t *testing.T) {
	m := chi.NewRouter()
	r := AdaptChi(m)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
	r.Route("/mcp", func(sub Router) {
		sub.Post("/", func(w http.ResponseWriter, _ *http.Request) {
			JSONStatus(w, http.StatusAccepted)
		})
	})
	r.Group(func(sub Router) {
		sub.Get("/inside", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	})

	srv := httptest.NewServer(r.Mux())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/ping")
	if err != nil {
		t.Fatalf("GET /ping: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /ping status = %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "healthy" {
		t.Fatalf("body mismatch: %v", body)
	}

	resp2, err := http.Post(srv.URL+"/mcp/", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /mcp/: %v", err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusAccepted {
		t.Fatalf("POST /mcp/ status = %d", resp2.StatusCode)
	}

	resp3, err := http.Get(srv.URL + "/inside")
	if err != nil {
		t.Fatalf("GET /inside: %v", err)
	}
	resp3.Body.Close()
	if resp3.StatusCode != http.StatusNoContent {
		t.Fatalf("GET /inside status = %d", resp3.StatusCode)
	}
}

func TestJSONPreservesNonASCII(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]string{"periodo": "Quincena 1 - Marzo 2025", "area": "Cocina área"})
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
	got := rec.Body.String()
	if !strings.Contains(got, "Cocina área") {
		t.Fatalf("non-ASCII not preserved: %q", got)
	}
}
