package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleOpenAPI(t *testing.T) {
	rec := httptest.NewRecorder()
	handleOpenAPI().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var spec struct {
		OpenAPI string         `json:"openapi"`
		Paths   map[string]any `json:"paths"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&spec); err != nil {
		t.Fatalf("decoding spec: %v", err)
	}
	if spec.OpenAPI == "" {
		t.Fatalf("spec has no openapi version")
	}
	for _, path := range []string{"/healthz", "/create-room", "/room/{roomCode}", "/highscores", "/ws/{roomCode}/{playerID}"} {
		if _, ok := spec.Paths[path]; !ok {
			t.Errorf("spec is missing path %s", path)
		}
	}
}
