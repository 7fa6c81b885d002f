package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandleHealth(t *testing.T) {
	db := openTestDB(t)

	rec := httptest.NewRecorder()
	handleHealth(discardLogger(), db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["sqlite"].Status != "ok" {
		t.Fatalf("sqlite status = %q, want ok", resp["sqlite"].Status)
	}
}

func TestHandleHealthClosedDatabase(t *testing.T) {
	db := openTestDB(t)
	db.Close()

	rec := httptest.NewRecorder()
	handleHealth(discardLogger(), db).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp["sqlite"].Status != "error" {
		t.Fatalf("sqlite status = %q, want error", resp["sqlite"].Status)
	}
}
