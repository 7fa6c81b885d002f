package server

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/juanmateuhub/wavelength/internal/game"
)

func restRouter(t *testing.T) (*chi.Mux, *game.Registry, *HighscoreStore) {
	t.Helper()
	registry := game.NewRegistry(rand.New(rand.NewPCG(3, 4)))
	scores := NewHighscoreStore(openTestDB(t))

	r := chi.NewRouter()
	r.Post("/create-room", handleCreateRoom(registry))
	r.Get("/room/{roomCode}", handleRoomInfo(registry))
	r.Get("/highscores", handleHighscores(scores))
	return r, registry, scores
}

func TestCreateRoom(t *testing.T) {
	router, registry, _ := restRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/create-room", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp CreateRoomResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.RoomCode) != 4 {
		t.Fatalf("room code %q is not 4 digits", resp.RoomCode)
	}
	if _, ok := registry.GetRoom(resp.RoomCode); !ok {
		t.Fatalf("created room %q not in registry", resp.RoomCode)
	}
}

func TestRoomInfo(t *testing.T) {
	router, registry, _ := restRouter(t)
	room := registry.CreateRoom()
	room.AddPlayer("p1", "Ana")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/room/"+room.Code(), nil))

	var resp RoomInfoResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Exists {
		t.Fatalf("exists = false for a live room")
	}
	if resp.State != game.PhaseWaiting {
		t.Errorf("state = %q, want %q", resp.State, game.PhaseWaiting)
	}
	if len(resp.Players) != 1 || resp.Players[0].Name != "Ana" {
		t.Errorf("players = %v, want [Ana]", resp.Players)
	}
}

func TestRoomInfoMissingRoom(t *testing.T) {
	router, _, _ := restRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/room/0000", nil))

	// A missing room is a normal answer, not an HTTP error.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp RoomInfoResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Exists {
		t.Fatalf("exists = true for an unknown code")
	}
}

func TestHighscoresEndpoint(t *testing.T) {
	router, _, scores := restRouter(t)
	if _, err := scores.Register(context.Background(), 6, 18, []string{"Ana", "Luis"}); err != nil {
		t.Fatalf("registering highscore: %v", err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/highscores", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp map[string][]HighscoreEntry
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp["6"]) != 1 || resp["6"][0].Score != 18 {
		t.Fatalf(`board "6" = %v, want one entry with score 18`, resp["6"])
	}
}
