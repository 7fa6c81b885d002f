package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Wavelength API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the Wavelength party guessing game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /create-room
	postCreateRoom, _ := r.NewOperationContext(http.MethodPost, "/create-room")
	postCreateRoom.SetSummary("Create room")
	postCreateRoom.SetDescription("Creates a new room and returns its 4-digit code.")
	postCreateRoom.AddRespStructure(CreateRoomResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postCreateRoom)

	// GET /room/{roomCode}
	getRoom, _ := r.NewOperationContext(http.MethodGet, "/room/{roomCode}")
	getRoom.SetSummary("Check room")
	getRoom.SetDescription("Reports whether a room exists, with its player list and phase.")
	getRoom.AddRespStructure(RoomInfoResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getRoom)

	// GET /highscores
	getHighscores, _ := r.NewOperationContext(http.MethodGet, "/highscores")
	getHighscores.SetSummary("Highscores")
	getHighscores.SetDescription("Returns the stored leaderboards keyed by total dial count, best five per key.")
	getHighscores.AddRespStructure(map[string][]HighscoreEntry{}, openapi.WithHTTPStatus(http.StatusOK))
	getHighscores.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(getHighscores)

	// GET /ws/{roomCode}/{playerID}
	getWS, _ := r.NewOperationContext(http.MethodGet, "/ws/{roomCode}/{playerID}")
	getWS.SetSummary("Game channel")
	getWS.SetDescription("Upgrades to the player's WebSocket channel for the given room. " +
		"Carries flat JSON game messages with a type discriminator.")
	getWS.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWS)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
