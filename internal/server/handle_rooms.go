package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/juanmateuhub/wavelength/internal/game"
)

type CreateRoomResponse struct {
	RoomCode string `json:"room_code"`
}

// RoomInfoResponse mirrors the original check-room endpoint: a missing
// room is not an HTTP error, just exists=false.
type RoomInfoResponse struct {
	Exists  bool              `json:"exists"`
	Players []game.PlayerInfo `json:"players,omitempty"`
	State   game.Phase        `json:"state,omitempty"`
}

func handleCreateRoom(registry *game.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room := registry.CreateRoom()
		writeJSON(w, http.StatusOK, CreateRoomResponse{RoomCode: room.Code()})
	}
}

func handleRoomInfo(registry *game.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		room, ok := registry.GetRoom(chi.URLParam(r, "roomCode"))
		if !ok {
			writeJSON(w, http.StatusOK, RoomInfoResponse{Exists: false})
			return
		}
		room.Lock()
		resp := RoomInfoResponse{Exists: true, Players: room.PlayerList(), State: room.Phase()}
		room.Unlock()
		writeJSON(w, http.StatusOK, resp)
	}
}

func handleHighscores(scores *HighscoreStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := scores.All(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, board)
	}
}
