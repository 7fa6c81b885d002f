package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"

	"github.com/juanmateuhub/wavelength/internal/game"
)

// handleWS is the per-player bidirectional channel. The URL carries
// the room code and the player id; identity is the caller's problem,
// not ours. An unknown room code is the one error the protocol
// surfaces, and it terminates the channel.
func handleWS(logger *slog.Logger, registry *game.Registry, h *hub, d *dispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		roomCode := chi.URLParam(r, "roomCode")
		playerID := chi.URLParam(r, "playerID")

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		room, ok := registry.GetRoom(roomCode)
		if !ok {
			data, _ := json.Marshal(errorMsg{Type: msgError, Message: "Sala no encontrada"})
			_ = conn.Write(ctx, websocket.MessageText, data)
			conn.Close(websocket.StatusPolicyViolation, "room not found")
			return
		}

		rc, sess := h.connect(room, playerID)
		go writePump(ctx, conn, sess)

		// New channels get the current state straight away, before any
		// of their own messages are processed.
		room.Lock()
		d.broadcastGameState(rc)
		room.Unlock()

		for {
			typ, data, err := conn.Read(ctx)
			if err != nil {
				logger.Debug("websocket read ended",
					"room", roomCode, "player", playerID, "error", err)
				break
			}
			if typ != websocket.MessageText {
				continue
			}
			var in inbound
			if err := json.Unmarshal(data, &in); err != nil {
				logger.Debug("dropping malformed message",
					"room", roomCode, "player", playerID, "error", err)
				continue
			}
			d.dispatch(ctx, rc, sess, in)
		}

		h.disconnect(rc, sess)
		// The request context dies with the connection; cleanup still
		// has to broadcast and may write the highscore row.
		d.playerGone(context.WithoutCancel(ctx), rc, playerID)
	}
}

func writePump(ctx context.Context, conn *websocket.Conn, sess *session) {
	for {
		select {
		case <-ctx.Done():
			return
		case data := <-sess.out:
			if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
				return
			}
		}
	}
}
