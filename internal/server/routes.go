package server

import (
	"database/sql"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/juanmateuhub/wavelength/internal/game"
)

func addRoutes(r chi.Router, logger *slog.Logger, registry *game.Registry, scores *HighscoreStore, db *sql.DB, spaDir string) {
	h := newHub()
	d := newDispatcher(logger, scores)

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Wavelength API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db))

	// Original wire surface — paths the frontend already knows.
	r.Post("/create-room", handleCreateRoom(registry))
	r.Get("/room/{roomCode}", handleRoomInfo(registry))
	r.Get("/highscores", handleHighscores(scores))
	r.Get("/ws/{roomCode}/{playerID}", handleWS(logger, registry, h, d))

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
