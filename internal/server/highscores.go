package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
)

const leaderboardSize = 5

// HighscoreEntry is one leaderboard row.
type HighscoreEntry struct {
	Score   int      `json:"score"`
	Players []string `json:"players"`
	Date    string   `json:"date"`
}

// HighscoreStore keeps the best team scores per total-dial-count in
// SQLite. Registering a result appends it, trims the board back to the
// top five, and returns the board.
type HighscoreStore struct {
	db *sql.DB
}

func NewHighscoreStore(db *sql.DB) *HighscoreStore {
	return &HighscoreStore{db: db}
}

// Register records a finished game under its dial count and returns
// the updated leaderboard for that count.
func (s *HighscoreStore) Register(ctx context.Context, totalDials, score int, players []string) ([]HighscoreEntry, error) {
	names, err := json.Marshal(players)
	if err != nil {
		return nil, fmt.Errorf("encoding player names: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO highscores (total_dials, score, players, created_at)
		VALUES (?, ?, ?, strftime('%Y-%m-%d', 'now'))
	`, totalDials, score, string(names))
	if err != nil {
		return nil, fmt.Errorf("inserting highscore: %w", err)
	}

	// Older entries win ties, so a newcomer has to beat the board.
	_, err = s.db.ExecContext(ctx, `
		DELETE FROM highscores
		WHERE total_dials = ? AND id NOT IN (
			SELECT id FROM highscores
			WHERE total_dials = ?
			ORDER BY score DESC, id ASC
			LIMIT ?
		)
	`, totalDials, totalDials, leaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("truncating leaderboard: %w", err)
	}

	return s.Leaderboard(ctx, totalDials)
}

// Leaderboard returns the board for one dial count, best first.
func (s *HighscoreStore) Leaderboard(ctx context.Context, totalDials int) ([]HighscoreEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT score, players, created_at FROM highscores
		WHERE total_dials = ?
		ORDER BY score DESC, id ASC
	`, totalDials)
	if err != nil {
		return nil, fmt.Errorf("loading leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []HighscoreEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// All returns every leaderboard, keyed by total-dial-count.
func (s *HighscoreStore) All(ctx context.Context) (map[string][]HighscoreEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT total_dials, score, players, created_at FROM highscores
		ORDER BY total_dials ASC, score DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("loading highscores: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]HighscoreEntry)
	for rows.Next() {
		var dials int
		var e HighscoreEntry
		var names string
		if err := rows.Scan(&dials, &e.Score, &names, &e.Date); err != nil {
			return nil, fmt.Errorf("scanning highscore: %w", err)
		}
		if err := json.Unmarshal([]byte(names), &e.Players); err != nil {
			return nil, fmt.Errorf("decoding player names: %w", err)
		}
		key := strconv.Itoa(dials)
		out[key] = append(out[key], e)
	}
	return out, rows.Err()
}

func scanEntry(rows *sql.Rows) (HighscoreEntry, error) {
	var e HighscoreEntry
	var names string
	if err := rows.Scan(&e.Score, &names, &e.Date); err != nil {
		return e, fmt.Errorf("scanning highscore: %w", err)
	}
	if err := json.Unmarshal([]byte(names), &e.Players); err != nil {
		return e, fmt.Errorf("decoding player names: %w", err)
	}
	return e, nil
}
