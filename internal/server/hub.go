package server

import (
	"encoding/json"
	"sync"

	"github.com/juanmateuhub/wavelength/internal/game"
)

const sessionBuffer = 64

// session is one player's live connection: a buffered outbound queue
// drained by the connection's write pump. Sends never block; a slow or
// dead client drops frames instead of holding up the room.
type session struct {
	playerID string
	out      chan []byte
}

func newSession(playerID string) *session {
	return &session{
		playerID: playerID,
		out:      make(chan []byte, sessionBuffer),
	}
}

func (s *session) send(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	select {
	case s.out <- data:
	default:
		// Drop if the client can't keep up.
	}
}

// roomConn ties a room to its currently connected players. The room's
// own lock serializes game mutation; mu here only guards the session
// map, which connect/disconnect touch from other goroutines.
type roomConn struct {
	room     *game.Room
	mu       sync.Mutex
	sessions map[string]*session
}

// broadcast marshals once and fans out to every connected session.
func (rc *roomConn) broadcast(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	for _, s := range rc.sessions {
		select {
		case s.out <- data:
		default:
		}
	}
}

// connectedIDs returns the player ids with a live session.
func (rc *roomConn) connectedIDs() []string {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	ids := make([]string, 0, len(rc.sessions))
	for id := range rc.sessions {
		ids = append(ids, id)
	}
	return ids
}

// unicast sends to one connected player, if present.
func (rc *roomConn) unicast(playerID string, v any) {
	rc.mu.Lock()
	s, ok := rc.sessions[playerID]
	rc.mu.Unlock()
	if ok {
		s.send(v)
	}
}

// hub is the session directory: room code → connected players. Being
// connected is distinct from being registered in the room — a player
// can hold game state while their channel is gone.
type hub struct {
	mu    sync.Mutex
	rooms map[string]*roomConn
}

func newHub() *hub {
	return &hub{rooms: make(map[string]*roomConn)}
}

// connect registers a session for the given room, creating the room's
// connection table on first use. A reconnect under the same player id
// replaces the previous session.
func (h *hub) connect(room *game.Room, playerID string) (*roomConn, *session) {
	h.mu.Lock()
	rc, ok := h.rooms[room.Code()]
	if !ok {
		rc = &roomConn{room: room, sessions: make(map[string]*session)}
		h.rooms[room.Code()] = rc
	}
	h.mu.Unlock()

	sess := newSession(playerID)
	rc.mu.Lock()
	rc.sessions[playerID] = sess
	rc.mu.Unlock()
	return rc, sess
}

// disconnect drops the session. The room itself stays registered; only
// the live channel goes away.
func (h *hub) disconnect(rc *roomConn, sess *session) {
	rc.mu.Lock()
	if rc.sessions[sess.playerID] == sess {
		delete(rc.sessions, sess.playerID)
	}
	rc.mu.Unlock()
}
