package game

import (
	"fmt"
	"math/rand/v2"
	"sync"
)

// Registry owns every live room, keyed by a 4-digit code. Rooms live
// for the process lifetime; codes only need to be unique among live
// rooms, not over time.
type Registry struct {
	mu    sync.RWMutex
	rng   *rand.Rand
	rooms map[string]*Room
}

func NewRegistry(rng *rand.Rand) *Registry {
	return &Registry{
		rng:   rng,
		rooms: make(map[string]*Room),
	}
}

// CreateRoom generates a fresh code, retrying on collision, and
// registers a new room under it. Each room gets its own random source
// so rooms never contend on one generator.
func (g *Registry) CreateRoom() *Room {
	g.mu.Lock()
	defer g.mu.Unlock()

	code := g.newCode()
	for {
		if _, taken := g.rooms[code]; !taken {
			break
		}
		code = g.newCode()
	}
	room := NewRoom(code, rand.New(rand.NewPCG(g.rng.Uint64(), g.rng.Uint64())))
	g.rooms[code] = room
	return room
}

// GetRoom is a pure lookup.
func (g *Registry) GetRoom(code string) (*Room, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	room, ok := g.rooms[code]
	return room, ok
}

func (g *Registry) newCode() string {
	return fmt.Sprintf("%d", 1000+g.rng.IntN(9000))
}
