package game

import (
	"math/rand/v2"
	"sync"
)

type Phase string

const (
	PhaseWaiting  Phase = "waiting"
	PhaseWriting  Phase = "writing"
	PhaseGuessing Phase = "guessing"
	PhaseFinished Phase = "finished"
)

type Mode string

const (
	// ModeFree lets every writer pick their own dial adjectives.
	ModeFree Mode = "free"
	// ModeBattery deals adjective pairs from the shared pool.
	ModeBattery Mode = "battery"
)

// ScoringPolicy selects how points are awarded on each reveal.
type ScoringPolicy string

const (
	ScoringTeam       ScoringPolicy = "team"
	ScoringIndividual ScoringPolicy = "individual"
)

// Target positions are drawn uniformly from [targetMin, targetMax];
// the needle always starts in the middle of the dial.
const (
	targetMin     = 5
	targetMax     = 175
	defaultNeedle = 90
)

// ClueRef identifies one entry of the guessing order: a player and
// which of their clues is up.
type ClueRef struct {
	PlayerID  string
	ClueIndex int
}

// PlayerInfo is the public view of a player, re-derived from the room
// every time it is sent.
type PlayerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// ClueInfo is everything guessers may see about the active clue. The
// target position is deliberately absent.
type ClueInfo struct {
	OwnerID        string `json:"owner_id"`
	OwnerName      string `json:"owner_name"`
	Phrase         string `json:"phrase"`
	LeftAdjective  string `json:"left_adjective"`
	RightAdjective string `json:"right_adjective"`
	ClueNumber     int    `json:"clue_number"`
	TotalClues     int    `json:"total_clues"`
}

// WritingState is a player's private view of their own next clue to
// write, target included.
type WritingState struct {
	TargetPosition int    `json:"target_position"`
	LeftAdjective  string `json:"left_adjective"`
	RightAdjective string `json:"right_adjective"`
	ClueNumber     int    `json:"clue_number"`
	TotalClues     int    `json:"total_clues"`
}

// Room is one game's full state. Methods never lock: the embedded
// mutex is the per-room lock, held by the server across every mutation
// and the broadcasts that follow it, so clients observe changes in
// causal order.
type Room struct {
	sync.Mutex

	code string
	rng  *rand.Rand
	pool *PairPool

	players map[string]*Player
	order   []string // join order; first joiner becomes host
	hostID  string

	phase     Phase
	numRounds int
	mode      Mode
	scoring   ScoringPolicy

	guessingOrder      []ClueRef
	currentGuessIndex  int
	lastNeedlePosition int
	teamScore          int
}

func NewRoom(code string, rng *rand.Rand) *Room {
	return &Room{
		code:               code,
		rng:                rng,
		pool:               NewPairPool(rng),
		players:            make(map[string]*Player),
		phase:              PhaseWaiting,
		lastNeedlePosition: defaultNeedle,
	}
}

func (r *Room) Code() string           { return r.code }
func (r *Room) Phase() Phase           { return r.phase }
func (r *Room) HostID() string         { return r.hostID }
func (r *Room) Mode() Mode             { return r.mode }
func (r *Room) Scoring() ScoringPolicy { return r.scoring }
func (r *Room) TeamScore() int         { return r.teamScore }
func (r *Room) NeedlePosition() int    { return r.lastNeedlePosition }
func (r *Room) PlayerCount() int       { return len(r.players) }

// TotalDials is the fixed length of the round's guessing order.
func (r *Room) TotalDials() int { return len(r.guessingOrder) }

func (r *Room) HasPlayer(id string) bool {
	_, ok := r.players[id]
	return ok
}

func (r *Room) Player(id string) (*Player, bool) {
	p, ok := r.players[id]
	return p, ok
}

// PlayerList returns the public player views in join order.
func (r *Room) PlayerList() []PlayerInfo {
	list := make([]PlayerInfo, 0, len(r.order))
	for _, id := range r.order {
		p := r.players[id]
		list = append(list, PlayerInfo{ID: p.ID, Name: p.Name, Score: p.Score})
	}
	return list
}

// PlayerNames returns the names in join order.
func (r *Room) PlayerNames() []string {
	names := make([]string, 0, len(r.order))
	for _, id := range r.order {
		names = append(names, r.players[id].Name)
	}
	return names
}

// AddPlayer registers a new player with empty clue and guess state.
// The first joiner becomes host. Re-adding a known id is a no-op.
func (r *Room) AddPlayer(id, name string) {
	if _, ok := r.players[id]; ok {
		return
	}
	r.players[id] = &Player{ID: id, Name: name}
	r.order = append(r.order, id)
	if r.hostID == "" {
		r.hostID = id
	}
}

// RemovePlayer deletes the player and all their state. If they were
// host, hosting passes to the first remaining joiner; an empty room
// has no host. Their guessing-order entries are kept: the dispatcher
// skips clues owned by departed players.
func (r *Room) RemovePlayer(id string) {
	if _, ok := r.players[id]; !ok {
		return
	}
	delete(r.players, id)
	for i, pid := range r.order {
		if pid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	if r.hostID == id {
		r.hostID = ""
		if len(r.order) > 0 {
			r.hostID = r.order[0]
		}
	}
}

// StartRound deals numRounds fresh clues to every player and moves to
// the writing phase. Only callable from waiting or finished; the
// minimum-player rule is the dispatcher's to enforce.
func (r *Room) StartRound(numRounds int, mode Mode, scoring ScoringPolicy) {
	if r.phase != PhaseWaiting && r.phase != PhaseFinished {
		return
	}
	if numRounds < 1 {
		numRounds = 1
	}
	r.phase = PhaseWriting
	r.numRounds = numRounds
	r.mode = mode
	r.scoring = scoring
	r.teamScore = 0
	r.guessingOrder = nil
	r.currentGuessIndex = 0
	r.lastNeedlePosition = defaultNeedle

	for _, id := range r.order {
		p := r.players[id]
		p.Clues = make([]Clue, numRounds)
		for i := range p.Clues {
			c := &p.Clues[i]
			c.TargetPosition = targetMin + r.rng.IntN(targetMax-targetMin+1)
			if mode == ModeBattery {
				pair := r.pool.Draw()
				c.LeftAdjective = pair.Left
				c.RightAdjective = pair.Right
			}
		}
		p.CurrentClueIndex = 0
		p.resetGuess()
	}
}

// SubmitClue records the player's current clue and advances their
// cursor. Unknown players and double submissions are ignored. Empty
// adjectives keep whatever the pool dealt in battery mode.
func (r *Room) SubmitClue(playerID, phrase, leftAdj, rightAdj string) {
	p, ok := r.players[playerID]
	if !ok || p.CurrentClueIndex >= len(p.Clues) {
		return
	}
	c := &p.Clues[p.CurrentClueIndex]
	if c.Submitted {
		return
	}
	c.Phrase = phrase
	if leftAdj != "" {
		c.LeftAdjective = leftAdj
	}
	if rightAdj != "" {
		c.RightAdjective = rightAdj
	}
	c.Submitted = true
	p.CurrentClueIndex++
}

// AllSubmittedClues reports whether every player has submitted every
// clue they were dealt.
func (r *Room) AllSubmittedClues() bool {
	for _, p := range r.players {
		if !p.AllCluesSubmitted() {
			return false
		}
	}
	return true
}

// StartGuessingPhase shuffles the full (player, clue) cross product
// into the guessing order and opens the first dial. The order is fixed
// for the round: late joiners do not extend it.
func (r *Room) StartGuessingPhase() {
	order := make([]ClueRef, 0, len(r.order)*r.numRounds)
	for _, id := range r.order {
		for i := range r.players[id].Clues {
			order = append(order, ClueRef{PlayerID: id, ClueIndex: i})
		}
	}
	r.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	r.guessingOrder = order
	r.currentGuessIndex = 0
	r.lastNeedlePosition = defaultNeedle
	r.resetGuesses()
	r.phase = PhaseGuessing
}

// CurrentClueOwnerID returns "" once the order is exhausted.
func (r *Room) CurrentClueOwnerID() string {
	if r.currentGuessIndex < len(r.guessingOrder) {
		return r.guessingOrder[r.currentGuessIndex].PlayerID
	}
	return ""
}

// CurrentClueOwnerClueIndex returns -1 once the order is exhausted.
func (r *Room) CurrentClueOwnerClueIndex() int {
	if r.currentGuessIndex < len(r.guessingOrder) {
		return r.guessingOrder[r.currentGuessIndex].ClueIndex
	}
	return -1
}

func (r *Room) currentClue() (*Player, *Clue, bool) {
	if r.currentGuessIndex >= len(r.guessingOrder) {
		return nil, nil, false
	}
	ref := r.guessingOrder[r.currentGuessIndex]
	p, ok := r.players[ref.PlayerID]
	if !ok || ref.ClueIndex >= len(p.Clues) {
		return nil, nil, false
	}
	return p, &p.Clues[ref.ClueIndex], true
}

// CurrentTarget reveals the active clue's hidden position. Only called
// when building a reveal broadcast.
func (r *Room) CurrentTarget() (int, bool) {
	_, c, ok := r.currentClue()
	if !ok {
		return 0, false
	}
	return c.TargetPosition, true
}

// CurrentClueInfo returns the guesser-visible view of the active clue.
func (r *Room) CurrentClueInfo() (ClueInfo, bool) {
	p, c, ok := r.currentClue()
	if !ok {
		return ClueInfo{}, false
	}
	return ClueInfo{
		OwnerID:        p.ID,
		OwnerName:      p.Name,
		Phrase:         c.Phrase,
		LeftAdjective:  c.LeftAdjective,
		RightAdjective: c.RightAdjective,
		ClueNumber:     r.currentGuessIndex + 1,
		TotalClues:     len(r.guessingOrder),
	}, true
}

// PlayerWritingState returns the player's own current clue to write.
// False when the player is unknown or has nothing left to write.
func (r *Room) PlayerWritingState(playerID string) (WritingState, bool) {
	p, ok := r.players[playerID]
	if !ok || p.CurrentClueIndex >= len(p.Clues) {
		return WritingState{}, false
	}
	c := p.Clues[p.CurrentClueIndex]
	return WritingState{
		TargetPosition: c.TargetPosition,
		LeftAdjective:  c.LeftAdjective,
		RightAdjective: c.RightAdjective,
		ClueNumber:     p.CurrentClueIndex + 1,
		TotalClues:     len(p.Clues),
	}, true
}

// SubmitGuess records a non-owner guess. Owners cannot guess their own
// clue; unknown players are ignored.
func (r *Room) SubmitGuess(playerID string, position int) {
	if playerID == r.CurrentClueOwnerID() {
		return
	}
	p, ok := r.players[playerID]
	if !ok {
		return
	}
	p.CurrentGuess = position
	p.HasGuessed = true
}

// CancelGuess clears the player's ready flag, keeping any recorded
// position irrelevant until they submit again.
func (r *Room) CancelGuess(playerID string) {
	if p, ok := r.players[playerID]; ok {
		p.HasGuessed = false
	}
}

// MoveNeedle overwrites the shared needle position and invalidates
// every non-owner ready vote: a drag in progress means nobody is
// settled on the old position.
func (r *Room) MoveNeedle(position int) {
	r.lastNeedlePosition = position
	owner := r.CurrentClueOwnerID()
	for _, p := range r.players {
		if p.ID != owner {
			p.HasGuessed = false
		}
	}
}

// AllGuessedCurrent reports whether every registered non-owner has
// guessed. The dispatcher additionally restricts this to connected
// players so a departed guesser never blocks the round.
func (r *Room) AllGuessedCurrent() bool {
	owner := r.CurrentClueOwnerID()
	for _, p := range r.players {
		if p.ID != owner && !p.HasGuessed {
			return false
		}
	}
	return true
}

// NextClue advances to the next dial, resetting the needle and all
// guess state. The cursor only moves forward. Returns false once the
// order is exhausted, which finishes the round.
func (r *Room) NextClue() bool {
	r.currentGuessIndex++
	r.lastNeedlePosition = defaultNeedle
	r.resetGuesses()
	if r.currentGuessIndex >= len(r.guessingOrder) {
		r.phase = PhaseFinished
		return false
	}
	return true
}

func (r *Room) resetGuesses() {
	for _, p := range r.players {
		p.resetGuess()
	}
}
