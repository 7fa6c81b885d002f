package game

// Clue is one owner's hidden dial target plus the text they supply to
// help everyone else guess it.
type Clue struct {
	TargetPosition int
	LeftAdjective  string
	RightAdjective string
	Phrase         string
	Submitted      bool
}

// Player holds one participant's game state. Identity is assigned by
// the transport layer, not generated here.
type Player struct {
	ID   string
	Name string

	// One clue per round, dealt at round start.
	Clues            []Clue
	CurrentClueIndex int

	// Ephemeral per-dial guess state, reset whenever the active clue
	// changes or the needle moves.
	CurrentGuess int
	HasGuessed   bool

	// Personal score, used by the individual scoring policy.
	Score int
}

func (p *Player) AllCluesSubmitted() bool {
	for i := range p.Clues {
		if !p.Clues[i].Submitted {
			return false
		}
	}
	return true
}

func (p *Player) resetGuess() {
	p.CurrentGuess = 0
	p.HasGuessed = false
}
