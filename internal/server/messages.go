package server

import "github.com/juanmateuhub/wavelength/internal/game"

// The wire format matches the original frontend: flat JSON objects
// with a "type" discriminator and snake_case fields.
type messageType string

// Inbound message types.
const (
	msgJoin          messageType = "join"
	msgLobbySettings messageType = "lobby_settings"
	msgStartRound    messageType = "start_round"
	msgSubmitClue    messageType = "submit_clue"
	msgMoveNeedle    messageType = "move_needle"
	msgCancelGuess   messageType = "cancel_guess"
	msgSubmitGuess   messageType = "submit_guess"
	msgNextClue      messageType = "next_clue"
)

// Outbound message types.
const (
	msgGameState       messageType = "game_state"
	msgPlayerJoined    messageType = "player_joined"
	msgRoundStarted    messageType = "round_started"
	msgNextWriting     messageType = "next_writing"
	msgWritingProgress messageType = "writing_progress"
	msgGuessingStarted messageType = "guessing_started"
	msgNeedleMoved     messageType = "needle_moved"
	msgPlayerReady     messageType = "player_ready"
	msgClueReveal      messageType = "clue_reveal"
	msgGameFinished    messageType = "game_finished"
	msgPlayerLeft      messageType = "player_left"
	msgError           messageType = "error"
)

// inbound covers every client message. Optional fields are pointers so
// the dispatcher can tell "absent" from zero and apply the protocol's
// defaults explicitly.
type inbound struct {
	Type           messageType `json:"type"`
	Name           string      `json:"name"`
	NumRounds      *int        `json:"num_rounds"`
	Mode           *string     `json:"mode"`
	Scoring        *string     `json:"scoring"`
	Phrase         string      `json:"phrase"`
	LeftAdjective  string      `json:"left_adjective"`
	RightAdjective string      `json:"right_adjective"`
	Position       *int        `json:"position"`
}

// Defaults for omitted inbound fields.
const (
	defaultName      = "Jugador"
	defaultNumRounds = 3
	defaultPosition  = 90
)

func (m inbound) name() string {
	if m.Name == "" {
		return defaultName
	}
	return m.Name
}

func (m inbound) numRounds() int {
	if m.NumRounds == nil {
		return defaultNumRounds
	}
	return *m.NumRounds
}

func (m inbound) mode() game.Mode {
	if m.Mode == nil || *m.Mode == "" {
		return game.ModeFree
	}
	return game.Mode(*m.Mode)
}

func (m inbound) scoring() game.ScoringPolicy {
	if m.Scoring == nil || *m.Scoring == "" {
		return game.ScoringTeam
	}
	return game.ScoringPolicy(*m.Scoring)
}

func (m inbound) position() int {
	if m.Position == nil {
		return defaultPosition
	}
	return *m.Position
}

type gameStateMsg struct {
	Type    messageType       `json:"type"`
	State   game.Phase        `json:"state"`
	Players []game.PlayerInfo `json:"players"`
	HostID  string            `json:"host_id"`
}

type playerJoinedMsg struct {
	Type messageType `json:"type"`
	Name string      `json:"name"`
}

// lobbySettingsMsg echoes the host's proposed settings to the lobby;
// nothing is committed until start_round.
type lobbySettingsMsg struct {
	Type      messageType        `json:"type"`
	NumRounds int                `json:"num_rounds"`
	Mode      game.Mode          `json:"mode"`
	Scoring   game.ScoringPolicy `json:"scoring"`
}

// roundStartedMsg is unicast per player: the embedded writing state is
// theirs alone and carries their hidden target.
type roundStartedMsg struct {
	Type    messageType       `json:"type"`
	State   game.Phase        `json:"state"`
	Players []game.PlayerInfo `json:"players"`
	HostID  string            `json:"host_id"`
	game.WritingState
}

type nextWritingMsg struct {
	Type  messageType `json:"type"`
	State game.Phase  `json:"state"`
	game.WritingState
}

type writingProgressMsg struct {
	Type    messageType       `json:"type"`
	Players []game.PlayerInfo `json:"players"`
}

type guessingStartedMsg struct {
	Type           messageType       `json:"type"`
	State          game.Phase        `json:"state"`
	Clue           game.ClueInfo     `json:"clue"`
	Players        []game.PlayerInfo `json:"players"`
	NeedlePosition int               `json:"needle_position"`
	HostID         string            `json:"host_id"`
}

type needleMovedMsg struct {
	Type          messageType `json:"type"`
	Position      int         `json:"position"`
	PlayerID      string      `json:"player_id"`
	ReadyCount    int         `json:"ready_count"`
	TotalGuessers int         `json:"total_guessers"`
}

type playerReadyMsg struct {
	Type          messageType       `json:"type"`
	PlayerID      string            `json:"player_id"`
	IsReady       bool              `json:"is_ready"`
	ReadyCount    int               `json:"ready_count"`
	TotalGuessers int               `json:"total_guessers"`
	Players       []game.PlayerInfo `json:"players"`
}

type clueRevealMsg struct {
	Type           messageType       `json:"type"`
	TargetPosition int               `json:"target_position"`
	NeedlePosition int               `json:"needle_position"`
	PointsThisDial int               `json:"points_this_dial"`
	TeamScore      int               `json:"team_score"`
	PlayerPoints   map[string]int    `json:"player_points,omitempty"`
	Clue           game.ClueInfo     `json:"clue"`
	Players        []game.PlayerInfo `json:"players"`
	HostID         string            `json:"host_id"`
}

type gameFinishedMsg struct {
	Type        messageType       `json:"type"`
	State       game.Phase        `json:"state"`
	Players     []game.PlayerInfo `json:"players"`
	TeamScore   int               `json:"team_score"`
	TotalDials  int               `json:"total_dials"`
	Leaderboard []HighscoreEntry  `json:"leaderboard,omitempty"`
	HostID      string            `json:"host_id"`
}

type playerLeftMsg struct {
	Type     messageType `json:"type"`
	PlayerID string      `json:"player_id"`
}

type errorMsg struct {
	Type    messageType `json:"type"`
	Message string      `json:"message"`
}
