package server

import (
	"context"
	"log/slog"

	"github.com/juanmateuhub/wavelength/internal/game"
)

// dispatcher routes inbound messages to room operations and decides
// what gets broadcast or unicast in response. It holds no state of its
// own; everything lives in the room and the hub.
//
// Invalid actions — wrong phase, non-host, unknown player, double
// submits, self-guesses — are silently ignored: the room no-ops and
// the next broadcast reflects unchanged state. Clients rely on that
// for idempotent retries, so none of these grow into errors.
type dispatcher struct {
	logger *slog.Logger
	scores *HighscoreStore
}

func newDispatcher(logger *slog.Logger, scores *HighscoreStore) *dispatcher {
	return &dispatcher{logger: logger, scores: scores}
}

// dispatch runs one inbound message under the room's lock. Every
// mutation and the broadcasts it causes complete before the next
// message for this room is processed, which is what keeps clients'
// views causally ordered.
func (d *dispatcher) dispatch(ctx context.Context, rc *roomConn, sess *session, in inbound) {
	room := rc.room
	room.Lock()
	defer room.Unlock()

	switch in.Type {
	case msgJoin:
		if !room.HasPlayer(sess.playerID) {
			room.AddPlayer(sess.playerID, in.name())
			rc.broadcast(playerJoinedMsg{Type: msgPlayerJoined, Name: in.name()})
		}
		d.broadcastGameState(rc)

	case msgLobbySettings:
		if sess.playerID != room.HostID() {
			return
		}
		rc.broadcast(lobbySettingsMsg{
			Type:      msgLobbySettings,
			NumRounds: in.numRounds(),
			Mode:      in.mode(),
			Scoring:   in.scoring(),
		})

	case msgStartRound:
		if sess.playerID != room.HostID() || room.PlayerCount() < 2 {
			return
		}
		if room.Phase() != game.PhaseWaiting && room.Phase() != game.PhaseFinished {
			return
		}
		room.StartRound(in.numRounds(), in.mode(), in.scoring())
		for _, id := range rc.connectedIDs() {
			ws, ok := room.PlayerWritingState(id)
			if !ok {
				continue
			}
			rc.unicast(id, roundStartedMsg{
				Type:         msgRoundStarted,
				State:        room.Phase(),
				Players:      room.PlayerList(),
				HostID:       room.HostID(),
				WritingState: ws,
			})
		}

	case msgSubmitClue:
		if room.Phase() != game.PhaseWriting {
			return
		}
		room.SubmitClue(sess.playerID, in.Phrase, in.LeftAdjective, in.RightAdjective)
		if p, ok := room.Player(sess.playerID); ok && !p.AllCluesSubmitted() {
			if ws, ok := room.PlayerWritingState(sess.playerID); ok {
				sess.send(nextWritingMsg{Type: msgNextWriting, State: room.Phase(), WritingState: ws})
			}
			rc.broadcast(writingProgressMsg{Type: msgWritingProgress, Players: room.PlayerList()})
		} else if room.AllSubmittedClues() {
			room.StartGuessingPhase()
			d.broadcastGuessing(rc)
		} else {
			rc.broadcast(writingProgressMsg{Type: msgWritingProgress, Players: room.PlayerList()})
		}

	case msgMoveNeedle:
		room.MoveNeedle(in.position())
		ready, total := d.tally(rc)
		rc.broadcast(needleMovedMsg{
			Type:          msgNeedleMoved,
			Position:      in.position(),
			PlayerID:      sess.playerID,
			ReadyCount:    ready,
			TotalGuessers: total,
		})

	case msgCancelGuess:
		room.CancelGuess(sess.playerID)
		ready, total := d.tally(rc)
		rc.broadcast(playerReadyMsg{
			Type:          msgPlayerReady,
			PlayerID:      sess.playerID,
			IsReady:       false,
			ReadyCount:    ready,
			TotalGuessers: total,
			Players:       room.PlayerList(),
		})

	case msgSubmitGuess:
		room.SubmitGuess(sess.playerID, in.position())
		ready, total := d.tally(rc)
		rc.broadcast(playerReadyMsg{
			Type:          msgPlayerReady,
			PlayerID:      sess.playerID,
			IsReady:       true,
			ReadyCount:    ready,
			TotalGuessers: total,
			Players:       room.PlayerList(),
		})
		if total > 0 && ready == total {
			d.reveal(rc)
		}

	case msgNextClue:
		if sess.playerID != room.HostID() {
			return
		}
		if room.Phase() != game.PhaseGuessing {
			return
		}
		d.advance(ctx, rc)

	default:
		d.logger.Debug("unknown message type",
			"type", string(in.Type),
			"room", room.Code(),
			"player", sess.playerID,
		)
	}
}

// playerGone handles a disconnect. The player is removed outright, the
// departure is broadcast, and the round is nudged forward if the room
// was waiting on them — a disconnect must never stall everyone else.
func (d *dispatcher) playerGone(ctx context.Context, rc *roomConn, playerID string) {
	room := rc.room
	room.Lock()
	defer room.Unlock()

	if !room.HasPlayer(playerID) {
		return
	}
	wasOwner := room.Phase() == game.PhaseGuessing && room.CurrentClueOwnerID() == playerID
	room.RemovePlayer(playerID)
	rc.broadcast(playerLeftMsg{Type: msgPlayerLeft, PlayerID: playerID})
	d.broadcastGameState(rc)

	if room.PlayerCount() == 0 {
		return
	}
	switch room.Phase() {
	case game.PhaseWriting:
		// The departed player may have held the last outstanding clue.
		if room.AllSubmittedClues() {
			room.StartGuessingPhase()
			d.broadcastGuessing(rc)
		}
	case game.PhaseGuessing:
		if wasOwner {
			d.advance(ctx, rc)
		} else if ready, total := d.tally(rc); total > 0 && ready == total {
			d.reveal(rc)
		}
	}
}

// tally counts connected, registered non-owner guessers and how many
// of them are ready. Scoping to connected players is what lets the
// round progress past disconnected participants.
func (d *dispatcher) tally(rc *roomConn) (ready, total int) {
	owner := rc.room.CurrentClueOwnerID()
	for _, id := range rc.connectedIDs() {
		p, ok := rc.room.Player(id)
		if !ok || id == owner {
			continue
		}
		total++
		if p.HasGuessed {
			ready++
		}
	}
	return ready, total
}

func (d *dispatcher) broadcastGameState(rc *roomConn) {
	rc.broadcast(gameStateMsg{
		Type:    msgGameState,
		State:   rc.room.Phase(),
		Players: rc.room.PlayerList(),
		HostID:  rc.room.HostID(),
	})
}

func (d *dispatcher) broadcastGuessing(rc *roomConn) {
	info, ok := rc.room.CurrentClueInfo()
	if !ok {
		return
	}
	rc.broadcast(guessingStartedMsg{
		Type:           msgGuessingStarted,
		State:          rc.room.Phase(),
		Clue:           info,
		Players:        rc.room.PlayerList(),
		NeedlePosition: rc.room.NeedlePosition(),
		HostID:         rc.room.HostID(),
	})
}

// reveal scores the active dial and broadcasts the result, target
// included — the only moment the target ever leaves the room.
func (d *dispatcher) reveal(rc *roomConn) {
	room := rc.room
	target, ok := room.CurrentTarget()
	if !ok {
		return
	}
	info, _ := room.CurrentClueInfo()
	points, playerPoints := room.CalculatePointsCurrent()
	rc.broadcast(clueRevealMsg{
		Type:           msgClueReveal,
		TargetPosition: target,
		NeedlePosition: room.NeedlePosition(),
		PointsThisDial: points,
		TeamScore:      room.TeamScore(),
		PlayerPoints:   playerPoints,
		Clue:           info,
		Players:        room.PlayerList(),
		HostID:         room.HostID(),
	})
}

// advance moves to the next dial, skipping clues owned by players who
// have since left, and finishes the game once the order is exhausted.
func (d *dispatcher) advance(ctx context.Context, rc *roomConn) {
	room := rc.room
	hasMore := room.NextClue()
	for hasMore && !room.HasPlayer(room.CurrentClueOwnerID()) {
		hasMore = room.NextClue()
	}
	if hasMore {
		d.broadcastGuessing(rc)
		return
	}
	d.finish(ctx, rc)
}

func (d *dispatcher) finish(ctx context.Context, rc *roomConn) {
	room := rc.room
	msg := gameFinishedMsg{
		Type:       msgGameFinished,
		State:      room.Phase(),
		Players:    room.PlayerList(),
		TeamScore:  room.TeamScore(),
		TotalDials: room.TotalDials(),
		HostID:     room.HostID(),
	}
	if room.Scoring() == game.ScoringTeam {
		top, err := d.scores.Register(ctx, room.TotalDials(), room.TeamScore(), room.PlayerNames())
		if err != nil {
			d.logger.Error("registering highscore", "room", room.Code(), "error", err)
		} else {
			msg.Leaderboard = top
		}
	}
	rc.broadcast(msg)
}
