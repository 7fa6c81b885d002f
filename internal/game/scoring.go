package game

// Points by distance from target. The team variant scores the group's
// average guess; the individual variant scores each guesser on a more
// forgiving scale.
func teamPoints(diff int) int {
	switch {
	case diff <= 5:
		return 4
	case diff <= 11:
		return 3
	case diff <= 19:
		return 2
	default:
		return 0
	}
}

func individualPoints(diff int) int {
	switch {
	case diff <= 10:
		return 4
	case diff <= 20:
		return 3
	case diff <= 35:
		return 2
	default:
		return 0
	}
}

// CalculatePointsCurrent scores the active dial under the room's
// scoring policy.
//
// Team: the non-owner guesses are averaged against the target and the
// resulting points accumulate into the team score; the per-player map
// is nil. Individual: every guesser is scored separately into their
// own total, and the points per player are returned. With no guesses
// recorded nothing changes and zero is awarded.
func (r *Room) CalculatePointsCurrent() (int, map[string]int) {
	owner, c, ok := r.currentClue()
	if !ok {
		return 0, nil
	}

	if r.scoring == ScoringIndividual {
		awarded := make(map[string]int)
		for _, id := range r.order {
			p := r.players[id]
			if p == owner || !p.HasGuessed {
				continue
			}
			pts := individualPoints(abs(p.CurrentGuess - c.TargetPosition))
			p.Score += pts
			awarded[id] = pts
		}
		return 0, awarded
	}

	sum, n := 0, 0
	for _, p := range r.players {
		if p == owner || !p.HasGuessed {
			continue
		}
		sum += p.CurrentGuess
		n++
	}
	if n == 0 {
		return 0, nil
	}
	avg := (sum + n/2) / n // rounded, not truncated
	pts := teamPoints(abs(avg - c.TargetPosition))
	r.teamScore += pts
	return pts, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
