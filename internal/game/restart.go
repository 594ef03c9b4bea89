package game

import "github.com/Ko-stant/hunter-arena/internal/protocol"

// RegisterVote records a restart vote. Voting twice counts once. The Hunter
// and classless participants cannot vote.
func (g *Game) RegisterVote(id string) error {
	c, ok := g.state.Combatants[id]
	if !ok || c.Hunter {
		return ErrUnknownCombatant
	}
	if c.ClassID == "" {
		return ErrNoClass
	}

	g.state.Votes[id] = true
	g.announceVotes()
	return nil
}

// Tally counts votes against the classed, non-Hunter combatants.
func (g *Game) Tally() (votes, total int) {
	s := g.state
	for id, c := range s.Combatants {
		if c.Hunter || c.ClassID == "" {
			continue
		}
		total++
		if s.Votes[id] {
			votes++
		}
	}
	return votes, total
}

func (g *Game) announceVotes() {
	votes, total := g.Tally()
	g.broadcast(protocol.EventRestartVotes, protocol.RestartVotes{Votes: votes, Total: total})
	if total > 0 && votes == total {
		g.ResetGame()
	}
}

// ResetGame restores every participant, drops the Hunter and hands the turn
// to the first combatant in order. Classless participants return to their
// placeholder state so they can still pick a class.
func (g *Game) ResetGame() {
	s := g.state
	g.despawnHunter()

	for _, c := range s.Combatants {
		c.restore()
	}
	s.Votes = make(map[string]bool)
	s.CurrentIndex = 0
	s.Phase = Idle
	if len(s.Order) > 0 {
		s.Phase = AwaitingAction
	}
	g.logger.Infow("game restarted", "table_size", len(s.Order))

	g.broadcastPlayers()
	g.broadcast(protocol.EventGameRestarted, protocol.GameRestarted{})
	g.broadcastTurn()
}
