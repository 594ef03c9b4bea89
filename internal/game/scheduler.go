package game

import (
	"github.com/Ko-stant/hunter-arena/internal/catalog"
	"github.com/Ko-stant/hunter-arena/internal/protocol"
)

// Advance moves the turn to the next eligible human. Hunter turns and
// captured combatants are resolved inline, so by the time Advance returns the
// table is either awaiting a human action or idle.
//
// Every hop rolls for a Hunter spawn before landing on the next position.
// The walk is an explicit loop bounded by the order length (plus a possible
// Hunter) times the longest capture, which is enough for every capture to
// wear off. If the bound is exhausted, or nobody but the Hunter is alive, the
// table goes idle.
func (g *Game) Advance() {
	s := g.state
	if len(s.Order) == 0 {
		return
	}

	budget := (len(s.Order) + 1) * (g.rules.CaptureTurns + 2)
	for hop := 0; hop < budget; hop++ {
		g.maybeSpawnHunter()
		if len(s.livingHumans()) == 0 {
			break
		}
		next, ok := s.nextLivingIndex()
		if !ok {
			break
		}
		s.CurrentIndex = next
		holder := s.Combatants[s.Order[next]]

		if holder.Hunter {
			s.Phase = AutonomousActing
			g.broadcastTurn()
			g.hunterTurn()
			continue
		}

		s.Phase = AwaitingAction
		g.broadcastTurn()
		s.DecayAll()
		if holder.HasEffect(catalog.Disable) {
			g.narrate(protocol.ToneSkip, "🔒 %s is captured and loses the turn!", holder.DisplayName)
			continue
		}
		return
	}

	g.goIdle()
}

func (g *Game) goIdle() {
	s := g.state
	s.Phase = Idle
	g.logger.Infow("no eligible combatant, table idle", "table_size", len(s.Order))
	g.narrate(protocol.ToneInfo, "No combatant can take a turn. Vote to restart the battle.")
	g.broadcastTurn()
}

func (g *Game) maybeSpawnHunter() {
	s := g.state
	if _, present := s.Combatants[HunterID]; present {
		return
	}
	if !roll(g.rng, g.rules.HunterSpawnChance) {
		return
	}

	s.add(newHunter(g.rules.HunterHP))
	g.logger.Infow("hunter spawned", "hp", g.rules.HunterHP)
	g.narrate(protocol.ToneHunter, "🗡️ A Hunter has appeared on the battlefield!")
	g.broadcastPlayers()
}

func (g *Game) despawnHunter() {
	if _, present := g.state.Combatants[HunterID]; !present {
		return
	}
	g.state.remove(HunterID)
	g.logger.Infow("hunter removed")
	g.narrate(protocol.ToneDeath, "💀 The Hunter was removed from the battlefield!")
	g.broadcastPlayers()
}

// hunterTurn picks a random living human and either captures it or strikes it.
func (g *Game) hunterTurn() {
	targets := g.state.livingHumans()
	if len(targets) == 0 {
		return
	}

	target := targets[g.rng.Intn(len(targets))]
	if roll(g.rng, g.rules.CaptureChance) {
		target.ApplyEffect(catalog.Disable, g.rules.CaptureTurns)
		g.narrate(protocol.ToneHunter, "⚔️ The Hunter captured %s for %d turns! They cannot act!",
			target.DisplayName, g.rules.CaptureTurns)
	} else {
		damage := g.rng.Intn(max(g.rules.HunterMaxDamage, 1)) + 1
		target.HP -= damage
		target.settle()
		if !target.Alive {
			g.logger.Infow("combatant killed by hunter", "combatant", target.ID)
			g.narrate(protocol.ToneDeath, "💀 %s was killed by the Hunter!", target.DisplayName)
		} else {
			g.narrate(protocol.ToneHunter, "🗡️ The Hunter attacked %s, dealing %d damage!", target.DisplayName, damage)
		}
	}
	g.broadcastPlayers()
}
