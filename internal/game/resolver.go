package game

import (
	"fmt"
	"strings"

	"github.com/Ko-stant/hunter-arena/internal/catalog"
	"github.com/Ko-stant/hunter-arena/internal/protocol"
)

// AttackOutcome records what one attack did
type AttackOutcome struct {
	Damage         int
	Released       int
	Critical       bool
	Reduced        bool
	Absorbed       int
	Reflected      int
	AttackerHealed int
	DefenderHealed int
	DefenderKilled bool
	AttackerKilled bool
}

// ResolveAbility validates and applies one ability, narrates the outcome and
// advances the turn exactly once.
func (g *Game) ResolveAbility(actorID, targetID string, abilityIndex int) error {
	s := g.state
	actor, ok := s.Combatants[actorID]
	if !ok {
		return ErrUnknownCombatant
	}
	if !actor.Alive {
		return ErrActorDead
	}
	if s.Phase != AwaitingAction || s.CurrentTurnID() != actorID {
		return ErrNotYourTurn
	}
	target, ok := s.Combatants[targetID]
	if !ok {
		return ErrUnknownTarget
	}
	if !target.Alive {
		return ErrTargetDead
	}
	ability, ok := g.catalog.Lookup(actor.ClassID, abilityIndex)
	if !ok {
		return ErrUnknownAbility
	}

	switch ability.Kind {
	case catalog.Buff:
		actor.ApplyEffect(ability.Effect, g.rules.BuffTurns)
		g.narrate(protocol.ToneBuff, buffText(ability.Effect), actor.DisplayName, ability.Name)
	case catalog.Heal:
		before := actor.HP
		actor.HP += ability.BaseValue
		actor.settle()
		g.narrate(protocol.ToneHeal, "%s used %s and recovered %d HP!", actor.DisplayName, ability.Name, actor.HP-before)
	case catalog.Attack:
		outcome := g.resolveAttack(actor, target, ability)
		g.narrateAttack(actor, target, ability, outcome)
		if outcome.DefenderKilled && target.Hunter {
			g.despawnHunter()
		}
	}

	g.broadcastPlayers()
	g.Advance()
	return nil
}

// resolveAttack runs the effect chain in its fixed order:
// release, critical, reduction, damage, absorption, reflection, life steal,
// death.
func (g *Game) resolveAttack(attacker, defender *Combatant, ability catalog.AbilityDefinition) AttackOutcome {
	var out AttackOutcome
	damage := ability.BaseValue

	if e := attacker.FirstEffect(catalog.AbsorbAndRelease); e != nil && e.Accumulated != 0 {
		out.Released = e.Accumulated
		damage += e.Accumulated
		attacker.ConsumeTriggered(catalog.AbsorbAndRelease)
	}

	if roll(g.rng, g.rules.CritChance) {
		out.Critical = true
		damage *= 2
	}

	if defender.HasEffect(catalog.ReduceIncomingDamage) {
		out.Reduced = true
		damage /= 2
	}

	defender.HP -= damage
	out.Damage = damage

	if e := defender.FirstEffect(catalog.AbsorbAndRelease); e != nil {
		e.Accumulated += damage
		out.Absorbed = damage
	}

	if defender.HasEffect(catalog.ReflectDamage) {
		out.Reflected = damage / 2
		attacker.HP -= out.Reflected
	}

	if attacker.HasEffect(catalog.LifeStealOnHit) {
		out.AttackerHealed = g.lifeSteal(damage)
		attacker.HP += out.AttackerHealed
	}
	if defender.HasEffect(catalog.LifeStealOnHit) {
		out.DefenderHealed = g.lifeSteal(damage)
		defender.HP += out.DefenderHealed
	}

	defender.settle()
	attacker.settle()
	out.DefenderKilled = !defender.Alive
	out.AttackerKilled = !attacker.Alive
	return out
}

// lifeSteal samples a heal uniformly from [floor(damage/3), damage).
func (g *Game) lifeSteal(damage int) int {
	if damage <= 0 {
		return 0
	}
	low := damage / 3
	return low + g.rng.Intn(damage-low)
}

func (g *Game) narrateAttack(attacker, defender *Combatant, ability catalog.AbilityDefinition, out AttackOutcome) {
	var b strings.Builder
	tone := protocol.ToneAttack

	switch {
	case out.DefenderKilled:
		tone = protocol.ToneDeath
		fmt.Fprintf(&b, "💀 %s was defeated by %s with %s!", defender.DisplayName, attacker.DisplayName, ability.Name)
	case out.Critical:
		tone = protocol.ToneCritical
		fmt.Fprintf(&b, "💥 %s landed a CRITICAL HIT with %s, dealing %d damage to %s!",
			attacker.DisplayName, ability.Name, out.Damage, defender.DisplayName)
	case out.Released > 0:
		tone = protocol.ToneCritical
		fmt.Fprintf(&b, "💥 %s released a stored fury with %s, dealing %d damage to %s!",
			attacker.DisplayName, ability.Name, out.Damage, defender.DisplayName)
	default:
		fmt.Fprintf(&b, "%s attacked %s with %s, dealing %d damage!",
			attacker.DisplayName, defender.DisplayName, ability.Name, out.Damage)
	}

	if out.Reduced {
		fmt.Fprintf(&b, " 🛡️ %s halved the blow!", defender.DisplayName)
	}
	if out.Absorbed > 0 {
		fmt.Fprintf(&b, " 🐺 %s stored %d damage for a fury release!", defender.DisplayName, out.Absorbed)
	}
	if out.Reflected > 0 {
		fmt.Fprintf(&b, " 🔄 A curse reflected %d damage to %s!", out.Reflected, attacker.DisplayName)
	}
	if out.AttackerHealed > 0 {
		fmt.Fprintf(&b, " ✨ Life drain healed %d HP for %s!", out.AttackerHealed, attacker.DisplayName)
	}
	if out.DefenderHealed > 0 {
		fmt.Fprintf(&b, " ✨ Life drain healed %d HP for %s!", out.DefenderHealed, defender.DisplayName)
	}
	if out.AttackerKilled {
		fmt.Fprintf(&b, " 💀 %s fell to their own wounds!", attacker.DisplayName)
	}

	if out.DefenderKilled || out.AttackerKilled {
		g.logger.Infow("combatant killed",
			"attacker", attacker.ID, "defender", defender.ID,
			"defender_killed", out.DefenderKilled, "attacker_killed", out.AttackerKilled)
	}
	g.narrate(tone, "%s", b.String())
}

func buffText(effect catalog.EffectKind) string {
	switch effect {
	case catalog.AbsorbAndRelease:
		return "%s used %s! Damage taken is stored and released on the next attack!"
	case catalog.LifeStealOnHit:
		return "%s used %s! Heals part of the damage dealt or received!"
	case catalog.ReduceIncomingDamage:
		return "%s used %s! Incoming damage is halved!"
	case catalog.ReflectDamage:
		return "%s cast %s! Half of the damage received is reflected!"
	default:
		return "%s used %s!"
	}
}
