package game

import "github.com/Ko-stant/hunter-arena/internal/catalog"

// ApplyEffect appends a new effect instance. Instances of the same kind are
// never merged; each cast is tracked on its own.
func (c *Combatant) ApplyEffect(kind catalog.EffectKind, duration int) {
	if duration < 1 {
		duration = 1
	}
	c.Effects = append(c.Effects, StatusEffect{Kind: kind, RemainingTurns: duration})
}

// FirstEffect returns the first instance of kind, or nil. The pointer is only
// valid until the effect list is next modified.
func (c *Combatant) FirstEffect(kind catalog.EffectKind) *StatusEffect {
	for i := range c.Effects {
		if c.Effects[i].Kind == kind {
			return &c.Effects[i]
		}
	}
	return nil
}

// HasEffect reports whether any instance of kind is active
func (c *Combatant) HasEffect(kind catalog.EffectKind) bool {
	return c.FirstEffect(kind) != nil
}

// ConsumeTriggered removes the first instance of kind and returns it.
func (c *Combatant) ConsumeTriggered(kind catalog.EffectKind) (StatusEffect, bool) {
	for i := range c.Effects {
		if c.Effects[i].Kind == kind {
			e := c.Effects[i]
			c.Effects = append(c.Effects[:i], c.Effects[i+1:]...)
			return e, true
		}
	}
	return StatusEffect{}, false
}

func (c *Combatant) decay() {
	kept := c.Effects[:0]
	for _, e := range c.Effects {
		e.RemainingTurns--
		if e.RemainingTurns > 0 {
			kept = append(kept, e)
		}
	}
	c.Effects = kept
}

// DecayAll ticks every effect of every combatant by one turn.
func (s *GameState) DecayAll() {
	for _, c := range s.Combatants {
		c.decay()
	}
}
