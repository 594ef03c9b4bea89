package game

import (
	"github.com/Ko-stant/hunter-arena/internal/catalog"
	"github.com/Ko-stant/hunter-arena/internal/protocol"
)

const (
	// HunterID is the reserved id of the autonomous actor.
	HunterID = "hunter"

	defaultName = "Jogador"
	hunterName  = "Caçador"
	hunterIcon  = "🗡️"
)

// StatusEffect is a timed modifier attached to a combatant
type StatusEffect struct {
	Kind           catalog.EffectKind
	RemainingTurns int
	Accumulated    int
}

// Combatant is any participant in turn order, human or the Hunter
type Combatant struct {
	ID          string
	Name        string
	DisplayName string
	ClassID     string
	HP          int
	MaxHP       int
	Alive       bool
	Hunter      bool
	Effects     []StatusEffect
}

func newPlaceholder(id string) *Combatant {
	return &Combatant{
		ID:          id,
		Name:        defaultName,
		DisplayName: defaultName,
		Alive:       true,
	}
}

func newHunter(hp int) *Combatant {
	return &Combatant{
		ID:          HunterID,
		Name:        hunterName,
		DisplayName: hunterIcon + " " + hunterName,
		HP:          hp,
		MaxHP:       hp,
		Alive:       true,
		Hunter:      true,
	}
}

// settle clamps HP into [0, MaxHP] and assigns Alive from the result. It is
// called once at the end of every mutation of the combatant.
func (c *Combatant) settle() {
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
	if c.HP <= 0 {
		c.HP = 0
		c.Alive = false
		return
	}
	c.Alive = true
}

func (c *Combatant) restore() {
	c.HP = c.MaxHP
	c.Alive = true
	c.Effects = nil
}

// Lite converts the combatant to its wire form
func (c *Combatant) Lite() protocol.CombatantLite {
	effects := make([]protocol.EffectLite, 0, len(c.Effects))
	for _, e := range c.Effects {
		effects = append(effects, protocol.EffectLite{
			Kind:           string(e.Kind),
			RemainingTurns: e.RemainingTurns,
			Accumulated:    e.Accumulated,
		})
	}
	return protocol.CombatantLite{
		ID:          c.ID,
		Name:        c.Name,
		DisplayName: c.DisplayName,
		ClassID:     c.ClassID,
		HP:          c.HP,
		MaxHP:       c.MaxHP,
		Alive:       c.Alive,
		Hunter:      c.Hunter,
		Effects:     effects,
	}
}
