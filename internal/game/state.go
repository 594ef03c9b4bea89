package game

import (
	"slices"

	"github.com/Ko-stant/hunter-arena/internal/protocol"
)

// Phase is the scheduler state
type Phase string

const (
	// AwaitingAction - a human holds the turn and the table waits for playAbility
	AwaitingAction Phase = "awaiting_action"

	// AutonomousActing - the Hunter is resolving its own turn
	AutonomousActing Phase = "autonomous_acting"

	// Idle - nobody can take a turn
	Idle Phase = "idle"
)

// GameState is the whole mutable table. It is owned by exactly one Game and
// never shared across goroutines.
type GameState struct {
	Combatants   map[string]*Combatant
	Order        []string
	CurrentIndex int
	Votes        map[string]bool
	Phase        Phase
}

func newGameState() *GameState {
	return &GameState{
		Combatants: make(map[string]*Combatant),
		Votes:      make(map[string]bool),
		Phase:      Idle,
	}
}

// CurrentTurnID returns the id holding the turn, or "" when idle.
func (s *GameState) CurrentTurnID() string {
	if s.Phase == Idle || len(s.Order) == 0 {
		return ""
	}
	return s.Order[s.CurrentIndex]
}

func (s *GameState) add(c *Combatant) {
	s.Combatants[c.ID] = c
	s.Order = append(s.Order, c.ID)
}

// remove drops id from the map, the vote set and the turn order. When the
// removed id held the turn, the pointer moves to its predecessor so that the
// next advance lands on its successor.
func (s *GameState) remove(id string) {
	delete(s.Combatants, id)
	delete(s.Votes, id)

	i := slices.Index(s.Order, id)
	if i < 0 {
		return
	}
	s.Order = slices.Delete(s.Order, i, i+1)

	n := len(s.Order)
	switch {
	case n == 0:
		s.CurrentIndex = 0
	case i < s.CurrentIndex:
		s.CurrentIndex--
	case i == s.CurrentIndex:
		s.CurrentIndex = (i - 1 + n) % n
	}
}

// livingHumans returns alive non-Hunter combatants in turn order.
func (s *GameState) livingHumans() []*Combatant {
	var out []*Combatant
	for _, id := range s.Order {
		c := s.Combatants[id]
		if c != nil && c.Alive && !c.Hunter {
			out = append(out, c)
		}
	}
	return out
}

func (s *GameState) humanCount() int {
	n := 0
	for _, c := range s.Combatants {
		if !c.Hunter {
			n++
		}
	}
	return n
}

// nextLivingIndex walks the order circularly from the current pointer and
// returns the first living position after it. It visits each slot at most once.
func (s *GameState) nextLivingIndex() (int, bool) {
	n := len(s.Order)
	for step := 1; step <= n; step++ {
		j := (s.CurrentIndex + step) % n
		if c := s.Combatants[s.Order[j]]; c != nil && c.Alive {
			return j, true
		}
	}
	return 0, false
}

func (s *GameState) lites() map[string]protocol.CombatantLite {
	out := make(map[string]protocol.CombatantLite, len(s.Combatants))
	for id, c := range s.Combatants {
		out[id] = c.Lite()
	}
	return out
}
