package game

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ko-stant/hunter-arena/internal/catalog"
)

// checkInvariants asserts the properties that must hold between events.
func checkInvariants(t *testing.T, g *Game, step int) {
	t.Helper()
	s := g.state

	require.Len(t, s.Order, len(s.Combatants), "step %d: order and map disagree", step)
	seen := make(map[string]bool, len(s.Order))
	hunters := 0
	for _, id := range s.Order {
		require.False(t, seen[id], "step %d: %s appears twice in order", step, id)
		seen[id] = true

		c, ok := s.Combatants[id]
		require.True(t, ok, "step %d: %s in order but not in map", step, id)
		if c.Hunter {
			hunters++
		}
		require.GreaterOrEqual(t, c.HP, 0, "step %d: %s", step, id)
		require.LessOrEqual(t, c.HP, c.MaxHP, "step %d: %s", step, id)
		if c.ClassID != "" || c.Hunter {
			require.Equal(t, c.HP > 0, c.Alive, "step %d: %s alive flag", step, id)
		} else {
			require.Zero(t, c.HP, "step %d: classless %s has HP", step, id)
		}
	}
	require.LessOrEqual(t, hunters, 1, "step %d", step)

	for id := range s.Votes {
		require.Contains(t, s.Combatants, id, "step %d: vote from departed participant", step)
	}

	if s.Phase == Idle {
		require.Empty(t, s.CurrentTurnID(), "step %d", step)
		return
	}
	require.Equal(t, AwaitingAction, s.Phase, "step %d: autonomous phase leaked", step)
	require.Less(t, s.CurrentIndex, len(s.Order), "step %d", step)
	holder := s.Combatants[s.Order[s.CurrentIndex]]
	require.True(t, holder.Alive, "step %d: turn on dead %s", step, holder.ID)
	require.False(t, holder.Hunter, "step %d: hunter awaiting action", step)
}

func TestGame_RandomPlayKeepsInvariants(t *testing.T) {
	classes := []string{"Lobisomem", "Vampiro", "Bruxa"}
	ids := []string{"p0", "p1", "p2", "p3", "p4"}

	for seed := int64(1); seed <= 20; seed++ {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			rules := DefaultRules()
			rules.HunterSpawnChance = 0.3
			rules.CaptureChance = 0.4
			g := newTestGame(t, rules, rand.New(rand.NewSource(seed)))
			pick := rand.New(rand.NewSource(seed * 7919))

			for step := 0; step < 400; step++ {
				id := ids[pick.Intn(len(ids))]
				var ev Event
				switch r := pick.Intn(20); {
				case r < 2:
					ev = Connect{ParticipantID: id}
				case r < 3:
					ev = Disconnect{ParticipantID: id}
				case r < 5:
					ev = SetClass{ParticipantID: id, ClassID: classes[pick.Intn(len(classes))]}
				case r < 6:
					ev = RestartVote{ParticipantID: id}
				case r < 7:
					ev = Chat{ParticipantID: id, Text: "gg"}
				default:
					// mostly let the turn holder act so the game moves
					actor := g.state.CurrentTurnID()
					if actor == "" || pick.Intn(4) == 0 {
						actor = id
					}
					target := HunterID
					if pick.Intn(3) > 0 {
						target = ids[pick.Intn(len(ids))]
					}
					ev = PlayAbility{
						ParticipantID: actor,
						TargetID:      target,
						AbilityIndex:  pick.Intn(catalog.AbilitiesPerClass+1) + 1,
					}
				}

				g.Handle(ev)
				checkInvariants(t, g, step)
			}
		})
	}
}
