// Package game is the authoritative turn and ability resolution engine.
//
// A Game owns one table of combatants. Every inbound event is applied with
// Handle, which runs to completion and returns the outbound events it
// produced in emission order. Game is not safe for concurrent use; the
// session layer serialises events onto a single goroutine.
package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Ko-stant/hunter-arena/internal/catalog"
	"github.com/Ko-stant/hunter-arena/internal/protocol"
)

const maxNameLength = 24

// Event is an inbound command from the session layer
type Event interface {
	participant() string
}

type Connect struct{ ParticipantID string }
type Disconnect struct{ ParticipantID string }
type SetClass struct {
	ParticipantID string
	ClassID       string
}
type SetName struct {
	ParticipantID string
	Name          string
}
type PlayAbility struct {
	ParticipantID string
	TargetID      string
	AbilityIndex  int
}
type RestartVote struct{ ParticipantID string }
type Chat struct {
	ParticipantID string
	Text          string
}

func (e Connect) participant() string     { return e.ParticipantID }
func (e Disconnect) participant() string  { return e.ParticipantID }
func (e SetClass) participant() string    { return e.ParticipantID }
func (e SetName) participant() string     { return e.ParticipantID }
func (e PlayAbility) participant() string { return e.ParticipantID }
func (e RestartVote) participant() string { return e.ParticipantID }
func (e Chat) participant() string        { return e.ParticipantID }

// Outbound is an event produced by the engine. An empty To means broadcast.
type Outbound struct {
	To      string
	Type    string
	Payload any
}

// Game is the engine around one GameState
type Game struct {
	state   *GameState
	catalog *catalog.Catalog
	rules   Rules
	rng     Source
	logger  Logger
	outbox  []Outbound
}

// New creates an empty table
func New(cat *catalog.Catalog, rules Rules, rng Source, logger Logger) *Game {
	return &Game{
		state:   newGameState(),
		catalog: cat,
		rules:   rules,
		rng:     rng,
		logger:  logger,
	}
}

// Handle applies one inbound event and returns the outbound events it caused.
// Rejected events produce no outbound events.
func (g *Game) Handle(ev Event) []Outbound {
	g.outbox = nil

	var err error
	switch e := ev.(type) {
	case Connect:
		err = g.Connect(e.ParticipantID)
	case Disconnect:
		err = g.Disconnect(e.ParticipantID)
	case SetClass:
		err = g.SetClass(e.ParticipantID, e.ClassID)
	case SetName:
		err = g.SetName(e.ParticipantID, e.Name)
	case PlayAbility:
		err = g.ResolveAbility(e.ParticipantID, e.TargetID, e.AbilityIndex)
	case RestartVote:
		err = g.RegisterVote(e.ParticipantID)
	case Chat:
		err = g.Chat(e.ParticipantID, e.Text)
	default:
		err = fmt.Errorf("unsupported event %T", ev)
	}
	if err != nil {
		g.logger.Debugw("event rejected", "event", fmt.Sprintf("%T", ev), "participant", ev.participant(), "error", err)
		g.outbox = nil
		return nil
	}

	out := g.outbox
	g.outbox = nil
	return out
}

// Snapshot returns the table in turn order
func (g *Game) Snapshot() protocol.Snapshot {
	s := g.state
	combatants := make([]protocol.CombatantLite, 0, len(s.Order))
	for _, id := range s.Order {
		combatants = append(combatants, s.Combatants[id].Lite())
	}
	votes, total := g.Tally()
	return protocol.Snapshot{
		Combatants:    combatants,
		CurrentTurnID: s.CurrentTurnID(),
		Phase:         string(s.Phase),
		Votes:         votes,
		Total:         total,
	}
}

// Connect adds a placeholder combatant for a new participant.
func (g *Game) Connect(id string) error {
	s := g.state
	if _, exists := s.Combatants[id]; exists || id == HunterID {
		return ErrAlreadyConnected
	}

	s.add(newPlaceholder(id))
	g.logger.Infow("participant joined", "participant", id, "table_size", len(s.Order))

	takesTurn := s.Phase == Idle
	if takesTurn {
		s.CurrentIndex = len(s.Order) - 1
		s.Phase = AwaitingAction
	}

	g.send(id, protocol.EventClassesData, protocol.ClassesData{Classes: g.catalog.Classes()})
	g.send(id, protocol.EventInit, protocol.Init{
		SelfID:        id,
		Combatants:    s.lites(),
		CurrentTurnID: s.CurrentTurnID(),
	})
	g.broadcastPlayers()
	if takesTurn {
		g.broadcastTurn()
	}
	return nil
}

// Disconnect removes a participant. If it held the turn the scheduler
// advances immediately so the table never stalls on an absent player.
func (g *Game) Disconnect(id string) error {
	s := g.state
	c, ok := s.Combatants[id]
	if !ok || c.Hunter {
		return ErrUnknownCombatant
	}

	heldTurn := s.CurrentTurnID() == id
	s.remove(id)
	g.logger.Infow("participant left", "participant", id, "held_turn", heldTurn)
	g.broadcastPlayers()

	if s.humanCount() == 0 {
		g.despawnHunter()
		s.CurrentIndex = 0
		s.Phase = Idle
		return nil
	}

	if heldTurn {
		g.Advance()
	} else if s.Phase != Idle {
		g.broadcastTurn()
	}

	if len(s.Votes) > 0 {
		g.announceVotes()
	}
	return nil
}

// SetClass activates a combatant with the class maximum HP. A participant
// without a class is activated even if it was killed as a placeholder; a dead
// classed combatant cannot switch class until the next restart.
func (g *Game) SetClass(id, classID string) error {
	c, ok := g.state.Combatants[id]
	if !ok || c.Hunter {
		return ErrUnknownCombatant
	}
	if !c.Alive && c.ClassID != "" {
		return ErrActorDead
	}
	class, ok := g.catalog.Class(classID)
	if !ok {
		return ErrUnknownClass
	}

	c.ClassID = class.ID
	c.MaxHP = class.MaxHP
	c.restore()
	c.DisplayName = g.displayName(c)

	g.broadcastPlayers()
	return nil
}

// SetName changes the cosmetic name of a combatant.
func (g *Game) SetName(id, name string) error {
	c, ok := g.state.Combatants[id]
	if !ok || c.Hunter {
		return ErrUnknownCombatant
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultName
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		name = string([]rune(name)[:maxNameLength])
	}
	c.Name = name
	c.DisplayName = g.displayName(c)

	g.broadcastPlayers()
	return nil
}

// Chat relays a table message from a living combatant.
func (g *Game) Chat(id, text string) error {
	c, ok := g.state.Combatants[id]
	if !ok || c.Hunter {
		return ErrUnknownCombatant
	}
	if !c.Alive {
		return ErrActorDead
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyMessage
	}

	g.broadcast(protocol.EventChatMessage, protocol.ChatMessage{Name: c.DisplayName, Text: text})
	return nil
}

func (g *Game) displayName(c *Combatant) string {
	class, ok := g.catalog.Class(c.ClassID)
	if !ok || class.Emoji == "" {
		return c.Name
	}
	return class.Emoji + " " + c.Name
}

func (g *Game) send(to, eventType string, payload any) {
	g.outbox = append(g.outbox, Outbound{To: to, Type: eventType, Payload: payload})
}

func (g *Game) broadcast(eventType string, payload any) {
	g.send("", eventType, payload)
}

func (g *Game) broadcastPlayers() {
	g.broadcast(protocol.EventUpdatePlayers, protocol.PlayersUpdated{Combatants: g.state.lites()})
}

func (g *Game) broadcastTurn() {
	g.broadcast(protocol.EventTurnChanged, protocol.TurnChanged{CurrentTurnID: g.state.CurrentTurnID()})
}

func (g *Game) narrate(tone, format string, args ...any) {
	g.broadcast(protocol.EventMessage, protocol.Message{Text: fmt.Sprintf(format, args...), Tone: tone})
}
