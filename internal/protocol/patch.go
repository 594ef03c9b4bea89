package protocol

import "github.com/Ko-stant/hunter-arena/internal/catalog"

// Outbound event types
const (
	EventInit          = "init"
	EventClassesData   = "classesData"
	EventUpdatePlayers = "updatePlayers"
	EventTurnChanged   = "turnChanged"
	EventMessage       = "message"
	EventRestartVotes  = "restartVotes"
	EventGameRestarted = "gameRestarted"
	EventChatMessage   = "chatMessage"
)

// Message tones let the presentation layer colour narration.
const (
	ToneInfo     = "info"
	ToneAttack   = "attack"
	ToneCritical = "critical"
	ToneHeal     = "heal"
	ToneBuff     = "buff"
	ToneDeath    = "death"
	ToneHunter   = "hunter"
	ToneSkip     = "skip"
)

type PatchEnvelope struct {
	Sequence uint64 `json:"seq"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

type Init struct {
	SelfID        string                   `json:"selfId"`
	Combatants    map[string]CombatantLite `json:"combatants"`
	CurrentTurnID string                   `json:"currentTurnId"`
}

type ClassesData struct {
	Classes []catalog.ClassDefinition `json:"classes"`
}

type PlayersUpdated struct {
	Combatants map[string]CombatantLite `json:"combatants"`
}

type TurnChanged struct {
	CurrentTurnID string `json:"currentTurnId"`
}

type Message struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

type RestartVotes struct {
	Votes int `json:"votes"`
	Total int `json:"total"`
}

type GameRestarted struct {
}

type ChatMessage struct {
	Name string `json:"name"`
	Text string `json:"text"`
}
