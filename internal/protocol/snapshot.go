package protocol

type EffectLite struct {
	Kind           string `json:"kind"`
	RemainingTurns int    `json:"remainingTurns"`
	Accumulated    int    `json:"accumulated,omitempty"`
}

type CombatantLite struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	ClassID     string       `json:"classId,omitempty"`
	HP          int          `json:"hp"`
	MaxHP       int          `json:"maxHp"`
	Alive       bool         `json:"alive"`
	Hunter      bool         `json:"hunter,omitempty"`
	Effects     []EffectLite `json:"effects"`
}

// Snapshot is a point-in-time view of the whole table, ordered by turn order.
type Snapshot struct {
	Combatants    []CombatantLite `json:"combatants"`
	CurrentTurnID string          `json:"currentTurnId"`
	Phase         string          `json:"phase"`
	Votes         int             `json:"votes"`
	Total         int             `json:"total"`
	Connections   int             `json:"connections"`
}
