package protocol

import "encoding/json"

// Inbound intent types
const (
	IntentSetClass    = "setClass"
	IntentSetName     = "setName"
	IntentPlayAbility = "playAbility"
	IntentRestartVote = "restartVote"
	IntentChat        = "chat"
)

type IntentEnvelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type RequestSetClass struct {
	ClassID string `json:"classId"`
}

type RequestSetName struct {
	Name string `json:"name"`
}

type RequestPlayAbility struct {
	TargetID     string `json:"targetId"`
	AbilityIndex int    `json:"abilityIndex"`
}

type RequestRestartVote struct {
}

type RequestChat struct {
	Text string `json:"text"`
}
