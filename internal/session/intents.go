package session

import (
	"encoding/json"
	"fmt"

	"github.com/Ko-stant/hunter-arena/internal/game"
	"github.com/Ko-stant/hunter-arena/internal/protocol"
)

// DecodeIntent turns one inbound frame from participant id into an engine
// event.
func DecodeIntent(id string, data []byte) (game.Event, error) {
	var env protocol.IntentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	switch env.Type {
	case protocol.IntentSetClass:
		var req protocol.RequestSetClass
		if err := decodePayload(env, &req); err != nil {
			return nil, err
		}
		return game.SetClass{ParticipantID: id, ClassID: req.ClassID}, nil

	case protocol.IntentSetName:
		var req protocol.RequestSetName
		if err := decodePayload(env, &req); err != nil {
			return nil, err
		}
		return game.SetName{ParticipantID: id, Name: req.Name}, nil

	case protocol.IntentPlayAbility:
		var req protocol.RequestPlayAbility
		if err := decodePayload(env, &req); err != nil {
			return nil, err
		}
		return game.PlayAbility{ParticipantID: id, TargetID: req.TargetID, AbilityIndex: req.AbilityIndex}, nil

	case protocol.IntentRestartVote:
		return game.RestartVote{ParticipantID: id}, nil

	case protocol.IntentChat:
		var req protocol.RequestChat
		if err := decodePayload(env, &req); err != nil {
			return nil, err
		}
		return game.Chat{ParticipantID: id, Text: req.Text}, nil

	default:
		return nil, fmt.Errorf("unknown intent %q", env.Type)
	}
}

func decodePayload(env protocol.IntentEnvelope, v any) error {
	if len(env.Payload) == 0 {
		return fmt.Errorf("%s: missing payload", env.Type)
	}
	if err := json.Unmarshal(env.Payload, v); err != nil {
		return fmt.Errorf("%s: %w", env.Type, err)
	}
	return nil
}
