package game

import "fmt"

// GameError represents a rejected game action
type GameError struct {
	Code    string
	Message string
}

func (e *GameError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Rejection reasons. Handle swallows these after logging them; direct callers
// can match them with errors.Is.
var (
	ErrUnknownCombatant = &GameError{Code: "unknown_combatant", Message: "combatant not found"}
	ErrActorDead        = &GameError{Code: "actor_dead", Message: "combatant is not alive"}
	ErrNotYourTurn      = &GameError{Code: "not_your_turn", Message: "it is not this combatant's turn"}
	ErrUnknownTarget    = &GameError{Code: "unknown_target", Message: "target not found"}
	ErrTargetDead       = &GameError{Code: "target_dead", Message: "target is not alive"}
	ErrUnknownAbility   = &GameError{Code: "unknown_ability", Message: "ability index does not resolve for this class"}
	ErrUnknownClass     = &GameError{Code: "unknown_class", Message: "class not found"}
	ErrNoClass          = &GameError{Code: "no_class", Message: "combatant has not chosen a class"}
	ErrAlreadyConnected = &GameError{Code: "already_connected", Message: "participant already connected"}
	ErrEmptyMessage     = &GameError{Code: "empty_message", Message: "chat message is empty"}
)
