// Package command turns free-text player input into intents.
//
// Resolution depends on the context the player is in. Every alias lives in
// one table keyed by context, so each accepted word can be listed and tested.
// Parsing never touches game state and never fails: unknown input resolves to
// the context's fallback intent.
package command

// Context is where the player is when typing a command.
type Context int

const (
	ContextHub    Context = iota // At the hub, not in battle
	ContextRegion                // At a city or the final region, not in battle
	ContextBattle                // In battle, player's turn
	ContextDodge                 // In battle, an enemy blow is pending
)

// String returns a human-readable context name.
func (c Context) String() string {
	switch c {
	case ContextHub:
		return "hub"
	case ContextRegion:
		return "region"
	case ContextBattle:
		return "battle"
	case ContextDodge:
		return "dodge"
	default:
		return "unknown"
	}
}

// Intent is what the player asked for.
type Intent int

const (
	IntentInvalid Intent = iota
	IntentHelp
	IntentStatus
	IntentTravel
	IntentTalk
	IntentConfront
	IntentReturn
	IntentAttack
	IntentPotion
	IntentFlee
	IntentDodge
	IntentTakeHit
)

// String returns a human-readable intent name.
func (i Intent) String() string {
	switch i {
	case IntentInvalid:
		return "invalid"
	case IntentHelp:
		return "help"
	case IntentStatus:
		return "status"
	case IntentTravel:
		return "travel"
	case IntentTalk:
		return "talk"
	case IntentConfront:
		return "confront"
	case IntentReturn:
		return "return"
	case IntentAttack:
		return "attack"
	case IntentPotion:
		return "potion"
	case IntentFlee:
		return "flee"
	case IntentDodge:
		return "dodge"
	case IntentTakeHit:
		return "take_hit"
	default:
		return "unknown"
	}
}

// Command is a resolved player command.
type Command struct {
	Intent Intent
	Target int    // Destination region id for IntentTravel
	Input  string // Normalized input
}
