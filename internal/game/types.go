package game

// --- Enums ---

type Status int

const (
	StatusPlaying Status = iota
	StatusVictory
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusVictory:
		return "victory"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Finished reports whether the game has reached a terminal status.
func (s Status) Finished() bool {
	return s != StatusPlaying
}

// ComboResult is the outcome of combining the selected cards.
type ComboResult int

const (
	ComboNoMatch ComboResult = iota
	ComboSuccess
	ComboFailure
	ComboInvalidSelection // selection did not hold exactly two cards
)

func (r ComboResult) String() string {
	switch r {
	case ComboNoMatch:
		return "no_match"
	case ComboSuccess:
		return "success"
	case ComboFailure:
		return "failure"
	case ComboInvalidSelection:
		return "invalid_selection"
	default:
		return "unknown"
	}
}

// Matched reports whether either recipe table matched.
func (r ComboResult) Matched() bool {
	return r == ComboSuccess || r == ComboFailure
}

// AttackResult is the outcome of attacking the boss.
type AttackResult int

const (
	AttackNoAmmo AttackResult = iota
	AttackHit
	AttackDefeated
	AttackInactive // boss has not appeared yet
)

func (r AttackResult) String() string {
	switch r {
	case AttackNoAmmo:
		return "no_ammo"
	case AttackHit:
		return "hit"
	case AttackDefeated:
		return "defeated"
	case AttackInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// CodeResult is the outcome of submitting a secret award code.
type CodeResult int

const (
	CodeUnrecognized CodeResult = iota
	CodeFound
	CodeAlreadyFound
)

func (r CodeResult) String() string {
	switch r {
	case CodeUnrecognized:
		return "unrecognized"
	case CodeFound:
		return "found"
	case CodeAlreadyFound:
		return "already_found"
	default:
		return "unknown"
	}
}
