package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewGame EventType = iota
	EventDraw
	EventShuffle
	EventBossAppear
	EventSelect
	EventDeselect
	EventClearSelection
	EventCombo
	EventComboFailed
	EventComboNoMatch
	EventAttack
	EventBossDefeated
	EventAwardFound
	EventVictory
	EventGameOver
)

func (e EventType) String() string {
	switch e {
	case EventNewGame:
		return "NewGame"
	case EventDraw:
		return "Draw"
	case EventShuffle:
		return "Shuffle"
	case EventBossAppear:
		return "BossAppear"
	case EventSelect:
		return "Select"
	case EventDeselect:
		return "Deselect"
	case EventClearSelection:
		return "ClearSelection"
	case EventCombo:
		return "Combo"
	case EventComboFailed:
		return "ComboFailed"
	case EventComboNoMatch:
		return "ComboNoMatch"
	case EventAttack:
		return "Attack"
	case EventBossDefeated:
		return "BossDefeated"
	case EventAwardFound:
		return "AwardFound"
	case EventVictory:
		return "Victory"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Celebratory reports whether a View should play its celebration effect
// for this event.
func (e EventType) Celebratory() bool {
	return e == EventAwardFound || e == EventBossDefeated
}

// GameEvent represents a single observable event in a lab session.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Draws   int       // cumulative draws when the event happened
	Type    EventType // event type
	Card    string    // card or item name (if applicable)
	Details string    // human-readable detail string, shown as the last action
}
