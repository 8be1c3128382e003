package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// SinkFactory creates an extra event sink for one game session. It may
// return nil when there is nothing to attach.
type SinkFactory func(session string) EventLogger

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- MultiLogger: fans events out to several loggers ---

// MultiLogger records events itself and forwards each one to every sink.
// Events() returns its own record, so sinks may be write-only.
type MultiLogger struct {
	MemoryLogger
	sinks []EventLogger
}

func NewMultiLogger(sinks ...EventLogger) *MultiLogger {
	l := &MultiLogger{}
	for _, s := range sinks {
		if s != nil {
			l.sinks = append(l.sinks, s)
		}
	}
	return l
}

func (l *MultiLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	event.Seq = l.seq
	for _, s := range l.sinks {
		s.Log(event)
	}
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	kind := e.Type.String()
	// Pad kind to 14 chars for alignment
	for len(kind) < 14 {
		kind += " "
	}
	return fmt.Sprintf("D%-3d %s| %s", e.Draws, kind, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewGameEvent() GameEvent {
	return GameEvent{
		Type:    EventNewGame,
		Details: "Game started!",
	}
}

func NewDrawEvent(draws int, suit, cardName string) GameEvent {
	return GameEvent{
		Draws:   draws,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("Drew: %s %s", suit, cardName),
	}
}

func NewShuffleEvent(draws int, size int) GameEvent {
	return GameEvent{
		Draws:   draws,
		Type:    EventShuffle,
		Details: fmt.Sprintf("Deck exhausted, shuffled a fresh deck of %d cards", size),
	}
}

func NewBossAppearEvent(draws int, bossName, playerName string) GameEvent {
	return GameEvent{
		Draws:   draws,
		Type:    EventBossAppear,
		Card:    bossName,
		Details: fmt.Sprintf("⚠️ BOSS APPEARED! %s's Evil Twin!", playerName),
	}
}

func NewSelectEvent(draws int, cardName string, selected bool) GameEvent {
	if selected {
		return GameEvent{
			Draws:   draws,
			Type:    EventSelect,
			Card:    cardName,
			Details: fmt.Sprintf("Selected %s", cardName),
		}
	}
	return GameEvent{
		Draws:   draws,
		Type:    EventDeselect,
		Card:    cardName,
		Details: fmt.Sprintf("Deselected %s", cardName),
	}
}

func NewClearSelectionEvent(draws int) GameEvent {
	return GameEvent{
		Draws:   draws,
		Type:    EventClearSelection,
		Details: "Cleared all selections",
	}
}

func NewComboEvent(draws int, icon, message, product string) GameEvent {
	return GameEvent{
		Draws:   draws,
		Type:    EventCombo,
		Card:    product,
		Details: fmt.Sprintf("%s %s Got [%s]!", icon, message, product),
	}
}

func NewComboFailedEvent(draws int, icon, effect string) GameEvent {
	return GameEvent{
		Draws:   draws,
		Type:    EventComboFailed,
		Card:    effect,
		Details: fmt.Sprintf("%s %s! Game Over", icon, effect),
	}
}

func NewComboNoMatchEvent(draws int, names []string) GameEvent {
	return GameEvent{
		Draws:   draws,
		Type:    EventComboNoMatch,
		Details: fmt.Sprintf("Nothing happens when combining %s", strings.Join(names, " + ")),
	}
}

func NewAttackEvent(draws int, ammo string, used int, hp int) GameEvent {
	return GameEvent{
		Draws:   draws,
		Type:    EventAttack,
		Card:    ammo,
		Details: fmt.Sprintf("💥 Used %d %s cards | Boss HP: %d", used, ammo, hp),
	}
}

func NewBossDefeatedEvent(draws int, reward string) GameEvent {
	return GameEvent{
		Draws:   draws,
		Type:    EventBossDefeated,
		Card:    reward,
		Details: fmt.Sprintf("🎉 DEFEATED BOSS! Got [%s]", reward),
	}
}

func NewAwardFoundEvent(draws int, awardName string) GameEvent {
	return GameEvent{
		Draws:   draws,
		Type:    EventAwardFound,
		Card:    awardName,
		Details: fmt.Sprintf("✨ Discovered: %s", awardName),
	}
}

func NewVictoryEvent(draws int, playerName string) GameEvent {
	return GameEvent{
		Draws:   draws,
		Type:    EventVictory,
		Details: fmt.Sprintf("%s mastered biological card science!", playerName),
	}
}

func NewGameOverEvent(draws int, reason string) GameEvent {
	return GameEvent{
		Draws:   draws,
		Type:    EventGameOver,
		Details: fmt.Sprintf("Lab accident: %s", reason),
	}
}
