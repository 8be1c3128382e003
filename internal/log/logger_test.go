package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEvent(t *testing.T) {
	e := NewDrawEvent(7, "♥️", "ATP")
	assert.Equal(t, "D7   Draw          | Drew: ♥️ ATP", FormatEvent(e))

	e = NewClearSelectionEvent(12)
	assert.Equal(t, "D12  ClearSelection| Cleared all selections", FormatEvent(e))
}

func TestMemoryLogger_Sequence(t *testing.T) {
	l := NewMemoryLogger()
	assert.Equal(t, GameEvent{}, l.LastEvent())

	l.Log(NewGameEvent())
	l.Log(NewSelectEvent(0, "DNA", true))
	l.Log(NewSelectEvent(0, "DNA", false))

	events := l.Events()
	require.Len(t, events, 3)
	for i, e := range events {
		assert.Equal(t, i+1, e.Seq)
	}
	assert.Len(t, l.EventsOfType(EventSelect), 1)
	assert.Equal(t, "Deselected DNA", l.LastEvent().Details)
}

func TestTextLogger_WritesLines(t *testing.T) {
	var buf bytes.Buffer
	l := NewTextLogger(&buf)
	l.Log(NewAwardFoundEvent(3, "Birthday Nobel"))
	l.Log(NewVictoryEvent(3, "Mr. Weitzel"))

	assert.Equal(t, FormatAll(l.Events()), buf.String())
	assert.Contains(t, buf.String(), "✨ Discovered: Birthday Nobel")
}

type captureLogger struct {
	got []GameEvent
}

func (c *captureLogger) Log(e GameEvent)      { c.got = append(c.got, e) }
func (c *captureLogger) Events() []GameEvent { return c.got }

func TestMultiLogger_FansOutWithSequence(t *testing.T) {
	a, b := &captureLogger{}, &captureLogger{}
	l := NewMultiLogger(a, nil, b)

	l.Log(NewGameEvent())
	l.Log(NewAttackEvent(22, "ATP", 3, 40))

	require.Len(t, l.Events(), 2)
	for _, sink := range []*captureLogger{a, b} {
		require.Len(t, sink.got, 2)
		assert.Equal(t, 1, sink.got[0].Seq)
		assert.Equal(t, 2, sink.got[1].Seq)
		assert.Equal(t, "💥 Used 3 ATP cards | Boss HP: 40", sink.got[1].Details)
	}
}

func TestEventType_Celebratory(t *testing.T) {
	assert.True(t, EventAwardFound.Celebratory())
	assert.True(t, EventBossDefeated.Celebratory())
	assert.False(t, EventCombo.Celebratory())
	assert.Equal(t, "Unknown", EventType(99).String())
}
