package net

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/peterkuimelis/biolab/internal/game"
	"github.com/peterkuimelis/biolab/internal/log"
)

// NetworkController drives one game over a JSON message stream. It is also
// the game's event sink: every event is pushed to the client as a "notify"
// message before the command's reply.
type NetworkController struct {
	log.MemoryLogger

	enc *json.Encoder
	dec *json.Decoder
	mu  sync.Mutex
}

// NewNetworkController creates a new controller for the given connection.
func NewNetworkController(conn io.ReadWriter) *NetworkController {
	return &NetworkController{
		enc: json.NewEncoder(conn),
		dec: json.NewDecoder(conn),
	}
}

// Log implements log.EventLogger.
func (nc *NetworkController) Log(event log.GameEvent) {
	nc.MemoryLogger.Log(event)
	event = nc.LastEvent()
	_ = nc.Notify(event)
}

// Notify sends a single event to the client.
func (nc *NetworkController) Notify(event log.GameEvent) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: "notify", Event: BuildEventView(event)})
}

// Reply sends a command reply to the client.
func (nc *NetworkController) Reply(msg ServerMessage) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(msg)
}

// Recv reads the next client message.
func (nc *NetworkController) Recv() (ClientMessage, error) {
	var msg ClientMessage
	err := nc.dec.Decode(&msg)
	return msg, err
}

// send sends a server message to the client. Must be called with mu held.
func (nc *NetworkController) send(msg ServerMessage) error {
	return nc.enc.Encode(msg)
}

// BuildEventView converts a game event for the wire.
func BuildEventView(event log.GameEvent) *EventView {
	return &EventView{
		Seq:       event.Seq,
		Draws:     event.Draws,
		Type:      event.Type.String(),
		Card:      event.Card,
		Details:   event.Details,
		Celebrate: event.Type.Celebratory(),
	}
}

// BuildStateView creates a StateView from a game snapshot.
func BuildStateView(s game.Snapshot) *StateView {
	sv := &StateView{
		Player:        s.PlayerName,
		Status:        s.Status.String(),
		LastAction:    s.LastAction,
		Pool:          make([]CardView, 0, len(s.Pool)),
		SelectedCount: s.SelectedCount,
		DeckCount:     s.DeckCount,
		Draws:         s.Draws,
		Inventory:     append([]string{}, s.Inventory...),
		ComboCount:    s.ComboCount,
		Boss: BossView{
			Active:   s.BossActive,
			HP:       s.BossHP,
			MaxHP:    s.BossMaxHP,
			Defeated: s.BossDefeated,
			Display:  s.BossDisplay(),
		},
		Awards:        make([]AwardView, 0, len(s.Awards)),
		AnyAwardFound: s.AnyAwardFound,
		HasBossReward: s.HasBossReward,
		Celebrate:     s.Celebrate,
	}
	for i, c := range s.Pool {
		sv.Pool = append(sv.Pool, CardView{
			Index:    i,
			ID:       c.ID,
			Suit:     string(c.Category),
			Rank:     c.Rank,
			Name:     c.Name,
			Color:    c.Color,
			Selected: c.Selected,
			Boss:     c.IsBoss(),
		})
	}
	for _, a := range s.Awards {
		sv.Awards = append(sv.Awards, AwardView{
			Name:        a.Name,
			Description: a.Description,
			Image:       a.Image,
			Found:       a.Found,
		})
	}
	if s.GreetingPending {
		sv.Greeting = s.Greeting()
	}
	return sv
}

// ErrUnknownMessage is returned for client messages of an unknown type.
var ErrUnknownMessage = errors.New("unknown message type")

// Dispatch applies one client message to the game and builds the reply.
// Rejected commands produce an "error" reply carrying the unchanged state.
func Dispatch(g *game.Game, msg ClientMessage) ServerMessage {
	result, err := apply(g, msg)
	reply := ServerMessage{Type: "state", Result: result, State: BuildStateView(g.Snapshot())}
	if err != nil {
		reply.Type = "error"
		reply.Error = err.Error()
	}
	return reply
}

func apply(g *game.Game, msg ClientMessage) (string, error) {
	switch msg.Type {
	case "draw":
		card, err := g.DrawCard()
		if err != nil {
			return "", err
		}
		return card.Name, nil

	case "select":
		var selected bool
		var err error
		if msg.CardID != "" {
			selected, err = g.ToggleSelect(msg.CardID)
		} else {
			selected, err = g.ToggleSelectIndex(msg.Index)
		}
		if err != nil {
			return "", err
		}
		if selected {
			return "selected", nil
		}
		return "unselected", nil

	case "clear":
		return "", g.ClearSelection()

	case "combo":
		r, err := g.TryCombo()
		if err != nil {
			return "", err
		}
		return r.String(), nil

	case "attack":
		r, err := g.AttackBoss()
		if err != nil {
			return "", err
		}
		return r.String(), nil

	case "code":
		r, err := g.SubmitCode(msg.Code)
		if err != nil {
			return "", err
		}
		return r.String(), nil

	case "new_game":
		g.NewGame()
		return "", nil

	case "ack_greeting":
		g.AckGreeting()
		return "", nil

	case "state":
		return "", nil

	default:
		return "", fmt.Errorf("%w %q", ErrUnknownMessage, msg.Type)
	}
}
