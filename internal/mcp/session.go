package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/peterkuimelis/biolab/internal/game"
	"github.com/peterkuimelis/biolab/internal/log"
	labnet "github.com/peterkuimelis/biolab/internal/net"
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Session  string             `json:"session"`
	Events   []labnet.EventView `json:"events"`
	State    *labnet.StateView  `json:"state,omitempty"`
	Result   string             `json:"result,omitempty"`
	GameOver bool               `json:"game_over"`
	Victory  bool               `json:"victory"`
}

// GameSession holds the state of a single MCP game session. It is the
// game's event sink and buffers events until the next tool response.
type GameSession struct {
	log.MemoryLogger

	id   string
	game *game.Game

	mu     sync.Mutex // guards game and events
	events []labnet.EventView
}

// NewGameSession starts a game. sink, when non-nil, receives every event too.
func NewGameSession(cfg game.Config, sinks log.SinkFactory) *GameSession {
	sess := &GameSession{id: uuid.NewString()}
	var sink log.EventLogger
	if sinks != nil {
		sink = sinks(sess.id)
	}
	cfg.Logger = log.NewMultiLogger(sess, sink)
	sess.game = game.New(cfg)
	return sess
}

// ID returns the session id.
func (s *GameSession) ID() string {
	return s.id
}

// Log implements log.EventLogger. Must be called with mu held, which every
// game command issued through apply guarantees.
func (s *GameSession) Log(event log.GameEvent) {
	s.MemoryLogger.Log(event)
	s.events = append(s.events, *labnet.BuildEventView(s.LastEvent()))
}

// apply runs one command and builds the tool response. err is the message
// of a rejected command.
func (s *GameSession) apply(msg labnet.ClientMessage) (resp *ToolResponse, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply := labnet.Dispatch(s.game, msg)
	resp = s.response(reply.State)
	resp.Result = reply.Result
	if reply.Type == "error" {
		return resp, errors.New(reply.Error)
	}
	return resp, nil
}

// snapshot builds a response without running a command.
func (s *GameSession) snapshot() *ToolResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response(labnet.BuildStateView(s.game.Snapshot()))
}

// response drains the buffered events. Must be called with mu held.
func (s *GameSession) response(state *labnet.StateView) *ToolResponse {
	resp := &ToolResponse{
		Session:  s.id,
		Events:   s.drainEvents(),
		State:    state,
		GameOver: state.Status == game.StatusGameOver.String(),
		Victory:  state.Status == game.StatusVictory.String(),
	}
	// The greeting reaches the agent once, in this response.
	if state.Greeting != "" {
		s.game.AckGreeting()
	}
	return resp
}

// drainEvents returns all accumulated events and clears the buffer.
// Must be called with mu held.
func (s *GameSession) drainEvents() []labnet.EventView {
	events := s.events
	s.events = nil
	// Ensure events is never null in JSON
	if events == nil {
		events = []labnet.EventView{}
	}
	return events
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
