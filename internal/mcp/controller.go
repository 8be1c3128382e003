package mcp

import (
	"sync"

	"go.uber.org/zap"

	"github.com/peterkuimelis/biolab/internal/game"
	"github.com/peterkuimelis/biolab/internal/log"
)

// Options configures the games the MCP tools start.
type Options struct {
	Rules  *game.RuleBook // nil for the built-in rules
	Player string
	Seed   int64 // 0 for random
	Logger *zap.Logger
	Sinks  log.SinkFactory
}

// Controller owns the active game session of one MCP server (one per stdio
// process). Tool handlers are its methods.
type Controller struct {
	opts Options

	mu     sync.Mutex // guards active
	active *GameSession
	games  int64
}

// NewController creates a controller with no game running.
func NewController(opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Controller{opts: opts}
}

// start replaces the active session with a fresh game. player overrides the
// configured player name when set.
func (c *Controller) start(player string) *GameSession {
	c.mu.Lock()
	defer c.mu.Unlock()

	if player == "" {
		player = c.opts.Player
	}
	seed := c.opts.Seed
	if seed != 0 {
		seed += c.games
	}
	c.games++

	c.active = NewGameSession(game.Config{
		Rules:      c.opts.Rules,
		Seed:       seed,
		PlayerName: player,
	}, c.opts.Sinks)
	c.opts.Logger.Info("mcp game started", zap.String("session", c.active.ID()))
	return c.active
}

// session returns the active session, or nil if no game is running.
func (c *Controller) session() *GameSession {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}
