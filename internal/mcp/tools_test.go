package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/biolab/internal/game"
	"github.com/peterkuimelis/biolab/internal/log"
)

type handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func call(t *testing.T, h handler, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return text.Text
}

func decode(t *testing.T, res *mcp.CallToolResult) ToolResponse {
	t.Helper()
	require.False(t, res.IsError, resultText(t, res))
	var resp ToolResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &resp))
	return resp
}

func TestTools_RequireAGame(t *testing.T) {
	c := NewController(Options{})
	for name, h := range map[string]handler{
		"draw":  c.handleDrawCard,
		"combo": c.handleTryCombo,
		"state": c.handleGetGameState,
	} {
		res := call(t, h, nil)
		assert.True(t, res.IsError, name)
		assert.Contains(t, resultText(t, res), "new_game", name)
	}
}

func TestTools_PlayThrough(t *testing.T) {
	c := NewController(Options{Seed: 21})

	resp := decode(t, call(t, c.handleNewGame, map[string]any{"player": "Dr. Lee"}))
	assert.NotEmpty(t, resp.Session)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "NewGame", resp.Events[0].Type)
	assert.Contains(t, resp.State.Greeting, "Happy Birthday, Dr. Lee!")

	// The greeting is delivered once.
	resp = decode(t, call(t, c.handleGetGameState, nil))
	assert.Empty(t, resp.State.Greeting)
	assert.Empty(t, resp.Events)

	resp = decode(t, call(t, c.handleDrawCard, nil))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "Draw", resp.Events[0].Type)
	require.Len(t, resp.State.Pool, 1)
	card := resp.State.Pool[0]
	assert.Equal(t, card.Name, resp.Result)

	resp = decode(t, call(t, c.handleToggleSelect, map[string]any{"card_id": card.ID}))
	assert.Equal(t, "selected", resp.Result)
	resp = decode(t, call(t, c.handleToggleSelect, map[string]any{"index": 0}))
	assert.Equal(t, "unselected", resp.Result)

	resp = decode(t, call(t, c.handleTryCombo, nil))
	assert.Equal(t, "invalid_selection", resp.Result)
	assert.Empty(t, resp.Events)

	resp = decode(t, call(t, c.handleAttackBoss, nil))
	assert.Equal(t, "inactive", resp.Result)

	resp = decode(t, call(t, c.handleSubmitCode, map[string]any{"code": "yay mr.weitzel"}))
	assert.Equal(t, "found", resp.Result)
	assert.True(t, resp.State.Celebrate)
	require.Len(t, resp.Events, 1)
	assert.True(t, resp.Events[0].Celebrate)

	resp = decode(t, call(t, c.handleClearSelection, nil))
	assert.Equal(t, 0, resp.State.SelectedCount)
	assert.False(t, resp.GameOver)
}

func TestToggleSelect_NeedsTarget(t *testing.T) {
	c := NewController(Options{})
	decode(t, call(t, c.handleNewGame, nil))

	res := call(t, c.handleToggleSelect, map[string]any{})
	assert.True(t, res.IsError)
}

func TestSubmitCode_RequiresCode(t *testing.T) {
	c := NewController(Options{})
	decode(t, call(t, c.handleNewGame, nil))

	res := call(t, c.handleSubmitCode, map[string]any{})
	assert.True(t, res.IsError)
}

func TestTools_GameOverRejectsCommands(t *testing.T) {
	c := NewController(Options{})
	decode(t, call(t, c.handleNewGame, nil))

	sess := c.session()
	sess.mu.Lock()
	g := sess.game
	for _, name := range []string{"Prion", "Protein"} {
		suit, rank, ok := g.Rules.Catalog.Lookup(name)
		require.True(t, ok)
		card := game.NewCard(suit, rank, name, g.Rules.Catalog.Color(suit))
		card.Selected = true
		g.State.Pool = append(g.State.Pool, card)
	}
	sess.mu.Unlock()

	resp := decode(t, call(t, c.handleTryCombo, nil))
	assert.Equal(t, "failure", resp.Result)
	assert.True(t, resp.GameOver)
	assert.Equal(t, "game_over", resp.State.Status)

	res := call(t, c.handleDrawCard, nil)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "lab accident")

	resp = decode(t, call(t, c.handleNewGame, nil))
	assert.False(t, resp.GameOver)
}

func TestNewGame_UsesSinks(t *testing.T) {
	var sessions []string
	c := NewController(Options{Sinks: func(session string) log.EventLogger {
		sessions = append(sessions, session)
		return log.NewMemoryLogger()
	}})

	first := decode(t, call(t, c.handleNewGame, nil))
	second := decode(t, call(t, c.handleNewGame, nil))

	assert.Equal(t, []string{first.Session, second.Session}, sessions)
	assert.NotEqual(t, first.Session, second.Session)
}
