package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	labnet "github.com/peterkuimelis/biolab/internal/net"
)

// RegisterTools adds all game tools to the MCP server.
func (c *Controller) RegisterTools(s *server.MCPServer) {
	s.AddTool(newGameTool(), c.handleNewGame)
	s.AddTool(drawCardTool(), c.handleDrawCard)
	s.AddTool(toggleSelectTool(), c.handleToggleSelect)
	s.AddTool(clearSelectionTool(), c.handleClearSelection)
	s.AddTool(tryComboTool(), c.handleTryCombo)
	s.AddTool(attackBossTool(), c.handleAttackBoss)
	s.AddTool(submitCodeTool(), c.handleSubmitCode)
	s.AddTool(getGameStateTool(), c.handleGetGameState)
}

// --- Tool definitions ---

func newGameTool() mcp.Tool {
	return mcp.NewTool("new_game",
		mcp.WithDescription("Start a new Bio Card Lab game, discarding any game in progress. "+
			"Draw cards into the pool, select two and combine them into products. "+
			"Some pairs are lab accidents that end the game. Once more than 20 cards are in play a boss appears; "+
			"attack it with selected ATP cards. Secret codes unlock hidden awards."),
		mcp.WithString("player", mcp.Description("Name of the player the lab is dedicated to (optional)")),
	)
}

func drawCardTool() mcp.Tool {
	return mcp.NewTool("draw_card",
		mcp.WithDescription("Draw the top card of the deck into the pool. The deck is reshuffled only when it runs out."),
	)
}

func toggleSelectTool() mcp.Tool {
	return mcp.NewTool("toggle_select",
		mcp.WithDescription("Select or unselect one card in the pool. Prefer card_id, which stays valid when the pool changes."),
		mcp.WithString("card_id", mcp.Description("id of the pool card")),
		mcp.WithNumber("index", mcp.Description("0-based pool index, used when card_id is empty")),
	)
}

func clearSelectionTool() mcp.Tool {
	return mcp.NewTool("clear_selection",
		mcp.WithDescription("Unselect every card in the pool."),
	)
}

func tryComboTool() mcp.Tool {
	return mcp.NewTool("try_combo",
		mcp.WithDescription("Combine the two selected cards. Result is success, failure (game over), no_match or invalid_selection."),
	)
}

func attackBossTool() mcp.Tool {
	return mcp.NewTool("attack_boss",
		mcp.WithDescription("Spend every selected ATP card against the boss. Result is hit, defeated, no_ammo or inactive."),
	)
}

func submitCodeTool() mcp.Tool {
	return mcp.NewTool("submit_code",
		mcp.WithDescription("Enter a secret code to unlock a hidden award. Codes are not case-sensitive."),
		mcp.WithString("code", mcp.Required(), mcp.Description("The secret code")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current game state and accumulated events without changing anything. Read-only."),
	)
}

// --- Tool handlers ---

func (c *Controller) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := c.start(request.GetString("player", ""))
	return mcp.NewToolResultText(respondJSON(sess.snapshot())), nil
}

func (c *Controller) handleDrawCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.run(labnet.ClientMessage{Type: "draw"})
}

func (c *Controller) handleToggleSelect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("card_id", "")
	index := request.GetInt("index", -1)
	if id == "" && index < 0 {
		return mcp.NewToolResultError("Provide card_id or a non-negative index."), nil
	}
	return c.run(labnet.ClientMessage{Type: "select", CardID: id, Index: index})
}

func (c *Controller) handleClearSelection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.run(labnet.ClientMessage{Type: "clear"})
}

func (c *Controller) handleTryCombo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.run(labnet.ClientMessage{Type: "combo"})
}

func (c *Controller) handleAttackBoss(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return c.run(labnet.ClientMessage{Type: "attack"})
}

func (c *Controller) handleSubmitCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return c.run(labnet.ClientMessage{Type: "code", Code: code})
}

func (c *Controller) handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess := c.session()
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}
	return mcp.NewToolResultText(respondJSON(sess.snapshot())), nil
}

// run applies a command to the active session.
func (c *Controller) run(msg labnet.ClientMessage) (*mcp.CallToolResult, error) {
	sess := c.session()
	if sess == nil {
		return mcp.NewToolResultError("No game is running. Use new_game first."), nil
	}
	resp, err := sess.apply(msg)
	if err != nil {
		return mcp.NewToolResultErrorf("Command rejected (%v). Use new_game to play again.", err), nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}
