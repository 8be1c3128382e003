package net

// Message types for the JSON protocol over TCP and websocket.

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"` // "notify", "state" or "error"

	// For "notify"
	Event *EventView `json:"event,omitempty"`

	// For "state" and "error"
	State  *StateView `json:"state,omitempty"`
	Result string     `json:"result,omitempty"` // typed result of the command

	// For "error"
	Error string `json:"error,omitempty"`
}

// EventView is a simplified game event for the client.
type EventView struct {
	Seq       int    `json:"seq"`
	Draws     int    `json:"draws"`
	Type      string `json:"type"`
	Card      string `json:"card,omitempty"`
	Details   string `json:"details"`
	Celebrate bool   `json:"celebrate,omitempty"`
}

// CardView describes one pool card.
type CardView struct {
	Index    int    `json:"index"`
	ID       string `json:"id"`
	Suit     string `json:"suit"`
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Selected bool   `json:"selected,omitempty"`
	Boss     bool   `json:"boss,omitempty"`
}

// BossView is the boss part of the status bar.
type BossView struct {
	Active   bool   `json:"active"`
	HP       int    `json:"hp"`
	MaxHP    int    `json:"max_hp"`
	Defeated bool   `json:"defeated,omitempty"`
	Display  string `json:"display"`
}

// AwardView is one entry of the award catalogue. Hidden awards arrive masked.
type AwardView struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	Found       bool   `json:"found"`
}

// StateView is everything a View needs to render the lab.
type StateView struct {
	Player        string      `json:"player"`
	Status        string      `json:"status"`
	LastAction    string      `json:"last_action"`
	Pool          []CardView  `json:"pool"`
	SelectedCount int         `json:"selected_count"`
	DeckCount     int         `json:"deck_count"`
	Draws         int         `json:"draws"`
	Inventory     []string    `json:"inventory"`
	ComboCount    int         `json:"combo_count"`
	Boss          BossView    `json:"boss"`
	Awards        []AwardView `json:"awards"`
	AnyAwardFound bool        `json:"any_award_found"`
	HasBossReward bool        `json:"has_boss_reward"`
	Celebrate     bool        `json:"celebrate,omitempty"`
	Greeting      string      `json:"greeting,omitempty"` // set until acknowledged
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
//
// Types: "draw", "select", "clear", "combo", "attack", "code",
// "new_game", "ack_greeting", "state".
type ClientMessage struct {
	Type string `json:"type"`

	// For "select": CardID wins over Index when both are set
	CardID string `json:"card_id,omitempty"`
	Index  int    `json:"index,omitempty"`

	// For "code"
	Code string `json:"code,omitempty"`
}
