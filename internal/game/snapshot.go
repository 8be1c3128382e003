package game

import "fmt"

// AwardView is an award as a View may show it: undiscovered awards are
// masked.
type AwardView struct {
	Name        string
	Description string
	Image       string
	Found       bool
}

// Snapshot is a read-only copy of the game state for Views.
type Snapshot struct {
	PlayerName string
	Status     Status
	LastAction string

	Pool          []Card
	SelectedCount int
	DeckCount     int
	Draws         int
	Inventory     []string
	ComboCount    int

	BossActive   bool
	BossHP       int
	BossMaxHP    int
	BossDefeated bool

	Awards          []AwardView
	AnyAwardFound   bool
	HasBossReward   bool
	Celebrate       bool
	GreetingPending bool
}

// Snapshot copies the current state. Mutating the result does not affect the game.
func (g *Game) Snapshot() Snapshot {
	gs := g.State
	s := Snapshot{
		PlayerName:      g.playerName,
		Status:          gs.Status,
		LastAction:      gs.LastAction,
		SelectedCount:   gs.SelectedCount(),
		DeckCount:       gs.DeckCount(),
		Draws:           gs.Draws,
		Inventory:       append([]string(nil), gs.Inventory...),
		ComboCount:      gs.ComboCount,
		BossActive:      gs.Boss.Active,
		BossHP:          gs.Boss.HP,
		BossMaxHP:       g.Rules.Boss.HP,
		BossDefeated:    gs.Boss.Defeated,
		AnyAwardFound:   gs.Awards.AnyFound(),
		HasBossReward:   gs.HasItem(g.Rules.Boss.Reward),
		Celebrate:       g.celebrate,
		GreetingPending: g.greetingPending,
	}
	s.Pool = make([]Card, 0, len(gs.Pool))
	for _, c := range gs.Pool {
		s.Pool = append(s.Pool, *c)
	}
	for _, a := range gs.Awards.Awards() {
		s.Awards = append(s.Awards, ViewAward(a))
	}
	return s
}

// ViewAward masks an award until it is found.
func ViewAward(a Award) AwardView {
	if !a.Found {
		return AwardView{Name: "???", Description: "Hidden award"}
	}
	return AwardView{Name: a.Name, Description: a.Description, Image: a.Image, Found: true}
}

// BossDisplay renders the boss health for a status bar.
func (s Snapshot) BossDisplay() string {
	if !s.BossActive {
		return "Not activated"
	}
	return fmt.Sprintf("%d/%d", s.BossHP, s.BossMaxHP)
}

// Greeting returns the welcome message for the player.
func (s Snapshot) Greeting() string {
	return fmt.Sprintf("Happy Birthday, %s! Thank you for making biology such an interesting class! Your special gift is hidden in the game!", s.PlayerName)
}
