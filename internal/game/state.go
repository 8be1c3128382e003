package game

// GameState holds the complete state of one lab session.
type GameState struct {
	Deck       []*Card // top of deck is last element (pop from end)
	Pool       []*Card // drawn cards still in play, in draw order
	Inventory  []string
	Boss       Boss
	Awards     *AwardRegistry
	ComboCount int
	Draws      int // cumulative draws this game

	Status     Status
	LastAction string
}

// NewGameState creates a fresh state around an already built deck.
func NewGameState(deck []*Card, awards *AwardRegistry) *GameState {
	return &GameState{
		Deck:   deck,
		Awards: awards,
		Status: StatusPlaying,
	}
}

// DeckCount returns the number of cards remaining in the deck.
func (gs *GameState) DeckCount() int {
	return len(gs.Deck)
}

// CardByID finds a pool card by its ID.
func (gs *GameState) CardByID(id string) *Card {
	for _, c := range gs.Pool {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// CardAt returns the pool card at index i, or nil if i is out of range.
func (gs *GameState) CardAt(i int) *Card {
	if i < 0 || i >= len(gs.Pool) {
		return nil
	}
	return gs.Pool[i]
}

// SelectedCards returns all selected pool cards in pool order.
func (gs *GameState) SelectedCards() []*Card {
	var result []*Card
	for _, c := range gs.Pool {
		if c.Selected {
			result = append(result, c)
		}
	}
	return result
}

// SelectedCount returns the number of selected pool cards.
func (gs *GameState) SelectedCount() int {
	n := 0
	for _, c := range gs.Pool {
		if c.Selected {
			n++
		}
	}
	return n
}

// SelectedNames returns the distinct names among selected cards, in pool order.
func (gs *GameState) SelectedNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, c := range gs.Pool {
		if c.Selected && !seen[c.Name] {
			seen[c.Name] = true
			names = append(names, c.Name)
		}
	}
	return names
}

// ClearSelection unselects every pool card.
func (gs *GameState) ClearSelection() {
	for _, c := range gs.Pool {
		c.Selected = false
	}
}

// RemoveNamed removes every pool card whose name is one of names.
// Returns the number of cards removed.
func (gs *GameState) RemoveNamed(names ...string) int {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	kept := gs.Pool[:0]
	removed := 0
	for _, c := range gs.Pool {
		if drop[c.Name] {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	clearTail(gs.Pool, len(kept))
	gs.Pool = kept
	return removed
}

// RemoveCards removes exactly the given cards from the pool, by ID.
func (gs *GameState) RemoveCards(cards []*Card) {
	drop := make(map[string]bool, len(cards))
	for _, c := range cards {
		drop[c.ID] = true
	}
	kept := gs.Pool[:0]
	for _, c := range gs.Pool {
		if !drop[c.ID] {
			kept = append(kept, c)
		}
	}
	clearTail(gs.Pool, len(kept))
	gs.Pool = kept
}

// HasItem reports whether the inventory holds an item with the given name.
func (gs *GameState) HasItem(name string) bool {
	for _, it := range gs.Inventory {
		if it == name {
			return true
		}
	}
	return false
}

// clearTail nils out the slots past n so removed cards can be collected.
func clearTail(pool []*Card, n int) {
	for i := n; i < len(pool); i++ {
		pool[i] = nil
	}
}
