package game

import "github.com/google/uuid"

// Card is a single drawn or drawable card. Names are not unique: two cards
// with the same name may sit in the pool at once, so commands address cards
// by ID.
type Card struct {
	ID       string
	Category Category
	Rank     int // 1..5, or BossRank for the boss card
	Name     string
	Color    string // derived from Category
	Selected bool
}

func (c *Card) String() string {
	return c.Name
}

// IsBoss reports whether this is the synthetic card injected when the boss appears.
func (c *Card) IsBoss() bool {
	return c.Rank == BossRank
}

// NewCard creates an unselected card with a fresh identity.
func NewCard(suit Category, rank int, name, color string) *Card {
	return &Card{
		ID:       uuid.NewString(),
		Category: suit,
		Rank:     rank,
		Name:     name,
		Color:    color,
	}
}
