package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/biolab/internal/log"
)

// newTestGame creates a game with an unshuffled deck (catalog order, so the
// last catalog card is drawn first) and an inspectable logger.
func newTestGame(t *testing.T) (*Game, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	g := New(Config{Logger: logger, Seed: 1, NoShuffle: true})
	return g, logger
}

// newShuffledGame creates a game with a seeded shuffled deck.
func newShuffledGame(t *testing.T, seed int64) (*Game, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	g := New(Config{Logger: logger, Seed: seed})
	return g, logger
}

// placeInPool appends catalog cards straight into the pool, bypassing the deck.
func placeInPool(t *testing.T, g *Game, names ...string) []*Card {
	t.Helper()
	var cards []*Card
	for _, n := range names {
		suit, rank, ok := g.Rules.Catalog.Lookup(n)
		require.True(t, ok, "card %q not in catalog", n)
		c := NewCard(suit, rank, n, g.Rules.Catalog.Color(suit))
		g.State.Pool = append(g.State.Pool, c)
		cards = append(cards, c)
	}
	return cards
}

// selectCards selects each card by ID, failing if any toggle deselects.
func selectCards(t *testing.T, g *Game, cards ...*Card) {
	t.Helper()
	for _, c := range cards {
		selected, err := g.ToggleSelect(c.ID)
		require.NoError(t, err)
		require.True(t, selected, "expected %s to become selected", c.Name)
	}
}

// drawUntil draws until the pool holds every wanted name. A full deck is
// always enough.
func drawUntil(t *testing.T, g *Game, names ...string) {
	t.Helper()
	for i := 0; i <= g.Rules.Catalog.Size(); i++ {
		if poolHasAll(g, names...) {
			return
		}
		_, err := g.DrawCard()
		require.NoError(t, err)
	}
	t.Fatalf("pool never contained %v:\n%s", names, log.FormatAll(g.Logger.Events()))
}

func poolHasAll(g *Game, names ...string) bool {
	for _, n := range names {
		if len(poolNamed(g, n)) == 0 {
			return false
		}
	}
	return true
}

// poolNamed returns the pool cards carrying the given name.
func poolNamed(g *Game, name string) []*Card {
	var result []*Card
	for _, c := range g.State.Pool {
		if c.Name == name {
			result = append(result, c)
		}
	}
	return result
}

// activateBoss puts the boss into play without drawing.
func activateBoss(g *Game) {
	g.State.Boss.Activate(g.Rules.Boss.HP)
}
