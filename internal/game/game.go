package game

import (
	"math/rand"
	"time"

	"github.com/peterkuimelis/biolab/internal/log"
)

// Config holds configuration for creating a new game.
type Config struct {
	Rules      *RuleBook // nil for the built-in rules
	Logger     log.EventLogger
	Seed       int64  // RNG seed (0 for random)
	NoShuffle  bool   // keep catalog order (for deterministic tests)
	PlayerName string // overrides Rules.Player when set
}

// Game is the state container of one player session. Views call its
// command methods and read Snapshot; nothing else mutates the state.
// A Game is not safe for concurrent use.
type Game struct {
	State  *GameState
	Rules  *RuleBook
	Logger log.EventLogger

	recipes    *RecipeBook
	rng        *rand.Rand
	noShuffle  bool
	playerName string

	celebrate       bool
	greetingPending bool
}

// New creates a game and starts the first round.
func New(cfg Config) *Game {
	rules := cfg.Rules
	if rules == nil {
		rules = DefaultRuleBook()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	name := cfg.PlayerName
	if name == "" {
		name = rules.PlayerName()
	}

	g := &Game{
		Rules:      rules,
		Logger:     logger,
		recipes:    NewRecipeBook(rules.Recipes, rules.Hazards),
		rng:        rand.New(rand.NewSource(seed)),
		noShuffle:  cfg.NoShuffle,
		playerName: name,
	}
	g.NewGame()
	return g
}

// PlayerName returns the name the lab is dedicated to.
func (g *Game) PlayerName() string {
	return g.playerName
}

// NewGame discards all progress, award discoveries included, and deals a
// freshly shuffled deck.
func (g *Game) NewGame() {
	deck := BuildDeck(g.Rules.Catalog, g.rng, !g.noShuffle)
	g.State = NewGameState(deck, NewAwardRegistry(g.Rules.Awards))
	g.celebrate = false
	g.greetingPending = true
	g.record(log.NewGameEvent())
}

// DrawCard draws the top card into the pool. The returned card is a copy.
func (g *Game) DrawCard() (Card, error) {
	if err := g.begin(); err != nil {
		return Card{}, err
	}

	out := g.draw()
	gs := g.State
	if out.Reshuffled {
		g.emit(log.NewShuffleEvent(gs.Draws, len(gs.Deck)+1))
	}
	if out.BossAppears {
		g.emit(log.NewDrawEvent(gs.Draws, string(out.Card.Category), out.Card.Name))
		g.record(log.NewBossAppearEvent(gs.Draws, g.Rules.Boss.Name, g.playerName))
	} else {
		g.record(log.NewDrawEvent(gs.Draws, string(out.Card.Category), out.Card.Name))
	}
	return *out.Card, nil
}

// ToggleSelect flips the selected flag of the pool card with the given ID.
// It returns the card's new flag; an unknown ID is ignored.
func (g *Game) ToggleSelect(id string) (bool, error) {
	if err := g.begin(); err != nil {
		return false, err
	}
	return g.toggle(g.State.CardByID(id)), nil
}

// ToggleSelectIndex flips the selected flag of the pool card at index i.
// An out-of-range index is ignored.
func (g *Game) ToggleSelectIndex(i int) (bool, error) {
	if err := g.begin(); err != nil {
		return false, err
	}
	return g.toggle(g.State.CardAt(i)), nil
}

func (g *Game) toggle(c *Card) bool {
	if c == nil {
		return false
	}
	c.Selected = !c.Selected
	g.record(log.NewSelectEvent(g.State.Draws, c.Name, c.Selected))
	return c.Selected
}

// ClearSelection unselects every card in the pool.
func (g *Game) ClearSelection() error {
	if err := g.begin(); err != nil {
		return err
	}
	g.State.ClearSelection()
	g.record(log.NewClearSelectionEvent(g.State.Draws))
	return nil
}

// TryCombo combines the two selected cards. A selection of any other size
// is rejected with ComboInvalidSelection and leaves the state untouched;
// so does a pair found in neither table.
func (g *Game) TryCombo() (ComboResult, error) {
	if err := g.begin(); err != nil {
		return ComboNoMatch, err
	}
	if g.State.SelectedCount() != 2 {
		return ComboInvalidSelection, nil
	}

	gs := g.State
	out := g.recipes.resolveCombo(gs)
	switch out.Result {
	case ComboSuccess:
		r := out.Recipe
		g.record(log.NewComboEvent(gs.Draws, r.Icon, r.Message, r.Product))
	case ComboFailure:
		h := out.Hazard
		g.record(log.NewComboFailedEvent(gs.Draws, h.Icon, h.Effect))
		g.emit(log.NewGameOverEvent(gs.Draws, h.Effect))
	default:
		g.emit(log.NewComboNoMatchEvent(gs.Draws, out.Names))
	}
	return out.Result, nil
}

// PreviewCombo matches the current selection without applying it.
func (g *Game) PreviewCombo() (ComboResult, *Recipe, *Hazard) {
	return g.recipes.Match(g.State.SelectedNames())
}

// AttackBoss spends the selected ammo cards against the boss. Defeating
// the boss wins the game.
func (g *Game) AttackBoss() (AttackResult, error) {
	if err := g.begin(); err != nil {
		return AttackNoAmmo, err
	}

	gs := g.State
	cfg := g.Rules.Boss
	out := resolveAttack(gs, cfg)
	switch out.Result {
	case AttackHit:
		g.record(log.NewAttackEvent(gs.Draws, cfg.Ammo, out.Used, out.HP))
	case AttackDefeated:
		g.emit(log.NewAttackEvent(gs.Draws, cfg.Ammo, out.Used, out.HP))
		g.record(log.NewBossDefeatedEvent(gs.Draws, cfg.Reward))
		g.celebrate = true
		gs.Status = StatusVictory
		g.emit(log.NewVictoryEvent(gs.Draws, g.playerName))
	}
	return out.Result, nil
}

// SubmitCode tries to unlock a hidden award. Codes compare case-insensitively
// and each award unlocks once per game.
func (g *Game) SubmitCode(code string) (CodeResult, error) {
	if err := g.begin(); err != nil {
		return CodeUnrecognized, err
	}

	result, award := g.State.Awards.Submit(code)
	if result != CodeFound {
		return result, nil
	}
	g.State.Inventory = append(g.State.Inventory, award.Name)
	g.record(log.NewAwardFoundEvent(g.State.Draws, award.Name))
	g.celebrate = true
	return result, nil
}

// AckGreeting marks the welcome greeting as shown.
func (g *Game) AckGreeting() {
	g.greetingPending = false
}

// begin gates every command on the playing status and clears the
// celebration flag raised by the previous command.
func (g *Game) begin() error {
	switch g.State.Status {
	case StatusGameOver:
		return ErrGameOver
	case StatusVictory:
		return ErrVictory
	}
	g.celebrate = false
	return nil
}

// record logs an event and makes it the last action shown to the player.
func (g *Game) record(event log.GameEvent) {
	g.State.LastAction = event.Details
	g.Logger.Log(event)
}

// emit logs an event without touching the last action.
func (g *Game) emit(event log.GameEvent) {
	g.Logger.Log(event)
}
