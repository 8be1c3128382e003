package game

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultPlayerName = "Mr. Weitzel"

// RuleBook is the complete static rule set of a lab: the card catalog,
// both recipe tables, the award codes and the boss encounter.
// It represents the top-level YAML structure of a rules file.
type RuleBook struct {
	Player  string     `yaml:"player"`
	Catalog Catalog    `yaml:"catalog"`
	Recipes []Recipe   `yaml:"recipes"`
	Hazards []Hazard   `yaml:"hazards"`
	Awards  []AwardDef `yaml:"awards"`
	Boss    BossConfig `yaml:"boss"`
}

// DefaultRuleBook returns the built-in rules.
func DefaultRuleBook() *RuleBook {
	return &RuleBook{
		Player:  DefaultPlayerName,
		Catalog: DefaultCatalog(),
		Recipes: []Recipe{
			{Ingredients: [2]string{"Glucose", "Enzyme"}, Product: "Alcohol", Message: "Fermentation successful! Lab smells like beer", Icon: "🫗", Color: "#FFD700"},
			{Ingredients: [2]string{"DNA", "Amino Acid"}, Product: "mRNA", Message: "Transcription initiated! Ribosomes on their way", Icon: "📜", Color: "#9370DB"},
			{Ingredients: [2]string{"ATP", "Mitochondria"}, Product: "Energy Storm", Message: "Mitochondria overload! All cards blown away", Icon: "🌪️", Color: "#FF6347"},
			{Ingredients: [2]string{"Light Energy", "CO₂"}, Product: "Starch", Message: "Photosynthesis achieved! Gain 3 new cards", Icon: "🍚", Color: "#32CD32"},
		},
		Hazards: []Hazard{
			{Ingredients: [2]string{"Mutation", "DNA"}, Effect: "Genetic Collapse", Icon: "🧬", Color: "#FF0000"},
			{Ingredients: [2]string{"Prion", "Protein"}, Effect: "Protein Denaturation", Icon: "☠️", Color: "#8B0000"},
		},
		Awards: []AwardDef{
			{Code: "yay mr.weitzel", Name: "Weitzel's Wisdom", Description: "For making biology unforgettable", Image: "https://cdn.pixabay.com/photo/2017/01/31/15/33/biology-2025821_960_720.png"},
			{Code: "happybirthday", Name: "Birthday Nobel", Description: "Special birthday achievement", Image: "https://cdn.pixabay.com/photo/2012/04/24/13/49/medal-40383_960_720.png"},
			{Code: "bestbio", Name: "Best Bio Teacher", Description: "The DNA of great teaching", Image: "https://cdn.pixabay.com/photo/2016/11/22/19/08/award-1850042_960_720.png"},
		},
		Boss: DefaultBossConfig(),
	}
}

// LoadRuleBook reads a YAML rules file. Sections the file leaves out fall
// back to the built-in rules.
func LoadRuleBook(path string) (*RuleBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRuleBook(data)
}

// ParseRuleBook parses YAML rules data and validates the result.
func ParseRuleBook(data []byte) (*RuleBook, error) {
	var rb RuleBook
	if err := yaml.Unmarshal(data, &rb); err != nil {
		return nil, fmt.Errorf("parse rules YAML: %w", err)
	}

	def := DefaultRuleBook()
	if rb.Player == "" {
		rb.Player = def.Player
	}
	if len(rb.Catalog) == 0 {
		rb.Catalog = def.Catalog
	}
	if rb.Recipes == nil {
		rb.Recipes = def.Recipes
	}
	if rb.Hazards == nil {
		rb.Hazards = def.Hazards
	}
	if rb.Awards == nil {
		rb.Awards = def.Awards
	}
	rb.Boss = rb.Boss.withDefaults()

	for i := range rb.Awards {
		rb.Awards[i].Code = normalizeCode(rb.Awards[i].Code)
	}

	if err := rb.Validate(); err != nil {
		return nil, err
	}
	return &rb, nil
}

// Validate checks the structural invariants of the rule set.
func (rb *RuleBook) Validate() error {
	seenSuit := make(map[Category]bool)
	seenName := make(map[string]bool)
	for _, e := range rb.Catalog {
		if e.Suit == "" {
			return fmt.Errorf("%w: catalog entry without suit", ErrInvalidRules)
		}
		if seenSuit[e.Suit] {
			return fmt.Errorf("%w: duplicate suit %s", ErrInvalidRules, e.Suit)
		}
		seenSuit[e.Suit] = true
		if len(e.Cards) != CardsPerCategory {
			return fmt.Errorf("%w: suit %s has %d cards, want %d", ErrInvalidRules, e.Suit, len(e.Cards), CardsPerCategory)
		}
		for _, n := range e.Cards {
			if seenName[n] {
				return fmt.Errorf("%w: card %q listed twice", ErrInvalidRules, n)
			}
			seenName[n] = true
		}
	}

	for _, r := range rb.Recipes {
		if r.Ingredients[0] == "" || r.Ingredients[1] == "" || r.Product == "" {
			return fmt.Errorf("%w: incomplete recipe %v", ErrInvalidRules, r.Ingredients)
		}
	}
	for _, h := range rb.Hazards {
		if h.Ingredients[0] == "" || h.Ingredients[1] == "" || h.Effect == "" {
			return fmt.Errorf("%w: incomplete hazard %v", ErrInvalidRules, h.Ingredients)
		}
	}

	seenCode := make(map[string]bool)
	for _, a := range rb.Awards {
		if a.Code == "" || a.Name == "" {
			return fmt.Errorf("%w: award needs a code and a name", ErrInvalidRules)
		}
		if a.Code != normalizeCode(a.Code) {
			return fmt.Errorf("%w: award code %q is not lower-case", ErrInvalidRules, a.Code)
		}
		if seenCode[a.Code] {
			return fmt.Errorf("%w: duplicate award code %q", ErrInvalidRules, a.Code)
		}
		seenCode[a.Code] = true
	}

	b := rb.Boss
	if b.Threshold <= 0 || b.HP <= 0 || b.Damage <= 0 {
		return fmt.Errorf("%w: boss threshold, hp and damage must be positive", ErrInvalidRules)
	}
	if b.Ammo == "" || b.Reward == "" || b.Name == "" {
		return fmt.Errorf("%w: boss needs a name, an ammo card and a reward", ErrInvalidRules)
	}
	return nil
}

// PlayerName returns the configured player name.
func (rb *RuleBook) PlayerName() string {
	if rb.Player == "" {
		return DefaultPlayerName
	}
	return rb.Player
}

func normalizeCode(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
