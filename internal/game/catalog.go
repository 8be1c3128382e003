package game

// Category is a card suit. It selects the card's name pool and display color.
type Category string

const (
	Clubs     Category = "♣️"
	Hearts    Category = "♥️"
	Diamonds  Category = "♦️"
	Spades    Category = "♠️"
	Radiation Category = "☢️"
)

const (
	CardsPerCategory = 5
	BossRank         = 99
)

// CategoryEntry is one row of the card catalog.
type CategoryEntry struct {
	Suit  Category `yaml:"suit"`
	Color string   `yaml:"color"`
	Cards []string `yaml:"cards"`
}

// Catalog maps each category to its ordered card names. Order is significant:
// a card's rank is its 1-based position within its category.
type Catalog []CategoryEntry

// DefaultCatalog returns the built-in biology catalog.
func DefaultCatalog() Catalog {
	return Catalog{
		{Suit: Clubs, Color: "#2E8B57", Cards: []string{"Light Energy", "Chlorophyll", "H₂O", "CO₂", "Photosynthase"}},
		{Suit: Hearts, Color: "#DC143C", Cards: []string{"ATP", "Glucose", "Mitochondria", "Oxygen", "Lactic Acid"}},
		{Suit: Diamonds, Color: "#4169E1", Cards: []string{"DNA", "RNA", "Chromosome", "Mutation", "Telomere"}},
		{Suit: Spades, Color: "#4B0082", Cards: []string{"Amino Acid", "Protein", "Enzyme", "Ribosome", "Prion"}},
		{Suit: Radiation, Color: "#FF8C00", Cards: []string{"Super Mutation", "Caffeine", "Dark Circles", "Homework Pass", "Nobel Medal"}},
	}
}

// Categories returns the suits in catalog order.
func (c Catalog) Categories() []Category {
	suits := make([]Category, 0, len(c))
	for _, e := range c {
		suits = append(suits, e.Suit)
	}
	return suits
}

// Names returns the card names of a category, or nil if it is unknown.
func (c Catalog) Names(suit Category) []string {
	for _, e := range c {
		if e.Suit == suit {
			return append([]string(nil), e.Cards...)
		}
	}
	return nil
}

// Color returns the display color of a category, or "" if it is unknown.
func (c Catalog) Color(suit Category) string {
	for _, e := range c {
		if e.Suit == suit {
			return e.Color
		}
	}
	return ""
}

// Lookup finds the category and rank of a card name.
func (c Catalog) Lookup(name string) (Category, int, bool) {
	for _, e := range c {
		for i, n := range e.Cards {
			if n == name {
				return e.Suit, i + 1, true
			}
		}
	}
	return "", 0, false
}

// Size returns the number of cards a freshly built deck holds.
func (c Catalog) Size() int {
	n := 0
	for _, e := range c {
		n += len(e.Cards)
	}
	return n
}
