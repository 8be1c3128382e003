package game

// PairKey is the canonical form of an unordered pair of card names.
type PairKey struct {
	A, B string // A <= B
}

// NewPairKey canonicalizes a pair so that (x, y) and (y, x) compare equal.
func NewPairKey(x, y string) PairKey {
	if y < x {
		x, y = y, x
	}
	return PairKey{A: x, B: y}
}

// Recipe is a success-table entry: two ingredients that yield a product.
type Recipe struct {
	Ingredients [2]string `yaml:"ingredients"`
	Product     string    `yaml:"product"`
	Message     string    `yaml:"message"`
	Icon        string    `yaml:"icon"`
	Color       string    `yaml:"color"`
}

func (r Recipe) Key() PairKey {
	return NewPairKey(r.Ingredients[0], r.Ingredients[1])
}

// Hazard is a failure-table entry: two ingredients that end the game.
type Hazard struct {
	Ingredients [2]string `yaml:"ingredients"`
	Effect      string    `yaml:"effect"`
	Icon        string    `yaml:"icon"`
	Color       string    `yaml:"color"`
}

func (h Hazard) Key() PairKey {
	return NewPairKey(h.Ingredients[0], h.Ingredients[1])
}

// RecipeBook holds both recipe tables in declaration order. Lookups walk
// the success table first, then the failure table; the first declared
// pair whose ingredients are both present wins.
type RecipeBook struct {
	recipes []Recipe
	hazards []Hazard
}

// NewRecipeBook builds a recipe book. Pairs repeated within a table keep
// only their first declaration.
func NewRecipeBook(recipes []Recipe, hazards []Hazard) *RecipeBook {
	rb := &RecipeBook{}
	seen := make(map[PairKey]bool)
	for _, r := range recipes {
		if seen[r.Key()] {
			continue
		}
		seen[r.Key()] = true
		rb.recipes = append(rb.recipes, r)
	}
	seen = make(map[PairKey]bool)
	for _, h := range hazards {
		if seen[h.Key()] {
			continue
		}
		seen[h.Key()] = true
		rb.hazards = append(rb.hazards, h)
	}
	return rb
}

// Recipes returns the success table.
func (rb *RecipeBook) Recipes() []Recipe {
	return append([]Recipe(nil), rb.recipes...)
}

// Hazards returns the failure table.
func (rb *RecipeBook) Hazards() []Hazard {
	return append([]Hazard(nil), rb.hazards...)
}

// Match looks the set of names up in both tables. Duplicates and order in
// names are irrelevant.
func (rb *RecipeBook) Match(names []string) (ComboResult, *Recipe, *Hazard) {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	for i := range rb.recipes {
		k := rb.recipes[i].Key()
		if set[k.A] && set[k.B] {
			return ComboSuccess, &rb.recipes[i], nil
		}
	}
	for i := range rb.hazards {
		k := rb.hazards[i].Key()
		if set[k.A] && set[k.B] {
			return ComboFailure, nil, &rb.hazards[i]
		}
	}
	return ComboNoMatch, nil, nil
}

// comboOutcome describes a resolved combo.
type comboOutcome struct {
	Result ComboResult
	Recipe *Recipe
	Hazard *Hazard
	Names  []string
}

// resolveCombo matches the selected names and applies the outcome to the state.
func (rb *RecipeBook) resolveCombo(gs *GameState) comboOutcome {
	names := gs.SelectedNames()
	result, recipe, hazard := rb.Match(names)
	out := comboOutcome{Result: result, Recipe: recipe, Hazard: hazard, Names: names}

	switch result {
	case ComboSuccess:
		gs.Inventory = append(gs.Inventory, recipe.Product)
		gs.ComboCount++
		// every pool card sharing an ingredient name is consumed, selected or not
		gs.RemoveNamed(recipe.Ingredients[0], recipe.Ingredients[1])
	case ComboFailure:
		gs.Status = StatusGameOver
	}
	return out
}
