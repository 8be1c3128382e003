package game

// BossConfig holds the fixed parameters of the boss encounter.
type BossConfig struct {
	Name      string   `yaml:"name"`
	Suit      Category `yaml:"suit"`
	Color     string   `yaml:"color"`
	Threshold int      `yaml:"threshold"` // pool size the boss waits to exceed
	HP        int      `yaml:"hp"`
	Ammo      string   `yaml:"ammo"`   // card name spent to deal damage
	Damage    int      `yaml:"damage"` // damage per ammo card
	Reward    string   `yaml:"reward"` // inventory item granted on defeat
}

func DefaultBossConfig() BossConfig {
	return BossConfig{
		Name:      "All-Nighter Professor",
		Suit:      Radiation,
		Color:     "#FF8C00",
		Threshold: 20,
		HP:        100,
		Ammo:      "ATP",
		Damage:    20,
		Reward:    "Homework Pass",
	}
}

func (b BossConfig) withDefaults() BossConfig {
	def := DefaultBossConfig()
	if b.Name == "" {
		b.Name = def.Name
	}
	if b.Suit == "" {
		b.Suit = def.Suit
	}
	if b.Color == "" {
		b.Color = def.Color
	}
	if b.Threshold == 0 {
		b.Threshold = def.Threshold
	}
	if b.HP == 0 {
		b.HP = def.HP
	}
	if b.Ammo == "" {
		b.Ammo = def.Ammo
	}
	if b.Damage == 0 {
		b.Damage = def.Damage
	}
	if b.Reward == "" {
		b.Reward = def.Reward
	}
	return b
}

// Boss is the state of the boss encounter. HP is only meaningful while
// Active. Active stays set after defeat so the boss never reappears.
type Boss struct {
	Active   bool
	HP       int
	Defeated bool
}

// Activate brings the boss into play with full health.
func (b *Boss) Activate(hp int) {
	b.Active = true
	b.HP = hp
}

// attackOutcome describes a resolved attack.
type attackOutcome struct {
	Result AttackResult
	Used   int
	HP     int
}

// resolveAttack spends every selected ammo card in the pool against the boss.
func resolveAttack(gs *GameState, cfg BossConfig) attackOutcome {
	if !gs.Boss.Active || gs.Boss.Defeated {
		return attackOutcome{Result: AttackInactive, HP: gs.Boss.HP}
	}

	var ammo []*Card
	for _, c := range gs.Pool {
		if c.Name == cfg.Ammo && c.Selected {
			ammo = append(ammo, c)
		}
	}
	if len(ammo) == 0 {
		return attackOutcome{Result: AttackNoAmmo, HP: gs.Boss.HP}
	}

	gs.Boss.HP -= cfg.Damage * len(ammo)
	gs.RemoveCards(ammo)

	out := attackOutcome{Result: AttackHit, Used: len(ammo), HP: gs.Boss.HP}
	if gs.Boss.HP <= 0 {
		gs.Boss.Defeated = true
		gs.Inventory = append(gs.Inventory, cfg.Reward)
		out.Result = AttackDefeated
	}
	return out
}
