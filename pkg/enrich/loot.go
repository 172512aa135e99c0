package enrich

// BuildLoot scales base gold/experience by `1 + difficulty*difficultyScaling`.
// Bosses always receive a guaranteed epic drop; elites receive a 50% rare
// drop, recorded as a chance for the caller to roll.
func BuildLoot(t Template, role string, isElite bool, difficulty float64, cfg Config) Loot {
	scale := 1 + difficulty*cfg.DifficultyScaling
	loot := Loot{
		Gold:       int(float64(t.BaseGold) * scale),
		Experience: int(float64(t.BaseExperience) * scale),
	}

	switch {
	case role == "boss":
		loot.GuaranteedDrop = "epic"
	case isElite:
		loot.ChanceDrop = "rare"
		loot.ChanceDropP = 0.5
	}

	return loot
}
