package enrich

// Template is a named catalog entry for an enemy or item, loadable from a
// YAML theme pack. Game-specific content catalogs are out of scope here —
// only the shape is defined; a caller supplies its own catalog contents.
type Template struct {
	Name              string            `yaml:"name"`
	Tags              []string          `yaml:"tags"`
	Difficulty        float64           `yaml:"difficulty"`
	PreferredRoles    map[string]float64 `yaml:"preferred_roles"` // role -> selection weight
	BaseGold          int               `yaml:"base_gold"`
	BaseExperience    int               `yaml:"base_experience"`
	IsEnemy           bool              `yaml:"is_enemy"`
}

// Catalog is a loadable list of templates; lookups filter it by tag
// (ByTags).
type Catalog struct {
	Templates []Template `yaml:"templates"`
}

// ByTags returns every template carrying all of the required tags.
func (c Catalog) ByTags(required []string) []Template {
	var out []Template
	for _, t := range c.Templates {
		if hasAllTags(t.Tags, required) {
			out = append(out, t)
		}
	}
	return out
}

func hasAllTags(have, want []string) bool {
	set := make(map[string]bool, len(have))
	for _, t := range have {
		set[t] = true
	}
	for _, w := range want {
		if !set[w] {
			return false
		}
	}
	return true
}
