package enrich

import "github.com/dshills/rogueforge/pkg/geom"

// Relationship is a directed, named, weighted edge between two semantic
// entities in the same room.
type Relationship struct {
	Kind     string // "guards", "commands", "allies_with"
	TargetID string
	Strength float64
}

// Behavior describes how a semantic entity acts once spawned.
type Behavior struct {
	Role            string
	DetectionRange  float64
	MovementPattern string // "stationary", "patrol", "wander", "guard"
	PatrolPath      []geom.Point
}

// Loot describes scaled gold/experience and optional guaranteed/chance drops.
type Loot struct {
	Gold          int
	Experience    int
	GuaranteedDrop string
	ChanceDrop     string
	ChanceDropP    float64
}

// SemanticEntity is the enriched form of an enemy spawn descriptor.
type SemanticEntity struct {
	ID            string
	RoomID        int
	Position      geom.Point
	TemplateName  string
	Role          string
	GuardsTarget  string // from a spawn's guards:Y tag, if any
	Behavior      Behavior
	Loot          Loot
	Relationships []Relationship
	HopDistance   int
}

// SemanticItem is the enriched form of a non-enemy spawn descriptor.
type SemanticItem struct {
	ID           string
	RoomID       int
	Position     geom.Point
	TemplateName string
	Value        int
	HopDistance  int
}

// Config tunes enrichment scoring with depth/difficulty scalars for
// downstream scaling.
type Config struct {
	DifficultyScaling float64
	EliteChance       float64
}

// DefaultConfig returns sane enrichment defaults.
func DefaultConfig() Config {
	return Config{DifficultyScaling: 0.6, EliteChance: 0.15}
}
