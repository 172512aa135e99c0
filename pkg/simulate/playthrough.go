package simulate

import (
	"sort"

	"github.com/dshills/rogueforge/pkg/model"
)

// Config tunes the surrogate playthrough.
type Config struct {
	MaxSteps    int
	StartHealth float64
	EnemyDamage float64
}

// DefaultConfig returns sane playthrough defaults.
func DefaultConfig() Config {
	return Config{MaxSteps: 200, StartHealth: 100, EnemyDamage: 10}
}

// Halt reasons recorded on a Trace.
const (
	HaltExit           = "exit"
	HaltNoHealth       = "no-health"
	HaltStepsExhausted = "steps-exhausted"
	HaltGraphExhausted = "graph-exhausted"
	HaltNoEntrance     = "no-entrance"
)

// Visit is one room visit in playthrough order.
type Visit struct {
	RoomID        int
	Step          int
	DamageTaken   float64
	TreasureFound int
	HealthAfter   float64
	TreasureAfter int
}

// Trace is the ordered record of a playthrough.
type Trace struct {
	Visits       []Visit
	FinalHealth  float64
	FinalTreasure int
	HaltReason   string
}

// Run explores the dungeon's room graph breadth-first from the entrance,
// resolving encounters on each visit: enemy spawns deduct
// cfg.EnemyDamage*spawn.Weight from health, treasure spawns increment a
// counter. The walk halts on reaching the exit room, running out of
// health, or exhausting cfg.MaxSteps. Traversal order is
// deterministic: unvisited neighbors are enqueued in ascending room-ID
// order, the same tie-breaking discipline pkg/connect uses for its MST.
func Run(d *model.Dungeon, cfg Config) Trace {
	entrance, ok := d.EntranceRoom()
	if !ok {
		return Trace{HaltReason: HaltNoEntrance}
	}
	exitID := -1
	if r, ok := d.ExitRoom(); ok {
		exitID = r.ID
	}

	adj := d.AdjacencyGraph()
	spawnsByRoom := make(map[int][]model.SpawnDescriptor)
	for _, s := range d.Spawns {
		if s.Type == model.SpawnGeneric {
			spawnsByRoom[s.RoomID] = append(spawnsByRoom[s.RoomID], s)
		}
	}

	visited := map[int]bool{entrance.ID: true}
	queue := []int{entrance.ID}

	health := cfg.StartHealth
	treasure := 0
	var visits []Visit
	step := 0
	halt := ""

	for len(queue) > 0 {
		if step >= cfg.MaxSteps {
			halt = HaltStepsExhausted
			break
		}
		room := queue[0]
		queue = queue[1:]
		step++

		damage, gained := resolveEncounters(spawnsByRoom[room], cfg.EnemyDamage)
		health -= damage
		treasure += gained

		visits = append(visits, Visit{
			RoomID:        room,
			Step:          step,
			DamageTaken:   damage,
			TreasureFound: gained,
			HealthAfter:   health,
			TreasureAfter: treasure,
		})

		if health <= 0 {
			halt = HaltNoHealth
			break
		}
		if room == exitID {
			halt = HaltExit
			break
		}

		neighbors := make([]int, 0, len(adj[room]))
		for n := range adj[room] {
			if !visited[n] {
				neighbors = append(neighbors, n)
			}
		}
		sort.Ints(neighbors)
		for _, n := range neighbors {
			visited[n] = true
			queue = append(queue, n)
		}
	}

	if halt == "" {
		halt = HaltGraphExhausted
	}
	return Trace{Visits: visits, FinalHealth: health, FinalTreasure: treasure, HaltReason: halt}
}

// resolveEncounters splits a room's spawns into enemy damage and treasure
// count. A spawn tagged "item" is treasure (the same discriminator
// pkg/enrich uses to split entities from items); everything else is an
// enemy encounter weighted by the spawn's Weight.
func resolveEncounters(spawns []model.SpawnDescriptor, enemyDamage float64) (damage float64, treasureCount int) {
	for _, s := range spawns {
		if _, isItem := s.Tag("item"); isItem {
			treasureCount++
			continue
		}
		damage += enemyDamage * s.Weight
	}
	return damage, treasureCount
}
