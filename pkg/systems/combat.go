package systems

import (
	"github.com/dshills/rogueforge/pkg/bridge"
	"github.com/dshills/rogueforge/pkg/ecs"
	"github.com/dshills/rogueforge/pkg/randstream"
)

// CritChance is the probability an attack roll doubles its damage.
const CritChance = 0.1

// RNGResource is the world-resource name the combat and interaction
// systems pull their shared RNG stream from.
const RNGResource = "RNG"

// DamageEvent is the combat.damage event payload.
type DamageEvent struct {
	Attacker ecs.Entity
	Target   ecs.Entity
	Damage   int
	Crit     bool
}

// DeathEvent is the entity.died event payload.
type DeathEvent struct {
	Entity ecs.Entity
	Killer ecs.Entity
}

// CombatSystemName is the name CombatSystem registers under.
const CombatSystemName = "combat"

// CombatSystem returns the scheduler registration for combat resolution
//: for every entity carrying an AttackRequest, look up
// attacker/target stats, compute damage, apply it, emit events, and queue
// despawn on death.
func CombatSystem() ecs.System {
	return ecs.System{
		Name:    CombatSystemName,
		Phase:   ecs.PhaseUpdate,
		Query:   &ecs.Descriptor{With: []string{bridge.CAttackRequest}},
		Enabled: true,
		Run:     runCombat,
	}
}

// chanceRoller is the minimal interface runCombat needs from an RNG
// resource; *randstream.Stream satisfies it. Testing against the interface
// rather than the concrete type lets tests install a fixed-outcome fake
// for the crit roll instead of hunting for a seed that happens to produce
// a given draw.
type chanceRoller interface {
	Chance(p float64) bool
}

func runCombat(w *ecs.World, attackers []ecs.Entity) error {
	stream := rngStream(w)

	for _, attacker := range attackers {
		req, ok := w.GetComponent(attacker, bridge.CAttackRequest)
		if !ok {
			continue
		}
		target, ok := req["target"].(ecs.Entity)
		if !ok || !w.IsAlive(target) {
			w.RemoveComponent(attacker, bridge.CAttackRequest)
			continue
		}

		attackerStats, _ := w.GetComponent(attacker, bridge.CCombatStats)
		targetStats, _ := w.GetComponent(target, bridge.CCombatStats)
		health, ok := w.GetComponent(target, bridge.CHealth)
		if !ok {
			w.RemoveComponent(attacker, bridge.CAttackRequest)
			continue
		}

		attack := intField(attackerStats, "attack")
		defense := intField(targetStats, "defense")
		damage := attack - defense
		if damage < 1 {
			damage = 1
		}
		crit := stream.Chance(CritChance)
		if crit {
			damage *= 2
		}

		current := intField(health, "current") - damage
		health["current"] = current
		w.SetComponent(target, bridge.CHealth, health)

		w.Events().Emit("combat.damage", DamageEvent{Attacker: attacker, Target: target, Damage: damage, Crit: crit})

		if current <= 0 {
			w.Events().Emit("entity.died", DeathEvent{Entity: target, Killer: attacker})
			w.Commands().Despawn(target)
		}

		w.RemoveComponent(attacker, bridge.CAttackRequest)
	}
	return nil
}

func intField(data ecs.ComponentData, field string) int {
	if data == nil {
		return 0
	}
	switch v := data[field].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// rngStream returns the world's RNG resource, falling back to a fresh
// stream seeded with 0 if none was registered, so combat does not panic a
// world that forgot to set one.
func rngStream(w *ecs.World) chanceRoller {
	if v, ok := w.Resource(RNGResource); ok {
		if s, ok := v.(chanceRoller); ok {
			return s
		}
	}
	return randstream.NewStream("systems-fallback", 0)
}
