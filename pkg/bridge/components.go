package bridge

import "github.com/dshills/rogueforge/pkg/ecs"

// Standard component names shared by the bridge loader and pkg/systems.
const (
	CPosition        = "Position"
	CHealth          = "Health"
	CCombatStats     = "CombatStats"
	CAttackRequest   = "AttackRequest"
	CInteractRequest = "InteractRequest"
	CInventory       = "Inventory"
	CDoor            = "Door"
	CContainer       = "Container"
	CStairs          = "Stairs"
)

// StandardSchemas returns the component schemas every loaded world needs:
// the position/health/combat primitives the generator's semantic entities
// carry, plus the request components pkg/systems consumes.
func StandardSchemas() []ecs.ComponentSchema {
	return []ecs.ComponentSchema{
		{Name: CPosition, Fields: []ecs.FieldSchema{
			{Name: "x", Kind: ecs.FieldFloat},
			{Name: "y", Kind: ecs.FieldFloat},
		}},
		{Name: CHealth, Fields: []ecs.FieldSchema{
			{Name: "current", Kind: ecs.FieldInt},
			{Name: "max", Kind: ecs.FieldInt},
		}},
		{Name: CCombatStats, Fields: []ecs.FieldSchema{
			{Name: "attack", Kind: ecs.FieldInt},
			{Name: "defense", Kind: ecs.FieldInt},
		}},
		{Name: CAttackRequest, Fields: []ecs.FieldSchema{
			{Name: "target", Kind: ecs.FieldEntity},
		}},
		{Name: CInteractRequest, Fields: []ecs.FieldSchema{
			{Name: "target", Kind: ecs.FieldEntity},
			{Name: "direction", Kind: ecs.FieldString},
		}},
		// Inventory holds a set of item template names; AoS because its
		// one field is a slice, not a primitive.
		{Name: CInventory, UseAoS: true, Fields: []ecs.FieldSchema{
			{Name: "items", Kind: ecs.FieldAny},
			{Name: "capacity", Kind: ecs.FieldInt},
		}},
		{Name: CDoor, Fields: []ecs.FieldSchema{
			{Name: "locked", Kind: ecs.FieldBool},
			{Name: "open", Kind: ecs.FieldBool},
			{Name: "keyTemplate", Kind: ecs.FieldString},
			{Name: "consumeOnUse", Kind: ecs.FieldBool},
			{Name: "blocking", Kind: ecs.FieldBool},
		}},
		{Name: CContainer, UseAoS: true, Fields: []ecs.FieldSchema{
			{Name: "items", Kind: ecs.FieldAny},
			{Name: "looted", Kind: ecs.FieldBool},
		}},
		{Name: CStairs, Fields: []ecs.FieldSchema{
			{Name: "descends", Kind: ecs.FieldBool},
		}},
	}
}

// RegisterStandardComponents installs every schema from StandardSchemas
// into w, skipping any already registered so repeated calls on the same
// world are safe.
func RegisterStandardComponents(w *ecs.World) error {
	for _, schema := range StandardSchemas() {
		if _, ok := w.Registry().Store(schema.Name); ok {
			continue
		}
		if err := w.RegisterComponent(schema); err != nil {
			return err
		}
	}
	return nil
}
