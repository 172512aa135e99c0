package ecs

import (
	"fmt"
	"reflect"
)

// SnapshotVersion is the persisted format version. Loaders check this
// field and fail cleanly on mismatch; forward compatibility is not
// promised.
const SnapshotVersion = "1.0"

// setEnvelopeTag marks a Set value when it round-trips through a generic
// encoding (e.g. JSON), where a plain slice and a set would otherwise
// decode identically.
const setEnvelopeTag = "__set__"

// Set is a component field type for unordered string collections.
// Envelope converts it to a tagged map and SetFromEnvelope reads that map
// back, so decoding can tell it apart from an ordinary slice field. Set
// defines no JSON marshaler of its own; callers convert explicitly.
type Set map[string]bool

// Envelope returns Set's tagged wire representation.
func (s Set) Envelope() map[string]any {
	items := make([]string, 0, len(s))
	for k := range s {
		items = append(items, k)
	}
	return map[string]any{"tag": setEnvelopeTag, "items": items}
}

// SetFromEnvelope reconstructs a Set from Envelope's output, returning
// false if env is not a set envelope.
func SetFromEnvelope(env map[string]any) (Set, bool) {
	if env["tag"] != setEnvelopeTag {
		return nil, false
	}
	out := make(Set)
	switch items := env["items"].(type) {
	case []string:
		for _, it := range items {
			out[it] = true
		}
	case []any:
		for _, it := range items {
			if s, ok := it.(string); ok {
				out[s] = true
			}
		}
	}
	return out, true
}

// Template is a named, pre-baked set of component defaults used to
// construct entities.
type Template struct {
	Name       string
	Components map[string]ComponentData
}

// TemplateSet is a name-keyed collection of templates, the shape both
// serialization and the dungeon bridge consult to resolve template
// references.
type TemplateSet map[string]Template

// EntitySnapshot is one entity's persisted record. When TemplateID names a
// known template, Components holds only fields differing from the
// template's baseline for each named component; otherwise Components
// holds the full payload.
type EntitySnapshot struct {
	OriginalID Entity
	TemplateID string
	Components map[string]ComponentData
}

// Snapshot is a full world capture: format version, timestamp, tick,
// entities, resources, and metadata.
type Snapshot struct {
	Version     string
	TimestampMs int64
	Tick        uint64
	Entities    []EntitySnapshot
	Resources   map[string]any
	Metadata    map[string]any
}

// Serialize captures w's full state: every live entity's components
// (delta-encoded against its template when entityTemplates names one),
// every resource, and the current tick.
func Serialize(w *World, entityTemplates map[Entity]string, templates TemplateSet, timestampMs int64) Snapshot {
	snap := Snapshot{
		Version:     SnapshotVersion,
		TimestampMs: timestampMs,
		Tick:        w.tick,
		Resources:   cloneAnyMap(w.resources),
		Metadata:    map[string]any{},
	}

	for _, e := range w.AllAlive() {
		templateID := entityTemplates[e]
		entry := EntitySnapshot{OriginalID: e, TemplateID: templateID, Components: make(map[string]ComponentData)}

		baseline := map[string]ComponentData{}
		if templateID != "" {
			if t, ok := templates[templateID]; ok {
				baseline = t.Components
			}
		}

		for _, name := range w.registry.Names() {
			store, _ := w.registry.Store(name)
			data, ok := store.Get(uint32(e.Slot()))
			if !ok {
				continue
			}
			if base, hasBase := baseline[name]; hasBase {
				delta := diffComponentData(base, data)
				if len(delta) > 0 {
					entry.Components[name] = delta
				}
				continue
			}
			entry.Components[name] = data
		}

		snap.Entities = append(snap.Entities, entry)
	}

	return snap
}

// diffComponentData returns the fields of data that differ from base.
func diffComponentData(base, data ComponentData) ComponentData {
	delta := make(ComponentData)
	for k, v := range data {
		if bv, ok := base[k]; !ok || !reflect.DeepEqual(bv, v) {
			delta[k] = v
		}
	}
	return delta
}

func cloneAnyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Deserialize rebuilds a world from snap in two passes: first allocate
// every entity (building an old-to-new identifier map), then apply
// components, resolving any Entity-typed field through that map. The tick
// counter is restored verbatim and resources are restored by name. Returns
// an error if snap's version does not match SnapshotVersion.
func Deserialize(snap Snapshot, templates TemplateSet, w *World) (map[Entity]Entity, error) {
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("ecs: snapshot version %q unsupported (want %q)", snap.Version, SnapshotVersion)
	}

	idMap := make(map[Entity]Entity, len(snap.Entities))
	for _, es := range snap.Entities {
		e, err := w.Spawn()
		if err != nil {
			return idMap, err
		}
		idMap[es.OriginalID] = e
	}

	for _, es := range snap.Entities {
		newEntity := idMap[es.OriginalID]
		baseline := map[string]ComponentData{}
		if es.TemplateID != "" {
			if t, ok := templates[es.TemplateID]; ok {
				baseline = t.Components
			}
		}
		for name, delta := range es.Components {
			full := mergeComponentData(baseline[name], delta)
			resolveEntityFields(full, idMap)
			w.AddComponent(newEntity, name, full)
		}
	}

	w.tick = snap.Tick
	w.resources = cloneAnyMap(snap.Resources)

	return idMap, nil
}

func mergeComponentData(base, delta ComponentData) ComponentData {
	out := make(ComponentData, len(base)+len(delta))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range delta {
		out[k] = v
	}
	return out
}

// resolveEntityFields rewrites any Entity-typed field value (by old
// identifier) to its new identifier via idMap, in place.
func resolveEntityFields(data ComponentData, idMap map[Entity]Entity) {
	for k, v := range data {
		if old, ok := v.(Entity); ok {
			if replacement, found := idMap[old]; found {
				data[k] = replacement
			}
		}
	}
}
