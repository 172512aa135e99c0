package ecs

// ComponentData is a component's field values keyed by field name. The
// registry keeps components dynamically typed by name rather than giving
// each a distinct Go type, following the source's string-keyed registry.
type ComponentData map[string]any

// FieldKind classifies a component field for the registry's SoA/AoS
// decision: SoA is only chosen when every field is primitive.
type FieldKind int

const (
	FieldInt FieldKind = iota
	FieldFloat
	FieldBool
	FieldString
	FieldEntity
	FieldAny // non-primitive: slices, maps, nested structs
)

func (k FieldKind) primitive() bool {
	return k != FieldAny
}

// FieldSchema describes one field of a component.
type FieldSchema struct {
	Name string
	Kind FieldKind
}

// ComponentSchema describes a component's shape for registration. UseAoS
// forces array-of-structures storage even when every field is primitive.
type ComponentSchema struct {
	Name   string
	Fields []FieldSchema
	UseAoS bool
}

// allPrimitive reports whether every field in the schema is a primitive
// kind, the condition under which the registry picks SoA storage.
func (s ComponentSchema) allPrimitive() bool {
	for _, f := range s.Fields {
		if !f.Kind.primitive() {
			return false
		}
	}
	return true
}

const invalidIndex = ^uint32(0)

// Store is the common interface SoAStore and AoSStore satisfy, letting the
// registry and query system operate on component storage without caring
// which layout backs a given component name.
type Store interface {
	Name() string
	Add(slot uint32, generation uint16, data ComponentData)
	Remove(slot uint32) bool
	Get(slot uint32) (ComponentData, bool)
	Set(slot uint32, data ComponentData) bool
	Has(slot uint32) bool
	Len() int
	// Slots returns the dense array of slot indices currently present, in
	// storage order. Queries iterate the smallest store's Slots().
	Slots() []uint32
}

// SoAStore holds one dense array per field, a sparse array mapping slot
// index to dense index, a dense-to-slot back-map, and a per-dense
// generation mirror.
type SoAStore struct {
	name   string
	fields []string

	sparse     []uint32 // slot -> dense index, invalidIndex when absent
	denseSlots []uint32 // dense index -> slot
	denseGen   []uint16 // dense index -> generation at insertion
	columns    map[string][]any
}

// NewSoAStore allocates a SoA store sized to MaxEntities for sparse lookup.
func NewSoAStore(schema ComponentSchema) *SoAStore {
	fields := make([]string, len(schema.Fields))
	columns := make(map[string][]any, len(schema.Fields))
	for i, f := range schema.Fields {
		fields[i] = f.Name
		columns[f.Name] = nil
	}
	sparse := make([]uint32, MaxEntities)
	for i := range sparse {
		sparse[i] = invalidIndex
	}
	return &SoAStore{name: schema.Name, fields: fields, sparse: sparse, columns: columns}
}

func (s *SoAStore) Name() string { return s.name }

// Add copies all fields into a new dense slot, or overwrites the existing
// one if slot is already present (add-or-replace).
func (s *SoAStore) Add(slot uint32, generation uint16, data ComponentData) {
	if s.Set(slot, data) {
		return
	}
	idx := uint32(len(s.denseSlots))
	s.denseSlots = append(s.denseSlots, slot)
	s.denseGen = append(s.denseGen, generation)
	for _, f := range s.fields {
		s.columns[f] = append(s.columns[f], data[f])
	}
	s.sparse[slot] = idx
}

// Remove swaps the last dense slot into the vacated position and updates
// the back-map, keeping all dense arrays contiguous.
func (s *SoAStore) Remove(slot uint32) bool {
	idx, ok := s.denseIndex(slot)
	if !ok {
		return false
	}
	last := len(s.denseSlots) - 1
	movedSlot := s.denseSlots[last]

	s.denseSlots[idx] = movedSlot
	s.denseGen[idx] = s.denseGen[last]
	for _, f := range s.fields {
		s.columns[f][idx] = s.columns[f][last]
	}
	s.sparse[movedSlot] = idx

	s.denseSlots = s.denseSlots[:last]
	s.denseGen = s.denseGen[:last]
	for _, f := range s.fields {
		s.columns[f] = s.columns[f][:last]
	}
	s.sparse[slot] = invalidIndex
	return true
}

func (s *SoAStore) Get(slot uint32) (ComponentData, bool) {
	idx, ok := s.denseIndex(slot)
	if !ok {
		return nil, false
	}
	data := make(ComponentData, len(s.fields))
	for _, f := range s.fields {
		data[f] = s.columns[f][idx]
	}
	return data, true
}

// Set overwrites an existing slot's fields in place without reshuffling
// the dense array, returning false if the slot is absent.
func (s *SoAStore) Set(slot uint32, data ComponentData) bool {
	idx, ok := s.denseIndex(slot)
	if !ok {
		return false
	}
	for _, f := range s.fields {
		if v, present := data[f]; present {
			s.columns[f][idx] = v
		}
	}
	return true
}

func (s *SoAStore) Has(slot uint32) bool {
	_, ok := s.denseIndex(slot)
	return ok
}

func (s *SoAStore) Len() int { return len(s.denseSlots) }

func (s *SoAStore) Slots() []uint32 { return s.denseSlots }

// Field returns the named field's value for slot, read straight from its
// column without building a ComponentData.
func (s *SoAStore) Field(slot uint32, field string) (any, bool) {
	idx, ok := s.denseIndex(slot)
	if !ok {
		return nil, false
	}
	col, ok := s.columns[field]
	if !ok {
		return nil, false
	}
	return col[idx], true
}

// SetField writes a single field's value for slot without touching the
// rest of the record.
func (s *SoAStore) SetField(slot uint32, field string, value any) bool {
	idx, ok := s.denseIndex(slot)
	if !ok {
		return false
	}
	if _, known := s.columns[field]; !known {
		return false
	}
	s.columns[field][idx] = value
	return true
}

func (s *SoAStore) denseIndex(slot uint32) (uint32, bool) {
	if int(slot) >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[slot]
	return idx, idx != invalidIndex
}

// AoSStore replaces per-field arrays with a single object array. Every
// write deep-clones the incoming record (a one-level copy, sufficient for
// flat records) so stored data never aliases the caller's map.
type AoSStore struct {
	name       string
	sparse     []uint32
	denseSlots []uint32
	objects    []ComponentData
}

// NewAoSStore allocates an AoS store sized to MaxEntities for sparse lookup.
func NewAoSStore(name string) *AoSStore {
	sparse := make([]uint32, MaxEntities)
	for i := range sparse {
		sparse[i] = invalidIndex
	}
	return &AoSStore{name: name, sparse: sparse}
}

func (s *AoSStore) Name() string { return s.name }

func cloneComponentData(data ComponentData) ComponentData {
	out := make(ComponentData, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}

func (s *AoSStore) Add(slot uint32, generation uint16, data ComponentData) {
	if s.Set(slot, data) {
		return
	}
	idx := uint32(len(s.denseSlots))
	s.denseSlots = append(s.denseSlots, slot)
	s.objects = append(s.objects, cloneComponentData(data))
	s.sparse[slot] = idx
}

func (s *AoSStore) Remove(slot uint32) bool {
	idx, ok := s.denseIndex(slot)
	if !ok {
		return false
	}
	last := len(s.denseSlots) - 1
	movedSlot := s.denseSlots[last]

	s.denseSlots[idx] = movedSlot
	s.objects[idx] = s.objects[last]
	s.sparse[movedSlot] = idx

	s.denseSlots = s.denseSlots[:last]
	s.objects = s.objects[:last]
	s.sparse[slot] = invalidIndex
	return true
}

func (s *AoSStore) Get(slot uint32) (ComponentData, bool) {
	idx, ok := s.denseIndex(slot)
	if !ok {
		return nil, false
	}
	return cloneComponentData(s.objects[idx]), true
}

func (s *AoSStore) Set(slot uint32, data ComponentData) bool {
	idx, ok := s.denseIndex(slot)
	if !ok {
		return false
	}
	for k, v := range data {
		s.objects[idx][k] = v
	}
	return true
}

func (s *AoSStore) Has(slot uint32) bool {
	_, ok := s.denseIndex(slot)
	return ok
}

func (s *AoSStore) Len() int { return len(s.denseSlots) }

func (s *AoSStore) Slots() []uint32 { return s.denseSlots }

func (s *AoSStore) denseIndex(slot uint32) (uint32, bool) {
	if int(slot) >= len(s.sparse) {
		return 0, false
	}
	idx := s.sparse[slot]
	return idx, idx != invalidIndex
}
