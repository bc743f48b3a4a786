package runtime

import "github.com/wireumb/umb/schema"

// indexMaps is a small generic dual lookup table - by name and by numeric
// id - here used for message name and type-id lookups over compiled
// schema.Analysis values.
type indexMaps[T any] struct {
	byName map[string]T
	byID   map[uint16]T
}

func newIndexMaps[T any]() indexMaps[T] {
	return indexMaps[T]{
		byName: make(map[string]T),
		byID:   make(map[uint16]T),
	}
}

func (m indexMaps[T]) getByName(name string) (T, bool) {
	v, ok := m.byName[name]
	return v, ok
}

func (m indexMaps[T]) getByID(id uint16) (T, bool) {
	v, ok := m.byID[id]
	return v, ok
}

// Registry is a factory for Instance values of every message a compiled
// schema.Schema declares, looked up by name or by wire type id - the C7
// reflection/meta layer's entry point.
type Registry struct {
	indexMaps[*schema.Analysis]
	schema *schema.Schema
}

// NewRegistry builds a Registry over every message s declares.
func NewRegistry(s *schema.Schema) *Registry {
	r := &Registry{indexMaps: newIndexMaps[*schema.Analysis](), schema: s}
	for i := range s.Messages {
		a := &s.Messages[i]
		r.byName[a.Name] = a
		r.byID[a.TypeID] = a
	}
	return r
}

// New creates a zero-valued Instance of the named message.
func (r *Registry) New(name string) (*Instance, bool) {
	a, ok := r.getByName(name)
	if !ok {
		return nil, false
	}
	return New(a), true
}

// NewByTypeID creates a zero-valued Instance of the message assigned the
// given wire type id.
func (r *Registry) NewByTypeID(id uint16) (*Instance, bool) {
	a, ok := r.getByID(id)
	if !ok {
		return nil, false
	}
	return New(a), true
}

// Analysis returns the compiled model for the named message, without
// creating an Instance.
func (r *Registry) Analysis(name string) (*schema.Analysis, bool) {
	return r.getByName(name)
}

// TypeIDs returns every message type id the registry knows, in no
// particular order.
func (r *Registry) TypeIDs() []uint16 {
	ids := make([]uint16, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	return ids
}

// Names returns every message name the registry knows, in no particular
// order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	return names
}
