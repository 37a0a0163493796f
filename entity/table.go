package entity

import (
	"fmt"

	"github.com/esphome-go/api/api"
)

// Descriptor is implemented by every ListEntities<Kind>Response through
// EntityBase's promoted accessor methods (api.EntityBase.CatalogueKey and
// friends). It is the constraint Table is generic over.
type Descriptor interface {
	CatalogueKey() uint32
	CatalogueObjectID() string
	CatalogueCategory() api.EntityCategory
}

// Table is the per-kind ordered descriptor store from spec.md §4.6:
// insertion order preserved, with O(1) lookup by key and by object id. It
// is mutated only by the pump and by fetch_entities_and_services within a
// single session (spec.md §5), so it carries no internal lock.
type Table[D Descriptor] struct {
	order      []D
	byKey      map[uint32]int
	byObjectID map[string]int
}

// Insert appends a descriptor, failing if its key or object id already
// exists in the table.
func (t *Table[D]) Insert(d D) error {
	if t.byKey == nil {
		t.byKey = make(map[uint32]int)
		t.byObjectID = make(map[string]int)
	}
	if _, exists := t.byKey[d.CatalogueKey()]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateKey, d.CatalogueKey())
	}
	if _, exists := t.byObjectID[d.CatalogueObjectID()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateObjectID, d.CatalogueObjectID())
	}

	idx := len(t.order)
	t.order = append(t.order, d)
	t.byKey[d.CatalogueKey()] = idx
	t.byObjectID[d.CatalogueObjectID()] = idx
	return nil
}

// FromKey looks up a descriptor by its device-assigned key.
func (t *Table[D]) FromKey(key uint32) (D, bool) {
	idx, ok := t.byKey[key]
	if !ok {
		var zero D
		return zero, false
	}
	return t.order[idx], true
}

// FromName looks up a descriptor by its stable object id.
func (t *Table[D]) FromName(objectID string) (D, bool) {
	idx, ok := t.byObjectID[objectID]
	if !ok {
		var zero D
		return zero, false
	}
	return t.order[idx], true
}

// KeyFromName resolves an object id straight to a key.
func (t *Table[D]) KeyFromName(objectID string) (uint32, bool) {
	d, ok := t.FromName(objectID)
	if !ok {
		return 0, false
	}
	return d.CatalogueKey(), true
}

// AllKeys returns every key in declaration order, including Config and
// Diagnostic entities.
func (t *Table[D]) AllKeys() []uint32 {
	out := make([]uint32, len(t.order))
	for i, d := range t.order {
		out[i] = d.CatalogueKey()
	}
	return out
}

// PrimaryKeys returns only the keys whose category is EntityCategoryNone,
// in declaration order — the set a "global broadcast" command targets
// (spec.md §4.5).
func (t *Table[D]) PrimaryKeys() []uint32 {
	var out []uint32
	for _, d := range t.order {
		if d.CatalogueCategory() == api.EntityCategoryNone {
			out = append(out, d.CatalogueKey())
		}
	}
	return out
}

// All returns every descriptor in declaration order.
func (t *Table[D]) All() []D { return t.order }

// Len reports how many descriptors the table holds.
func (t *Table[D]) Len() int { return len(t.order) }
