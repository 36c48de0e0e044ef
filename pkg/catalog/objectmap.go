package catalog

import "github.com/peacockIT/skyfuse/pkg/ident"

// ObjectMap maps identifiers under one catalog tag to 1-based positions in
// a fixed reference catalog, for O(1) average cross-matching. It is built
// once from a full pass over the reference and is immutable afterwards.
type ObjectMap struct {
	source *Catalog
	slots  map[ident.Identifier]int
}

// NewObjectMap builds an object map over ref keyed by each star's
// identifier under cat. Stars with no valid identifier under cat are
// skipped. When several stars share an identifier the last one inserted
// wins; reference catalogs list corrected entries after superseded ones, so
// last-wins must be preserved.
func NewObjectMap(ref *Catalog, cat ident.Catalog) *ObjectMap {
	m := &ObjectMap{
		source: ref,
		slots:  make(map[ident.Identifier]int, ref.Len()),
	}

	for i, star := range ref.Stars() {
		if star == nil {
			continue
		}
		id := star.Identifier(cat)
		if !id.IsValid() {
			continue
		}
		m.slots[id] = i + 1
	}

	return m
}

// Lookup returns the reference star matching id, or nil when there is no
// cross-match. A nil result is not an error; it simply means the provisional
// entry's own fields stay authoritative.
func (m *ObjectMap) Lookup(id ident.Identifier) *Star {
	k := m.slots[id]
	if k <= 0 {
		return nil
	}
	return m.source.At(k - 1)
}
