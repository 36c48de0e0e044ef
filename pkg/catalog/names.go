package catalog

import (
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/peacockIT/skyfuse/pkg/errors"
	"github.com/peacockIT/skyfuse/pkg/ident"
)

// NameMap maps identifiers to common (proper) star names. Entries keep
// their table order: name resolution walks the table, not the identifier
// set, so the table author controls which name comes first.
type NameMap struct {
	entries []NameEntry
	index   map[ident.Identifier]int
}

// NameEntry is one identifier with its associated display names.
type NameEntry struct {
	ID    ident.Identifier
	Names []string
}

// nameEntryYAML is the on-disk shape of a name table entry.
type nameEntryYAML struct {
	Identifier string   `yaml:"identifier"`
	Names      []string `yaml:"names"`
}

// NewNameMap builds a name map from entries, keeping their order. Entries
// with an invalid identifier or no names are dropped.
func NewNameMap(entries []NameEntry) *NameMap {
	m := &NameMap{index: make(map[ident.Identifier]int, len(entries))}
	for _, e := range entries {
		if !e.ID.IsValid() || len(e.Names) == 0 {
			continue
		}
		if _, dup := m.index[e.ID]; dup {
			continue
		}
		m.index[e.ID] = len(m.entries)
		m.entries = append(m.entries, e)
	}
	return m
}

// LoadNameMap reads a star-name table from a YAML file. Each entry names an
// identifier in free-text form and one or more display names, preferred
// name first.
func LoadNameMap(path string) (*NameMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var raw []nameEntryYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	titler := cases.Title(language.English)
	entries := make([]NameEntry, 0, len(raw))
	for _, e := range raw {
		id := ident.Parse(e.Identifier)
		if !id.IsValid() {
			return nil, errors.NewValidationError("identifier", e.Identifier, "unrecognized catalog designation")
		}

		names := make([]string, 0, len(e.Names))
		for _, n := range e.Names {
			names = append(names, canonName(titler, n))
		}
		entries = append(entries, NameEntry{ID: id, Names: names})
	}

	return NewNameMap(entries), nil
}

// canonName trims a display name and title-cases it when the table carries
// it fully lowercased. Mixed-case names pass through untouched so forms
// like "van Maanen's Star" keep their capitalization.
func canonName(titler cases.Caser, name string) string {
	name = strings.TrimSpace(name)
	if name != "" && name == strings.ToLower(name) {
		return titler.String(name)
	}
	return name
}

// Len returns the number of table entries.
func (m *NameMap) Len() int {
	return len(m.entries)
}

// Names returns every name associated with any identifier in idents, in
// table order. The result is empty when no identifier has a name.
func (m *NameMap) Names(idents []ident.Identifier) []string {
	var names []string
	for _, e := range m.entries {
		for _, id := range idents {
			if e.ID == id {
				names = append(names, e.Names...)
				break
			}
		}
	}
	return names
}

// Resolve looks up names for the star's identifier set and replaces the
// star's name list when at least one name is found. A star with no table
// match keeps whatever names it already carries.
func (m *NameMap) Resolve(s *Star) {
	if names := m.Names(s.Idents); len(names) > 0 {
		s.Names = names
	}
}
