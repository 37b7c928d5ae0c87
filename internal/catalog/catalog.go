// Package catalog provides the read-mostly spell index, loaded once from a
// YAML file and queried by id, name or free text.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/spell"
)

// Catalog indexes immutable spell definitions. Entries are owned by the
// catalog; callers must not mutate returned spells.
type Catalog struct {
	mu      sync.RWMutex
	loaded  bool
	byID    map[string]*spell.Spell
	ordered []*spell.Spell
}

// New creates an empty, unloaded catalog
func New() *Catalog {
	return &Catalog{
		byID: make(map[string]*spell.Spell),
	}
}

// Loaded reports whether a load has completed
func (c *Catalog) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Count returns the number of indexed spells
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}

// GetByID returns a spell by its exact id
func (c *Catalog) GetByID(id string) (*spell.Spell, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.byID[id]
	return s, ok
}

// GetByName resolves a spell by name: exact match first, then prefix, then
// substring, all case-insensitive. The first match in name order wins.
func (c *Catalog) GetByName(name string) (*spell.Spell, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return nil, false
	}

	for _, s := range c.ordered {
		if strings.ToLower(s.Name) == query {
			return s, true
		}
	}
	for _, s := range c.ordered {
		if strings.HasPrefix(strings.ToLower(s.Name), query) {
			return s, true
		}
	}
	for _, s := range c.ordered {
		if strings.Contains(strings.ToLower(s.Name), query) {
			return s, true
		}
	}
	return nil, false
}

// Resolve looks a spell up by id, falling back to fuzzy name matching
func (c *Catalog) Resolve(idOrName string) (*spell.Spell, bool) {
	if s, ok := c.GetByID(idOrName); ok {
		return s, true
	}
	return c.GetByName(idOrName)
}

// List returns spells of the given school in name order. An empty school
// returns everything.
func (c *Catalog) List(school spell.School) []*spell.Spell {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var result []*spell.Spell
	for _, s := range c.ordered {
		if school == "" || s.School == school {
			result = append(result, s)
		}
	}
	return result
}

// Search returns spells whose name or description contains the query,
// case-insensitive, in name order
func (c *Catalog) Search(query string) []*spell.Spell {
	c.mu.RLock()
	defer c.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var result []*spell.Spell
	for _, s := range c.ordered {
		if strings.Contains(strings.ToLower(s.Name), q) ||
			strings.Contains(strings.ToLower(s.Description), q) {
			result = append(result, s)
		}
	}
	return result
}

// Schools returns the distinct schools present in the catalog, sorted
func (c *Catalog) Schools() []spell.School {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[spell.School]bool)
	for _, s := range c.ordered {
		seen[s.School] = true
	}

	schools := make([]spell.School, 0, len(seen))
	for school := range seen {
		schools = append(schools, school)
	}
	sort.Slice(schools, func(i, j int) bool { return schools[i] < schools[j] })
	return schools
}

// install replaces the index contents. Called once by Load.
func (c *Catalog) install(spells []*spell.Spell) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range spells {
		c.byID[s.ID] = s
	}
	c.ordered = make([]*spell.Spell, 0, len(c.byID))
	for _, s := range c.byID {
		c.ordered = append(c.ordered, s)
	}
	sort.Slice(c.ordered, func(i, j int) bool { return c.ordered[i].Name < c.ordered[j].Name })
	c.loaded = true
}
