package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/spell"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
)

const testYAML = `
spells:
  spell-fireball:
    name: Fireball
    description: A roaring sphere of flame.
    school: elemental
    mp_cost: 30
    target: entity
    range: sight
    effect:
      kind: damage
      amount: 40
      damage_type: fire
  spell-fire-shield:
    name: Fire Shield
    description: Wreathes the caster in protective flame.
    school: elemental
    mp_cost: 25
    target: self
    effect:
      kind: stat_mod
      duration_seconds: 60
      mods:
        armor: 3
  spell-contact-outer:
    name: Contact the Outer Void
    description: Opens the mind to what waits between the stars.
    school: mythos
    mp_cost: 40
    lucidity_cost: 25
    corruption_on_learn: 10
    casting_time_seconds: 12
    target: self
    effect:
      kind: lucidity
      lucidity_delta: -20
      corruption_delta: 5
`

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := New()
	require.NoError(t, c.LoadBytes([]byte(testYAML)))
	return c
}

func TestCatalog_LoadBytes(t *testing.T) {
	c := loadTestCatalog(t)

	assert.True(t, c.Loaded())
	assert.Equal(t, 3, c.Count())

	s, ok := c.GetByID("spell-fireball")
	require.True(t, ok)
	assert.Equal(t, "Fireball", s.Name)
	assert.Equal(t, spell.SchoolElemental, s.School)
	assert.Equal(t, 30, s.MPCost)
	assert.Equal(t, spell.TargetEntity, s.Target)
	assert.Equal(t, spell.RangeSight, s.Range)

	damage, ok := s.Effect.(*spell.DamageEffect)
	require.True(t, ok)
	assert.Equal(t, 40, damage.Amount)
	assert.Equal(t, "fire", damage.DamageType)

	// A second load is a no-op
	require.NoError(t, c.LoadBytes([]byte(`spells: {}`)))
	assert.Equal(t, 3, c.Count())
}

func TestCatalog_LoadBytesRejectsGarbage(t *testing.T) {
	c := New()
	err := c.LoadBytes([]byte("spells: [not a map"))
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
	assert.False(t, c.Loaded())
}

func TestCatalog_LoadBytesSkipsMalformedEntries(t *testing.T) {
	c := New()
	err := c.LoadBytes([]byte(`
spells:
  spell-good:
    name: Good Spell
    mp_cost: 5
    effect:
      kind: heal
      amount: 10
  spell-no-effect:
    name: Broken Spell
    mp_cost: 5
  spell-negative:
    name: Negative Spell
    mp_cost: -5
    effect:
      kind: heal
      amount: 10
`))
	require.NoError(t, err)
	assert.Equal(t, 1, c.Count())

	_, ok := c.GetByID("spell-good")
	assert.True(t, ok)
	_, ok = c.GetByID("spell-no-effect")
	assert.False(t, ok)
	_, ok = c.GetByID("spell-negative")
	assert.False(t, ok)
}

func TestCatalog_LoadBytesRejectsEmptyCatalog(t *testing.T) {
	c := New()
	err := c.LoadBytes([]byte(`
spells:
  spell-broken:
    name: Broken Spell
`))
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestCatalog_GetByNamePrecedence(t *testing.T) {
	c := loadTestCatalog(t)

	tests := []struct {
		name   string
		query  string
		wantID string
		found  bool
	}{
		{name: "exact beats prefix", query: "Fireball", wantID: "spell-fireball", found: true},
		{name: "case insensitive exact", query: "fIrEbAlL", wantID: "spell-fireball", found: true},
		{name: "prefix beats substring", query: "fire s", wantID: "spell-fire-shield", found: true},
		{name: "prefix in name order", query: "fire", wantID: "spell-fire-shield", found: true},
		{name: "substring", query: "void", wantID: "spell-contact-outer", found: true},
		{name: "no match", query: "ice", found: false},
		{name: "blank", query: "   ", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := c.GetByName(tt.query)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.wantID, s.ID)
			}
		})
	}
}

func TestCatalog_Resolve(t *testing.T) {
	c := loadTestCatalog(t)

	s, ok := c.Resolve("spell-fireball")
	require.True(t, ok)
	assert.Equal(t, "Fireball", s.Name)

	s, ok = c.Resolve("contact")
	require.True(t, ok)
	assert.Equal(t, "spell-contact-outer", s.ID)

	_, ok = c.Resolve("no-such-thing")
	assert.False(t, ok)
}

func TestCatalog_ListAndSearch(t *testing.T) {
	c := loadTestCatalog(t)

	all := c.List("")
	require.Len(t, all, 3)
	assert.Equal(t, "Contact the Outer Void", all[0].Name)
	assert.Equal(t, "Fire Shield", all[1].Name)
	assert.Equal(t, "Fireball", all[2].Name)

	elemental := c.List(spell.SchoolElemental)
	require.Len(t, elemental, 2)

	// Search matches descriptions too
	results := c.Search("flame")
	require.Len(t, results, 2)

	assert.Empty(t, c.Search(""))

	assert.Equal(t, []spell.School{spell.SchoolElemental, spell.SchoolMythos}, c.Schools())
}

func TestCatalog_DefaultsForUnknownEnums(t *testing.T) {
	c := New()
	require.NoError(t, c.LoadBytes([]byte(`
spells:
  spell-odd:
    name: Odd Spell
    school: chronomancy
    target: everything
    range: planar
    effect:
      kind: heal
      amount: 1
`)))

	s, ok := c.GetByID("spell-odd")
	require.True(t, ok)
	assert.Equal(t, spell.SchoolOther, s.School)
	assert.Equal(t, spell.TargetSelf, s.Target)
	assert.Equal(t, spell.RangeRoom, s.Range)
}
