package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaxMagicPoints(t *testing.T) {
	t.Run("derived from power", func(t *testing.T) {
		p := &Player{Stats: map[string]int{StatPower: 250}}
		assert.Equal(t, 50, p.MaxMagicPoints())

		p.SetStat(StatPower, 251)
		assert.Equal(t, 51, p.MaxMagicPoints())
	})

	t.Run("explicit max wins", func(t *testing.T) {
		p := &Player{Stats: map[string]int{StatPower: 250, StatMaxMP: 120}}
		assert.Equal(t, 120, p.MaxMagicPoints())
	})
}

func TestNormalizeMagicPoints(t *testing.T) {
	p := &Player{Stats: map[string]int{StatPower: 250}}
	assert.Equal(t, 50, p.NormalizeMagicPoints())
	assert.Equal(t, 50, p.GetStat(StatMagicPoints))

	// An already-set pool is left alone, even at zero
	p.SetStat(StatMagicPoints, 0)
	assert.Equal(t, 0, p.NormalizeMagicPoints())
}

func TestInventory(t *testing.T) {
	p := &Player{Inventory: []InventoryItem{
		{ItemID: "item-1", PrototypeID: "item-candle", Quantity: 2},
		{ItemID: "item-2", PrototypeID: "item-silver-dagger", Quantity: 1},
	}}

	assert.Equal(t, 0, p.FindInventory("item-candle"))
	assert.Equal(t, 1, p.FindInventory("item-2"))
	assert.Equal(t, -1, p.FindInventory("item-chalk"))

	p.RemoveInventoryAt(0)
	assert.Equal(t, 1, p.Inventory[0].Quantity)

	p.RemoveInventoryAt(1)
	assert.Len(t, p.Inventory, 1)
	assert.Equal(t, -1, p.FindInventory("item-silver-dagger"))

	p.RemoveInventoryAt(5)
	assert.Len(t, p.Inventory, 1)
}

func TestClone(t *testing.T) {
	p := &Player{
		ID:    "player-1",
		Stats: map[string]int{StatMagicPoints: 50},
		Inventory: []InventoryItem{
			{ItemID: "item-1", PrototypeID: "item-candle", Quantity: 2},
		},
		StatusEffects: []ActiveStatus{
			{Status: "stone_skin", StatMods: map[string]int{"armor": 5}},
		},
	}

	clone := p.Clone()
	clone.SetStat(StatMagicPoints, 1)
	clone.Inventory[0].Quantity = 99
	clone.StatusEffects[0].StatMods["armor"] = 0

	assert.Equal(t, 50, p.GetStat(StatMagicPoints))
	assert.Equal(t, 2, p.Inventory[0].Quantity)
	assert.Equal(t, 5, p.StatusEffects[0].StatMods["armor"])
}

func TestAddMastery(t *testing.T) {
	ps := &PlayerSpell{Mastery: 95}
	ps.AddMastery(10)
	assert.Equal(t, MaxMastery, ps.Mastery)

	ps.AddMastery(-200)
	assert.Equal(t, 0, ps.Mastery)
}
