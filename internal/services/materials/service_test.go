package materials

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/spell"
	playerrepo "github.com/arkanwolfshade/MythosMUD-sub010/internal/repositories/players"
)

func ritualSpell() *spell.Spell {
	return &spell.Spell{
		ID:     "spell-ritual",
		Name:   "Candle Ritual",
		MPCost: 5,
		Effect: &spell.HealEffect{Amount: 5},
		Materials: []spell.Material{
			{ItemID: "item-candle", Consumed: true},
			{ItemID: "item-silver-dagger", Consumed: false},
		},
	}
}

func newMaterialsFixture(t *testing.T, inventory []player.InventoryItem) (Service, playerrepo.Repository) {
	t.Helper()

	repo := playerrepo.NewInMemoryRepository()
	require.NoError(t, repo.Create(context.Background(), &player.Player{
		ID:        "caster-1",
		Name:      "Armitage",
		Stats:     map[string]int{},
		Inventory: inventory,
	}))
	return NewService(&ServiceConfig{Players: repo}), repo
}

func TestCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("no materials required", func(t *testing.T) {
		svc, _ := newMaterialsFixture(t, nil)
		missing, err := svc.Check(ctx, "caster-1", &spell.Spell{
			ID: "spell-simple", Name: "Simple", Effect: &spell.HealEffect{Amount: 1},
		})
		require.NoError(t, err)
		assert.Empty(t, missing)
	})

	t.Run("reports each absent material", func(t *testing.T) {
		svc, _ := newMaterialsFixture(t, []player.InventoryItem{
			{ItemID: "item-candle", Quantity: 1},
		})
		missing, err := svc.Check(ctx, "caster-1", ritualSpell())
		require.NoError(t, err)
		assert.Equal(t, []string{"item-silver-dagger"}, missing)
	})

	t.Run("fully equipped", func(t *testing.T) {
		svc, _ := newMaterialsFixture(t, []player.InventoryItem{
			{ItemID: "item-candle", Quantity: 1},
			{ItemID: "item-silver-dagger", Quantity: 1},
		})
		missing, err := svc.Check(ctx, "caster-1", ritualSpell())
		require.NoError(t, err)
		assert.Empty(t, missing)
	})
}

func TestConsume(t *testing.T) {
	ctx := context.Background()

	t.Run("removes only consumed materials", func(t *testing.T) {
		svc, repo := newMaterialsFixture(t, []player.InventoryItem{
			{ItemID: "item-candle", Quantity: 2},
			{ItemID: "item-silver-dagger", Quantity: 1},
		})

		ok, err := svc.Consume(ctx, "caster-1", ritualSpell())
		require.NoError(t, err)
		assert.True(t, ok)

		p, err := repo.Get(ctx, "caster-1")
		require.NoError(t, err)
		require.GreaterOrEqual(t, p.FindInventory("item-candle"), 0)
		assert.Equal(t, 1, p.Inventory[p.FindInventory("item-candle")].Quantity)
		assert.GreaterOrEqual(t, p.FindInventory("item-silver-dagger"), 0, "reusable focus survives")
	})

	t.Run("last unit removes the stack", func(t *testing.T) {
		svc, repo := newMaterialsFixture(t, []player.InventoryItem{
			{ItemID: "item-candle", Quantity: 1},
			{ItemID: "item-silver-dagger", Quantity: 1},
		})

		ok, err := svc.Consume(ctx, "caster-1", ritualSpell())
		require.NoError(t, err)
		assert.True(t, ok)

		p, err := repo.Get(ctx, "caster-1")
		require.NoError(t, err)
		assert.Negative(t, p.FindInventory("item-candle"))
	})

	t.Run("missing material consumes nothing", func(t *testing.T) {
		svc, repo := newMaterialsFixture(t, []player.InventoryItem{
			{ItemID: "item-candle", Quantity: 2},
		})

		ok, err := svc.Consume(ctx, "caster-1", ritualSpell())
		require.NoError(t, err)
		assert.False(t, ok)

		p, err := repo.Get(ctx, "caster-1")
		require.NoError(t, err)
		idx := p.FindInventory("item-candle")
		require.GreaterOrEqual(t, idx, 0)
		assert.Equal(t, 2, p.Inventory[idx].Quantity, "partial requirements consume nothing")
	})
}
