package resources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/spell"
	playerrepo "github.com/arkanwolfshade/MythosMUD-sub010/internal/repositories/players"
)

func newResourceFixture(t *testing.T, stats map[string]int, position player.Position) (Service, playerrepo.Repository) {
	t.Helper()

	repo := playerrepo.NewInMemoryRepository()
	require.NoError(t, repo.Create(context.Background(), &player.Player{
		ID:       "caster-1",
		Name:     "Armitage",
		Position: position,
		Stats:    stats,
	}))

	svc := NewService(&ServiceConfig{Players: repo})
	return svc, repo
}

func getCaster(t *testing.T, repo playerrepo.Repository) *player.Player {
	t.Helper()
	p, err := repo.Get(context.Background(), "caster-1")
	require.NoError(t, err)
	return p
}

func TestApplyCosts(t *testing.T) {
	tests := []struct {
		name           string
		stats          map[string]int
		sp             *spell.Spell
		wantMP         int
		wantLucidity   int
		wantCorruption int
	}{
		{
			name:  "plain spell takes only magic points",
			stats: map[string]int{player.StatMagicPoints: 50, player.StatLucidity: 60, player.StatPower: 250},
			sp: &spell.Spell{
				ID: "spell-a", Name: "A", School: spell.SchoolClerical,
				MPCost: 10, Effect: &spell.HealEffect{Amount: 1},
			},
			wantMP:       40,
			wantLucidity: 60,
		},
		{
			name:  "mythos spell drains lucidity and accrues corruption",
			stats: map[string]int{player.StatMagicPoints: 50, player.StatLucidity: 60, player.StatPower: 250},
			sp: &spell.Spell{
				ID: "spell-b", Name: "B", School: spell.SchoolMythos,
				MPCost: 20, LucidityCost: 15, CorruptionOnCast: 2,
				Effect: &spell.DamageEffect{Amount: 1},
			},
			wantMP:         30,
			wantLucidity:   45,
			wantCorruption: 2,
		},
		{
			name:  "pools floor at zero",
			stats: map[string]int{player.StatMagicPoints: 5, player.StatLucidity: 5, player.StatPower: 250},
			sp: &spell.Spell{
				ID: "spell-c", Name: "C", School: spell.SchoolMythos,
				MPCost: 20, LucidityCost: 15,
				Effect: &spell.DamageEffect{Amount: 1},
			},
			wantMP:       0,
			wantLucidity: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newResourceFixture(t, tt.stats, player.PositionStanding)

			require.NoError(t, svc.ApplyCosts(context.Background(), "caster-1", tt.sp))

			caster := getCaster(t, repo)
			assert.Equal(t, tt.wantMP, caster.GetStat(player.StatMagicPoints))
			assert.Equal(t, tt.wantLucidity, caster.GetStat(player.StatLucidity))
			assert.Equal(t, tt.wantCorruption, caster.GetStat(player.StatCorruption))
		})
	}
}

func TestRestoreMagicPoints(t *testing.T) {
	// Power 250 derives a maximum of 50
	svc, repo := newResourceFixture(t, map[string]int{
		player.StatMagicPoints: 45,
		player.StatPower:       250,
	}, player.PositionStanding)

	gained, err := svc.RestoreMagicPoints(context.Background(), "caster-1", 20)
	require.NoError(t, err)
	assert.Equal(t, 5, gained, "restoration caps at the maximum")
	assert.Equal(t, 50, getCaster(t, repo).GetStat(player.StatMagicPoints))

	gained, err = svc.RestoreMagicPoints(context.Background(), "caster-1", 20)
	require.NoError(t, err)
	assert.Zero(t, gained)

	_, err = svc.RestoreMagicPoints(context.Background(), "caster-1", -5)
	require.Error(t, err)
}

func TestRegenTick_StandingAccumulatesFractions(t *testing.T) {
	svc, repo := newResourceFixture(t, map[string]int{
		player.StatMagicPoints: 0,
		player.StatPower:       250,
	}, player.PositionStanding)

	// Standing rate is 0.5 per tick: one whole point every second tick
	total := 0
	for i := 0; i < 10; i++ {
		gained, err := svc.RegenTick(context.Background(), "caster-1")
		require.NoError(t, err)
		total += gained
	}
	assert.Equal(t, 5, total)

	caster := getCaster(t, repo)
	assert.Equal(t, 5, caster.GetStat(player.StatMagicPoints))
	assert.Zero(t, caster.MPRemainder)
}

func TestRegenTick_PositionMultipliers(t *testing.T) {
	tests := []struct {
		position  player.Position
		wantAfter int // MP after 10 ticks from 0
	}{
		{position: player.PositionStanding, wantAfter: 5}, // 0.5/tick
		{position: player.PositionSitting, wantAfter: 15}, // 1.5/tick
		{position: player.PositionLying, wantAfter: 18},   // 1.8/tick
	}

	for _, tt := range tests {
		t.Run(string(tt.position), func(t *testing.T) {
			svc, repo := newResourceFixture(t, map[string]int{
				player.StatMagicPoints: 0,
				player.StatPower:       250,
			}, tt.position)

			for i := 0; i < 10; i++ {
				_, err := svc.RegenTick(context.Background(), "caster-1")
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantAfter, getCaster(t, repo).GetStat(player.StatMagicPoints))
		})
	}
}

func TestRegenTick_NeverExceedsMaximum(t *testing.T) {
	svc, repo := newResourceFixture(t, map[string]int{
		player.StatMagicPoints: 49,
		player.StatPower:       250,
	}, player.PositionLying)

	for i := 0; i < 20; i++ {
		_, err := svc.RegenTick(context.Background(), "caster-1")
		require.NoError(t, err)
	}
	assert.Equal(t, 50, getCaster(t, repo).GetStat(player.StatMagicPoints))
}

func TestMeditate_OutpacesRest(t *testing.T) {
	ctx := context.Background()

	restSvc, restRepo := newResourceFixture(t, map[string]int{
		player.StatMagicPoints: 0,
		player.StatPower:       1000, // maximum 200, high enough not to cap
	}, player.PositionStanding)
	medSvc, medRepo := newResourceFixture(t, map[string]int{
		player.StatMagicPoints: 0,
		player.StatPower:       1000,
	}, player.PositionStanding)

	// 10 seconds at 0.1s ticks is 100 ticks: rest regains 0.5*3.6=1.8 per
	// tick, meditation 0.5*5.0=2.5 per tick and hits the 200 cap
	rested, err := restSvc.Rest(ctx, "caster-1", 10)
	require.NoError(t, err)
	meditated, err := medSvc.Meditate(ctx, "caster-1", 10)
	require.NoError(t, err)

	assert.InDelta(t, 180, rested, 1)
	assert.Equal(t, 200, meditated)
	assert.InDelta(t, 180, getCaster(t, restRepo).GetStat(player.StatMagicPoints), 1)
	assert.Equal(t, 200, getCaster(t, medRepo).GetStat(player.StatMagicPoints))

	_, err = restSvc.Rest(ctx, "caster-1", -1)
	require.Error(t, err)
}

func TestBulkAndTickRegenConverge(t *testing.T) {
	ctx := context.Background()

	tickSvc, tickRepo := newResourceFixture(t, map[string]int{
		player.StatMagicPoints: 0,
		player.StatPower:       1000,
	}, player.PositionStanding)
	bulkSvc, bulkRepo := newResourceFixture(t, map[string]int{
		player.StatMagicPoints: 0,
		player.StatPower:       1000,
	}, player.PositionStanding)

	// 36 standing ticks accumulate 18 whole points; a half second rest
	// covers 5 ticks at the resting rate, about 9 points. Bulk and per-tick
	// paths share the accumulator, so they agree to within a point.
	for i := 0; i < 36; i++ {
		_, err := tickSvc.RegenTick(ctx, "caster-1")
		require.NoError(t, err)
	}
	gained, err := bulkSvc.Rest(ctx, "caster-1", 0.5)
	require.NoError(t, err)

	assert.Equal(t, 18, getCaster(t, tickRepo).GetStat(player.StatMagicPoints))
	assert.InDelta(t, 9, gained, 1)
	assert.InDelta(t, 9, getCaster(t, bulkRepo).GetStat(player.StatMagicPoints), 1)
}
