package casting

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/catalog"
	mockdice "github.com/arkanwolfshade/MythosMUD-sub010/internal/dice/mock"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/combat"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	playerrepo "github.com/arkanwolfshade/MythosMUD-sub010/internal/repositories/players"
	spellbookrepo "github.com/arkanwolfshade/MythosMUD-sub010/internal/repositories/spellbook"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/effects"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/mastery"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/materials"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/resources"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/targeting"
)

const testCatalogYAML = `
spells:
  spell-heal:
    name: Minor Mending
    school: clerical
    mp_cost: 10
    target: self
    range: touch
    effect:
      kind: heal
      amount: 25
  spell-voorish:
    name: The Voorish Sign
    school: mythos
    mp_cost: 20
    lucidity_cost: 15
    corruption_on_cast: 2
    casting_time_seconds: 5
    target: entity
    range: room
    effect:
      kind: damage
      amount: 30
      damage_type: eldritch
  spell-ritual:
    name: Candle Ritual
    school: other
    mp_cost: 5
    target: self
    range: touch
    effect:
      kind: heal
      amount: 5
    materials:
      - item_id: item-candle
        consumed: true
`

// manualClock is a hand-cranked tick source
type manualClock struct {
	tick int64
}

func (c *manualClock) CurrentTick() int64 { return c.tick }

// stubWorld fakes the surrounding game: name resolution, combat sessions and
// the combat damage model
type stubWorld struct {
	session *combat.Session
	matches map[string]*targeting.Match
	damage  map[string]int
}

func newStubWorld() *stubWorld {
	return &stubWorld{
		matches: make(map[string]*targeting.Match),
		damage:  make(map[string]int),
	}
}

func (w *stubWorld) ActiveSessionFor(ctx context.Context, casterID string) (*combat.Session, error) {
	return w.session, nil
}

func (w *stubWorld) Resolve(ctx context.Context, caster *player.Player, name string) (*targeting.Match, error) {
	match, ok := w.matches[strings.ToLower(name)]
	if !ok {
		return nil, nil
	}
	return match, nil
}

func (w *stubWorld) ApplyDamage(ctx context.Context, targetID string, amount int, damageType string) error {
	w.damage[targetID] += amount
	return nil
}

func (w *stubWorld) Heal(ctx context.Context, targetID string, amount int) error {
	return nil
}

type castFixture struct {
	svc       Service
	clock     *manualClock
	roller    *mockdice.ManualMockRoller
	players   playerrepo.Repository
	spellbook spellbookrepo.Repository
	world     *stubWorld
}

func newCastFixture(t *testing.T) *castFixture {
	t.Helper()

	spells := catalog.New()
	require.NoError(t, spells.LoadBytes([]byte(testCatalogYAML)))

	f := &castFixture{
		clock:     &manualClock{},
		roller:    mockdice.NewManualMockRoller(),
		players:   playerrepo.NewInMemoryRepository(),
		spellbook: spellbookrepo.NewInMemoryRepository(),
		world:     newStubWorld(),
	}

	f.svc = NewService(&ServiceConfig{
		Catalog: spells,
		Players: f.players,
		Mastery: mastery.NewService(&mastery.ServiceConfig{
			Catalog:    spells,
			Players:    f.players,
			Spellbook:  f.spellbook,
			DiceRoller: f.roller,
		}),
		Materials: materials.NewService(&materials.ServiceConfig{
			Players: f.players,
		}),
		Resources: resources.NewService(&resources.ServiceConfig{
			Players: f.players,
		}),
		Effects: effects.NewService(&effects.ServiceConfig{
			Players: f.players,
			Damage:  f.world,
		}),
		Targeting: targeting.NewService(&targeting.ServiceConfig{
			Resolver: f.world,
			Combat:   f.world,
		}),
		Combat:     f.world,
		Clock:      f.clock,
		DiceRoller: f.roller,
	})
	return f
}

func (f *castFixture) createCaster(t *testing.T) *player.Player {
	t.Helper()

	caster := &player.Player{
		ID:       "caster-1",
		Name:     "Armitage",
		RoomID:   "room-1",
		Position: player.PositionStanding,
		Stats: map[string]int{
			player.StatHealth:       60,
			player.StatMaxHealth:    100,
			player.StatMagicPoints:  50,
			player.StatLucidity:     60,
			player.StatIntelligence: 40,
			player.StatLuck:         30,
			player.StatPower:        250,
		},
	}
	require.NoError(t, f.players.Create(context.Background(), caster))
	return caster
}

func (f *castFixture) learn(t *testing.T, casterID, spellID string) {
	t.Helper()
	require.NoError(t, f.spellbook.Create(context.Background(), &player.PlayerSpell{
		PlayerID: casterID,
		SpellID:  spellID,
	}))
}

func (f *castFixture) addHorror(inCombatWith string) {
	f.world.matches["horror"] = &targeting.Match{
		ID:     "npc-1",
		Name:   "a shambling horror",
		Kind:   targeting.MatchNPC,
		RoomID: "room-1",
	}
	if inCombatWith != "" {
		f.world.session = &combat.Session{
			ID: "combat-1",
			Participants: []combat.Participant{
				{ID: inCombatWith, Kind: combat.ParticipantPlayer},
				{ID: "npc-1", Name: "a shambling horror", Kind: combat.ParticipantNPC},
			},
			CurrentTurnID:     inCombatWith,
			NextTurnTick:      0,
			TurnIntervalTicks: 60,
		}
	}
}

func (f *castFixture) getCaster(t *testing.T) *player.Player {
	t.Helper()
	p, err := f.players.Get(context.Background(), "caster-1")
	require.NoError(t, err)
	return p
}

func TestCastSpell_InstantHealSuccess(t *testing.T) {
	f := newCastFixture(t)
	f.createCaster(t)
	f.learn(t, "caster-1", "spell-heal")
	f.roller.SetRolls([]int{30}) // threshold is INT 40 + mastery 0

	result, err := f.svc.CastSpell(context.Background(), &CastInput{
		CasterID:      "caster-1",
		SpellIDOrName: "spell-heal",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.CostsPaid)
	assert.False(t, result.Started)
	assert.Equal(t, "caster-1", result.TargetID)
	assert.Contains(t, result.Message, "You cast Minor Mending")

	caster := f.getCaster(t)
	assert.Equal(t, 40, caster.GetStat(player.StatMagicPoints))
	assert.Equal(t, 85, caster.GetStat(player.StatHealth))

	// Mastery below 50 advances by 2 per successful cast
	row, err := f.spellbook.Get(context.Background(), "caster-1", "spell-heal")
	require.NoError(t, err)
	assert.Equal(t, 2, row.Mastery)
	assert.Equal(t, 1, row.TimesCast)
}

func TestCastSpell_FailedRollStillPaysCosts(t *testing.T) {
	f := newCastFixture(t)
	f.createCaster(t)
	f.learn(t, "caster-1", "spell-heal")
	f.roller.SetRolls([]int{90})

	result, err := f.svc.CastSpell(context.Background(), &CastInput{
		CasterID:      "caster-1",
		SpellIDOrName: "spell-heal",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.True(t, result.CostsPaid)
	assert.Equal(t, 90, result.Roll)
	assert.Contains(t, result.Message, "fumble")

	caster := f.getCaster(t)
	assert.Equal(t, 40, caster.GetStat(player.StatMagicPoints))
	assert.Equal(t, 60, caster.GetStat(player.StatHealth), "no effect on a failed roll")
}

func TestCastSpell_RejectionsBeforeAnyCost(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, f *castFixture, caster *player.Player)
		spell   string
		wantMsg string
	}{
		{
			name:    "unknown spell",
			setup:   func(t *testing.T, f *castFixture, caster *player.Player) {},
			spell:   "no-such-spell",
			wantMsg: "There is no spell called",
		},
		{
			name: "insufficient magic points",
			setup: func(t *testing.T, f *castFixture, caster *player.Player) {
				caster.SetStat(player.StatMagicPoints, 5)
				require.NoError(t, f.players.Save(context.Background(), caster))
			},
			spell:   "spell-heal",
			wantMsg: "don't have enough magic points",
		},
		{
			name: "lucidity too low for mythos spell",
			setup: func(t *testing.T, f *castFixture, caster *player.Player) {
				f.learn(t, caster.ID, "spell-voorish")
				caster.SetStat(player.StatLucidity, 5)
				require.NoError(t, f.players.Save(context.Background(), caster))
			},
			spell:   "spell-voorish",
			wantMsg: "Your mind is too frayed",
		},
		{
			name:    "not learned",
			setup:   func(t *testing.T, f *castFixture, caster *player.Player) {},
			spell:   "spell-heal",
			wantMsg: "You have not learned",
		},
		{
			name: "missing materials",
			setup: func(t *testing.T, f *castFixture, caster *player.Player) {
				f.learn(t, caster.ID, "spell-ritual")
			},
			spell:   "spell-ritual",
			wantMsg: "You lack the materials",
		},
		{
			name: "entity spell with no target and no combat",
			setup: func(t *testing.T, f *castFixture, caster *player.Player) {
				f.learn(t, caster.ID, "spell-voorish")
			},
			spell:   "spell-voorish",
			wantMsg: "requires a target",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCastFixture(t)
			caster := f.createCaster(t)
			tt.setup(t, f, caster)

			before := f.getCaster(t)
			result, err := f.svc.CastSpell(context.Background(), &CastInput{
				CasterID:      "caster-1",
				SpellIDOrName: tt.spell,
			})
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.False(t, result.CostsPaid)
			assert.Contains(t, result.Message, tt.wantMsg)

			after := f.getCaster(t)
			assert.Equal(t, before.GetStat(player.StatMagicPoints), after.GetStat(player.StatMagicPoints))
			assert.Equal(t, before.GetStat(player.StatLucidity), after.GetStat(player.StatLucidity))
		})
	}
}

func TestCastSpell_SecondCastWhileCastingRejected(t *testing.T) {
	f := newCastFixture(t)
	f.createCaster(t)
	f.learn(t, "caster-1", "spell-voorish")
	f.learn(t, "caster-1", "spell-heal")
	f.addHorror("")
	f.roller.SetRolls([]int{10})

	started, err := f.svc.CastSpell(context.Background(), &CastInput{
		CasterID:      "caster-1",
		SpellIDOrName: "spell-voorish",
		TargetName:    "horror",
	})
	require.NoError(t, err)
	require.True(t, started.Started)
	assert.True(t, f.svc.IsCasting("caster-1"))

	second, err := f.svc.CastSpell(context.Background(), &CastInput{
		CasterID:      "caster-1",
		SpellIDOrName: "spell-heal",
	})
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Contains(t, second.Message, "already casting")
}

func TestCastSpell_TimedCastCompletesExactlyOnce(t *testing.T) {
	f := newCastFixture(t)
	f.createCaster(t)
	f.learn(t, "caster-1", "spell-voorish")
	f.addHorror("")
	f.roller.SetRolls([]int{10})

	result, err := f.svc.CastSpell(context.Background(), &CastInput{
		CasterID:      "caster-1",
		SpellIDOrName: "spell-voorish",
		TargetName:    "horror",
	})
	require.NoError(t, err)
	require.True(t, result.Started)
	assert.Contains(t, result.Message, "You begin casting")

	// Costs are deferred until completion
	assert.Equal(t, 50, f.getCaster(t).GetStat(player.StatMagicPoints))

	// 4.9 of 5 seconds elapsed: still casting
	f.clock.tick = 49
	require.NoError(t, f.svc.CheckCastingProgress(context.Background()))
	assert.True(t, f.svc.IsCasting("caster-1"))
	assert.Zero(t, f.world.damage["npc-1"])

	// Tick 50 crosses the duration
	f.clock.tick = 50
	require.NoError(t, f.svc.CheckCastingProgress(context.Background()))
	assert.False(t, f.svc.IsCasting("caster-1"))
	assert.Equal(t, 30, f.world.damage["npc-1"])

	caster := f.getCaster(t)
	assert.Equal(t, 30, caster.GetStat(player.StatMagicPoints))
	assert.Equal(t, 45, caster.GetStat(player.StatLucidity))
	assert.Equal(t, 2, caster.GetStat(player.StatCorruption))

	// Further sweeps find nothing to complete and apply nothing twice
	f.clock.tick = 60
	require.NoError(t, f.svc.CheckCastingProgress(context.Background()))
	assert.Equal(t, 30, f.world.damage["npc-1"])
	assert.Equal(t, 30, f.getCaster(t).GetStat(player.StatMagicPoints))
}

func TestCastSpell_CombatHoldsCastUntilTurn(t *testing.T) {
	f := newCastFixture(t)
	f.createCaster(t)
	f.learn(t, "caster-1", "spell-voorish")
	f.addHorror("caster-1")
	f.world.session.CurrentTurnID = "npc-1"
	f.world.session.NextTurnTick = 80
	f.roller.SetRolls([]int{10})

	result, err := f.svc.CastSpell(context.Background(), &CastInput{
		CasterID:      "caster-1",
		SpellIDOrName: "spell-voorish",
		TargetName:    "horror",
	})
	require.NoError(t, err)
	require.True(t, result.Started)
	assert.Contains(t, result.Message, "holding the pattern")

	state, ok := f.svc.CastingSnapshot("caster-1")
	require.True(t, ok)
	require.NotNil(t, state.NextEligibleTick)
	assert.Equal(t, int64(80), *state.NextEligibleTick)

	// Frozen until the turn arrives
	f.clock.tick = 79
	require.NoError(t, f.svc.CheckCastingProgress(context.Background()))
	assert.True(t, f.svc.IsCasting("caster-1"))

	// Turn at 80, 5 second cast, complete at tick 130
	f.clock.tick = 129
	require.NoError(t, f.svc.CheckCastingProgress(context.Background()))
	assert.True(t, f.svc.IsCasting("caster-1"))

	f.clock.tick = 130
	require.NoError(t, f.svc.CheckCastingProgress(context.Background()))
	assert.False(t, f.svc.IsCasting("caster-1"))
	assert.Equal(t, 30, f.world.damage["npc-1"])
}

func TestCastSpell_StaleCombatTurnFallsBackOneInterval(t *testing.T) {
	f := newCastFixture(t)
	f.createCaster(t)
	f.learn(t, "caster-1", "spell-voorish")
	f.addHorror("caster-1")
	f.world.session.CurrentTurnID = "npc-1"
	f.world.session.NextTurnTick = 0 // stale advertised turn
	f.clock.tick = 10
	f.roller.SetRolls([]int{10})

	result, err := f.svc.CastSpell(context.Background(), &CastInput{
		CasterID:      "caster-1",
		SpellIDOrName: "spell-voorish",
		TargetName:    "horror",
	})
	require.NoError(t, err)
	require.True(t, result.Started)

	state, ok := f.svc.CastingSnapshot("caster-1")
	require.True(t, ok)
	require.NotNil(t, state.NextEligibleTick)
	assert.Equal(t, int64(70), *state.NextEligibleTick)
}

func TestCastSpell_AutoTargetsCombatOpponent(t *testing.T) {
	f := newCastFixture(t)
	f.createCaster(t)
	f.learn(t, "caster-1", "spell-voorish")
	f.addHorror("caster-1")
	f.roller.SetRolls([]int{10})

	// No target name supplied; the combat opponent is the implicit target
	result, err := f.svc.CastSpell(context.Background(), &CastInput{
		CasterID:      "caster-1",
		SpellIDOrName: "spell-voorish",
	})
	require.NoError(t, err)
	require.True(t, result.Started)
	assert.Equal(t, "npc-1", result.TargetID)
}

func TestInterruptCasting_LuckSavesTheCosts(t *testing.T) {
	f := newCastFixture(t)
	f.createCaster(t)
	f.learn(t, "caster-1", "spell-voorish")
	f.addHorror("")
	f.roller.SetRolls([]int{10, 20}) // success roll, then luck roll 20 <= LUK 30

	_, err := f.svc.CastSpell(context.Background(), &CastInput{
		CasterID:      "caster-1",
		SpellIDOrName: "spell-voorish",
		TargetName:    "horror",
	})
	require.NoError(t, err)
	require.True(t, f.svc.IsCasting("caster-1"))

	result, err := f.svc.InterruptCasting(context.Background(), "caster-1")
	require.NoError(t, err)
	assert.True(t, result.Interrupted)
	assert.False(t, result.MPLost)
	assert.False(t, f.svc.IsCasting("caster-1"))

	caster := f.getCaster(t)
	assert.Equal(t, 50, caster.GetStat(player.StatMagicPoints))
	assert.Equal(t, 60, caster.GetStat(player.StatLucidity))
}

func TestInterruptCasting_FailedLuckDrainsTheCosts(t *testing.T) {
	f := newCastFixture(t)
	f.createCaster(t)
	f.learn(t, "caster-1", "spell-voorish")
	f.addHorror("")
	f.roller.SetRolls([]int{10, 90}) // success roll, then luck roll 90 > LUK 30

	_, err := f.svc.CastSpell(context.Background(), &CastInput{
		CasterID:      "caster-1",
		SpellIDOrName: "spell-voorish",
		TargetName:    "horror",
	})
	require.NoError(t, err)

	result, err := f.svc.InterruptCasting(context.Background(), "caster-1")
	require.NoError(t, err)
	assert.True(t, result.Interrupted)
	assert.True(t, result.MPLost)
	assert.False(t, f.svc.IsCasting("caster-1"))

	caster := f.getCaster(t)
	assert.Equal(t, 30, caster.GetStat(player.StatMagicPoints))
	assert.Equal(t, 45, caster.GetStat(player.StatLucidity))
	assert.Equal(t, 2, caster.GetStat(player.StatCorruption))

	// The effect never fires either way
	assert.Zero(t, f.world.damage["npc-1"])
}

func TestInterruptCasting_NotCasting(t *testing.T) {
	f := newCastFixture(t)
	f.createCaster(t)

	result, err := f.svc.InterruptCasting(context.Background(), "caster-1")
	require.NoError(t, err)
	assert.False(t, result.Interrupted)
	assert.Contains(t, result.Message, "not casting")
}

func TestCanCast(t *testing.T) {
	f := newCastFixture(t)
	f.createCaster(t)
	f.learn(t, "caster-1", "spell-heal")

	ok, reason, err := f.svc.CanCast(context.Background(), "caster-1", "Minor Mending")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, reason)

	ok, reason, err = f.svc.CanCast(context.Background(), "caster-1", "spell-voorish")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, reason, "You have not learned")
}
