package casting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
)

func TestStateTable_StartRejectsSecondCast(t *testing.T) {
	table := newStateTable(0.1)

	err := table.start(&CastingState{CasterID: "caster-1", SpellID: "spell-a", DurationSeconds: 5})
	require.NoError(t, err)

	err = table.start(&CastingState{CasterID: "caster-1", SpellID: "spell-b", DurationSeconds: 3})
	require.Error(t, err)
	assert.True(t, apperr.IsAlreadyExists(err))

	// The original entry survives untouched
	state, ok := table.snapshot("caster-1")
	require.True(t, ok)
	assert.Equal(t, "spell-a", state.SpellID)
}

func TestStateTable_ProgressCountdown(t *testing.T) {
	table := newStateTable(0.1)

	err := table.start(&CastingState{
		CasterID:        "caster-1",
		SpellID:         "spell-a",
		DurationSeconds: 5,
		StartTick:       0,
	})
	require.NoError(t, err)

	// 49 ticks at 0.1s/tick is 4.9 seconds elapsed
	remaining, complete, ok := table.progress("caster-1", 49)
	require.True(t, ok)
	assert.False(t, complete)
	assert.InDelta(t, 0.1, remaining, 1e-9)

	// Tick 50 crosses the 5 second duration
	remaining, complete, ok = table.progress("caster-1", 50)
	require.True(t, ok)
	assert.True(t, complete)
	assert.Zero(t, remaining)
}

func TestStateTable_ProgressAfterRemovalIsNoOp(t *testing.T) {
	table := newStateTable(0.1)

	err := table.start(&CastingState{CasterID: "caster-1", SpellID: "spell-a", DurationSeconds: 1})
	require.NoError(t, err)

	state, ok := table.complete("caster-1")
	require.True(t, ok)
	assert.Equal(t, "spell-a", state.SpellID)

	// A second completion and any further progress find nothing
	_, ok = table.complete("caster-1")
	assert.False(t, ok)

	_, complete, ok := table.progress("caster-1", 1000)
	assert.False(t, ok)
	assert.False(t, complete)
}

func TestStateTable_PendingTurnFreezesCountdown(t *testing.T) {
	table := newStateTable(0.1)

	eligible := int64(80)
	err := table.start(&CastingState{
		CasterID:         "caster-1",
		SpellID:          "spell-a",
		DurationSeconds:  5,
		StartTick:        10,
		NextEligibleTick: &eligible,
	})
	require.NoError(t, err)

	// Frozen: no time passes before the eligible tick
	remaining, complete, ok := table.progress("caster-1", 79)
	require.True(t, ok)
	assert.False(t, complete)
	assert.InDelta(t, 5.0, remaining, 1e-9)

	// The countdown restarts from the eligible tick, not the start tick
	remaining, complete, ok = table.progress("caster-1", 80)
	require.True(t, ok)
	assert.False(t, complete)
	assert.InDelta(t, 5.0, remaining, 1e-9)

	state, found := table.snapshot("caster-1")
	require.True(t, found)
	assert.Nil(t, state.NextEligibleTick)
	assert.Equal(t, int64(80), state.StartTick)

	remaining, complete, ok = table.progress("caster-1", 130)
	require.True(t, ok)
	assert.True(t, complete)
	assert.Zero(t, remaining)
}

func TestStateTable_ActiveCastersSorted(t *testing.T) {
	table := newStateTable(0.1)

	for _, id := range []string{"charlie", "alice", "bob"} {
		require.NoError(t, table.start(&CastingState{CasterID: id, SpellID: "spell-a", DurationSeconds: 1}))
	}

	assert.Equal(t, []string{"alice", "bob", "charlie"}, table.activeCasters())
}

func TestStateTable_SnapshotIsACopy(t *testing.T) {
	table := newStateTable(0.1)

	eligible := int64(40)
	require.NoError(t, table.start(&CastingState{
		CasterID:         "caster-1",
		SpellID:          "spell-a",
		DurationSeconds:  5,
		NextEligibleTick: &eligible,
	}))

	snap, ok := table.snapshot("caster-1")
	require.True(t, ok)

	snap.SpellID = "mutated"
	*snap.NextEligibleTick = 9999

	state, ok := table.snapshot("caster-1")
	require.True(t, ok)
	assert.Equal(t, "spell-a", state.SpellID)
	assert.Equal(t, int64(40), *state.NextEligibleTick)
}
