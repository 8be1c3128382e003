package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/biolab/internal/log"
)

func TestAttackBoss_InactiveIsNoop(t *testing.T) {
	g, _ := newTestGame(t)
	atp := placeInPool(t, g, "ATP")
	selectCards(t, g, atp...)

	result, err := g.AttackBoss()
	require.NoError(t, err)
	assert.Equal(t, AttackInactive, result)
	assert.Len(t, g.State.Pool, 1)
}

func TestAttackBoss_NoAmmoIsNoop(t *testing.T) {
	g, _ := newTestGame(t)
	activateBoss(g)
	placeInPool(t, g, "ATP") // not selected
	other := placeInPool(t, g, "Glucose")
	selectCards(t, g, other...)
	before := g.State.LastAction

	result, err := g.AttackBoss()
	require.NoError(t, err)
	assert.Equal(t, AttackNoAmmo, result)
	assert.Equal(t, 100, g.State.Boss.HP)
	assert.Len(t, g.State.Pool, 2)
	assert.Equal(t, before, g.State.LastAction)
}

// Boss at 100 hp, three selected ATP cards: hp drops to 40.
func TestAttackBoss_ThreeATPExample(t *testing.T) {
	g, logger := newTestGame(t)
	activateBoss(g)
	ammo := placeInPool(t, g, "ATP", "ATP", "ATP")
	spare := placeInPool(t, g, "ATP")
	selectCards(t, g, ammo...)

	result, err := g.AttackBoss()
	require.NoError(t, err)
	assert.Equal(t, AttackHit, result)
	assert.Equal(t, 40, g.State.Boss.HP)
	require.Len(t, g.State.Pool, 1)
	assert.Equal(t, spare[0].ID, g.State.Pool[0].ID, "unselected ammo stays")
	assert.Equal(t, "💥 Used 3 ATP cards | Boss HP: 40", g.State.LastAction)
	assert.Len(t, logger.EventsOfType(log.EventAttack), 1)
	assert.Equal(t, StatusPlaying, g.State.Status)
}

func TestAttackBoss_DamageScalesWithAmmo(t *testing.T) {
	for n := 1; n <= 4; n++ {
		g, _ := newTestGame(t)
		activateBoss(g)
		selectCards(t, g, placeInPool(t, g, repeat("ATP", n)...)...)

		_, err := g.AttackBoss()
		require.NoError(t, err)
		assert.Equal(t, 100-20*n, g.State.Boss.HP, "%d ammo", n)
		assert.Empty(t, g.State.Pool)
	}
}

func TestAttackBoss_DefeatWinsTheGame(t *testing.T) {
	g, logger := newTestGame(t)
	activateBoss(g)
	selectCards(t, g, placeInPool(t, g, "ATP", "ATP")...)
	_, err := g.AttackBoss()
	require.NoError(t, err)

	selectCards(t, g, placeInPool(t, g, "ATP", "ATP", "ATP", "ATP")...)
	result, err := g.AttackBoss()
	require.NoError(t, err)
	assert.Equal(t, AttackDefeated, result)
	assert.Equal(t, -20, g.State.Boss.HP)
	assert.True(t, g.State.Boss.Defeated)
	assert.Equal(t, []string{"Homework Pass"}, g.State.Inventory)
	assert.Equal(t, "🎉 DEFEATED BOSS! Got [Homework Pass]", g.State.LastAction)
	assert.Equal(t, StatusVictory, g.State.Status)
	assert.Len(t, logger.EventsOfType(log.EventVictory), 1)

	snap := g.Snapshot()
	assert.True(t, snap.Celebrate)
	assert.True(t, snap.HasBossReward)

	_, err = g.DrawCard()
	assert.True(t, errors.Is(err, ErrVictory))
	assert.True(t, errors.Is(err, ErrGameFinished))
}

func repeat(name string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = name
	}
	return out
}
