package abilityeffect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calder-games/progression/internal/game/ability"
	"github.com/calder-games/progression/internal/game/abilityeffect"
)

func newMagicalStore() *abilityeffect.Store[ability.MagicalID] {
	return abilityeffect.NewStore(ability.KindMagical, ability.MagicalIDs(), abilityeffect.DefaultMaxLevel, nil)
}

func TestStore_DefaultsZeroValued(t *testing.T) {
	s := newMagicalStore()
	d := s.Get(ability.MagicalFireball)
	assert.Equal(t, abilityeffect.EffectData{}, d)
	assert.False(t, s.IsUnlocked(ability.MagicalFireball))
}

func TestStore_GetUnknownReturnsZero(t *testing.T) {
	s := newMagicalStore()
	assert.Equal(t, abilityeffect.EffectData{}, s.Get(ability.MagicalID(99)))
	assert.False(t, s.IsUnlocked(ability.MagicalID(99)))
}

func TestStore_SetReplacesData(t *testing.T) {
	s := newMagicalStore()
	s.Set(ability.MagicalTeleport, abilityeffect.EffectData{
		Cooldown:    12.5,
		EnergyCost:  40,
		Description: "Blink to a visible location.",
	})
	d := s.Get(ability.MagicalTeleport)
	assert.Equal(t, 12.5, d.Cooldown)
	assert.Equal(t, 40.0, d.EnergyCost)
}

func TestStore_SetUnknownIsNoOp(t *testing.T) {
	s := newMagicalStore()
	s.Set(ability.MagicalID(99), abilityeffect.EffectData{Cooldown: 1})
	assert.Equal(t, abilityeffect.EffectData{}, s.Get(ability.MagicalID(99)))
}

func TestUnlock_MarksAbility(t *testing.T) {
	s := newMagicalStore()
	s.Unlock(ability.MagicalShadowBolt)
	assert.True(t, s.IsUnlocked(ability.MagicalShadowBolt))

	// Unknown identifier: silent no-op.
	s.Unlock(ability.MagicalID(99))
	assert.False(t, s.IsUnlocked(ability.MagicalID(99)))
}

func TestUpgrade_RequiresUnlock(t *testing.T) {
	s := newMagicalStore()
	s.Upgrade(ability.MagicalEarthquake)
	assert.Equal(t, 0, s.Get(ability.MagicalEarthquake).Level)

	s.Unlock(ability.MagicalEarthquake)
	s.Upgrade(ability.MagicalEarthquake)
	assert.Equal(t, 1, s.Get(ability.MagicalEarthquake).Level)
}

func TestUpgrade_CappedAtMaxLevel(t *testing.T) {
	s := abilityeffect.NewStore(ability.KindMagical, ability.MagicalIDs(), 2, nil)
	s.Unlock(ability.MagicalManaSurge)
	for i := 0; i < 5; i++ {
		s.Upgrade(ability.MagicalManaSurge)
	}
	assert.Equal(t, 2, s.Get(ability.MagicalManaSurge).Level)
}

func TestComponent_AllStoresPopulated(t *testing.T) {
	c := abilityeffect.NewComponent(nil)
	require.NotNil(t, c.Martial())
	require.NotNil(t, c.Magical())
	require.NotNil(t, c.Crafting())
	require.NotNil(t, c.Survival())
	require.NotNil(t, c.Stealth())

	assert.Equal(t, ability.KindMartial, c.Martial().Kind())
	assert.Equal(t, ability.KindStealth, c.Stealth().Kind())

	// Effect unlock state is independent of the progression engine.
	c.Survival().Unlock(ability.SurvivalFirstAid)
	assert.True(t, c.Survival().IsUnlocked(ability.SurvivalFirstAid))
}
