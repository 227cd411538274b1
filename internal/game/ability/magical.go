package ability

import (
	"fmt"

	"go.uber.org/zap"
)

// MagicalID identifies one magical ability. MagicalNone is the selection
// sentinel and never appears in a category roster.
type MagicalID uint8

const (
	MagicalNone MagicalID = iota
	MagicalFireball
	MagicalIceShield
	MagicalLightningStrike
	MagicalArcaneBlast
	MagicalHealingWave
	MagicalTeleport
	MagicalManaSurge
	MagicalFrostNova
	MagicalEarthquake
	MagicalShadowBolt
	magicalIDCount
)

var magicalNames = map[MagicalID]string{
	MagicalFireball:        "fireball",
	MagicalIceShield:       "ice_shield",
	MagicalLightningStrike: "lightning_strike",
	MagicalArcaneBlast:     "arcane_blast",
	MagicalHealingWave:     "healing_wave",
	MagicalTeleport:        "teleport",
	MagicalManaSurge:       "mana_surge",
	MagicalFrostNova:       "frost_nova",
	MagicalEarthquake:      "earthquake",
	MagicalShadowBolt:      "shadow_bolt",
}

// String returns the catalog id for the ability.
func (id MagicalID) String() string {
	if n, ok := magicalNames[id]; ok {
		return n
	}
	return fmt.Sprintf("magical(%d)", uint8(id))
}

// ParseMagicalID resolves a catalog id like "frost_nova".
func ParseMagicalID(s string) (MagicalID, error) {
	for id, n := range magicalNames {
		if n == s {
			return id, nil
		}
	}
	return MagicalNone, fmt.Errorf("ability: ParseMagicalID: unknown magical ability %q", s)
}

// MagicalIDs returns every valid magical identifier in declaration order.
func MagicalIDs() []MagicalID {
	ids := make([]MagicalID, 0, magicalIDCount-MagicalNone-1)
	for id := MagicalNone + 1; id < magicalIDCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// NewMagicalCategory builds the magical category with a default module for
// every magical identifier.
func NewMagicalCategory(log *zap.Logger) *Category[MagicalID] {
	return NewCategory(KindMagical, MagicalNone, magicalIDCount, log)
}
