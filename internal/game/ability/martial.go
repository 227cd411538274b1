package ability

import (
	"fmt"

	"go.uber.org/zap"
)

// MartialID identifies one martial ability. MartialNone is the selection
// sentinel and never appears in a category roster.
type MartialID uint8

const (
	MartialNone MartialID = iota
	MartialSwordsmanship
	MartialArchery
	MartialShieldDefense
	MartialDualWielding
	MartialPolearmMastery
	MartialGrappling
	MartialMountedCombat
	MartialBerserk
	MartialDisarm
	MartialCounterAttack
	martialIDCount
)

var martialNames = map[MartialID]string{
	MartialSwordsmanship:  "swordsmanship",
	MartialArchery:        "archery",
	MartialShieldDefense:  "shield_defense",
	MartialDualWielding:   "dual_wielding",
	MartialPolearmMastery: "polearm_mastery",
	MartialGrappling:      "grappling",
	MartialMountedCombat:  "mounted_combat",
	MartialBerserk:        "berserk",
	MartialDisarm:         "disarm",
	MartialCounterAttack:  "counter_attack",
}

// String returns the catalog id for the ability.
func (id MartialID) String() string {
	if n, ok := martialNames[id]; ok {
		return n
	}
	return fmt.Sprintf("martial(%d)", uint8(id))
}

// ParseMartialID resolves a catalog id like "shield_defense".
func ParseMartialID(s string) (MartialID, error) {
	for id, n := range martialNames {
		if n == s {
			return id, nil
		}
	}
	return MartialNone, fmt.Errorf("ability: ParseMartialID: unknown martial ability %q", s)
}

// MartialIDs returns every valid martial identifier in declaration order.
func MartialIDs() []MartialID {
	ids := make([]MartialID, 0, martialIDCount-MartialNone-1)
	for id := MartialNone + 1; id < martialIDCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// NewMartialCategory builds the martial category with a default module for
// every martial identifier.
func NewMartialCategory(log *zap.Logger) *Category[MartialID] {
	return NewCategory(KindMartial, MartialNone, martialIDCount, log)
}
