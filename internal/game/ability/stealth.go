package ability

import (
	"fmt"

	"go.uber.org/zap"
)

// StealthID identifies one stealth ability. StealthNone is the selection
// sentinel and never appears in a category roster.
type StealthID uint8

const (
	StealthNone StealthID = iota
	StealthSneak
	StealthPickpocket
	StealthLockpicking
	StealthBackstab
	StealthCamouflage
	StealthSilentMovement
	StealthEvasion
	StealthDisguise
	StealthTrapSetting
	stealthIDCount
)

var stealthNames = map[StealthID]string{
	StealthSneak:          "sneak",
	StealthPickpocket:     "pickpocket",
	StealthLockpicking:    "lockpicking",
	StealthBackstab:       "backstab",
	StealthCamouflage:     "camouflage",
	StealthSilentMovement: "silent_movement",
	StealthEvasion:        "evasion",
	StealthDisguise:       "disguise",
	StealthTrapSetting:    "trap_setting",
}

// String returns the catalog id for the ability.
func (id StealthID) String() string {
	if n, ok := stealthNames[id]; ok {
		return n
	}
	return fmt.Sprintf("stealth(%d)", uint8(id))
}

// ParseStealthID resolves a catalog id like "silent_movement".
func ParseStealthID(s string) (StealthID, error) {
	for id, n := range stealthNames {
		if n == s {
			return id, nil
		}
	}
	return StealthNone, fmt.Errorf("ability: ParseStealthID: unknown stealth ability %q", s)
}

// StealthIDs returns every valid stealth identifier in declaration order.
func StealthIDs() []StealthID {
	ids := make([]StealthID, 0, stealthIDCount-StealthNone-1)
	for id := StealthNone + 1; id < stealthIDCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// NewStealthCategory builds the stealth category with a default module for
// every stealth identifier.
func NewStealthCategory(log *zap.Logger) *Category[StealthID] {
	return NewCategory(KindStealth, StealthNone, stealthIDCount, log)
}
