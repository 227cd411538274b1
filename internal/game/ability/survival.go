package ability

import (
	"fmt"

	"go.uber.org/zap"
)

// SurvivalID identifies one survival ability. SurvivalNone is the selection
// sentinel and never appears in a category roster.
type SurvivalID uint8

const (
	SurvivalNone SurvivalID = iota
	SurvivalTracking
	SurvivalForaging
	SurvivalShelterBuilding
	SurvivalFireStarting
	SurvivalHunting
	SurvivalFishing
	SurvivalFirstAid
	SurvivalNavigation
	SurvivalWaterPurification
	survivalIDCount
)

var survivalNames = map[SurvivalID]string{
	SurvivalTracking:          "tracking",
	SurvivalForaging:          "foraging",
	SurvivalShelterBuilding:   "shelter_building",
	SurvivalFireStarting:      "fire_starting",
	SurvivalHunting:           "hunting",
	SurvivalFishing:           "fishing",
	SurvivalFirstAid:          "first_aid",
	SurvivalNavigation:        "navigation",
	SurvivalWaterPurification: "water_purification",
}

// String returns the catalog id for the ability.
func (id SurvivalID) String() string {
	if n, ok := survivalNames[id]; ok {
		return n
	}
	return fmt.Sprintf("survival(%d)", uint8(id))
}

// ParseSurvivalID resolves a catalog id like "water_purification".
func ParseSurvivalID(s string) (SurvivalID, error) {
	for id, n := range survivalNames {
		if n == s {
			return id, nil
		}
	}
	return SurvivalNone, fmt.Errorf("ability: ParseSurvivalID: unknown survival ability %q", s)
}

// SurvivalIDs returns every valid survival identifier in declaration order.
func SurvivalIDs() []SurvivalID {
	ids := make([]SurvivalID, 0, survivalIDCount-SurvivalNone-1)
	for id := SurvivalNone + 1; id < survivalIDCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// NewSurvivalCategory builds the survival category with a default module
// for every survival identifier.
func NewSurvivalCategory(log *zap.Logger) *Category[SurvivalID] {
	return NewCategory(KindSurvival, SurvivalNone, survivalIDCount, log)
}
