package ability

import (
	"fmt"

	"go.uber.org/zap"
)

// CraftingID identifies one crafting ability. CraftingNone is the selection
// sentinel and never appears in a category roster.
type CraftingID uint8

const (
	CraftingNone CraftingID = iota
	CraftingBlacksmithing
	CraftingAlchemy
	CraftingCarpentry
	CraftingCooking
	CraftingTailoring
	CraftingLeatherworking
	CraftingJewelcrafting
	CraftingEngineering
	CraftingEnchanting
	craftingIDCount
)

var craftingNames = map[CraftingID]string{
	CraftingBlacksmithing:  "blacksmithing",
	CraftingAlchemy:        "alchemy",
	CraftingCarpentry:      "carpentry",
	CraftingCooking:        "cooking",
	CraftingTailoring:      "tailoring",
	CraftingLeatherworking: "leatherworking",
	CraftingJewelcrafting:  "jewelcrafting",
	CraftingEngineering:    "engineering",
	CraftingEnchanting:     "enchanting",
}

// String returns the catalog id for the ability.
func (id CraftingID) String() string {
	if n, ok := craftingNames[id]; ok {
		return n
	}
	return fmt.Sprintf("crafting(%d)", uint8(id))
}

// ParseCraftingID resolves a catalog id like "blacksmithing".
func ParseCraftingID(s string) (CraftingID, error) {
	for id, n := range craftingNames {
		if n == s {
			return id, nil
		}
	}
	return CraftingNone, fmt.Errorf("ability: ParseCraftingID: unknown crafting ability %q", s)
}

// CraftingIDs returns every valid crafting identifier in declaration order.
func CraftingIDs() []CraftingID {
	ids := make([]CraftingID, 0, craftingIDCount-CraftingNone-1)
	for id := CraftingNone + 1; id < craftingIDCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// NewCraftingCategory builds the crafting category with a default module
// for every crafting identifier.
func NewCraftingCategory(log *zap.Logger) *Category[CraftingID] {
	return NewCategory(KindCrafting, CraftingNone, craftingIDCount, log)
}
