package ability

import "go.uber.org/zap"

// Profile is the per-character aggregate of all five ability categories plus
// the character-wide summary counters.
//
// The counters are independent storage, not derived from category contents:
// an external progression system decides how many points a character has
// earned, and keeping them consistent with the per-module sums is that
// caller's responsibility. The progression package provides reconciliation
// helpers for auditing.
type Profile struct {
	martial  *Category[MartialID]
	magical  *Category[MagicalID]
	crafting *Category[CraftingID]
	survival *Category[SurvivalID]
	stealth  *Category[StealthID]

	abilityPoints    int
	maxAbilityPoints int
	allocatedPoints  int
}

// NewProfile builds a profile with every category fully populated with
// default modules and all counters at zero. A nil log falls back to
// zap.NewNop().
func NewProfile(log *zap.Logger) *Profile {
	return &Profile{
		martial:  NewMartialCategory(log),
		magical:  NewMagicalCategory(log),
		crafting: NewCraftingCategory(log),
		survival: NewSurvivalCategory(log),
		stealth:  NewStealthCategory(log),
	}
}

// Martial returns the martial ability category.
func (p *Profile) Martial() *Category[MartialID] { return p.martial }

// Magical returns the magical ability category.
func (p *Profile) Magical() *Category[MagicalID] { return p.magical }

// Crafting returns the crafting ability category.
func (p *Profile) Crafting() *Category[CraftingID] { return p.crafting }

// Survival returns the survival ability category.
func (p *Profile) Survival() *Category[SurvivalID] { return p.survival }

// Stealth returns the stealth ability category.
func (p *Profile) Stealth() *Category[StealthID] { return p.stealth }

// AbilityPoints returns the currently active total across the character.
func (p *Profile) AbilityPoints() int { return p.abilityPoints }

// SetAbilityPoints stores the active total. Pure value storage; no
// cross-validation against category contents.
func (p *Profile) SetAbilityPoints(n int) { p.abilityPoints = n }

// MaxAbilityPoints returns the hard ceiling on the character's pool.
func (p *Profile) MaxAbilityPoints() int { return p.maxAbilityPoints }

// SetMaxAbilityPoints stores the pool ceiling.
func (p *Profile) SetMaxAbilityPoints(n int) { p.maxAbilityPoints = n }

// AllocatedPoints returns the points distributed from the pool to
// abilities, spent or not.
func (p *Profile) AllocatedPoints() int { return p.allocatedPoints }

// SetAllocatedPoints stores the distributed total.
func (p *Profile) SetAllocatedPoints(n int) { p.allocatedPoints = n }

// Equal reports structural equality over all five categories and the three
// summary counters. Any mismatch yields inequality.
func (p *Profile) Equal(other *Profile) bool {
	if other == nil {
		return false
	}
	return p.martial.Equal(other.martial) &&
		p.magical.Equal(other.magical) &&
		p.crafting.Equal(other.crafting) &&
		p.survival.Equal(other.survival) &&
		p.stealth.Equal(other.stealth) &&
		p.abilityPoints == other.abilityPoints &&
		p.maxAbilityPoints == other.maxAbilityPoints &&
		p.allocatedPoints == other.allocatedPoints
}

// PointAdjuster is the capability every category implements for
// identifier-addressed point adjustment. Profile-level dispatch accepts any
// category-like type satisfying it.
type PointAdjuster[K IdentifierType] interface {
	IncreaseAbility(id K) (changed bool, err error)
	DecreaseAbility(id K) (changed bool, err error)
}

// IncreaseAbilityPoint spends one point on the named ability in any
// category supporting point adjustment.
func IncreaseAbilityPoint[K IdentifierType](cat PointAdjuster[K], id K) (changed bool, err error) {
	return cat.IncreaseAbility(id)
}

// DecreaseAbilityPoint refunds one point from the named ability in any
// category supporting point adjustment.
func DecreaseAbilityPoint[K IdentifierType](cat PointAdjuster[K], id K) (changed bool, err error) {
	return cat.DecreaseAbility(id)
}
