package progression

import (
	"fmt"

	"github.com/calder-games/progression/internal/game/ability"
)

// Allocate moves n points from the profile's pool into the named ability's
// budget, keeping the profile's allocated counter in step with the module.
// It is atomic: on any error nothing changes.
//
// Precondition: n > 0.
func Allocate[K ability.IdentifierType](p *ability.Profile, cat *ability.Category[K], id K, n int) error {
	if n <= 0 {
		return fmt.Errorf("progression: Allocate: point count must be > 0, got %d", n)
	}
	if p.AllocatedPoints()+n > p.MaxAbilityPoints() {
		return fmt.Errorf("progression: Allocate: allocating %d points exceeds pool ceiling (%d allocated of %d)",
			n, p.AllocatedPoints(), p.MaxAbilityPoints())
	}
	m, err := cat.Ability(id)
	if err != nil {
		return err
	}
	if err := m.SetAllocatedPoint(m.AllocatedPoint + n); err != nil {
		return err
	}
	p.SetAllocatedPoints(p.AllocatedPoints() + n)
	return nil
}

// Deallocate returns n points from the named ability's budget to the pool.
// If the shrunken budget is below the ability's active points, the module
// clamps them and the profile's active counter is re-synced.
//
// Precondition: n > 0 and the ability must have at least n allocated.
func Deallocate[K ability.IdentifierType](p *ability.Profile, cat *ability.Category[K], id K, n int) error {
	if n <= 0 {
		return fmt.Errorf("progression: Deallocate: point count must be > 0, got %d", n)
	}
	m, err := cat.Ability(id)
	if err != nil {
		return err
	}
	if m.AllocatedPoint < n {
		return fmt.Errorf("progression: Deallocate: ability %q has %d allocated, cannot return %d",
			id.String(), m.AllocatedPoint, n)
	}
	if err := m.SetAllocatedPoint(m.AllocatedPoint - n); err != nil {
		return err
	}
	p.SetAllocatedPoints(p.AllocatedPoints() - n)
	p.SetAbilityPoints(SpentPoints(p))
	return nil
}

// SpentPoints sums the active points of every module across all categories.
func SpentPoints(p *ability.Profile) int {
	return p.Martial().TotalPoints() +
		p.Magical().TotalPoints() +
		p.Crafting().TotalPoints() +
		p.Survival().TotalPoints() +
		p.Stealth().TotalPoints()
}

// AllocatedTotal sums the allocated budgets of every module across all
// categories.
func AllocatedTotal(p *ability.Profile) int {
	return p.Martial().TotalAllocated() +
		p.Magical().TotalAllocated() +
		p.Crafting().TotalAllocated() +
		p.Survival().TotalAllocated() +
		p.Stealth().TotalAllocated()
}

// CountersInSync reports whether the profile's summary counters match the
// per-module sums. The counters are independent storage, so drift is
// possible whenever a caller mutates modules without updating them.
func CountersInSync(p *ability.Profile) bool {
	return p.AbilityPoints() == SpentPoints(p) &&
		p.AllocatedPoints() == AllocatedTotal(p)
}

// SyncCounters stamps the per-module sums onto the profile's active and
// allocated counters. The pool ceiling is not touched.
func SyncCounters(p *ability.Profile) {
	p.SetAbilityPoints(SpentPoints(p))
	p.SetAllocatedPoints(AllocatedTotal(p))
}
