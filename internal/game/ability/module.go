// Package ability implements per-character ability progression: point
// allocation against per-ability and per-character budgets, unlock state
// derived from active points, and structural equality across categories.
package ability

import "fmt"

// DefaultMaxPoint is the per-ability point cap a Module starts with and
// returns to on Reset.
const DefaultMaxPoint = 5

// Module is the mutable progression state of a single ability.
//
// Point, MaxPoint, and AllocatedPoint are exported for inspection and
// editor tooling; the unlock flag is derived from Point and can only
// change through the mutation methods. Callers that write the exported
// fields directly are responsible for keeping Point within both caps.
// The methods always restore the invariants:
//
//	0 <= Point <= MaxPoint
//	Point <= AllocatedPoint
//	Unlocked() == (Point > 0)
type Module struct {
	// Point is the number of active points currently spent on the ability.
	Point int
	// MaxPoint is the per-ability cap on active points.
	MaxPoint int
	// AllocatedPoint is the budget assigned from the character's pool.
	// Active points never exceed it.
	AllocatedPoint int

	unlocked bool
}

// NewModule returns a locked Module with zero points and the default cap.
//
// Postcondition: Point == 0, AllocatedPoint == 0, MaxPoint == DefaultMaxPoint,
// Unlocked() == false.
func NewModule() *Module {
	return &Module{MaxPoint: DefaultMaxPoint}
}

// Unlocked reports whether the ability has any active points.
//
// Postcondition: result == (Point > 0) if the module has only been
// mutated through methods.
func (m *Module) Unlocked() bool {
	return m.unlocked
}

// Reset unconditionally returns the module to its freshly-constructed
// state, discarding any prior allocation and restoring the default cap.
//
// Postcondition: *m == *NewModule(). Idempotent.
func (m *Module) Reset() {
	m.unlocked = false
	m.Point = 0
	m.AllocatedPoint = 0
	m.MaxPoint = DefaultMaxPoint
}

// IncreasePoint spends one active point if the module is below both its
// per-ability cap and its allocated budget. It reports whether state
// changed; an attempt blocked by either guard is a no-op.
func (m *Module) IncreasePoint() bool {
	if m.Point >= m.MaxPoint || m.Point >= m.AllocatedPoint {
		return false
	}
	m.Point++
	m.updateUnlockStatus()
	return true
}

// DecreasePoint refunds one active point if any are spent. It reports
// whether state changed.
func (m *Module) DecreasePoint() bool {
	if m.Point <= 0 {
		return false
	}
	m.Point--
	m.updateUnlockStatus()
	return true
}

// SetAllocatedPoint assigns the budget available to this ability from the
// character's pool. If the new budget is below the current active points,
// Point is clamped down and the unlock flag recomputed.
//
// Precondition: n >= 0.
func (m *Module) SetAllocatedPoint(n int) error {
	if n < 0 {
		return fmt.Errorf("ability: Module.SetAllocatedPoint: allocated points must be >= 0, got %d", n)
	}
	m.AllocatedPoint = n
	m.clampPoint()
	return nil
}

// SetMaxPoint changes the per-ability cap, clamping active points down if
// the new cap is below them.
//
// Precondition: n >= 1.
func (m *Module) SetMaxPoint(n int) error {
	if n < 1 {
		return fmt.Errorf("ability: Module.SetMaxPoint: max points must be >= 1, got %d", n)
	}
	m.MaxPoint = n
	m.clampPoint()
	return nil
}

// clampPoint re-establishes Point <= min(MaxPoint, AllocatedPoint) and the
// derived unlock flag after a cap or budget change.
func (m *Module) clampPoint() {
	if m.Point > m.MaxPoint {
		m.Point = m.MaxPoint
	}
	if m.Point > m.AllocatedPoint {
		m.Point = m.AllocatedPoint
	}
	if m.Point < 0 {
		m.Point = 0
	}
	m.updateUnlockStatus()
}

func (m *Module) updateUnlockStatus() {
	m.unlocked = m.Point > 0
}
