package ability

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors returned by Validate and every identifier-addressed
// operation. Both are NotFound conditions; an empty category signals a
// configuration problem upstream rather than a bad identifier.
var (
	ErrEmptyCategory  = errors.New("category has no abilities")
	ErrUnknownAbility = errors.New("unknown ability identifier")
)

// IdentifierType constrains the identifier enumeration types a Category can
// be keyed by: small unsigned enums with a printable name. Each enumeration
// reserves a "none" sentinel below its first identifier and a count sentinel
// above its last; neither sentinel is ever a category key.
type IdentifierType interface {
	~uint8
	fmt.Stringer
}

// Category is the fixed-roster container for one ability category. The key
// set is established at construction and never grows or shrinks; individual
// modules are mutated in place. Category is not safe for concurrent use.
type Category[K IdentifierType] struct {
	kind      Kind
	abilities map[K]*Module
	log       *zap.Logger
}

// NewCategory builds a category holding a default Module for every
// identifier strictly between the none and count sentinels.
//
// Precondition: none < count within the enumeration.
// Postcondition: Len() == count-none-1 and every key maps to *NewModule().
// A nil log falls back to zap.NewNop().
func NewCategory[K IdentifierType](kind Kind, none, count K, log *zap.Logger) *Category[K] {
	if log == nil {
		log = zap.NewNop()
	}
	hint := int(count) - int(none) - 1
	if hint < 0 {
		hint = 0
	}
	abilities := make(map[K]*Module, hint)
	for id := none + 1; id < count; id++ {
		abilities[id] = NewModule()
	}
	return &Category[K]{kind: kind, abilities: abilities, log: log}
}

// Kind returns the category's kind.
func (c *Category[K]) Kind() Kind {
	return c.kind
}

// Len returns the number of abilities in the roster.
func (c *Category[K]) Len() int {
	return len(c.abilities)
}

// Validate checks that id addresses an ability in this category. It returns
// an error wrapping ErrEmptyCategory or ErrUnknownAbility and logs the
// failure; callers must treat a non-nil error as "no mutation happened".
func (c *Category[K]) Validate(id K) error {
	if len(c.abilities) == 0 {
		c.log.Error("ability category is empty",
			zap.Stringer("category", c.kind),
		)
		return fmt.Errorf("ability: %s: %w", c.kind, ErrEmptyCategory)
	}
	if _, ok := c.abilities[id]; !ok {
		c.log.Error("ability identifier not found in category",
			zap.Stringer("category", c.kind),
			zap.Stringer("ability", id),
		)
		return fmt.Errorf("ability: %s: %q: %w", c.kind, id.String(), ErrUnknownAbility)
	}
	return nil
}

// Ability returns the live Module for id, forcing callers to handle the
// absent case instead of receiving a silently defaulted value.
//
// Postcondition: module is non-nil iff err is nil.
func (c *Category[K]) Ability(id K) (*Module, error) {
	if err := c.Validate(id); err != nil {
		return nil, err
	}
	return c.abilities[id], nil
}

// ResetAbility returns the named module to its default locked state.
// On a validation failure nothing changes.
func (c *Category[K]) ResetAbility(id K) error {
	if err := c.Validate(id); err != nil {
		return err
	}
	c.abilities[id].Reset()
	return nil
}

// IncreaseAbility attempts to spend one point on the named ability.
// changed reports whether the module actually moved; a false with a nil
// error means the attempt was blocked by the module's cap or budget.
func (c *Category[K]) IncreaseAbility(id K) (changed bool, err error) {
	if err := c.Validate(id); err != nil {
		return false, err
	}
	return c.abilities[id].IncreasePoint(), nil
}

// DecreaseAbility attempts to refund one point from the named ability path.
// changed reports whether the module actually moved.
func (c *Category[K]) DecreaseAbility(id K) (changed bool, err error) {
	if err := c.Validate(id); err != nil {
		return false, err
	}
	return c.abilities[id].DecreasePoint(), nil
}

// Abilities returns the live mapping for in-place editing. Mutating modules
// through it is supported; adding or removing keys is not and breaks the
// roster invariant.
func (c *Category[K]) Abilities() map[K]*Module {
	return c.abilities
}

// Snapshot returns a value copy of every module, safe to retain across
// later mutations.
func (c *Category[K]) Snapshot() map[K]Module {
	out := make(map[K]Module, len(c.abilities))
	for id, m := range c.abilities {
		out[id] = *m
	}
	return out
}

// SetAbilities replaces the whole roster. The new map's key set must match
// the current roster exactly and every module must be non-nil; a partial or
// extended map is rejected and nothing changes. Modules are copied, so the
// category keeps exclusive ownership of its values.
func (c *Category[K]) SetAbilities(abilities map[K]*Module) error {
	if len(abilities) != len(c.abilities) {
		return fmt.Errorf("ability: %s: SetAbilities: got %d abilities, roster requires %d",
			c.kind, len(abilities), len(c.abilities))
	}
	for id := range c.abilities {
		m, ok := abilities[id]
		if !ok {
			return fmt.Errorf("ability: %s: SetAbilities: missing ability %q", c.kind, id.String())
		}
		if m == nil {
			return fmt.Errorf("ability: %s: SetAbilities: nil module for ability %q", c.kind, id.String())
		}
	}
	for id, m := range abilities {
		cp := *m
		c.abilities[id] = &cp
	}
	return nil
}

// Equal reports structural equality: identical key sets and, for every key,
// equal module values across all four fields. A size mismatch short-circuits.
func (c *Category[K]) Equal(other *Category[K]) bool {
	if other == nil {
		return false
	}
	if len(c.abilities) != len(other.abilities) {
		return false
	}
	for id, m := range c.abilities {
		om, ok := other.abilities[id]
		if !ok || *m != *om {
			return false
		}
	}
	return true
}

// TotalPoints returns the sum of active points across the roster.
func (c *Category[K]) TotalPoints() int {
	total := 0
	for _, m := range c.abilities {
		total += m.Point
	}
	return total
}

// TotalAllocated returns the sum of allocated budgets across the roster.
func (c *Category[K]) TotalAllocated() int {
	total := 0
	for _, m := range c.abilities {
		total += m.AllocatedPoint
	}
	return total
}
