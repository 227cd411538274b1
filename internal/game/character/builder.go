package character

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/calder-games/progression/internal/game/ability"
	"github.com/calder-games/progression/internal/game/abilityeffect"
	"github.com/calder-games/progression/internal/game/progression"
)

// Build constructs a new Character at the given level with a fully
// populated ability profile and effect component. The leveler stamps the
// level's point pool ceiling onto the profile; no points are allocated or
// spent.
//
// Precondition: name must be non-empty, level >= 1, leveler non-nil.
// Postcondition: Returns a Character whose profile satisfies
// MaxAbilityPoints() == leveler.MaxPointsAt(level), or a non-nil error.
func Build(name string, level int, leveler *progression.Leveler, log *zap.Logger) (*Character, error) {
	if name == "" {
		return nil, errors.New("character name must not be empty")
	}
	if level < 1 {
		return nil, fmt.Errorf("character level must be >= 1, got %d", level)
	}
	if leveler == nil {
		return nil, errors.New("leveler must not be nil")
	}

	profile := ability.NewProfile(log)
	leveler.Apply(profile, level)

	now := time.Now()
	return &Character{
		ID:        uuid.New(),
		Name:      name,
		Level:     level,
		Abilities: profile,
		Effects:   abilityeffect.NewComponent(log),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// LevelUp advances the character one level and re-stamps the pool ceiling.
//
// Precondition: c.Abilities must be non-nil.
// Postcondition: Returns the grant for the new level; UpdatedAt is bumped.
func LevelUp(c *Character, leveler *progression.Leveler) (progression.Grant, error) {
	if c.Abilities == nil {
		return progression.Grant{}, errors.New("character has no ability profile")
	}
	if leveler == nil {
		return progression.Grant{}, errors.New("leveler must not be nil")
	}
	if c.Level >= leveler.MaxLevel() {
		return progression.Grant{}, fmt.Errorf("character %q is already at max level %d", c.Name, leveler.MaxLevel())
	}
	c.Level++
	grant := leveler.Apply(c.Abilities, c.Level)
	c.UpdatedAt = time.Now()
	return grant, nil
}
