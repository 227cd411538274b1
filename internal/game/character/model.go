// Package character defines the character domain model and pure creation logic.
package character

import (
	"time"

	"github.com/google/uuid"

	"github.com/calder-games/progression/internal/game/ability"
	"github.com/calder-games/progression/internal/game/abilityeffect"
)

// Character represents a player character's in-memory state.
//
// Abilities holds the point-allocation engine state; Effects holds the
// independently-tracked per-ability effect metadata. Both live for the
// character's lifetime.
type Character struct {
	ID    uuid.UUID
	Name  string
	Level int

	Abilities *ability.Profile
	Effects   *abilityeffect.Component

	CreatedAt time.Time
	UpdatedAt time.Time
}
