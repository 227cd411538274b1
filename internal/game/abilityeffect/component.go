package abilityeffect

import (
	"go.uber.org/zap"

	"github.com/calder-games/progression/internal/game/ability"
)

// Component aggregates one effect store per ability category, mirroring the
// roster of the progression engine while tracking its own unlock/level
// state. Not safe for concurrent use.
type Component struct {
	martial  *Store[ability.MartialID]
	magical  *Store[ability.MagicalID]
	crafting *Store[ability.CraftingID]
	survival *Store[ability.SurvivalID]
	stealth  *Store[ability.StealthID]
}

// NewComponent builds a component with zero-valued effect data for every
// ability in every category. A nil log falls back to zap.NewNop().
func NewComponent(log *zap.Logger) *Component {
	return &Component{
		martial:  NewStore(ability.KindMartial, ability.MartialIDs(), DefaultMaxLevel, log),
		magical:  NewStore(ability.KindMagical, ability.MagicalIDs(), DefaultMaxLevel, log),
		crafting: NewStore(ability.KindCrafting, ability.CraftingIDs(), DefaultMaxLevel, log),
		survival: NewStore(ability.KindSurvival, ability.SurvivalIDs(), DefaultMaxLevel, log),
		stealth:  NewStore(ability.KindStealth, ability.StealthIDs(), DefaultMaxLevel, log),
	}
}

// Martial returns the martial effect store.
func (c *Component) Martial() *Store[ability.MartialID] { return c.martial }

// Magical returns the magical effect store.
func (c *Component) Magical() *Store[ability.MagicalID] { return c.magical }

// Crafting returns the crafting effect store.
func (c *Component) Crafting() *Store[ability.CraftingID] { return c.crafting }

// Survival returns the survival effect store.
func (c *Component) Survival() *Store[ability.SurvivalID] { return c.survival }

// Stealth returns the stealth effect store.
func (c *Component) Stealth() *Store[ability.StealthID] { return c.stealth }
