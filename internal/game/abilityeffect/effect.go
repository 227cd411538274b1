// Package abilityeffect manages per-ability effect metadata: cooldowns,
// energy costs, descriptions, and an unlock/level pair tracked
// independently of the point-allocation engine in the ability package.
// The engine never reads this data; gameplay systems own it.
package abilityeffect

import (
	"go.uber.org/zap"

	"github.com/calder-games/progression/internal/game/ability"
)

// DefaultMaxLevel is the level cap applied by Upgrade when a store is
// built with no explicit cap.
const DefaultMaxLevel = 5

// EffectData is the opaque per-ability metadata carried alongside the
// progression state. Cooldown is in seconds.
type EffectData struct {
	Cooldown    float64
	EnergyCost  float64
	Unlocked    bool
	Level       int
	Description string
}

// Store holds EffectData for every identifier of one category. Operations
// on identifiers outside the roster are silent no-ops returning zero
// values; this mirrors the engine's soft-fail policy.
type Store[K ability.IdentifierType] struct {
	kind     ability.Kind
	data     map[K]EffectData
	maxLevel int
	log      *zap.Logger
}

// NewStore builds a store with a zero-valued EffectData entry for every
// identifier in roster.
//
// Precondition: maxLevel >= 1; pass DefaultMaxLevel when in doubt.
// A nil log falls back to zap.NewNop().
func NewStore[K ability.IdentifierType](kind ability.Kind, roster []K, maxLevel int, log *zap.Logger) *Store[K] {
	if log == nil {
		log = zap.NewNop()
	}
	data := make(map[K]EffectData, len(roster))
	for _, id := range roster {
		data[id] = EffectData{}
	}
	return &Store[K]{kind: kind, data: data, maxLevel: maxLevel, log: log}
}

// Kind returns the category kind the store serves.
func (s *Store[K]) Kind() ability.Kind {
	return s.kind
}

// Get returns the effect data for id, or a zero EffectData when id is not
// in the roster.
func (s *Store[K]) Get(id K) EffectData {
	return s.data[id]
}

// Set replaces the effect data for id. Identifiers outside the roster are
// ignored; the roster never grows.
func (s *Store[K]) Set(id K, d EffectData) {
	if _, ok := s.data[id]; !ok {
		s.log.Warn("effect data set for unknown ability",
			zap.Stringer("category", s.kind),
			zap.Stringer("ability", id),
		)
		return
	}
	s.data[id] = d
}

// IsUnlocked reports the independently-tracked unlock flag for id; false
// when id is not in the roster.
func (s *Store[K]) IsUnlocked(id K) bool {
	return s.data[id].Unlocked
}

// Unlock marks the ability's effect as usable. No-op when id is not in the
// roster.
func (s *Store[K]) Unlock(id K) {
	d, ok := s.data[id]
	if !ok {
		return
	}
	d.Unlocked = true
	s.data[id] = d
}

// Upgrade raises the effect level by one. Locked abilities and abilities
// at the level cap are left unchanged.
func (s *Store[K]) Upgrade(id K) {
	d, ok := s.data[id]
	if !ok || !d.Unlocked || d.Level >= s.maxLevel {
		return
	}
	d.Level++
	s.data[id] = d
}
