// Package progression implements the character-level point economy feeding
// the ability engine: how large the point pool is at each level, grant
// records for audit, and reconciliation helpers for the profile's summary
// counters.
package progression

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/calder-games/progression/internal/game/ability"
)

// Grant records one pool-size change applied to a profile.
type Grant struct {
	ID        uuid.UUID
	Level     int
	Points    int // newly available pool points; zero when the level changed nothing
	GrantedAt time.Time
}

// Leveler decides how many total ability points a character has earned at a
// given level and stamps the result onto profiles. It owns the summary
// counters' ceiling; spending and allocation stay with the engine.
type Leveler struct {
	basePoints     int
	pointsPerLevel int
	maxLevel       int
	log            *zap.Logger
}

// NewLeveler builds a Leveler.
//
// Precondition: basePoints >= 0, pointsPerLevel >= 0, maxLevel >= 1.
// A nil log falls back to zap.NewNop().
func NewLeveler(basePoints, pointsPerLevel, maxLevel int, log *zap.Logger) (*Leveler, error) {
	if basePoints < 0 {
		return nil, fmt.Errorf("progression: NewLeveler: base points must be >= 0, got %d", basePoints)
	}
	if pointsPerLevel < 0 {
		return nil, fmt.Errorf("progression: NewLeveler: points per level must be >= 0, got %d", pointsPerLevel)
	}
	if maxLevel < 1 {
		return nil, fmt.Errorf("progression: NewLeveler: max level must be >= 1, got %d", maxLevel)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Leveler{
		basePoints:     basePoints,
		pointsPerLevel: pointsPerLevel,
		maxLevel:       maxLevel,
		log:            log,
	}, nil
}

// MaxLevel returns the highest level the leveler grants points for.
func (l *Leveler) MaxLevel() int {
	return l.maxLevel
}

// MaxPointsAt returns the pool ceiling for a character at the given level.
// Levels are clamped to [1, MaxLevel].
func (l *Leveler) MaxPointsAt(level int) int {
	if level < 1 {
		level = 1
	}
	if level > l.maxLevel {
		level = l.maxLevel
	}
	return l.basePoints + l.pointsPerLevel*(level-1)
}

// Apply stamps the pool ceiling for level onto the profile and returns a
// Grant recording the change. The active and allocated counters are left
// untouched; distributing the new points is the caller's business.
//
// Precondition: p must be non-nil.
func (l *Leveler) Apply(p *ability.Profile, level int) Grant {
	old := p.MaxAbilityPoints()
	next := l.MaxPointsAt(level)
	p.SetMaxAbilityPoints(next)

	delta := next - old
	if delta < 0 {
		delta = 0
	}
	g := Grant{
		ID:        uuid.New(),
		Level:     level,
		Points:    delta,
		GrantedAt: time.Now(),
	}
	l.log.Debug("ability point grant",
		zap.Stringer("grant_id", g.ID),
		zap.Int("level", level),
		zap.Int("points", delta),
		zap.Int("pool_ceiling", next),
	)
	return g
}
