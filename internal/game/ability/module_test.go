package ability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/calder-games/progression/internal/game/ability"
)

func TestNewModule_Defaults(t *testing.T) {
	m := ability.NewModule()
	assert.Equal(t, 0, m.Point)
	assert.Equal(t, ability.DefaultMaxPoint, m.MaxPoint)
	assert.Equal(t, 0, m.AllocatedPoint)
	assert.False(t, m.Unlocked())
}

// TestIncreasePoint_SpendsAgainstBudget covers the allocated-budget ceiling:
// with 3 allocated, three increases land and the fourth is a no-op.
func TestIncreasePoint_SpendsAgainstBudget(t *testing.T) {
	m := ability.NewModule()
	require.NoError(t, m.SetAllocatedPoint(3))

	for i := 1; i <= 3; i++ {
		assert.True(t, m.IncreasePoint(), "increase %d should change state", i)
	}
	assert.Equal(t, 3, m.Point)
	assert.True(t, m.Unlocked())

	assert.False(t, m.IncreasePoint(), "budget exhausted, must be a no-op")
	assert.Equal(t, 3, m.Point)
}

// TestIncreasePoint_NoBudget verifies that with zero allocation, increases
// never change state no matter how often they are attempted.
func TestIncreasePoint_NoBudget(t *testing.T) {
	m := ability.NewModule()
	for i := 0; i < 10; i++ {
		assert.False(t, m.IncreasePoint())
	}
	assert.Equal(t, 0, m.Point)
	assert.False(t, m.Unlocked())
}

func TestIncreasePoint_CappedByMaxPoint(t *testing.T) {
	m := ability.NewModule()
	require.NoError(t, m.SetMaxPoint(2))
	require.NoError(t, m.SetAllocatedPoint(10))

	assert.True(t, m.IncreasePoint())
	assert.True(t, m.IncreasePoint())
	assert.False(t, m.IncreasePoint(), "at max point, must be a no-op")
	assert.Equal(t, 2, m.Point)
}

func TestDecreasePoint_LocksAtZero(t *testing.T) {
	m := ability.NewModule()
	require.NoError(t, m.SetAllocatedPoint(1))
	require.True(t, m.IncreasePoint())
	require.True(t, m.Unlocked())

	assert.True(t, m.DecreasePoint())
	assert.Equal(t, 0, m.Point)
	assert.False(t, m.Unlocked())

	assert.False(t, m.DecreasePoint(), "already at zero, must be a no-op")
}

// TestReset_RestoresDefaults verifies Reset discards state including a
// non-default max point, which returns to the documented default.
func TestReset_RestoresDefaults(t *testing.T) {
	m := ability.NewModule()
	require.NoError(t, m.SetMaxPoint(2))
	require.NoError(t, m.SetAllocatedPoint(4))
	m.IncreasePoint()
	m.IncreasePoint()

	m.Reset()
	assert.Equal(t, 0, m.Point)
	assert.Equal(t, ability.DefaultMaxPoint, m.MaxPoint)
	assert.Equal(t, 0, m.AllocatedPoint)
	assert.False(t, m.Unlocked())
}

func TestReset_Idempotent(t *testing.T) {
	m := ability.NewModule()
	require.NoError(t, m.SetAllocatedPoint(2))
	m.IncreasePoint()

	m.Reset()
	first := *m
	m.Reset()
	assert.Equal(t, first, *m)
}

func TestSetAllocatedPoint_ClampsActivePoints(t *testing.T) {
	m := ability.NewModule()
	require.NoError(t, m.SetAllocatedPoint(4))
	for i := 0; i < 4; i++ {
		m.IncreasePoint()
	}
	require.Equal(t, 4, m.Point)

	require.NoError(t, m.SetAllocatedPoint(1))
	assert.Equal(t, 1, m.Point)
	assert.True(t, m.Unlocked())

	require.NoError(t, m.SetAllocatedPoint(0))
	assert.Equal(t, 0, m.Point)
	assert.False(t, m.Unlocked())
}

func TestSetAllocatedPoint_RejectsNegative(t *testing.T) {
	m := ability.NewModule()
	assert.Error(t, m.SetAllocatedPoint(-1))
}

func TestSetMaxPoint_RejectsBelowOne(t *testing.T) {
	m := ability.NewModule()
	assert.Error(t, m.SetMaxPoint(0))
	assert.Error(t, m.SetMaxPoint(-3))
}

func TestSetMaxPoint_ClampsActivePoints(t *testing.T) {
	m := ability.NewModule()
	require.NoError(t, m.SetAllocatedPoint(5))
	for i := 0; i < 5; i++ {
		m.IncreasePoint()
	}
	require.Equal(t, 5, m.Point)

	require.NoError(t, m.SetMaxPoint(2))
	assert.Equal(t, 2, m.Point)
	assert.True(t, m.Unlocked())
}

// Property-based tests

// TestPropertyModuleInvariants drives a module through an arbitrary
// operation sequence and checks the core invariants after every step:
// 0 <= Point <= MaxPoint, Point <= AllocatedPoint, Unlocked == (Point > 0).
func TestPropertyModuleInvariants(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := ability.NewModule()
		steps := rapid.SliceOfN(rapid.IntRange(0, 4), 1, 200).Draw(rt, "steps")
		for _, op := range steps {
			switch op {
			case 0:
				m.IncreasePoint()
			case 1:
				m.DecreasePoint()
			case 2:
				m.Reset()
			case 3:
				_ = m.SetAllocatedPoint(rapid.IntRange(0, 12).Draw(rt, "allocated"))
			case 4:
				_ = m.SetMaxPoint(rapid.IntRange(1, 12).Draw(rt, "max"))
			}
			if m.Point < 0 || m.Point > m.MaxPoint {
				rt.Fatalf("point %d outside [0, %d]", m.Point, m.MaxPoint)
			}
			if m.Point > m.AllocatedPoint {
				rt.Fatalf("point %d exceeds allocated %d", m.Point, m.AllocatedPoint)
			}
			if m.Unlocked() != (m.Point > 0) {
				rt.Fatalf("unlock flag %v inconsistent with point %d", m.Unlocked(), m.Point)
			}
		}
	})
}

// TestPropertyIncreaseDecreaseRoundTrip verifies that a successful increase
// followed by a decrease restores the exact prior state.
func TestPropertyIncreaseDecreaseRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := ability.NewModule()
		_ = m.SetAllocatedPoint(rapid.IntRange(1, 10).Draw(rt, "allocated"))
		spins := rapid.IntRange(0, 4).Draw(rt, "spins")
		for i := 0; i < spins; i++ {
			m.IncreasePoint()
		}

		before := *m
		if m.IncreasePoint() {
			m.DecreasePoint()
			if *m != before {
				rt.Fatalf("round trip diverged: before %+v after %+v", before, *m)
			}
		}
	})
}

// TestPropertyZeroBudgetNeverUnlocks verifies the monotonic guard: with no
// allocation, any number of increases leaves the module locked.
func TestPropertyZeroBudgetNeverUnlocks(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := ability.NewModule()
		attempts := rapid.IntRange(1, 100).Draw(rt, "attempts")
		for i := 0; i < attempts; i++ {
			if m.IncreasePoint() {
				rt.Fatalf("increase succeeded with zero budget on attempt %d", i)
			}
		}
		if m.Point != 0 || m.Unlocked() {
			rt.Fatalf("state changed with zero budget: point=%d unlocked=%v", m.Point, m.Unlocked())
		}
	})
}
