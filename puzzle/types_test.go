package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanternkit/crossing/puzzle"
)

// ------------------------------------------------------------------------
// 1. Set: membership, value semantics, rendering.
// ------------------------------------------------------------------------

func TestSet_AddRemoveHas(t *testing.T) {
	var s puzzle.Set
	assert.True(t, s.Empty(), "zero value must be the empty set")

	s2 := s.Add(3).Add(1)
	assert.True(t, s2.Has(1))
	assert.True(t, s2.Has(3))
	assert.False(t, s2.Has(2))
	assert.Equal(t, 2, s2.Count())

	// Add and Remove return new values; the receiver stays untouched.
	assert.True(t, s.Empty(), "Add must not mutate the receiver")
	s3 := s2.Remove(3)
	assert.True(t, s2.Has(3), "Remove must not mutate the receiver")
	assert.False(t, s3.Has(3))
	assert.Equal(t, 1, s3.Count())
}

func TestSet_TravelersAscending(t *testing.T) {
	s := puzzle.Set(0).Add(4).Add(1).Add(9)
	assert.Equal(t, []puzzle.Traveler{1, 4, 9}, s.Travelers())
}

func TestSet_String(t *testing.T) {
	assert.Equal(t, "{}", puzzle.Set(0).String())
	assert.Equal(t, "{1 2 4}", puzzle.Set(0).Add(2).Add(4).Add(1).String())
}

// ------------------------------------------------------------------------
// 2. Party: construction, validation, immutability.
// ------------------------------------------------------------------------

func TestNewParty_Valid(t *testing.T) {
	p, err := puzzle.NewParty(1, 2, 5, 10)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Size())
	assert.Equal(t, int64(1), p.Cost(1))
	assert.Equal(t, int64(10), p.Cost(4))
	assert.Equal(t, puzzle.Set(0).Add(1).Add(2).Add(3).Add(4), p.All())
}

func TestNewParty_EmptyIsValid(t *testing.T) {
	// An empty party is legal: the initial configuration is already a goal.
	p, err := puzzle.NewParty()
	require.NoError(t, err)
	assert.Equal(t, 0, p.Size())
	assert.True(t, p.All().Empty())
}

func TestNewParty_RejectsNonPositiveCosts(t *testing.T) {
	_, err := puzzle.NewParty(1, 0, 3)
	assert.ErrorIs(t, err, puzzle.ErrNonPositiveCost)

	_, err = puzzle.NewParty(-5)
	assert.ErrorIs(t, err, puzzle.ErrNonPositiveCost)
}

func TestNewParty_RejectsOversizedParty(t *testing.T) {
	costs := make([]int64, puzzle.MaxPartySize+1)
	for i := range costs {
		costs[i] = 1
	}
	_, err := puzzle.NewParty(costs...)
	assert.ErrorIs(t, err, puzzle.ErrPartyTooLarge)
}

func TestParty_DefensiveCopies(t *testing.T) {
	costs := []int64{3, 7}
	p, err := puzzle.NewParty(costs...)
	require.NoError(t, err)

	// Mutating the caller's slice must not reach the party.
	costs[0] = 99
	assert.Equal(t, int64(3), p.Cost(1))

	// Mutating the returned copy must not reach the party either.
	out := p.Costs()
	out[1] = 99
	assert.Equal(t, int64(7), p.Cost(2))
}
