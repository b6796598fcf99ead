// Package puzzle defines the core value types of the crossing domain:
// Traveler identifiers, bitmask Sets of travelers, and the immutable
// Party cost table shared by every State of one scenario.
package puzzle

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Sentinel errors returned by Party and State constructors.
var (
	// ErrNonPositiveCost indicates a crossing cost of zero or below.
	// Zero-cost moves would break the strict cost monotonicity the
	// search engine relies on for termination and optimality.
	ErrNonPositiveCost = errors.New("puzzle: crossing cost must be positive")

	// ErrPartyTooLarge indicates more travelers than Set can represent.
	ErrPartyTooLarge = errors.New("puzzle: party exceeds MaxPartySize travelers")

	// ErrNilParty indicates that a nil *Party was passed where a party is required.
	ErrNilParty = errors.New("puzzle: party is nil")
)

// MaxPartySize is the largest supported party: Set is a 16-bit mask,
// one bit per traveler.
const MaxPartySize = 16

// Traveler identifies one member of the party. Identifiers are 1-based:
// the first cost passed to NewParty belongs to Traveler(1), and so on.
type Traveler uint8

// Set is a bitmask of travelers. Bit i−1 set means Traveler(i) is a member.
// The zero value is the empty set. Sets are values; Add and Remove return
// new Sets and never mutate the receiver.
type Set uint16

// Has reports whether t is a member of s.
func (s Set) Has(t Traveler) bool { return s&(1<<(t-1)) != 0 }

// Add returns a copy of s with t included.
func (s Set) Add(t Traveler) Set { return s | 1<<(t-1) }

// Remove returns a copy of s with t excluded.
func (s Set) Remove(t Traveler) Set { return s &^ (1 << (t - 1)) }

// Count returns the number of travelers in s.
func (s Set) Count() int { return bits.OnesCount16(uint16(s)) }

// Empty reports whether s contains no travelers.
func (s Set) Empty() bool { return s == 0 }

// Travelers returns the members of s in ascending identifier order.
func (s Set) Travelers() []Traveler {
	out := make([]Traveler, 0, s.Count())
	for t := Traveler(1); t <= MaxPartySize; t++ {
		if s.Has(t) {
			out = append(out, t)
		}
	}

	return out
}

// String renders s as "{1 2 4}"; the empty set renders as "{}".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, t := range s.Travelers() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", t)
	}
	b.WriteByte('}')

	return b.String()
}

// Party is the immutable crossing-cost table for one scenario.
// Construct it once with NewParty; every State of a run shares it.
type Party struct {
	costs []int64 // costs[i] is the crossing cost of Traveler(i+1)
}

// NewParty builds a Party from per-traveler crossing costs, in traveler
// order: the first argument is Traveler(1)'s cost. Every cost must be
// strictly positive (ErrNonPositiveCost) and at most MaxPartySize costs
// are accepted (ErrPartyTooLarge). An empty party is valid: with nobody
// to move, the initial configuration is already the goal.
func NewParty(costs ...int64) (*Party, error) {
	if len(costs) > MaxPartySize {
		return nil, fmt.Errorf("%w: got %d", ErrPartyTooLarge, len(costs))
	}
	for i, c := range costs {
		if c <= 0 {
			return nil, fmt.Errorf("%w: traveler %d has cost %d", ErrNonPositiveCost, i+1, c)
		}
	}

	// Defensive copy: callers must not be able to mutate the table later.
	own := make([]int64, len(costs))
	copy(own, costs)

	return &Party{costs: own}, nil
}

// Size returns the number of travelers in the party.
func (p *Party) Size() int { return len(p.costs) }

// Cost returns the crossing cost of traveler t.
// t must be a valid member, 1 ≤ t ≤ Size.
func (p *Party) Cost(t Traveler) int64 { return p.costs[t-1] }

// All returns the Set containing every traveler of the party.
func (p *Party) All() Set {
	var s Set
	for t := Traveler(1); int(t) <= len(p.costs); t++ {
		s = s.Add(t)
	}

	return s
}

// Costs returns a copy of the cost table in traveler order.
func (p *Party) Costs() []int64 {
	out := make([]int64, len(p.costs))
	copy(out, p.costs)

	return out
}
