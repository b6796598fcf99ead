package puzzle

import "fmt"

// State is one configuration of the crossing: who stands on which bank,
// where the lantern is, how much the journey so far has cost, and how we
// got here. A State is never mutated after construction; Successors builds
// fresh values and leaves the receiver untouched.
//
// Prev is a back-link for path reconstruction only — the search engine
// never walks it during exploration, and the initial State carries nil.
type State struct {
	Left        Set    // travelers on the left (origin) bank
	Right       Set    // travelers on the right (destination) bank
	LanternLeft bool   // true while the lantern sits on the left bank
	Cost        int64  // accumulated cost along the Prev chain
	Prev        *State // predecessor State, nil for the initial State
	Move        string // label of the move that produced this State

	party *Party // shared, immutable cost table
}

// Key is the deduplication identity of a State: the configuration triple
// alone. Cost, Prev and Move are excluded on purpose — two States with the
// same configuration but different histories are the same search node.
// Key is comparable and serves directly as a map key.
type Key struct {
	Left        Set
	Right       Set
	LanternLeft bool
}

// NewInitialState places the whole party and the lantern on the left bank
// at cost zero with no predecessor. Returns ErrNilParty for a nil party.
func NewInitialState(p *Party) (*State, error) {
	if p == nil {
		return nil, ErrNilParty
	}

	return &State{
		Left:        p.All(),
		LanternLeft: true,
		Move:        "start",
		party:       p,
	}, nil
}

// Party returns the shared cost table this State was built against.
func (s *State) Party() *Party { return s.party }

// Key returns the configuration identity of s for visited-set tracking.
func (s *State) Key() Key {
	return Key{Left: s.Left, Right: s.Right, LanternLeft: s.LanternLeft}
}

// IsGoal reports whether every traveler has reached the right bank.
// An empty party is a goal immediately: both conditions hold trivially.
func (s *State) IsGoal() bool {
	return s.Left.Empty() && s.Right.Count() == s.party.Size()
}

// Successors enumerates every State reachable from s by exactly one move,
// discarding any whose accumulated cost would exceed bound.
//
// Moves are drawn from the bank currently holding the lantern (the lantern
// must travel with every group; it never moves alone):
//
//  1. Each single traveler p crosses at cost Cost(p).
//  2. Each unordered pair {p1, p2} crosses at cost max(Cost(p1), Cost(p2)) —
//     the pair walks at the slower member's pace. Each pair is generated
//     exactly once; enumeration order only affects tie discovery order,
//     never correctness.
//
// The lantern side flips on every generated move, so successor costs are
// strictly greater than s.Cost. The returned slice is freshly allocated on
// each call and s itself is never modified.
func (s *State) Successors(bound int64) []*State {
	// 1) The lantern's bank supplies the movers; the other bank receives.
	from := s.Left
	if !s.LanternLeft {
		from = s.Right
	}
	movers := from.Travelers()

	// 2) Upper bound on fan-out: k singles + k·(k−1)/2 pairs.
	k := len(movers)
	out := make([]*State, 0, k+k*(k-1)/2)

	// 3) Single crossings.
	var verb string
	if s.LanternLeft {
		verb = "crosses"
	} else {
		verb = "returns"
	}
	for _, p := range movers {
		c := s.party.Cost(p)
		if s.Cost+c > bound {
			continue
		}
		move := fmt.Sprintf("traveler %d %s (cost %d)", p, verb, c)
		out = append(out, s.child(Set(0).Add(p), c, move))
	}

	// 4) Paired crossings, each unordered pair once.
	if s.LanternLeft {
		verb = "cross"
	} else {
		verb = "return"
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			p1, p2 := movers[i], movers[j]
			c := max(s.party.Cost(p1), s.party.Cost(p2))
			if s.Cost+c > bound {
				continue
			}
			move := fmt.Sprintf("travelers %d & %d %s (cost %d)", p1, p2, verb, c)
			out = append(out, s.child(Set(0).Add(p1).Add(p2), c, move))
		}
	}

	return out
}

// child builds the State produced by moving group across the bridge from
// the lantern's bank, flipping the lantern and accumulating moveCost.
func (s *State) child(group Set, moveCost int64, move string) *State {
	next := &State{
		LanternLeft: !s.LanternLeft,
		Cost:        s.Cost + moveCost,
		Prev:        s,
		Move:        move,
		party:       s.party,
	}
	if s.LanternLeft {
		next.Left = s.Left &^ group
		next.Right = s.Right | group
	} else {
		next.Left = s.Left | group
		next.Right = s.Right &^ group
	}

	return next
}

// String renders the configuration in one line, e.g.
// "Left: {3 4} | Right: {1 2} | Lantern: right | Cost: 2".
func (s *State) String() string {
	side := "left"
	if !s.LanternLeft {
		side = "right"
	}

	return fmt.Sprintf("Left: %s | Right: %s | Lantern: %s | Cost: %d",
		s.Left, s.Right, side, s.Cost)
}
