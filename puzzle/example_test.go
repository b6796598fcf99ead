// Package puzzle_test provides runnable examples for the domain model.
package puzzle_test

import (
	"fmt"
	"math"

	"github.com/lanternkit/crossing/puzzle"
)

// ExampleState_Successors enumerates every move available from the start
// of a two-traveler scenario: each single crossing and the one pair.
func ExampleState_Successors() {
	// 1) Two travelers: Traveler(1) costs 1, Traveler(2) costs 2.
	party, err := puzzle.NewParty(1, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Everyone on the left bank, lantern on the left, cost zero.
	start, err := puzzle.NewInitialState(party)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Enumerate all moves with no effective bound.
	for _, next := range start.Successors(math.MaxInt64) {
		fmt.Println(next.Move)
	}
	// Output:
	// traveler 1 crosses (cost 1)
	// traveler 2 crosses (cost 2)
	// travelers 1 & 2 cross (cost 2)
}

// ExampleState_IsGoal shows goal detection after the only possible move
// of a one-traveler scenario.
func ExampleState_IsGoal() {
	party, _ := puzzle.NewParty(7)
	start, _ := puzzle.NewInitialState(party)

	fmt.Println("start is goal:", start.IsGoal())
	for _, next := range start.Successors(math.MaxInt64) {
		fmt.Printf("after %q: goal=%v cost=%d\n", next.Move, next.IsGoal(), next.Cost)
	}
	// Output:
	// start is goal: false
	// after "traveler 1 crosses (cost 7)": goal=true cost=7
}

// ExampleSet demonstrates the bitmask bank set.
func ExampleSet() {
	s := puzzle.Set(0).Add(1).Add(3).Add(4)
	fmt.Println(s, "count:", s.Count(), "has 2:", s.Has(2))
	// Output: {1 3 4} count: 3 has 2: false
}
