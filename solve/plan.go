package solve

import (
	"fmt"
	"strings"

	"github.com/lanternkit/crossing/puzzle"
)

// Plan is an optimal crossing: the ordered States from the initial
// configuration to the goal, inclusive. A Plan owns its slice of States;
// the predecessor chain stays alive through it, so callers may drop every
// other reference returned by the engine.
type Plan struct {
	states []*puzzle.State
}

// Step describes one move of a Plan in presentation-ready form.
type Step struct {
	Move       string        // label of the move, e.g. "travelers 1 & 2 cross (cost 2)"
	MoveCost   int64         // cost of this move alone
	Cumulative int64         // accumulated cost after this move
	State      *puzzle.State // configuration after this move
}

// newPlan reconstructs the path ending at goal by walking predecessor
// links back to the initial State and reversing the order.
func newPlan(goal *puzzle.State) *Plan {
	n := 0
	for s := goal; s != nil; s = s.Prev {
		n++
	}
	states := make([]*puzzle.State, n)
	for s := goal; s != nil; s = s.Prev {
		n--
		states[n] = s
	}

	return &Plan{states: states}
}

// States returns the path from initial to goal, inclusive.
func (pl *Plan) States() []*puzzle.State { return pl.states }

// Moves returns the number of moves in the plan: one less than the
// number of States. A zero-traveler plan has zero moves.
func (pl *Plan) Moves() int { return len(pl.states) - 1 }

// TotalCost returns the accumulated cost of the full crossing.
func (pl *Plan) TotalCost() int64 { return pl.states[len(pl.states)-1].Cost }

// Steps returns one Step per move, skipping the initial State.
func (pl *Plan) Steps() []Step {
	steps := make([]Step, 0, pl.Moves())
	for i := 1; i < len(pl.states); i++ {
		s := pl.states[i]
		steps = append(steps, Step{
			Move:       s.Move,
			MoveCost:   s.Cost - pl.states[i-1].Cost,
			Cumulative: s.Cost,
			State:      s,
		})
	}

	return steps
}

// String renders the plan as a step-by-step report:
//
//	optimal crossing found (total cost 17)
//
//	initial state:
//	  Left: {1 2 3 4} | Right: {} | Lantern: left | Cost: 0
//
//	step 1: travelers 1 & 2 cross (cost 2)
//	  Left: {3 4} | Right: {1 2} | Lantern: right | Cost: 2
//	...
func (pl *Plan) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "optimal crossing found (total cost %d)\n", pl.TotalCost())
	fmt.Fprintf(&b, "\ninitial state:\n  %s\n", pl.states[0])
	for i, st := range pl.Steps() {
		fmt.Fprintf(&b, "\nstep %d: %s\n  %s\n", i+1, st.Move, st.State)
	}

	return b.String()
}
