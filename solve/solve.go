// Package solve implements the uniform-cost search over crossing States.
//
// The engine mirrors the textbook Dijkstra loop: extract the cheapest
// frontier State, finalize its configuration, test for goal, otherwise
// enqueue successors that improve on the best-known cost of their
// configuration. Pop order is cost order, so the first goal extracted
// carries the minimal cost; positive move costs and the finite
// configuration space guarantee termination.
package solve

import (
	"container/heap"
	"math"

	"github.com/lanternkit/crossing/puzzle"
)

// Solve finds the cheapest plan that moves the whole party from the left
// bank to the right bank, subject to the accumulated-cost bound.
//
// Returns:
//
//   - *Plan: the ordered States from initial to goal, minimal total cost.
//   - ErrNilParty if p is nil.
//   - ErrNoSolution if no goal configuration is reachable within the
//     bound — the normal outcome, not an engine failure.
//
// An empty party is already at its goal: Solve returns a single-State
// Plan of cost zero regardless of the bound.
func Solve(p *puzzle.Party, opts ...Option) (*Plan, error) {
	// 1) Build and apply Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the party and seed the initial State.
	if p == nil {
		return nil, ErrNilParty
	}
	start, err := puzzle.NewInitialState(p)
	if err != nil {
		return nil, err
	}

	// 3) Fail fast when the bound cannot admit even the cheapest
	//    conceivable plan. LowerBound is admissible, so this prunes only
	//    provably hopeless searches; it never changes the result.
	if !start.IsGoal() && cfg.Bound < LowerBound(p) {
		return nil, ErrNoSolution
	}

	// 4) Run the cost-ordered exploration.
	r := &runner{
		bound:    cfg.Bound,
		dist:     make(map[puzzle.Key]int64),
		visited:  make(map[puzzle.Key]bool),
		bestCost: math.MaxInt64,
	}
	r.init(start)
	r.process()

	// 5) An exhausted frontier without a recorded goal means no plan
	//    satisfies the bound.
	if r.best == nil {
		return nil, ErrNoSolution
	}

	return newPlan(r.best), nil
}

// LowerBound returns an admissible lower bound on the total cost of any
// complete crossing: the slowest traveler must cross at least once, so no
// plan can cost less than the party's maximum single crossing cost.
// An empty party needs no moves; its bound is zero.
func LowerBound(p *puzzle.Party) int64 {
	var lb int64
	for t := puzzle.Traveler(1); int(t) <= p.Size(); t++ {
		if c := p.Cost(t); c > lb {
			lb = c
		}
	}

	return lb
}

// runner holds the mutable state of a single Solve invocation. It is
// owned exclusively by that invocation: independent Solve calls share
// nothing and may run concurrently.
type runner struct {
	bound    int64                // accumulated-cost cap, applied inside Successors
	frontier statePQ              // min-heap of discovered, unexpanded States
	dist     map[puzzle.Key]int64 // best-known cost per configuration
	visited  map[puzzle.Key]bool  // configurations whose cost is finalized
	best     *puzzle.State        // cheapest goal State seen so far
	bestCost int64                // best.Cost, MaxInt64 until a goal is found
	seq      uint64               // insertion counter for deterministic ties
}

// init seeds the frontier and distance map with the initial State.
func (r *runner) init(start *puzzle.State) {
	heap.Init(&r.frontier)
	r.push(start)
	r.dist[start.Key()] = 0
}

// push wraps s with the next insertion sequence number and enqueues it.
func (r *runner) push(s *puzzle.State) {
	r.seq++
	heap.Push(&r.frontier, &stateItem{state: s, seq: r.seq})
}

// process is the main search loop: extract the cheapest State, finalize
// its configuration, record it if it is a goal, otherwise enqueue every
// successor that strictly improves on the best-known cost of its
// configuration ("lazy decrease-key": stale duplicates stay in the heap
// and are skipped when popped).
//
// Marking happens at pop time, never at enqueue time — a configuration
// first reached expensively must stay open to cheaper rediscoveries, or
// the plan through it would be locked in suboptimally. Goal States are
// never expanded: in this domain arrival ends the scenario, so a goal
// has no outgoing moves.
//
// Termination: a configuration is re-enqueued only on a strict cost
// improvement, so with finitely many configurations and positive move
// costs the frontier drains in finitely many steps.
func (r *runner) process() {
	var current *puzzle.State
	var k puzzle.Key
	for r.frontier.Len() > 0 {
		// 1) Cheapest discovered State; ties by insertion order.
		current = heap.Pop(&r.frontier).(*stateItem).state

		// 2) Skip stale entries whose configuration is already finalized.
		k = current.Key()
		if r.visited[k] {
			continue
		}

		// 3) Pop order is cost order, so current.Cost is now final for k.
		r.visited[k] = true

		// 4) Record goals and move on without expanding them.
		if current.IsGoal() {
			if current.Cost < r.bestCost {
				r.bestCost = current.Cost
				r.best = current
			}
			continue
		}

		// 5) Enqueue successors that strictly improve on the best-known
		//    cost of their configuration.
		for _, next := range current.Successors(r.bound) {
			nk := next.Key()
			if d, seen := r.dist[nk]; seen && next.Cost >= d {
				continue
			}
			r.dist[nk] = next.Cost
			r.push(next)
		}
	}
}

// stateItem pairs a frontier State with its insertion sequence number.
// The sequence number breaks cost ties deterministically in favor of the
// earlier-discovered State.
type stateItem struct {
	state *puzzle.State
	seq   uint64
}

// statePQ is a min-heap of *stateItem ordered by accumulated cost, then
// by insertion sequence. Under the lazy-decrease-key strategy it may hold
// several entries for the same configuration; all but the cheapest are
// skipped at pop time via the runner's visited map.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less orders by cost ascending, breaking ties by insertion order.
func (pq statePQ) Less(i, j int) bool {
	if pq[i].state.Cost != pq[j].state.Cost {
		return pq[i].state.Cost < pq[j].state.Cost
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be of type *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the minimum element.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
