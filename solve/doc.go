// Package solve finds the cheapest crossing plan for a puzzle.Party, or
// reports that no plan exists within the cost bound.
//
// Overview:
//
//   - Solve runs a uniform-cost search (Dijkstra over the implicit move
//     graph): a min-heap frontier keyed by accumulated cost always yields
//     a currently-cheapest State, so the first goal extracted is optimal.
//   - A (left, right, lantern) configuration is finalized when it is
//     POPPED, not when it is enqueued: a configuration first discovered
//     along an expensive path stays open to cheaper rediscoveries, which
//     re-enter the frontier on strict improvement ("lazy decrease-key",
//     as in any heap-based Dijkstra). Stale duplicates are skipped at
//     pop time, so each configuration is expanded at most once and both
//     maps stay bounded by the 2^n × 2 configuration space.
//   - Goal States are recorded but never expanded — arrival ends the
//     scenario; there is no move after everyone has crossed.
//   - The optimal path is reconstructed by walking predecessor links from
//     the goal back to the start and reversing, yielding a Plan.
//
// Tie-break policy: among equal-cost frontier entries the earlier-inserted
// State wins, so runs are reproducible. Only the minimal total cost is
// contractual; which of several equally cheap plans is returned is not.
//
// Complexity, for a party of n travelers:
//
//   - States: at most S = 2^n × 2 distinct configurations, each expanded
//     at most once with a fan-out of at most n + n·(n−1)/2 successors.
//   - Time:  O(S · n² · log S); Space: O(S · n²) worst-case for the heap
//     under lazy decrease-key, O(S) for the distance and visited maps.
//
// Outcomes:
//
//   - A *Plan with the minimal total cost within the bound, or
//   - ErrNoSolution — the documented, normal "no plan within bound"
//     result (including non-positive bounds), checkable via errors.Is, or
//   - ErrNilParty for a nil party (the only validation failure).
//
// Example usage:
//
//	party, _ := puzzle.NewParty(1, 2, 5, 10)
//	plan, err := solve.Solve(party, solve.WithCostBound(17))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(plan.TotalCost()) // 17
package solve
