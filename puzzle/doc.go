// Package puzzle models the bridge-and-lantern crossing domain: a party of
// travelers on the left bank must all reach the right bank, the shared
// lantern must accompany every move, at most two travelers move at once,
// and a pair moves at the slower member's pace.
//
// Overview:
//
//   - Traveler is a 1-based identifier; Party maps each traveler to its
//     fixed, positive crossing cost and never changes after construction.
//   - Set is a bitmask of travelers, so bank membership tests, moves and
//     the search engine's deduplication key are all O(1).
//   - State is an immutable-after-construction snapshot: the two banks,
//     the lantern side, the accumulated cost, and a back-link to the
//     predecessor State together with a label of the move that produced it.
//
// Key operations:
//
//   - State.IsGoal reports whether the left bank is empty and the right
//     bank holds the whole party.
//   - State.Successors enumerates every configuration reachable by exactly
//     one move — each single traveler and each unordered pair drawn from
//     the lantern's bank — filtered to a caller-supplied cost bound.
//     A pair's move cost is the MAXIMUM of the two members' costs, never
//     the sum: the group walks at the slower traveler's pace.
//   - State.Key derives the deduplication identity (left, right, lantern
//     side). Cost, predecessor and move label are deliberately excluded:
//     two States with the same configuration but different histories are
//     the same node for visited-set purposes.
//
// Invariants:
//
//   - Left and Right are disjoint and their union is the full party set.
//   - The lantern side flips on every move; there is no lantern-only move.
//   - Successor cost strictly exceeds the predecessor's cost (all crossing
//     costs are positive, so zero-cost moves cannot exist).
//
// Complexity: a State with k travelers on the lantern side generates at
// most k + k·(k−1)/2 successors; the whole configuration space holds at
// most 2^n × 2 states for a party of n.
//
// Errors (sentinel):
//
//   - ErrNonPositiveCost if a party is built with a cost ≤ 0.
//   - ErrPartyTooLarge   if a party exceeds MaxPartySize travelers.
//   - ErrNilParty        if a nil *Party is passed to NewInitialState.
package puzzle
