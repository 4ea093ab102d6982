// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package changer solves the minimum coin change problem.

Two solvers are provided, both pure functions with no shared state:

  - Greedy: takes as many of the largest denomination as fit, then moves on.
    Fast, but not always optimal for arbitrary coin systems.
  - Dynamic: bottom-up tabulation over every sub-amount, guaranteed to find
    the minimum number of coins when an exact decomposition exists.

# Solving

Solve validates its input and dispatches on the mode:

	out := changer.Solve(63, []int{1, 5, 10, 25}, changer.ModeBoth)
	if out.Comparison != nil {
		fmt.Println(out.Comparison.Summary.GreedyIsOptimal) // true
	}

Modes are case-insensitive: "greedy", "dynamic" (alias "dp") and "both"
(alias "compare"). Anything else falls back to "dynamic".

# Failures

Failures are values. Invalid input yields an Outcome whose Err is set:

	"Amount must be a non-negative integer"
	"Coins must be a non-empty array"
	"No valid coins provided"

Invalid individual denominations (zero, negative, fractional) are dropped
silently as long as at least one valid denomination remains.

A well-formed input with no exact decomposition returns Success=false. The
dynamic solver reports TotalCoins=-1; the greedy solver reports its partial
attempt with a non-zero Remaining.

# Tie-breaking

When several optimal decompositions exist the dynamic solver keeps the first
denomination (in input order) that reaches the minimum for each sub-amount.
Reordering the denominations can therefore change which optimal breakdown is
returned, but never its coin count.

# Cost

Greedy is O(k log k) in the number of denominations. Dynamic is
O(amount × k) time and O(amount) space; callers that accept untrusted input
must cap the amount.
*/
package changer
