// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package changer

import "slices"

const (
	RecommendGreedyFailed = "Use Dynamic Programming - Greedy failed to find a solution"
	RecommendDynamic      = "Use Dynamic Programming for optimal solution"
	RecommendEquivalent   = "Both algorithms give the same result"
)

// Compare runs both solvers on the same input.
func Compare(amount int, coins []int) Comparison {
	greedy := Greedy(amount, coins)
	dynamic := Dynamic(amount, coins)

	return Comparison{
		Amount:  amount,
		Coins:   slices.Clone(coins),
		Greedy:  greedy,
		Dynamic: dynamic,
		Summary: summarize(greedy, dynamic),
	}
}

func summarize(greedy, dynamic Result) Summary {
	bothSucceeded := greedy.Success && dynamic.Success

	var s Summary
	// Counts are only comparable when both solvers produced an exact answer;
	// a failed dynamic run reports -1.
	s.GreedyIsOptimal = bothSucceeded && greedy.TotalCoins == dynamic.TotalCoins
	if bothSucceeded {
		diff := greedy.TotalCoins - dynamic.TotalCoins
		s.Difference = &diff
	}

	// The recommendation compares raw counts, so a greedy remainder against an
	// infeasible dynamic run (-1) still points at dynamic programming.
	switch {
	case dynamic.Success && !greedy.Success:
		s.Recommendation = RecommendGreedyFailed
	case greedy.TotalCoins > dynamic.TotalCoins:
		s.Recommendation = RecommendDynamic
	default:
		s.Recommendation = RecommendEquivalent
	}
	return s
}
