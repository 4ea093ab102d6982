// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package changer

import (
	"fmt"
	"slices"
)

// Greedy makes change by taking as many of the largest denomination as fit,
// then the next largest, in a single pass. It does not guarantee the minimum
// number of coins. When the pass leaves a remainder, Success is false and
// Breakdown holds the partial attempt.
func Greedy(amount int, coins []int) Result {
	if amount < 0 {
		return Result{TotalCoins: -1, Breakdown: Breakdown{}, Algorithm: AlgorithmGreedy, Message: MsgInvalidAmount}
	}

	sorted := slices.Clone(coins)
	slices.Sort(sorted)
	slices.Reverse(sorted)

	remaining := amount
	breakdown := Breakdown{}
	total := 0
	for _, coin := range sorted {
		if coin <= 0 || coin > remaining {
			continue
		}
		count := remaining / coin
		breakdown[coin] += count
		total += count
		remaining -= coin * count
	}

	res := Result{
		Success:    remaining == 0,
		TotalCoins: total,
		Breakdown:  breakdown,
		Remaining:  remaining,
		Algorithm:  AlgorithmGreedy,
	}
	if res.Success {
		res.Message = fmt.Sprintf("Successfully made change using %d coins", total)
	} else {
		res.Message = fmt.Sprintf("Cannot make exact change. Remaining: %d", remaining)
	}
	return res
}

// greedyRun returns the number of coins the greedy pass uses and the
// remainder it leaves. sorted must be ordered largest first.
func greedyRun(amount int, sorted []int) (count, remaining int) {
	for _, coin := range sorted {
		if coin <= 0 {
			continue
		}
		count += amount / coin
		amount %= coin
	}
	return count, amount
}
