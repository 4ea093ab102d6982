// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package changer

import (
	"fmt"
	"math"
)

const (
	unreachable = math.MaxInt
	noChoice    = 0
)

// MsgInfeasible is reported when no combination of coins sums to the amount.
const MsgInfeasible = "Cannot make exact change with given coins"

// table holds the minimum coin count for every sub-amount up to its length-1,
// and the denomination that achieved it.
type table struct {
	minCoins []int
	choice   []int
}

// buildTable runs the unbounded coin change recurrence for 0..amount.
// Coins are tried in input order and only a strictly smaller count replaces
// the current best, so the first denomination reaching a minimum is kept.
func buildTable(amount int, coins []int) table {
	t := table{
		minCoins: make([]int, amount+1),
		choice:   make([]int, amount+1),
	}
	for i := 1; i <= amount; i++ {
		t.minCoins[i] = unreachable
	}

	for i := 1; i <= amount; i++ {
		for _, coin := range coins {
			if coin <= 0 || coin > i {
				continue
			}
			prev := t.minCoins[i-coin]
			if prev == unreachable {
				continue
			}
			if prev+1 < t.minCoins[i] {
				t.minCoins[i] = prev + 1
				t.choice[i] = coin
			}
		}
	}
	return t
}

// count returns the minimum number of coins for amount, or -1.
func (t table) count(amount int) int {
	if t.minCoins[amount] == unreachable {
		return -1
	}
	return t.minCoins[amount]
}

// reconstruct walks the recorded choices back from amount to zero.
func (t table) reconstruct(amount int) Breakdown {
	breakdown := Breakdown{}
	for cur := amount; cur > 0; {
		coin := t.choice[cur]
		if coin == noChoice {
			break
		}
		breakdown[coin]++
		cur -= coin
	}
	return breakdown
}

// Dynamic finds a decomposition of amount using the fewest coins. When none
// exists Success is false and TotalCoins is -1.
func Dynamic(amount int, coins []int) Result {
	if amount < 0 {
		return Result{TotalCoins: -1, Breakdown: Breakdown{}, Algorithm: AlgorithmDynamic, Message: MsgInvalidAmount}
	}

	t := buildTable(amount, coins)
	total := t.count(amount)
	if total < 0 {
		return Result{
			Success:    false,
			TotalCoins: -1,
			Breakdown:  Breakdown{},
			Remaining:  amount,
			Algorithm:  AlgorithmDynamic,
			Message:    MsgInfeasible,
		}
	}

	return Result{
		Success:    true,
		TotalCoins: total,
		Breakdown:  t.reconstruct(amount),
		Remaining:  0,
		Algorithm:  AlgorithmDynamic,
		Message:    fmt.Sprintf("Optimal solution found using %d coins", total),
	}
}
