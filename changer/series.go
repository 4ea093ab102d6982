// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package changer

import "slices"

// Series holds coin counts for every amount from 1 to a maximum, for charting
// how far greedy drifts from the optimum.
type Series struct {
	Coins   []int `json:"coins"`
	Amounts []int `json:"amounts"`
	// Greedy counts include coins used even when a remainder is left over.
	Greedy          []int `json:"greedy"`
	GreedyRemaining []int `json:"greedyRemaining"`
	// Dynamic counts are -1 where no exact decomposition exists.
	Dynamic []int `json:"dynamic"`
}

// NewSeries computes the series for amounts 1..maxAmount. A single table
// serves every amount, so the cost is that of one Dynamic call for maxAmount.
func NewSeries(maxAmount int, coins []int) (Series, error) {
	if err := ValidateAmount(maxAmount); err != nil {
		return Series{}, err
	}
	valid, err := FilterCoins(coins)
	if err != nil {
		return Series{}, err
	}

	sorted := slices.Clone(valid)
	slices.Sort(sorted)
	slices.Reverse(sorted)

	t := buildTable(maxAmount, valid)
	s := Series{
		Coins:           valid,
		Amounts:         make([]int, maxAmount),
		Greedy:          make([]int, maxAmount),
		GreedyRemaining: make([]int, maxAmount),
		Dynamic:         make([]int, maxAmount),
	}
	for i := range maxAmount {
		amount := i + 1
		s.Amounts[i] = amount
		s.Greedy[i], s.GreedyRemaining[i] = greedyRun(amount, sorted)
		s.Dynamic[i] = t.count(amount)
	}
	return s, nil
}

// Suboptimal returns the amounts that have an exact decomposition but where
// greedy either leaves a remainder or uses more coins than the optimum.
func (s Series) Suboptimal() []int {
	var amounts []int
	for i, amount := range s.Amounts {
		if s.Dynamic[i] < 0 {
			continue
		}
		if s.GreedyRemaining[i] != 0 || s.Greedy[i] != s.Dynamic[i] {
			amounts = append(amounts, amount)
		}
	}
	return amounts
}
