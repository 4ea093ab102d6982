// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package changer

import (
	"encoding/json"
	"slices"
	"strconv"
	"strings"
)

// Algorithm names the solver that produced a Result.
type Algorithm string

const (
	AlgorithmGreedy  Algorithm = "greedy"
	AlgorithmDynamic Algorithm = "dynamic"
)

// Breakdown maps a denomination to the number of coins used.
// Only denominations with a positive count are present.
type Breakdown map[int]int

// Total returns the number of coins in the breakdown.
func (b Breakdown) Total() int {
	total := 0
	for _, count := range b {
		total += count
	}
	return total
}

// Value returns the amount the breakdown adds up to.
func (b Breakdown) Value() int {
	value := 0
	for coin, count := range b {
		value += coin * count
	}
	return value
}

// Denominations returns the denominations used, largest first.
func (b Breakdown) Denominations() []int {
	coins := make([]int, 0, len(b))
	for coin := range b {
		coins = append(coins, coin)
	}
	slices.Sort(coins)
	slices.Reverse(coins)
	return coins
}

// String renders the breakdown as "2×25 + 1×10 + 3×1".
func (b Breakdown) String() string {
	if len(b) == 0 {
		return "None"
	}
	parts := make([]string, 0, len(b))
	for _, coin := range b.Denominations() {
		parts = append(parts, strconv.Itoa(b[coin])+"×"+strconv.Itoa(coin))
	}
	return strings.Join(parts, " + ")
}

// Result is the outcome of a single solver run.
type Result struct {
	Success    bool      `json:"success"`
	TotalCoins int       `json:"totalCoins"`
	Breakdown  Breakdown `json:"breakdown"`
	Remaining  int       `json:"remaining"`
	Algorithm  Algorithm `json:"algorithm"`
	Message    string    `json:"message"`
}

// Summary describes how the greedy result relates to the optimal one.
type Summary struct {
	GreedyIsOptimal bool   `json:"greedyIsOptimal"`
	Difference      *int   `json:"difference"` // nil unless both solvers succeeded
	Recommendation  string `json:"recommendation"`
}

// Comparison holds both solver results for the same input.
type Comparison struct {
	Amount  int     `json:"amount"`
	Coins   []int   `json:"coins"`
	Greedy  Result  `json:"greedy"`
	Dynamic Result  `json:"dynamic"`
	Summary Summary `json:"comparison"`
}

// Outcome is what Solve returns: exactly one of the fields is set.
type Outcome struct {
	Err        *InputError
	Result     *Result
	Comparison *Comparison
}

// Success reports whether the outcome represents an exact decomposition.
// A comparison succeeds when the dynamic solver does.
func (o Outcome) Success() bool {
	switch {
	case o.Result != nil:
		return o.Result.Success
	case o.Comparison != nil:
		return o.Comparison.Dynamic.Success
	}
	return false
}

// MarshalJSON encodes whichever field is set.
func (o Outcome) MarshalJSON() ([]byte, error) {
	switch {
	case o.Err != nil:
		return json.Marshal(o.Err)
	case o.Comparison != nil:
		return json.Marshal(o.Comparison)
	case o.Result != nil:
		return json.Marshal(o.Result)
	}
	return []byte("null"), nil
}

// UnmarshalJSON decodes a comparison, a result or an input error.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*o = Outcome{}
	switch {
	case fields["comparison"] != nil:
		o.Comparison = &Comparison{}
		return json.Unmarshal(data, o.Comparison)
	case fields["algorithm"] != nil:
		o.Result = &Result{}
		return json.Unmarshal(data, o.Result)
	}
	o.Err = &InputError{}
	return json.Unmarshal(data, o.Err)
}
