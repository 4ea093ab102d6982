// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package changer

import (
	"encoding/json"
	"errors"
	"strings"
)

// Mode selects which solver Solve runs.
type Mode string

const (
	ModeGreedy  Mode = "greedy"
	ModeDynamic Mode = "dynamic"
	ModeBoth    Mode = "both"
)

// ParseMode maps a user supplied algorithm name to a Mode. Matching is
// case-insensitive; "dp" and "compare" are accepted as aliases and anything
// unrecognised falls back to ModeDynamic.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greedy":
		return ModeGreedy
	case "both", "compare":
		return ModeBoth
	default:
		return ModeDynamic
	}
}

// Solve validates the input and runs the solver selected by mode.
func Solve(amount int, coins []int, mode Mode) Outcome {
	if err := ValidateAmount(amount); err != nil {
		return failed(err)
	}
	valid, err := FilterCoins(coins)
	if err != nil {
		return failed(err)
	}
	return dispatch(amount, valid, mode)
}

// SolveJSON is Solve for untyped client input, see DecodeInput.
func SolveJSON(amount, coins json.RawMessage, mode Mode) Outcome {
	amt, valid, err := DecodeInput(amount, coins)
	if err != nil {
		return failed(err)
	}
	return dispatch(amt, valid, mode)
}

func dispatch(amount int, coins []int, mode Mode) Outcome {
	switch ParseMode(string(mode)) {
	case ModeGreedy:
		res := Greedy(amount, coins)
		return Outcome{Result: &res}
	case ModeBoth:
		cmp := Compare(amount, coins)
		return Outcome{Comparison: &cmp}
	default:
		res := Dynamic(amount, coins)
		return Outcome{Result: &res}
	}
}

func failed(err error) Outcome {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return Outcome{Err: inputErr}
	}
	return Outcome{Err: &InputError{Message: err.Error()}}
}
