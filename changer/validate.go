// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package changer

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

const (
	MsgInvalidAmount = "Amount must be a non-negative integer"
	MsgCoinsNotArray = "Coins must be a non-empty array"
	MsgNoValidCoins  = "No valid coins provided"
)

// InputError reports malformed solver input. It is detected before any
// solving starts.
type InputError struct {
	Message string `json:"message"`
}

var (
	ErrInvalidAmount = &InputError{Message: MsgInvalidAmount}
	ErrCoinsNotArray = &InputError{Message: MsgCoinsNotArray}
	ErrNoValidCoins  = &InputError{Message: MsgNoValidCoins}
)

func (e *InputError) Error() string {
	return e.Message
}

// MarshalJSON encodes the error in the same shape as a failed Result.
func (e *InputError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{false, e.Message})
}

// ValidateAmount rejects negative amounts.
func ValidateAmount(amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// FilterCoins drops non-positive denominations, keeping input order.
func FilterCoins(coins []int) ([]int, error) {
	if len(coins) == 0 {
		return nil, ErrCoinsNotArray
	}
	valid := make([]int, 0, len(coins))
	for _, c := range coins {
		if c > 0 {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return nil, ErrNoValidCoins
	}
	return valid, nil
}

// DecodeInput validates untyped JSON input. amount must be a JSON number with
// an integral value >= 0. coins must be a non-empty JSON array; elements that
// are not positive integral numbers are dropped.
func DecodeInput(amount, coins json.RawMessage) (int, []int, error) {
	n, ok := decodeNumber(amount)
	if !ok {
		return 0, nil, ErrInvalidAmount
	}
	amt, ok := integral(n)
	if !ok || amt < 0 {
		return 0, nil, ErrInvalidAmount
	}

	var items []any
	if err := unmarshalNumbers(coins, &items); err != nil || len(items) == 0 {
		return 0, nil, ErrCoinsNotArray
	}

	valid := make([]int, 0, len(items))
	for _, item := range items {
		num, isNum := item.(json.Number)
		if !isNum {
			continue
		}
		if c, ok := integral(num); ok && c > 0 {
			valid = append(valid, c)
		}
	}
	if len(valid) == 0 {
		return 0, nil, ErrNoValidCoins
	}
	return amt, valid, nil
}

func decodeNumber(raw json.RawMessage) (json.Number, bool) {
	var v any
	if err := unmarshalNumbers(raw, &v); err != nil {
		return "", false
	}
	n, ok := v.(json.Number)
	return n, ok
}

func unmarshalNumbers(raw json.RawMessage, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	return dec.Decode(v)
}

// integral converts n to an int when it holds a whole number, so 5 and 5.0
// are accepted and 5.5 is not.
func integral(n json.Number) (int, bool) {
	if i, err := strconv.ParseInt(string(n), 10, 0); err == nil {
		return int(i), true
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= float64(math.MaxInt) || f < float64(math.MinInt) {
		return 0, false
	}
	return int(f), true
}
