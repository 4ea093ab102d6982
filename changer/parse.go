// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package changer

import (
	"slices"
	"strconv"
	"strings"
)

// ParseDenominations parses a comma-separated list such as "1, 5, 10, 25".
// Each item contributes its leading integer ("10c" is 10); items without one,
// and values <= 0, are dropped. The result is sorted ascending.
func ParseDenominations(text string) []int {
	coins := []int{}
	for _, item := range strings.Split(text, ",") {
		n, ok := leadingInt(strings.TrimSpace(item))
		if ok && n > 0 {
			coins = append(coins, n)
		}
	}
	slices.Sort(coins)
	return coins
}

// FormatDenominations is the inverse of ParseDenominations.
func FormatDenominations(coins []int) string {
	parts := make([]string, len(coins))
	for i, c := range coins {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}

func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
