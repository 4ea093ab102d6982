// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/coinchanger/changer"
)

var (
	solveAmount    int
	solveCoins     []int
	solveAlgorithm string

	seriesCoins []int
	seriesMax   int
)

// solveCmd solves a single amount
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one amount",
	Long: `Solves one amount with the chosen algorithm.

Algorithms: greedy, dynamic (alias dp), both (alias compare).
Coin order matters for dynamic programming ties: among equally short
answers, the one using the earlier listed coin wins.

Example:
  coinchange solve --amount 6 --coins 1,3,4 --algorithm both`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

// seriesCmd shows greedy and optimal counts for a range of amounts
var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Compare greedy and optimal counts for 1..max",
	Long: `Computes greedy and dynamic programming coin counts for every amount
from 1 to max and lists the amounts where greedy is not optimal.

Example:
  coinchange series --coins 1,3,4 --max 20`,
	Args: cobra.NoArgs,
	RunE: runSeries,
}

func init() {
	solveCmd.Flags().IntVarP(&solveAmount, "amount", "a", 0, "Amount to make change for")
	solveCmd.Flags().IntSliceVarP(&solveCoins, "coins", "c", nil, "Comma-separated denominations")
	solveCmd.Flags().StringVar(&solveAlgorithm, "algorithm", string(changer.ModeDynamic), "greedy, dynamic or both")
	_ = solveCmd.MarkFlagRequired("amount")
	_ = solveCmd.MarkFlagRequired("coins")

	seriesCmd.Flags().IntSliceVarP(&seriesCoins, "coins", "c", nil, "Comma-separated denominations")
	seriesCmd.Flags().IntVar(&seriesMax, "max", 100, "Largest amount in the series")
	_ = seriesCmd.MarkFlagRequired("coins")
}

func runSolve(cmd *cobra.Command, args []string) error {
	outcome := changer.Solve(solveAmount, solveCoins, changer.ParseMode(solveAlgorithm))
	if err := writeJSON(cmd.OutOrStdout(), outcome); err != nil {
		return err
	}
	if outcome.Err != nil {
		return outcome.Err
	}
	return nil
}

// seriesSummary is the series command output
type seriesSummary struct {
	Coins      []int `json:"coins"`
	Max        int   `json:"max"`
	Suboptimal []int `json:"suboptimal"`
	Infeasible []int `json:"infeasible"`
}

func runSeries(cmd *cobra.Command, args []string) error {
	series, err := changer.NewSeries(seriesMax, seriesCoins)
	if err != nil {
		return err
	}

	summary := seriesSummary{
		Coins:      series.Coins,
		Max:        seriesMax,
		Suboptimal: series.Suboptimal(),
		Infeasible: []int{},
	}
	if summary.Suboptimal == nil {
		summary.Suboptimal = []int{}
	}
	for i, count := range series.Dynamic {
		if count < 0 {
			summary.Infeasible = append(summary.Infeasible, series.Amounts[i])
		}
	}

	return writeJSON(cmd.OutOrStdout(), summary)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
