// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command coinchange runs the coin change solvers from the terminal.
//
//	coinchange solve --amount 63 --coins 1,5,10,25 --algorithm both
//	coinchange series --coins 1,3,4 --max 50
//	coinchange batch -f cases.yaml
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	pretty  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "coinchange",
	Short: "Minimum coin change solver",
	Long: `coinchange finds the fewest coins that add up to an amount, using either
the greedy largest-coin-first strategy or dynamic programming, and shows
where the two disagree.

Results are printed as JSON.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Indent JSON output")

	rootCmd.AddCommand(solveCmd, seriesCmd, batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
