// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/coinchanger/changer"
	"github.com/danielhkuo/coinchanger/cliparse"
)

var (
	batchFile      string
	batchWorkers   int
	batchMaxAmount int
)

// Case is one entry of a batch file
type Case struct {
	Name      string `yaml:"name" json:"name"`
	Amount    int    `yaml:"amount" json:"amount"`
	Coins     []int  `yaml:"coins" json:"coins"`
	Algorithm string `yaml:"algorithm" json:"algorithm,omitempty"`
}

// CaseResult is one line of batch output
type CaseResult struct {
	Name    string          `json:"name"`
	Outcome changer.Outcome `json:"outcome"`
}

// batchFileFormat accepts either a bare list of cases or {cases: [...]}
type batchFileFormat struct {
	Cases []Case `yaml:"cases"`
}

// batchCmd solves many cases from a YAML file
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Solve cases from a YAML file",
	Long: `Reads cases from a YAML file and prints one JSON line per case, in
input order. Cases are solved concurrently.

File format:
  cases:
    - name: us-coins
      amount: 63
      coins: [1, 5, 10, 25]
      algorithm: both
    - name: greedy-trap
      amount: 6
      coins: [1, 3, 4]

Use -f - to read from stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var r io.Reader = cmd.InOrStdin()
		if batchFile != "-" {
			f, err := os.Open(batchFile)
			if err != nil {
				return fmt.Errorf("failed to open batch file: %w", err)
			}
			defer f.Close()
			r = f
		}

		cases, err := loadCases(r)
		if err != nil {
			return err
		}
		return runBatch(cmd.Context(), cases, cmd.OutOrStdout(), batchWorkers, batchMaxAmount)
	},
}

func init() {
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "YAML file with cases (- for stdin)")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", runtime.NumCPU(), "Cases solved in parallel")
	batchCmd.Flags().IntVar(&batchMaxAmount, "max-amount", cliparse.DefaultMaxAmount, "Largest amount a case may ask for (0 disables the check)")
	_ = batchCmd.MarkFlagRequired("file")
}

// loadCases parses a batch file
func loadCases(r io.Reader) ([]Case, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read cases: %w", err)
	}

	var wrapped batchFileFormat
	if err := yaml.Unmarshal(data, &wrapped); err == nil && len(wrapped.Cases) > 0 {
		return nameCases(wrapped.Cases), nil
	}

	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse cases: %w", err)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("no cases found")
	}
	return nameCases(cases), nil
}

func nameCases(cases []Case) []Case {
	for i := range cases {
		if cases[i].Name == "" {
			cases[i].Name = fmt.Sprintf("case-%d", i+1)
		}
	}
	return cases
}

// runBatch solves every case with at most workers goroutines and writes the
// results in input order. Cases above maxAmount are reported as input errors
// without being solved.
func runBatch(ctx context.Context, cases []Case, w io.Writer, workers, maxAmount int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]CaseResult, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, c := range cases {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = CaseResult{
				Name:    c.Name,
				Outcome: solveCase(c, maxAmount),
			}
			slog.Debug("case solved", "name", c.Name, "success", results[i].Outcome.Success())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if err := writeJSON(w, res); err != nil {
			return err
		}
	}

	slog.Info("batch complete", "cases", len(cases))
	return nil
}

func solveCase(c Case, maxAmount int) changer.Outcome {
	if maxAmount > 0 && c.Amount > maxAmount {
		return changer.Outcome{Err: &changer.InputError{
			Message: fmt.Sprintf("Amount must not exceed %d", maxAmount),
		}}
	}
	return changer.Solve(c.Amount, c.Coins, changer.ParseMode(c.Algorithm))
}
