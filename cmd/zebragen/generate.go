package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gitrdm/zebragen/internal/ids"
	"github.com/gitrdm/zebragen/pkg/puzzle"
	"github.com/gitrdm/zebragen/pkg/puzzle/render"
	"github.com/gitrdm/zebragen/pkg/puzzle/wordbank"
)

// puzzleOutput is the JSON shape written by --output, or printed to stdout
// in human-readable form otherwise.
type puzzleOutput struct {
	RunID       string   `json:"run_id"`
	Clues       []string `json:"clues"`
	TimeElapsed bool     `json:"time_elapsed"`
}

func newGenerateCommand() *cobra.Command {
	var (
		attributes int
		objects    int
		level      int
		seed       int64
		tries      int
		minimal    bool
		deadline   time.Duration
		tablePath  string
		outputPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample or load a solution table and generate a puzzle for it",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)
			runID := ids.NewRunID()

			rng, resolvedSeed := newSeededRand(seed)

			var table *puzzle.Table
			var err error
			if tablePath != "" {
				data, readErr := os.ReadFile(tablePath)
				if readErr != nil {
					return fmt.Errorf("zebragen: reading table file: %w", readErr)
				}
				table, err = wordbank.LoadTableJSON(data)
			} else {
				table, err = wordbank.SampleTable(rng, attributes, objects)
			}
			if err != nil {
				return fmt.Errorf("zebragen: building table: %w", err)
			}
			logf(logger, runID, "table built: N=%d M=%d level=%d seed=%d", table.N(), table.M(), level, resolvedSeed)

			opts := puzzle.DefaultOptions()
			opts.Level = level
			opts.MinimalConditions = minimal
			opts.MaxSecondsForMinimizing = deadline
			opts.Tries = tries

			result, err := puzzle.GeneratePuzzle(table, opts, rng)
			if err != nil {
				return fmt.Errorf("zebragen: generating puzzle: %w", err)
			}
			logf(logger, runID, "generated %d clues, time_elapsed=%v", len(result.Clues), result.TimeElapsed)

			return writeGenerateOutput(cmd, outputPath, runID, table, result)
		},
	}

	flags := pflag.NewFlagSet("generate", pflag.ExitOnError)
	flags.IntVar(&attributes, "attributes", 4, "number of attribute rows to sample from the default word bank")
	flags.IntVar(&objects, "objects", 4, "number of columns (objects) per attribute row")
	flags.IntVar(&level, "level", 1, "difficulty level, 1-20")
	flags.Int64Var(&seed, "seed", 0, "PRNG seed (0 selects one from the clock)")
	flags.IntVar(&tries, "tries", 10, "generator attempt budget")
	flags.BoolVar(&minimal, "minimal", false, "run the minimizer to shrink the clue set")
	flags.DurationVar(&deadline, "deadline", 0, "minimizer wall-clock budget (0 = unbounded)")
	flags.StringVar(&tablePath, "table", "", "path to a JSON solution table (overrides --attributes/--objects sampling)")
	flags.StringVar(&outputPath, "output", "", "write the rendered puzzle as JSON to this path instead of stdout")
	flags.BoolVar(&verbose, "verbose", false, "log generation progress to stderr")
	cmd.Flags().AddFlagSet(flags)

	return cmd
}

func writeGenerateOutput(cmd *cobra.Command, outputPath, runID string, table *puzzle.Table, result *puzzle.Result) error {
	if outputPath != "" {
		out := puzzleOutput{RunID: runID, Clues: result.Clues, TimeElapsed: result.TimeElapsed}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("zebragen: encoding output: %w", err)
		}
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			return fmt.Errorf("zebragen: writing output: %w", err)
		}
		return nil
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, ".:: Puzzle ::.")
	fmt.Fprintln(w, render.FormatTable(table))
	fmt.Fprintln(w)
	fmt.Fprintln(w, render.FormatClues(result.Clues))
	if result.TimeElapsed {
		fmt.Fprintln(w, "\n(minimization deadline elapsed; clue set may not be locally minimal)")
	}
	return nil
}
