package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gitrdm/zebragen/internal/ids"
	"github.com/gitrdm/zebragen/pkg/puzzle"
	"github.com/gitrdm/zebragen/pkg/puzzle/wordbank"
)

func newSolveCommand() *cobra.Command {
	var (
		tablePath string
		level     int
		verbose   bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Check whether a solution table is uniquely determined by everything true about it at a level",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)
			runID := ids.NewRunID()

			if tablePath == "" {
				return fmt.Errorf("zebragen: solve requires --table")
			}
			data, err := os.ReadFile(tablePath)
			if err != nil {
				return fmt.Errorf("zebragen: reading table file: %w", err)
			}
			table, err := wordbank.LoadTableJSON(data)
			if err != nil {
				return fmt.Errorf("zebragen: building table: %w", err)
			}

			clues, err := puzzle.AllSatisfiedClues(table, level)
			if err != nil {
				return fmt.Errorf("zebragen: enumerating clues: %w", err)
			}
			logf(logger, runID, "enumerated %d satisfied clues at level %d", len(clues), level)

			store := puzzle.NewCandidateStore(table)
			solutions := puzzle.CountSolutions(clues, store, 2)

			w := cmd.OutOrStdout()
			switch solutions {
			case 1:
				fmt.Fprintf(w, "unique: every clue true about this table at level %d pins down exactly one solution\n", level)
			case 0:
				fmt.Fprintf(w, "contradiction: no solution satisfies every clue true about this table at level %d (this should not happen)\n", level)
			default:
				fmt.Fprintf(w, "not unique: at least 2 distinct solutions remain at level %d\n", level)
			}
			return nil
		},
	}

	flags := pflag.NewFlagSet("solve", pflag.ExitOnError)
	flags.StringVar(&tablePath, "table", "", "path to a JSON solution table")
	flags.IntVar(&level, "level", 20, "difficulty level whose catalog to draw clues from, 1-20")
	flags.BoolVar(&verbose, "verbose", false, "log verification progress to stderr")
	cmd.Flags().AddFlagSet(flags)

	return cmd
}
