package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// newRootCommand builds the zebragen CLI: a root command with two
// subcommands, generate and solve, sharing a --env-file flag that loads an
// optional .env file into the process environment before either
// subcommand runs. No flag default is read from the environment; every
// setting still comes from the command line.
func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "zebragen",
		Short: "Generate and verify zebra-style logic puzzles",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				return godotenv.Load(envFile)
			}
			_ = godotenv.Load()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "path to a .env file (default: load .env from the working directory if present)")

	root.AddCommand(newGenerateCommand())
	root.AddCommand(newSolveCommand())
	return root
}

func newLogger(verbose bool) *log.Logger {
	if !verbose {
		return nil
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

func logf(logger *log.Logger, runID, format string, args ...any) {
	if logger == nil {
		return
	}
	logger.Printf("[zebragen:%s] %s", runID, fmt.Sprintf(format, args...))
}

func newSeededRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
