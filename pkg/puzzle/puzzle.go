package puzzle

import (
	"math/rand"
	"time"
)

// Options configures one GeneratePuzzle call; the table and the random
// source are passed to GeneratePuzzle as separate parameters.
type Options struct {
	Level                   int
	MinimalConditions       bool
	MaxSecondsForMinimizing time.Duration // <= 0 means unbounded
	Tries                   int           // <= 0 defaults to 10, see Generate
}

// Result is the output of GeneratePuzzle: the shuffled, rendered premise
// list and whether minimization's deadline tripped before it confirmed a
// local minimum.
type Result struct {
	Clues       []string
	TimeElapsed bool
}

// DefaultOptions returns the baseline configuration: level 1, no
// minimization, unbounded deadline, 10 generation attempts.
func DefaultOptions() Options {
	return Options{
		Level:                   1,
		MinimalConditions:       false,
		MaxSecondsForMinimizing: 0,
		Tries:                   10,
	}
}

// GeneratePuzzle drives the three phases — generate (via Generate),
// uniqueness checking (via CountSolutions, invoked from inside Minimize),
// and minimize — then renders and shuffles the resulting clue set. rng
// must be seeded explicitly by the caller; the core never reaches for
// process-global randomness.
func GeneratePuzzle(table *Table, opts Options, rng *rand.Rand) (*Result, error) {
	clues, err := Generate(table, opts.Level, rng, opts.Tries)
	if err != nil {
		return nil, err
	}

	timeElapsed := false
	if opts.MinimalConditions {
		clues, timeElapsed = Minimize(clues, table, opts.MaxSecondsForMinimizing)
	}

	rendered := make([]string, len(clues))
	for i, c := range clues {
		rendered[i] = c.Render()
	}
	rng.Shuffle(len(rendered), func(i, j int) {
		rendered[i], rendered[j] = rendered[j], rendered[i]
	})

	return &Result{Clues: rendered, TimeElapsed: timeElapsed}, nil
}
