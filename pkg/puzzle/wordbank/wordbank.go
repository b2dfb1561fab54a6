// Package wordbank supplies the random sampler over domain word lists, an
// external collaborator of the core engine: it builds solution Tables
// either from the built-in default categories or from a caller-supplied
// JSON document.
package wordbank

import (
	"math/rand"
	"sort"

	"github.com/gitrdm/zebragen/pkg/puzzle"
)

// defaultCategories holds ten attribute categories, each with ten
// candidate values, as sorted slices so sampling is deterministic for a
// given rng stream.
var defaultCategories = map[string][]string{
	"Nationality": {
		"american", "british", "french", "german", "mexican",
		"norwegian", "portuguese", "russian", "scottish", "spanish",
	},
	"Food": {
		"apple", "banana", "bread", "broccoli", "cheese",
		"chicken", "egg", "potato", "rice", "tomato",
	},
	"Pet": {
		"bird", "cat", "dog", "fish", "hamster",
		"horse", "mouse", "rabbit", "snake", "turtle",
	},
	"Job": {
		"chef", "doctor", "engineer", "firefighter", "journalist",
		"lawyer", "nurse", "police-officer", "scientist", "teacher",
	},
	"Beverage": {
		"7up", "coffee", "cola", "fanta", "juice",
		"milk", "mirinda", "sprite", "tea", "water",
	},
	"Transport": {
		"bike", "boat", "bus", "car", "motorbike",
		"plane", "roller", "subway", "taxi", "train",
	},
	"Music-Genre": {
		"blues", "classical", "country", "electronic", "hip-hop",
		"jazz", "metal", "pop", "r&b", "rock",
	},
	"Movie-Genre": {
		"action", "adventure", "animation", "comedy", "documentary",
		"drama", "family", "fantasy", "romance", "thriller",
	},
	"Sport": {
		"baseball", "basketball", "climbing", "golf", "ice-hockey",
		"soccer", "surfing", "swimming", "tennis", "volleyball",
	},
	"Hobby": {
		"camping", "collecting", "cooking", "gardening", "painting",
		"photography", "reading", "singing", "traveling", "writing",
	},
}

// DefaultCategoryNames returns the built-in category names in sorted
// order, matching Python's `kinds = sorted(kinds_dict)`.
func DefaultCategoryNames() []string {
	names := make([]string, 0, len(defaultCategories))
	for name := range defaultCategories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SampleTable builds a solution Table by choosing n of the default
// categories and, within each, sampling m distinct values. The caller's
// rng is the only source of randomness — neither this function nor the
// core it feeds ever reaches for ambient/process-global randomness.
func SampleTable(rng *rand.Rand, n, m int) (*puzzle.Table, error) {
	names := DefaultCategoryNames()
	if n > len(names) {
		n = len(names)
	}

	chosen := sampleStrings(rng, names, n)
	sort.Strings(chosen)

	rows := make([]puzzle.AttributeRow, 0, len(chosen))
	for _, name := range chosen {
		pool := append([]string(nil), defaultCategories[name]...)
		values := sampleStrings(rng, pool, m)
		rows = append(rows, puzzle.AttributeRow{Name: name, Values: values})
	}
	return puzzle.NewTable(rows)
}

// sampleStrings returns k distinct elements of pool in random order,
// without replacement (a full Fisher-Yates shuffle of a copy of pool,
// truncated to its first k elements).
func sampleStrings(rng *rand.Rand, pool []string, k int) []string {
	if k > len(pool) {
		k = len(pool)
	}
	cp := append([]string(nil), pool...)
	rng.Shuffle(len(cp), func(i, j int) { cp[i], cp[j] = cp[j], cp[i] })
	return cp[:k]
}
