// Package ids tags each generation run with a unique identifier, used in
// logging and output metadata so a batch of puzzles can be correlated
// back to the run that produced them.
package ids

import "github.com/google/uuid"

// NewRunID returns a fresh run identifier, grounded on the one concrete
// uuid usage in the example pack (lesmotsdatche's store layer calling
// uuid.New().String() to tag records).
func NewRunID() string {
	return uuid.New().String()
}
