package heredity

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
)

// Tables holds the fixed probability constants the model is conditioned
// on. They are plain values passed into the inference functions, never
// package-level mutable state, so the engine stays pure.
type Tables struct {
	// Prior is the unconditional gene-count distribution applied to
	// people without parents, indexed by GeneCount.
	Prior [3]float64

	// Mutation is the probability that a transmitted gene copy flips
	// state on the way from parent to child, applied independently per
	// transmitted copy.
	Mutation float64

	// TraitGivenGenes[g][t] is the probability of trait expression t
	// (0 = does not express, 1 = expresses) given gene count g. Each row
	// sums to 1.
	TraitGivenGenes [3][2]float64
}

// DefaultTables carries the standard constants for this model.
var DefaultTables = Tables{
	Prior:    [3]float64{0.96, 0.03, 0.01},
	Mutation: 0.01,
	TraitGivenGenes: [3][2]float64{
		ZeroCopies: {0.99, 0.01},
		OneCopy:    {0.44, 0.56},
		TwoCopies:  {0.35, 0.65},
	},
}

const tablesTolerance = 1e-9

// Validate confirms the tables describe proper probability
// distributions: the prior and each conditional row sum to 1 and every
// entry lies in [0,1].
func (t Tables) Validate() error {
	if t.Mutation < 0 || t.Mutation > 1 {
		return pfx.Err(fmt.Errorf("mutation probability %v is outside [0,1]", t.Mutation))
	}

	var priorSum float64
	for g, p := range t.Prior {
		if p < 0 || p > 1 {
			return pfx.Err(fmt.Errorf("prior for gene count %d is %v, outside [0,1]", g, p))
		}
		priorSum += p
	}
	if math.Abs(priorSum-1) > tablesTolerance {
		return pfx.Err(fmt.Errorf("prior sums to %v, expected 1", priorSum))
	}

	for g, row := range t.TraitGivenGenes {
		var rowSum float64
		for _, p := range row {
			if p < 0 || p > 1 {
				return pfx.Err(fmt.Errorf("trait probability %v for gene count %d is outside [0,1]", p, g))
			}
			rowSum += p
		}
		if math.Abs(rowSum-1) > tablesTolerance {
			return pfx.Err(fmt.Errorf("trait row for gene count %d sums to %v, expected 1", g, rowSum))
		}
	}

	return nil
}

// transmissionProbability is the chance that a parent with the given
// gene count passes a copy of the gene to a child. A parent with no
// copies transmits one only through mutation; a parent with two copies
// fails to transmit only through mutation; a parent with one copy
// transmits with probability exactly 0.5 because the mutate-in and
// mutate-out paths cancel.
func (t Tables) transmissionProbability(g GeneCount) float64 {
	switch g {
	case OneCopy:
		return 0.5
	case TwoCopies:
		return 1 - t.Mutation
	default:
		return t.Mutation
	}
}
