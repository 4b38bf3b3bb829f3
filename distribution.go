package heredity

import (
	"errors"
	"fmt"
	"sort"
)

// ErrDegenerateDistribution is returned by Normalize when a person's
// accumulated weight is zero. That means no scenario was ever fed to
// Update for them, which is an enumeration bug in the caller rather
// than a data problem.
var ErrDegenerateDistribution = errors.New("degenerate distribution")

// PersonDistribution accumulates unnormalized probability mass for one
// person: one weight per gene count and one per trait outcome
// (index 0 = does not express, 1 = expresses). After Normalize each
// vector sums to 1.
type PersonDistribution struct {
	Gene  [3]float64
	Trait [2]float64
}

// Distributions aggregates probability mass per person across every
// enumerated scenario. The life cycle is: NewDistributions, one Update
// per scenario with that scenario's joint probability as the weight,
// then exactly one Normalize. Updating after Normalize produces
// meaningless values and is not guarded.
type Distributions map[string]*PersonDistribution

// NewDistributions returns an empty accumulator covering everyone in
// the pedigree.
func NewDistributions(ped Pedigree) Distributions {
	d := make(Distributions, len(ped))
	for name := range ped {
		d[name] = &PersonDistribution{}
	}

	return d
}

// Update adds weight to each person's bucket implied by the scenario:
// their hypothesized gene count and whether they are hypothesized to
// express the trait. Scenarios naming people outside the accumulator
// are rejected with ErrUnknownPerson.
func (d Distributions) Update(s Scenario, weight float64) error {
	if err := s.eachName(func(name string) error {
		if _, ok := d[name]; !ok {
			return fmt.Errorf("%w: scenario names %q", ErrUnknownPerson, name)
		}
		return nil
	}); err != nil {
		return err
	}

	for name, pd := range d {
		pd.Gene[s.GeneCount(name)] += weight
		pd.Trait[boolToIndex(s.HasTrait(name))] += weight
	}

	return nil
}

// Normalize rescales every person's gene and trait vectors in place so
// that each sums to 1, preserving relative proportions. It fails with
// ErrDegenerateDistribution on the first person whose accumulated
// weight is zero.
func (d Distributions) Normalize() error {
	// Sorted order so the reported person is deterministic on failure.
	for _, name := range d.names() {
		pd := d[name]

		geneSum := pd.Gene[0] + pd.Gene[1] + pd.Gene[2]
		traitSum := pd.Trait[0] + pd.Trait[1]
		if geneSum == 0 || traitSum == 0 {
			return fmt.Errorf("%w: no probability mass accumulated for %q", ErrDegenerateDistribution, name)
		}

		for g := range pd.Gene {
			pd.Gene[g] /= geneSum
		}
		for t := range pd.Trait {
			pd.Trait[t] /= traitSum
		}
	}

	return nil
}

func (d Distributions) names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
