package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// Scenario is one hypothesized world state: a gene count for every
// person (anyone not set explicitly is assumed to carry zero copies) and
// the set of people hypothesized to express the trait.
type Scenario struct {
	genes  map[string]GeneCount
	traits map[string]bool
}

func NewScenario() Scenario {
	return Scenario{
		genes:  make(map[string]GeneCount),
		traits: make(map[string]bool),
	}
}

// ScenarioFromSets builds a Scenario from the loose two-set convention
// (everyone in oneGene carries one copy, everyone in twoGenes carries
// two, everyone else zero; everyone in hasTrait expresses the trait). It
// rejects any name appearing in both gene sets, a contradiction the set
// representation cannot rule out structurally.
func ScenarioFromSets(oneGene, twoGenes, hasTrait []string) (Scenario, error) {
	s := NewScenario()

	for _, name := range oneGene {
		s.genes[name] = OneCopy
	}
	for _, name := range twoGenes {
		if _, dup := s.genes[name]; dup {
			return Scenario{}, pfx.Err(fmt.Errorf("%q is in both the one-copy and two-copy sets", name))
		}
		s.genes[name] = TwoCopies
	}
	for _, name := range hasTrait {
		s.traits[name] = true
	}

	return s, nil
}

// SetGeneCount records the hypothesized gene count for one person.
func (s Scenario) SetGeneCount(name string, g GeneCount) {
	if g == ZeroCopies {
		delete(s.genes, name)
		return
	}
	s.genes[name] = g
}

// SetTrait records whether one person is hypothesized to express the
// trait.
func (s Scenario) SetTrait(name string, expresses bool) {
	if !expresses {
		delete(s.traits, name)
		return
	}
	s.traits[name] = true
}

// GeneCount returns the hypothesized gene count for the named person.
func (s Scenario) GeneCount(name string) GeneCount {
	return s.genes[name]
}

// HasTrait reports whether the named person is hypothesized to express
// the trait.
func (s Scenario) HasTrait(name string) bool {
	return s.traits[name]
}

// Clone returns an independent copy. ForEachScenario reuses one Scenario
// across callbacks, so callers that retain a scenario past the callback
// (for example, to hand it to another goroutine) must Clone it first.
func (s Scenario) Clone() Scenario {
	c := Scenario{
		genes:  make(map[string]GeneCount, len(s.genes)),
		traits: make(map[string]bool, len(s.traits)),
	}
	for name, g := range s.genes {
		c.genes[name] = g
	}
	for name := range s.traits {
		c.traits[name] = true
	}

	return c
}

// eachName calls fn for every person the scenario mentions, for
// membership checks against the pedigree.
func (s Scenario) eachName(fn func(name string) error) error {
	for name := range s.genes {
		if err := fn(name); err != nil {
			return err
		}
	}
	for name := range s.traits {
		if err := fn(name); err != nil {
			return err
		}
	}

	return nil
}

func (s Scenario) checkMembership(ped Pedigree) error {
	return s.eachName(func(name string) error {
		if _, ok := ped[name]; !ok {
			return fmt.Errorf("%w: scenario names %q", ErrUnknownPerson, name)
		}
		return nil
	})
}
