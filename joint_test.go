package heredity

import (
	"errors"
	"math"
	"testing"
)

func boolPtr(b bool) *bool {
	return &b
}

func singlePersonPedigree(name string) Pedigree {
	return Pedigree{
		name: {Name: name},
	}
}

func trioPedigree() Pedigree {
	return Pedigree{
		"mom":   {Name: "mom"},
		"dad":   {Name: "dad"},
		"child": {Name: "child", Mother: "mom", Father: "dad"},
	}
}

func TestJointProbabilitySinglePerson(t *testing.T) {
	ped := singlePersonPedigree("alice")
	tab := DefaultTables

	s := NewScenario()
	s.SetGeneCount("alice", OneCopy)
	s.SetTrait("alice", true)

	got, err := JointProbability(ped, tab, s)
	if err != nil {
		t.Fatal(err)
	}

	expected := tab.Prior[OneCopy] * tab.TraitGivenGenes[OneCopy][1]
	if got != expected {
		t.Errorf("Got %v, expected %v", got, expected)
	}
}

func TestJointProbabilityChildOfZeroGeneParents(t *testing.T) {
	ped := trioPedigree()
	tab := DefaultTables
	m := tab.Mutation

	childGeneFactor := map[GeneCount]float64{
		ZeroCopies: (1 - m) * (1 - m),
		OneCopy:    2 * m * (1 - m),
		TwoCopies:  m * m,
	}

	for g, geneFactor := range childGeneFactor {
		s := NewScenario()
		s.SetGeneCount("child", g)

		got, err := JointProbability(ped, tab, s)
		if err != nil {
			t.Fatal(err)
		}

		// Both parents carry zero copies and nobody expresses the trait.
		expected := tab.Prior[ZeroCopies] * tab.TraitGivenGenes[ZeroCopies][0] *
			tab.Prior[ZeroCopies] * tab.TraitGivenGenes[ZeroCopies][0] *
			geneFactor * tab.TraitGivenGenes[g][0]

		if math.Abs(got-expected) > 1e-15 {
			t.Errorf("child gene count %s: Got %v, expected %v", g, got, expected)
		}
	}
}

func TestJointProbabilityOneCopyParentTransmitsAtOneHalf(t *testing.T) {
	ped := trioPedigree()
	tab := DefaultTables

	s := NewScenario()
	s.SetGeneCount("mom", OneCopy)
	s.SetGeneCount("dad", TwoCopies)
	s.SetGeneCount("child", TwoCopies)

	got, err := JointProbability(ped, tab, s)
	if err != nil {
		t.Fatal(err)
	}

	// Mother transmits with probability exactly 0.5; father fails to
	// transmit only through mutation.
	expected := tab.Prior[OneCopy] * tab.TraitGivenGenes[OneCopy][0] *
		tab.Prior[TwoCopies] * tab.TraitGivenGenes[TwoCopies][0] *
		0.5 * (1 - tab.Mutation) * tab.TraitGivenGenes[TwoCopies][0]

	if math.Abs(got-expected) > 1e-15 {
		t.Errorf("Got %v, expected %v", got, expected)
	}
}

func TestJointProbabilityWithinUnitInterval(t *testing.T) {
	ped := trioPedigree()

	err := ForEachScenario(ped, func(s Scenario) error {
		p, err := JointProbability(ped, DefaultTables, s)
		if err != nil {
			return err
		}
		if p < 0 || p > 1 {
			t.Errorf("Got %v, expected a value in [0,1]", p)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestJointProbabilitySumsToOne(t *testing.T) {
	// With no observed evidence, the scenarios partition the whole
	// outcome space, so their joint probabilities must sum to 1.
	ped := trioPedigree()

	var sum float64
	err := ForEachScenario(ped, func(s Scenario) error {
		p, err := JointProbability(ped, DefaultTables, s)
		if err != nil {
			return err
		}
		sum += p
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("Got %v, expected 1", sum)
	}
}

func TestJointProbabilityDeterministic(t *testing.T) {
	ped := trioPedigree()

	s := NewScenario()
	s.SetGeneCount("mom", OneCopy)
	s.SetGeneCount("child", OneCopy)
	s.SetTrait("child", true)

	first, err := JointProbability(ped, DefaultTables, s)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		again, err := JointProbability(ped, DefaultTables, s)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Errorf("Got %v, expected %v on repeat call", again, first)
		}
	}
}

func TestJointProbabilityUnknownPerson(t *testing.T) {
	ped := singlePersonPedigree("alice")

	s := NewScenario()
	s.SetGeneCount("stranger", OneCopy)

	if _, err := JointProbability(ped, DefaultTables, s); !errors.Is(err, ErrUnknownPerson) {
		t.Errorf("Got %v, expected ErrUnknownPerson", err)
	}

	s = NewScenario()
	s.SetTrait("stranger", true)

	if _, err := JointProbability(ped, DefaultTables, s); !errors.Is(err, ErrUnknownPerson) {
		t.Errorf("Got %v, expected ErrUnknownPerson", err)
	}
}
