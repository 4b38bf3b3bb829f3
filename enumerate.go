package heredity

// ForEachScenario invokes fn once for every joint assignment consistent
// with the observed evidence: people with an observed trait keep that
// value, everyone else takes both trait values, and every person takes
// each gene count in {0,1,2}. The walk is recursive backtracking over
// people in sorted-name order, so the visit order is deterministic.
//
// One Scenario is shared and mutated in place between callbacks; fn
// must Clone it before retaining it. A non-nil error from fn stops the
// walk and is returned as-is.
func ForEachScenario(ped Pedigree, fn func(Scenario) error) error {
	names := ped.Names()
	s := NewScenario()

	var walk func(i int) error
	walk = func(i int) error {
		if i == len(names) {
			return fn(s)
		}
		name := names[i]

		traitChoices := []bool{false, true}
		if observed, known := ped.ObservedTrait(name); known {
			traitChoices = []bool{observed}
		}

		for _, expresses := range traitChoices {
			s.SetTrait(name, expresses)
			for _, g := range []GeneCount{ZeroCopies, OneCopy, TwoCopies} {
				s.SetGeneCount(name, g)
				if err := walk(i + 1); err != nil {
					return err
				}
			}
			s.SetGeneCount(name, ZeroCopies)
		}
		s.SetTrait(name, false)

		return nil
	}

	return walk(0)
}

// NumScenarios returns how many joint assignments ForEachScenario will
// visit: three gene counts per person times two trait values per person
// without an observed trait.
func NumScenarios(ped Pedigree) int {
	n := 1
	for name := range ped {
		n *= 3
		if _, known := ped.ObservedTrait(name); !known {
			n *= 2
		}
	}

	return n
}

// Infer runs the whole pipeline: it enumerates every evidence-consistent
// scenario, weights each person's outcome buckets by the scenario's
// joint probability, and normalizes the result. Each person's returned
// gene vector and trait vector sums to 1.
func Infer(ped Pedigree, tables Tables) (Distributions, error) {
	dist := NewDistributions(ped)

	err := ForEachScenario(ped, func(s Scenario) error {
		p, err := JointProbability(ped, tables, s)
		if err != nil {
			return err
		}
		return dist.Update(s, p)
	})
	if err != nil {
		return nil, err
	}

	if err := dist.Normalize(); err != nil {
		return nil, err
	}

	return dist, nil
}
