package heredity

// JointProbability computes the probability that the world is exactly as
// the scenario describes: everyone carries precisely their hypothesized
// number of gene copies and precisely the hypothesized set of people
// expresses the trait.
//
// The fixed network shape makes the joint factor into independent
// per-person terms: each person's gene count depends only on their
// parents' gene counts (or on the population prior for founders), and
// each person's trait depends only on their own gene count. The result
// is the product of those factors and always lies in [0,1].
//
// The pedigree is assumed to satisfy the Validate invariants. The only
// failure mode is a scenario that names a person absent from the
// pedigree, reported as ErrUnknownPerson.
func JointProbability(ped Pedigree, tables Tables, s Scenario) (float64, error) {
	if err := s.checkMembership(ped); err != nil {
		return 0, err
	}

	// Sorted order keeps the floating-point product bit-for-bit
	// reproducible across runs.
	joint := 1.0
	for _, name := range ped.Names() {
		person := ped[name]
		g := s.GeneCount(name)

		var geneFactor float64
		if person.Mother == "" {
			geneFactor = tables.Prior[g]
		} else {
			pMother := tables.transmissionProbability(s.GeneCount(person.Mother))
			pFather := tables.transmissionProbability(s.GeneCount(person.Father))

			switch g {
			case TwoCopies:
				geneFactor = pMother * pFather
			case OneCopy:
				geneFactor = pMother*(1-pFather) + (1-pMother)*pFather
			default:
				geneFactor = (1 - pMother) * (1 - pFather)
			}
		}

		traitFactor := tables.TraitGivenGenes[g][boolToIndex(s.HasTrait(name))]

		joint *= geneFactor * traitFactor
	}

	return joint, nil
}

func boolToIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
