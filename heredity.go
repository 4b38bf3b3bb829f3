// Package heredity performs exact Bayesian inference over a family
// pedigree: given parent/child relationships and partial observations of
// a trait, it computes each person's marginal probability of carrying 0,
// 1, or 2 copies of a gene and of expressing the trait. The network
// shape is fixed (one gene-count variable and one trait variable per
// person, parent-to-child edges only), so the joint probability of any
// full assignment factors into independent per-person terms and the
// small population size permits full enumeration.
package heredity

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownPerson is returned when a scenario or query names a
	// person who is not in the pedigree.
	ErrUnknownPerson = errors.New("unknown person")

	// ErrInvalidPedigree is returned by Validate when the pedigree
	// violates its structural invariants. The inference functions assume
	// a valid pedigree and do not re-check.
	ErrInvalidPedigree = errors.New("invalid pedigree")
)

// Person is one row of a pedigree. Mother and Father are either both
// empty (a founder) or both name other people in the same pedigree.
// Trait is nil when trait expression has not been observed.
type Person struct {
	Name   string
	Mother string
	Father string
	Trait  *bool
}

// Pedigree maps each person's name to their record. It is read-only for
// the lifetime of an inference run.
type Pedigree map[string]Person

// Names returns every person's name in sorted order, so that iteration
// over the pedigree is deterministic.
func (ped Pedigree) Names() []string {
	names := make([]string, 0, len(ped))
	for name := range ped {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// HasParents reports whether the named person has parents in the
// pedigree. A person with no parents takes the population prior.
func (ped Pedigree) HasParents(name string) bool {
	p, ok := ped[name]
	return ok && p.Mother != ""
}

// ParentsOf returns the names of the person's mother and father. ok is
// false for founders and for names not present in the pedigree.
func (ped Pedigree) ParentsOf(name string) (mother, father string, ok bool) {
	p, exists := ped[name]
	if !exists || p.Mother == "" {
		return "", "", false
	}

	return p.Mother, p.Father, true
}

// ObservedTrait returns the person's observed trait value. known is
// false when no observation exists for that person.
func (ped Pedigree) ObservedTrait(name string) (value, known bool) {
	p, exists := ped[name]
	if !exists || p.Trait == nil {
		return false, false
	}

	return *p.Trait, true
}

// Founders returns the names of everyone without parents, sorted.
func (ped Pedigree) Founders() []string {
	founders := make([]string, 0, len(ped))
	for name, p := range ped {
		if p.Mother == "" && p.Father == "" {
			founders = append(founders, name)
		}
	}
	sort.Strings(founders)

	return founders
}

// Validate checks the structural invariants the inference code relies
// on: every parent reference resolves to a person in the pedigree,
// parents come in pairs, no record disagrees with its own map key, and
// the parent/child relation is acyclic. The recursion in the engine is
// only guaranteed to terminate when these hold, so every loader in this
// package calls Validate before returning a Pedigree.
func (ped Pedigree) Validate() error {
	for name, p := range ped {
		if p.Name != name {
			return fmt.Errorf("%w: record for %q is keyed as %q", ErrInvalidPedigree, p.Name, name)
		}
		if (p.Mother == "") != (p.Father == "") {
			return fmt.Errorf("%w: %q has exactly one parent; parents must be both present or both absent", ErrInvalidPedigree, name)
		}
		if p.Mother != "" {
			if _, ok := ped[p.Mother]; !ok {
				return fmt.Errorf("%w: %q names mother %q who is not in the pedigree", ErrInvalidPedigree, name, p.Mother)
			}
			if _, ok := ped[p.Father]; !ok {
				return fmt.Errorf("%w: %q names father %q who is not in the pedigree", ErrInvalidPedigree, name, p.Father)
			}
		}
	}

	// Acyclicity via three-color depth-first search over parent edges.
	const (
		unvisited = iota
		inProgress
		done
	)
	state := make(map[string]int, len(ped))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case inProgress:
			return fmt.Errorf("%w: %q is their own ancestor", ErrInvalidPedigree, name)
		}
		state[name] = inProgress

		if p := ped[name]; p.Mother != "" {
			if err := visit(p.Mother); err != nil {
				return err
			}
			if err := visit(p.Father); err != nil {
				return err
			}
		}
		state[name] = done

		return nil
	}

	for _, name := range ped.Names() {
		if err := visit(name); err != nil {
			return err
		}
	}

	return nil
}
