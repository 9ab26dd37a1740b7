package inference

import (
	"time"

	"github.com/probgen/heredity/pkg/cpt"
)

// Posterior is one person's finalized marginal distributions. Each array
// sums to 1 when any evidence-consistent world existed; a contradictory
// dataset leaves it all zero.
type Posterior struct {
	// Gene[g] is the posterior probability of carrying g gene copies.
	Gene [cpt.GeneCounts]float64

	// Trait[0] is the posterior probability of the trait being absent,
	// Trait[1] of it being present.
	Trait [2]float64
}

// TraitPresent returns the posterior probability of having the trait.
func (p Posterior) TraitPresent() float64 {
	return p.Trait[1]
}

// TraitAbsent returns the posterior probability of not having the trait.
func (p Posterior) TraitAbsent() float64 {
	return p.Trait[0]
}

// Result is the outcome of one inference run. Posteriors are indexed like
// the pedigree's people.
type Result struct {
	Posteriors []Posterior

	// WorldsScored counts the worlds whose joint probability was computed.
	WorldsScored uint64

	// CandidatesPruned counts trait-presence candidate sets the evidence
	// filter rejected before gene enumeration.
	CandidatesPruned uint64

	Elapsed time.Duration
}
