package inference

import (
	"github.com/probgen/heredity/pkg/cpt"
	"github.com/probgen/heredity/pkg/pedigree"
)

// A world is a complete assignment of gene count and trait presence to
// every person, encoded as three bitmasks over pedigree indexes: the people
// with exactly one gene copy, the people with exactly two, and the people
// with the trait. Anyone in neither gene mask has zero copies.

// geneCount reads person i's gene copy count out of a world.
func geneCount(i int, oneMask, twoMask uint32) int {
	bit := uint32(1) << i
	switch {
	case oneMask&bit != 0:
		return 1
	case twoMask&bit != 0:
		return 2
	default:
		return 0
	}
}

// transmission is the probability that a parent with the given gene count
// passes the variant to a child: a certain coin flip for one copy, and the
// mutation rate flipping the certain outcomes at zero and two copies.
func transmission(gene int, t cpt.Tables) float64 {
	switch gene {
	case 1:
		return 0.5
	case 2:
		return 1 - t.MutationRate
	default:
		return t.MutationRate
	}
}

// childGeneProbability convolves the two parents' independent transmission
// probabilities m and f into the probability of the child carrying gene
// copies: P(0) = (1-m)(1-f), P(1) = m(1-f) + (1-m)f, P(2) = m*f.
func childGeneProbability(gene int, m, f float64) float64 {
	switch gene {
	case 0:
		return (1 - m) * (1 - f)
	case 1:
		return m*(1-f) + (1-m)*f
	default:
		return m * f
	}
}

// jointProbability computes the exact joint probability of one world under
// the network. Each person contributes an independent factor: the gene
// factor from the founder prior or the parents' transmission convolution,
// times the trait factor from the trait CPT. An empty pedigree yields 1,
// the empty product.
func jointProbability(ped *pedigree.Pedigree, t cpt.Tables, oneMask, twoMask, traitMask uint32) float64 {
	p := 1.0

	for i := 0; i < ped.Len(); i++ {
		gene := geneCount(i, oneMask, twoMask)
		present := traitMask&(1<<i) != 0

		var geneProb float64
		if ped.Founder(i) {
			geneProb = t.GenePrior[gene]
		} else {
			m := transmission(geneCount(ped.Mother(i), oneMask, twoMask), t)
			f := transmission(geneCount(ped.Father(i), oneMask, twoMask), t)
			geneProb = childGeneProbability(gene, m, f)
		}

		p *= geneProb * t.Trait(gene, present)
	}

	return p
}
