package inference

import (
	"github.com/probgen/heredity/pkg/cpt"
)

// accumulator sums joint probabilities into per-person marginal buckets.
// Accumulation is a pure additive reduction, so shards can each own one and
// be merged elementwise afterwards; only float rounding depends on order.
type accumulator struct {
	gene   [][cpt.GeneCounts]float64
	trait  [][2]float64
	worlds uint64
	pruned uint64
}

func newAccumulator(n int) *accumulator {
	return &accumulator{
		gene:  make([][cpt.GeneCounts]float64, n),
		trait: make([][2]float64, n),
	}
}

// add credits one world's joint probability to every person's bucket for
// their gene count and trait presence in that world.
func (a *accumulator) add(oneMask, twoMask, traitMask uint32, p float64) {
	for i := range a.gene {
		a.gene[i][geneCount(i, oneMask, twoMask)] += p
		if traitMask&(1<<i) != 0 {
			a.trait[i][1] += p
		} else {
			a.trait[i][0] += p
		}
	}
	a.worlds++
}

// merge folds another shard's buckets and counters into this one.
func (a *accumulator) merge(b *accumulator) {
	for i := range a.gene {
		for g := range a.gene[i] {
			a.gene[i][g] += b.gene[i][g]
		}
		a.trait[i][0] += b.trait[i][0]
		a.trait[i][1] += b.trait[i][1]
	}
	a.worlds += b.worlds
	a.pruned += b.pruned
}

// normalize rescales each bucket set to sum to 1. A zero sum means every
// world contradicted the evidence; the buckets stay all zero rather than
// dividing by zero.
func (a *accumulator) normalize() {
	for i := range a.gene {
		scale(a.gene[i][:])
		scale(a.trait[i][:])
	}
}

func scale(buckets []float64) {
	sum := 0.0
	for _, v := range buckets {
		sum += v
	}
	if sum <= 0 {
		return
	}
	for j := range buckets {
		buckets[j] /= sum
	}
}

// posteriors copies the normalized buckets into result form.
func (a *accumulator) posteriors() []Posterior {
	out := make([]Posterior, len(a.gene))
	for i := range a.gene {
		out[i] = Posterior{Gene: a.gene[i], Trait: a.trait[i]}
	}
	return out
}
