package inference

import (
	"time"

	"github.com/probgen/heredity/pkg/cpt"
	"github.com/probgen/heredity/pkg/logging"
	"github.com/probgen/heredity/pkg/parallel"
	"github.com/probgen/heredity/pkg/pedigree"
)

// Run computes, for every person, the exact posterior marginal over gene
// copy count and trait presence by enumerating all evidence-consistent
// worlds. Runtime is O(consistent trait sets × 3^n); the pedigree size
// limit keeps that tractable.
func Run(ped *pedigree.Pedigree, opts Options) (*Result, error) {
	if err := opts.Tables.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	n := ped.Len()
	candidates := uint64(1) << n

	logger.Debug("starting enumeration",
		logging.People(n),
		logging.Workers(opts.Workers),
		logging.Uint64("trait_candidates", candidates))

	start := time.Now()

	var acc *accumulator
	if opts.Workers <= 1 {
		acc = runShard(ped, opts.Tables, 0, 1)
	} else {
		acc = runSharded(ped, opts.Tables, opts.Workers, logger)
	}

	acc.normalize()
	elapsed := time.Since(start)

	res := &Result{
		Posteriors:       acc.posteriors(),
		WorldsScored:     acc.worlds,
		CandidatesPruned: acc.pruned,
		Elapsed:          elapsed,
	}

	if opts.Metrics != nil {
		opts.Metrics.PedigreeSize.Set(float64(n))
		opts.Metrics.TraitCandidatesTotal.Add(float64(candidates))
		opts.Metrics.RecordInference("ok", elapsed, res.WorldsScored, res.CandidatesPruned)
	}
	logger.Info("inference complete",
		logging.People(n),
		logging.Worlds(res.WorldsScored),
		logging.Uint64("candidates_pruned", res.CandidatesPruned),
		logging.Latency(elapsed))

	return res, nil
}

// runSharded splits the trait-candidate space across a worker pool. Each
// shard owns a private accumulator; the partials are merged at the end so
// the reduction never races.
func runSharded(ped *pedigree.Pedigree, t cpt.Tables, workers int, logger logging.Logger) *accumulator {
	if c := 1 << ped.Len(); workers > c {
		workers = c
	}

	shards := make([]*accumulator, workers)
	pool := parallel.NewWorkerPool(workers, logger)
	for s := 0; s < workers; s++ {
		s := s
		pool.Submit(func() {
			shards[s] = runShard(ped, t, s, workers)
		})
	}
	pool.Wait()

	acc := shards[0]
	for _, shard := range shards[1:] {
		acc.merge(shard)
	}
	return acc
}

// runShard enumerates the trait candidates whose index is congruent to
// shard modulo stride. For each candidate surviving the evidence filter it
// enumerates every gene assignment: a one-copy mask over all people, then a
// two-copy mask over each submask of the complement, so each candidate
// contributes exactly 3^n worlds and no world repeats.
func runShard(ped *pedigree.Pedigree, t cpt.Tables, shard, stride int) *accumulator {
	n := ped.Len()
	acc := newAccumulator(n)
	ev := newEvidence(ped)

	total := uint32(1) << n
	full := total - 1

	for traitMask := uint32(shard); traitMask < total; traitMask += uint32(stride) {
		if !ev.consistent(traitMask) {
			acc.pruned++
			continue
		}

		for oneMask := uint32(0); oneMask < total; oneMask++ {
			comp := full &^ oneMask
			twoMask := comp
			for {
				p := jointProbability(ped, t, oneMask, twoMask, traitMask)
				acc.add(oneMask, twoMask, traitMask, p)
				if twoMask == 0 {
					break
				}
				twoMask = (twoMask - 1) & comp
			}
		}
	}

	return acc
}
