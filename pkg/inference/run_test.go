package inference

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probgen/heredity/pkg/metrics"
	"github.com/probgen/heredity/pkg/pedigree"
)

const tolerance = 1e-9

// TestRun_LoneFounder checks that a founder with no observations keeps the
// population prior as posterior, and a trait posterior equal to the
// prior-weighted average of the trait CPT.
func TestRun_LoneFounder(t *testing.T) {
	ped := mustPedigree(t, []pedigree.Person{{Name: "A"}})

	res, err := Run(ped, DefaultOptions())
	require.NoError(t, err)

	post := res.Posteriors[0]
	assert.InDelta(t, 0.96, post.Gene[0], tolerance)
	assert.InDelta(t, 0.03, post.Gene[1], tolerance)
	assert.InDelta(t, 0.01, post.Gene[2], tolerance)

	// 0.96*0.01 + 0.03*0.56 + 0.01*0.65
	assert.InDelta(t, 0.0329, post.TraitPresent(), tolerance)
	assert.InDelta(t, 0.9671, post.TraitAbsent(), tolerance)

	// 2 trait candidates, 3 gene assignments each
	assert.Equal(t, uint64(6), res.WorldsScored)
	assert.Equal(t, uint64(0), res.CandidatesPruned)
}

// TestRun_ObservedTrait checks Bayes reweighting for a single person
// observed to have the trait: posterior gene proportional to
// prior * P(trait | gene), trait posterior a point mass.
func TestRun_ObservedTrait(t *testing.T) {
	ped := mustPedigree(t, []pedigree.Person{{Name: "A", Trait: pedigree.TraitPresent}})

	res, err := Run(ped, DefaultOptions())
	require.NoError(t, err)

	post := res.Posteriors[0]
	norm := 0.96*0.01 + 0.03*0.56 + 0.01*0.65
	assert.InDelta(t, 0.96*0.01/norm, post.Gene[0], tolerance)
	assert.InDelta(t, 0.03*0.56/norm, post.Gene[1], tolerance)
	assert.InDelta(t, 0.01*0.65/norm, post.Gene[2], tolerance)

	assert.Equal(t, 1.0, post.TraitPresent())
	assert.Equal(t, 0.0, post.TraitAbsent())

	// The no-trait candidate is pruned by the evidence filter
	assert.Equal(t, uint64(1), res.CandidatesPruned)
	assert.Equal(t, uint64(3), res.WorldsScored)
}

// TestRun_Family checks the three-person reference pedigree: Harry with
// parents James (observed trait) and Lily (observed no trait).
func TestRun_Family(t *testing.T) {
	ped := mustPedigree(t, []pedigree.Person{
		{Name: "Harry", MotherName: "Lily", FatherName: "James"},
		{Name: "James", Trait: pedigree.TraitPresent},
		{Name: "Lily", Trait: pedigree.TraitAbsent},
	})

	res, err := Run(ped, DefaultOptions())
	require.NoError(t, err)

	harry, james, lily := res.Posteriors[0], res.Posteriors[1], res.Posteriors[2]

	// Posteriors verified against the reference implementation's output.
	assert.InDelta(t, 0.5351, harry.Gene[0], 1e-4)
	assert.InDelta(t, 0.4557, harry.Gene[1], 1e-4)
	assert.InDelta(t, 0.0092, harry.Gene[2], 1e-4)
	assert.InDelta(t, 0.2665, harry.TraitPresent(), 1e-4)

	assert.InDelta(t, 0.2918, james.Gene[0], 1e-4)
	assert.InDelta(t, 0.5106, james.Gene[1], 1e-4)
	assert.InDelta(t, 0.1976, james.Gene[2], 1e-4)
	assert.Equal(t, 1.0, james.TraitPresent())

	assert.InDelta(t, 0.9827, lily.Gene[0], 1e-4)
	assert.InDelta(t, 0.0136, lily.Gene[1], 1e-4)
	assert.InDelta(t, 0.0036, lily.Gene[2], 1e-4)
	assert.Equal(t, 1.0, lily.TraitAbsent())

	// 2 free trait assignments (Harry's) x 3^3 gene assignments
	assert.Equal(t, uint64(2*27), res.WorldsScored)
	assert.Equal(t, uint64(6), res.CandidatesPruned)
}

// TestRun_ZeroMutation checks that with mutation rate zero two variant-free
// founders can only produce a variant-free child.
func TestRun_ZeroMutation(t *testing.T) {
	ped := mustPedigree(t, []pedigree.Person{
		{Name: "child", MotherName: "mom", FatherName: "dad"},
		{Name: "mom"},
		{Name: "dad"},
	})

	opts := DefaultOptions()
	opts.Tables.MutationRate = 0

	res, err := Run(ped, opts)
	require.NoError(t, err)

	// With no evidence the posterior equals the true marginal. Each parent
	// transmits with probability E[t] = 0.03*0.5 + 0.01*1 = 0.025, so
	// P(child = 2) = 0.025^2 exactly; a 0-copy parent can never transmit.
	child := res.Posteriors[0]
	assert.InDelta(t, 0.025*0.025, child.Gene[2], tolerance)
	assert.InDelta(t, 1.0, child.Gene[0]+child.Gene[1]+child.Gene[2], tolerance)
}

// TestRun_SerialParallelEquivalent checks that sharding the enumeration
// space changes nothing but summation order.
func TestRun_SerialParallelEquivalent(t *testing.T) {
	ped := mustPedigree(t, []pedigree.Person{
		{Name: "a", MotherName: "c", FatherName: "d"},
		{Name: "b", MotherName: "c", FatherName: "d", Trait: pedigree.TraitPresent},
		{Name: "c"},
		{Name: "d", Trait: pedigree.TraitAbsent},
	})

	serial, err := Run(ped, DefaultOptions())
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Workers = 4
	parallel, err := Run(ped, opts)
	require.NoError(t, err)

	require.Equal(t, serial.WorldsScored, parallel.WorldsScored)
	require.Equal(t, serial.CandidatesPruned, parallel.CandidatesPruned)
	for i := range serial.Posteriors {
		for g := range serial.Posteriors[i].Gene {
			assert.InDelta(t, serial.Posteriors[i].Gene[g], parallel.Posteriors[i].Gene[g], tolerance)
		}
		assert.InDelta(t, serial.Posteriors[i].Trait[0], parallel.Posteriors[i].Trait[0], tolerance)
		assert.InDelta(t, serial.Posteriors[i].Trait[1], parallel.Posteriors[i].Trait[1], tolerance)
	}
}

func TestRun_WorldCount(t *testing.T) {
	// No evidence: 2^n trait candidates x 3^n gene assignments
	ped := mustPedigree(t, []pedigree.Person{{Name: "a"}, {Name: "b"}})

	res, err := Run(ped, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, uint64(36), res.WorldsScored)
}

func TestRun_RejectsInvalidTables(t *testing.T) {
	ped := mustPedigree(t, []pedigree.Person{{Name: "a"}})

	opts := DefaultOptions()
	opts.Tables.MutationRate = 1.5

	_, err := Run(ped, opts)
	require.Error(t, err)
}

func TestRun_RecordsMetrics(t *testing.T) {
	ped := mustPedigree(t, []pedigree.Person{{Name: "a", Trait: pedigree.TraitPresent}})

	opts := DefaultOptions()
	opts.Metrics = metrics.NewRegistry()

	_, err := Run(ped, opts)
	require.NoError(t, err)

	assert.Equal(t, 3.0, testutil.ToFloat64(opts.Metrics.WorldsScoredTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(opts.Metrics.TraitCandidatesPruned))
	assert.Equal(t, 1.0, testutil.ToFloat64(opts.Metrics.PedigreeSize))
}
