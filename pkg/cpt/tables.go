package cpt

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/probgen/heredity/pkg/validation"
)

// GeneCounts is the number of possible gene copy counts {0, 1, 2}.
const GeneCounts = 3

// Tables holds the conditional probability tables for the pedigree network:
// the population prior over gene copy count, the distribution of trait
// presence given gene count, and the transmission mutation rate.
//
// A Tables value is immutable once constructed and is passed by value; the
// inference engine never modifies it.
type Tables struct {
	// GenePrior[g] is P(gene count = g) for a founder.
	GenePrior [GeneCounts]float64

	// TraitGivenGene[g][0] is P(trait absent | gene count = g),
	// TraitGivenGene[g][1] is P(trait present | gene count = g).
	TraitGivenGene [GeneCounts][2]float64

	// MutationRate is the probability that transmission flips: a 0-copy
	// parent still transmits the variant, or a 2-copy parent fails to.
	MutationRate float64
}

// Default returns the population tables used when no override file is given.
func Default() Tables {
	return Tables{
		GenePrior: [GeneCounts]float64{0.96, 0.03, 0.01},
		TraitGivenGene: [GeneCounts][2]float64{
			{0.99, 0.01},
			{0.44, 0.56},
			{0.35, 0.65},
		},
		MutationRate: 0.01,
	}
}

// Trait returns P(trait presence | gene count).
func (t Tables) Trait(gene int, present bool) float64 {
	if present {
		return t.TraitGivenGene[gene][1]
	}
	return t.TraitGivenGene[gene][0]
}

// fileTables is the YAML representation of an override file. Slices rather
// than arrays so that a wrong cardinality is reported as a validation error
// instead of a decode error.
type fileTables struct {
	GenePrior      []float64   `yaml:"gene_prior"`
	TraitGivenGene [][]float64 `yaml:"trait_given_gene"`
	MutationRate   *float64    `yaml:"mutation_rate"`
}

// Load reads a YAML override file and returns validated tables. Fields
// omitted from the file keep their default values.
func Load(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read tables file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML table overrides on top of the defaults.
func Parse(data []byte) (Tables, error) {
	var ft fileTables
	if err := yaml.Unmarshal(data, &ft); err != nil {
		return Tables{}, fmt.Errorf("parse tables file: %w", err)
	}

	t := Default()

	if ft.GenePrior != nil {
		if len(ft.GenePrior) != GeneCounts {
			return Tables{}, fmt.Errorf("gene_prior: expected %d values, got %d", GeneCounts, len(ft.GenePrior))
		}
		copy(t.GenePrior[:], ft.GenePrior)
	}

	if ft.TraitGivenGene != nil {
		if len(ft.TraitGivenGene) != GeneCounts {
			return Tables{}, fmt.Errorf("trait_given_gene: expected %d rows, got %d", GeneCounts, len(ft.TraitGivenGene))
		}
		for g, row := range ft.TraitGivenGene {
			if len(row) != 2 {
				return Tables{}, fmt.Errorf("trait_given_gene[%d]: expected 2 values (absent, present), got %d", g, len(row))
			}
			copy(t.TraitGivenGene[g][:], row)
		}
	}

	if ft.MutationRate != nil {
		t.MutationRate = *ft.MutationRate
	}

	if err := t.Validate(); err != nil {
		return Tables{}, err
	}
	return t, nil
}

// Validate checks that every table is a consistent probability table.
// It collects all problems rather than stopping at the first.
func (t Tables) Validate() error {
	cv := validation.NewConfigValidator("Tables")

	cv.Probability("MutationRate", t.MutationRate)
	cv.Distribution("GenePrior", t.GenePrior[:])
	for g := range t.TraitGivenGene {
		cv.Distribution(fmt.Sprintf("TraitGivenGene[%d]", g), t.TraitGivenGene[g][:])
	}

	return cv.Validate()
}
