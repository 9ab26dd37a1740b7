package report

import (
	"fmt"
	"io"

	"github.com/probgen/heredity/pkg/inference"
	"github.com/probgen/heredity/pkg/pedigree"
)

// Write prints the per-person posterior report: for each person a Gene
// block with the probability of 2, 1 and 0 copies and a Trait block with
// the probability of True and False, each to four decimal places.
func Write(w io.Writer, ped *pedigree.Pedigree, res *inference.Result) error {
	for i := 0; i < ped.Len(); i++ {
		post := res.Posteriors[i]

		if _, err := fmt.Fprintf(w, "%s:\n", ped.Person(i).Name); err != nil {
			return err
		}
		fmt.Fprintf(w, "  Gene:\n")
		for gene := len(post.Gene) - 1; gene >= 0; gene-- {
			fmt.Fprintf(w, "    %d: %.4f\n", gene, post.Gene[gene])
		}
		fmt.Fprintf(w, "  Trait:\n")
		fmt.Fprintf(w, "    True: %.4f\n", post.TraitPresent())
		if _, err := fmt.Fprintf(w, "    False: %.4f\n", post.TraitAbsent()); err != nil {
			return err
		}
	}
	return nil
}
