package inference

import (
	"github.com/probgen/heredity/pkg/pedigree"
)

// evidence holds the observed trait values of a pedigree folded into two
// bitmasks so the per-candidate consistency check is two mask operations
// instead of a scan over people.
type evidence struct {
	present uint32 // people observed to have the trait
	absent  uint32 // people observed not to have the trait
}

func newEvidence(ped *pedigree.Pedigree) evidence {
	var ev evidence
	for i := 0; i < ped.Len(); i++ {
		switch ped.Person(i).Trait {
		case pedigree.TraitPresent:
			ev.present |= 1 << i
		case pedigree.TraitAbsent:
			ev.absent |= 1 << i
		}
	}
	return ev
}

// consistent reports whether the hypothesized trait-presence set contradicts
// any observation: an observed-present person missing from the set, or an
// observed-absent person included in it. Unknown observations constrain
// nothing. Pure predicate.
func (ev evidence) consistent(traitMask uint32) bool {
	return ev.present&^traitMask == 0 && ev.absent&traitMask == 0
}
