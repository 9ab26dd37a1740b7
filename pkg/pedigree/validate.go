package pedigree

// resolve checks structural invariants and fills the parent index tables.
// Every violation is fatal: this engine would otherwise either crash mid
// enumeration (unknown parent) or never terminate its bookkeeping
// (ancestry cycle), so the input boundary rejects them up front.
func (p *Pedigree) resolve() error {
	if len(p.people) > MaxPeople {
		return &Error{Op: "New", Cause: ErrTooManyPeople}
	}

	for i, person := range p.people {
		if _, dup := p.byName[person.Name]; dup {
			return &Error{Op: "New", Person: person.Name, Cause: ErrDuplicateName}
		}
		p.byName[person.Name] = i
	}

	for i, person := range p.people {
		if (person.MotherName == "") != (person.FatherName == "") {
			return &Error{Op: "New", Person: person.Name, Cause: ErrSingleParent}
		}
		p.mother[i] = -1
		p.father[i] = -1
		if person.MotherName == "" {
			continue
		}

		mi, ok := p.byName[person.MotherName]
		if !ok {
			return &Error{Op: "New", Person: person.Name, Field: "mother", Cause: ErrUnknownParent}
		}
		fi, ok := p.byName[person.FatherName]
		if !ok {
			return &Error{Op: "New", Person: person.Name, Field: "father", Cause: ErrUnknownParent}
		}
		p.mother[i] = mi
		p.father[i] = fi
	}

	return p.checkAcyclic()
}

// checkAcyclic walks parent links with three-color DFS. A person reachable
// from themselves through mother/father edges makes the network ill-formed.
func (p *Pedigree) checkAcyclic() error {
	const (
		white = 0 // unvisited
		gray  = 1 // currently visiting (in recursion stack)
		black = 2 // finished visiting
	)

	color := make([]int, len(p.people))

	var visit func(i int) bool
	visit = func(i int) bool {
		color[i] = gray
		for _, parent := range [2]int{p.mother[i], p.father[i]} {
			if parent < 0 {
				continue
			}
			switch color[parent] {
			case gray:
				return false
			case white:
				if !visit(parent) {
					return false
				}
			}
		}
		color[i] = black
		return true
	}

	for i := range p.people {
		if color[i] == white && !visit(i) {
			return &Error{Op: "New", Person: p.people[i].Name, Cause: ErrAncestryCycle}
		}
	}
	return nil
}
