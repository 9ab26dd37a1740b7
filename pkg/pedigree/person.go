package pedigree

// MaxPeople bounds the pedigree size. Inference enumerates O(3^n) worlds, so
// the engine refuses datasets it could not finish in reasonable time; 16 also
// keeps every subset representable in a narrow bitmask.
const MaxPeople = 16

// TraitObservation is the tri-state observed trait value of a person.
type TraitObservation int8

const (
	// TraitUnknown means the input carried no observation for this person.
	TraitUnknown TraitObservation = iota
	// TraitAbsent means the person was observed not to have the trait.
	TraitAbsent
	// TraitPresent means the person was observed to have the trait.
	TraitPresent
)

// String returns the observation as it appears in reports.
func (t TraitObservation) String() string {
	switch t {
	case TraitAbsent:
		return "absent"
	case TraitPresent:
		return "present"
	default:
		return "unknown"
	}
}

// Matches reports whether a hypothesized trait presence is consistent with
// this observation. Unknown matches anything.
func (t TraitObservation) Matches(present bool) bool {
	switch t {
	case TraitPresent:
		return present
	case TraitAbsent:
		return !present
	default:
		return true
	}
}

// Person is one member of the pedigree. Parent links are names resolved
// against the pedigree table, not object references; a founder has both
// names empty.
type Person struct {
	Name       string
	MotherName string
	FatherName string
	Trait      TraitObservation
}

// Pedigree is an immutable, validated person table. People keep their input
// order; parent references are pre-resolved to indexes so the inference hot
// path never does a name lookup.
type Pedigree struct {
	people []Person
	byName map[string]int
	mother []int // index into people, -1 for founders
	father []int
}

// New builds a pedigree from the given people and validates its structure:
// unique names, resolvable parent references, the founder invariant (both
// parents or neither), acyclic ancestry, and the size limit.
func New(people []Person) (*Pedigree, error) {
	p := &Pedigree{
		people: people,
		byName: make(map[string]int, len(people)),
		mother: make([]int, len(people)),
		father: make([]int, len(people)),
	}
	if err := p.resolve(); err != nil {
		return nil, err
	}
	return p, nil
}

// Len returns the number of people in the pedigree.
func (p *Pedigree) Len() int {
	return len(p.people)
}

// Person returns the person at index i.
func (p *Pedigree) Person(i int) Person {
	return p.people[i]
}

// Index returns the index of the named person.
func (p *Pedigree) Index(name string) (int, bool) {
	i, ok := p.byName[name]
	return i, ok
}

// Mother returns the index of person i's mother, or -1 for a founder.
func (p *Pedigree) Mother(i int) int {
	return p.mother[i]
}

// Father returns the index of person i's father, or -1 for a founder.
func (p *Pedigree) Father(i int) int {
	return p.father[i]
}

// Founder reports whether person i has no recorded parents.
func (p *Pedigree) Founder(i int) bool {
	return p.mother[i] < 0
}

// Names returns the person names in input order.
func (p *Pedigree) Names() []string {
	names := make([]string, len(p.people))
	for i, person := range p.people {
		names[i] = person.Name
	}
	return names
}

// Founders returns the indexes of all founders in input order.
func (p *Pedigree) Founders() []int {
	founders := make([]int, 0, len(p.people))
	for i := range p.people {
		if p.Founder(i) {
			founders = append(founders, i)
		}
	}
	return founders
}
