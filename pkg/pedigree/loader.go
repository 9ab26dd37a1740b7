package pedigree

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/probgen/heredity/pkg/validation"
)

// Pedigree CSV schema: name, mother, father, trait
// mother and father are either both blank (founder) or both name another row.
// trait is "1" (present), "0" (absent), or blank (unknown). Any other trait
// value is kept lenient and read as unknown.

// LoadFile reads a pedigree from a CSV file on disk.
func LoadFile(path string) (*Pedigree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{Op: "LoadFile", Cause: err}
	}
	defer f.Close()
	return LoadCSV(f)
}

// LoadCSV reads pedigree records from r. The first row must be a header
// naming at least the name, mother, father and trait columns, in any order.
func LoadCSV(r io.Reader) (*Pedigree, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &Error{Op: "LoadCSV", Cause: ErrEmptyInput}
	}
	if err != nil {
		return nil, &Error{Op: "LoadCSV", Cause: err}
	}

	cols, err := headerIndexes(header)
	if err != nil {
		return nil, &Error{Op: "LoadCSV", Cause: err}
	}

	var people []Person
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &Error{Op: "LoadCSV", Row: row, Cause: err}
		}

		rec := validation.PersonRecord{
			Name:   fields[cols.name],
			Mother: fields[cols.mother],
			Father: fields[cols.father],
			Trait:  fields[cols.trait],
		}
		if err := validation.ValidatePersonRecord(&rec); err != nil {
			return nil, &Error{Op: "LoadCSV", Row: row, Person: rec.Name, Cause: fmt.Errorf("%w: %v", ErrInvalidRecord, err)}
		}

		people = append(people, Person{
			Name:       rec.Name,
			MotherName: rec.Mother,
			FatherName: rec.Father,
			Trait:      parseTrait(rec.Trait),
		})
	}

	if len(people) == 0 {
		return nil, &Error{Op: "LoadCSV", Cause: ErrEmptyInput}
	}
	return New(people)
}

// columnIndexes locates the required columns in the header row.
type columnIndexes struct {
	name, mother, father, trait int
}

func headerIndexes(header []string) (columnIndexes, error) {
	cols := columnIndexes{name: -1, mother: -1, father: -1, trait: -1}
	for i, h := range header {
		switch h {
		case "name":
			cols.name = i
		case "mother":
			cols.mother = i
		case "father":
			cols.father = i
		case "trait":
			cols.trait = i
		}
	}
	for _, c := range []struct {
		name string
		idx  int
	}{
		{"name", cols.name},
		{"mother", cols.mother},
		{"father", cols.father},
		{"trait", cols.trait},
	} {
		if c.idx < 0 {
			return cols, fmt.Errorf("%w: %s", ErrMissingColumn, c.name)
		}
	}
	return cols, nil
}

// parseTrait reads the raw trait field. Values outside {"0", "1", ""} are
// read as unknown rather than rejected.
func parseTrait(s string) TraitObservation {
	switch s {
	case "1":
		return TraitPresent
	case "0":
		return TraitAbsent
	default:
		return TraitUnknown
	}
}
