package pedigree

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadCSV(t *testing.T) {
	input := `name,mother,father,trait
Harry,Lily,James,
James,,,1
Lily,,,0
`
	ped, err := LoadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if ped.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ped.Len())
	}

	harry := ped.Person(0)
	if harry.Name != "Harry" || harry.Trait != TraitUnknown {
		t.Errorf("Harry = %+v", harry)
	}
	if ped.Founder(0) {
		t.Error("Harry reported as founder")
	}
	if mi := ped.Mother(0); ped.Person(mi).Name != "Lily" {
		t.Errorf("Harry's mother = %s, want Lily", ped.Person(mi).Name)
	}
	if fi := ped.Father(0); ped.Person(fi).Name != "James" {
		t.Errorf("Harry's father = %s, want James", ped.Person(fi).Name)
	}

	if ped.Person(1).Trait != TraitPresent {
		t.Errorf("James trait = %v, want present", ped.Person(1).Trait)
	}
	if ped.Person(2).Trait != TraitAbsent {
		t.Errorf("Lily trait = %v, want absent", ped.Person(2).Trait)
	}
	if !ped.Founder(1) || !ped.Founder(2) {
		t.Error("James and Lily should be founders")
	}
	if got := len(ped.Founders()); got != 2 {
		t.Errorf("Founders() returned %d, want 2", got)
	}
}

func TestLoadCSV_ColumnOrder(t *testing.T) {
	// Columns may appear in any order
	input := `trait,father,name,mother
1,,solo,
`
	ped, err := LoadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if ped.Person(0).Name != "solo" || ped.Person(0).Trait != TraitPresent {
		t.Errorf("person = %+v", ped.Person(0))
	}
}

// TestLoadCSV_LenientTrait checks that trait values outside {"0","1",""}
// load as unknown instead of failing.
func TestLoadCSV_LenientTrait(t *testing.T) {
	input := `name,mother,father,trait
odd,,,maybe
`
	ped, err := LoadCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}
	if ped.Person(0).Trait != TraitUnknown {
		t.Errorf("trait = %v, want unknown", ped.Person(0).Trait)
	}
}

func TestLoadCSV_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			"empty input",
			"",
			ErrEmptyInput,
		},
		{
			"header only",
			"name,mother,father,trait\n",
			ErrEmptyInput,
		},
		{
			"missing column",
			"name,mother,father\nsolo,,\n",
			ErrMissingColumn,
		},
		{
			"missing name",
			"name,mother,father,trait\n,,,1\n",
			ErrInvalidRecord,
		},
		{
			"single parent",
			"name,mother,father,trait\nkid,mom,,\nmom,,,\n",
			ErrInvalidRecord,
		},
		{
			"unknown parent",
			"name,mother,father,trait\nkid,mom,dad,\nmom,,,\n",
			ErrUnknownParent,
		},
		{
			"duplicate name",
			"name,mother,father,trait\ntwin,,,\ntwin,,,\n",
			ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCSV(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, tt.expected) {
				t.Errorf("error = %v, want %v", err, tt.expected)
			}
		})
	}
}
