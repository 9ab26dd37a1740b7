package pedigree

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew_SingleParent(t *testing.T) {
	_, err := New([]Person{
		{Name: "kid", MotherName: "mom"},
		{Name: "mom"},
	})
	if !errors.Is(err, ErrSingleParent) {
		t.Errorf("error = %v, want %v", err, ErrSingleParent)
	}
}

func TestNew_UnknownParent(t *testing.T) {
	_, err := New([]Person{
		{Name: "kid", MotherName: "mom", FatherName: "ghost"},
		{Name: "mom"},
	})
	if !errors.Is(err, ErrUnknownParent) {
		t.Errorf("error = %v, want %v", err, ErrUnknownParent)
	}

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("error %T is not a *pedigree.Error", err)
	}
	if perr.Person != "kid" || perr.Field != "father" {
		t.Errorf("error context = %+v", perr)
	}
}

func TestNew_AncestryCycle(t *testing.T) {
	// a and b are each other's parents
	_, err := New([]Person{
		{Name: "a", MotherName: "b", FatherName: "b"},
		{Name: "b", MotherName: "a", FatherName: "a"},
	})
	if !errors.Is(err, ErrAncestryCycle) {
		t.Errorf("error = %v, want %v", err, ErrAncestryCycle)
	}
}

func TestNew_LongerCycle(t *testing.T) {
	// a <- b <- c <- a through mother links, fathers along for the ride
	_, err := New([]Person{
		{Name: "a", MotherName: "b", FatherName: "d"},
		{Name: "b", MotherName: "c", FatherName: "d"},
		{Name: "c", MotherName: "a", FatherName: "d"},
		{Name: "d"},
	})
	if !errors.Is(err, ErrAncestryCycle) {
		t.Errorf("error = %v, want %v", err, ErrAncestryCycle)
	}
}

func TestNew_AcyclicTwoGenerations(t *testing.T) {
	ped, err := New([]Person{
		{Name: "kid", MotherName: "mom", FatherName: "dad"},
		{Name: "sib", MotherName: "mom", FatherName: "dad"},
		{Name: "mom"},
		{Name: "dad"},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if ped.Mother(0) != ped.Mother(1) {
		t.Error("siblings should share a mother index")
	}
}

func TestNew_TooManyPeople(t *testing.T) {
	people := make([]Person, MaxPeople+1)
	for i := range people {
		people[i] = Person{Name: fmt.Sprintf("p%d", i)}
	}
	_, err := New(people)
	if !errors.Is(err, ErrTooManyPeople) {
		t.Errorf("error = %v, want %v", err, ErrTooManyPeople)
	}
}

func TestTraitObservation_Matches(t *testing.T) {
	tests := []struct {
		obs     TraitObservation
		present bool
		want    bool
	}{
		{TraitUnknown, true, true},
		{TraitUnknown, false, true},
		{TraitPresent, true, true},
		{TraitPresent, false, false},
		{TraitAbsent, true, false},
		{TraitAbsent, false, true},
	}
	for _, tt := range tests {
		if got := tt.obs.Matches(tt.present); got != tt.want {
			t.Errorf("%v.Matches(%v) = %v, want %v", tt.obs, tt.present, got, tt.want)
		}
	}
}
