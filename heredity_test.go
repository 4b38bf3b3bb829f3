package heredity

import (
	"errors"
	"reflect"
	"testing"
)

func TestPedigreeQueries(t *testing.T) {
	ped := Pedigree{
		"mom":   {Name: "mom", Trait: boolPtr(true)},
		"dad":   {Name: "dad"},
		"child": {Name: "child", Mother: "mom", Father: "dad"},
	}

	if ped.HasParents("mom") {
		t.Error("expected mom to have no parents")
	}
	if !ped.HasParents("child") {
		t.Error("expected child to have parents")
	}
	if ped.HasParents("stranger") {
		t.Error("expected an absent person to have no parents")
	}

	mother, father, ok := ped.ParentsOf("child")
	if !ok || mother != "mom" || father != "dad" {
		t.Errorf("Got (%q, %q, %v), expected (mom, dad, true)", mother, father, ok)
	}
	if _, _, ok := ped.ParentsOf("dad"); ok {
		t.Error("expected no parents for a founder")
	}

	if value, known := ped.ObservedTrait("mom"); !known || !value {
		t.Errorf("Got (%v, %v), expected (true, true)", value, known)
	}
	if _, known := ped.ObservedTrait("child"); known {
		t.Error("expected child's trait to be unobserved")
	}

	if got := ped.Founders(); !reflect.DeepEqual(got, []string{"dad", "mom"}) {
		t.Errorf("Got %v, expected [dad mom]", got)
	}
	if got := ped.Names(); !reflect.DeepEqual(got, []string{"child", "dad", "mom"}) {
		t.Errorf("Got %v, expected [child dad mom]", got)
	}
}

func TestValidateAcceptsWellFormedPedigree(t *testing.T) {
	if err := trioPedigree().Validate(); err != nil {
		t.Error(err)
	}
}

func TestValidateRejectsSingleParent(t *testing.T) {
	ped := Pedigree{
		"mom":   {Name: "mom"},
		"child": {Name: "child", Mother: "mom"},
	}
	if err := ped.Validate(); !errors.Is(err, ErrInvalidPedigree) {
		t.Errorf("Got %v, expected ErrInvalidPedigree", err)
	}
}

func TestValidateRejectsDanglingParent(t *testing.T) {
	ped := Pedigree{
		"dad":   {Name: "dad"},
		"child": {Name: "child", Mother: "ghost", Father: "dad"},
	}
	if err := ped.Validate(); !errors.Is(err, ErrInvalidPedigree) {
		t.Errorf("Got %v, expected ErrInvalidPedigree", err)
	}
}

func TestValidateRejectsCycle(t *testing.T) {
	ped := Pedigree{
		"a": {Name: "a", Mother: "b", Father: "c"},
		"b": {Name: "b", Mother: "a", Father: "c"},
		"c": {Name: "c"},
	}
	if err := ped.Validate(); !errors.Is(err, ErrInvalidPedigree) {
		t.Errorf("Got %v, expected ErrInvalidPedigree", err)
	}
}

func TestValidateRejectsMiskeyedRecord(t *testing.T) {
	ped := Pedigree{
		"alice": {Name: "bob"},
	}
	if err := ped.Validate(); !errors.Is(err, ErrInvalidPedigree) {
		t.Errorf("Got %v, expected ErrInvalidPedigree", err)
	}
}
