package pets

import (
	"testing"

	"lost-found-pets/internal/domain/posts"
)

func TestDraftBuild_Normalizes(t *testing.T) {
	p := Draft{
		Name:    " Peam ",
		Species: "DOG",
		Breed:   "Dachshund ",
		Age:     "",
	}.Build("pet-1")

	if p.ID != "pet-1" || p.Name != "Peam" || p.Breed != "Dachshund" {
		t.Fatalf("unexpected pet %+v", p)
	}
	if p.Species != posts.SpeciesDog {
		t.Fatalf("expected Dog, got %s", p.Species)
	}
}

func TestNormalize_UnknownSpecies(t *testing.T) {
	p := Normalize(Pet{ID: "x", Name: "Kiwi", Species: "parrot"})
	if p.Species != posts.SpeciesOther {
		t.Fatalf("expected Other, got %s", p.Species)
	}
}
