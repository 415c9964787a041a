package store

import (
	"testing"

	"lost-found-pets/internal/domain/posts"
	"lost-found-pets/internal/domain/profile"

	"github.com/google/go-cmp/cmp"
)

func TestParseSeed_WithoutProfileUsesDefault(t *testing.T) {
	seed, err := ParseSeed([]byte("posts:\n  - name: Ty\n    species: Dog\n"))
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}
	if diff := cmp.Diff(profile.Default(), seed.Profile); diff != "" {
		t.Fatalf("profile (-want +got):\n%s", diff)
	}
	if seed.defaultRadius() != profile.DefaultRadiusKm {
		t.Fatalf("radius = %v", seed.defaultRadius())
	}
	if len(seed.Posts) != 1 || seed.Posts[0].Species != posts.SpeciesDog {
		t.Fatalf("posts = %+v", seed.Posts)
	}
}

func TestParseSeed_ProfileBlockWins(t *testing.T) {
	seed, err := ParseSeed([]byte("profile:\n  radiusKm: 8\n  pushEnabled: true\n"))
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}
	if seed.defaultRadius() != 8 || !seed.Profile.PushEnabled {
		t.Fatalf("profile = %+v", seed.Profile)
	}

	seed, err = ParseSeed([]byte("profile:\n  pushEnabled: true\n"))
	if err != nil {
		t.Fatalf("ParseSeed: %v", err)
	}
	if seed.defaultRadius() != 0 {
		t.Fatalf("radius without radiusKm = %v, want 0", seed.defaultRadius())
	}
}

func TestParseSeed_Invalid(t *testing.T) {
	if _, err := ParseSeed([]byte("posts: [")); err == nil {
		t.Fatalf("invalid yaml accepted")
	}
}
