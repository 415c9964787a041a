package store

import (
	_ "embed"
	"fmt"

	"lost-found-pets/internal/domain/pets"
	"lost-found-pets/internal/domain/posts"
	"lost-found-pets/internal/domain/profile"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeedYAML []byte

// Seed son los valores por defecto de cada slice.
type Seed struct {
	Posts   []posts.Draft
	Pets    []pets.Draft
	Profile profile.Profile
	Filters posts.Filters
}

type seedFile struct {
	Posts []struct {
		Name        string   `yaml:"name"`
		Color       string   `yaml:"color"`
		Species     string   `yaml:"species"`
		Breed       string   `yaml:"breed"`
		Location    string   `yaml:"location"`
		Lat         *float64 `yaml:"lat"`
		Lng         *float64 `yaml:"lng"`
		Status      string   `yaml:"status"`
		Description string   `yaml:"description"`
		PhotoURL    string   `yaml:"photoUrl"`
	} `yaml:"posts"`

	Pets []struct {
		Name     string `yaml:"name"`
		Species  string `yaml:"species"`
		Color    string `yaml:"color"`
		Age      string `yaml:"age"`
		Breed    string `yaml:"breed"`
		PhotoURL string `yaml:"photoUrl"`
		Notes    string `yaml:"notes"`
	} `yaml:"pets"`

	// nil = sin bloque profile; se usa profile.Default().
	Profile *struct {
		RadiusKm    *float64 `yaml:"radiusKm"`
		PushEnabled bool     `yaml:"pushEnabled"`
	} `yaml:"profile"`

	Filters struct {
		Query   string `yaml:"query"`
		Status  string `yaml:"status"`
		Species string `yaml:"species"`
	} `yaml:"filters"`
}

// ParseSeed lee un seed en YAML.
func ParseSeed(b []byte) (Seed, error) {
	var f seedFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return Seed{}, fmt.Errorf("parse seed: %w", err)
	}

	seed := Seed{
		Posts: make([]posts.Draft, 0, len(f.Posts)),
		Pets:  make([]pets.Draft, 0, len(f.Pets)),
		Profile: profile.Default(),
		Filters: posts.Filters{
			Query:   f.Filters.Query,
			Status:  posts.StatusFilter(f.Filters.Status),
			Species: posts.SpeciesFilter(f.Filters.Species),
		}.Normalized(),
	}

	if f.Profile != nil {
		seed.Profile = profile.Profile{
			RadiusKm:    f.Profile.RadiusKm,
			PushEnabled: f.Profile.PushEnabled,
		}
	}

	for _, p := range f.Posts {
		seed.Posts = append(seed.Posts, posts.Draft{
			Name:        p.Name,
			Color:       p.Color,
			Species:     posts.Species(p.Species),
			Breed:       p.Breed,
			Location:    p.Location,
			LocationLat: p.Lat,
			LocationLng: p.Lng,
			Status:      posts.Status(p.Status),
			Description: p.Description,
			PhotoURL:    p.PhotoURL,
		})
	}
	for _, p := range f.Pets {
		seed.Pets = append(seed.Pets, pets.Draft{
			Name:     p.Name,
			Species:  posts.Species(p.Species),
			Color:    p.Color,
			Age:      p.Age,
			Breed:    p.Breed,
			PhotoURL: p.PhotoURL,
			Notes:    p.Notes,
		})
	}

	return seed, nil
}

// MustDefaultSeed parsea el seed embebido; un error acá es un bug de build.
func MustDefaultSeed() Seed {
	seed, err := ParseSeed(defaultSeedYAML)
	if err != nil {
		panic(err)
	}
	return seed
}

// defaultRadius: radio del perfil por defecto, o 0 si no tiene.
func (s Seed) defaultRadius() float64 {
	if s.Profile.RadiusKm == nil {
		return 0
	}
	return *s.Profile.RadiusKm
}
