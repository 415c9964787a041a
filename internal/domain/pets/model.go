package pets

import (
	"strings"

	"lost-found-pets/internal/domain/posts"
)

// Pet es el perfil guardado de una mascota propia.
// No tiene estado: es solo un registro de referencia, independiente de los reportes.
type Pet struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Species posts.Species `json:"species"`

	Color    string `json:"color,omitempty"`
	Age      string `json:"age,omitempty"` // texto libre: "2 years"
	Breed    string `json:"breed,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Draft son todos los campos salvo el id.
type Draft struct {
	Name     string
	Species  posts.Species
	Color    string
	Age      string
	Breed    string
	PhotoURL string
	Notes    string
}

func (d Draft) Build(id string) Pet {
	return Normalize(Pet{
		ID:       id,
		Name:     d.Name,
		Species:  d.Species,
		Color:    d.Color,
		Age:      d.Age,
		Breed:    d.Breed,
		PhotoURL: d.PhotoURL,
		Notes:    d.Notes,
	})
}

// Normalize recorta textos y lleva especies desconocidas a Other.
func Normalize(p Pet) Pet {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Color = strings.TrimSpace(p.Color)
	p.Age = strings.TrimSpace(p.Age)
	p.Breed = strings.TrimSpace(p.Breed)
	p.PhotoURL = strings.TrimSpace(p.PhotoURL)
	p.Notes = strings.TrimSpace(p.Notes)

	if s, err := posts.ParseSpecies(string(p.Species)); err == nil {
		p.Species = s
	} else {
		p.Species = posts.SpeciesOther
	}
	return p
}
