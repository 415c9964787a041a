package posts

import (
	"errors"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Species define las especies soportadas.
// @Enum Dog, Cat, Other
type Species string

const (
	SpeciesDog   Species = "Dog"
	SpeciesCat   Species = "Cat"
	SpeciesOther Species = "Other"
)

// Status es el estado de un reporte. Solo transiciona Lost -> Found.
// @Enum Lost, Found
type Status string

const (
	StatusLost  Status = "Lost"
	StatusFound Status = "Found"
)

// Post es un reporte de mascota perdida/encontrada.
// Los campos de texto opcionales quedan en "" cuando no vienen (ver Normalize).
type Post struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Color   string  `json:"color,omitempty"`
	Species Species `json:"species"`
	Breed   string  `json:"breed,omitempty"`

	// Location es el lugar legible; LocationLat/Lng las coordenadas del mapa.
	Location    string   `json:"location,omitempty"`
	LocationLat *float64 `json:"locationLat,omitempty"`
	LocationLng *float64 `json:"locationLng,omitempty"`

	Status      Status `json:"status"`
	Description string `json:"description,omitempty"`

	// PhotoURL: data URL embebida o URL remota.
	PhotoURL string `json:"photoUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// Draft son los campos que aporta quien reporta (sin id ni createdAt).
type Draft struct {
	Name        string
	Color       string
	Species     Species
	Breed       string
	Location    string
	LocationLat *float64
	LocationLng *float64
	Status      Status
	Description string
	PhotoURL    string
}

// HasCoordinates indica si el post tiene lat y lng registradas.
func (p Post) HasCoordinates() bool {
	return p.LocationLat != nil && p.LocationLng != nil
}

// Build arma el Post a partir del draft, ya normalizado.
func (d Draft) Build(id string, createdAt time.Time) Post {
	return Normalize(Post{
		ID:          id,
		Name:        d.Name,
		Color:       d.Color,
		Species:     d.Species,
		Breed:       d.Breed,
		Location:    d.Location,
		LocationLat: d.LocationLat,
		LocationLng: d.LocationLng,
		Status:      d.Status,
		Description: d.Description,
		PhotoURL:    d.PhotoURL,
		CreatedAt:   createdAt,
	})
}

// Normalize es el único punto donde se completan los opcionales.
// El filtro trabaja siempre sobre registros ya normalizados.
func Normalize(p Post) Post {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Color = strings.TrimSpace(p.Color)
	p.Breed = strings.TrimSpace(p.Breed)
	p.Location = strings.TrimSpace(p.Location)
	p.Description = strings.TrimSpace(p.Description)
	p.PhotoURL = strings.TrimSpace(p.PhotoURL)

	if s, err := ParseSpecies(string(p.Species)); err == nil {
		p.Species = s
	} else {
		p.Species = SpeciesOther
	}
	if s, err := ParseStatus(string(p.Status)); err == nil {
		p.Status = s
	} else {
		p.Status = StatusLost
	}

	p.LocationLat = finiteOrNil(p.LocationLat)
	p.LocationLng = finiteOrNil(p.LocationLng)

	return p
}

func finiteOrNil(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	out := *v
	return &out
}

// Clone copia el post sin compartir los punteros de coordenadas.
func (p Post) Clone() Post {
	p.LocationLat = finiteOrNil(p.LocationLat)
	p.LocationLng = finiteOrNil(p.LocationLng)
	return p
}

func ParseSpecies(s string) (Species, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dog":
		return SpeciesDog, nil
	case "cat":
		return SpeciesCat, nil
	case "other":
		return SpeciesOther, nil
	default:
		return "", ErrInvalidInput
	}
}

func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lost":
		return StatusLost, nil
	case "found":
		return StatusFound, nil
	default:
		return "", ErrInvalidInput
	}
}
