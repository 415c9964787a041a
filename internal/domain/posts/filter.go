package posts

import (
	"math"
	"strings"

	"lost-found-pets/internal/geo"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StatusFilter: All | Lost | Found
type StatusFilter string

// SpeciesFilter: All | Dog | Cat | Other
type SpeciesFilter string

const (
	StatusAll  StatusFilter  = "All"
	SpeciesAll SpeciesFilter = "All"
)

// Filters es la selección activa del topbar.
type Filters struct {
	Query   string        `json:"query"`
	Status  StatusFilter  `json:"status"`
	Species SpeciesFilter `json:"species"`
}

func DefaultFilters() Filters {
	return Filters{Query: "", Status: StatusAll, Species: SpeciesAll}
}

// FilterPatch: punteros nil = no tocar.
type FilterPatch struct {
	Query   *string
	Status  *StatusFilter
	Species *SpeciesFilter
}

// Apply hace el merge superficial del patch sobre f.
func (f Filters) Apply(p FilterPatch) Filters {
	if p.Query != nil {
		f.Query = *p.Query
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.Species != nil {
		f.Species = *p.Species
	}
	return f
}

// Normalized reemplaza valores desconocidos por All.
func (f Filters) Normalized() Filters {
	if s, err := ParseStatusFilter(string(f.Status)); err == nil {
		f.Status = s
	} else {
		f.Status = StatusAll
	}
	if s, err := ParseSpeciesFilter(string(f.Species)); err == nil {
		f.Species = s
	} else {
		f.Species = SpeciesAll
	}
	return f
}

func ParseStatusFilter(s string) (StatusFilter, error) {
	if strings.EqualFold(strings.TrimSpace(s), string(StatusAll)) {
		return StatusAll, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return "", err
	}
	return StatusFilter(st), nil
}

func ParseSpeciesFilter(s string) (SpeciesFilter, error) {
	if strings.EqualFold(strings.TrimSpace(s), string(SpeciesAll)) {
		return SpeciesAll, nil
	}
	sp, err := ParseSpecies(s)
	if err != nil {
		return "", err
	}
	return SpeciesFilter(sp), nil
}

// Visible deriva el listado visible: categorías, texto y radio, en ese orden.
// Nunca reordena ni modifica all; solo descarta elementos.
func Visible(all []Post, f Filters, radiusKm float64, user *geo.LatLng) []Post {
	lower := cases.Lower(language.Und)
	q := lower.String(f.Query)

	out := make([]Post, 0, len(all))
	for _, p := range all {
		if f.Status != "" && f.Status != StatusAll && string(p.Status) != string(f.Status) {
			continue
		}
		if f.Species != "" && f.Species != SpeciesAll && string(p.Species) != string(f.Species) {
			continue
		}
		if q != "" && !matchesQuery(lower, p, q) {
			continue
		}
		out = append(out, p)
	}

	// Radio solo con ubicación conocida y radio > 0
	if user == nil || radiusKm <= 0 {
		return out
	}

	res := out[:0]
	for _, p := range out {
		// sin coordenadas no se puede evaluar: se mantiene
		if !p.HasCoordinates() {
			res = append(res, p)
			continue
		}
		if geo.Within(*user, geo.LatLng{Lat: *p.LocationLat, Lng: *p.LocationLng}, radiusKm) {
			res = append(res, p)
		}
	}
	return res
}

func matchesQuery(lower cases.Caser, p Post, q string) bool {
	for _, field := range []string{p.Name, p.Location, p.Breed, p.Description} {
		if field == "" {
			continue
		}
		if strings.Contains(lower.String(field), q) {
			return true
		}
	}
	return false
}

// Listing es un post visible con su distancia al usuario (si se conoce).
type Listing struct {
	Post
	DistanceKm *float64 `json:"distanceKm,omitempty"`
}

// WithDistances agrega la distancia a cada post sin cambiar el orden.
func WithDistances(items []Post, user *geo.LatLng) []Listing {
	out := make([]Listing, 0, len(items))
	for _, p := range items {
		l := Listing{Post: p}
		if user != nil && p.HasCoordinates() {
			d := geo.DistanceKm(*user, geo.LatLng{Lat: *p.LocationLat, Lng: *p.LocationLng})
			if !math.IsNaN(d) {
				l.DistanceKm = &d
			}
		}
		out = append(out, l)
	}
	return out
}
