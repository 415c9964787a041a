package shell

import (
	"net/http"
	"strconv"

	"lost-found-pets/internal/domain/posts"
	"lost-found-pets/internal/store"
)

// topbarResponse es el estado que pinta la barra superior.
type topbarResponse struct {
	Query          string   `json:"query"`
	StatusLabel    string   `json:"statusLabel"`
	SpeciesLabel   string   `json:"speciesLabel"`
	StatusOptions  []string `json:"statusOptions"`
	SpeciesOptions []string `json:"speciesOptions"`
	RadiusKm       float64  `json:"radiusKm"`
	RadiusLabel    string   `json:"radiusLabel"`
	MaxRadiusKm    float64  `json:"maxRadiusKm"`
	LocationSet    bool     `json:"locationSet"`
}

// topbarHandler godoc
// @Summary Estado del topbar
// @Description Etiquetas y opciones de los filtros, radio y si hay ubicación.
// @Tags shell
// @Produce json
// @Success 200 {object} topbarResponse
// @Router /topbar [get]
func topbarHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap := store.FromContext(r.Context()).Snapshot()
		writeJSON(w, http.StatusOK, buildTopbar(snap))
	}
}

func buildTopbar(snap store.Snapshot) topbarResponse {
	out := topbarResponse{
		Query:          snap.Filters.Query,
		StatusLabel:    string(snap.Filters.Status),
		SpeciesLabel:   string(snap.Filters.Species),
		StatusOptions:  []string{"All", "Lost", "Found"},
		SpeciesOptions: []string{"All", "Dog", "Cat", "Other"},
		RadiusKm:       snap.RadiusKm,
		RadiusLabel:    strconv.FormatFloat(snap.RadiusKm, 'f', -1, 64) + " km",
		MaxRadiusKm:    MaxRadiusKm,
		LocationSet:    snap.UserLocation != nil,
	}
	if snap.Filters.Status == posts.StatusAll {
		out.StatusLabel = "All Post"
	}
	if snap.Filters.Species == posts.SpeciesAll {
		out.SpeciesLabel = "All Species"
	}
	return out
}
