package shell

import (
	"encoding/json"
	"net/http"
	"strings"

	"lost-found-pets/internal/domain/pets"
	"lost-found-pets/internal/domain/posts"
	"lost-found-pets/internal/store"

	"github.com/go-chi/chi/v5"
)

// createPetRequest es el cuerpo para guardar una mascota propia.
type createPetRequest struct {
	Name     string `json:"name"`
	Species  string `json:"species" enums:"Dog,Cat,Other"`
	Color    string `json:"color"`
	Age      string `json:"age"` // texto libre
	Breed    string `json:"breed"`
	PhotoURL string `json:"photoUrl"`
	Notes    string `json:"notes"`
}

// listPetsHandler godoc
// @Summary Listar mis mascotas
// @Tags pets
// @Produce json
// @Success 200 {array} pets.Pet
// @Router /pets [get]
func listPetsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.FromContext(r.Context()).Pets())
	}
}

// createPetHandler godoc
// @Summary Guardar mascota
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body createPetRequest true "Datos de la mascota"
// @Success 201 {object} idResponse
// @Failure 400 {string} string "invalid json / name is required / species inválida"
// @Router /pets [post]
func createPetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}

		species := posts.SpeciesOther
		if strings.TrimSpace(req.Species) != "" {
			s, err := posts.ParseSpecies(req.Species)
			if err != nil {
				http.Error(w, "species must be Dog, Cat or Other", http.StatusBadRequest)
				return
			}
			species = s
		}

		id := store.FromContext(r.Context()).AddPet(r.Context(), pets.Draft{
			Name:     req.Name,
			Species:  species,
			Color:    req.Color,
			Age:      req.Age,
			Breed:    req.Breed,
			PhotoURL: req.PhotoURL,
			Notes:    req.Notes,
		})
		writeJSON(w, http.StatusCreated, idResponse{ID: id})
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204 "sin contenido"
// @Router /pets/{petID} [delete]
func deletePetHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.FromContext(r.Context()).DeletePet(r.Context(), chi.URLParam(r, "petID"))
		w.WriteHeader(http.StatusNoContent)
	}
}
