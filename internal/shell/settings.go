package shell

import (
	"encoding/json"
	"math"
	"net/http"

	"lost-found-pets/internal/domain/posts"
	"lost-found-pets/internal/domain/profile"
	"lost-found-pets/internal/store"
)

// patchProfileRequest: los campos ausentes no se tocan.
type patchProfileRequest struct {
	FullName    *string  `json:"fullName"`
	Email       *string  `json:"email"`
	City        *string  `json:"city"`
	Phone       *string  `json:"phone"`
	RadiusKm    *float64 `json:"radiusKm"`
	PushEnabled *bool    `json:"pushEnabled"`
}

// patchFiltersRequest: los campos ausentes no se tocan.
type patchFiltersRequest struct {
	Query   *string `json:"query"`
	Status  *string `json:"status" enums:"All,Lost,Found"`
	Species *string `json:"species" enums:"All,Dog,Cat,Other"`
}

// radiusBody es el radio de búsqueda en km.
type radiusBody struct {
	RadiusKm *float64 `json:"radiusKm"`
}

// getProfileHandler godoc
// @Summary Ver perfil
// @Tags profile
// @Produce json
// @Success 200 {object} profile.Profile
// @Router /profile [get]
func getProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.FromContext(r.Context()).Profile())
	}
}

// patchProfileHandler godoc
// @Summary Actualizar perfil
// @Description Merge superficial: solo cambian los campos enviados.
// @Tags profile
// @Accept json
// @Produce json
// @Param payload body patchProfileRequest true "Campos a cambiar"
// @Success 200 {object} profile.Profile
// @Failure 400 {string} string "invalid json / radiusKm inválido"
// @Router /profile [patch]
func patchProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req patchProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.RadiusKm != nil && (math.IsInf(*req.RadiusKm, 0) || *req.RadiusKm < 0) {
			http.Error(w, "radiusKm must be a non-negative number", http.StatusBadRequest)
			return
		}

		st := store.FromContext(r.Context())
		st.SetProfile(r.Context(), profile.Patch{
			FullName:    req.FullName,
			Email:       req.Email,
			City:        req.City,
			Phone:       req.Phone,
			RadiusKm:    req.RadiusKm,
			PushEnabled: req.PushEnabled,
		})
		writeJSON(w, http.StatusOK, st.Profile())
	}
}

// getFiltersHandler godoc
// @Summary Ver filtros activos
// @Tags filters
// @Produce json
// @Success 200 {object} posts.Filters
// @Router /filters [get]
func getFiltersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.FromContext(r.Context()).Filters())
	}
}

// patchFiltersHandler godoc
// @Summary Cambiar filtros
// @Description Merge superficial de texto, estado y especie.
// @Tags filters
// @Accept json
// @Produce json
// @Param payload body patchFiltersRequest true "Filtros a cambiar"
// @Success 200 {object} posts.Filters
// @Failure 400 {string} string "invalid json / status o species desconocido"
// @Router /filters [patch]
func patchFiltersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req patchFiltersRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		patch := posts.FilterPatch{Query: req.Query}
		if req.Status != nil {
			s, err := posts.ParseStatusFilter(*req.Status)
			if err != nil {
				http.Error(w, "status must be All, Lost or Found", http.StatusBadRequest)
				return
			}
			patch.Status = &s
		}
		if req.Species != nil {
			s, err := posts.ParseSpeciesFilter(*req.Species)
			if err != nil {
				http.Error(w, "species must be All, Dog, Cat or Other", http.StatusBadRequest)
				return
			}
			patch.Species = &s
		}

		st := store.FromContext(r.Context())
		st.SetFilters(r.Context(), patch)
		writeJSON(w, http.StatusOK, st.Filters())
	}
}

// getRadiusHandler godoc
// @Summary Ver radio de búsqueda
// @Tags filters
// @Produce json
// @Success 200 {object} radiusBody
// @Router /radius [get]
func getRadiusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		km := store.FromContext(r.Context()).RadiusKm()
		writeJSON(w, http.StatusOK, radiusBody{RadiusKm: &km})
	}
}

// putRadiusHandler godoc
// @Summary Cambiar radio de búsqueda
// @Description Rango del slider: 0 a 15 km. 0 desactiva el filtro por distancia.
// @Tags filters
// @Accept json
// @Produce json
// @Param payload body radiusBody true "Radio en km"
// @Success 200 {object} radiusBody
// @Failure 400 {string} string "invalid json / radiusKm fuera de rango"
// @Router /radius [put]
func putRadiusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req radiusBody
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.RadiusKm == nil || *req.RadiusKm < 0 || *req.RadiusKm > MaxRadiusKm {
			http.Error(w, "radiusKm must be between 0 and 15", http.StatusBadRequest)
			return
		}

		st := store.FromContext(r.Context())
		st.SetRadiusKm(r.Context(), *req.RadiusKm)
		km := st.RadiusKm()
		writeJSON(w, http.StatusOK, radiusBody{RadiusKm: &km})
	}
}
