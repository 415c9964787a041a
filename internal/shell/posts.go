package shell

import (
	"encoding/json"
	"net/http"
	"strings"

	"lost-found-pets/internal/domain/posts"
	"lost-found-pets/internal/geo"
	"lost-found-pets/internal/platform/photo"
	"lost-found-pets/internal/store"

	"github.com/go-chi/chi/v5"
)

// createPostRequest es el cuerpo para reportar una mascota perdida o encontrada.
type createPostRequest struct {
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Species     string   `json:"species" enums:"Dog,Cat,Other"`
	Breed       string   `json:"breed"`
	Location    string   `json:"location"`
	LocationLat *float64 `json:"locationLat"`
	LocationLng *float64 `json:"locationLng"`
	Status      string   `json:"status" enums:"Lost,Found"`
	Description string   `json:"description"`
	PhotoURL    string   `json:"photoUrl"` // data URL o URL remota
}

func (req createPostRequest) toDraft() (posts.Draft, string) {
	if strings.TrimSpace(req.Name) == "" {
		return posts.Draft{}, "name is required"
	}

	d := posts.Draft{
		Name:        req.Name,
		Color:       req.Color,
		Species:     posts.SpeciesOther,
		Breed:       req.Breed,
		Location:    req.Location,
		Status:      posts.StatusLost,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
	}

	if strings.TrimSpace(req.Species) != "" {
		s, err := posts.ParseSpecies(req.Species)
		if err != nil {
			return posts.Draft{}, "species must be Dog, Cat or Other"
		}
		d.Species = s
	}
	if strings.TrimSpace(req.Status) != "" {
		s, err := posts.ParseStatus(req.Status)
		if err != nil {
			return posts.Draft{}, "status must be Lost or Found"
		}
		d.Status = s
	}

	switch {
	case req.LocationLat == nil && req.LocationLng == nil:
		// sin coordenadas: se intenta con el EXIF de la foto
		if pos, ok := photo.Coordinates(req.PhotoURL); ok {
			d.LocationLat, d.LocationLng = &pos.Lat, &pos.Lng
		}
	case req.LocationLat == nil || req.LocationLng == nil:
		return posts.Draft{}, "locationLat and locationLng go together"
	default:
		pos := geo.LatLng{Lat: *req.LocationLat, Lng: *req.LocationLng}
		if !pos.Valid() {
			return posts.Draft{}, "location out of range"
		}
		d.LocationLat, d.LocationLng = req.LocationLat, req.LocationLng
	}

	return d, ""
}

// listPostsHandler godoc
// @Summary Listar todos los posts
// @Description Devuelve todos los reportes, más recientes primero, sin filtros.
// @Tags posts
// @Produce json
// @Success 200 {array} posts.Post
// @Router /posts [get]
func listPostsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.FromContext(r.Context()).Posts())
	}
}

// visiblePostsHandler godoc
// @Summary Listado visible
// @Description Aplica filtros de estado, especie, texto y radio sobre los posts. Incluye la distancia al usuario cuando hay ubicación.
// @Tags posts
// @Produce json
// @Success 200 {array} posts.Listing
// @Router /posts/visible [get]
func visiblePostsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := store.FromContext(r.Context())
		writeJSON(w, http.StatusOK, posts.WithDistances(st.VisiblePosts(), st.UserLocation()))
	}
}

// createPostHandler godoc
// @Summary Reportar mascota
// @Description Crea un post al inicio del listado. Si no vienen coordenadas y la foto es un JPEG con GPS, se toman del EXIF.
// @Tags posts
// @Accept json
// @Produce json
// @Param payload body createPostRequest true "Datos del reporte"
// @Success 201 {object} idResponse
// @Failure 400 {string} string "invalid json / validación"
// @Router /posts [post]
func createPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, msg := req.toDraft()
		if msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}

		id := store.FromContext(r.Context()).AddPost(r.Context(), d)
		writeJSON(w, http.StatusCreated, idResponse{ID: id})
	}
}

// getPostHandler godoc
// @Summary Ver post
// @Tags posts
// @Produce json
// @Param postID path string true "ID del post"
// @Success 200 {object} posts.Post
// @Failure 404 {string} string "post not found"
// @Router /posts/{postID} [get]
func getPostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := store.FromContext(r.Context()).GetPost(chi.URLParam(r, "postID"))
		if !ok {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

// deletePostHandler godoc
// @Summary Borrar post
// @Description Idempotente: borrar un id inexistente también devuelve 204.
// @Tags posts
// @Param postID path string true "ID del post"
// @Success 204 "sin contenido"
// @Router /posts/{postID} [delete]
func deletePostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.FromContext(r.Context()).DeletePost(r.Context(), chi.URLParam(r, "postID"))
		w.WriteHeader(http.StatusNoContent)
	}
}

// markFoundHandler godoc
// @Summary Marcar como encontrada
// @Description Pasa el post a Found. Si ya estaba Found no cambia nada.
// @Tags posts
// @Produce json
// @Param postID path string true "ID del post"
// @Success 200 {object} posts.Post
// @Failure 404 {string} string "post not found"
// @Router /posts/{postID}/found [post]
func markFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := store.FromContext(r.Context())
		id := chi.URLParam(r, "postID")

		st.MarkFound(r.Context(), id)
		p, ok := st.GetPost(id)
		if !ok {
			http.Error(w, "post not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}
