package shell

import (
	"encoding/json"
	"net/http"

	"lost-found-pets/internal/platform/logger"
	"lost-found-pets/internal/platform/photo"

	"github.com/go-chi/chi/v5"
)

// MaxRadiusKm es el tope del slider de radio del topbar.
const MaxRadiusKm = 15.0

type Options struct {
	Logger logger.Logger

	// PhotoLimit en bytes; 0 = photo.DefaultLimit.
	PhotoLimit int64
}

// RegisterRoutes monta la superficie HTTP local. Requiere que el store de
// la sesión ya esté en el contexto (middleware.Session).
func RegisterRoutes(r chi.Router, opts Options) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	limit := opts.PhotoLimit
	if limit <= 0 {
		limit = photo.DefaultLimit
	}

	r.Route("/posts", func(pr chi.Router) {
		pr.Get("/", listPostsHandler())
		pr.Post("/", createPostHandler())
		pr.Get("/visible", visiblePostsHandler())
		pr.Get("/{postID}", getPostHandler())
		pr.Delete("/{postID}", deletePostHandler())
		pr.Post("/{postID}/found", markFoundHandler())
	})

	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler())
		pr.Post("/", createPetHandler())
		pr.Delete("/{petID}", deletePetHandler())
	})

	r.Get("/profile", getProfileHandler())
	r.Patch("/profile", patchProfileHandler())

	r.Get("/filters", getFiltersHandler())
	r.Patch("/filters", patchFiltersHandler())

	r.Get("/radius", getRadiusHandler())
	r.Put("/radius", putRadiusHandler())

	r.Route("/location", func(lr chi.Router) {
		lr.Get("/", getLocationHandler())
		lr.Put("/", putLocationHandler())
		lr.Delete("/", deleteLocationHandler())
		lr.Post("/locate", locateHandler())
	})

	r.Get("/topbar", topbarHandler())
	r.Post("/photos", uploadPhotoHandler(limit))
	r.Get("/ws", changesHandler(log))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// idResponse es la respuesta de las altas.
type idResponse struct {
	ID string `json:"id"`
}
