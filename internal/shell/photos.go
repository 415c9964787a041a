package shell

import (
	"errors"
	"net/http"

	"lost-found-pets/internal/platform/photo"
)

// photoResponse: la foto como data URL y, si el EXIF trae GPS, su posición.
type photoResponse struct {
	DataURL string   `json:"dataUrl"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// uploadPhotoHandler godoc
// @Summary Subir foto
// @Description Convierte la imagen en data URL para usarla como photoUrl de un post o mascota.
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Imagen"
// @Success 200 {object} photoResponse
// @Failure 400 {string} string "file is required"
// @Failure 413 {string} string "photo is too large"
// @Failure 415 {string} string "file is not an image"
// @Router /photos [post]
func uploadPhotoHandler(limit int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// margen para los headers del multipart
		r.Body = http.MaxBytesReader(w, r.Body, limit+(1<<20))

		f, _, err := r.FormFile("file")
		if err != nil {
			var tooBig *http.MaxBytesError
			if errors.As(err, &tooBig) {
				http.Error(w, photo.ErrTooLarge.Error(), http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "file is required", http.StatusBadRequest)
			return
		}
		defer f.Close()

		dataURL, err := photo.DataURL(f, limit)
		switch {
		case errors.Is(err, photo.ErrTooLarge):
			http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
			return
		case errors.Is(err, photo.ErrNotImage):
			http.Error(w, err.Error(), http.StatusUnsupportedMediaType)
			return
		case err != nil:
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		out := photoResponse{DataURL: dataURL}
		if pos, ok := photo.Coordinates(dataURL); ok {
			out.Lat, out.Lng = &pos.Lat, &pos.Lng
		}
		writeJSON(w, http.StatusOK, out)
	}
}
