package shell

import (
	"encoding/json"
	"errors"
	"net/http"

	"lost-found-pets/internal/geo"
	"lost-found-pets/internal/ports/geolocation"
	"lost-found-pets/internal/store"
)

// noticeResponse es el aviso que la UI muestra cuando falla la ubicación.
type noticeResponse struct {
	Notice string `json:"notice"`
}

// getLocationHandler godoc
// @Summary Ver ubicación del usuario
// @Description Devuelve null si la ubicación no se conoce.
// @Tags location
// @Produce json
// @Success 200 {object} geo.LatLng
// @Router /location [get]
func getLocationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, store.FromContext(r.Context()).UserLocation())
	}
}

// putLocationHandler godoc
// @Summary Fijar ubicación manualmente
// @Tags location
// @Accept json
// @Produce json
// @Param payload body geo.LatLng true "Posición"
// @Success 200 {object} geo.LatLng
// @Failure 400 {string} string "invalid json / location out of range"
// @Router /location [put]
func putLocationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Lat *float64 `json:"lat"`
			Lng *float64 `json:"lng"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Lat == nil || req.Lng == nil {
			http.Error(w, "lat and lng are required", http.StatusBadRequest)
			return
		}
		pos := geo.LatLng{Lat: *req.Lat, Lng: *req.Lng}
		if !pos.Valid() {
			http.Error(w, "location out of range", http.StatusBadRequest)
			return
		}

		store.FromContext(r.Context()).SetUserLocation(r.Context(), &pos)
		writeJSON(w, http.StatusOK, pos)
	}
}

// deleteLocationHandler godoc
// @Summary Olvidar ubicación
// @Description Borra la ubicación; el filtro por distancia queda inactivo.
// @Tags location
// @Success 204 "sin contenido"
// @Router /location [delete]
func deleteLocationHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store.FromContext(r.Context()).SetUserLocation(r.Context(), nil)
		w.WriteHeader(http.StatusNoContent)
	}
}

// locateHandler godoc
// @Summary Usar mi ubicación actual
// @Description Pide la posición al servicio de ubicación una sola vez. Si falla, la ubicación guardada no cambia y se devuelve un aviso.
// @Tags location
// @Produce json
// @Success 200 {object} geo.LatLng
// @Failure 503 {object} noticeResponse
// @Router /location/locate [post]
func locateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pos, err := store.FromContext(r.Context()).LocateMe(r.Context())
		if err != nil {
			writeJSON(w, http.StatusServiceUnavailable, noticeResponse{Notice: locateNotice(err)})
			return
		}
		writeJSON(w, http.StatusOK, pos)
	}
}

func locateNotice(err error) string {
	switch {
	case errors.Is(err, geolocation.ErrUnsupported):
		return "Geolocation is not supported by your browser."
	case errors.Is(err, geolocation.ErrDenied):
		return "Location permission was denied."
	default:
		return "Your location is not available right now."
	}
}
