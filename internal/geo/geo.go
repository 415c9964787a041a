package geo

import "math"

// EarthRadiusKm es el radio medio de la Tierra usado por el filtro de radio.
const EarthRadiusKm = 6371.0

// LatLng es una posición en grados decimales.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid indica si la posición es finita y está dentro de rango.
func (p LatLng) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceKm calcula la distancia great-circle (haversine) entre a y b.
// Con coordenadas fuera de rango devuelve NaN en vez de un valor sin sentido.
func DistanceKm(a, b LatLng) float64 {
	if !a.Valid() || !b.Valid() {
		return math.NaN()
	}

	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// Within: distancia <= radiusKm (borde inclusivo). NaN nunca está dentro.
func Within(a, b LatLng, radiusKm float64) bool {
	d := DistanceKm(a, b)
	if math.IsNaN(d) {
		return false
	}
	return d <= radiusKm
}
