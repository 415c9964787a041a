package geolocation

import (
	"context"
	"errors"

	"lost-found-pets/internal/geo"
)

var (
	ErrUnsupported = errors.New("geolocation is not supported")
	ErrDenied      = errors.New("geolocation permission denied")
	ErrUnavailable = errors.New("geolocation position unavailable")
)

// Locator pide la posición actual al servicio de ubicación (una sola vez,
// no es una suscripción).
type Locator interface {
	CurrentPosition(ctx context.Context) (geo.LatLng, error)
}
