package static

import (
	"context"

	"lost-found-pets/internal/geo"
	"lost-found-pets/internal/ports/geolocation"
)

// Locator devuelve siempre la misma posición (dev y tests).
type Locator struct {
	pos *geo.LatLng
}

var _ geolocation.Locator = (*Locator)(nil)

// New con pos nil o inválida deja el locator sin soporte.
func New(pos *geo.LatLng) *Locator {
	if pos == nil || !pos.Valid() {
		return &Locator{}
	}
	p := *pos
	return &Locator{pos: &p}
}

func (l *Locator) IsConfigured() bool {
	return l != nil && l.pos != nil
}

func (l *Locator) CurrentPosition(ctx context.Context) (geo.LatLng, error) {
	if err := ctx.Err(); err != nil {
		return geo.LatLng{}, err
	}
	if !l.IsConfigured() {
		return geo.LatLng{}, geolocation.ErrUnsupported
	}
	return *l.pos, nil
}
