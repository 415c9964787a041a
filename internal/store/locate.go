package store

import (
	"context"
	"errors"
	"fmt"

	"lost-found-pets/internal/geo"
	"lost-found-pets/internal/ports/geolocation"
)

// LocateMe pide la posición actual una sola vez. Si sale bien actualiza la
// ubicación del usuario; si no, la deja igual, loguea un aviso y devuelve
// el error para que la UI lo muestre. Llamadas concurrentes comparten la
// misma consulta al locator.
func (s *Store) LocateMe(ctx context.Context) (geo.LatLng, error) {
	if s.locator == nil {
		s.log.Warn("geolocation error", map[string]any{"error": geolocation.ErrUnsupported})
		return geo.LatLng{}, geolocation.ErrUnsupported
	}

	v, err, _ := s.locating.Do("locate", func() (any, error) {
		cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.locateTimeout)
		defer cancel()

		pos, err := s.currentPosition(cctx)
		if err != nil {
			return geo.LatLng{}, err
		}

		s.SetUserLocation(cctx, &pos)
		return pos, nil
	})
	if err != nil {
		s.log.Warn("geolocation error", map[string]any{"error": err})
		return geo.LatLng{}, err
	}
	return v.(geo.LatLng), nil
}

func (s *Store) currentPosition(ctx context.Context) (pos geo.LatLng, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: locator panic: %v", geolocation.ErrUnavailable, r)
		}
	}()

	pos, err = s.locator.CurrentPosition(ctx)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, geolocation.ErrDenied) {
			return geo.LatLng{}, fmt.Errorf("%w: timeout: %v", geolocation.ErrUnavailable, err)
		}
		return geo.LatLng{}, err
	}
	if !pos.Valid() {
		return geo.LatLng{}, fmt.Errorf("%w: invalid position %v,%v", geolocation.ErrUnavailable, pos.Lat, pos.Lng)
	}
	return pos, nil
}
