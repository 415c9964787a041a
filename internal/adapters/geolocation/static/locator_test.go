package static

import (
	"context"
	"errors"
	"testing"

	"lost-found-pets/internal/geo"
	"lost-found-pets/internal/ports/geolocation"
)

func TestLocator(t *testing.T) {
	pos := &geo.LatLng{Lat: 13.7, Lng: 100.5}
	l := New(pos)
	pos.Lat = 0

	got, err := l.CurrentPosition(context.Background())
	if err != nil {
		t.Fatalf("CurrentPosition: %v", err)
	}
	if got.Lat != 13.7 || got.Lng != 100.5 {
		t.Fatalf("got %+v", got)
	}
}

func TestLocator_Unconfigured(t *testing.T) {
	for _, pos := range []*geo.LatLng{nil, {Lat: 95, Lng: 0}} {
		_, err := New(pos).CurrentPosition(context.Background())
		if !errors.Is(err, geolocation.ErrUnsupported) {
			t.Fatalf("pos %v: err = %v", pos, err)
		}
	}
}
