package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"lost-found-pets/internal/geo"
	"lost-found-pets/internal/ports/geolocation"

	"github.com/google/go-cmp/cmp"
)

type locatorFunc func(ctx context.Context) (geo.LatLng, error)

func (f locatorFunc) CurrentPosition(ctx context.Context) (geo.LatLng, error) {
	return f(ctx)
}

func openWithLocator(l geolocation.Locator, timeout time.Duration) *Store {
	opts := testOptions()
	opts.Locator = l
	opts.LocateTimeout = timeout
	return Open(context.Background(), newMemory(), opts)
}

func TestLocateMe_Success(t *testing.T) {
	want := geo.LatLng{Lat: 13.7, Lng: 100.5}
	s := openWithLocator(locatorFunc(func(ctx context.Context) (geo.LatLng, error) {
		return want, nil
	}), 0)

	got, err := s.LocateMe(context.Background())
	if err != nil {
		t.Fatalf("LocateMe: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("position (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(&want, s.UserLocation()); diff != "" {
		t.Fatalf("stored location (-want +got):\n%s", diff)
	}
}

func TestLocateMe_Unsupported(t *testing.T) {
	s := openWithLocator(nil, 0)
	prev := &geo.LatLng{Lat: 1, Lng: 2}
	s.SetUserLocation(context.Background(), prev)

	_, err := s.LocateMe(context.Background())
	if !errors.Is(err, geolocation.ErrUnsupported) {
		t.Fatalf("err = %v, want ErrUnsupported", err)
	}
	if diff := cmp.Diff(prev, s.UserLocation()); diff != "" {
		t.Fatalf("location changed (-want +got):\n%s", diff)
	}
}

func TestLocateMe_FailuresKeepLocation(t *testing.T) {
	cases := []struct {
		name    string
		locator locatorFunc
		wantErr error
	}{
		{
			name: "denied",
			locator: func(ctx context.Context) (geo.LatLng, error) {
				return geo.LatLng{}, geolocation.ErrDenied
			},
			wantErr: geolocation.ErrDenied,
		},
		{
			name: "unavailable",
			locator: func(ctx context.Context) (geo.LatLng, error) {
				return geo.LatLng{}, geolocation.ErrUnavailable
			},
			wantErr: geolocation.ErrUnavailable,
		},
		{
			name: "invalid position",
			locator: func(ctx context.Context) (geo.LatLng, error) {
				return geo.LatLng{Lat: 120, Lng: 0}, nil
			},
			wantErr: geolocation.ErrUnavailable,
		},
		{
			name: "panic",
			locator: func(ctx context.Context) (geo.LatLng, error) {
				panic("sensor exploded")
			},
			wantErr: geolocation.ErrUnavailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := openWithLocator(tc.locator, 0)
			prev := &geo.LatLng{Lat: 1, Lng: 2}
			s.SetUserLocation(context.Background(), prev)

			_, err := s.LocateMe(context.Background())
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("err = %v, want %v", err, tc.wantErr)
			}
			if diff := cmp.Diff(prev, s.UserLocation()); diff != "" {
				t.Fatalf("location changed (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLocateMe_Timeout(t *testing.T) {
	s := openWithLocator(locatorFunc(func(ctx context.Context) (geo.LatLng, error) {
		<-ctx.Done()
		return geo.LatLng{}, ctx.Err()
	}), 20*time.Millisecond)

	_, err := s.LocateMe(context.Background())
	if !errors.Is(err, geolocation.ErrUnavailable) {
		t.Fatalf("err = %v, want ErrUnavailable", err)
	}
	if s.UserLocation() != nil {
		t.Fatalf("location set after timeout")
	}
}

func TestLocateMe_ConcurrentCallsShareOneRequest(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	s := openWithLocator(locatorFunc(func(ctx context.Context) (geo.LatLng, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return geo.LatLng{Lat: 13.7, Lng: 100.5}, nil
	}), time.Second)

	const n = 5
	var wg sync.WaitGroup
	errs := make(chan error, n)
	run := func() {
		defer wg.Done()
		_, err := s.LocateMe(context.Background())
		errs <- err
	}

	wg.Add(1)
	go run()
	<-started

	wg.Add(n - 1)
	for i := 1; i < n; i++ {
		go run()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("LocateMe: %v", err)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("locator calls = %d, want 1", got)
	}
}
