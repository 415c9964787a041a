package store

import (
	"context"
	"testing"

	"lost-found-pets/internal/domain/posts"
)

func TestSubscribe_ReceivesChanges(t *testing.T) {
	ctx := context.Background()
	s := openTest(newMemory())

	ch, cancel := s.Subscribe()
	defer cancel()

	id := s.AddPost(ctx, posts.Draft{Name: "Milo"})
	s.SetRadiusKm(ctx, 3)
	s.MarkFound(ctx, id)
	s.MarkFound(ctx, id) // no-op: no avisa

	want := []Slice{SlicePosts, SliceRadius, SlicePosts}
	for i, w := range want {
		got := <-ch
		if got.Slice != w {
			t.Fatalf("change %d = %s, want %s", i, got.Slice, w)
		}
	}
	select {
	case c := <-ch:
		t.Fatalf("unexpected change %+v", c)
	default:
	}
}

func TestSubscribe_CancelClosesChannel(t *testing.T) {
	s := openTest(newMemory())

	ch, cancel := s.Subscribe()
	cancel()
	cancel()

	if _, ok := <-ch; ok {
		t.Fatalf("channel still open")
	}
	// mutar sin suscriptores no bloquea
	s.SetRadiusKm(context.Background(), 1)
}

func TestSubscribe_SlowSubscriberDoesNotBlock(t *testing.T) {
	ctx := context.Background()
	s := openTest(newMemory())

	_, cancel := s.Subscribe()
	defer cancel()

	for i := 0; i < defaultSubscriberBuffer*3; i++ {
		s.SetRadiusKm(ctx, float64(i))
	}
	if s.RadiusKm() != float64(defaultSubscriberBuffer*3-1) {
		t.Fatalf("radius = %v", s.RadiusKm())
	}
}
