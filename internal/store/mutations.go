package store

import (
	"context"
	"math"

	"lost-found-pets/internal/domain/pets"
	"lost-found-pets/internal/domain/posts"
	"lost-found-pets/internal/domain/profile"
	"lost-found-pets/internal/geo"
)

// mutate aplica fn bajo lock; si hubo cambio persiste el slice y avisa
// a los suscriptores.
func (s *Store) mutate(ctx context.Context, slice Slice, fn func() bool) {
	s.mu.Lock()
	changed := fn()
	if changed {
		s.persistLocked(ctx, slice)
	}
	s.mu.Unlock()

	if changed {
		s.notify(slice)
	}
}

// AddPost agrega el post al inicio (más reciente primero) y devuelve su id.
func (s *Store) AddPost(ctx context.Context, d posts.Draft) string {
	var id string
	s.mutate(ctx, SlicePosts, func() bool {
		id = s.uniqueID(func(candidate string) bool {
			for _, p := range s.posts {
				if p.ID == candidate {
					return true
				}
			}
			return false
		})
		p := d.Build(id, s.now().UTC())
		s.posts = append([]posts.Post{p}, s.posts...)
		return true
	})
	return id
}

// DeletePost es idempotente: un id inexistente no hace nada.
func (s *Store) DeletePost(ctx context.Context, id string) {
	s.mutate(ctx, SlicePosts, func() bool {
		for i, p := range s.posts {
			if p.ID == id {
				next := make([]posts.Post, 0, len(s.posts)-1)
				next = append(next, s.posts[:i]...)
				s.posts = append(next, s.posts[i+1:]...)
				return true
			}
		}
		return false
	})
}

// MarkFound pasa el post a Found. Ausente o ya Found: no-op.
func (s *Store) MarkFound(ctx context.Context, id string) {
	s.mutate(ctx, SlicePosts, func() bool {
		for i := range s.posts {
			if s.posts[i].ID != id {
				continue
			}
			if s.posts[i].Status == posts.StatusFound {
				return false
			}
			next := clonePosts(s.posts)
			next[i].Status = posts.StatusFound
			s.posts = next
			return true
		}
		return false
	})
}

func (s *Store) AddPet(ctx context.Context, d pets.Draft) string {
	var id string
	s.mutate(ctx, SlicePets, func() bool {
		id = s.uniqueID(func(candidate string) bool {
			for _, p := range s.pets {
				if p.ID == candidate {
					return true
				}
			}
			return false
		})
		s.pets = append([]pets.Pet{d.Build(id)}, s.pets...)
		return true
	})
	return id
}

func (s *Store) DeletePet(ctx context.Context, id string) {
	s.mutate(ctx, SlicePets, func() bool {
		for i, p := range s.pets {
			if p.ID == id {
				next := make([]pets.Pet, 0, len(s.pets)-1)
				next = append(next, s.pets[:i]...)
				s.pets = append(next, s.pets[i+1:]...)
				return true
			}
		}
		return false
	})
}

// SetProfile hace merge superficial del patch.
func (s *Store) SetProfile(ctx context.Context, patch profile.Patch) {
	s.mutate(ctx, SliceProfile, func() bool {
		s.profile = s.profile.Apply(patch)
		return true
	})
}

// SetFilters hace merge superficial del patch.
func (s *Store) SetFilters(ctx context.Context, patch posts.FilterPatch) {
	s.mutate(ctx, SliceFilters, func() bool {
		s.filters = s.filters.Apply(patch).Normalized()
		return true
	})
}

// SetRadiusKm reemplaza el radio; NaN, infinito o negativo queda en 0.
func (s *Store) SetRadiusKm(ctx context.Context, km float64) {
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		km = 0
	}
	s.mutate(ctx, SliceRadius, func() bool {
		s.radiusKm = km
		return true
	})
}

// SetUserLocation reemplaza la ubicación; nil la borra (se guarda null).
// Una posición inválida se ignora.
func (s *Store) SetUserLocation(ctx context.Context, pos *geo.LatLng) {
	if pos != nil && !pos.Valid() {
		s.log.Warn("invalid user location ignored", map[string]any{
			"lat": pos.Lat,
			"lng": pos.Lng,
		})
		return
	}
	loc := cloneLocation(pos)
	s.mutate(ctx, SliceUserLocation, func() bool {
		s.userLocation = loc
		return true
	})
}

// uniqueID genera ids hasta encontrar uno libre. Con UUIDs la segunda
// vuelta no debería ocurrir nunca.
func (s *Store) uniqueID(taken func(string) bool) string {
	for {
		id := s.newID()
		if id != "" && !taken(id) {
			return id
		}
	}
}
