package store

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"lost-found-pets/internal/domain/pets"
	"lost-found-pets/internal/domain/posts"
	"lost-found-pets/internal/domain/profile"
	"lost-found-pets/internal/geo"
)

// Hydrate carga cada slice desde el storage una sola vez. Un slice ausente
// o corrupto cae a su valor por defecto sin afectar a los demás. Al final
// se reescriben los slices leídos, así los defaults quedan persistidos. Un
// slice que no se pudo leer no se reescribe: el valor guardado sigue ahí.
func (s *Store) Hydrate(ctx context.Context) {
	s.hydrateOnce.Do(func() {
		s.mu.Lock()
		unreadable := make(map[Slice]bool)
		track := func(slice Slice, err error) {
			if err != nil {
				unreadable[slice] = true
			}
		}

		var err error
		s.posts, err = s.loadPosts(ctx)
		track(SlicePosts, err)
		s.pets, err = s.loadPets(ctx)
		track(SlicePets, err)
		s.profile, err = s.loadProfile(ctx)
		track(SliceProfile, err)
		s.filters, err = s.loadFilters(ctx)
		track(SliceFilters, err)
		s.radiusKm, err = s.loadRadius(ctx)
		track(SliceRadius, err)
		s.userLocation, err = s.loadUserLocation(ctx)
		track(SliceUserLocation, err)

		for _, slice := range AllSlices {
			if unreadable[slice] {
				continue
			}
			s.persistLocked(ctx, slice)
		}
		fields := map[string]any{
			"posts": len(s.posts),
			"pets":  len(s.pets),
		}
		if len(unreadable) > 0 {
			fields["unreadable"] = len(unreadable)
		}
		s.mu.Unlock()

		s.log.Info("store hydrated", fields)
	})
}

// read devuelve el valor crudo; ausente, vacío o "null" cuentan como no
// guardado (ok=false, err=nil). err != nil solo si el storage falló.
func (s *Store) read(ctx context.Context, slice Slice) (string, bool, error) {
	key := s.Key(slice)
	raw, ok, err := s.storage.Get(ctx, key)
	if err != nil {
		s.log.Warn("store hydration error", map[string]any{"key": key, "error": err})
		return "", false, err
	}
	raw = strings.TrimSpace(raw)
	if !ok || raw == "" || raw == "null" {
		return "", false, nil
	}
	return raw, true, nil
}

func (s *Store) parseFailed(slice Slice, err error) {
	s.log.Warn("store hydration error", map[string]any{
		"key":   s.Key(slice),
		"error": err,
	})
}

func (s *Store) seedPosts() []posts.Post {
	now := s.now().UTC()
	out := make([]posts.Post, 0, len(s.seed.Posts))
	for _, d := range s.seed.Posts {
		out = append(out, d.Build(s.newID(), now))
	}
	return out
}

func (s *Store) seedPets() []pets.Pet {
	out := make([]pets.Pet, 0, len(s.seed.Pets))
	for _, d := range s.seed.Pets {
		out = append(out, d.Build(s.newID()))
	}
	return out
}

// loadPosts: con error de lectura arranca vacío; el seed es solo para
// storage sin la key.
func (s *Store) loadPosts(ctx context.Context) ([]posts.Post, error) {
	raw, ok, err := s.read(ctx, SlicePosts)
	if err != nil {
		return []posts.Post{}, err
	}
	if !ok {
		return s.seedPosts(), nil
	}

	var items []posts.Post
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.parseFailed(SlicePosts, err)
		return s.seedPosts(), nil
	}

	seen := make(map[string]struct{}, len(items))
	out := make([]posts.Post, 0, len(items))
	for _, p := range items {
		p = posts.Normalize(p)
		// ids vacíos o repetidos (datos editados a mano) reciben id nuevo
		if _, dup := seen[p.ID]; p.ID == "" || dup {
			p.ID = s.newID()
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

func (s *Store) loadPets(ctx context.Context) ([]pets.Pet, error) {
	raw, ok, err := s.read(ctx, SlicePets)
	if err != nil {
		return []pets.Pet{}, err
	}
	if !ok {
		return s.seedPets(), nil
	}

	var items []pets.Pet
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.parseFailed(SlicePets, err)
		return s.seedPets(), nil
	}

	seen := make(map[string]struct{}, len(items))
	out := make([]pets.Pet, 0, len(items))
	for _, p := range items {
		p = pets.Normalize(p)
		if _, dup := seen[p.ID]; p.ID == "" || dup {
			p.ID = s.newID()
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

func (s *Store) loadProfile(ctx context.Context) (profile.Profile, error) {
	raw, ok, err := s.read(ctx, SliceProfile)
	if err != nil || !ok {
		return s.seed.Profile.Clone(), err
	}

	var p profile.Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		s.parseFailed(SliceProfile, err)
		return s.seed.Profile.Clone(), nil
	}
	return p, nil
}

func (s *Store) loadFilters(ctx context.Context) (posts.Filters, error) {
	raw, ok, err := s.read(ctx, SliceFilters)
	if err != nil || !ok {
		return s.seed.Filters.Normalized(), err
	}

	var f posts.Filters
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		s.parseFailed(SliceFilters, err)
		return s.seed.Filters.Normalized(), nil
	}
	return f.Normalized(), nil
}

func (s *Store) loadRadius(ctx context.Context) (float64, error) {
	raw, ok, err := s.read(ctx, SliceRadius)
	if err != nil || !ok {
		return s.seed.defaultRadius(), err
	}
	r, ok := parseRadius(raw)
	if !ok {
		s.log.Warn("store hydration error", map[string]any{
			"key":   s.Key(SliceRadius),
			"error": "radius is not a non-negative number",
			"raw":   raw,
		})
		return s.seed.defaultRadius(), nil
	}
	return r, nil
}

func parseRadius(raw string) (float64, bool) {
	r, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return 0, false
	}
	return r, true
}

func (s *Store) loadUserLocation(ctx context.Context) (*geo.LatLng, error) {
	raw, ok, err := s.read(ctx, SliceUserLocation)
	if err != nil || !ok {
		return nil, err
	}

	var loc geo.LatLng
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		s.parseFailed(SliceUserLocation, err)
		return nil, nil
	}
	if !loc.Valid() {
		s.log.Warn("store hydration error", map[string]any{
			"key":   s.Key(SliceUserLocation),
			"error": "location out of range",
		})
		return nil, nil
	}
	return &loc, nil
}
