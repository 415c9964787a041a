package store

import (
	"context"
	"encoding/json"
	"strconv"
)

// persistLocked reescribe el slice completo en su key. Se llama con mu
// tomado, así las escrituras de una misma key respetan el orden de las
// mutaciones. Un fallo de escritura solo se loguea: el estado en memoria
// manda y la próxima mutación del slice lo vuelve a escribir.
func (s *Store) persistLocked(ctx context.Context, slice Slice) {
	key := s.Key(slice)

	value, err := s.encodeLocked(slice)
	if err != nil {
		s.log.Error("store encode failed", map[string]any{"key": key, "error": err})
		return
	}

	// una request cancelada no debe cortar la escritura a mitad
	if err := s.storage.Set(context.WithoutCancel(ctx), key, value); err != nil {
		s.log.Warn("durable write failed", map[string]any{"key": key, "error": err})
	}
}

func (s *Store) encodeLocked(slice Slice) (string, error) {
	var v any
	switch slice {
	case SlicePosts:
		if s.posts == nil {
			return "[]", nil
		}
		v = s.posts
	case SlicePets:
		if s.pets == nil {
			return "[]", nil
		}
		v = s.pets
	case SliceProfile:
		v = s.profile
	case SliceFilters:
		v = s.filters
	case SliceRadius:
		return strconv.FormatFloat(s.radiusKm, 'f', -1, 64), nil
	case SliceUserLocation:
		v = s.userLocation
	}

	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
