package store

import "sync"

// Change avisa que un slice cambió (y ya fue persistido).
type Change struct {
	Slice Slice `json:"slice"`
}

const defaultSubscriberBuffer = 16

// Subscribe devuelve un canal de cambios y la función para darse de baja.
// Un suscriptor lento pierde avisos en vez de frenar las mutaciones.
func (s *Store) Subscribe() (<-chan Change, func()) {
	ch := make(chan Change, defaultSubscriberBuffer)

	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.subsMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			close(ch)
			s.subsMu.Unlock()
		})
	}
	return ch, cancel
}

func (s *Store) notify(slice Slice) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	for _, ch := range s.subs {
		select {
		case ch <- Change{Slice: slice}:
		default:
		}
	}
}
