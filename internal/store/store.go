package store

import (
	"context"
	"sync"
	"time"

	"lost-found-pets/internal/domain/pets"
	"lost-found-pets/internal/domain/posts"
	"lost-found-pets/internal/domain/profile"
	"lost-found-pets/internal/geo"
	"lost-found-pets/internal/platform/logger"
	"lost-found-pets/internal/ports/geolocation"
	"lost-found-pets/internal/ports/kv"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultPrefix        = "pf."
	DefaultLocateTimeout = 10 * time.Second
)

// Slice identifica cada parte del estado que se persiste por separado.
type Slice string

const (
	SlicePosts        Slice = "posts"
	SlicePets         Slice = "pets"
	SliceProfile      Slice = "profile"
	SliceFilters      Slice = "filters"
	SliceRadius       Slice = "radiusKm"
	SliceUserLocation Slice = "userLocation"
)

// AllSlices en el orden en que se hidratan.
var AllSlices = []Slice{SlicePosts, SlicePets, SliceProfile, SliceFilters, SliceRadius, SliceUserLocation}

type Options struct {
	Logger  logger.Logger
	Locator geolocation.Locator // nil = geolocalización no soportada

	LocateTimeout time.Duration

	// Prefix de las keys durables; vacío = "pf."
	Prefix string

	// Seed reemplaza los valores por defecto embebidos (tests).
	Seed *Seed

	Now   func() time.Time
	NewID func() string
}

// Store es la única fuente de verdad de posts, pets, perfil, filtros,
// radio y ubicación del usuario. Cada mutación reescribe su slice en el
// storage durable; el storage es solo un espejo.
type Store struct {
	storage kv.Storage
	log     logger.Logger
	locator geolocation.Locator

	locateTimeout time.Duration
	prefix        string
	seed          Seed
	now           func() time.Time
	newID         func() string

	hydrateOnce sync.Once

	mu           sync.RWMutex
	posts        []posts.Post
	pets         []pets.Pet
	profile      profile.Profile
	filters      posts.Filters
	radiusKm     float64
	userLocation *geo.LatLng

	locating singleflight.Group

	subsMu  sync.Mutex
	subs    map[int]chan Change
	nextSub int
}

// New arma el store sin hidratar: estado neutro hasta llamar a Hydrate.
func New(storage kv.Storage, opts Options) *Store {
	s := &Store{
		storage:       storage,
		log:           opts.Logger,
		locator:       opts.Locator,
		locateTimeout: opts.LocateTimeout,
		prefix:        opts.Prefix,
		now:           opts.Now,
		newID:         opts.NewID,
		subs:          make(map[int]chan Change),
	}

	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.locateTimeout <= 0 {
		s.locateTimeout = DefaultLocateTimeout
	}
	if s.prefix == "" {
		s.prefix = DefaultPrefix
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if opts.Seed != nil {
		s.seed = *opts.Seed
	} else {
		s.seed = MustDefaultSeed()
	}

	s.profile = s.seed.Profile.Clone()
	s.filters = s.seed.Filters.Normalized()
	s.radiusKm = s.seed.defaultRadius()

	return s
}

// Open crea el store y lo hidrata desde storage.
func Open(ctx context.Context, storage kv.Storage, opts Options) *Store {
	s := New(storage, opts)
	s.Hydrate(ctx)
	return s
}

// Key devuelve la key durable de un slice.
func (s *Store) Key(slice Slice) string {
	return s.prefix + string(slice)
}

// Snapshot es una copia de todo el estado.
type Snapshot struct {
	Posts        []posts.Post    `json:"posts"`
	Pets         []pets.Pet      `json:"pets"`
	Profile      profile.Profile `json:"profile"`
	Filters      posts.Filters   `json:"filters"`
	RadiusKm     float64         `json:"radiusKm"`
	UserLocation *geo.LatLng     `json:"userLocation"`
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Posts:        clonePosts(s.posts),
		Pets:         clonePets(s.pets),
		Profile:      s.profile.Clone(),
		Filters:      s.filters,
		RadiusKm:     s.radiusKm,
		UserLocation: cloneLocation(s.userLocation),
	}
}

func (s *Store) Posts() []posts.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePosts(s.posts)
}

func (s *Store) Pets() []pets.Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePets(s.pets)
}

func (s *Store) Profile() profile.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.Clone()
}

func (s *Store) Filters() posts.Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

func (s *Store) RadiusKm() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.radiusKm
}

func (s *Store) UserLocation() *geo.LatLng {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLocation(s.userLocation)
}

// GetPost es lectura pura.
func (s *Store) GetPost(id string) (posts.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return posts.Post{}, false
}

// VisiblePosts aplica el motor de filtros sobre el estado actual.
func (s *Store) VisiblePosts() []posts.Post {
	snap := s.Snapshot()
	return posts.Visible(snap.Posts, snap.Filters, snap.RadiusKm, snap.UserLocation)
}

func clonePosts(in []posts.Post) []posts.Post {
	out := make([]posts.Post, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

func clonePets(in []pets.Pet) []pets.Pet {
	out := make([]pets.Pet, len(in))
	copy(out, in)
	return out
}

func cloneLocation(l *geo.LatLng) *geo.LatLng {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}
