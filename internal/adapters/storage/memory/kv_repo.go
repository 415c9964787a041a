package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"lost-found-pets/internal/ports/kv"
)

var (
	ErrKeyRequired = errors.New("key required")
)

type kvRepo struct {
	mu    sync.RWMutex
	byKey map[string]string
}

// NewKV crea un storage en memoria (tests / corridas efímeras).
func NewKV() kv.Storage {
	return &kvRepo{
		byKey: make(map[string]string),
	}
}

// NewKVFrom arranca con valores precargados (útil para simular datos previos).
func NewKVFrom(seed map[string]string) kv.Storage {
	r := &kvRepo{byKey: make(map[string]string, len(seed))}
	for k, v := range seed {
		r.byKey[k] = v
	}
	return r
}

func (r *kvRepo) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byKey[key]
	return v, ok, nil
}

func (r *kvRepo) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(key) == "" {
		return ErrKeyRequired
	}
	r.byKey[key] = value
	return nil
}
