package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	mem "lost-found-pets/internal/adapters/storage/memory"
	"lost-found-pets/internal/ports/kv"
)

var testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

// seqIDs genera ids deterministas: id-1, id-2, ...
func seqIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func testOptions() Options {
	return Options{
		Now:   func() time.Time { return testNow },
		NewID: seqIDs(),
	}
}

func openTest(storage kv.Storage) *Store {
	return Open(context.Background(), storage, testOptions())
}

func newMemory() kv.Storage {
	return mem.NewKV()
}

// recordingKV guarda cada Set en orden.
type recordingKV struct {
	kv.Storage

	mu     sync.Mutex
	writes []write
}

type write struct {
	key   string
	value string
}

func newRecordingKV(inner kv.Storage) *recordingKV {
	return &recordingKV{Storage: inner}
}

func (r *recordingKV) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	r.writes = append(r.writes, write{key: key, value: value})
	r.mu.Unlock()
	return r.Storage.Set(ctx, key, value)
}

func (r *recordingKV) writesFor(key string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0)
	for _, w := range r.writes {
		if w.key == key {
			out = append(out, w.value)
		}
	}
	return out
}

func (r *recordingKV) reset() {
	r.mu.Lock()
	r.writes = nil
	r.mu.Unlock()
}

var errQuota = errors.New("quota exceeded")

// failingKV simula un storage lleno: lee bien, toda escritura falla.
type failingKV struct {
	kv.Storage
}

func (failingKV) Set(ctx context.Context, key, value string) error {
	return errQuota
}

// brokenReadKV falla al leer una key puntual.
type brokenReadKV struct {
	kv.Storage
	key string
}

func (b brokenReadKV) Get(ctx context.Context, key string) (string, bool, error) {
	if key == b.key {
		return "", false, errors.New("disk error")
	}
	return b.Storage.Get(ctx, key)
}
