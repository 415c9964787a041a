package store

import (
	"context"
	"errors"
)

// ErrNoSession: se pidió el store fuera de una sesión (sin store en el contexto).
var ErrNoSession = errors.New("store must be used within a session")

type ctxKey struct{}

// WithStore adjunta el store al contexto (el "provider" de la sesión).
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// Lookup devuelve el store si hay uno en el contexto.
func Lookup(ctx context.Context) (*Store, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Store)
	return s, ok && s != nil
}

// FromContext devuelve el store de la sesión. Usarlo sin store es un error
// de programación y entra en pánico con ErrNoSession.
func FromContext(ctx context.Context) *Store {
	s, ok := Lookup(ctx)
	if !ok {
		panic(ErrNoSession)
	}
	return s
}
