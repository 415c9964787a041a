package kv

import "context"

// Storage es el almacenamiento durable clave/valor donde el store refleja
// cada slice de estado. Es un espejo pasivo: nunca es dueño del estado.
type Storage interface {
	// Get devuelve el valor guardado y si existe.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set reemplaza el valor de key.
	Set(ctx context.Context, key, value string) error
}
